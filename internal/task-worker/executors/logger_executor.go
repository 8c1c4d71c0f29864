package executors

import (
	"encoding/json"
	"fmt"

	"logger-task-service/internal/task"
	"logger-task-service/pkg/validation"
)

// LoggerExecutor hosts the pink logger task behind the registry. It validates
// and decodes the payload documents, runs the task, and returns the result
// record as a JSON string.
type LoggerExecutor struct {
	task *task.LoggerTask
}

// NewLoggerExecutor constructs the executor. Options are forwarded to the
// underlying logger task (tests use this to silence color and delay).
func NewLoggerExecutor(opts ...task.Option) *LoggerExecutor {
	return &LoggerExecutor{task: task.New(opts...)}
}

// Execute implements the Executor interface.
func (le *LoggerExecutor) Execute(taskPayload TaskPayload) (result string, err error) {
	log.Infof("LoggerExecutor: Executing task %s (%s)", taskPayload.TaskID, taskPayload.Name)

	if err := validation.ValidateJSONWithSchema(taskPayload.InputSchema, taskPayload.Input); err != nil {
		return "", fmt.Errorf("input validation failed for task %s: %w", taskPayload.TaskID, err)
	}

	var input interface{}
	if err := json.Unmarshal([]byte(taskPayload.Input), &input); err != nil {
		return "", fmt.Errorf("failed to decode input for task %s: %w", taskPayload.TaskID, err)
	}

	// An absent context document is valid; the task emits no context line.
	var context interface{}
	if taskPayload.Context != "" {
		if err := json.Unmarshal([]byte(taskPayload.Context), &context); err != nil {
			return "", fmt.Errorf("failed to decode context for task %s: %w", taskPayload.TaskID, err)
		}
	}

	record, err := le.task.Execute(input, context)
	if err != nil {
		return "", fmt.Errorf("logger task failed for task %s: %w", taskPayload.TaskID, err)
	}

	encoded, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("failed to encode result for task %s: %w", taskPayload.TaskID, err)
	}

	log.Infof("LoggerExecutor: Task %s completed (log_id %s)", taskPayload.TaskID, record.LogID)
	return string(encoded), nil
}

// Ensure LoggerExecutor satisfies the Executor interface from registry.go.
var _ Executor = (*LoggerExecutor)(nil)
