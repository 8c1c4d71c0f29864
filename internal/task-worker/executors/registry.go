package executors

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// TaskPayload is the document a worker hands to an executor.
// Input and Context are JSON documents; Context and InputSchema may be empty.
type TaskPayload struct {
	TaskID       string `json:"task_id"`
	Name         string `json:"name"`
	ExecutorType string `json:"executor_type"`
	Input        string `json:"input"`
	Context      string `json:"context,omitempty"`
	InputSchema  string `json:"input_schema,omitempty"`
}

// NewTaskPayload assembles a payload with a freshly generated task ID.
func NewTaskPayload(name, executorType, input string) TaskPayload {
	return TaskPayload{
		TaskID:       uuid.NewString(),
		Name:         name,
		ExecutorType: executorType,
		Input:        input,
	}
}

// ExecutorType constants
const (
	ExecutorTypeEcho   = "echo-executor"
	ExecutorTypeLogger = "logger-executor"
	// Add other executor types here
)

type Executor interface {
	Execute(taskPayload TaskPayload) (result string, err error)
}

var Registry = make(map[string]Executor)

var log = logrus.WithField("component", "task-worker")

// init registers all known executors.
func init() {
	RegisterExecutor(ExecutorTypeEcho, NewEchoExecutor())
	RegisterExecutor(ExecutorTypeLogger, NewLoggerExecutor())

	// Register other executors here
	log.Info("Executor registry initialized with known executors.")
}

func RegisterExecutor(executorType string, executor Executor) {
	log.Infof("Registering executor for type: %s", executorType)
	Registry[executorType] = executor
}

func GetExecutor(executorType string) (Executor, error) {
	executor, exists := Registry[executorType]
	if !exists {
		return nil, fmt.Errorf("no executor registered for type: %s", executorType)
	}
	return executor, nil
}
