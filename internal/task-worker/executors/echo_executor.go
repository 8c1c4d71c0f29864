package executors

import (
	"io"
	"os"

	"logger-task-service/internal/task"
)

// EchoExecutor is a simple example task that logs the input document through
// the pink sink and returns it unchanged.
type EchoExecutor struct {
	log *task.PinkLogger
}

// NewEchoExecutor constructs the executor with its sink on stdout.
func NewEchoExecutor() *EchoExecutor {
	return NewEchoExecutorWithOutput(os.Stdout)
}

// NewEchoExecutorWithOutput redirects the sink, for tests.
func NewEchoExecutorWithOutput(out io.Writer) *EchoExecutor {
	return &EchoExecutor{log: task.NewPinkLogger(out)}
}

// Execute implements the Executor interface.
func (e *EchoExecutor) Execute(taskPayload TaskPayload) (result string, err error) {
	e.log.Infof("EchoExecutor: Executing task %s (%s)", taskPayload.TaskID, taskPayload.Name)
	e.log.Successf("Input: %s", taskPayload.Input)

	result = taskPayload.Input
	e.log.Infof("EchoExecutor: Task %s completed", taskPayload.TaskID)
	return result, nil
}

// Ensure EchoExecutor satisfies the Executor interface from registry.go.
var _ Executor = (*EchoExecutor)(nil)
