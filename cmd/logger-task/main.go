package main

import (
	"fmt"

	"github.com/hokaccha/go-prettyjson"
	"github.com/sirupsen/logrus"

	"logger-task-service/internal/task-worker/executors"
)

// sampleInput mirrors the document an orchestrator would dispatch. Running
// the binary directly executes the logger task once against it and prints the
// result record. No flags, no environment variables.
const sampleInput = `{
  "message": "This is a test log message",
  "data": {
    "value": 42,
    "status": "completed",
    "items": ["apple", "banana", "cherry"]
  }
}`

func main() {
	payload := executors.NewTaskPayload("Pink logger smoke run", executors.ExecutorTypeLogger, sampleInput)

	executor, err := executors.GetExecutor(payload.ExecutorType)
	if err != nil {
		logrus.Fatalf("no executor for payload: %v", err)
	}

	result, err := executor.Execute(payload)
	if err != nil {
		logrus.Fatalf("logger task failed: %v", err)
	}

	pretty, err := prettyjson.Format([]byte(result))
	if err != nil {
		logrus.Fatalf("failed to render result: %v", err)
	}

	fmt.Println("\nResult object:")
	fmt.Println(string(pretty))
}
