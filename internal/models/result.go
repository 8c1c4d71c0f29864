package models

// Result is the record a task returns to the orchestrator once it has run.
// Success is true on every non-error path; a task that cannot produce a
// result returns an error instead of a failure-flagged record.
type Result struct {
	Success     bool        `json:"success"`
	Message     string      `json:"message"`
	InputLogged interface{} `json:"input_logged"`
	Metadata    Metadata    `json:"metadata"`
	Timestamp   string      `json:"timestamp"`
	LogID       string      `json:"log_id"`
}

// Metadata carries execution details alongside the result proper.
type Metadata struct {
	ExecutionTimeMS int64  `json:"execution_time_ms"`
	Logger          string `json:"logger"`
}
