package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The orchestrator consumes the record by these exact field names.
func TestResult_JSONFieldNames(t *testing.T) {
	record := Result{
		Success:     true,
		Message:     "Data logged successfully in pink!",
		InputLogged: map[string]interface{}{"message": "hi"},
		Metadata:    Metadata{ExecutionTimeMS: 200, Logger: "loguru_pink_logger"},
		Timestamp:   "2026-08-25T00:00:00Z",
		LogID:       "log_1756080000",
	}

	encoded, err := json.Marshal(record)
	assert.NoError(t, err)
	assert.JSONEq(t, `{
		"success": true,
		"message": "Data logged successfully in pink!",
		"input_logged": {"message": "hi"},
		"metadata": {"execution_time_ms": 200, "logger": "loguru_pink_logger"},
		"timestamp": "2026-08-25T00:00:00Z",
		"log_id": "log_1756080000"
	}`, string(encoded))
}
