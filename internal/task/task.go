package task

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/hokaccha/go-prettyjson"
	"github.com/jonboulle/clockwork"

	"logger-task-service/internal/models"
)

// DefaultDelay paces the output so the pink lines are readable when a human
// watches the run. Disable it with WithDelay(0) in non-interactive runs.
const DefaultDelay = 200 * time.Millisecond

// loggerName identifies this sink in the result metadata.
const loggerName = "loguru_pink_logger"

const completionMessage = "Data logged successfully in pink!"

// SerializationError reports an input or context value that could not be
// rendered for logging. It propagates to the caller; no result record is
// produced alongside it.
type SerializationError struct {
	Field string
	Err   error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("cannot serialize %s for logging: %v", e.Field, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

// LoggerTask logs a workflow payload to its sink in pink and returns a result
// record to the orchestrator. The payload is opaque: it is serialized for
// display, never interpreted.
type LoggerTask struct {
	log    *PinkLogger
	pretty *prettyjson.Formatter
	clock  clockwork.Clock
	delay  time.Duration
}

// Option configures a LoggerTask at construction time.
type Option func(*LoggerTask)

// WithClock substitutes the clock, so tests can supply deterministic
// timestamps and elapsed durations.
func WithClock(c clockwork.Clock) Option {
	return func(t *LoggerTask) { t.clock = c }
}

// WithDelay overrides the display-pacing delay. Zero or negative skips the
// sleep entirely.
func WithDelay(d time.Duration) Option {
	return func(t *LoggerTask) { t.delay = d }
}

// WithOutput redirects the log sink away from stdout. Apply before
// WithoutColor when combining the two.
func WithOutput(w io.Writer) Option {
	return func(t *LoggerTask) { t.log = NewPinkLogger(w) }
}

// WithoutColor strips ANSI markup from log lines and serialized payloads.
func WithoutColor() Option {
	return func(t *LoggerTask) {
		t.log.DisableColor()
		t.pretty.DisabledColor = true
	}
}

// New constructs a logger task with its own pink sink on stdout. All sink
// configuration happens here, not at package load, so construction is
// idempotent and testable in isolation.
func New(opts ...Option) *LoggerTask {
	t := &LoggerTask{
		log:    NewPinkLogger(os.Stdout),
		pretty: prettyjson.NewFormatter(),
		clock:  clockwork.NewRealClock(),
		delay:  DefaultDelay,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Execute logs the input payload, and the workflow context when one is
// supplied, then returns the result record. context may be nil; no context
// line is emitted in that case. Execution is strictly linear: the only
// branch is the context presence check.
func (t *LoggerTask) Execute(input interface{}, context interface{}) (*models.Result, error) {
	t.log.Info("Logger task started")

	start := t.clock.Now()
	logID := fmt.Sprintf("log_%d", start.Unix())

	t.log.Successf("=== Log Entry: %s ===", logID)

	prettyInput, err := t.pretty.Marshal(input)
	if err != nil {
		return nil, &SerializationError{Field: "input data", Err: err}
	}
	t.log.Successf("Input data: %s", prettyInput)

	if context != nil {
		prettyContext, err := t.pretty.Marshal(context)
		if err != nil {
			return nil, &SerializationError{Field: "context", Err: err}
		}
		t.log.Successf("Context: %s", prettyContext)
	}

	if t.delay > 0 {
		t.clock.Sleep(t.delay)
	}

	elapsed := t.clock.Since(start)
	result := &models.Result{
		Success:     true,
		Message:     completionMessage,
		InputLogged: input,
		Metadata: models.Metadata{
			ExecutionTimeMS: int64(math.Round(elapsed.Seconds() * 1000)),
			Logger:          loggerName,
		},
		Timestamp: t.clock.Now().Format(time.RFC3339Nano),
		LogID:     logID,
	}

	t.log.Successf("Logger task completed in %.2fs", elapsed.Seconds())

	return result, nil
}
