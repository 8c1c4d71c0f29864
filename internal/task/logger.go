package task

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

const timeLayout = "2006-01-02 15:04:05.000"

// levelOverrideKey marks entries that should render with a label logrus does
// not model as a level. Used for the SUCCESS lines.
const levelOverrideKey = "level_override"

const successLabel = "SUCCESS"

// PinkLogger is the task's log sink. Every line is rendered as
// "<timestamp> | <LEVEL padded to 8> | <message>" wrapped in magenta markup,
// with SUCCESS lines in high-intensity magenta. Minimum level is Info.
//
// The sink is built by the constructor rather than at package load, so
// constructing it repeatedly has no process-wide effect.
type PinkLogger struct {
	*logrus.Logger
	formatter *pinkFormatter
}

// NewPinkLogger returns a sink writing colorized lines to out.
func NewPinkLogger(out io.Writer) *PinkLogger {
	base := color.New(color.FgMagenta)
	base.EnableColor()
	bright := color.New(color.FgHiMagenta)
	bright.EnableColor()
	formatter := &pinkFormatter{base: base, bright: bright}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(formatter)

	return &PinkLogger{Logger: logger, formatter: formatter}
}

// Successf emits a high-visibility line: same sink and layout as Info, but
// labeled SUCCESS and rendered in the brighter magenta.
func (l *PinkLogger) Successf(format string, args ...interface{}) {
	l.WithField(levelOverrideKey, successLabel).Infof(format, args...)
}

// DisableColor strips the ANSI markup from subsequent lines.
func (l *PinkLogger) DisableColor() {
	l.formatter.base.DisableColor()
	l.formatter.bright.DisableColor()
}

type pinkFormatter struct {
	base   *color.Color
	bright *color.Color
}

func (f *pinkFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	label := strings.ToUpper(entry.Level.String())
	c := f.base
	if override, ok := entry.Data[levelOverrideKey].(string); ok {
		label = override
		c = f.bright
	}
	line := fmt.Sprintf("%s | %-8s | %s", entry.Time.Format(timeLayout), label, entry.Message)
	return []byte(c.Sprintln(line)), nil
}
