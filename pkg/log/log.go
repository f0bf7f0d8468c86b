package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns a Logger writing to stdout at info level.
func New() Logger {
	return NewWithLevel(os.Stdout, logrus.InfoLevel)
}

// NewWithLevel returns a logrus backed Logger writing to w. Colors are
// only used when w is a terminal.
func NewWithLevel(w io.Writer, level logrus.Level) Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    !isTerminal(w),
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}

// ParseLevel wraps logrus.ParseLevel so callers don't need to import logrus.
func ParseLevel(level string) (logrus.Level, error) {
	return logrus.ParseLevel(level)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
