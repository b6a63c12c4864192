package log

import (
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
)

type Level int

const (
	LevelInfo Level = iota
	LevelDebug
)

type Logger struct {
	level Level
	l     *charmlog.Logger
}

func New(level Level, out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}
	l := charmlog.NewWithOptions(out, charmlog.Options{
		ReportTimestamp: true,
		Prefix:          "strtasks",
	})
	if level >= LevelDebug {
		l.SetLevel(charmlog.DebugLevel)
	} else {
		l.SetLevel(charmlog.InfoLevel)
	}
	return &Logger{level: level, l: l}
}

func (l *Logger) Infof(format string, args ...any) {
	l.l.Infof(format, args...)
}

func (l *Logger) Debugf(format string, args ...any) {
	l.l.Debugf(format, args...)
}

func (l *Logger) Level() Level {
	return l.level
}
