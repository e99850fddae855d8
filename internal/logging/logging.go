package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level is the minimum severity for messages to be written.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelNone
)

var levelNames = map[string]Level{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warning": LevelWarning,
	"warn":    LevelWarning,
	"error":   LevelError,
	"none":    LevelNone,
}

// ParseLevel looks up a level by its name (case insensitive).
func ParseLevel(s string) (Level, error) {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return LevelNone, fmt.Errorf("unknown log level %q", s)
	}
	return l, nil
}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "none"
	}
}

// loggers in ascending order of severity, indexed by Level.
var loggers [LevelNone]*log.Logger

var output io.Writer = os.Stderr

func init() {
	flags := log.Ldate | log.Ltime | log.LUTC
	prefixes := [LevelNone]string{"D ", "I ", "W ", "E "}
	for i := range loggers {
		loggers[i] = log.New(io.Discard, prefixes[i], flags)
	}

	SetLevel(LevelWarning)
}

// SetLevel enables all loggers at or above the given level
// and silences the rest.
func SetLevel(l Level) {
	for i, lg := range loggers {
		if Level(i) >= l {
			lg.SetOutput(output)
		} else {
			lg.SetOutput(io.Discard)
		}
	}
}

// SetOutput redirects enabled loggers to w.
// The current level is kept.
func SetOutput(w io.Writer) {
	var lvl Level = LevelNone
	for i, lg := range loggers {
		if lg.Writer() != io.Discard {
			lvl = Level(i)
			break
		}
	}
	output = w
	SetLevel(lvl)
}

func Debug(msg string, v ...interface{}) {
	loggers[LevelDebug].Printf(msg, v...)
}

func Info(msg string, v ...interface{}) {
	loggers[LevelInfo].Printf(msg, v...)
}

func Warning(msg string, v ...interface{}) {
	loggers[LevelWarning].Printf(msg, v...)
}

func Error(msg string, v ...interface{}) {
	loggers[LevelError].Printf(msg, v...)
}
