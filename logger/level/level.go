package level

import (
	"strings"

	"github.com/pkg/errors"
)

// Level is a logging severity, lower is more severe.
type Level int

const (
	PanicLevel Level = iota
	FatalLevel
	ErrorLevel
	WarnLevel
	InfoLevel
	DebugLevel
	TraceLevel
)

var names = [...]string{
	PanicLevel: "panic",
	FatalLevel: "fatal",
	ErrorLevel: "error",
	WarnLevel:  "warning",
	InfoLevel:  "info",
	DebugLevel: "debug",
	TraceLevel: "trace",
}

// String converts the Level to a string. E.g. PanicLevel becomes "panic".
func (l Level) String() string {
	if l < PanicLevel || l > TraceLevel {
		return "unknown"
	}

	return names[l]
}

// Parse is the inverse of String, "warn" is accepted too.
func Parse(lvl string) (Level, error) {
	lvl = strings.ToLower(lvl)
	if lvl == "warn" {
		return WarnLevel, nil
	}

	for i, name := range names {
		if name == lvl {
			return Level(i), nil
		}
	}

	return -1, errors.Errorf("not a valid log level: %q", lvl)
}
