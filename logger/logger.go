package logger

import (
	"io"
	"sync"

	"github.com/pkg/errors"

	"github.com/iostrovok/openidparams/logger/config"
	"github.com/iostrovok/openidparams/logger/level"
	"github.com/iostrovok/openidparams/params"
)

// Logger collects fields for one entry and writes it as a JSON line.
type Logger struct {
	sync.Mutex
	config *config.Config

	err    error
	params *params.List
	Fields Fields
}

func New() *Logger {
	return &Logger{
		Fields: Fields{},
		config: config.NewConfig(),
	}
}

func (l *Logger) SetConfig(cf *config.Config) *Logger {
	n := cf.Clone()

	l.Lock()
	defer l.Unlock()

	l.config = n
	return l
}

func (l *Logger) Config() *config.Config {
	l.Lock()
	defer l.Unlock()

	return l.config.Clone()
}

func (l *Logger) Clone() *Logger {
	l.Lock()
	defer l.Unlock()

	out := &Logger{
		Fields: l.Fields.Clone(),
		config: l.config.Clone(),
		err:    l.err,
	}

	if l.params != nil {
		out.params = l.params.Clone()
	}

	return out
}

func (l *Logger) Add(key string, value any) *Logger {
	l.Lock()
	defer l.Unlock()

	l.Fields[key] = value
	return l
}

// AddDebug adds the field only if the logger writes debug entries.
func (l *Logger) AddDebug(key string, value any) *Logger {
	if !l.IsDebug() {
		return l
	}

	return l.Add(key, value)
}

func (l *Logger) Merge(m map[string]any) *Logger {
	l.Lock()
	defer l.Unlock()

	l.Fields = l.Fields.Merge(m)
	return l
}

// Params attaches a copy of the message params, written in their order.
func (l *Logger) Params(list *params.List) *Logger {
	l.Lock()
	defer l.Unlock()

	l.params = nil
	if list != nil {
		l.params = list.Clone()
	}

	return l
}

func (l *Logger) Writer(writer io.Writer) *Logger {
	l.config.SetWriter(writer)
	return l
}

func (l *Logger) IsDebug() bool {
	return l.config.Level() >= level.DebugLevel
}

func (l *Logger) SetLevel(lvl level.Level) *Logger {
	l.config.SetLevel(lvl)
	return l
}

func (l *Logger) Level() level.Level {
	return l.config.Level()
}

func (l *Logger) Error(err error) *Logger {
	if err == nil {
		return l
	}

	l.Lock()
	defer l.Unlock()

	if l.err == nil {
		l.err = err
	} else {
		l.err = errors.Wrap(l.err, err.Error())
	}

	return l
}
