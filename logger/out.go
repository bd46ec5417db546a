package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/iostrovok/openidparams/logger/config"
	"github.com/iostrovok/openidparams/logger/level"
)

func (l *Logger) Log(lvl level.Level) {
	l.log(lvl, "", false)
}

func (l *Logger) Logf(lvl level.Level, format string, data ...any) {
	l.log(lvl, fmt.Sprintf(format, data...), true)
}

func (l *Logger) log(lvl level.Level, message string, withMessage bool) {
	if lvl > l.config.Level() {
		return
	}

	l.Lock()
	out := l.Fields.Clone()
	if withMessage {
		out[l.config.CurrentKey(config.MessageField)] = message
	}

	out[l.config.CurrentKey(config.TimestampField)] = time.Now().UTC().Format(config.DefaultTimestampFormat)
	out[l.config.CurrentKey(config.LevelField)] = lvl.String()
	if l.err != nil {
		out[l.config.CurrentKey(config.ErrorMessageField)] = l.err.Error()
	} else {
		out[l.config.CurrentKey(config.ErrorMessageField)] = ""
	}

	if l.params != nil {
		out[l.config.CurrentKey(config.ParamsField)] = l.params
	}
	l.Unlock()

	if _, err := l.config.Writer().Write(out.Json()); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
	}
}

func (l *Logger) Tracef(format string, data ...any) {
	l.Logf(level.TraceLevel, format, data...)
}

func (l *Logger) Debugf(format string, data ...any) {
	l.Logf(level.DebugLevel, format, data...)
}

func (l *Logger) Infof(format string, data ...any) {
	l.Logf(level.InfoLevel, format, data...)
}

func (l *Logger) Printf(format string, data ...any) {
	l.Logf(level.InfoLevel, format, data...)
}

func (l *Logger) Warnf(format string, data ...any) {
	l.Logf(level.WarnLevel, format, data...)
}

func (l *Logger) Errorf(format string, data ...any) {
	l.Logf(level.ErrorLevel, format, data...)
}
