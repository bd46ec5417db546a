package config

import (
	"io"
	"os"
	"sync"

	"github.com/iostrovok/openidparams/logger/level"
)

// Default field names, every one of them may be renamed with StdKeys.
const (
	DefaultTimestampFormat = "2006-01-02T15:04:05.999Z"

	MessageField      = "message"
	ErrorMessageField = "error.message"
	TimestampField    = "@timestamp"
	LevelField        = "@level"
	ParamsField       = "params" // decoded message params
)

type Config struct {
	sync.RWMutex

	level      level.Level
	writer     io.Writer
	FieldsKeys map[string]string
}

func NewConfig() *Config {
	return &Config{
		writer: os.Stdout,
		level:  level.InfoLevel,

		FieldsKeys: map[string]string{
			MessageField:      MessageField,
			ErrorMessageField: ErrorMessageField,
			TimestampField:    TimestampField,
			LevelField:        LevelField,
			ParamsField:       ParamsField,
		},
	}
}

func (cf *Config) Clone() *Config {
	cf.RLock()
	defer cf.RUnlock()

	out := &Config{
		writer:     cf.writer,
		level:      cf.level,
		FieldsKeys: make(map[string]string, len(cf.FieldsKeys)),
	}

	for k, v := range cf.FieldsKeys {
		out.FieldsKeys[k] = v
	}

	return out
}

// CurrentKey returns the name the field is written under.
func (cf *Config) CurrentKey(key string) string {
	cf.RLock()
	defer cf.RUnlock()

	if current, find := cf.FieldsKeys[key]; find {
		return current
	}

	return key
}

func (cf *Config) Level() level.Level {
	cf.RLock()
	defer cf.RUnlock()

	return cf.level
}

func (cf *Config) SetLevel(lvl level.Level) *Config {
	cf.Lock()
	defer cf.Unlock()

	cf.level = lvl
	return cf
}

func (cf *Config) Writer() io.Writer {
	cf.RLock()
	defer cf.RUnlock()

	return cf.writer
}

func (cf *Config) SetWriter(writer io.Writer) *Config {
	cf.Lock()
	defer cf.Unlock()

	cf.writer = writer
	return cf
}

// StdKeys renames a standard field and returns its previous name,
// or "" if key is not a standard field.
func (cf *Config) StdKeys(key, value string) string {
	if key == "" || value == "" {
		return ""
	}

	cf.Lock()
	defer cf.Unlock()

	old, find := cf.FieldsKeys[key]
	if !find {
		return ""
	}

	cf.FieldsKeys[key] = value
	return old
}

func (cf *Config) LevelKey(key string) *Config {
	_ = cf.StdKeys(LevelField, key)
	return cf
}

func (cf *Config) ErrorMessageKey(key string) *Config {
	_ = cf.StdKeys(ErrorMessageField, key)
	return cf
}

func (cf *Config) MessageKey(key string) *Config {
	_ = cf.StdKeys(MessageField, key)
	return cf
}
