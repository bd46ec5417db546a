package logger

import (
	"fmt"
	"os"

	json "github.com/json-iterator/go"
)

// Fields type, used to pass to `Merge`.
type Fields map[string]any

// Json returns one JSON line.
func (f Fields) Json() []byte {
	out, err := json.ConfigCompatibleWithStandardLibrary.Marshal(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return []byte{}
	}

	return append(out, '\n')
}

func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for key, data := range f {
		out[key] = data
	}

	return out
}

func (f Fields) Merge(m map[string]any) Fields {
	for key, data := range m {
		f[key] = data
	}

	return f
}
