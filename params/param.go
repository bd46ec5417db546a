package params

// Param is a single message field, consisting of a key and a value.
// A Param never changes after construction.
type Param struct {
	key   string
	value string
	null  bool
}

// NewParam returns a param with the given key and value. Neither side is validated.
func NewParam(key, value string) Param {
	return Param{key: key, value: value}
}

// NullParam returns a param which is present in a message but carries no value.
func NullParam(key string) Param {
	return Param{key: key, null: true}
}

func (p Param) Key() string {
	return p.key
}

// Value returns "" for a null param, use IsNull to tell it from an empty value.
func (p Param) Value() string {
	return p.value
}

func (p Param) IsNull() bool {
	return p.null
}

func (p Param) String() string {
	if p.null {
		return p.key
	}

	return p.key + "=" + p.value
}
