package params

import (
	"hash/crc64"
	"net/url"
	"sort"
	"strings"

	json "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var table = crc64.MakeTable(crc64.ISO)

// List is an ordered set of message params with unique keys.
//
// Set keeps the position of a key which is already present, new keys go to
// the end. A List is not safe for concurrent writes, readers may share it.
type List struct {
	entries []Param
	index   map[string]int
}

func New() *List {
	return &List{
		entries: make([]Param, 0),
		index:   map[string]int{},
	}
}

// Copy returns an independent copy of other.
func Copy(other *List) *List {
	out := &List{
		entries: make([]Param, other.Len()),
		index:   make(map[string]int, other.Len()),
	}

	if other == nil {
		return out
	}

	copy(out.entries, other.entries)
	for k, i := range other.index {
		out.index[k] = i
	}

	return out
}

// FromMap builds a list from values which are either a string or a []string.
// A slice with more than one element is rejected, an empty slice or nil gives a null param.
// Keys are added in sorted order.
func FromMap(m map[string]any) (*List, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := New()
	for _, k := range keys {
		switch v := m[k].(type) {
		case string:
			out.Set(NewParam(k, v))
		case []string:
			p, err := fromValues(k, v)
			if err != nil {
				return nil, err
			}
			out.Set(p)
		case nil:
			out.Set(NullParam(k))
		default:
			return nil, errors.Wrapf(ErrInvalidArgument, "unsupported value type %T for parameter %q", v, k)
		}
	}

	return out, nil
}

// FromValues is FromMap for url.Values.
func FromValues(values url.Values) (*List, error) {
	m := make(map[string]any, len(values))
	for k, v := range values {
		m[k] = v
	}

	return FromMap(m)
}

func fromValues(key string, values []string) (Param, error) {
	switch len(values) {
	case 0:
		return NullParam(key), nil
	case 1:
		return NewParam(key, values[0]), nil
	}

	return Param{}, errors.Wrapf(ErrInvalidArgument, "multiple values for parameter %q: %q", key, values)
}

// Clone is Copy(l).
func (l *List) Clone() *List {
	return Copy(l)
}

// CopyOf replaces the content of l with a copy of other.
func (l *List) CopyOf(other *List) *List {
	c := Copy(other)
	l.entries, l.index = c.entries, c.index

	return l
}

func (l *List) Len() int {
	if l == nil {
		return 0
	}

	return len(l.entries)
}

// Set adds p or replaces the param with the same key in place.
func (l *List) Set(p Param) *List {
	if l.index == nil {
		l.index = map[string]int{}
	}

	if i, find := l.index[p.key]; find {
		l.entries[i] = p
		return l
	}

	l.index[p.key] = len(l.entries)
	l.entries = append(l.entries, p)

	return l
}

// AddParams sets every param of other, in other's order.
func (l *List) AddParams(other *List) *List {
	for _, p := range other.Params() {
		l.Set(p)
	}

	return l
}

func (l *List) Get(key string) (Param, bool) {
	if l == nil {
		return Param{}, false
	}

	i, find := l.index[key]
	if !find {
		return Param{}, false
	}

	return l.entries[i], true
}

// Value returns the value of key. The second result is false only if key is absent,
// a null param gives ("", true).
func (l *List) Value(key string) (string, bool) {
	p, find := l.Get(key)
	return p.value, find
}

// ValuePtr is like Value but returns nil for a null param.
func (l *List) ValuePtr(key string) (*string, bool) {
	p, find := l.Get(key)
	if !find || p.null {
		return nil, find
	}

	v := p.value
	return &v, true
}

// Params returns the params in order. The slice belongs to the caller.
func (l *List) Params() []Param {
	out := make([]Param, l.Len())
	if l != nil {
		copy(out, l.entries)
	}

	return out
}

func (l *List) Keys() []string {
	out := make([]string, 0, l.Len())
	if l != nil {
		for _, p := range l.entries {
			out = append(out, p.key)
		}
	}

	return out
}

// Remove deletes key from the list. Removing an absent key does nothing.
func (l *List) Remove(key string) *List {
	if l == nil {
		return l
	}

	i, find := l.index[key]
	if !find {
		return l
	}

	delete(l.index, key)
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
	for j := i; j < len(l.entries); j++ {
		l.index[l.entries[j].key] = j
	}

	return l
}

func (l *List) Has(key string) bool {
	if l == nil {
		return false
	}

	_, find := l.index[key]
	return find
}

// Equal reports whether both lists hold the same params, whatever their order.
func (l *List) Equal(other *List) bool {
	if l.Len() != other.Len() {
		return false
	}

	for _, p := range l.Params() {
		if q, find := other.Get(p.key); !find || q != p {
			return false
		}
	}

	return true
}

// EqualOrdered is Equal which also requires the same order.
func (l *List) EqualOrdered(other *List) bool {
	if l.Len() != other.Len() {
		return false
	}

	for i, p := range l.Params() {
		if other.entries[i] != p {
			return false
		}
	}

	return true
}

// Hash is consistent with Equal: lists with the same params in any order hash alike.
func (l *List) Hash() uint64 {
	var sum uint64
	for _, p := range l.Params() {
		sum += p.hash()
	}

	return sum
}

func (p Param) hash() uint64 {
	b := make([]byte, 0, len(p.key)+len(p.value)+2)
	b = append(b, p.key...)
	b = append(b, 0)
	if p.null {
		b = append(b, 1)
	} else {
		b = append(b, 2)
		b = append(b, p.value...)
	}

	return crc64.Checksum(b, table)
}

func (l *List) String() string {
	parts := make([]string, 0, l.Len())
	for _, p := range l.Params() {
		parts = append(parts, p.String())
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

type jsonParam struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Null  bool   `json:"null,omitempty"`
}

// MarshalJSON writes the list as an ordered array of key/value objects.
func (l *List) MarshalJSON() ([]byte, error) {
	out := make([]jsonParam, 0, l.Len())
	for _, p := range l.Params() {
		out = append(out, jsonParam{Key: p.key, Value: p.value, Null: p.null})
	}

	return json.ConfigCompatibleWithStandardLibrary.Marshal(out)
}
