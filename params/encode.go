package params

import (
	"net/url"
	"strings"
)

// QueryString encodes the list as "k1=v1&k2=v2" in list order.
// A null value is written as an empty one.
func (l *List) QueryString() string {
	var sb strings.Builder

	for i, p := range l.Params() {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.value))
	}

	return sb.String()
}

// KeyValueForm encodes the list as "key:value\n" lines in list order.
// Keys with ':' or '\n' and values with '\n' don't survive a round trip, callers check that.
func (l *List) KeyValueForm() string {
	var sb strings.Builder

	for _, p := range l.Params() {
		sb.WriteString(p.key)
		sb.WriteByte(':')
		sb.WriteString(p.value)
		sb.WriteByte('\n')
	}

	return sb.String()
}
