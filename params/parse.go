package params

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/iostrovok/openidparams/internal/text"
)

var errInvalidUTF8 = errors.New("invalid UTF-8")

// FromQueryString parses a URL encoded query string: "k1=v1&k2=v2".
// Empty segments are skipped, a repeated key keeps its first position and its last value.
// On error the result is nil, the error is a *MalformedError.
func FromQueryString(query string) (*List, error) {
	out := New()

	for _, token := range text.Tokens(query, '&') {
		i := strings.IndexByte(token, '=')
		if i == -1 {
			return nil, newMalformed(token, reasonMissingEqual, nil)
		}

		key, err := unescape(token, token[:i])
		if err != nil {
			return nil, err
		}

		value, err := unescape(token, token[i+1:])
		if err != nil {
			return nil, err
		}

		out.Set(NewParam(key, value))
	}

	return out, nil
}

// unescape decodes one side of a query token, the result must be valid UTF-8.
func unescape(token, s string) (string, error) {
	out, err := url.QueryUnescape(s)
	if err != nil {
		return "", newMalformed(token, reasonDecode, err)
	}

	if !utf8.ValidString(out) {
		return "", newMalformed(token, reasonDecode, errInvalidUTF8)
	}

	return out, nil
}

// FromKeyValueForm parses newline separated "key:value" lines. Nothing is decoded,
// the value is everything after the first colon.
func FromKeyValueForm(form string) (*List, error) {
	out := New()

	for _, line := range text.Tokens(form, '\n') {
		i := strings.IndexByte(line, ':')
		if i == -1 {
			return nil, newMalformed(line, reasonMissingColon, nil)
		}

		out.Set(NewParam(line[:i], line[i+1:]))
	}

	return out, nil
}
