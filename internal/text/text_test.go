package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var spaceData = map[string]string{
	"asd":                     "asd",
	"   ":                     "",
	"\n":                      "",
	"   q\n\r":                "q",
	"  Super header \n ":      "Super header",
	"\r\t  Super\nheader \n ": "Super\nheader",
}

func TestTrimString(t *testing.T) {
	for in, out := range spaceData {
		assert.Equal(t, out, TrimString(in), in+" => "+out)
	}
}

func TestTokens(t *testing.T) {
	data := map[string][]string{
		"":          {},
		"&":         {},
		"&&&":       {},
		"a":         {"a"},
		"a&b":       {"a", "b"},
		"&a&&b&":    {"a", "b"},
		"a=1&b=2&c": {"a=1", "b=2", "c"},
	}

	for in, out := range data {
		assert.Equal(t, out, Tokens(in, '&'), in)
	}

	assert.Equal(t, []string{"a:1", "b:2:3"}, Tokens("a:1\n\nb:2:3\n", '\n'))
}

func TestMediaType(t *testing.T) {
	assert.Equal(t, "text/plain", MediaType("text/plain"))
	assert.Equal(t, "text/plain", MediaType(" Text/Plain ; charset=UTF-8"))
	assert.Equal(t, "application/x-www-form-urlencoded", MediaType("application/x-www-form-urlencoded"))
	assert.Equal(t, "", MediaType(""))
}
