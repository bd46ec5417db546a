package text

import "strings"

// Tokens splits s by sep and returns only non-empty segments,
// so "a&&b&" gives [a b].
func Tokens(s string, sep byte) []string {
	out := make([]string, 0, strings.Count(s, string(sep))+1)

	for len(s) > 0 {
		i := strings.IndexByte(s, sep)
		if i == -1 {
			out = append(out, s)
			break
		}

		if i > 0 {
			out = append(out, s[:i])
		}
		s = s[i+1:]
	}

	return out
}

// TrimString returns s without leading and trailing ASCII space.
func TrimString(s string) string {
	i := 0
	j := len(s)

	for i < j && isASCIISpace(s[i]) {
		i++
	}

	for j > i && isASCIISpace(s[j-1]) {
		j--
	}

	if i > 0 || j != len(s) {
		return s[i:j]
	}

	return s
}

// MediaType returns the lower-cased media type of a Content-Type value, without parameters.
func MediaType(contentType string) string {
	if i := strings.IndexByte(contentType, ';'); i != -1 {
		contentType = contentType[:i]
	}

	return strings.ToLower(TrimString(contentType))
}

func isASCIISpace(b byte) bool {
	return b == '\n' || b == '\r' || b == ' ' || b == '\t'
}
