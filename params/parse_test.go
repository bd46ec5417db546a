package params

import (
	"net/url"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromQueryString(t *testing.T) {
	l, err := FromQueryString("a=1&b=2")
	require.NoError(t, err)
	assert.Equal(t, []Param{NewParam("a", "1"), NewParam("b", "2")}, l.Params())
}

func TestFromQueryStringLastWins(t *testing.T) {
	l, err := FromQueryString("a=1&b=2&a=3")
	require.NoError(t, err)
	assert.Equal(t, []Param{NewParam("a", "3"), NewParam("b", "2")}, l.Params())

	l, err = FromQueryString("a=1&a=2")
	require.NoError(t, err)
	assert.Equal(t, []Param{NewParam("a", "2")}, l.Params())
}

func TestFromQueryStringTokens(t *testing.T) {
	data := map[string][]Param{
		"":           {},
		"&&":         {},
		"&a=1&&b=2&": {NewParam("a", "1"), NewParam("b", "2")},
		"a=":         {NewParam("a", "")},
		"=1":         {NewParam("", "1")},
		"a=b=c":      {NewParam("a", "b=c")},
		"openid.return_to=http%3A%2F%2Fexample.com%2F%3Fx%3D1": {NewParam("openid.return_to", "http://example.com/?x=1")},
		"k+1=v+1%20%2B":           {NewParam("k 1", "v 1 +")},
		"name=%D0%B8%D0%BC%D1%8F": {NewParam("name", "имя")},
	}

	for in, out := range data {
		l, err := FromQueryString(in)
		require.NoError(t, err, in)
		assert.Equal(t, out, l.Params(), in)
	}
}

func TestFromQueryStringMissingEqual(t *testing.T) {
	l, err := FromQueryString("a1")
	assert.Nil(t, l)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedMessage))
	assert.EqualError(t, err, `malformed message: missing '=' in token: "a1"`)

	var malformed *MalformedError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "a1", malformed.Input)
	assert.Nil(t, malformed.Cause)

	// nothing is returned even if the first tokens were fine
	l, err = FromQueryString("a=1&b=2&c")
	assert.Nil(t, l)
	assert.True(t, errors.Is(err, ErrMalformedMessage))
}

func TestFromQueryStringDecodeError(t *testing.T) {
	for _, in := range []string{"a=%zz", "%g1=b", "a=1&b=%"} {
		l, err := FromQueryString(in)
		assert.Nil(t, l, in)
		assert.True(t, errors.Is(err, ErrMalformedMessage), in)

		var malformed *MalformedError
		require.True(t, errors.As(err, &malformed), in)
		assert.Equal(t, reasonDecode, malformed.Reason, in)

		var escape url.EscapeError
		assert.True(t, errors.As(err, &escape), in)
	}
}

func TestFromQueryStringInvalidUTF8(t *testing.T) {
	for _, in := range []string{"a=%FF%FE", "%C3=1", "a=1&b=%E2%82"} {
		l, err := FromQueryString(in)
		assert.Nil(t, l, in)
		assert.True(t, errors.Is(err, ErrMalformedMessage), in)

		var malformed *MalformedError
		require.True(t, errors.As(err, &malformed), in)
		assert.Equal(t, reasonDecode, malformed.Reason, in)
		assert.True(t, errors.Is(err, errInvalidUTF8), in)
	}

	l, err := FromQueryString("a=%E2%82%AC")
	require.NoError(t, err)
	v, _ := l.Value("a")
	assert.Equal(t, "€", v)
}

func TestFromKeyValueForm(t *testing.T) {
	l, err := FromKeyValueForm("a:1\nb:2:3")
	require.NoError(t, err)
	assert.Equal(t, []Param{NewParam("a", "1"), NewParam("b", "2:3")}, l.Params())

	l, err = FromKeyValueForm("\nns:http://specs.openid.net/auth/2.0\n\nmode:error\nmode:id_res\n")
	require.NoError(t, err)
	assert.Equal(t, []Param{
		NewParam("ns", "http://specs.openid.net/auth/2.0"),
		NewParam("mode", "id_res"),
	}, l.Params())

	// no decoding and no trimming
	l, err = FromKeyValueForm("a%20: b+c ")
	require.NoError(t, err)
	assert.Equal(t, []Param{NewParam("a%20", " b+c ")}, l.Params())

	l, err = FromKeyValueForm("")
	require.NoError(t, err)
	assert.Equal(t, 0, l.Len())
}

func TestFromKeyValueFormMissingColon(t *testing.T) {
	l, err := FromKeyValueForm("a:1\nbroken\nc:3")
	assert.Nil(t, l)
	assert.True(t, errors.Is(err, ErrMalformedMessage))
	assert.EqualError(t, err, `malformed message: missing ':' in line: "broken"`)
}

func TestQueryStringRoundTrip(t *testing.T) {
	data := []string{
		"a=1&b=2",
		"openid.mode=checkid_setup&openid.return_to=http%3A%2F%2Fexample.com%2F%3Fx%3D1%26y%3D2",
		"k+1=v+1%20%2B&empty=&name=%D0%B8%D0%BC%D1%8F",
		"a=1&a=2&b=3",
	}

	for _, in := range data {
		l, err := FromQueryString(in)
		require.NoError(t, err, in)

		back, err := FromQueryString(l.QueryString())
		require.NoError(t, err, in)
		assert.True(t, l.EqualOrdered(back), in)
	}

	assert.Equal(t, "a=1&b=x+y%26", list("a", "1", "b", "x y&").QueryString())
	assert.Equal(t, "", New().QueryString())
}

func TestKeyValueFormEncode(t *testing.T) {
	l := list("ns", "http://specs.openid.net/auth/2.0", "mode", "error")
	l.Set(NullParam("contact"))

	assert.Equal(t, "ns:http://specs.openid.net/auth/2.0\nmode:error\ncontact:\n", l.KeyValueForm())

	back, err := FromKeyValueForm(l.KeyValueForm())
	require.NoError(t, err)
	assert.True(t, back.EqualOrdered(list("ns", "http://specs.openid.net/auth/2.0", "mode", "error", "contact", "")))
}
