package params

import (
	"strconv"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument is returned when an in-memory structure handed to a
	// constructor can't be turned into a list, e.g. several values for one name.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMalformedMessage is returned when raw message text breaks the grammar
	// of its encoding.
	ErrMalformedMessage = errors.New("malformed message")
)

const (
	reasonMissingEqual = "missing '=' in token"
	reasonMissingColon = "missing ':' in line"
	reasonDecode       = "decode error"
)

// MalformedError describes a token or line which could not be parsed.
type MalformedError struct {
	Input  string // offending token or line
	Reason string
	Cause  error // decoding error, if any
}

func newMalformed(input, reason string, cause error) *MalformedError {
	return &MalformedError{Input: input, Reason: reason, Cause: cause}
}

func (e *MalformedError) Error() string {
	out := ErrMalformedMessage.Error() + ": " + e.Reason + ": " + strconv.Quote(e.Input)
	if e.Cause != nil {
		out += ": " + e.Cause.Error()
	}

	return out
}

func (e *MalformedError) Unwrap() error {
	return e.Cause
}

func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformedMessage
}
