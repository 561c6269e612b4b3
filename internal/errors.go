package internal

import (
	"errors"
	"fmt"
)

// Codec errors.
var (
	ErrEmptyToken     = errors.New("cookiepack: empty token")
	ErrInvalidToken   = errors.New("cookiepack: token is not base58")
	ErrInvalidPayload = errors.New("cookiepack: token payload is not a JSON object of strings")
)

// CodecError reports a failure to encode or decode an aggregate cookie token.
type CodecError struct {
	Err error  // Underlying cause, one of the Err* sentinels possibly wrapping a library error
	Op  string // "encode" or "decode"
}

// Error implements the error interface.
func (e *CodecError) Error() string {
	return fmt.Sprintf("%s aggregate cookie: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause.
func (e *CodecError) Unwrap() error {
	return e.Err
}

// IsCodecError returns true if the error is a CodecError.
func IsCodecError(err error) bool {
	var ce *CodecError
	return errors.As(err, &ce)
}

// AsCodecError extracts the CodecError from an error if present.
func AsCodecError(err error) (*CodecError, bool) {
	var ce *CodecError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
