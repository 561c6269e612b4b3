package internal

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/mr-tron/base58"

	"github.com/dmitrymomot/cookiepack/pkg/cookie"
)

// MaxTokenLength bounds the tokens Decode accepts. Browsers drop cookies past
// cookie.MaxSize, and base58 decoding is quadratic in the input length.
const MaxTokenLength = 2 * cookie.MaxSize

// Encode packs the jar into an aggregate cookie token: the JSON object of the
// jar rendered in the base58 alphabet, which needs no cookie-value quoting.
// A nil jar encodes as an empty object.
func Encode(j Jar) string {
	if j == nil {
		j = Jar{}
	}
	// Marshal cannot fail for map[string]string.
	payload, _ := json.Marshal(map[string]string(j))
	return base58.Encode(payload)
}

// Decode unpacks an aggregate cookie token produced by Encode.
// Tokens longer than MaxTokenLength are rejected without decoding.
// All failures are returned as *CodecError.
func Decode(token string) (Jar, error) {
	if token == "" {
		return nil, &CodecError{Op: "decode", Err: ErrEmptyToken}
	}

	if len(token) > MaxTokenLength {
		return nil, &CodecError{Op: "decode", Err: fmt.Errorf("%w: longer than %d bytes", ErrInvalidToken, MaxTokenLength)}
	}

	payload, err := base58.Decode(token)
	if err != nil {
		return nil, &CodecError{Op: "decode", Err: fmt.Errorf("%w: %w", ErrInvalidToken, err)}
	}

	if !utf8.Valid(payload) {
		return nil, &CodecError{Op: "decode", Err: ErrInvalidPayload}
	}

	var jar Jar
	if err := json.Unmarshal(payload, &jar); err != nil {
		return nil, &CodecError{Op: "decode", Err: fmt.Errorf("%w: %w", ErrInvalidPayload, err)}
	}
	// JSON null unmarshals into a nil map without error.
	if jar == nil {
		return nil, &CodecError{Op: "decode", Err: ErrInvalidPayload}
	}

	return jar, nil
}
