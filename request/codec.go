package request

import (
	"fmt"
	"net/url"
	"unicode/utf8"
)

// Codec transforms string values on their way into and out of a Request.
type Codec interface {
	// Encode transforms a value before it is stored
	Encode(s string) Result
	// Decode reverses Encode when a value is read back
	Decode(s string) Result
}

// Result carries the outcome of a codec transform. When Fallback is set the
// transform failed, Value holds the untouched input and Err says why.
type Result struct {
	Value    string
	Fallback bool
	Err      error
}

func fallback(s string, err error) Result {
	return Result{Value: s, Fallback: true, Err: err}
}

// URLCodec applies HTML form percent-encoding over UTF-8, the form the
// server-side decoder expects. Spaces encode as '+'.
type URLCodec struct{}

// Encode percent-encodes s. Input that is not valid UTF-8 cannot be
// represented in the target charset and is returned as a fallback.
func (URLCodec) Encode(s string) Result {
	if !utf8.ValidString(s) {
		return fallback(s, fmt.Errorf("%w: %w", ErrEncode, ErrInvalidUTF8))
	}
	return Result{Value: url.QueryEscape(s)}
}

// Decode percent-decodes s.
func (URLCodec) Decode(s string) Result {
	v, err := url.QueryUnescape(s)
	if err != nil {
		return fallback(s, fmt.Errorf("%w: %w", ErrDecode, err))
	}
	if !utf8.ValidString(v) {
		return fallback(s, fmt.Errorf("%w: %w", ErrDecode, ErrInvalidUTF8))
	}
	return Result{Value: v}
}

// NopCodec stores and returns strings unchanged.
type NopCodec struct{}

func (NopCodec) Encode(s string) Result { return Result{Value: s} }
func (NopCodec) Decode(s string) Result { return Result{Value: s} }
