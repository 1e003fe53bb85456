package request

import (
	"errors"
	"fmt"
)

// Common errors reported by the codec and the parser.
var (
	// ErrEncode indicates a value could not be percent-encoded
	ErrEncode = errors.New("percent-encode failed")
	// ErrDecode indicates a value could not be percent-decoded
	ErrDecode = errors.New("percent-decode failed")
	// ErrInvalidUTF8 indicates the input or decoded output is not valid UTF-8
	ErrInvalidUTF8 = errors.New("invalid UTF-8")
	// ErrNotObject indicates the parsed JSON document is not an object
	ErrNotObject = errors.New("JSON value is not an object")
	// ErrTrailingData indicates content follows the parsed JSON object
	ErrTrailingData = errors.New("unexpected data after JSON object")
)

// ParseError represents a failure to read a JSON request back into a Request
type ParseError struct {
	Offset int // -1 if the offset is unknown
	Err    error
}

func (e *ParseError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("parse error at offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("parse error: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
