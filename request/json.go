package request

import (
	"bytes"
	"fmt"

	"github.com/buger/jsonparser"
)

// MarshalJSON writes the entries in insertion order. Values are written as
// stored, so encoded strings stay encoded on the wire.
func (r *Request) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}
	return r.entries.MarshalJSON()
}

// String returns the JSON form of the request.
func (r *Request) String() string {
	data, err := r.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("!request(%v)", err)
	}
	return string(data)
}

// Parse reads a JSON object into a Request, keeping key order. Nested objects
// become *Request, arrays []any and integral numbers int. Strings are stored
// exactly as they appear on the wire.
func Parse(data []byte, opts ...Option) (*Request, error) {
	_, _, end, err := jsonparser.Get(data)
	if err != nil {
		return nil, &ParseError{Offset: -1, Err: err}
	}
	if rest := bytes.TrimSpace(data[end:]); len(rest) > 0 {
		return nil, &ParseError{Offset: end, Err: ErrTrailingData}
	}
	return parseObject(data, newSettings(opts))
}

func parseObject(data []byte, cfg *settings) (*Request, error) {
	_, dataType, offset, err := jsonparser.Get(data)
	if err != nil {
		return nil, &ParseError{Offset: -1, Err: err}
	}
	if dataType != jsonparser.Object {
		return nil, &ParseError{Offset: offset, Err: fmt.Errorf("%w: got %s", ErrNotObject, dataType)}
	}

	r := newRequest(cfg)
	err = jsonparser.ObjectEach(data, func(key, value []byte, dataType jsonparser.ValueType, offset int) error {
		v, err := parseValue(value, dataType, offset, cfg)
		if err != nil {
			return err
		}
		// keys arrive unescaped
		r.entries.Set(string(key), v)
		return nil
	})
	if err != nil {
		if _, ok := err.(*ParseError); ok {
			return nil, err
		}
		return nil, &ParseError{Offset: -1, Err: err}
	}
	return r, nil
}

func parseValue(value []byte, dataType jsonparser.ValueType, offset int, cfg *settings) (any, error) {
	switch dataType {
	case jsonparser.String:
		s, err := jsonparser.ParseString(value)
		if err != nil {
			return nil, &ParseError{Offset: offset, Err: err}
		}
		return s, nil
	case jsonparser.Number:
		if n, err := jsonparser.ParseInt(value); err == nil {
			return int(n), nil
		}
		f, err := jsonparser.ParseFloat(value)
		if err != nil {
			return nil, &ParseError{Offset: offset, Err: err}
		}
		return f, nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(value)
		if err != nil {
			return nil, &ParseError{Offset: offset, Err: err}
		}
		return b, nil
	case jsonparser.Null:
		return nil, nil
	case jsonparser.Object:
		return parseObject(value, cfg)
	case jsonparser.Array:
		items := []any{}
		var itemErr error
		_, err := jsonparser.ArrayEach(value, func(item []byte, itemType jsonparser.ValueType, itemOffset int, err error) {
			if itemErr != nil {
				return
			}
			if err != nil {
				itemErr = err
				return
			}
			v, err := parseValue(item, itemType, offset+itemOffset, cfg)
			if err != nil {
				itemErr = err
				return
			}
			items = append(items, v)
		})
		if itemErr == nil {
			itemErr = err
		}
		if itemErr != nil {
			if _, ok := itemErr.(*ParseError); ok {
				return nil, itemErr
			}
			return nil, &ParseError{Offset: offset, Err: itemErr}
		}
		return items, nil
	default:
		return nil, &ParseError{Offset: offset, Err: fmt.Errorf("unsupported value type %s", dataType)}
	}
}
