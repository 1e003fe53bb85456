package request

// Well-known keys
const (
	KeyTag   = "tag"
	KeyCount = "count"
	KeyPage  = "page"

	// KeyArray is appended to a name to mark a paginated array sub-request
	KeyArray = "[]"
	// SearchSuffix marks a key whose value is a search pattern
	SearchSuffix = "$"

	// KeyColumn selects the returned columns of a table object
	KeyColumn = "@column"
	// KeyRefSuffix marks a key whose value is a path to another value in the response
	KeyRefSuffix = "@"
)

// DefaultKeyFunc resolves the key used when a value is stored without one.
type DefaultKeyFunc func(value any) string

// DefaultKey maps each supported value variant to its canonical key.
func DefaultKey(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "String"
	case bool:
		return "Boolean"
	case int, int8, int16, int32, uint8, uint16:
		return "Integer"
	case int64, uint32:
		return "Long"
	case float32:
		return "Float"
	case float64:
		return "Double"
	case *Request:
		return "JSONRequest"
	case []any, []string, []int, []*Request:
		return "JSONArray"
	case map[string]any:
		return "JSONObject"
	default:
		return "Object"
	}
}
