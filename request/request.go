package request

import (
	"iter"
	"strings"

	"github.com/spf13/cast"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Request is an ordered JSON object assembled into an API request. String
// values are percent-encoded when stored and decoded when read unless the
// caller opts out.
//
// A Request is not safe for concurrent use.
type Request struct {
	entries *orderedmap.OrderedMap[string, any]
	cfg     *settings
}

// New creates an empty request.
func New(opts ...Option) *Request {
	return newRequest(newSettings(opts))
}

// NewEntry creates a request holding a single encoded entry. An empty key
// selects the default key of value.
func NewEntry(key string, value any, opts ...Option) *Request {
	return NewEntryWith(key, value, true, opts...)
}

// NewEntryWith creates a request holding a single entry.
func NewEntryWith(key string, value any, encode bool, opts ...Option) *Request {
	r := New(opts...)
	r.PutWith(key, value, encode)
	return r
}

func newRequest(cfg *settings) *Request {
	return &Request{
		entries: orderedmap.New[string, any](),
		cfg:     cfg,
	}
}

// Derive creates an empty request sharing this request's options.
func (r *Request) Derive() *Request {
	return newRequest(r.cfg)
}

// SetTag sets the logical request type.
func (r *Request) SetTag(tag string) *Request {
	r.Put(KeyTag, tag)
	return r
}

// Tag returns the logical request type.
func (r *Request) Tag() string {
	return r.GetString(KeyTag)
}

// SetCount sets the page size of an array request.
func (r *Request) SetCount(count int) *Request {
	r.Put(KeyCount, count)
	return r
}

// Count returns the page size, 0 when unset.
func (r *Request) Count() int {
	return r.GetInt(KeyCount)
}

// SetPage sets the page index of an array request.
func (r *Request) SetPage(page int) *Request {
	r.Put(KeyPage, page)
	return r
}

// Page returns the page index, 0 when unset.
func (r *Request) Page() int {
	return r.GetInt(KeyPage)
}

// PutPath joins parts with '/' and stores the path under key.
func (r *Request) PutPath(key string, parts ...string) any {
	return r.Put(key, strings.Join(parts, "/"))
}

// Get returns the decoded value stored under key, nil when absent.
func (r *Request) Get(key string) any {
	return r.GetWith(key, true)
}

// GetRaw returns the value stored under key without decoding it.
func (r *Request) GetRaw(key string) any {
	return r.GetWith(key, false)
}

// GetWith returns the value stored under key. Strings are decoded when decode
// is set; a value that fails to decode is returned as stored.
func (r *Request) GetWith(key string, decode bool) any {
	value, _ := r.entries.Get(key)
	if s, ok := value.(string); ok && decode {
		return r.decode(key, s)
	}
	return value
}

// PutValue stores an encoded value under its default key.
func (r *Request) PutValue(value any) any {
	return r.PutWith("", value, true)
}

// PutValueWith stores value under its default key.
func (r *Request) PutValueWith(value any, encode bool) any {
	return r.PutWith("", value, encode)
}

// Put stores an encoded value under key.
func (r *Request) Put(key string, value any) any {
	return r.PutWith(key, value, true)
}

// PutRaw stores value under key without encoding it.
func (r *Request) PutRaw(key string, value any) any {
	return r.PutWith(key, value, false)
}

// PutWith stores value under key, replacing any previous value, and returns
// the previous raw value or nil. Strings are encoded when encode is set; a
// value that fails to encode is stored as given. An empty key selects the
// default key of value.
func (r *Request) PutWith(key string, value any, encode bool) any {
	if s, ok := value.(string); ok && encode {
		value = r.encode(key, s)
	}
	if strings.TrimSpace(key) == "" {
		key = r.cfg.defaultKey(value)
	}
	prev, _ := r.entries.Set(key, value)
	return prev
}

// PutSearch stores a ContainFull pattern for value under the search key of key.
func (r *Request) PutSearch(key, value string) any {
	return r.PutSearchWith(key, value, ContainFull)
}

// PutSearchWith stores the pattern for value under key with SearchSuffix
// appended when missing.
func (r *Request) PutSearchWith(key, value string, mode SearchMode) any {
	return r.Put(SearchKey(key), Search(value, mode))
}

// Remove deletes key and returns its raw value.
func (r *Request) Remove(key string) any {
	prev, _ := r.entries.Delete(key)
	return prev
}

// Has reports whether key is present.
func (r *Request) Has(key string) bool {
	_, ok := r.entries.Get(key)
	return ok
}

// Len returns the number of entries.
func (r *Request) Len() int {
	return r.entries.Len()
}

// Keys returns the keys in insertion order.
func (r *Request) Keys() []string {
	keys := make([]string, 0, r.entries.Len())
	for pair := r.entries.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// All iterates over the raw entries in insertion order.
func (r *Request) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for pair := r.entries.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Decoded iterates over the entries in insertion order with strings decoded.
func (r *Request) Decoded() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for pair := r.entries.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, r.GetWith(pair.Key, true)) {
				return
			}
		}
	}
}

// GetString returns the decoded value under key as a string.
func (r *Request) GetString(key string) string {
	return cast.ToString(r.Get(key))
}

// GetInt returns the value under key as an int, 0 when absent or not numeric.
func (r *Request) GetInt(key string) int {
	return cast.ToInt(r.Get(key))
}

// GetBool returns the value under key as a bool.
func (r *Request) GetBool(key string) bool {
	return cast.ToBool(r.Get(key))
}

// GetObject returns the nested request under key, nil when absent or of another type.
func (r *Request) GetObject(key string) *Request {
	obj, _ := r.GetRaw(key).(*Request)
	return obj
}

// Child returns the nested request under key, creating it when absent.
func (r *Request) Child(key string) *Request {
	if obj := r.GetObject(key); obj != nil {
		return obj
	}
	obj := r.Derive()
	r.PutRaw(key, obj)
	return obj
}

// Fallbacks returns how many values were stored or read untransformed
// because the codec failed. The count covers this request and every request
// derived from it or parsed with it, such as array wrappers and child objects.
func (r *Request) Fallbacks() int {
	return r.cfg.fallbacks
}

func (r *Request) encode(key, s string) string {
	res := r.cfg.codec.Encode(s)
	if res.Fallback {
		r.cfg.fallbacks++
		r.cfg.logger.Warn().
			Err(res.Err).
			Str("key", key).
			Msg("Failed to encode value, storing it unencoded")
	}
	return res.Value
}

func (r *Request) decode(key, s string) string {
	res := r.cfg.codec.Decode(s)
	if res.Fallback {
		r.cfg.fallbacks++
		r.cfg.logger.Warn().
			Err(res.Err).
			Str("key", key).
			Msg("Failed to decode value, returning it as stored")
	}
	return res.Value
}
