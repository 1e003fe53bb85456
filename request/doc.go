// Package request builds JSON request objects for APIJSON-style query servers.
//
// A Request is an ordered object: keys keep their insertion order so the
// serialized request reads the way it was assembled. String values are
// percent-encoded as they are stored and decoded as they are read back, so a
// value can carry path separators, search wildcards or non-ASCII text without
// being misread by the server.
//
// # Features
//
//   - Ordered entries with replace-and-return-previous Put semantics
//   - Transparent percent-encoding with per-call opt-out (PutRaw, GetRaw)
//   - Typed accessors for the tag, count and page keys
//   - Path values for cross-object references ("User/id")
//   - Array wrapping under "<name>[]" with pagination
//   - Search patterns for the "<field>$" fuzzy-match keys
//   - Ordered JSON read-back with Parse
//
// # Usage
//
//	user := request.New()
//	user.Put("sex", 0)
//	user.PutSearch("name", "Tom")
//
//	query := request.New()
//	query.PutRaw("User", user)
//
//	// {"[]":{"User":{"sex":0,"name$":"%25Tom%25"},"count":10,"page":0}}
//	data, err := json.Marshal(query.ToArray(10, 0, ""))
//
// # Error Handling
//
// Building a request never fails. When the codec cannot encode or decode a
// value the value is kept as given, the failure is logged at warn level and
// counted in Fallbacks. Codec implementations report this through Result.
package request
