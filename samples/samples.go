// Package samples builds the example requests offered by the request picker:
// one request per operation the demo server understands.
package samples

import (
	"fmt"
	"strings"

	"github.com/s0up4200/jsonreq/request"
)

// Kind identifies a sample request
type Kind string

const (
	KindPost            Kind = "post"
	KindPut             Kind = "put"
	KindDelete          Kind = "delete"
	KindSingle          Kind = "single"
	KindColumns         Kind = "columns"
	KindRely            Kind = "rely"
	KindArray           Kind = "array"
	KindComplex         Kind = "complex"
	KindAccessError     Kind = "access_error"
	KindAccessPermitted Kind = "access_permitted"
)

// DefaultID is the user id used when Params.ID is zero
const DefaultID int64 = 38710

var kinds = []Kind{
	KindPost, KindPut, KindDelete,
	KindSingle, KindColumns, KindRely, KindArray, KindComplex,
	KindAccessError, KindAccessPermitted,
}

// Kinds returns every sample kind in menu order
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// ParseKind resolves a kind name, accepting '-' for '_'
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	for _, known := range kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown sample kind: %s", s)
}

// IsWrite reports whether the sample modifies data on the server
func (k Kind) IsWrite() bool {
	return k == KindPost || k == KindPut || k == KindDelete
}

// Params carries the values the picker passes along with a selection
type Params struct {
	ID  int64
	URL string
}

func (p Params) id() int64 {
	if p.ID == 0 {
		return DefaultID
	}
	return p.ID
}

// Build returns the sample request for kind
func Build(kind Kind, p Params, opts ...request.Option) (*request.Request, error) {
	switch kind {
	case KindPost:
		return buildPost(p, opts), nil
	case KindPut:
		return buildPut(p, opts), nil
	case KindDelete:
		return buildDelete(p, opts), nil
	case KindSingle:
		return buildSingle(p, opts), nil
	case KindColumns:
		return buildColumns(p, opts), nil
	case KindRely:
		return buildRely(p, opts), nil
	case KindArray:
		return buildArray(p, opts), nil
	case KindComplex:
		return buildComplex(p, opts), nil
	case KindAccessError:
		return buildAccess(p, opts, false), nil
	case KindAccessPermitted:
		return buildAccess(p, opts, true), nil
	default:
		return nil, fmt.Errorf("unknown sample kind: %s", kind)
	}
}

const sampleContent = "APIJSON, let interfaces and documents go to hell !"

func buildPost(p Params, opts []request.Option) *request.Request {
	moment := request.New(opts...)
	moment.Put("userId", p.id())
	moment.Put("content", sampleContent)
	if p.URL != "" {
		moment.Put("picture", p.URL)
	}
	return request.NewEntry("Moment", moment, opts...).SetTag("Moment")
}

func buildPut(p Params, opts []request.Option) *request.Request {
	moment := request.New(opts...)
	moment.Put("id", p.id())
	moment.Put("content", "edited: "+sampleContent)
	return request.NewEntry("Moment", moment, opts...).SetTag("Moment")
}

func buildDelete(p Params, opts []request.Option) *request.Request {
	return request.NewEntry("Moment", request.NewEntry("id", p.id(), opts...), opts...).SetTag("Moment")
}

func buildSingle(p Params, opts []request.Option) *request.Request {
	return request.NewEntry("User", request.NewEntry("id", p.id(), opts...), opts...)
}

func buildColumns(p Params, opts []request.Option) *request.Request {
	user := request.NewEntry("id", p.id(), opts...)
	user.Put(request.KeyColumn, "id,sex,name")
	return request.NewEntry("User", user, opts...)
}

func buildRely(p Params, opts []request.Option) *request.Request {
	r := request.New(opts...)
	r.Put("Moment", request.NewEntry("userId", p.id(), opts...))

	user := request.New(opts...)
	user.PutPath("id"+request.KeyRefSuffix, "Moment", "userId")
	r.Put("User", user)
	return r
}

func buildArray(p Params, opts []request.Option) *request.Request {
	user := request.NewEntry("sex", 0, opts...)
	user.PutSearchWith("name", "a", request.ContainFull)

	query := request.NewEntry("User", user, opts...)
	return query.ToArray(10, 0, "")
}

func buildComplex(p Params, opts []request.Option) *request.Request {
	query := request.New(opts...)
	query.Put("User", request.NewEntry("sex", 0, opts...))

	moment := request.New(opts...)
	moment.PutPath("userId"+request.KeyRefSuffix, request.KeyArray, "User", "id")
	query.Put("Moment", moment)

	comment := request.New(opts...)
	comment.PutPath("momentId"+request.KeyRefSuffix, request.KeyArray, "Moment", "id")
	query.Put("Comment"+request.KeyArray, request.NewEntry("Comment", comment, opts...).WithPagination(3, 0))

	return query.ToArray(3, 0, "")
}

func buildAccess(p Params, opts []request.Option, permitted bool) *request.Request {
	wallet := request.NewEntry("userId", p.id(), opts...)
	r := request.NewEntry("Wallet", wallet, opts...)
	if permitted {
		r.Put("currentUserId", p.id())
		r.SetTag("Wallet")
	}
	return r
}
