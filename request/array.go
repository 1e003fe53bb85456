package request

// WithPagination sets count and page on the request and returns it.
func (r *Request) WithPagination(count, page int) *Request {
	return r.SetCount(count).SetPage(page)
}

// WrapAsArray returns a new request whose only entry maps name+KeyArray to r.
// r itself is left unchanged.
func (r *Request) WrapAsArray(name string) *Request {
	wrapper := r.Derive()
	wrapper.PutRaw(name+KeyArray, r)
	return wrapper
}

// ToArray sets count and page on r and wraps it as the array sub-request
// name+"[]". The returned wrapper, not r, is the object to serialize.
func (r *Request) ToArray(count, page int, name string) *Request {
	return r.WithPagination(count, page).WrapAsArray(name)
}
