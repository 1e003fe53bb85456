package preset

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"

	"github.com/s0up4200/jsonreq/request"
)

// Template is a compiled preset ready to build requests.
type Template struct {
	name    string
	tag     string
	entries []compiledEntry
	array   *compiledArray
	encode  bool
}

type compiledEntry struct {
	key    string
	object []string
	value  Program
	path   []Program
	search *request.SearchMode
	raw    bool
}

type compiledArray struct {
	name  string
	count Program
	page  Program
}

// Name returns the preset name
func (t *Template) Name() string {
	return t.name
}

// compileTemplate validates p and compiles every expression it holds
func compileTemplate(name string, p Preset, c Compiler, defaults Pagination, encode bool) (*Template, error) {
	t := &Template{
		name:    name,
		tag:     p.Tag,
		entries: make([]compiledEntry, 0, len(p.Entries)),
		encode:  encode,
	}

	if len(p.Entries) == 0 && p.Array == nil && p.Tag == "" {
		return nil, &CompilationError{Preset: name, Reason: "preset is empty"}
	}

	for i, e := range p.Entries {
		ce, err := compileEntry(name, i, e, c)
		if err != nil {
			return nil, err
		}
		t.entries = append(t.entries, ce)
	}

	if p.Array != nil {
		count := p.Array.Count
		if count == "" {
			count = fmt.Sprint(defaults.Count)
		}
		page := p.Array.Page
		if page == "" {
			page = fmt.Sprint(defaults.Page)
		}

		ca := &compiledArray{name: p.Array.Name}
		var err error
		if ca.count, err = compileIn(name, count, c); err != nil {
			return nil, err
		}
		if ca.page, err = compileIn(name, page, c); err != nil {
			return nil, err
		}
		t.array = ca
	}

	return t, nil
}

func compileEntry(name string, i int, e Entry, c Compiler) (compiledEntry, error) {
	ce := compiledEntry{
		key: e.Key,
		raw: e.Raw,
	}
	if e.Object != "" {
		ce.object = strings.Split(e.Object, "/")
	}

	hasValue := strings.TrimSpace(e.Value) != ""
	switch {
	case hasValue && len(e.Path) > 0:
		return ce, &CompilationError{Preset: name, Reason: fmt.Sprintf("entry %d sets both value and path", i)}
	case !hasValue && len(e.Path) == 0:
		return ce, &CompilationError{Preset: name, Reason: fmt.Sprintf("entry %d sets neither value nor path", i)}
	case len(e.Path) > 0 && e.Key == "":
		return ce, &CompilationError{Preset: name, Reason: fmt.Sprintf("entry %d: path entries need a key", i)}
	case len(e.Path) > 0 && e.Search != "":
		return ce, &CompilationError{Preset: name, Reason: fmt.Sprintf("entry %d: search applies to values only", i)}
	}

	if e.Search != "" {
		mode, err := request.ParseSearchMode(e.Search)
		if err != nil {
			return ce, &CompilationError{Preset: name, Reason: fmt.Sprintf("entry %d: %v", i, err), Err: err}
		}
		ce.search = &mode
	}

	var err error
	if hasValue {
		if ce.value, err = compileIn(name, e.Value, c); err != nil {
			return ce, err
		}
		return ce, nil
	}

	ce.path = make([]Program, len(e.Path))
	for j, part := range e.Path {
		if ce.path[j], err = compileIn(name, part, c); err != nil {
			return ce, err
		}
	}
	return ce, nil
}

func compileIn(name, expression string, c Compiler) (Program, error) {
	p, err := c.Compile(expression)
	if err != nil {
		if cerr, ok := err.(*CompilationError); ok {
			wrapped := *cerr
			wrapped.Preset = name
			return nil, &wrapped
		}
		return nil, &CompilationError{Preset: name, Expression: expression, Reason: err.Error(), Err: err}
	}
	return p, nil
}

// Build evaluates the template against vars into a new request
func (t *Template) Build(vars Vars, opts ...request.Option) (*request.Request, error) {
	r := request.New(opts...)

	for _, e := range t.entries {
		target := r
		for _, name := range e.object {
			target = target.Child(name)
		}
		if err := t.apply(target, e, vars); err != nil {
			return nil, err
		}
	}

	if t.array != nil {
		count, err := t.evalInt(t.array.count, countLabel, vars)
		if err != nil {
			return nil, err
		}
		page, err := t.evalInt(t.array.page, pageLabel, vars)
		if err != nil {
			return nil, err
		}
		r = r.ToArray(count, page, t.array.name)
	}

	if t.tag != "" {
		r.SetTag(t.tag)
	}

	return r, nil
}

// keys reported in evaluation errors for the array wrapping
const (
	countLabel = request.KeyArray + "." + request.KeyCount
	pageLabel  = request.KeyArray + "." + request.KeyPage
)

func (t *Template) apply(r *request.Request, e compiledEntry, vars Vars) error {
	encode := t.encode && !e.raw

	if e.path != nil {
		parts := make([]string, len(e.path))
		for i, p := range e.path {
			v, err := t.eval(p, e.key, vars)
			if err != nil {
				return err
			}
			parts[i] = cast.ToString(v)
		}
		if encode {
			r.PutPath(e.key, parts...)
		} else {
			r.PutRaw(e.key, strings.Join(parts, "/"))
		}
		return nil
	}

	v, err := t.eval(e.value, e.key, vars)
	if err != nil {
		return err
	}
	if e.search != nil {
		if encode {
			r.PutSearchWith(e.key, cast.ToString(v), *e.search)
		} else {
			r.PutRaw(request.SearchKey(e.key), request.Search(cast.ToString(v), *e.search))
		}
		return nil
	}
	r.PutWith(e.key, v, encode)
	return nil
}

func (t *Template) eval(p Program, key string, vars Vars) (any, error) {
	v, err := p.Eval(vars)
	if err != nil {
		return nil, &EvaluationError{Preset: t.name, Key: key, Expression: p.Expression(), Err: err}
	}
	return v, nil
}

func (t *Template) evalInt(p Program, key string, vars Vars) (int, error) {
	v, err := t.eval(p, key, vars)
	if err != nil {
		return 0, err
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, &EvaluationError{Preset: t.name, Key: key, Expression: p.Expression(), Err: err}
	}
	return n, nil
}
