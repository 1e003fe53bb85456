package preset

import (
	"maps"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/spf13/cast"

	"github.com/s0up4200/jsonreq/request"
)

// exprProgram implements Program using the expr language
type exprProgram struct {
	expression string
	program    *vm.Program
	compiler   *exprCompiler
}

// CompilerOption configures an expr compiler
type CompilerOption func(*exprCompiler)

// WithCache enables program caching with the specified size
func WithCache(size int) CompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache(size)
		}
	}
}

// WithFunctions adds custom helper functions
func WithFunctions(funcs map[string]any) CompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.helperFuncs, funcs)
	}
}

// NewCompiler creates a new expr-based compiler
func NewCompiler(opts ...CompilerOption) CachingCompiler {
	c := &exprCompiler{
		helperFuncs: createHelperFunctions(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.envPool.New = func() any {
		return make(map[string]any, len(c.helperFuncs)+16)
	}

	return c
}

// exprCompiler implements CachingCompiler for expr programs
type exprCompiler struct {
	helperFuncs map[string]any
	cache       *lruCache
	envPool     sync.Pool
}

// Compile compiles an expression into a program
func (c *exprCompiler) Compile(expression string) (Program, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	// Build variables are unknown until Eval
	program, err := expr.Compile(expression,
		expr.Env(c.helperFuncs),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	p := &exprProgram{
		expression: expression,
		program:    program,
		compiler:   c,
	}

	if c.cache != nil {
		c.cache.Put(expression, p)
	}

	return p, nil
}

// Clear removes all cached programs
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached programs
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Len()
	}
	return 0
}

// Expression returns the original expression
func (p *exprProgram) Expression() string {
	return p.expression
}

// Eval runs the program. Helper functions shadow variables of the same name.
func (p *exprProgram) Eval(vars Vars) (any, error) {
	env := p.compiler.envPool.Get().(map[string]any)
	defer func() {
		clear(env)
		p.compiler.envPool.Put(env)
	}()

	maps.Copy(env, vars)
	maps.Copy(env, p.compiler.helperFuncs)

	return expr.Run(p.program, env)
}

// createHelperFunctions returns the functions available to every expression
func createHelperFunctions() map[string]any {
	funcs := make(map[string]any, 8)

	// path("User", "id") -> "User/id"
	funcs["path"] = func(parts ...any) string {
		strs := make([]string, len(parts))
		for i, part := range parts {
			strs[i] = cast.ToString(part)
		}
		return strings.Join(strs, "/")
	}
	// search("ab", "contain_order") -> "%a%b%"
	funcs["search"] = func(value any, mode string) (string, error) {
		m, err := request.ParseSearchMode(mode)
		if err != nil {
			return "", err
		}
		return request.Search(cast.ToString(value), m), nil
	}
	// coalesce returns the first argument that is neither nil nor ""
	funcs["coalesce"] = func(values ...any) any {
		for _, v := range values {
			if v == nil {
				continue
			}
			if s, ok := v.(string); ok && s == "" {
				continue
			}
			return v
		}
		return nil
	}
	// columns("id", "name") -> "id,name"
	funcs["columns"] = func(names ...string) string {
		return strings.Join(names, ",")
	}

	return funcs
}
