package preset

import (
	"context"

	"github.com/s0up4200/jsonreq/request"
)

// Program is a compiled value expression
type Program interface {
	// Expression returns the source expression
	Expression() string

	// Eval runs the program against vars
	Eval(vars Vars) (any, error)
}

// Compiler compiles value expressions into programs
type Compiler interface {
	Compile(expression string) (Program, error)
}

// CachingCompiler provides caching for compiled programs
type CachingCompiler interface {
	Compiler

	// Clear removes all cached programs
	Clear()

	// Size returns the number of cached programs
	Size() int
}

// Builder builds requests from registered presets
type Builder interface {
	Build(ctx context.Context, name string, vars Vars) (*request.Request, error)
	BuildAll(ctx context.Context, vars Vars) (map[string]*request.Request, error)
}
