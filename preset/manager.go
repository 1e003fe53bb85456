package preset

import (
	"context"
	"fmt"
	"maps"
	"runtime"
	"slices"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/jsonreq/request"
)

var _ Builder = (*Manager)(nil)

// Pagination holds the count and page used when an array omits them
type Pagination struct {
	Count int
	Page  int
}

// Manager compiles presets and builds requests from them
type Manager struct {
	compiler    Compiler
	requestOpts []request.Option
	defaults    Pagination
	encode      bool
	concurrency int
	logger      zerolog.Logger
	templates   map[string]*Template
	mu          sync.RWMutex
}

// ManagerOption configures a preset manager
type ManagerOption func(*Manager)

// WithCompiler sets a custom compiler
func WithCompiler(compiler Compiler) ManagerOption {
	return func(m *Manager) {
		m.compiler = compiler
	}
}

// WithRequestOptions sets the options every built request is created with
func WithRequestOptions(opts ...request.Option) ManagerOption {
	return func(m *Manager) {
		m.requestOpts = append(m.requestOpts, opts...)
	}
}

// WithDefaultPagination sets the count and page used when an array omits them
func WithDefaultPagination(count, page int) ManagerOption {
	return func(m *Manager) {
		m.defaults = Pagination{Count: count, Page: page}
	}
}

// WithEncode sets whether string values are percent-encoded by default
func WithEncode(encode bool) ManagerOption {
	return func(m *Manager) {
		m.encode = encode
	}
}

// WithConcurrency limits how many presets BuildAll builds at once
func WithConcurrency(n int) ManagerOption {
	return func(m *Manager) {
		if n > 0 {
			m.concurrency = n
		}
	}
}

// WithLogger sets the manager logger
func WithLogger(logger zerolog.Logger) ManagerOption {
	return func(m *Manager) {
		m.logger = logger
	}
}

// NewManager creates a new preset manager
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		compiler:    NewCompiler(WithCache(100)),
		defaults:    Pagination{Count: 10},
		encode:      true,
		concurrency: runtime.GOMAXPROCS(0),
		logger:      zerolog.Nop(),
		templates:   make(map[string]*Template),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Register compiles a preset and registers it under name, replacing any previous one
func (m *Manager) Register(name string, p Preset) error {
	t, err := compileTemplate(name, p, m.compiler, m.defaults, m.encode)
	if err != nil {
		return fmt.Errorf("failed to compile preset '%s': %w", name, err)
	}

	m.mu.Lock()
	m.templates[name] = t
	m.mu.Unlock()

	return nil
}

// RegisterAll registers presets only if every one of them compiles
func (m *Manager) RegisterAll(presets map[string]Preset) error {
	compiled := make(map[string]*Template, len(presets))

	for _, name := range slices.Sorted(maps.Keys(presets)) {
		t, err := compileTemplate(name, presets[name], m.compiler, m.defaults, m.encode)
		if err != nil {
			return fmt.Errorf("failed to compile preset '%s': %w", name, err)
		}
		compiled[name] = t
	}

	m.mu.Lock()
	maps.Copy(m.templates, compiled)
	m.mu.Unlock()

	return nil
}

// Unregister removes a preset
func (m *Manager) Unregister(name string) {
	m.mu.Lock()
	delete(m.templates, name)
	m.mu.Unlock()
}

// Template returns a compiled preset by name
func (m *Manager) Template(name string) (*Template, bool) {
	m.mu.RLock()
	t, ok := m.templates[name]
	m.mu.RUnlock()
	return t, ok
}

// Names returns the registered preset names in sorted order
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Sorted(maps.Keys(m.templates))
}

// Build builds the named preset
func (m *Manager) Build(ctx context.Context, name string, vars Vars) (*request.Request, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t, ok := m.Template(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPresetNotFound, name)
	}

	r, err := t.Build(vars, m.requestOpts...)
	if err != nil {
		return nil, err
	}

	if n := r.Fallbacks(); n > 0 {
		m.logger.Warn().Str("preset", name).Int("fallbacks", n).Msg("Built request with unencoded values")
	}
	m.logger.Debug().Str("preset", name).Int("keys", r.Len()).Msg("Built request")

	return r, nil
}

// BuildAll builds every registered preset concurrently. The first failure
// cancels the remaining builds.
func (m *Manager) BuildAll(ctx context.Context, vars Vars) (map[string]*request.Request, error) {
	names := m.Names()
	results := make(map[string]*request.Request, len(names))
	if len(names) == 0 {
		return results, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.concurrency)

	var mu sync.Mutex
	for _, name := range names {
		g.Go(func() error {
			r, err := m.Build(ctx, name, vars)
			if err != nil {
				return err
			}

			mu.Lock()
			results[name] = r
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
