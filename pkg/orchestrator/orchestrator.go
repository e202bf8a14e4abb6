package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-arkgen/pkg/model"
	"github.com/goliatone/go-arkgen/pkg/render"
	"github.com/goliatone/go-arkgen/pkg/renderers/clean"
	"github.com/goliatone/go-arkgen/pkg/renderers/mvvm"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry. The caller keeps full
// control over which architectures are available; the built-in
// renderers are not added on top.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultArchitecture overrides the architecture used when both the
// request and the schema leave it blank.
func WithDefaultArchitecture(arch model.Architecture) Option {
	return func(o *Orchestrator) {
		if arch != "" {
			o.defaultArchitecture = arch
		}
	}
}

// WithRenderers registers renderers on top of whatever registry the
// orchestrator ends up with, letting callers extend the built-in set.
func WithRenderers(renderers ...render.Renderer) Option {
	return func(o *Orchestrator) {
		if len(renderers) == 0 {
			return
		}
		o.extraRenderers = append(o.extraRenderers, renderers...)
	}
}

// Orchestrator coordinates the normalize → select renderer → render
// sequence. It applies sensible defaults (both built-in renderers,
// clean architecture fallback) while remaining open to dependency
// injection for advanced callers.
type Orchestrator struct {
	registry            *render.Registry
	defaultArchitecture model.Architecture
	extraRenderers      []render.Renderer
	initialiseErr       error
	defaultsApplied     bool
}

// New constructs an Orchestrator applying any provided options. A
// missing registry is initialised with the built-in clean and MVVM
// renderers so callers can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultArchitecture: model.ArchitectureClean,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one generation pass.
type Request struct {
	// Schema is the entity description to scaffold.
	Schema model.EntitySchema

	// Architecture, when set, overrides the architecture recorded on
	// the schema. If both are empty the orchestrator falls back to its
	// configured default.
	Architecture model.Architecture
}

// Generate normalizes the schema, selects the renderer for its
// architecture, and returns the planned file set. Lookup failures
// carry a *render.UnsupportedArchitectureError through the wrap chain.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (*render.Result, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return nil, err
		}
	}

	schema := req.Schema
	if req.Architecture != "" {
		schema.Architecture = req.Architecture
	}
	if schema.Architecture == "" {
		schema.Architecture = o.defaultArchitecture
	}

	normalized, err := model.Normalize(schema)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: normalize schema: %w", err)
	}

	renderer, err := o.registry.Get(normalized.Architecture)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select renderer: %w", err)
	}

	result, err := renderer.Render(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render scaffold: %w", err)
	}
	return result, nil
}

// Architectures lists the architectures the configured registry
// serves, in sorted order.
func (o *Orchestrator) Architectures() []model.Architecture {
	if o.registry == nil {
		return nil
	}
	return o.registry.List()
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.registry == nil {
		o.registry = render.NewRegistry()
		o.registerBuiltins()
	}
	for _, renderer := range o.extraRenderers {
		if renderer == nil {
			continue
		}
		if err := o.registry.Register(renderer); err != nil && o.initialiseErr == nil {
			o.initialiseErr = fmt.Errorf("orchestrator: register renderer: %w", err)
		}
	}
	o.extraRenderers = nil
	if o.defaultArchitecture == "" {
		o.defaultArchitecture = model.ArchitectureClean
	}

	o.defaultsApplied = true
}

func (o *Orchestrator) registerBuiltins() {
	cleanRenderer, err := clean.New()
	if err != nil {
		o.initialiseErr = fmt.Errorf("orchestrator: clean renderer: %w", err)
		return
	}
	o.registry.MustRegister(cleanRenderer)

	mvvmRenderer, err := mvvm.New()
	if err != nil {
		o.initialiseErr = fmt.Errorf("orchestrator: mvvm renderer: %w", err)
		return
	}
	o.registry.MustRegister(mvvmRenderer)
}
