package render

import (
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-arkgen/pkg/model"
)

// Registry stores renderers keyed by the architecture they serve,
// providing discovery and duplication safeguards. The architecture set
// is closed: a lookup for anything unregistered fails loudly instead of
// falling back to a default.
type Registry struct {
	mu        sync.RWMutex
	renderers map[model.Architecture]Renderer
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[model.Architecture]Renderer),
	}
}

// Register adds a renderer under its Architecture(). Duplicate
// architectures return an error.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return fmt.Errorf("render: renderer is required")
	}
	arch := renderer.Architecture()
	if arch == "" {
		return fmt.Errorf("render: renderer architecture is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.renderers[arch]; exists {
		return fmt.Errorf("render: renderer for architecture %q already registered", arch)
	}

	r.renderers[arch] = renderer
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// Get retrieves the renderer for an architecture. Missing entries
// return an *UnsupportedArchitectureError.
func (r *Registry) Get(arch model.Architecture) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.renderers[arch]
	if !ok {
		return nil, &UnsupportedArchitectureError{
			Architecture: arch,
			Known:        r.listLocked(),
		}
	}
	return renderer, nil
}

// MustGet panics if the renderer is missing.
func (r *Registry) MustGet(arch model.Architecture) Renderer {
	renderer, err := r.Get(arch)
	if err != nil {
		panic(err)
	}
	return renderer
}

// List returns the registered architectures in sorted order.
func (r *Registry) List() []model.Architecture {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.listLocked()
}

// Has reports whether an architecture has a renderer.
func (r *Registry) Has(arch model.Architecture) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.renderers[arch]
	return ok
}

func (r *Registry) listLocked() []model.Architecture {
	archs := make([]model.Architecture, 0, len(r.renderers))
	for arch := range r.renderers {
		archs = append(archs, arch)
	}
	sort.Slice(archs, func(i, j int) bool { return archs[i] < archs[j] })
	return archs
}
