package render

import (
	"context"

	"github.com/goliatone/go-arkgen/pkg/model"
)

// Renderer converts an entity schema into the file set of one target
// architecture. Implementations must be deterministic: the same schema
// always yields the same paths and bytes.
type Renderer interface {
	Architecture() model.Architecture
	Render(ctx context.Context, schema model.EntitySchema) (*Result, error)
}

// Result is the output of a renderer pass. Files appear in the order
// the renderer planned them.
type Result struct {
	Architecture model.Architecture
	Files        []model.GeneratedFile
}

// FileMap flattens the files into a path → content map for callers
// that address artifacts by path instead of plan order.
func (r *Result) FileMap() map[string]string {
	out := make(map[string]string, len(r.Files))
	for _, file := range r.Files {
		out[file.Path] = file.Content
	}
	return out
}
