package render

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-arkgen/pkg/model"
)

// UnsupportedArchitectureError reports a renderer lookup for an
// architecture nothing serves. Known lists the registered
// architectures at lookup time.
type UnsupportedArchitectureError struct {
	Architecture model.Architecture
	Known        []model.Architecture
}

func (e *UnsupportedArchitectureError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("render: no renderer registered for architecture %q", e.Architecture)
	}
	known := make([]string, 0, len(e.Known))
	for _, arch := range e.Known {
		known = append(known, string(arch))
	}
	return fmt.Sprintf("render: no renderer registered for architecture %q (have %s)", e.Architecture, strings.Join(known, ", "))
}

// CollisionError reports two artifacts planned at the same output path
// within a single render pass.
type CollisionError struct {
	Path string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("render: duplicate output path %q", e.Path)
}
