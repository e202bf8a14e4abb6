package render

import (
	"strings"

	"github.com/goliatone/go-arkgen/pkg/model"
)

// Plan accumulates rendered sections keyed by slash-separated output
// path, in insertion order. It owns the one piece of content no
// fragment renders itself: the leading path banner.
type Plan struct {
	order    []string
	sections map[string][]string
}

// NewPlan creates an empty plan.
func NewPlan() *Plan {
	return &Plan{sections: make(map[string][]string)}
}

// Add plans the sections for path. Planning the same path twice returns
// a *CollisionError.
func (p *Plan) Add(path string, sections ...string) error {
	if _, exists := p.sections[path]; exists {
		return &CollisionError{Path: path}
	}
	p.order = append(p.order, path)
	p.sections[path] = sections
	return nil
}

// Len reports the number of planned files.
func (p *Plan) Len() int {
	return len(p.order)
}

// Execute materializes every planned file: a comment banner naming the
// file's own path, a blank line, then the sections joined by blank
// lines. Contents carry no trailing newline.
func (p *Plan) Execute() []model.GeneratedFile {
	files := make([]model.GeneratedFile, 0, len(p.order))
	for _, path := range p.order {
		content := "// " + path + "\n\n" + strings.Join(p.sections[path], "\n\n")
		files = append(files, model.GeneratedFile{Path: path, Content: content})
	}
	return files
}
