package template

import (
	"io"
)

// TemplateRenderer is the engine contract renderers rely on: named
// template rendering with optional writer fan-out, inline template
// strings, custom filters, and engine-wide context values.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
