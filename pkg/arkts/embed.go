package arkts

import "embed"

// TemplatesFS bundles the page template shared by the architecture
// renderers.
//
//go:embed templates
var TemplatesFS embed.FS
