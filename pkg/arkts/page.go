package arkts

import (
	"fmt"

	"github.com/goliatone/go-arkgen/pkg/model"
)

// PageTemplate is the name of the page template inside TemplatesFS,
// without the engine's extension.
const PageTemplate = "templates/page.ets"

// PageImports carries the relative import paths the page template
// interpolates. They differ between architectures because the page
// sits at a different depth in each layout.
type PageImports struct {
	ViewModel string
	Entity    string
	Container string
}

// PageContext assembles the render context for the page template. The
// list item shows the first non-identifier string property (falling
// back to "name") and, when present, a second one underneath.
func PageContext(schema model.EntitySchema, imports PageImports) map[string]any {
	n := model.Derive(schema.Entity)
	first, second := pageDisplayProps(schema)

	return map[string]any{
		"entity":           n.Entity,
		"plural":           n.Plural,
		"field":            n.Lower + "s",
		"first_display":    first,
		"second_display":   pageSecondDisplay(second),
		"vm_import":        imports.ViewModel,
		"entity_import":    imports.Entity,
		"container_import": imports.Container,
	}
}

func pageDisplayProps(schema model.EntitySchema) (string, *model.Property) {
	var first *model.Property
	for i := range schema.Properties {
		prop := &schema.Properties[i]
		if prop.Type == model.TypeString && prop.Name != model.IDName {
			first = prop
			break
		}
	}

	firstDisplay := "name"
	if first != nil {
		firstDisplay = first.Name
	}

	for i := range schema.Properties {
		prop := &schema.Properties[i]
		if prop.Type != model.TypeString || prop.Name == model.IDName {
			continue
		}
		if first != nil && prop.Name == first.Name {
			continue
		}
		return firstDisplay, prop
	}
	return firstDisplay, nil
}

func pageSecondDisplay(prop *model.Property) string {
	if prop == nil {
		return ""
	}
	return fmt.Sprintf("\n        Text(entity.%s)\n          .fontSize(14)\n          .fontColor($r('app.color.text_secondary'))", prop.Name)
}
