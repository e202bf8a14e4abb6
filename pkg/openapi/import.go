package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-arkgen/pkg/model"
)

// Options control which component schemas are imported and the feature
// toggles stamped onto every produced entity schema.
type Options struct {
	// Schemas filters the import to the named component schemas. Empty
	// imports every eligible schema. A requested name that is missing
	// or unusable fails the import.
	Schemas []string

	// Architecture is recorded on each produced schema. Empty falls
	// back to clean.
	Architecture model.Architecture

	IncludeCache      bool
	IncludeValidation bool
}

// Warning reports a schema or property the importer skipped. Bulk
// imports skip freely; only schemas the caller named fail hard.
type Warning struct {
	Schema   string
	Property string
	Reason   string
}

func (w Warning) String() string {
	if w.Property == "" {
		return fmt.Sprintf("skipped schema %q: %s", w.Schema, w.Reason)
	}
	return fmt.Sprintf("skipped property %q of schema %q: %s", w.Property, w.Schema, w.Reason)
}

// Import converts the component schemas of an OpenAPI document into
// entity schemas, sorted by name. Object schemas map property by
// property; anything the generators cannot express (arrays, nested
// objects, unnamed types) is skipped with a warning. The returned
// schemas are not yet normalized.
func Import(ctx context.Context, data []byte, opts Options) ([]model.EntitySchema, []Warning, error) {
	if ctx == nil {
		return nil, nil, errors.New("openapi: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	if len(data) == 0 {
		return nil, nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if doc.Components == nil || len(doc.Components.Schemas) == 0 {
		return nil, nil, errors.New("openapi: document has no component schemas")
	}

	requested := make(map[string]bool, len(opts.Schemas))
	for _, name := range opts.Schemas {
		if name = strings.TrimSpace(name); name != "" {
			requested[name] = false
		}
	}

	arch := opts.Architecture
	if arch == "" {
		arch = model.ArchitectureClean
	}

	names := make([]string, 0, len(doc.Components.Schemas))
	for name := range doc.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	var (
		schemas  []model.EntitySchema
		warnings []Warning
	)
	for _, name := range names {
		explicit := false
		if len(requested) > 0 {
			if _, ok := requested[name]; !ok {
				continue
			}
			requested[name] = true
			explicit = true
		}

		entity, schemaWarnings, err := importSchema(name, doc.Components.Schemas[name], arch, opts, explicit)
		warnings = append(warnings, schemaWarnings...)
		if err != nil {
			return nil, nil, err
		}
		if entity != nil {
			schemas = append(schemas, *entity)
		}
	}

	missing := make([]string, 0, len(requested))
	for name, seen := range requested {
		if !seen {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, nil, fmt.Errorf("openapi: schema %q not found in document", missing[0])
	}

	return schemas, warnings, nil
}

// importSchema maps one component schema. A nil entity with a nil
// error means the schema was skipped; the warning explains why.
func importSchema(name string, ref *openapi3.SchemaRef, arch model.Architecture, opts Options, explicit bool) (*model.EntitySchema, []Warning, error) {
	skip := func(reason string) (*model.EntitySchema, []Warning, error) {
		if explicit {
			return nil, nil, fmt.Errorf("openapi: schema %q: %s", name, reason)
		}
		return nil, []Warning{{Schema: name, Reason: reason}}, nil
	}

	if ref == nil || ref.Value == nil {
		return skip("schema has no definition")
	}
	value := ref.Value
	if value.Type != nil && !value.Type.Is(openapi3.TypeObject) {
		return skip("not an object schema")
	}

	entityName := model.UpperFirst(name)
	if !model.ValidIdentifier(entityName) {
		return skip(fmt.Sprintf("name %q is not a valid identifier", entityName))
	}

	required := make(map[string]bool, len(value.Required))
	for _, prop := range value.Required {
		required[prop] = true
	}

	propNames := make([]string, 0, len(value.Properties))
	for propName := range value.Properties {
		propNames = append(propNames, propName)
	}
	sort.Strings(propNames)

	entity := model.EntitySchema{
		Entity:            entityName,
		Architecture:      arch,
		IncludeCache:      opts.IncludeCache,
		IncludeValidation: opts.IncludeValidation,
	}
	var warnings []Warning
	for _, propName := range propNames {
		prop, reason := importProperty(propName, value.Properties[propName], required[propName])
		if reason != "" {
			warnings = append(warnings, Warning{Schema: name, Property: propName, Reason: reason})
			continue
		}
		entity.Properties = append(entity.Properties, prop)
	}

	return &entity, warnings, nil
}

// importProperty maps one property. An empty reason means success.
func importProperty(name string, ref *openapi3.SchemaRef, required bool) (model.Property, string) {
	if ref == nil || ref.Value == nil {
		return model.Property{}, "property has no definition"
	}
	if !model.ValidIdentifier(name) {
		return model.Property{}, fmt.Sprintf("name %q is not a valid identifier", name)
	}

	value := ref.Value
	prop := model.Property{Name: name, Optional: !required}

	switch {
	case value.Type.Is(openapi3.TypeString):
		switch value.Format {
		case "date", "date-time":
			prop.Type = model.TypeDate
		default:
			prop.Type = model.TypeString
		}
	case value.Type.Is(openapi3.TypeInteger), value.Type.Is(openapi3.TypeNumber):
		prop.Type = model.TypeNumber
	case value.Type.Is(openapi3.TypeBoolean):
		prop.Type = model.TypeBoolean
	case value.Type.Is(openapi3.TypeArray):
		return model.Property{}, "array properties are not supported"
	case value.Type.Is(openapi3.TypeObject):
		return model.Property{}, "nested object properties are not supported"
	default:
		return model.Property{}, "property has no usable type"
	}

	prop.Validations = importRules(value, prop.Type, required)
	return prop, ""
}

// importRules collects the constraints the generated validate() method
// can express, in a fixed order so output stays deterministic.
func importRules(value *openapi3.Schema, propType model.PropertyType, required bool) []model.ValidationRule {
	var rules []model.ValidationRule
	if required {
		rules = append(rules, model.ValidationRule{Kind: model.RuleRequired})
	}
	if propType == model.TypeString && value.Format == "email" {
		rules = append(rules, model.ValidationRule{Kind: model.RuleEmail})
	}
	if value.MinLength > 0 {
		rules = append(rules, model.ValidationRule{
			Kind:  model.RuleMinLength,
			Value: strconv.FormatUint(value.MinLength, 10),
		})
	}
	if value.MaxLength != nil {
		rules = append(rules, model.ValidationRule{
			Kind:  model.RuleMaxLength,
			Value: strconv.FormatUint(*value.MaxLength, 10),
		})
	}
	if value.Min != nil {
		rules = append(rules, model.ValidationRule{
			Kind:  model.RuleMin,
			Value: strconv.FormatFloat(*value.Min, 'f', -1, 64),
		})
	}
	if value.Max != nil {
		rules = append(rules, model.ValidationRule{
			Kind:  model.RuleMax,
			Value: strconv.FormatFloat(*value.Max, 'f', -1, 64),
		})
	}
	if value.Pattern != "" {
		rules = append(rules, model.ValidationRule{Kind: model.RulePattern, Value: value.Pattern})
	}
	return rules
}
