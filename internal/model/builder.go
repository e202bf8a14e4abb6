package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mitchellh/copystructure"
)

// IDName is the canonical identifier property present on every entity.
const IDName = "id"

// IDProperty returns the identifier property the normalizer pins to the
// front of the property list.
func IDProperty() Property {
	return Property{Name: IDName, Type: TypeNumber}
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// ValidIdentifier reports whether s can serve as an ArkTS identifier.
func ValidIdentifier(s string) bool {
	return identifierPattern.MatchString(s)
}

// Normalize validates a caller-assembled schema and returns a deep copy
// ready for rendering: the "id" property is synthesized when absent,
// moved to position 0 when present, and forced to a non-optional number
// either way. Its validation rules survive the move. The input schema is
// never mutated.
func Normalize(schema EntitySchema) (EntitySchema, error) {
	if err := validateSchema(schema); err != nil {
		return EntitySchema{}, err
	}

	copied, err := copystructure.Copy(schema)
	if err != nil {
		return EntitySchema{}, fmt.Errorf("model: copy schema: %w", err)
	}
	normalized := copied.(EntitySchema)

	idIdx := -1
	for i, prop := range normalized.Properties {
		if prop.Name == IDName {
			idIdx = i
			break
		}
	}
	if idIdx < 0 {
		normalized.Properties = append([]Property{IDProperty()}, normalized.Properties...)
		return normalized, nil
	}

	id := normalized.Properties[idIdx]
	id.Type = TypeNumber
	id.Optional = false
	rest := make([]Property, 0, len(normalized.Properties)-1)
	rest = append(rest, normalized.Properties[:idIdx]...)
	rest = append(rest, normalized.Properties[idIdx+1:]...)
	normalized.Properties = append([]Property{id}, rest...)
	return normalized, nil
}

func validateSchema(schema EntitySchema) error {
	entity := strings.TrimSpace(schema.Entity)
	if entity == "" {
		return fmt.Errorf("model: entity name is required")
	}
	if !identifierPattern.MatchString(entity) {
		return fmt.Errorf("model: entity name %q is not a valid identifier", entity)
	}
	if r := rune(entity[0]); r < 'A' || r > 'Z' {
		return fmt.Errorf("model: entity name %q must start with an upper-case letter", entity)
	}

	seen := make(map[string]struct{}, len(schema.Properties))
	for _, prop := range schema.Properties {
		if err := validateProperty(prop); err != nil {
			return err
		}
		if _, dup := seen[prop.Name]; dup {
			return fmt.Errorf("model: duplicate property %q", prop.Name)
		}
		seen[prop.Name] = struct{}{}
	}
	return nil
}

func validateProperty(prop Property) error {
	if prop.Name == "" {
		return fmt.Errorf("model: property name is required")
	}
	if !identifierPattern.MatchString(prop.Name) {
		return fmt.Errorf("model: property name %q is not a valid identifier", prop.Name)
	}
	switch prop.Type {
	case TypeString, TypeNumber, TypeBoolean, TypeDate:
	default:
		return fmt.Errorf("model: property %q has unknown type %q", prop.Name, prop.Type)
	}
	for _, rule := range prop.Validations {
		if err := validateRule(prop.Name, rule); err != nil {
			return err
		}
	}
	return nil
}

func validateRule(prop string, rule ValidationRule) error {
	switch rule.Kind {
	case RuleRequired, RuleEmail, RuleMinLength, RuleMaxLength, RuleMin, RuleMax, RulePattern:
	default:
		return fmt.Errorf("model: property %q has unknown validation kind %q", prop, rule.Kind)
	}
	if rule.Kind.RequiresValue() && rule.Value == "" {
		return fmt.Errorf("model: rule %s on property %q requires a value", rule.Kind, prop)
	}
	if rule.Kind.NumericValue() {
		if _, err := strconv.ParseFloat(rule.Value, 64); err != nil {
			return fmt.Errorf("model: rule %s on property %q has non-numeric value %q", rule.Kind, prop, rule.Value)
		}
	}
	return nil
}
