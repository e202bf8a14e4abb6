package model

import (
	"fmt"
	"strings"
)

// PropertyType enumerates the property types the generators know how to
// render. The set is closed; anything else is rejected at parse time.
type PropertyType string

const (
	TypeString  PropertyType = "string"
	TypeNumber  PropertyType = "number"
	TypeBoolean PropertyType = "boolean"
	TypeDate    PropertyType = "date"
)

// ParsePropertyType maps a textual type token to its PropertyType.
// Matching is case-insensitive so the ArkTS spelling "Date" works too.
func ParsePropertyType(token string) (PropertyType, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "string":
		return TypeString, nil
	case "number":
		return TypeNumber, nil
	case "boolean":
		return TypeBoolean, nil
	case "date":
		return TypeDate, nil
	default:
		return "", fmt.Errorf("model: unknown property type %q", token)
	}
}

// ArkTS returns the type annotation emitted into generated source.
func (t PropertyType) ArkTS() string {
	if t == TypeDate {
		return "Date"
	}
	return string(t)
}

// RuleKind identifies a validation rule attached to a property.
type RuleKind string

const (
	RuleRequired  RuleKind = "required"
	RuleMinLength RuleKind = "min_length"
	RuleMaxLength RuleKind = "max_length"
	RuleEmail     RuleKind = "email"
	RuleMin       RuleKind = "min"
	RuleMax       RuleKind = "max"
	RulePattern   RuleKind = "pattern"
)

// ParseRuleKind maps a textual rule token to its RuleKind.
func ParseRuleKind(token string) (RuleKind, error) {
	switch RuleKind(strings.ToLower(strings.TrimSpace(token))) {
	case RuleRequired:
		return RuleRequired, nil
	case RuleMinLength:
		return RuleMinLength, nil
	case RuleMaxLength:
		return RuleMaxLength, nil
	case RuleEmail:
		return RuleEmail, nil
	case RuleMin:
		return RuleMin, nil
	case RuleMax:
		return RuleMax, nil
	case RulePattern:
		return RulePattern, nil
	default:
		return "", fmt.Errorf("model: unknown validation kind %q", token)
	}
}

// RequiresValue reports whether the rule kind carries a payload.
func (k RuleKind) RequiresValue() bool {
	switch k {
	case RuleMinLength, RuleMaxLength, RuleMin, RuleMax, RulePattern:
		return true
	default:
		return false
	}
}

// NumericValue reports whether the rule payload must parse as a number.
func (k RuleKind) NumericValue() bool {
	switch k {
	case RuleMinLength, RuleMaxLength, RuleMin, RuleMax:
		return true
	default:
		return false
	}
}

// ValidationRule describes one constraint on a property. Value holds the
// payload exactly as it should appear in generated source, which keeps
// numeric thresholds free of float round-tripping. Message overrides the
// default violation text when set.
type ValidationRule struct {
	Kind    RuleKind `json:"kind"`
	Value   string   `json:"value,omitempty"`
	Message string   `json:"message,omitempty"`
}

// Property is a single field of an entity.
type Property struct {
	Name        string           `json:"name"`
	Type        PropertyType     `json:"type"`
	Optional    bool             `json:"optional,omitempty"`
	Validations []ValidationRule `json:"validations,omitempty"`
}

// Rules returns the validations of the given kind, in declaration order.
func (p Property) Rules(kind RuleKind) []ValidationRule {
	var out []ValidationRule
	for _, rule := range p.Validations {
		if rule.Kind == kind {
			out = append(out, rule)
		}
	}
	return out
}

// Architecture selects the family of artifacts a schema renders to.
type Architecture string

const (
	ArchitectureClean      Architecture = "clean"
	ArchitectureMVVMSimple Architecture = "mvvm_simple"
)

// ParseArchitecture maps a textual architecture token to its Architecture.
// "mvvm" is accepted as shorthand for "mvvm_simple".
func ParseArchitecture(token string) (Architecture, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "clean":
		return ArchitectureClean, nil
	case "mvvm", "mvvm_simple":
		return ArchitectureMVVMSimple, nil
	default:
		return "", fmt.Errorf("model: unknown architecture %q", token)
	}
}

// EntitySchema is the root input of the generators: one entity, its
// properties, and the feature toggles that shape the emitted scaffold.
type EntitySchema struct {
	Entity            string       `json:"entity"`
	Properties        []Property   `json:"properties"`
	Architecture      Architecture `json:"architecture"`
	IncludeCache      bool         `json:"cache,omitempty"`
	IncludeValidation bool         `json:"validation,omitempty"`
}

// Property returns the named property and whether it exists.
func (s EntitySchema) Property(name string) (Property, bool) {
	for _, prop := range s.Properties {
		if prop.Name == name {
			return prop, true
		}
	}
	return Property{}, false
}

// GeneratedFile is one emitted artifact, addressed by a slash-separated
// path relative to the output root.
type GeneratedFile struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}
