package model

import internalmodel "github.com/goliatone/go-arkgen/internal/model"

// PropertyType re-exports the internal PropertyType enumeration.
type PropertyType = internalmodel.PropertyType

const (
	TypeString  = internalmodel.TypeString
	TypeNumber  = internalmodel.TypeNumber
	TypeBoolean = internalmodel.TypeBoolean
	TypeDate    = internalmodel.TypeDate
)

// RuleKind re-exports the internal RuleKind enumeration.
type RuleKind = internalmodel.RuleKind

const (
	RuleRequired  = internalmodel.RuleRequired
	RuleMinLength = internalmodel.RuleMinLength
	RuleMaxLength = internalmodel.RuleMaxLength
	RuleEmail     = internalmodel.RuleEmail
	RuleMin       = internalmodel.RuleMin
	RuleMax       = internalmodel.RuleMax
	RulePattern   = internalmodel.RulePattern
)

// Architecture re-exports the internal Architecture enumeration.
type Architecture = internalmodel.Architecture

const (
	ArchitectureClean      = internalmodel.ArchitectureClean
	ArchitectureMVVMSimple = internalmodel.ArchitectureMVVMSimple
)

type ValidationRule = internalmodel.ValidationRule
type Property = internalmodel.Property
type EntitySchema = internalmodel.EntitySchema
type GeneratedFile = internalmodel.GeneratedFile
type Names = internalmodel.Names

// IDName re-exports the canonical identifier property name.
const IDName = internalmodel.IDName

// ParsePropertyType maps a textual type token to its PropertyType.
func ParsePropertyType(token string) (PropertyType, error) {
	return internalmodel.ParsePropertyType(token)
}

// ParseRuleKind maps a textual rule token to its RuleKind.
func ParseRuleKind(token string) (RuleKind, error) {
	return internalmodel.ParseRuleKind(token)
}

// ParseArchitecture maps a textual architecture token to its Architecture.
func ParseArchitecture(token string) (Architecture, error) {
	return internalmodel.ParseArchitecture(token)
}

// Derive computes the naming forms fragments interpolate into paths and
// source text.
func Derive(entity string) Names {
	return internalmodel.Derive(entity)
}

// Pluralize applies the generator's naive pluralization heuristic.
func Pluralize(word string) string {
	return internalmodel.Pluralize(word)
}

// UpperFirst raises the first rune of s, leaving the rest untouched.
func UpperFirst(s string) string {
	return internalmodel.UpperFirst(s)
}

// ValidIdentifier reports whether s can serve as an ArkTS identifier.
func ValidIdentifier(s string) bool {
	return internalmodel.ValidIdentifier(s)
}

// IDProperty returns the canonical identifier property.
func IDProperty() Property {
	return internalmodel.IDProperty()
}

// Normalize validates a schema and returns a deep copy with the
// identifier property pinned to position 0.
func Normalize(schema EntitySchema) (EntitySchema, error) {
	return internalmodel.Normalize(schema)
}
