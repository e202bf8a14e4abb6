package model

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Names carries the derived identifier forms the generators interpolate
// into file paths and source text.
type Names struct {
	// Entity is the PascalCase name as supplied, e.g. "BlogPost".
	Entity string
	// Lower is Entity with only the first rune lowered, e.g. "blogPost".
	Lower string
	// Plural is the pluralized Lower form, e.g. "blogPosts".
	Plural string
}

// Derive computes the naming forms for an entity. Lower keeps every rune
// but the first untouched so multi-word names hold their camel humps.
func Derive(entity string) Names {
	lower := lowerFirst(entity)
	return Names{
		Entity: entity,
		Lower:  lower,
		Plural: Pluralize(lower),
	}
}

// Pluralize applies a naive English heuristic: trailing "y" becomes
// "ies", sibilant endings ("s", "x", "z") gain "es", everything else
// gains "s". Irregular nouns come out wrong ("person" -> "persons") but
// consistently so across every file that mentions them.
func Pluralize(word string) string {
	switch {
	case strings.HasSuffix(word, "y"):
		return strings.TrimSuffix(word, "y") + "ies"
	case strings.HasSuffix(word, "s"), strings.HasSuffix(word, "x"), strings.HasSuffix(word, "z"):
		return word + "es"
	default:
		return word + "s"
	}
}

// UpperFirst raises the first rune, leaving the rest untouched. The
// interactive collector and the OpenAPI importer use it to coerce
// entity names into PascalCase without flattening camel humps.
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}
