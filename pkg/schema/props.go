package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-arkgen/pkg/model"
)

// ParseWarning reports a property entry skipped during batch parsing.
// Warnings are informational; the batch never aborts over one entry.
type ParseWarning struct {
	Entry  string
	Reason string
}

func (w ParseWarning) String() string {
	return fmt.Sprintf("skipped property %q: %s", w.Entry, w.Reason)
}

// ParseProps parses the comma-separated property DSL used by CLI
// flags: "name:string,email:string?,age:number". A trailing '?' on the
// type marks the property optional. Malformed entries are collected as
// warnings instead of failing the batch.
func ParseProps(input string) ([]model.Property, []ParseWarning) {
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}

	var (
		props    []model.Property
		warnings []ParseWarning
	)
	for _, entry := range strings.Split(input, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		prop, err := ParsePropLine(entry)
		if err != nil {
			warnings = append(warnings, ParseWarning{Entry: entry, Reason: err.Error()})
			continue
		}
		props = append(props, prop)
	}
	return props, warnings
}

// ParsePropLine parses a single "name:type" entry. The interactive
// collector uses it to validate one property at a time, so the error
// text doubles as user feedback.
func ParsePropLine(entry string) (model.Property, error) {
	name, typeToken, found := strings.Cut(entry, ":")
	if !found {
		return model.Property{}, errors.New("missing name:type separator")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return model.Property{}, errors.New("property name is required")
	}

	typeToken = strings.TrimSpace(typeToken)
	optional := false
	if strings.HasSuffix(typeToken, "?") {
		optional = true
		typeToken = strings.TrimSpace(strings.TrimSuffix(typeToken, "?"))
	}

	propType, err := model.ParsePropertyType(typeToken)
	if err != nil {
		return model.Property{}, fmt.Errorf("unknown type %q (use string, number, boolean, date)", typeToken)
	}

	return model.Property{Name: name, Type: propType, Optional: optional}, nil
}
