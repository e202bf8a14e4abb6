package arkts

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-arkgen/pkg/model"
)

// indentBlock prefixes every non-blank line with two spaces per level.
// Blank lines pass through untouched.
func indentBlock(text string, levels int) string {
	indent := strings.Repeat("  ", levels)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			lines[i] = indent + line
		}
	}
	return strings.Join(lines, "\n")
}

// createParams renders the parameter list for create operations: every
// property except the identifier, which the backend assigns.
func createParams(schema model.EntitySchema) string {
	var params []string
	for _, prop := range schema.Properties {
		if prop.Name == model.IDName {
			continue
		}
		optional := ""
		if prop.Optional {
			optional = "?"
		}
		params = append(params, fmt.Sprintf("%s%s: %s", prop.Name, optional, prop.Type.ArkTS()))
	}
	return strings.Join(params, ", ")
}

// createArgs renders the matching argument list for createParams.
func createArgs(schema model.EntitySchema) string {
	var args []string
	for _, prop := range schema.Properties {
		if prop.Name == model.IDName {
			continue
		}
		args = append(args, prop.Name)
	}
	return strings.Join(args, ", ")
}

// entityCreationArgs renders constructor arguments with the identifier
// zeroed, for entities created ahead of persistence.
func entityCreationArgs(schema model.EntitySchema) string {
	var args []string
	for _, prop := range schema.Properties {
		if prop.Name == model.IDName {
			args = append(args, "0")
			continue
		}
		args = append(args, prop.Name)
	}
	return strings.Join(args, ", ")
}
