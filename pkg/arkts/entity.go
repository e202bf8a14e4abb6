package arkts

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-arkgen/pkg/model"
)

// Entity renders the entity class: public properties, a defaulted
// constructor, copy, toJson and a static fromJson. With validation
// enabled the constructor calls a private validate() built from the
// schema's rules. The same fragment backs the clean architecture
// domain entity and the simplified architecture's model class.
func Entity(schema model.EntitySchema) string {
	names := model.Derive(schema.Entity)

	var lines []string
	lines = append(lines, fmt.Sprintf("export class %s {", names.Entity))
	lines = append(lines, propertyLines(schema)...)
	lines = append(lines, "  ")
	lines = append(lines, "  constructor(")
	lines = append(lines, constructorParams(schema)...)
	lines = append(lines, "  ) {")
	if schema.IncludeValidation {
		lines = append(lines, "    this.validate();")
	} else {
		lines = append(lines, "    ")
	}
	lines = append(lines, "  }")
	lines = append(lines, "  ")
	if schema.IncludeValidation {
		lines = append(lines, validationMethod(schema)...)
		lines = append(lines, "  ")
	}
	lines = append(lines, indentBlock(copyMethod(schema), 1))
	lines = append(lines, "  ")
	lines = append(lines, indentBlock(toJSONMethod(schema), 1))
	lines = append(lines, "  ")
	lines = append(lines, indentBlock(fromJSONMethod(schema), 1))
	lines = append(lines, "}")
	return strings.Join(lines, "\n")
}

func propertyLines(schema model.EntitySchema) []string {
	lines := make([]string, 0, len(schema.Properties))
	for _, prop := range schema.Properties {
		optional := ""
		if prop.Optional {
			optional = "?"
		}
		readonly := ""
		if prop.Name == model.IDName {
			readonly = "readonly "
		}
		lines = append(lines, fmt.Sprintf("  public %s%s%s: %s;", readonly, prop.Name, optional, prop.Type.ArkTS()))
	}
	return lines
}

func constructorParams(schema model.EntitySchema) []string {
	lines := make([]string, 0, len(schema.Properties))
	for i, prop := range schema.Properties {
		optional := ""
		if prop.Optional {
			optional = "?"
		}
		line := fmt.Sprintf("    public %s%s: %s%s", prop.Name, optional, prop.Type.ArkTS(), defaultValue(prop))
		if i < len(schema.Properties)-1 {
			line += ","
		}
		lines = append(lines, line)
	}
	return lines
}

func defaultValue(prop model.Property) string {
	if prop.Name == model.IDName {
		return " = 0"
	}
	if prop.Optional {
		return ""
	}
	switch prop.Type {
	case model.TypeString:
		return " = ''"
	case model.TypeNumber:
		return " = 0"
	case model.TypeBoolean:
		return " = false"
	case model.TypeDate:
		return " = new Date()"
	}
	return ""
}

func copyMethod(schema model.EntitySchema) string {
	names := model.Derive(schema.Entity)
	params := make([]string, 0, len(schema.Properties))
	args := make([]string, 0, len(schema.Properties))
	for _, prop := range schema.Properties {
		params = append(params, fmt.Sprintf("%s?: %s", prop.Name, prop.Type.ArkTS()))
		args = append(args, fmt.Sprintf("updates.%s ?? this.%s", prop.Name, prop.Name))
	}

	var b strings.Builder
	b.WriteString("/**\n")
	b.WriteString("   * Cria uma cópia do objeto\n")
	b.WriteString("   */\n")
	fmt.Fprintf(&b, "  copy(updates?: { %s }): %s {\n", strings.Join(params, ", "), names.Entity)
	b.WriteString("    if (!updates) updates = {};\n")
	fmt.Fprintf(&b, "    return new %s(\n", names.Entity)
	fmt.Fprintf(&b, "      %s\n", strings.Join(args, ",\n      "))
	b.WriteString("    );\n")
	b.WriteString("  }")
	return b.String()
}

func toJSONMethod(schema model.EntitySchema) string {
	fields := make([]string, 0, len(schema.Properties))
	for _, prop := range schema.Properties {
		switch {
		case prop.Type == model.TypeDate && prop.Optional:
			fields = append(fields, fmt.Sprintf("%s: this.%s?.toISOString()", prop.Name, prop.Name))
		case prop.Type == model.TypeDate:
			fields = append(fields, fmt.Sprintf("%s: this.%s.toISOString()", prop.Name, prop.Name))
		default:
			fields = append(fields, fmt.Sprintf("%s: this.%s", prop.Name, prop.Name))
		}
	}

	var b strings.Builder
	b.WriteString("/**\n")
	b.WriteString("   * Converte para objeto simples\n")
	b.WriteString("   */\n")
	b.WriteString("  toJson(): Record<string, Object> {\n")
	b.WriteString("    return {\n")
	fmt.Fprintf(&b, "      %s\n", strings.Join(fields, ",\n      "))
	b.WriteString("    };\n")
	b.WriteString("  }")
	return b.String()
}

func fromJSONMethod(schema model.EntitySchema) string {
	names := model.Derive(schema.Entity)
	args := make([]string, 0, len(schema.Properties))
	for _, prop := range schema.Properties {
		if prop.Type == model.TypeDate {
			args = append(args, fmt.Sprintf("new Date(json.%s as string)", prop.Name))
			continue
		}
		args = append(args, fmt.Sprintf("json.%s as %s", prop.Name, prop.Type.ArkTS()))
	}

	var b strings.Builder
	b.WriteString("/**\n")
	b.WriteString("   * Cria instância a partir de JSON\n")
	b.WriteString("   */\n")
	fmt.Fprintf(&b, "  static fromJson(json: Record<string, Object>): %s {\n", names.Entity)
	fmt.Fprintf(&b, "    return new %s(\n", names.Entity)
	fmt.Fprintf(&b, "      %s\n", strings.Join(args, ",\n      "))
	b.WriteString("    );\n")
	b.WriteString("  }")
	return b.String()
}
