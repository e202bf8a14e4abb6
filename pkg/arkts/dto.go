package arkts

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-arkgen/pkg/model"
)

// Model renders the data-layer DTO interface and its mapper. Date
// properties degrade to plain strings on the DTO side and round-trip
// through toISOString / new Date in the mapper.
func Model(schema model.EntitySchema) string {
	n := model.Derive(schema.Entity)

	var b strings.Builder
	fmt.Fprintf(&b, "import { %s } from '../../domain/entities/%s';\n", n.Entity, n.Entity)
	b.WriteString("\n")
	fmt.Fprintf(&b, "export interface %sDTO {\n", n.Entity)
	for _, prop := range schema.Properties {
		optional := ""
		if prop.Optional {
			optional = "?"
		}
		dtoType := prop.Type.ArkTS()
		if prop.Type == model.TypeDate {
			dtoType = "string"
		}
		fmt.Fprintf(&b, "  %s%s: %s;\n", prop.Name, optional, dtoType)
	}
	b.WriteString("}\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "export class %sMapper {\n", n.Entity)
	fmt.Fprintf(&b, "  static toDomain(dto: %sDTO): %s {\n", n.Entity, n.Entity)
	fmt.Fprintf(&b, "    return new %s(\n", n.Entity)
	fmt.Fprintf(&b, "%s\n", toDomainMapping(schema))
	b.WriteString("    );\n")
	b.WriteString("  }\n")
	b.WriteString("  \n")
	fmt.Fprintf(&b, "  static toDTO(entity: %s): %sDTO {\n", n.Entity, n.Entity)
	b.WriteString("    return {\n")
	fmt.Fprintf(&b, "%s\n", toDTOMapping(schema))
	b.WriteString("    };\n")
	b.WriteString("  }\n")
	b.WriteString("  \n")
	fmt.Fprintf(&b, "  static toDomainList(dtos: %sDTO[]): %s[] {\n", n.Entity, n.Entity)
	b.WriteString("    return dtos.map(dto => this.toDomain(dto));\n")
	b.WriteString("  }\n")
	b.WriteString("  \n")
	fmt.Fprintf(&b, "  static toDTOList(entities: %s[]): %sDTO[] {\n", n.Entity, n.Entity)
	b.WriteString("    return entities.map(entity => this.toDTO(entity));\n")
	b.WriteString("  }\n")
	b.WriteString("}")
	return b.String()
}

func toDomainMapping(schema model.EntitySchema) string {
	lines := make([]string, 0, len(schema.Properties))
	for _, prop := range schema.Properties {
		if prop.Type == model.TypeDate {
			lines = append(lines, fmt.Sprintf("      new Date(dto.%s)", prop.Name))
			continue
		}
		lines = append(lines, fmt.Sprintf("      dto.%s", prop.Name))
	}
	return strings.Join(lines, ",\n")
}

func toDTOMapping(schema model.EntitySchema) string {
	lines := make([]string, 0, len(schema.Properties))
	for _, prop := range schema.Properties {
		if prop.Type == model.TypeDate {
			lines = append(lines, fmt.Sprintf("      %s: entity.%s.toISOString()", prop.Name, prop.Name))
			continue
		}
		lines = append(lines, fmt.Sprintf("      %s: entity.%s", prop.Name, prop.Name))
	}
	return strings.Join(lines, ",\n")
}
