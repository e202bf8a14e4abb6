package arkts

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-arkgen/pkg/model"
)

// GetAllUseCase renders the list use case.
func GetAllUseCase(schema model.EntitySchema) string {
	n := model.Derive(schema.Entity)

	var b strings.Builder
	writeUseCaseImports(&b, n, true)
	fmt.Fprintf(&b, "export class Get%sUseCase {\n", n.Plural)
	fmt.Fprintf(&b, "  constructor(private repository: I%sRepository) {}\n", n.Entity)
	b.WriteString("  \n")
	fmt.Fprintf(&b, "  async execute(): Promise<%s[]> {\n", n.Entity)
	fmt.Fprintf(&b, "    return await this.repository.get%s();\n", n.Plural)
	b.WriteString("  }\n")
	b.WriteString("}")
	return b.String()
}

// GetByIDUseCase renders the fetch-by-identifier use case, guarding
// against non-positive identifiers.
func GetByIDUseCase(schema model.EntitySchema) string {
	n := model.Derive(schema.Entity)

	var b strings.Builder
	writeUseCaseImports(&b, n, true)
	fmt.Fprintf(&b, "export class Get%sByIdUseCase {\n", n.Entity)
	fmt.Fprintf(&b, "  constructor(private repository: I%sRepository) {}\n", n.Entity)
	b.WriteString("  \n")
	fmt.Fprintf(&b, "  async execute(id: number): Promise<%s> {\n", n.Entity)
	b.WriteString("    if (id <= 0) {\n")
	b.WriteString("      throw new Error('ID inválido');\n")
	b.WriteString("    }\n")
	fmt.Fprintf(&b, "    return await this.repository.get%sById(id);\n", n.Entity)
	b.WriteString("  }\n")
	b.WriteString("}")
	return b.String()
}

// CreateUseCase renders the create use case. It takes every property
// except the identifier and constructs the entity with a zero id.
func CreateUseCase(schema model.EntitySchema) string {
	n := model.Derive(schema.Entity)

	var b strings.Builder
	writeUseCaseImports(&b, n, true)
	fmt.Fprintf(&b, "export class Create%sUseCase {\n", n.Entity)
	fmt.Fprintf(&b, "  constructor(private repository: I%sRepository) {}\n", n.Entity)
	b.WriteString("  \n")
	fmt.Fprintf(&b, "  async execute(%s): Promise<%s> {\n", createParams(schema), n.Entity)
	fmt.Fprintf(&b, "    const entity = new %s(%s);\n", n.Entity, entityCreationArgs(schema))
	fmt.Fprintf(&b, "    return await this.repository.create%s(entity);\n", n.Entity)
	b.WriteString("  }\n")
	b.WriteString("}")
	return b.String()
}

// UpdateUseCase renders the update use case: fetch, copy with partial
// updates, persist.
func UpdateUseCase(schema model.EntitySchema) string {
	n := model.Derive(schema.Entity)

	var b strings.Builder
	writeUseCaseImports(&b, n, true)
	fmt.Fprintf(&b, "export class Update%sUseCase {\n", n.Entity)
	fmt.Fprintf(&b, "  constructor(private repository: I%sRepository) {}\n", n.Entity)
	b.WriteString("  \n")
	fmt.Fprintf(&b, "  async execute(id: number, updates: Partial<%s>): Promise<%s> {\n", n.Entity, n.Entity)
	fmt.Fprintf(&b, "    const existing = await this.repository.get%sById(id);\n", n.Entity)
	b.WriteString("    const updated = existing.copy(updates);\n")
	fmt.Fprintf(&b, "    return await this.repository.update%s(updated);\n", n.Entity)
	b.WriteString("  }\n")
	b.WriteString("}")
	return b.String()
}

// DeleteUseCase renders the delete use case. It only needs the
// repository import since no entity value crosses its boundary.
func DeleteUseCase(schema model.EntitySchema) string {
	n := model.Derive(schema.Entity)

	var b strings.Builder
	writeUseCaseImports(&b, n, false)
	fmt.Fprintf(&b, "export class Delete%sUseCase {\n", n.Entity)
	fmt.Fprintf(&b, "  constructor(private repository: I%sRepository) {}\n", n.Entity)
	b.WriteString("  \n")
	b.WriteString("  async execute(id: number): Promise<void> {\n")
	b.WriteString("    if (id <= 0) {\n")
	b.WriteString("      throw new Error('ID inválido');\n")
	b.WriteString("    }\n")
	fmt.Fprintf(&b, "    await this.repository.delete%s(id);\n", n.Entity)
	b.WriteString("  }\n")
	b.WriteString("}")
	return b.String()
}

func writeUseCaseImports(b *strings.Builder, n model.Names, withEntity bool) {
	if withEntity {
		fmt.Fprintf(b, "import { %s } from '../../entities/%s';\n", n.Entity, n.Entity)
	}
	fmt.Fprintf(b, "import { I%sRepository } from '../../repositories/I%sRepository';\n", n.Entity, n.Entity)
	b.WriteString("\n")
}
