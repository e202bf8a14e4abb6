package arkts

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-arkgen/pkg/model"
)

// ViewModel renders the presentation-layer view model wired to the five
// use cases. The list state field is the lowered entity name plus "s",
// independent of the pluralizer, while method names use the plural form.
func ViewModel(schema model.EntitySchema) string {
	n := model.Derive(schema.Entity)
	field := n.Lower + "s"

	var b strings.Builder
	b.WriteString("import { BaseViewModel } from './base/BaseViewModel';\n")
	fmt.Fprintf(&b, "import { %s } from '../../domain/entities/%s';\n", n.Entity, n.Entity)
	fmt.Fprintf(&b, "import { Get%sUseCase } from '../../domain/usecases/%s/Get%sUseCase';\n", n.Plural, n.Lower, n.Plural)
	fmt.Fprintf(&b, "import { Get%sByIdUseCase } from '../../domain/usecases/%s/Get%sByIdUseCase';\n", n.Entity, n.Lower, n.Entity)
	fmt.Fprintf(&b, "import { Create%sUseCase } from '../../domain/usecases/%s/Create%sUseCase';\n", n.Entity, n.Lower, n.Entity)
	fmt.Fprintf(&b, "import { Update%sUseCase } from '../../domain/usecases/%s/Update%sUseCase';\n", n.Entity, n.Lower, n.Entity)
	fmt.Fprintf(&b, "import { Delete%sUseCase } from '../../domain/usecases/%s/Delete%sUseCase';\n", n.Entity, n.Lower, n.Entity)
	b.WriteString("\n")
	b.WriteString("@Observed\n")
	fmt.Fprintf(&b, "export class %sViewModel extends BaseViewModel {\n", n.Entity)
	fmt.Fprintf(&b, "  @State %s: %s[] = [];\n", field, n.Entity)
	fmt.Fprintf(&b, "  @State selected%s: %s | null = null;\n", n.Entity, n.Entity)
	b.WriteString("  \n")
	b.WriteString("  constructor(\n")
	fmt.Fprintf(&b, "    private get%sUseCase: Get%sUseCase,\n", n.Plural, n.Plural)
	fmt.Fprintf(&b, "    private get%sByIdUseCase: Get%sByIdUseCase,\n", n.Entity, n.Entity)
	fmt.Fprintf(&b, "    private create%sUseCase: Create%sUseCase,\n", n.Entity, n.Entity)
	fmt.Fprintf(&b, "    private update%sUseCase: Update%sUseCase,\n", n.Entity, n.Entity)
	fmt.Fprintf(&b, "    private delete%sUseCase: Delete%sUseCase\n", n.Entity, n.Entity)
	b.WriteString("  ) {\n")
	b.WriteString("    super();\n")
	b.WriteString("  }\n")
	b.WriteString("  \n")
	fmt.Fprintf(&b, "  async load%s(): Promise<void> {\n", n.Plural)
	b.WriteString("    await this.executeUseCase(\n")
	fmt.Fprintf(&b, "      () => this.get%sUseCase.execute(),\n", n.Plural)
	b.WriteString("      (result) => {\n")
	fmt.Fprintf(&b, "        this.%s = result;\n", field)
	b.WriteString("      }\n")
	b.WriteString("    );\n")
	b.WriteString("  }\n")
	b.WriteString("  \n")
	fmt.Fprintf(&b, "  async load%sById(id: number): Promise<void> {\n", n.Entity)
	b.WriteString("    await this.executeUseCase(\n")
	fmt.Fprintf(&b, "      () => this.get%sByIdUseCase.execute(id),\n", n.Entity)
	b.WriteString("      (result) => {\n")
	fmt.Fprintf(&b, "        this.selected%s = result;\n", n.Entity)
	b.WriteString("      }\n")
	b.WriteString("    );\n")
	b.WriteString("  }\n")
	b.WriteString("  \n")
	fmt.Fprintf(&b, "  async create%s(%s): Promise<boolean> {\n", n.Entity, createParams(schema))
	b.WriteString("    let success = false;\n")
	b.WriteString("    await this.executeUseCase(\n")
	fmt.Fprintf(&b, "      () => this.create%sUseCase.execute(%s),\n", n.Entity, createArgs(schema))
	b.WriteString("      (result) => {\n")
	fmt.Fprintf(&b, "        this.%s.push(result);\n", field)
	b.WriteString("        success = true;\n")
	b.WriteString("      }\n")
	b.WriteString("    );\n")
	b.WriteString("    return success;\n")
	b.WriteString("  }\n")
	b.WriteString("  \n")
	fmt.Fprintf(&b, "  async update%s(id: number, updates: Partial<%s>): Promise<boolean> {\n", n.Entity, n.Entity)
	b.WriteString("    let success = false;\n")
	b.WriteString("    await this.executeUseCase(\n")
	fmt.Fprintf(&b, "      () => this.update%sUseCase.execute(id, updates),\n", n.Entity)
	b.WriteString("      (result) => {\n")
	fmt.Fprintf(&b, "        const index = this.%s.findIndex(e => e.id === id);\n", field)
	b.WriteString("        if (index !== -1) {\n")
	fmt.Fprintf(&b, "          this.%s[index] = result;\n", field)
	b.WriteString("        }\n")
	b.WriteString("        success = true;\n")
	b.WriteString("      }\n")
	b.WriteString("    );\n")
	b.WriteString("    return success;\n")
	b.WriteString("  }\n")
	b.WriteString("  \n")
	fmt.Fprintf(&b, "  async delete%s(id: number): Promise<boolean> {\n", n.Entity)
	b.WriteString("    let success = false;\n")
	b.WriteString("    await this.executeUseCase(\n")
	fmt.Fprintf(&b, "      () => this.delete%sUseCase.execute(id),\n", n.Entity)
	b.WriteString("      () => {\n")
	fmt.Fprintf(&b, "        this.%s = this.%s.filter(e => e.id !== id);\n", field, field)
	b.WriteString("        success = true;\n")
	b.WriteString("      }\n")
	b.WriteString("    );\n")
	b.WriteString("    return success;\n")
	b.WriteString("  }\n")
	b.WriteString("  \n")
	fmt.Fprintf(&b, "  select%s(entity: %s): void {\n", n.Entity, n.Entity)
	fmt.Fprintf(&b, "    this.selected%s = entity;\n", n.Entity)
	b.WriteString("  }\n")
	b.WriteString("  \n")
	b.WriteString("  clearSelected(): void {\n")
	fmt.Fprintf(&b, "    this.selected%s = null;\n", n.Entity)
	b.WriteString("  }\n")
	b.WriteString("  \n")
	b.WriteString("  onDestroy(): void {\n")
	fmt.Fprintf(&b, "    this.%s = [];\n", field)
	fmt.Fprintf(&b, "    this.selected%s = null;\n", n.Entity)
	b.WriteString("  }\n")
	b.WriteString("}")
	return b.String()
}

// SimpleViewModel renders the reduced view model of the simplified
// architecture: load, create and delete against an owned repository,
// no per-operation use cases.
func SimpleViewModel(schema model.EntitySchema) string {
	n := model.Derive(schema.Entity)
	field := n.Lower + "s"

	var b strings.Builder
	b.WriteString("import { BaseViewModel } from './base/BaseViewModel';\n")
	fmt.Fprintf(&b, "import { %s } from '../data/models/%s';\n", n.Entity, n.Entity)
	fmt.Fprintf(&b, "import { %sRepository } from '../data/repositories/%sRepository';\n", n.Entity, n.Entity)
	b.WriteString("\n")
	b.WriteString("@Observed\n")
	fmt.Fprintf(&b, "export class %sViewModel extends BaseViewModel {\n", n.Entity)
	fmt.Fprintf(&b, "  @State %s: %s[] = [];\n", field, n.Entity)
	fmt.Fprintf(&b, "  @State selected%s: %s | null = null;\n", n.Entity, n.Entity)
	b.WriteString("  \n")
	fmt.Fprintf(&b, "  private repository: %sRepository = new %sRepository();\n", n.Entity, n.Entity)
	b.WriteString("  \n")
	fmt.Fprintf(&b, "  async load%s(): Promise<void> {\n", n.Plural)
	b.WriteString("    await this.executeAsync(\n")
	fmt.Fprintf(&b, "      () => this.repository.get%s(),\n", n.Plural)
	b.WriteString("      (result) => {\n")
	fmt.Fprintf(&b, "        this.%s = result;\n", field)
	b.WriteString("      }\n")
	b.WriteString("    );\n")
	b.WriteString("  }\n")
	b.WriteString("  \n")
	fmt.Fprintf(&b, "  async create%s(%s): Promise<boolean> {\n", n.Entity, createParams(schema))
	b.WriteString("    let success = false;\n")
	fmt.Fprintf(&b, "    const entity = new %s(0, %s);\n", n.Entity, createArgs(schema))
	b.WriteString("    \n")
	b.WriteString("    await this.executeAsync(\n")
	fmt.Fprintf(&b, "      () => this.repository.create%s(entity),\n", n.Entity)
	b.WriteString("      (result) => {\n")
	fmt.Fprintf(&b, "        this.%s.push(result);\n", field)
	b.WriteString("        success = true;\n")
	b.WriteString("      }\n")
	b.WriteString("    );\n")
	b.WriteString("    return success;\n")
	b.WriteString("  }\n")
	b.WriteString("  \n")
	fmt.Fprintf(&b, "  async delete%s(id: number): Promise<boolean> {\n", n.Entity)
	b.WriteString("    let success = false;\n")
	b.WriteString("    await this.executeAsync(\n")
	fmt.Fprintf(&b, "      () => this.repository.delete%s(id),\n", n.Entity)
	b.WriteString("      () => {\n")
	fmt.Fprintf(&b, "        this.%s = this.%s.filter(e => e.id !== id);\n", field, field)
	b.WriteString("        success = true;\n")
	b.WriteString("      }\n")
	b.WriteString("    );\n")
	b.WriteString("    return success;\n")
	b.WriteString("  }\n")
	b.WriteString("  \n")
	b.WriteString("  onDestroy(): void {\n")
	fmt.Fprintf(&b, "    this.%s = [];\n", field)
	fmt.Fprintf(&b, "    this.selected%s = null;\n", n.Entity)
	b.WriteString("  }\n")
	b.WriteString("}")
	return b.String()
}
