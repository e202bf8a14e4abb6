package arkts

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-arkgen/pkg/model"
)

// RepositoryInterface renders the domain repository contract with the
// five CRUD operations.
func RepositoryInterface(schema model.EntitySchema) string {
	n := model.Derive(schema.Entity)

	var b strings.Builder
	fmt.Fprintf(&b, "import { %s } from '../entities/%s';\n", n.Entity, n.Entity)
	b.WriteString("\n")
	fmt.Fprintf(&b, "export interface I%sRepository {\n", n.Entity)
	fmt.Fprintf(&b, "  get%s(): Promise<%s[]>;\n", n.Plural, n.Entity)
	fmt.Fprintf(&b, "  get%sById(id: number): Promise<%s>;\n", n.Entity, n.Entity)
	fmt.Fprintf(&b, "  create%s(entity: %s): Promise<%s>;\n", n.Entity, n.Entity, n.Entity)
	fmt.Fprintf(&b, "  update%s(entity: %s): Promise<%s>;\n", n.Entity, n.Entity, n.Entity)
	fmt.Fprintf(&b, "  delete%s(id: number): Promise<void>;\n", n.Entity)
	b.WriteString("}")
	return b.String()
}

// RepositoryImpl renders the data-layer repository. With cache enabled
// the list operation tries the remote datasource, mirrors the result
// into the local one, and falls back to cached data on failure.
func RepositoryImpl(schema model.EntitySchema) string {
	n := model.Derive(schema.Entity)

	var b strings.Builder
	fmt.Fprintf(&b, "import { %s } from '../../domain/entities/%s';\n", n.Entity, n.Entity)
	fmt.Fprintf(&b, "import { I%sRepository } from '../../domain/repositories/I%sRepository';\n", n.Entity, n.Entity)
	fmt.Fprintf(&b, "import { %sMapper } from '../models/%sModel';\n", n.Entity, n.Entity)
	fmt.Fprintf(&b, "import { I%sRemoteDataSource } from '../datasources/I%sRemoteDataSource';\n", n.Entity, n.Entity)
	if schema.IncludeCache {
		fmt.Fprintf(&b, "import { I%sLocalDataSource } from '../datasources/I%sLocalDataSource';\n", n.Entity, n.Entity)
	} else {
		b.WriteString("\n")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "export class %sRepositoryImpl implements I%sRepository {\n", n.Entity, n.Entity)
	b.WriteString("  constructor(\n")
	if schema.IncludeCache {
		fmt.Fprintf(&b, "    private remoteDataSource: I%sRemoteDataSource,\n", n.Entity)
		fmt.Fprintf(&b, "    private localDataSource: I%sLocalDataSource\n", n.Entity)
	} else {
		fmt.Fprintf(&b, "    private remoteDataSource: I%sRemoteDataSource\n", n.Entity)
	}
	b.WriteString("  ) {}\n")
	b.WriteString("  \n")
	fmt.Fprintf(&b, "  async get%s(): Promise<%s[]> {\n", n.Plural, n.Entity)
	if schema.IncludeCache {
		b.WriteString("    try {\n")
		fmt.Fprintf(&b, "      const dtos = await this.remoteDataSource.fetch%s();\n", n.Plural)
		fmt.Fprintf(&b, "      await this.localDataSource.cache%s(dtos);\n", n.Plural)
		fmt.Fprintf(&b, "      return %sMapper.toDomainList(dtos);\n", n.Entity)
		b.WriteString("    } catch (error) {\n")
		fmt.Fprintf(&b, "      const cachedDtos = await this.localDataSource.getCached%s();\n", n.Plural)
		fmt.Fprintf(&b, "      return %sMapper.toDomainList(cachedDtos);\n", n.Entity)
		b.WriteString("    }\n")
	} else {
		fmt.Fprintf(&b, "    const dtos = await this.remoteDataSource.fetch%s();\n", n.Plural)
		fmt.Fprintf(&b, "    return %sMapper.toDomainList(dtos);\n", n.Entity)
	}
	b.WriteString("  }\n")
	b.WriteString("  \n")
	fmt.Fprintf(&b, "  async get%sById(id: number): Promise<%s> {\n", n.Entity, n.Entity)
	fmt.Fprintf(&b, "    const dto = await this.remoteDataSource.fetch%sById(id);\n", n.Entity)
	fmt.Fprintf(&b, "    return %sMapper.toDomain(dto);\n", n.Entity)
	b.WriteString("  }\n")
	b.WriteString("  \n")
	fmt.Fprintf(&b, "  async create%s(entity: %s): Promise<%s> {\n", n.Entity, n.Entity, n.Entity)
	fmt.Fprintf(&b, "    const dto = %sMapper.toDTO(entity);\n", n.Entity)
	fmt.Fprintf(&b, "    const createdDto = await this.remoteDataSource.create%s(dto);\n", n.Entity)
	fmt.Fprintf(&b, "    return %sMapper.toDomain(createdDto);\n", n.Entity)
	b.WriteString("  }\n")
	b.WriteString("  \n")
	fmt.Fprintf(&b, "  async update%s(entity: %s): Promise<%s> {\n", n.Entity, n.Entity, n.Entity)
	fmt.Fprintf(&b, "    const dto = %sMapper.toDTO(entity);\n", n.Entity)
	fmt.Fprintf(&b, "    const updatedDto = await this.remoteDataSource.update%s(dto);\n", n.Entity)
	fmt.Fprintf(&b, "    return %sMapper.toDomain(updatedDto);\n", n.Entity)
	b.WriteString("  }\n")
	b.WriteString("  \n")
	fmt.Fprintf(&b, "  async delete%s(id: number): Promise<void> {\n", n.Entity)
	fmt.Fprintf(&b, "    await this.remoteDataSource.delete%s(id);\n", n.Entity)
	b.WriteString("  }\n")
	b.WriteString("}")
	return b.String()
}

// SimpleRepository renders the single-layer repository used by the
// simplified architecture: the entity class talks to a shared
// ApiService directly, no DTO in between.
func SimpleRepository(schema model.EntitySchema) string {
	n := model.Derive(schema.Entity)

	var b strings.Builder
	fmt.Fprintf(&b, "import { %s } from '../models/%s';\n", n.Entity, n.Entity)
	b.WriteString("import { ApiService } from '../datasources/remote/ApiService';\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "export class %sRepository {\n", n.Entity)
	b.WriteString("  private apiService: ApiService = new ApiService();\n")
	fmt.Fprintf(&b, "  private endpoint: string = '/%s';\n", n.Plural)
	b.WriteString("  \n")
	fmt.Fprintf(&b, "  async get%s(): Promise<%s[]> {\n", n.Plural, n.Entity)
	b.WriteString("    const response = await this.apiService.get<{ data: Record<string, Object>[] }>(this.endpoint);\n")
	fmt.Fprintf(&b, "    return response.data.map(data => %s.fromJson(data));\n", n.Entity)
	b.WriteString("  }\n")
	b.WriteString("  \n")
	fmt.Fprintf(&b, "  async get%sById(id: number): Promise<%s> {\n", n.Entity, n.Entity)
	b.WriteString("    const response = await this.apiService.get<{ data: Record<string, Object> }>(`${this.endpoint}/${id}`);\n")
	fmt.Fprintf(&b, "    return %s.fromJson(response.data);\n", n.Entity)
	b.WriteString("  }\n")
	b.WriteString("  \n")
	fmt.Fprintf(&b, "  async create%s(entity: %s): Promise<%s> {\n", n.Entity, n.Entity, n.Entity)
	b.WriteString("    const response = await this.apiService.post<{ data: Record<string, Object> }>(\n")
	b.WriteString("      this.endpoint,\n")
	b.WriteString("      entity.toJson()\n")
	b.WriteString("    );\n")
	fmt.Fprintf(&b, "    return %s.fromJson(response.data);\n", n.Entity)
	b.WriteString("  }\n")
	b.WriteString("  \n")
	fmt.Fprintf(&b, "  async update%s(entity: %s): Promise<%s> {\n", n.Entity, n.Entity, n.Entity)
	b.WriteString("    const response = await this.apiService.put<{ data: Record<string, Object> }>(\n")
	b.WriteString("      `${this.endpoint}/${entity.id}`,\n")
	b.WriteString("      entity.toJson()\n")
	b.WriteString("    );\n")
	fmt.Fprintf(&b, "    return %s.fromJson(response.data);\n", n.Entity)
	b.WriteString("  }\n")
	b.WriteString("  \n")
	fmt.Fprintf(&b, "  async delete%s(id: number): Promise<void> {\n", n.Entity)
	b.WriteString("    await this.apiService.delete<void>(`${this.endpoint}/${id}`);\n")
	b.WriteString("  }\n")
	b.WriteString("}")
	return b.String()
}
