package arkts

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-arkgen/pkg/model"
)

// RemoteDataSourceInterface renders the remote datasource contract in
// DTO terms.
func RemoteDataSourceInterface(schema model.EntitySchema) string {
	n := model.Derive(schema.Entity)

	var b strings.Builder
	fmt.Fprintf(&b, "import { %sDTO } from '../models/%sModel';\n", n.Entity, n.Entity)
	b.WriteString("\n")
	fmt.Fprintf(&b, "export interface I%sRemoteDataSource {\n", n.Entity)
	fmt.Fprintf(&b, "  fetch%s(): Promise<%sDTO[]>;\n", n.Plural, n.Entity)
	fmt.Fprintf(&b, "  fetch%sById(id: number): Promise<%sDTO>;\n", n.Entity, n.Entity)
	fmt.Fprintf(&b, "  create%s(dto: %sDTO): Promise<%sDTO>;\n", n.Entity, n.Entity, n.Entity)
	fmt.Fprintf(&b, "  update%s(dto: %sDTO): Promise<%sDTO>;\n", n.Entity, n.Entity, n.Entity)
	fmt.Fprintf(&b, "  delete%s(id: number): Promise<void>;\n", n.Entity)
	b.WriteString("}")
	return b.String()
}

// RemoteDataSourceImpl renders the HTTP-backed datasource. The resource
// endpoint is the pluralized entity name, and every call funnels through
// one promise-wrapped request helper.
func RemoteDataSourceImpl(schema model.EntitySchema) string {
	n := model.Derive(schema.Entity)

	var b strings.Builder
	b.WriteString("import http from '@ohos.net.http';\n")
	fmt.Fprintf(&b, "import { %sDTO } from '../models/%sModel';\n", n.Entity, n.Entity)
	fmt.Fprintf(&b, "import { I%sRemoteDataSource } from './I%sRemoteDataSource';\n", n.Entity, n.Entity)
	b.WriteString("\n")
	fmt.Fprintf(&b, "export class %sRemoteDataSourceImpl implements I%sRemoteDataSource {\n", n.Entity, n.Entity)
	b.WriteString("  private baseUrl: string = 'https://api.example.com';\n")
	fmt.Fprintf(&b, "  private endpoint: string = '/%s';\n", n.Plural)
	b.WriteString("  \n")
	fmt.Fprintf(&b, "  async fetch%s(): Promise<%sDTO[]> {\n", n.Plural, n.Entity)
	fmt.Fprintf(&b, "    const response = await this.makeRequest<{ data: %sDTO[] }>(\n", n.Entity)
	b.WriteString("      this.endpoint,\n")
	b.WriteString("      'GET'\n")
	b.WriteString("    );\n")
	b.WriteString("    return response.data;\n")
	b.WriteString("  }\n")
	b.WriteString("  \n")
	fmt.Fprintf(&b, "  async fetch%sById(id: number): Promise<%sDTO> {\n", n.Entity, n.Entity)
	fmt.Fprintf(&b, "    const response = await this.makeRequest<{ data: %sDTO }>(\n", n.Entity)
	b.WriteString("      `${this.endpoint}/${id}`,\n")
	b.WriteString("      'GET'\n")
	b.WriteString("    );\n")
	b.WriteString("    return response.data;\n")
	b.WriteString("  }\n")
	b.WriteString("  \n")
	fmt.Fprintf(&b, "  async create%s(dto: %sDTO): Promise<%sDTO> {\n", n.Entity, n.Entity, n.Entity)
	fmt.Fprintf(&b, "    const response = await this.makeRequest<{ data: %sDTO }>(\n", n.Entity)
	b.WriteString("      this.endpoint,\n")
	b.WriteString("      'POST',\n")
	b.WriteString("      dto\n")
	b.WriteString("    );\n")
	b.WriteString("    return response.data;\n")
	b.WriteString("  }\n")
	b.WriteString("  \n")
	fmt.Fprintf(&b, "  async update%s(dto: %sDTO): Promise<%sDTO> {\n", n.Entity, n.Entity, n.Entity)
	fmt.Fprintf(&b, "    const response = await this.makeRequest<{ data: %sDTO }>(\n", n.Entity)
	b.WriteString("      `${this.endpoint}/${dto.id}`,\n")
	b.WriteString("      'PUT',\n")
	b.WriteString("      dto\n")
	b.WriteString("    );\n")
	b.WriteString("    return response.data;\n")
	b.WriteString("  }\n")
	b.WriteString("  \n")
	fmt.Fprintf(&b, "  async delete%s(id: number): Promise<void> {\n", n.Entity)
	b.WriteString("    await this.makeRequest<void>(`${this.endpoint}/${id}`, 'DELETE');\n")
	b.WriteString("  }\n")
	b.WriteString("  \n")
	b.WriteString("  private async makeRequest<T>(\n")
	b.WriteString("    endpoint: string,\n")
	b.WriteString("    method: string,\n")
	b.WriteString("    body?: Object\n")
	b.WriteString("  ): Promise<T> {\n")
	b.WriteString("    return new Promise((resolve, reject) => {\n")
	b.WriteString("      const httpRequest = http.createHttp();\n")
	b.WriteString("      \n")
	b.WriteString("      httpRequest.request(`${this.baseUrl}${endpoint}`, {\n")
	b.WriteString("        method: method as http.RequestMethod,\n")
	b.WriteString("        header: { 'Content-Type': 'application/json' },\n")
	b.WriteString("        extraData: body ? JSON.stringify(body) : undefined,\n")
	b.WriteString("        connectTimeout: 30000,\n")
	b.WriteString("        readTimeout: 30000,\n")
	b.WriteString("      }, (err, data) => {\n")
	b.WriteString("        if (!err && (data.responseCode === 200 || data.responseCode === 201)) {\n")
	b.WriteString("          resolve(JSON.parse(data.result as string) as T);\n")
	b.WriteString("        } else {\n")
	b.WriteString("          reject(new Error(err?.message || 'Request failed'));\n")
	b.WriteString("        }\n")
	b.WriteString("        httpRequest.destroy();\n")
	b.WriteString("      });\n")
	b.WriteString("    });\n")
	b.WriteString("  }\n")
	b.WriteString("}")
	return b.String()
}

// LocalDataSourceInterface renders the cache datasource contract.
func LocalDataSourceInterface(schema model.EntitySchema) string {
	n := model.Derive(schema.Entity)

	var b strings.Builder
	fmt.Fprintf(&b, "import { %sDTO } from '../models/%sModel';\n", n.Entity, n.Entity)
	b.WriteString("\n")
	fmt.Fprintf(&b, "export interface I%sLocalDataSource {\n", n.Entity)
	fmt.Fprintf(&b, "  getCached%s(): Promise<%sDTO[]>;\n", n.Plural, n.Entity)
	fmt.Fprintf(&b, "  cache%s(dtos: %sDTO[]): Promise<void>;\n", n.Plural, n.Entity)
	b.WriteString("  clearCache(): Promise<void>;\n")
	b.WriteString("}")
	return b.String()
}

// LocalDataSourceImpl renders the preferences-backed cache datasource.
// Every operation guards against use before initialize(context).
func LocalDataSourceImpl(schema model.EntitySchema) string {
	n := model.Derive(schema.Entity)

	var b strings.Builder
	b.WriteString("import preferences from '@ohos.data.preferences';\n")
	fmt.Fprintf(&b, "import { %sDTO } from '../models/%sModel';\n", n.Entity, n.Entity)
	fmt.Fprintf(&b, "import { I%sLocalDataSource } from './I%sLocalDataSource';\n", n.Entity, n.Entity)
	b.WriteString("\n")
	fmt.Fprintf(&b, "export class %sLocalDataSourceImpl implements I%sLocalDataSource {\n", n.Entity, n.Entity)
	fmt.Fprintf(&b, "  private readonly CACHE_KEY = '%s_cache';\n", n.Lower)
	b.WriteString("  private preferencesStore?: preferences.Preferences;\n")
	b.WriteString("  \n")
	b.WriteString("  async initialize(context: Context): Promise<void> {\n")
	b.WriteString("    this.preferencesStore = await preferences.getPreferences(context, 'app_cache');\n")
	b.WriteString("  }\n")
	b.WriteString("  \n")
	fmt.Fprintf(&b, "  async getCached%s(): Promise<%sDTO[]> {\n", n.Plural, n.Entity)
	b.WriteString("    if (!this.preferencesStore) {\n")
	b.WriteString("      throw new Error('DataSource not initialized');\n")
	b.WriteString("    }\n")
	b.WriteString("    \n")
	b.WriteString("    const cached = await this.preferencesStore.get(this.CACHE_KEY, '[]');\n")
	fmt.Fprintf(&b, "    return JSON.parse(cached as string) as %sDTO[];\n", n.Entity)
	b.WriteString("  }\n")
	b.WriteString("  \n")
	fmt.Fprintf(&b, "  async cache%s(dtos: %sDTO[]): Promise<void> {\n", n.Plural, n.Entity)
	b.WriteString("    if (!this.preferencesStore) {\n")
	b.WriteString("      throw new Error('DataSource not initialized');\n")
	b.WriteString("    }\n")
	b.WriteString("    \n")
	b.WriteString("    await this.preferencesStore.put(this.CACHE_KEY, JSON.stringify(dtos));\n")
	b.WriteString("    await this.preferencesStore.flush();\n")
	b.WriteString("  }\n")
	b.WriteString("  \n")
	b.WriteString("  async clearCache(): Promise<void> {\n")
	b.WriteString("    if (!this.preferencesStore) {\n")
	b.WriteString("      throw new Error('DataSource not initialized');\n")
	b.WriteString("    }\n")
	b.WriteString("    \n")
	b.WriteString("    await this.preferencesStore.delete(this.CACHE_KEY);\n")
	b.WriteString("    await this.preferencesStore.flush();\n")
	b.WriteString("  }\n")
	b.WriteString("}")
	return b.String()
}
