package arkts

import (
	"strings"
	"testing"
)

func TestRepositoryInterfaceOperations(t *testing.T) {
	got := RepositoryInterface(userSchema())

	for _, want := range []string{
		"import { User } from '../entities/User';",
		"export interface IUserRepository {",
		"  getusers(): Promise<User[]>;",
		"  getUserById(id: number): Promise<User>;",
		"  createUser(entity: User): Promise<User>;",
		"  updateUser(entity: User): Promise<User>;",
		"  deleteUser(id: number): Promise<void>;",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("interface missing %q", want)
		}
	}
}

func TestRepositoryImplConstructor(t *testing.T) {
	schema := userSchema()

	got := RepositoryImpl(schema)
	if !strings.Contains(got, "  constructor(\n    private remoteDataSource: IUserRemoteDataSource\n  ) {}") {
		t.Error("constructor should take only the remote datasource")
	}

	schema.IncludeCache = true
	got = RepositoryImpl(schema)
	if !strings.Contains(got, "    private remoteDataSource: IUserRemoteDataSource,\n    private localDataSource: IUserLocalDataSource\n") {
		t.Error("constructor should take both datasources with cache enabled")
	}
}

func TestSimpleRepositoryTalksToApiService(t *testing.T) {
	got := SimpleRepository(userSchema())

	for _, want := range []string{
		"import { ApiService } from '../datasources/remote/ApiService';",
		"  private apiService: ApiService = new ApiService();",
		"  private endpoint: string = '/users';",
		"    const response = await this.apiService.get<{ data: Record<string, Object>[] }>(this.endpoint);",
		"    return response.data.map(data => User.fromJson(data));",
		"      entity.toJson()",
		"    await this.apiService.delete<void>(`${this.endpoint}/${id}`);",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("repository missing %q", want)
		}
	}
	if strings.Contains(got, "Mapper") {
		t.Error("simplified repository should not use a DTO mapper")
	}
}
