package clean

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-arkgen/pkg/model"
	"github.com/goliatone/go-arkgen/pkg/testsupport"
)

func mustRenderer(t *testing.T) *Renderer {
	t.Helper()

	renderer, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return renderer
}

func mustNormalize(t *testing.T, schema model.EntitySchema) model.EntitySchema {
	t.Helper()

	normalized, err := model.Normalize(schema)
	if err != nil {
		t.Fatalf("normalize schema: %v", err)
	}
	return normalized
}

func renderFiles(t *testing.T, schema model.EntitySchema) []model.GeneratedFile {
	t.Helper()

	result, err := mustRenderer(t).Render(testsupport.Context(), mustNormalize(t, schema))
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	return result.Files
}

func filePaths(files []model.GeneratedFile) []string {
	paths := make([]string, 0, len(files))
	for _, file := range files {
		paths = append(paths, file.Path)
	}
	return paths
}

func findFile(t *testing.T, files []model.GeneratedFile, path string) model.GeneratedFile {
	t.Helper()

	for _, file := range files {
		if file.Path == path {
			return file
		}
	}
	t.Fatalf("expected file %s in result, got %v", path, filePaths(files))
	return model.GeneratedFile{}
}

func plainUserSchema() model.EntitySchema {
	return model.EntitySchema{
		Entity: "User",
		Properties: []model.Property{
			{Name: "id", Type: model.TypeNumber},
			{Name: "name", Type: model.TypeString},
			{Name: "email", Type: model.TypeString, Optional: true},
		},
		Architecture: model.ArchitectureClean,
	}
}

func TestRendererArchitecture(t *testing.T) {
	if got := mustRenderer(t).Architecture(); got != model.ArchitectureClean {
		t.Fatalf("Architecture() = %q, want %q", got, model.ArchitectureClean)
	}
}

func TestRenderFileSet(t *testing.T) {
	base := []string{
		"domain/entities/User.ets",
		"domain/repositories/IUserRepository.ets",
		"domain/usecases/user/GetusersUseCase.ets",
		"domain/usecases/user/GetUserByIdUseCase.ets",
		"domain/usecases/user/CreateUserUseCase.ets",
		"domain/usecases/user/UpdateUserUseCase.ets",
		"domain/usecases/user/DeleteUserUseCase.ets",
		"data/models/UserModel.ets",
		"data/datasources/IUserRemoteDataSource.ets",
		"data/datasources/UserRemoteDataSourceImpl.ets",
	}
	tail := []string{
		"data/repositories/UserRepositoryImpl.ets",
		"presentation/viewmodels/UserViewModel.ets",
		"presentation/views/pages/UserPage.ets",
	}
	cacheFiles := []string{
		"data/datasources/IUserLocalDataSource.ets",
		"data/datasources/UserLocalDataSourceImpl.ets",
	}

	tests := []struct {
		name  string
		cache bool
		want  []string
	}{
		{name: "without cache", want: append(append([]string{}, base...), tail...)},
		{name: "with cache", cache: true, want: append(append(append([]string{}, base...), cacheFiles...), tail...)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			schema := plainUserSchema()
			schema.IncludeCache = tc.cache

			got := filePaths(renderFiles(t, schema))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("file paths mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderBanners(t *testing.T) {
	for _, file := range renderFiles(t, plainUserSchema()) {
		if !strings.HasPrefix(file.Content, "// "+file.Path+"\n\n") {
			t.Errorf("%s: content does not open with its path banner", file.Path)
		}
	}
}

func TestRenderGoldenEntity(t *testing.T) {
	schema := testsupport.MustLoadSchema(t, "testdata/user.json")
	got := findFile(t, renderFiles(t, schema), "domain/entities/User.ets").Content

	golden := "testdata/User.ets.golden"
	if testsupport.WriteMaybeGolden(t, golden, []byte(got)) {
		return
	}
	want := testsupport.MustReadGoldenString(t, golden)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("entity file mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderGoldenRepositoryImpl(t *testing.T) {
	schema := testsupport.MustLoadSchema(t, "testdata/user.json")
	got := findFile(t, renderFiles(t, schema), "data/repositories/UserRepositoryImpl.ets").Content

	golden := "testdata/UserRepositoryImpl.ets.golden"
	if testsupport.WriteMaybeGolden(t, golden, []byte(got)) {
		return
	}
	want := testsupport.MustReadGoldenString(t, golden)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("repository impl mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderCacheFallback(t *testing.T) {
	schema := plainUserSchema()
	schema.IncludeCache = true

	repo := findFile(t, renderFiles(t, schema), "data/repositories/UserRepositoryImpl.ets").Content
	for _, want := range []string{
		"import { IUserLocalDataSource } from '../datasources/IUserLocalDataSource';",
		"await this.localDataSource.cacheusers(dtos);",
		"} catch (error) {",
		"const cachedDtos = await this.localDataSource.getCachedusers();",
	} {
		if !strings.Contains(repo, want) {
			t.Errorf("repository impl missing %q", want)
		}
	}
}

func TestRenderWithoutCacheHasNoLocalDataSource(t *testing.T) {
	repo := findFile(t, renderFiles(t, plainUserSchema()), "data/repositories/UserRepositoryImpl.ets").Content
	for _, forbidden := range []string{"LocalDataSource", "try {", "catch"} {
		if strings.Contains(repo, forbidden) {
			t.Errorf("repository impl unexpectedly contains %q", forbidden)
		}
	}
}

func TestRenderValidationToggle(t *testing.T) {
	schema := plainUserSchema()
	schema.IncludeValidation = true
	schema.Properties[1].Validations = []model.ValidationRule{
		{Kind: model.RuleRequired},
		{Kind: model.RuleMinLength, Value: "3"},
	}

	withValidation := findFile(t, renderFiles(t, schema), "domain/entities/User.ets").Content
	if !strings.Contains(withValidation, "this.validate();") {
		t.Error("entity missing validate() call")
	}
	required := strings.Index(withValidation, "!this.name || this.name.trim().length === 0")
	minLength := strings.Index(withValidation, "this.name.length < 3")
	if required == -1 || minLength == -1 {
		t.Fatal("entity missing validation checks")
	}
	if required > minLength {
		t.Error("required check should precede min_length check")
	}

	schema.IncludeValidation = false
	withoutValidation := findFile(t, renderFiles(t, schema), "domain/entities/User.ets").Content
	if strings.Contains(withoutValidation, "validate") {
		t.Error("entity should not mention validate when the toggle is off")
	}
}

func TestRenderDeterministic(t *testing.T) {
	schema := testsupport.MustLoadSchema(t, "testdata/user.json")

	first := renderFiles(t, schema)
	second := renderFiles(t, schema)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated renders differ (-first +second):\n%s", diff)
	}
}

func TestRenderPageImports(t *testing.T) {
	page := findFile(t, renderFiles(t, plainUserSchema()), "presentation/views/pages/UserPage.ets").Content
	for _, want := range []string{
		"import { UserViewModel } from '../../viewmodels/UserViewModel';",
		"import { User } from '../../../domain/entities/User';",
		"import { AppContainer } from '../../../di/AppContainer';",
		"Text(entity.name)",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestRenderNilContext(t *testing.T) {
	if _, err := mustRenderer(t).Render(nil, plainUserSchema()); err == nil { //nolint:staticcheck
		t.Fatal("expected error for nil context")
	}
}

func TestRenderCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := mustRenderer(t).Render(ctx, plainUserSchema()); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
