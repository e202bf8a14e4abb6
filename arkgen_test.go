package arkgen

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-arkgen/pkg/render"
	"github.com/goliatone/go-arkgen/pkg/testsupport"
)

func userSchema() EntitySchema {
	return EntitySchema{
		Entity:       "User",
		Architecture: ArchitectureClean,
		Properties: []Property{
			{Name: "name", Type: TypeString, Validations: []ValidationRule{
				{Kind: RuleRequired, Message: "Nome é obrigatório"},
			}},
			{Name: "email", Type: TypeString, Validations: []ValidationRule{
				{Kind: RuleRequired},
				{Kind: RuleEmail},
			}},
		},
		IncludeValidation: true,
	}
}

func TestGenerateCleanScaffold(t *testing.T) {
	result, err := Generate(testsupport.Context(), userSchema())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if result.Architecture != ArchitectureClean {
		t.Fatalf("architecture = %q", result.Architecture)
	}
	if len(result.Files) != 13 {
		t.Fatalf("got %d files, want 13", len(result.Files))
	}

	files := result.FileMap()
	entity, ok := files["domain/entities/User.ets"]
	if !ok {
		t.Fatal("entity file missing from file map")
	}
	if !strings.HasPrefix(entity, "// domain/entities/User.ets\n\n") {
		t.Fatalf("entity banner missing:\n%s", entity)
	}
	if !strings.Contains(entity, "Nome é obrigatório") {
		t.Fatal("custom validation message not rendered")
	}
}

func TestGenerateWithCache(t *testing.T) {
	schema := userSchema()
	schema.IncludeCache = true

	result, err := Generate(testsupport.Context(), schema)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(result.Files) != 15 {
		t.Fatalf("got %d files, want 15 with the local datasource pair", len(result.Files))
	}

	files := result.FileMap()
	if _, ok := files["data/datasources/IUserLocalDataSource.ets"]; !ok {
		t.Fatal("local datasource interface missing")
	}
	if _, ok := files["data/datasources/UserLocalDataSourceImpl.ets"]; !ok {
		t.Fatal("local datasource implementation missing")
	}
}

func TestGenerateMVVM(t *testing.T) {
	schema := userSchema()
	schema.Architecture = ArchitectureMVVMSimple

	result, err := Generate(testsupport.Context(), schema)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(result.Files) != 4 {
		t.Fatalf("got %d files, want the compact set", len(result.Files))
	}
}

func TestGenerateUnsupportedArchitecture(t *testing.T) {
	schema := userSchema()
	schema.Architecture = Architecture("hexagonal")

	_, err := Generate(testsupport.Context(), schema)
	var unsupported *render.UnsupportedArchitectureError
	if !errors.As(err, &unsupported) {
		t.Fatalf("error %v is not an UnsupportedArchitectureError", err)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	first, err := Generate(testsupport.Context(), userSchema())
	if err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	second, err := Generate(testsupport.Context(), userSchema())
	if err != nil {
		t.Fatalf("second Generate: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("generation not deterministic (-first +second):\n%s", diff)
	}
}
