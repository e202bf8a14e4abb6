package schema

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-arkgen/pkg/model"
)

func TestParseManifestYAML(t *testing.T) {
	manifest := `
entity: User
architecture: clean
cache: true
validation: true
properties:
  - name: name
    type: string
    validations:
      - kind: required
        message: Nome é obrigatório
      - kind: min_length
        value: 3
  - name: age
    type: number
    optional: true
    validations:
      - kind: max
        value: 150
`
	schema, err := ParseManifest([]byte(manifest))
	if err != nil {
		t.Fatalf("ParseManifest: %v", err)
	}

	want := model.EntitySchema{
		Entity:            "User",
		Architecture:      model.ArchitectureClean,
		IncludeCache:      true,
		IncludeValidation: true,
		Properties: []model.Property{
			{
				Name: "name",
				Type: model.TypeString,
				Validations: []model.ValidationRule{
					{Kind: model.RuleRequired, Message: "Nome é obrigatório"},
					{Kind: model.RuleMinLength, Value: "3"},
				},
			},
			{
				Name:     "age",
				Type:     model.TypeNumber,
				Optional: true,
				Validations: []model.ValidationRule{
					{Kind: model.RuleMax, Value: "150"},
				},
			},
		},
	}
	if diff := cmp.Diff(want, schema); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}
}

func TestParseManifestJSON(t *testing.T) {
	manifest := `{
		"entity": "Product",
		"architecture": "mvvm",
		"properties": [
			{"name": "name", "type": "string"},
			{"name": "price", "type": "number", "validations": [{"kind": "min", "value": 0.5}]}
		]
	}`

	schema, err := ParseManifest([]byte(manifest))
	if err != nil {
		t.Fatalf("ParseManifest: %v", err)
	}

	if schema.Architecture != model.ArchitectureMVVMSimple {
		t.Fatalf("architecture = %q, want the mvvm shorthand resolved", schema.Architecture)
	}
	price := schema.Properties[1]
	if len(price.Validations) != 1 || price.Validations[0].Value != "0.5" {
		t.Fatalf("price validations = %+v, want min with value 0.5", price.Validations)
	}
}

func TestParseManifestDefaultsArchitecture(t *testing.T) {
	schema, err := ParseManifest([]byte(`entity: Task`))
	if err != nil {
		t.Fatalf("ParseManifest: %v", err)
	}
	if schema.Architecture != model.ArchitectureClean {
		t.Fatalf("architecture = %q, want the clean default", schema.Architecture)
	}
}

func TestParseManifestErrors(t *testing.T) {
	cases := []struct {
		name     string
		manifest string
		wantErr  string
	}{
		{name: "empty", manifest: "   \n", wantErr: "manifest is empty"},
		{name: "garbage", manifest: "{not json, not yaml", wantErr: "invalid JSON or YAML"},
		{
			name:     "unknown architecture",
			manifest: "entity: User\narchitecture: hexagonal\n",
			wantErr:  "parse architecture",
		},
		{
			name:     "unknown type",
			manifest: "entity: User\nproperties:\n  - name: age\n    type: integer\n",
			wantErr:  "unknown property type",
		},
		{
			name:     "unknown rule kind",
			manifest: "entity: User\nproperties:\n  - name: name\n    type: string\n    validations:\n      - kind: uppercase\n",
			wantErr:  "unknown validation kind",
		},
		{
			name:     "nameless property",
			manifest: "entity: User\nproperties:\n  - type: string\n",
			wantErr:  "missing a name",
		},
		{
			name:     "structured rule value",
			manifest: "entity: User\nproperties:\n  - name: name\n    type: string\n    validations:\n      - kind: min_length\n        value:\n          nested: true\n",
			wantErr:  "unsupported value type",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tc.manifest))
			if err == nil {
				t.Fatalf("ParseManifest accepted %s", tc.name)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "task.yaml")
	manifest := "entity: Task\narchitecture: clean\nproperties:\n  - name: title\n    type: string\n"
	if err := os.WriteFile(path, []byte(manifest), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	schema, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if schema.Entity != "Task" || len(schema.Properties) != 1 {
		t.Fatalf("schema = %+v", schema)
	}

	if _, err := LoadManifest(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("LoadManifest read a missing file")
	} else if !strings.Contains(err.Error(), "read manifest") {
		t.Fatalf("error %q does not mention the read", err)
	}
}
