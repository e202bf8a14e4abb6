package openapi

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-arkgen/pkg/model"
	"github.com/goliatone/go-arkgen/pkg/testsupport"
)

const taskDocument = `{
  "openapi": "3.0.0",
  "info": {"title": "tasks", "version": "1.0.0"},
  "paths": {},
  "components": {
    "schemas": {
      "task": {
        "type": "object",
        "required": ["title", "priority"],
        "properties": {
          "title": {"type": "string", "minLength": 3, "maxLength": 80},
          "done": {"type": "boolean"},
          "dueAt": {"type": "string", "format": "date-time"},
          "priority": {"type": "integer", "minimum": 1, "maximum": 5},
          "contact": {"type": "string", "format": "email"},
          "code": {"type": "string", "pattern": "^[A-Z]{3}$"},
          "tags": {"type": "array", "items": {"type": "string"}},
          "owner": {"type": "object", "properties": {"name": {"type": "string"}}}
        }
      },
      "Status": {
        "type": "string",
        "enum": ["open", "closed"]
      }
    }
  }
}`

func TestImportMapsComponentSchemas(t *testing.T) {
	schemas, warnings, err := Import(testsupport.Context(), []byte(taskDocument), Options{})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	if len(schemas) != 1 {
		t.Fatalf("got %d schemas, want the task object only", len(schemas))
	}

	want := model.EntitySchema{
		Entity:       "Task",
		Architecture: model.ArchitectureClean,
		Properties: []model.Property{
			{Name: "code", Type: model.TypeString, Optional: true, Validations: []model.ValidationRule{
				{Kind: model.RulePattern, Value: "^[A-Z]{3}$"},
			}},
			{Name: "contact", Type: model.TypeString, Optional: true, Validations: []model.ValidationRule{
				{Kind: model.RuleEmail},
			}},
			{Name: "done", Type: model.TypeBoolean, Optional: true},
			{Name: "dueAt", Type: model.TypeDate, Optional: true},
			{Name: "priority", Type: model.TypeNumber, Validations: []model.ValidationRule{
				{Kind: model.RuleRequired},
				{Kind: model.RuleMin, Value: "1"},
				{Kind: model.RuleMax, Value: "5"},
			}},
			{Name: "title", Type: model.TypeString, Validations: []model.ValidationRule{
				{Kind: model.RuleRequired},
				{Kind: model.RuleMinLength, Value: "3"},
				{Kind: model.RuleMaxLength, Value: "80"},
			}},
		},
	}
	if diff := cmp.Diff(want, schemas[0]); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}

	reasons := make([]string, 0, len(warnings))
	for _, warning := range warnings {
		reasons = append(reasons, warning.String())
	}
	if len(warnings) != 3 {
		t.Fatalf("got %d warnings, want tags, owner and Status skipped: %v", len(warnings), reasons)
	}
}

func TestImportSchemaFilter(t *testing.T) {
	schemas, _, err := Import(testsupport.Context(), []byte(taskDocument), Options{Schemas: []string{"task"}})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if len(schemas) != 1 || schemas[0].Entity != "Task" {
		t.Fatalf("schemas = %+v, want Task only", schemas)
	}

	_, _, err = Import(testsupport.Context(), []byte(taskDocument), Options{Schemas: []string{"Missing"}})
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("error = %v, want a missing-schema failure", err)
	}
}

func TestImportExplicitNonObjectFails(t *testing.T) {
	_, _, err := Import(testsupport.Context(), []byte(taskDocument), Options{Schemas: []string{"Status"}})
	if err == nil || !strings.Contains(err.Error(), "not an object schema") {
		t.Fatalf("error = %v, want a non-object failure", err)
	}
}

func TestImportStampsOptions(t *testing.T) {
	schemas, _, err := Import(testsupport.Context(), []byte(taskDocument), Options{
		Architecture:      model.ArchitectureMVVMSimple,
		IncludeCache:      true,
		IncludeValidation: true,
	})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	task := schemas[0]
	if task.Architecture != model.ArchitectureMVVMSimple {
		t.Fatalf("architecture = %q", task.Architecture)
	}
	if !task.IncludeCache || !task.IncludeValidation {
		t.Fatalf("feature toggles not stamped: %+v", task)
	}
}

func TestImportInputGuards(t *testing.T) {
	if _, _, err := Import(nil, []byte(taskDocument), Options{}); err == nil { //nolint:staticcheck
		t.Fatal("Import accepted a nil context")
	}
	if _, _, err := Import(testsupport.Context(), nil, Options{}); err == nil {
		t.Fatal("Import accepted an empty payload")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := Import(ctx, []byte(taskDocument), Options{}); err == nil {
		t.Fatal("Import ignored a cancelled context")
	}

	doc := `{"openapi": "3.0.0", "info": {"title": "t", "version": "1"}, "paths": {}}`
	if _, _, err := Import(testsupport.Context(), []byte(doc), Options{}); err == nil || !strings.Contains(err.Error(), "no component schemas") {
		t.Fatalf("error = %v, want a no-schemas failure", err)
	}
}
