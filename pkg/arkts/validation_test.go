package arkts

import (
	"strings"
	"testing"

	"github.com/goliatone/go-arkgen/pkg/model"
)

func TestValidationChecks(t *testing.T) {
	tests := []struct {
		name string
		prop model.Property
		want []string
	}{
		{
			name: "required string",
			prop: model.Property{Name: "title", Type: model.TypeString, Validations: []model.ValidationRule{{Kind: model.RuleRequired}}},
			want: []string{
				"    if (!this.title || this.title.trim().length === 0) {",
				"      throw new Error('title é obrigatório');",
			},
		},
		{
			name: "required non-string",
			prop: model.Property{Name: "age", Type: model.TypeNumber, Validations: []model.ValidationRule{{Kind: model.RuleRequired}}},
			want: []string{
				"    if (this.age === undefined || this.age === null) {",
				"      throw new Error('age é obrigatório');",
			},
		},
		{
			name: "min length",
			prop: model.Property{Name: "title", Type: model.TypeString, Validations: []model.ValidationRule{{Kind: model.RuleMinLength, Value: "5"}}},
			want: []string{
				"    if (this.title.length < 5) {",
				"      throw new Error('title deve ter no mínimo 5 caracteres');",
			},
		},
		{
			name: "max length",
			prop: model.Property{Name: "title", Type: model.TypeString, Validations: []model.ValidationRule{{Kind: model.RuleMaxLength, Value: "200"}}},
			want: []string{
				"    if (this.title.length > 200) {",
				"      throw new Error('title deve ter no máximo 200 caracteres');",
			},
		},
		{
			name: "email",
			prop: model.Property{Name: "email", Type: model.TypeString, Validations: []model.ValidationRule{{Kind: model.RuleEmail}}},
			want: []string{
				`    const emailRegex = /^[^\s@]+@[^\s@]+\.[^\s@]+$/;`,
				"    if (!emailRegex.test(this.email)) {",
				"      throw new Error('email inválido');",
			},
		},
		{
			name: "min and max",
			prop: model.Property{Name: "age", Type: model.TypeNumber, Validations: []model.ValidationRule{
				{Kind: model.RuleMin, Value: "0"},
				{Kind: model.RuleMax, Value: "150"},
			}},
			want: []string{
				"    if (this.age < 0) {",
				"      throw new Error('age deve ser maior ou igual a 0');",
				"    if (this.age > 150) {",
				"      throw new Error('age deve ser menor ou igual a 150');",
			},
		},
		{
			name: "pattern",
			prop: model.Property{Name: "slug", Type: model.TypeString, Validations: []model.ValidationRule{{Kind: model.RulePattern, Value: "^[a-z-]+$"}}},
			want: []string{
				"    const pattern = new RegExp('^[a-z-]+$');",
				"    if (!pattern.test(this.slug)) {",
				"      throw new Error('slug inválido');",
			},
		},
		{
			name: "custom message wins",
			prop: model.Property{Name: "name", Type: model.TypeString, Validations: []model.ValidationRule{{Kind: model.RuleRequired, Message: "Nome é obrigatório"}}},
			want: []string{
				"      throw new Error('Nome é obrigatório');",
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			schema := model.EntitySchema{
				Entity:            "Thing",
				Properties:        []model.Property{{Name: "id", Type: model.TypeNumber}, tc.prop},
				IncludeValidation: true,
			}
			got := strings.Join(validationMethod(schema), "\n")
			for _, want := range tc.want {
				if !strings.Contains(got, want) {
					t.Errorf("validate() missing %q in:\n%s", want, got)
				}
			}
		})
	}
}

func TestValidationOrderFollowsDeclaration(t *testing.T) {
	schema := model.EntitySchema{
		Entity: "Post",
		Properties: []model.Property{
			{Name: "id", Type: model.TypeNumber},
			{Name: "title", Type: model.TypeString, Validations: []model.ValidationRule{
				{Kind: model.RuleRequired},
				{Kind: model.RuleMinLength, Value: "5"},
				{Kind: model.RuleMaxLength, Value: "200"},
			}},
		},
		IncludeValidation: true,
	}

	got := strings.Join(validationMethod(schema), "\n")
	required := strings.Index(got, "!this.title || this.title.trim()")
	minLength := strings.Index(got, "this.title.length < 5")
	maxLength := strings.Index(got, "this.title.length > 200")
	if required == -1 || minLength == -1 || maxLength == -1 {
		t.Fatalf("missing checks in:\n%s", got)
	}
	if !(required < minLength && minLength < maxLength) {
		t.Errorf("checks out of declaration order: required=%d minLength=%d maxLength=%d", required, minLength, maxLength)
	}
}

func TestValidationEmptyRules(t *testing.T) {
	schema := model.EntitySchema{
		Entity:            "Bare",
		Properties:        []model.Property{{Name: "id", Type: model.TypeNumber}},
		IncludeValidation: true,
	}

	got := validationMethod(schema)
	want := []string{"  private validate(): void {", "  }"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("empty rule set should yield a bare method, got %q", got)
	}
}
