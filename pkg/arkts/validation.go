package arkts

import (
	"fmt"

	"github.com/goliatone/go-arkgen/pkg/model"
)

// validationMethod renders the private validate() body. Checks appear
// in property order, then rule order, so regenerated output never
// shuffles. Rule payloads embed verbatim.
func validationMethod(schema model.EntitySchema) []string {
	lines := []string{"  private validate(): void {"}
	for _, prop := range schema.Properties {
		for _, rule := range prop.Validations {
			lines = append(lines, validationCheck(prop, rule)...)
		}
	}
	lines = append(lines, "  }")
	return lines
}

func validationCheck(prop model.Property, rule model.ValidationRule) []string {
	name := prop.Name
	switch rule.Kind {
	case model.RuleRequired:
		msg := ruleMessage(rule, name+" é obrigatório")
		if prop.Type == model.TypeString {
			return []string{
				fmt.Sprintf("    if (!this.%s || this.%s.trim().length === 0) {", name, name),
				fmt.Sprintf("      throw new Error('%s');", msg),
				"    }",
			}
		}
		return []string{
			fmt.Sprintf("    if (this.%s === undefined || this.%s === null) {", name, name),
			fmt.Sprintf("      throw new Error('%s');", msg),
			"    }",
		}
	case model.RuleMinLength:
		msg := ruleMessage(rule, name+" deve ter no mínimo "+rule.Value+" caracteres")
		return []string{
			fmt.Sprintf("    if (this.%s.length < %s) {", name, rule.Value),
			fmt.Sprintf("      throw new Error('%s');", msg),
			"    }",
		}
	case model.RuleMaxLength:
		msg := ruleMessage(rule, name+" deve ter no máximo "+rule.Value+" caracteres")
		return []string{
			fmt.Sprintf("    if (this.%s.length > %s) {", name, rule.Value),
			fmt.Sprintf("      throw new Error('%s');", msg),
			"    }",
		}
	case model.RuleEmail:
		msg := ruleMessage(rule, name+" inválido")
		return []string{
			`    const emailRegex = /^[^\s@]+@[^\s@]+\.[^\s@]+$/;`,
			fmt.Sprintf("    if (!emailRegex.test(this.%s)) {", name),
			fmt.Sprintf("      throw new Error('%s');", msg),
			"    }",
		}
	case model.RuleMin:
		msg := ruleMessage(rule, name+" deve ser maior ou igual a "+rule.Value)
		return []string{
			fmt.Sprintf("    if (this.%s < %s) {", name, rule.Value),
			fmt.Sprintf("      throw new Error('%s');", msg),
			"    }",
		}
	case model.RuleMax:
		msg := ruleMessage(rule, name+" deve ser menor ou igual a "+rule.Value)
		return []string{
			fmt.Sprintf("    if (this.%s > %s) {", name, rule.Value),
			fmt.Sprintf("      throw new Error('%s');", msg),
			"    }",
		}
	case model.RulePattern:
		msg := ruleMessage(rule, name+" inválido")
		return []string{
			fmt.Sprintf("    const pattern = new RegExp('%s');", rule.Value),
			fmt.Sprintf("    if (!pattern.test(this.%s)) {", name),
			fmt.Sprintf("      throw new Error('%s');", msg),
			"    }",
		}
	}
	return nil
}

func ruleMessage(rule model.ValidationRule, fallback string) string {
	if rule.Message != "" {
		return rule.Message
	}
	return fallback
}
