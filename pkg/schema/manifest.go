package schema

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-arkgen/pkg/model"
)

// manifestFile mirrors the on-disk manifest layout. Rule values may be
// numbers in YAML or JSON; they are stringified on conversion so the
// generators interpolate them verbatim.
type manifestFile struct {
	Entity       string             `json:"entity" yaml:"entity"`
	Architecture string             `json:"architecture" yaml:"architecture"`
	Cache        bool               `json:"cache" yaml:"cache"`
	Validation   bool               `json:"validation" yaml:"validation"`
	Properties   []manifestProperty `json:"properties" yaml:"properties"`
}

type manifestProperty struct {
	Name        string         `json:"name" yaml:"name"`
	Type        string         `json:"type" yaml:"type"`
	Optional    bool           `json:"optional" yaml:"optional"`
	Validations []manifestRule `json:"validations" yaml:"validations"`
}

type manifestRule struct {
	Kind    string `json:"kind" yaml:"kind"`
	Value   any    `json:"value" yaml:"value"`
	Message string `json:"message" yaml:"message"`
}

// LoadManifest reads and parses a manifest file from disk.
func LoadManifest(path string) (model.EntitySchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.EntitySchema{}, fmt.Errorf("schema: read manifest %s: %w", path, err)
	}
	return ParseManifest(data)
}

// ParseManifest decodes a JSON or YAML manifest into an EntitySchema.
// JSON is attempted first, YAML as the fallback. Unlike the property
// DSL, manifests fail hard on unknown types or rule kinds: a manifest
// is authored deliberately, so skipping entries would hide mistakes.
// The returned schema is not yet normalized.
func ParseManifest(data []byte) (model.EntitySchema, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return model.EntitySchema{}, errors.New("schema: manifest is empty")
	}

	var file manifestFile
	if err := json.Unmarshal(data, &file); err != nil {
		if err := yaml.Unmarshal(data, &file); err != nil {
			return model.EntitySchema{}, errors.New("schema: parse manifest: invalid JSON or YAML")
		}
	}

	return file.toSchema()
}

func (f manifestFile) toSchema() (model.EntitySchema, error) {
	schema := model.EntitySchema{
		Entity:            strings.TrimSpace(f.Entity),
		IncludeCache:      f.Cache,
		IncludeValidation: f.Validation,
	}

	if arch := strings.TrimSpace(f.Architecture); arch == "" {
		schema.Architecture = model.ArchitectureClean
	} else {
		parsed, err := model.ParseArchitecture(arch)
		if err != nil {
			return model.EntitySchema{}, fmt.Errorf("schema: parse architecture: %w", err)
		}
		schema.Architecture = parsed
	}

	for _, prop := range f.Properties {
		converted, err := prop.toProperty()
		if err != nil {
			return model.EntitySchema{}, err
		}
		schema.Properties = append(schema.Properties, converted)
	}
	return schema, nil
}

func (p manifestProperty) toProperty() (model.Property, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return model.Property{}, errors.New("schema: manifest property is missing a name")
	}

	propType, err := model.ParsePropertyType(p.Type)
	if err != nil {
		return model.Property{}, fmt.Errorf("schema: property %q: %w", name, err)
	}

	prop := model.Property{Name: name, Type: propType, Optional: p.Optional}
	for _, rule := range p.Validations {
		converted, err := rule.toRule(name)
		if err != nil {
			return model.Property{}, err
		}
		prop.Validations = append(prop.Validations, converted)
	}
	return prop, nil
}

func (r manifestRule) toRule(prop string) (model.ValidationRule, error) {
	kind, err := model.ParseRuleKind(r.Kind)
	if err != nil {
		return model.ValidationRule{}, fmt.Errorf("schema: property %q: %w", prop, err)
	}

	value, err := stringifyRuleValue(r.Value)
	if err != nil {
		return model.ValidationRule{}, fmt.Errorf("schema: property %q rule %s: %w", prop, kind, err)
	}

	return model.ValidationRule{Kind: kind, Value: value, Message: r.Message}, nil
}

// stringifyRuleValue flattens the decoded rule payload to the string
// the generators splice into source. YAML hands over ints, JSON hands
// over float64s; both must survive without round-trip artifacts.
func stringifyRuleValue(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", value)
	}
}
