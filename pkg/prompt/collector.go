package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-arkgen/pkg/model"
	"github.com/goliatone/go-arkgen/pkg/schema"
)

// DefaultOutputDir is offered when the output prompt is left blank.
const DefaultOutputDir = "./generated"

// Option customises the collector.
type Option func(*Collector)

// WithDriver injects a prompt driver. Tests script one; the default is
// the survey-backed terminal driver.
func WithDriver(driver PromptDriver) Option {
	return func(c *Collector) {
		if driver != nil {
			c.driver = driver
		}
	}
}

// Collector walks the user through assembling an entity schema: entity
// name, architecture, properties, feature toggles and output location.
type Collector struct {
	driver PromptDriver
}

// NewCollector constructs a Collector applying any provided options.
func NewCollector(options ...Option) *Collector {
	c := &Collector{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	if c.driver == nil {
		c.driver = newSurveyDriver()
	}
	return c
}

// Run executes the interactive flow and returns the assembled schema
// plus the chosen output directory. Aborting (Ctrl+C or a declined
// final confirmation) returns ErrAborted; finishing the property loop
// with nothing added returns ErrNoProperties. The schema is not yet
// normalized, so the id property may be absent.
func (c *Collector) Run(ctx context.Context) (model.EntitySchema, string, error) {
	if ctx == nil {
		return model.EntitySchema{}, "", errors.New("prompt: context is required")
	}
	if err := ctx.Err(); err != nil {
		return model.EntitySchema{}, "", err
	}

	entity, err := c.driver.Input(ctx, InputConfig{
		Message: "Entity name (e.g. User, Product):",
		Validator: func(value string) error {
			if strings.TrimSpace(value) == "" {
				return errors.New("entity name is required")
			}
			return nil
		},
	})
	if err != nil {
		return model.EntitySchema{}, "", err
	}
	entity = model.UpperFirst(strings.TrimSpace(entity))

	archIndex, err := c.driver.Select(ctx, SelectConfig{
		Message:      "Architecture:",
		Options:      []string{"Clean Architecture", "MVVM"},
		DefaultIndex: 0,
	})
	if err != nil {
		return model.EntitySchema{}, "", err
	}
	arch := model.ArchitectureClean
	if archIndex == 1 {
		arch = model.ArchitectureMVVMSimple
	}

	properties, err := c.collectProperties(ctx)
	if err != nil {
		return model.EntitySchema{}, "", err
	}

	includeCache := false
	if arch == model.ArchitectureClean {
		includeCache, err = c.driver.Confirm(ctx, ConfirmConfig{
			Message: "Include local cache datasource?",
		})
		if err != nil {
			return model.EntitySchema{}, "", err
		}
	}

	includeValidation, err := c.driver.Confirm(ctx, ConfirmConfig{
		Message: "Include validation methods?",
	})
	if err != nil {
		return model.EntitySchema{}, "", err
	}

	outputDir, err := c.driver.Input(ctx, InputConfig{
		Message: "Output directory:",
		Default: DefaultOutputDir,
	})
	if err != nil {
		return model.EntitySchema{}, "", err
	}
	if outputDir = strings.TrimSpace(outputDir); outputDir == "" {
		outputDir = DefaultOutputDir
	}

	built := model.EntitySchema{
		Entity:            entity,
		Properties:        properties,
		Architecture:      arch,
		IncludeCache:      includeCache,
		IncludeValidation: includeValidation,
	}
	if err := c.summarize(ctx, built, outputDir); err != nil {
		return model.EntitySchema{}, "", err
	}

	confirmed, err := c.driver.Confirm(ctx, ConfirmConfig{
		Message: "Generate scaffold?",
		Default: true,
	})
	if err != nil {
		return model.EntitySchema{}, "", err
	}
	if !confirmed {
		return model.EntitySchema{}, "", ErrAborted
	}

	return built, outputDir, nil
}

// collectProperties loops until the user enters "done". Blank lines
// re-prompt, malformed lines warn and continue; the forgiving shape of
// the bulk DSL parser, one entry at a time.
func (c *Collector) collectProperties(ctx context.Context) ([]model.Property, error) {
	err := c.driver.Info(ctx, "Add properties as name:type (string, number, boolean, date). Append '?' for optional, enter 'done' to finish.")
	if err != nil {
		return nil, err
	}

	var properties []model.Property
	for {
		line, err := c.driver.Input(ctx, InputConfig{
			Message: fmt.Sprintf("Property %d (or 'done'):", len(properties)+1),
		})
		if err != nil {
			return nil, err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "done") {
			break
		}

		prop, err := schema.ParsePropLine(line)
		if err != nil {
			if infoErr := c.driver.Info(ctx, "  skipped: "+err.Error()); infoErr != nil {
				return nil, infoErr
			}
			continue
		}
		properties = append(properties, prop)
		if infoErr := c.driver.Info(ctx, "  added "+propLabel(prop)); infoErr != nil {
			return nil, infoErr
		}
	}

	if len(properties) == 0 {
		if err := c.driver.Info(ctx, "No properties were added, aborting."); err != nil {
			return nil, err
		}
		return nil, ErrNoProperties
	}
	return properties, nil
}

func (c *Collector) summarize(ctx context.Context, built model.EntitySchema, outputDir string) error {
	lines := []string{
		"",
		"Entity:       " + built.Entity,
		"Architecture: " + string(built.Architecture),
		fmt.Sprintf("Properties:   %d", len(built.Properties)),
	}
	for _, prop := range built.Properties {
		lines = append(lines, "  - "+propLabel(prop))
	}
	lines = append(lines,
		fmt.Sprintf("Cache:        %t", built.IncludeCache),
		fmt.Sprintf("Validation:   %t", built.IncludeValidation),
		"Output:       "+outputDir,
	)

	for _, line := range lines {
		if err := c.driver.Info(ctx, line); err != nil {
			return err
		}
	}
	return nil
}

func propLabel(prop model.Property) string {
	marker := ""
	if prop.Optional {
		marker = "?"
	}
	return fmt.Sprintf("%s: %s%s", prop.Name, prop.Type, marker)
}
