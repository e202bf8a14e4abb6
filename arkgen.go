// Package arkgen generates ArkTS application scaffolds from entity
// schemas: a layered clean architecture layout or a compact MVVM
// layout, rendered as a deterministic set of source files.
package arkgen

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-arkgen/pkg/arkts"
	"github.com/goliatone/go-arkgen/pkg/model"
	"github.com/goliatone/go-arkgen/pkg/orchestrator"
	"github.com/goliatone/go-arkgen/pkg/render"
)

// Schema types re-exported so light consumers only import the root.
type (
	EntitySchema   = model.EntitySchema
	Property       = model.Property
	ValidationRule = model.ValidationRule
	PropertyType   = model.PropertyType
	RuleKind       = model.RuleKind
	Architecture   = model.Architecture
	GeneratedFile  = model.GeneratedFile
	Names          = model.Names
	Result         = render.Result
)

const (
	ArchitectureClean      = model.ArchitectureClean
	ArchitectureMVVMSimple = model.ArchitectureMVVMSimple

	TypeString  = model.TypeString
	TypeNumber  = model.TypeNumber
	TypeBoolean = model.TypeBoolean
	TypeDate    = model.TypeDate

	RuleRequired  = model.RuleRequired
	RuleMinLength = model.RuleMinLength
	RuleMaxLength = model.RuleMaxLength
	RuleEmail     = model.RuleEmail
	RuleMin       = model.RuleMin
	RuleMax       = model.RuleMax
	RulePattern   = model.RulePattern
)

// NewOrchestrator returns a ready-to-use generation pipeline with the
// built-in renderers registered.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate runs one schema through a default pipeline and returns the
// rendered file set. Callers generating multiple schemas should build
// an orchestrator once and reuse it.
func Generate(ctx context.Context, schema EntitySchema, options ...orchestrator.Option) (*Result, error) {
	return orchestrator.New(options...).Generate(ctx, orchestrator.Request{Schema: schema})
}

// EmbeddedTemplates exposes the bundled ArkTS templates so callers can
// derive customized bundles for renderer options.
func EmbeddedTemplates() fs.FS {
	return arkts.TemplatesFS
}
