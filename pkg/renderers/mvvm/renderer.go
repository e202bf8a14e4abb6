package mvvm

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-arkgen/pkg/arkts"
	"github.com/goliatone/go-arkgen/pkg/model"
	"github.com/goliatone/go-arkgen/pkg/render"
	rendertemplate "github.com/goliatone/go-arkgen/pkg/render/template"
	"github.com/goliatone/go-arkgen/pkg/render/template/pongo"
)

// Option configures the renderer before construction.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer emits the flat four-file scaffold: model class, repository
// talking straight to the API service, view-model, and page. There are
// no interface contracts and no datasource split; cache and repository
// abstraction requests are ignored in this mode.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the mvvm renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: arkts.TemplatesFS}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = arkts.TemplatesFS
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := pongo.New(pongo.WithFS(cfg.templateFS))
		if err != nil {
			return nil, fmt.Errorf("mvvm renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

// Architecture reports the architecture this renderer serves.
func (r *Renderer) Architecture() model.Architecture {
	return model.ArchitectureMVVMSimple
}

// Render plans the four-file mvvm set. The model class is the same
// fragment the clean layout places under domain/entities, so the two
// modes cannot drift apart on entity semantics.
func (r *Renderer) Render(ctx context.Context, schema model.EntitySchema) (*render.Result, error) {
	if ctx == nil {
		return nil, errors.New("mvvm renderer: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n := model.Derive(schema.Entity)

	page, err := r.renderPage(schema, n)
	if err != nil {
		return nil, err
	}

	plan := render.NewPlan()
	type entry struct {
		path    string
		content string
	}
	for _, e := range []entry{
		{"data/models/" + n.Entity + ".ets", arkts.Entity(schema)},
		{"data/repositories/" + n.Entity + "Repository.ets", arkts.SimpleRepository(schema)},
		{"viewmodels/" + n.Entity + "ViewModel.ets", arkts.SimpleViewModel(schema)},
		{"views/pages/" + n.Entity + "Page.ets", page},
	} {
		if err := plan.Add(e.path, e.content); err != nil {
			return nil, fmt.Errorf("mvvm renderer: plan files: %w", err)
		}
	}

	return &render.Result{
		Architecture: model.ArchitectureMVVMSimple,
		Files:        plan.Execute(),
	}, nil
}

// renderPage fills the shared page template with import paths computed
// for the mvvm layout, where the page sits two levels below the root.
func (r *Renderer) renderPage(schema model.EntitySchema, n model.Names) (string, error) {
	if r.templates == nil {
		return "", errors.New("mvvm renderer: template renderer is nil")
	}

	data := arkts.PageContext(schema, arkts.PageImports{
		ViewModel: "../../viewmodels/" + n.Entity + "ViewModel",
		Entity:    "../../data/models/" + n.Entity,
		Container: "../../di/AppContainer",
	})
	out, err := r.templates.RenderTemplate(arkts.PageTemplate, data)
	if err != nil {
		return "", fmt.Errorf("mvvm renderer: render page template: %w", err)
	}
	return out, nil
}
