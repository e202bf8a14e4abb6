package clean

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

// Renderer emits the layered scaffold: domain entity and repository
// contract, one use case per CRUD operation, DTO and datasources on the
// data side, and the view-model/page pair on the presentation side.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the clean renderer applying any provided options.
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
			return nil, fmt.Errorf("clean renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

// Architecture reports the architecture this renderer serves.
func (r *Renderer) Architecture() model.Architecture {
	return model.ArchitectureClean
}

// Render plans the fixed clean file set for the schema and materializes
// it. The two local-datasource files join the plan only when the schema
// enables caching; everything else is unconditional.
func (r *Renderer) Render(ctx context.Context, schema model.EntitySchema) (*render.Result, error) {
	if ctx == nil {
		return nil, errors.New("clean renderer: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n := model.Derive(schema.Entity)

	page, err := r.renderPage(schema, n)
	if err != nil {
		return nil, err
	}

	type entry struct {
		path    string
		content string
	}
	entries := []entry{
		{"domain/entities/" + n.Entity + ".ets", arkts.Entity(schema)},
		{"domain/repositories/I" + n.Entity + "Repository.ets", arkts.RepositoryInterface(schema)},
		{"domain/usecases/" + n.Lower + "/Get" + n.Plural + "UseCase.ets", arkts.GetAllUseCase(schema)},
		{"domain/usecases/" + n.Lower + "/Get" + n.Entity + "ByIdUseCase.ets", arkts.GetByIDUseCase(schema)},
		{"domain/usecases/" + n.Lower + "/Create" + n.Entity + "UseCase.ets", arkts.CreateUseCase(schema)},
		{"domain/usecases/" + n.Lower + "/Update" + n.Entity + "UseCase.ets", arkts.UpdateUseCase(schema)},
		{"domain/usecases/" + n.Lower + "/Delete" + n.Entity + "UseCase.ets", arkts.DeleteUseCase(schema)},
		{"data/models/" + n.Entity + "Model.ets", arkts.Model(schema)},
		{"data/datasources/I" + n.Entity + "RemoteDataSource.ets", arkts.RemoteDataSourceInterface(schema)},
		{"data/datasources/" + n.Entity + "RemoteDataSourceImpl.ets", arkts.RemoteDataSourceImpl(schema)},
	}
	if schema.IncludeCache {
		entries = append(entries,
			entry{"data/datasources/I" + n.Entity + "LocalDataSource.ets", arkts.LocalDataSourceInterface(schema)},
			entry{"data/datasources/" + n.Entity + "LocalDataSourceImpl.ets", arkts.LocalDataSourceImpl(schema)},
		)
	}
	entries = append(entries,
		entry{"data/repositories/" + n.Entity + "RepositoryImpl.ets", arkts.RepositoryImpl(schema)},
		entry{"presentation/viewmodels/" + n.Entity + "ViewModel.ets", arkts.ViewModel(schema)},
		entry{"presentation/views/pages/" + n.Entity + "Page.ets", page},
	)

	plan := render.NewPlan()
	for _, e := range entries {
		if err := plan.Add(e.path, e.content); err != nil {
			return nil, fmt.Errorf("clean renderer: plan files: %w", err)
		}
	}

	return &render.Result{
		Architecture: model.ArchitectureClean,
		Files:        plan.Execute(),
	}, nil
}

// renderPage fills the shared page template with the import paths of
// the clean layout, where the page sits three levels below the root.
func (r *Renderer) renderPage(schema model.EntitySchema, n model.Names) (string, error) {
	if r.templates == nil {
		return "", errors.New("clean renderer: template renderer is nil")
	}

	data := arkts.PageContext(schema, arkts.PageImports{
		ViewModel: "../../viewmodels/" + n.Entity + "ViewModel",
		Entity:    "../../../domain/entities/" + n.Entity,
		Container: "../../../di/AppContainer",
	})
	out, err := r.templates.RenderTemplate(arkts.PageTemplate, data)
	if err != nil {
		return "", fmt.Errorf("clean renderer: render page template: %w", err)
	}
	return out, nil
}
