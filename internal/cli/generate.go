package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-arkgen/pkg/model"
	"github.com/goliatone/go-arkgen/pkg/orchestrator"
	"github.com/goliatone/go-arkgen/pkg/schema"
)

func generateCmd() *cobra.Command {
	var (
		props      string
		arch       string
		cache      bool
		validation bool
		output     string
		manifest   string
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:     "generate [entity]",
		Aliases: []string{"g"},
		Short:   "Generate an ArkTS scaffold for one entity",
		Long: `Generate the ArkTS file set for an entity described either inline
through the --props DSL or by a JSON/YAML manifest.

Examples:
  arkgen generate User --props "name:string,email:string" --cache --validation
  arkgen generate Product --arch mvvm --props "name:string,price:number"
  arkgen generate --schema user.yaml --output ./src`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entitySchema, err := resolveSchema(cmd, args, manifest, props, arch, cache, validation)
			if err != nil {
				return err
			}
			return runGenerate(cmd, entitySchema, output, dryRun)
		},
	}

	cmd.Flags().StringVarP(&props, "props", "p", "", `properties as "name:type,..." ('?' marks optional)`)
	cmd.Flags().StringVar(&arch, "arch", "clean", "target architecture (clean|mvvm)")
	cmd.Flags().BoolVar(&cache, "cache", false, "include the local cache datasource (clean only)")
	cmd.Flags().BoolVar(&validation, "validation", false, "include validate() methods")
	cmd.Flags().StringVarP(&output, "output", "o", "./generated", "output directory")
	cmd.Flags().StringVarP(&manifest, "schema", "s", "", "path to a JSON/YAML schema manifest")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "list the planned files without writing")

	return cmd
}

// resolveSchema assembles the entity schema from a manifest or from the
// entity argument plus the props DSL. With a manifest, flags the user
// explicitly set still override the manifest's toggles.
func resolveSchema(cmd *cobra.Command, args []string, manifest, props, arch string, cache, validation bool) (model.EntitySchema, error) {
	if manifest != "" {
		loaded, err := schema.LoadManifest(manifest)
		if err != nil {
			return model.EntitySchema{}, err
		}
		if cmd.Flags().Changed("arch") {
			parsed, err := model.ParseArchitecture(arch)
			if err != nil {
				return model.EntitySchema{}, err
			}
			loaded.Architecture = parsed
		}
		if cmd.Flags().Changed("cache") {
			loaded.IncludeCache = cache
		}
		if cmd.Flags().Changed("validation") {
			loaded.IncludeValidation = validation
		}
		return loaded, nil
	}

	if len(args) == 0 {
		return model.EntitySchema{}, errors.New("entity name is required unless --schema is given")
	}

	parsedArch, err := model.ParseArchitecture(arch)
	if err != nil {
		return model.EntitySchema{}, err
	}

	properties, warnings := schema.ParseProps(props)
	for _, warning := range warnings {
		printWarning(warning.String())
	}

	return model.EntitySchema{
		Entity:            args[0],
		Properties:        properties,
		Architecture:      parsedArch,
		IncludeCache:      cache,
		IncludeValidation: validation,
	}, nil
}

// runGenerate pushes one schema through the orchestrator and writes
// the result, or only lists it on a dry run.
func runGenerate(cmd *cobra.Command, entitySchema model.EntitySchema, outputDir string, dryRun bool) error {
	result, err := orchestrator.New().Generate(cmd.Context(), orchestrator.Request{Schema: entitySchema})
	if err != nil {
		return err
	}

	if dryRun {
		printPlanned(entitySchema.Entity, result)
		return nil
	}
	if err := WriteFiles(outputDir, result.Files); err != nil {
		return err
	}
	printWritten(entitySchema.Entity, result, outputDir)
	return nil
}
