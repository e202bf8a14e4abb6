package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-arkgen/pkg/model"
	"github.com/goliatone/go-arkgen/pkg/openapi"
	"github.com/goliatone/go-arkgen/pkg/orchestrator"
)

func openapiCmd() *cobra.Command {
	var (
		schemas    []string
		arch       string
		cache      bool
		validation bool
		output     string
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "openapi <document>",
		Short: "Generate scaffolds from OpenAPI component schemas",
		Long: `Import the component schemas of an OpenAPI document and generate
one scaffold per entity into a shared output tree.

Examples:
  arkgen openapi api.yaml
  arkgen openapi api.yaml --schema User --schema Task --cache`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedArch, err := model.ParseArchitecture(arch)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read document %s: %w", args[0], err)
			}

			imported, warnings, err := openapi.Import(cmd.Context(), data, openapi.Options{
				Schemas:           schemas,
				Architecture:      parsedArch,
				IncludeCache:      cache,
				IncludeValidation: validation,
			})
			if err != nil {
				return err
			}
			for _, warning := range warnings {
				printWarning(warning.String())
			}
			if len(imported) == 0 {
				return errors.New("document contains no usable schemas")
			}

			gen := orchestrator.New()
			for _, entitySchema := range imported {
				result, err := gen.Generate(cmd.Context(), orchestrator.Request{Schema: entitySchema})
				if err != nil {
					return fmt.Errorf("generate %s: %w", entitySchema.Entity, err)
				}
				if dryRun {
					printPlanned(entitySchema.Entity, result)
					continue
				}
				if err := WriteFiles(output, result.Files); err != nil {
					return err
				}
				printWritten(entitySchema.Entity, result, output)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&schemas, "schema", nil, "component schema to import (repeatable; default all)")
	cmd.Flags().StringVar(&arch, "arch", "clean", "target architecture (clean|mvvm)")
	cmd.Flags().BoolVar(&cache, "cache", false, "include the local cache datasource (clean only)")
	cmd.Flags().BoolVar(&validation, "validation", false, "include validate() methods")
	cmd.Flags().StringVarP(&output, "output", "o", "./generated", "output directory")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "list the planned files without writing")

	return cmd
}
