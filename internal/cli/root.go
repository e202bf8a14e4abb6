// Package cli assembles the arkgen command tree: inline generation,
// the interactive builder, OpenAPI import and manifest watching.
package cli

import "github.com/spf13/cobra"

// Root returns the arkgen root command with all subcommands attached.
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "arkgen",
		Short: "Schema-driven ArkTS scaffolding generator",
		Long: `arkgen turns an entity schema into a complete ArkTS scaffold:
a clean architecture layout (entities, use cases, datasources,
repositories, view models, pages) or a compact MVVM layout.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(generateCmd())
	root.AddCommand(interactiveCmd())
	root.AddCommand(openapiCmd())
	root.AddCommand(watchCmd())

	return root
}
