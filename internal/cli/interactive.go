package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-arkgen/pkg/prompt"
)

func interactiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Assemble a schema through interactive prompts",
		Long: `Build an entity schema question by question: entity name,
architecture, properties, feature toggles and output directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			built, outputDir, err := prompt.NewCollector().Run(cmd.Context())
			if errors.Is(err, prompt.ErrAborted) {
				fmt.Println("Aborted.")
				return nil
			}
			if errors.Is(err, prompt.ErrNoProperties) {
				return nil
			}
			if err != nil {
				return err
			}
			return runGenerate(cmd, built, outputDir, false)
		},
	}
}
