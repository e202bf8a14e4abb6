package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-arkgen/pkg/orchestrator"
	"github.com/goliatone/go-arkgen/pkg/schema"
)

func watchCmd() *cobra.Command {
	var (
		manifest string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate whenever a schema manifest changes",
		Long: `Generate once from the manifest, then keep watching it and
regenerate on every change until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if manifest == "" {
				return errors.New("--schema manifest path is required")
			}
			return watchManifest(cmd, manifest, output)
		},
	}

	cmd.Flags().StringVarP(&manifest, "schema", "s", "", "path to the schema manifest to watch")
	cmd.Flags().StringVarP(&output, "output", "o", "./generated", "output directory")

	return cmd
}

func watchManifest(cmd *cobra.Command, manifestPath, outputDir string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	gen := orchestrator.New()
	// A broken edit must not kill the watch; report and wait for the
	// next save instead.
	regenerate := func() {
		loaded, err := schema.LoadManifest(manifestPath)
		if err != nil {
			printWarning(err.Error())
			return
		}
		result, err := gen.Generate(ctx, orchestrator.Request{Schema: loaded})
		if err != nil {
			printWarning(err.Error())
			return
		}
		if err := WriteFiles(outputDir, result.Files); err != nil {
			printWarning(err.Error())
			return
		}
		printWritten(loaded.Entity, result, outputDir)
	}

	regenerate()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Close()

	// Editors replace files on save, which drops the watch on the file
	// itself; watch the directory and filter events to the manifest.
	if err := watcher.Add(filepath.Dir(manifestPath)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(manifestPath), err)
	}
	target, err := filepath.Abs(manifestPath)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", manifestPath, err)
	}

	fmt.Printf("watching %s (interrupt to stop)\n", manifestPath)
	for {
		select {
		case <-ctx.Done():
			fmt.Println("stopped")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			if eventPath, err := filepath.Abs(event.Name); err != nil || eventPath != target {
				continue
			}
			regenerate()
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printWarning(watchErr.Error())
		}
	}
}
