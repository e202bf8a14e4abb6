package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goliatone/go-arkgen/pkg/model"
)

// WriteFiles materializes generated files beneath outputDir, creating
// parent directories as needed. Existing files are overwritten; the
// engine owns every path it plans.
func WriteFiles(outputDir string, files []model.GeneratedFile) error {
	for _, file := range files {
		target := filepath.Join(outputDir, filepath.FromSlash(file.Path))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("cli: create directory for %s: %w", file.Path, err)
		}
		if err := os.WriteFile(target, []byte(file.Content), 0o644); err != nil {
			return fmt.Errorf("cli: write %s: %w", file.Path, err)
		}
	}
	return nil
}
