package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/goliatone/go-arkgen/pkg/render"
)

var (
	successMark = color.New(color.FgGreen).Sprint("✓")
	warnMark    = color.New(color.FgYellow).Sprint("!")
)

func printWarning(message string) {
	fmt.Printf("%s %s\n", warnMark, message)
}

func printPlanned(entity string, result *render.Result) {
	fmt.Printf("%s (%s): %d files planned, nothing written\n", entity, result.Architecture, len(result.Files))
	for _, file := range result.Files {
		fmt.Println("  " + file.Path)
	}
}

func printWritten(entity string, result *render.Result, outputDir string) {
	fmt.Printf("%s %s (%s): %d files written to %s\n",
		successMark, entity, result.Architecture, len(result.Files), outputDir)
	for _, file := range result.Files {
		fmt.Printf("  %s %s\n", successMark, file.Path)
	}
}
