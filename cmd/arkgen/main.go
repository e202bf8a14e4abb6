package main

import (
	"fmt"
	"os"

	"github.com/goliatone/go-arkgen/internal/cli"
)

func main() {
	if err := cli.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
