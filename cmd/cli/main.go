package main

import (
	"fmt"
	"os"

	"github.com/retail-tools/ledger-atlas/pkg/runtime/terminal"
	"github.com/retail-tools/ledger-atlas/pkg/services/config"
)

func main() {
	cfg := config.Default()
	if path := os.Getenv("LEDGER_ATLAS_CONFIG"); path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	cli := terminal.NewCLI(terminal.Options{
		Output:    os.Stdout,
		Currency:  cfg.Currency,
		ExportDir: cfg.ExportDir,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
