package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
)

var flagInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the default configuration YAML, or write it to the user
config directory with --init.

The config is looked up in this order:
  1. Path given with 'mines play --config'
  2. ~/.mines/config.yaml
  3. ./configs/mines.yaml
  4. Built-in defaults

Examples:
  mines config                   # Print defaults to stdout
  mines config --init            # Write ~/.mines/config.yaml
  mines config > mines.yaml      # Start a custom config file`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagInit, "init", false, "Write the defaults to the user config path")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagInit {
		fmt.Print(string(config.DefaultYAML()))
		return
	}

	path := config.UserConfigPath()
	if path == "" {
		fmt.Fprintln(os.Stderr, "Error: cannot determine home directory")
		os.Exit(1)
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(os.Stderr, "Error: %s already exists\n", path)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(path, config.DefaultYAML(), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s\n", path)
}
