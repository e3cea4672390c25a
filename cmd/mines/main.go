// mines is a terminal minesweeper with mouse support, best times and
// remote play over SSH.
//
// Usage:
//
//	mines play               - Play in the current terminal
//	mines times [difficulty] - Show recorded best times
//	mines serve              - Start SSH server for remote play
//	mines config             - Print the default configuration
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible rounds
//	--db <path>     - Set database path (default: ~/.mines/mines.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const defaultDBPath = "~/.mines/mines.db"

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mines",
	Short: "Minesweeper in your terminal",
	Long: `mines is a terminal rendition of the classic minesweeper.

Reveal every safe tile without detonating a mine. Flag the tiles you
suspect, chord satisfied counts to clear their neighbors, and race the
clock for a spot in the best times.

Available commands:
  play     - Play in the current terminal
  times    - View recorded best times
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  mines play
  mines play --difficulty expert
  mines play --width 20 --height 12 --mines 50
  mines times beginner
  mines serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to best times database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(timesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
