package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/mines"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

var flagClear bool

var timesCmd = &cobra.Command{
	Use:   "times [difficulty]",
	Short: "Show recorded best times",
	Long: `Display the best times for a difficulty, or a summary of every
difficulty when none is given.

Examples:
  mines times
  mines times beginner
  mines times expert --clear
  mines times --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runTimes,
}

func init() {
	timesCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded times instead of listing them")
}

func runTimes(_ *cobra.Command, args []string) {
	difficulty := ""
	if len(args) > 0 {
		name := strings.ToLower(strings.TrimSpace(args[0]))
		d, ok := mines.DifficultyByName(name)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Difficulties: beginner, intermediate, expert.")
			os.Exit(1)
		}
		difficulty = d.Name
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening times database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearTimes(difficulty); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing times: %v\n", err)
			os.Exit(1)
		}
		if difficulty == "" {
			fmt.Println("Cleared all recorded times.")
		} else {
			fmt.Printf("Cleared recorded times for %s.\n", difficulty)
		}
		return
	}

	if difficulty == "" {
		printSummary(store)
		return
	}
	printTimes(store, difficulty)
}

// printTimes lists the top times for one difficulty.
func printTimes(store *storage.Store, difficulty string) {
	times, err := store.TopTimes(difficulty, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving times: %v\n", err)
		os.Exit(1)
	}

	d, _ := mines.DifficultyByName(difficulty)
	fmt.Printf("Best Times - %s\n", d.Title())
	fmt.Println()

	if len(times) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'mines play' to set the first time!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-16s  %s\n", "Rank", "Time", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-16s  %s\n", "----", "----", "------", "----")

	for i, entry := range times {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8s  %-16s  %s\n", i+1, fmt.Sprintf("%ds", entry.Seconds), entry.Player, dateStr)
	}

	// Show the record holder and overall pace
	best, err := store.BestTime(difficulty)
	if err == nil && best != nil {
		fmt.Println()
		fmt.Printf("Best: %ds by %s\n", best.Seconds, best.Player)
	}
	if s, err := store.Stats(difficulty); err == nil && s != nil {
		fmt.Printf("Rounds: %d   Average: %.1fs\n", s.Rounds, s.AvgSeconds)
	}
}

// printSummary lists per-difficulty stats across the whole database.
func printSummary(store *storage.Store) {
	stats, err := store.AllStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving times: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Times")
	fmt.Println()

	if len(stats) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'mines play' to set the first time!")
		return
	}

	fmt.Printf("  %-14s  %-8s  %-8s  %-8s  %s\n", "Difficulty", "Rounds", "Best", "Average", "Last Played")
	fmt.Printf("  %-14s  %-8s  %-8s  %-8s  %s\n", "----------", "------", "----", "-------", "-----------")

	// Preset order first, then anything else the database holds
	printed := make(map[string]bool)
	for _, d := range mines.Difficulties() {
		if s, ok := stats[d.Name]; ok {
			printSummaryRow(d.Title(), s)
			printed[d.Name] = true
		}
	}
	for name, s := range stats {
		if !printed[name] {
			printSummaryRow(name, s)
		}
	}
}

func printSummaryRow(title string, s *storage.TimesStats) {
	fmt.Printf("  %-14s  %-8d  %-8s  %-8s  %s\n",
		title,
		s.Rounds,
		fmt.Sprintf("%ds", s.Best),
		fmt.Sprintf("%.1fs", s.AvgSeconds),
		s.LastPlayed.Format("2006-01-02 15:04"),
	)
}
