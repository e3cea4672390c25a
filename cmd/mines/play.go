package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/platform/tui"
	"github.com/vovakirdan/tui-mines/internal/sound"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWidth      int
	flagHeight     int
	flagMines      int
	flagMarks      bool
	flagSound      bool
	flagColor      bool
	flagPlayer     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play minesweeper",
	Long: `Start a round in the current terminal.

Controls:
  Arrows/hjkl  - Move the cursor
  Space/Enter  - Reveal (left click)
  F            - Flag / mark (right click)
  C            - Chord a satisfied count (middle click)
  N/R          - New round
  Esc/B        - Difficulty menu
  T            - Best times
  Q/Ctrl+C     - Quit

Difficulties:
  beginner      -  8x8 board, 10 mines
  intermediate  - 16x16 board, 40 mines
  expert        - 32x16 board, 99 mines
  custom        - Dimensions from --width, --height and --mines

Examples:
  mines play
  mines play --difficulty expert
  mines play --width 20 --height 12 --mines 50
  mines play --config ./my-mines.yaml
  mines play --sound=false`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty: beginner, intermediate, expert, custom")
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Custom board width")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Custom board height")
	playCmd.Flags().IntVar(&flagMines, "mines", 0, "Custom mine count")
	playCmd.Flags().BoolVar(&flagMarks, "marks", true, "Allow ? marks in the flag cycle")
	playCmd.Flags().BoolVar(&flagSound, "sound", true, "Play sound effects")
	playCmd.Flags().BoolVar(&flagColor, "color", true, "Color the board")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name for best times")
}

func runPlay(cmd *cobra.Command, _ []string) {
	// Load config files, then layer the flags the user actually set
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagDifficulty != "" {
		cfg.Difficulty = flagDifficulty
	}
	if cmd.Flags().Changed("width") || cmd.Flags().Changed("height") || cmd.Flags().Changed("mines") {
		cfg.Difficulty = "custom"
		if cmd.Flags().Changed("width") {
			cfg.Custom.Width = flagWidth
		}
		if cmd.Flags().Changed("height") {
			cfg.Custom.Height = flagHeight
		}
		if cmd.Flags().Changed("mines") {
			cfg.Custom.Mines = flagMines
		}
	}
	if cmd.Flags().Changed("marks") {
		cfg.Marks = flagMarks
	}
	if cmd.Flags().Changed("sound") {
		cfg.Sound = flagSound
	}
	if cmd.Flags().Changed("color") {
		cfg.Color = flagColor
	}
	if flagPlayer != "" {
		cfg.Player = flagPlayer
	}

	diff, err := cfg.ResolveDifficulty()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Fail early when the terminal cannot fit the board at all. Shrinking
	// mid-session is handled by the UI itself.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		needW := diff.Width * 2
		needH := diff.Height + 7
		if w < needW || h < needH {
			fmt.Fprintf(os.Stderr, "Error: terminal is %dx%d but %s needs at least %dx%d\n",
				w, h, diff.Title(), needW, needH)
			fmt.Fprintln(os.Stderr, "Resize the terminal or pick a smaller board.")
			os.Exit(1)
		}
	}

	// Open the best times storage
	store, err := storage.Open(databasePath(cmd, cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open times database: %v\n", err)
		// Continue without storage - play still works
		store = nil
	}

	// Sound is synthesized on the fly; skip the audio device entirely
	// when disabled
	var sounds *sound.Manager
	if cfg.Sound {
		sounds = sound.NewManager()
		if soundErr := sounds.Initialize(); soundErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: audio unavailable: %v\n", soundErr)
			sounds = nil
		}
	}

	runErr := tui.Run(cfg, diff, store, sounds, flagSeed)

	if sounds != nil {
		sounds.Cleanup()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// databasePath picks the times database: the --db flag wins, then the
// config file, then the default location.
func databasePath(cmd *cobra.Command, cfg config.MinesConfig) string {
	if cmd.Flags().Changed("db") {
		return flagDBPath
	}
	if cfg.Database != "" {
		return cfg.Database
	}
	return flagDBPath
}
