package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-twinblade/internal/core"
	"github.com/vovakirdan/tui-twinblade/internal/games/twinblade"
	"github.com/vovakirdan/tui-twinblade/internal/platform/tui"
	"github.com/vovakirdan/tui-twinblade/internal/storage"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play the campaign",
	Long: `Start the campaign, optionally from a level ID or index.

Controls:
  WASD/Arrows  - Move
  Space/J      - Attack (Onyx: hold to charge, release to strike)
  K/X          - Dodge roll
  E/Tab        - Swap character
  P/Esc        - Pause
  Enter        - Next level (after victory)
  R            - Restart (after victory or defeat)
  ?            - Show all keys
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More health, fewer and weaker enemies
  normal - Level defaults
  hard   - Less health, tougher enemies

Examples:
  twinblade play
  twinblade play gardens
  twinblade play 2 --difficulty hard
  twinblade play --log-file ./twinblade.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the terminal belongs to the game)")
}

func runPlay(_ *cobra.Command, args []string) {
	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	logger, err := newLogger(out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := loadLevelPack(logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	start, err := resolveLevel(levelArg(args))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'twinblade levels' to see available levels.")
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// The run log lives only as long as this session.
	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("run log unavailable", "err", err)
		store = nil
	}

	session := "none"
	if store != nil {
		session = store.Session()
	}

	game := twinblade.New(twinblade.WithConfig(cfg), twinblade.WithStartLevel(start))
	logger.Info("session started", "session", session, "level", start, "difficulty", flagDifficulty, "seed", flagSeed)
	runErr := tui.Run(game, store, rc, logger)

	if store != nil {
		printSessionStats(store)
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// printSessionStats summarizes the session's run log after the TUI exits.
func printSessionStats(store *storage.Store) {
	stats, err := store.Stats()
	if err != nil || stats.Runs == 0 {
		return
	}
	fmt.Printf("Session: %d runs, %d victories, %d defeats\n", stats.Runs, stats.Victories, stats.Defeats)
	fmt.Printf("Kills: %d  Damage taken: %d  Best score: %d\n", stats.Kills, stats.DamageTaken, stats.BestScore)
}
