package main

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-twinblade/internal/core"
	"github.com/vovakirdan/tui-twinblade/internal/games/twinblade"
	"github.com/vovakirdan/tui-twinblade/internal/storage"
)

var flagTicks int

var simCmd = &cobra.Command{
	Use:   "sim [level]",
	Short: "Run a scripted bot without a terminal UI",
	Long: `Drive the simulation with a scripted bot for a fixed number of ticks
and print a summary. The same seed always produces the same run, which
makes this useful for balance checks and regression hunting.

Examples:
  twinblade sim
  twinblade sim vault --ticks 7200 --seed 42
  twinblade sim keep --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Number of ticks to simulate")
}

// simReport is the outcome of one headless run.
type simReport struct {
	Session     string
	Run         storage.Run
	LevelName   string
	KillsByKind map[string]int
	Hash        uint64
}

// simulate plays one attempt with the bot until the tick budget runs out or
// the session ends. Every event is journalled to store.
func simulate(game *twinblade.Game, store *storage.Store, seed int64, ticks int, logger *log.Logger) (simReport, error) {
	const attempt = 1

	if err := game.Reset(core.RuntimeConfig{TickRate: 60, Seed: seed}); err != nil {
		return simReport{}, err
	}
	def, idx := game.Level()
	logger.Info("simulation started", "session", store.Session(), "level", def.ID, "seed", seed, "ticks", ticks)

	b := newBot(seed)
	var tally storage.Tally
	var state core.GameState
	for range ticks {
		snap := game.Snapshot()
		res := game.Step(b.Next(&snap))
		state = res.State

		tally.Observe(res.Events)
		if err := store.Journal(attempt, res.Events); err != nil {
			return simReport{}, err
		}
		for _, e := range res.Events {
			logger.Debug("event", "kind", e.Kind, "cue", e.Cue, "tick", e.Tick,
				"subject", e.Subject, "value", e.Value, "x", e.Pos.X, "y", e.Pos.Y)
		}
		if state.Terminal() {
			break
		}
	}

	outcome := storage.OutcomeAbandoned
	switch {
	case state.Won:
		outcome = storage.OutcomeVictory
	case state.GameOver:
		outcome = storage.OutcomeDefeat
	}

	run := storage.Run{
		Attempt:    attempt,
		LevelID:    def.ID,
		LevelIndex: idx,
		Seed:       seed,
		Outcome:    outcome,
		Score:      state.Score,
		Ticks:      game.Tick(),
	}
	tally.Fill(&run)
	id, err := store.SaveRun(run)
	if err != nil {
		return simReport{}, err
	}
	run.ID = id

	kills, err := store.KillsByKind(attempt)
	if err != nil {
		return simReport{}, err
	}

	final := game.Snapshot()
	logger.Info("simulation finished", "outcome", outcome, "ticks", run.Ticks, "score", run.Score)
	return simReport{
		Session:     store.Session(),
		Run:         run,
		LevelName:   def.Name,
		KillsByKind: kills,
		Hash:        final.Hash(),
	}, nil
}

func runSim(_ *cobra.Command, args []string) {
	logger, err := newLogger(os.Stderr)
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

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	store, err := storage.OpenMemory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run log: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	game := twinblade.New(twinblade.WithConfig(cfg), twinblade.WithStartLevel(start))
	report, err := simulate(game, store, seed, flagTicks, logger)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printReport(report)
}

func printReport(r simReport) {
	run := r.Run
	fmt.Printf("Session:      %s\n", r.Session)
	fmt.Printf("Level:        %s (%s)\n", r.LevelName, run.LevelID)
	fmt.Printf("Seed:         %d\n", run.Seed)
	fmt.Printf("Outcome:      %s after %d ticks\n", run.Outcome, run.Ticks)
	fmt.Printf("Score:        %d\n", run.Score)
	fmt.Printf("Damage taken: %d\n", run.DamageTaken)
	fmt.Printf("Gems:         %d\n", run.Gems)
	fmt.Printf("Kills:        %d\n", run.Kills)

	kinds := make([]string, 0, len(r.KillsByKind))
	for k := range r.KillsByKind {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	for _, k := range kinds {
		fmt.Printf("  %-10s  %d\n", k, r.KillsByKind[k])
	}
	fmt.Printf("State hash:   %016x\n", r.Hash)
}
