// twinblade is a top-down action game for the terminal.
//
// Usage:
//
//	twinblade play [level]          - Play the campaign, optionally from a level
//	twinblade sim [level] --ticks N - Run a scripted bot headless and print a summary
//	twinblade levels                - List registered levels
//	twinblade config                - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load tuning from a YAML file
//	--difficulty <preset> - easy, normal or hard
//	--levels <dir>        - Register extra YAML levels from a directory
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-twinblade/internal/config"
	"github.com/vovakirdan/tui-twinblade/internal/level"
	"github.com/vovakirdan/tui-twinblade/internal/registry"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLevels     string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "twinblade",
	Short: "Twinblade - a top-down action game in your terminal",
	Long: `Twinblade is a fixed-step action game: swap between Onyx, a heavy
melee fighter who charges his strikes, and Zainab, a quick archer who
floats over pits. Clear the fog, survive the keep and reach the goal.

Available commands:
  play     - Play the campaign
  sim      - Headless bot run for balance checks
  levels   - Show all registered levels
  config   - Print the default tuning

Examples:
  twinblade play
  twinblade play vault --difficulty hard
  twinblade sim keep --ticks 3600 --seed 42
  twinblade levels --levels ./my-levels`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory of extra YAML levels")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the CLI logger writing to w at the --log-level level.
func newLogger(w io.Writer) (*log.Logger, error) {
	lvl, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "twinblade",
	})
	logger.SetLevel(lvl)
	return logger, nil
}

// loadConfig reads the tuning and applies the difficulty preset.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// loadLevelPack registers the YAML levels under --levels, if given.
// Broken files and duplicate IDs are logged and skipped.
func loadLevelPack(logger *log.Logger) error {
	if flagLevels == "" {
		return nil
	}
	defs, skipped, err := level.NewLoader(flagLevels).LoadAll()
	if err != nil {
		return fmt.Errorf("loading levels from %s: %w", flagLevels, err)
	}
	for path, err := range skipped {
		logger.Warn("skipped level file", "path", path, "err", err)
	}
	for _, def := range defs {
		if err := registry.Add(def); err != nil {
			logger.Warn("skipped level", "id", def.ID, "err", err)
			continue
		}
		logger.Debug("registered level", "id", def.ID, "source", def.Source)
	}
	return nil
}

// resolveLevel maps a level argument (ID or campaign index) to an index.
// The empty string selects the first level.
func resolveLevel(arg string) (int, error) {
	if arg == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(arg); err == nil {
		if _, err := registry.Get(n); err != nil {
			return 0, err
		}
		return n, nil
	}
	return registry.IndexOf(arg)
}

func levelArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
