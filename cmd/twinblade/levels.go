package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-twinblade/internal/registry"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all registered levels",
	Long: `Shows the campaign in play order: built-in levels first, then any
levels loaded with --levels.

Examples:
  twinblade levels
  twinblade levels --levels ./my-levels`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := loadLevelPack(logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	printLevels(logger)
}

func printLevels(logger *log.Logger) {
	levels := registry.List()
	if len(levels) == 0 {
		logger.Warn("no levels registered")
		return
	}

	fmt.Println("Campaign:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxNameLen := 2, 4 // "ID", "Name" headers
	for _, l := range levels {
		maxIDLen = max(maxIDLen, len(l.ID))
		maxNameLen = max(maxNameLen, len(l.Name))
	}

	fmt.Printf("  #  %-*s  %-*s  %-8s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Source", "Enemies")
	fmt.Printf("  -  %-*s  %-*s  %-8s  %s\n", maxIDLen, "--", maxNameLen, "----", "------", "-------")
	for _, l := range levels {
		fmt.Printf("  %d  %-*s  %-*s  %-8s  %s\n", l.Index, maxIDLen, l.ID, maxNameLen, l.Name, l.Source, strings.Join(l.Enemies, ", "))
	}

	fmt.Println()
	fmt.Println("Run 'twinblade play <id>' to start from a level.")
}
