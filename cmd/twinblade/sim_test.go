package main

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-twinblade/internal/core"
	"github.com/vovakirdan/tui-twinblade/internal/games/twinblade"
	"github.com/vovakirdan/tui-twinblade/internal/registry"
	"github.com/vovakirdan/tui-twinblade/internal/storage"
)

func runSimOnce(t *testing.T, seed int64, ticks int) simReport {
	t.Helper()
	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	defer store.Close()

	report, err := simulate(twinblade.New(), store, seed, ticks, log.New(io.Discard))
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}
	return report
}

func TestSimulateDeterminism(t *testing.T) {
	a := runSimOnce(t, 42, 900)
	b := runSimOnce(t, 42, 900)

	if a.Hash != b.Hash {
		t.Errorf("Determinism failed: hash %x vs %x", a.Hash, b.Hash)
	}
	if a.Run.Score != b.Run.Score || a.Run.Ticks != b.Run.Ticks || a.Run.Kills != b.Run.Kills {
		t.Errorf("Determinism failed: %+v vs %+v", a.Run, b.Run)
	}
}

func TestSimulateReport(t *testing.T) {
	r := runSimOnce(t, 7, 600)

	if r.Run.Ticks == 0 || r.Run.Ticks > 600 {
		t.Errorf("Ticks = %d, expected 1..600", r.Run.Ticks)
	}
	if r.Run.ID == 0 {
		t.Error("run was not saved")
	}
	if r.Run.LevelID != "keep" || r.LevelName == "" {
		t.Errorf("level = %q (%q), expected keep", r.Run.LevelID, r.LevelName)
	}
	switch r.Run.Outcome {
	case storage.OutcomeVictory, storage.OutcomeDefeat:
	case storage.OutcomeAbandoned:
		if r.Run.Ticks != 600 {
			t.Errorf("abandoned run stopped at %d ticks, expected 600", r.Run.Ticks)
		}
	default:
		t.Errorf("unexpected outcome %q", r.Run.Outcome)
	}

	total := 0
	for _, n := range r.KillsByKind {
		total += n
	}
	if total != r.Run.Kills {
		t.Errorf("per-kind kills sum to %d, tally has %d", total, r.Run.Kills)
	}
}

func TestBotIsDeterministic(t *testing.T) {
	g := twinblade.New()
	if err := g.Reset(core.RuntimeConfig{Seed: 5}); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	snap := g.Snapshot()

	a, b := newBot(5), newBot(5)
	for range 200 {
		fa, fb := a.Next(&snap), b.Next(&snap)
		if fa.Move != fb.Move || len(fa.Actions) != len(fb.Actions) {
			t.Fatalf("bots diverged at tick %d: %+v vs %+v", snap.Tick, fa, fb)
		}
		snap.Tick++
	}
}

func TestResolveLevel(t *testing.T) {
	tests := []struct {
		arg     string
		want    int
		wantErr bool
	}{
		{"", 0, false},
		{"keep", 0, false},
		{"gardens", 1, false},
		{"2", 2, false},
		{"99", 0, true},
		{"-1", 0, true},
		{"nowhere", 0, true},
	}
	for _, tt := range tests {
		got, err := resolveLevel(tt.arg)
		if (err != nil) != tt.wantErr {
			t.Errorf("resolveLevel(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, registry.ErrUnknownLevel) {
			t.Errorf("resolveLevel(%q) error = %v, expected ErrUnknownLevel", tt.arg, err)
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("resolveLevel(%q) = %d, expected %d", tt.arg, got, tt.want)
		}
	}
}
