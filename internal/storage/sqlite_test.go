package storage

import (
	"testing"

	"github.com/vovakirdan/tui-twinblade/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Attempt: 1, LevelID: "keep", Seed: 1, Outcome: OutcomeDefeat, Score: 40, Ticks: 900, Kills: 2, DamageTaken: 10},
		{LevelID: "keep", Seed: 2, Outcome: OutcomeVictory, Score: 120, Ticks: 3600, Kills: 6, DamageTaken: 4},
		{LevelID: "gardens", LevelIndex: 1, Seed: 2, Outcome: OutcomeAbandoned, Score: 10, Ticks: 300},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(recent))
	}
	// newest first
	if recent[0].LevelID != "gardens" || recent[2].Score != 40 {
		t.Errorf("Unexpected order: %+v", recent)
	}
	if recent[2].Attempt != 1 {
		t.Errorf("Expected attempt 1, got %d", recent[2].Attempt)
	}
	if recent[1].Ticks != 3600 {
		t.Errorf("Expected ticks 3600, got %d", recent[1].Ticks)
	}

	limited, err := store.RecentRuns(1)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("Expected 1 run with limit 1, got %d", len(limited))
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore("keep")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for empty log, got %d", best)
	}

	for _, score := range []int{30, 90, 60} {
		if _, err := store.SaveRun(Run{LevelID: "keep", Outcome: OutcomeDefeat, Score: score}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	best, err = store.BestScore("keep")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 90 {
		t.Errorf("Expected best score 90, got %d", best)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{LevelID: "keep", Outcome: OutcomeVictory, Score: 100, Kills: 5, DamageTaken: 3})
	store.SaveRun(Run{LevelID: "keep", Outcome: OutcomeDefeat, Score: 20, Kills: 1, DamageTaken: 10})
	store.SaveRun(Run{LevelID: "vault", Outcome: OutcomeAbandoned, Score: 0})

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 {
		t.Errorf("Expected 3 runs, got %d", stats.Runs)
	}
	if stats.Victories != 1 || stats.Defeats != 1 {
		t.Errorf("Expected 1 victory and 1 defeat, got %d/%d", stats.Victories, stats.Defeats)
	}
	if stats.Kills != 6 {
		t.Errorf("Expected 6 kills, got %d", stats.Kills)
	}
	if stats.DamageTaken != 13 {
		t.Errorf("Expected 13 damage taken, got %d", stats.DamageTaken)
	}
	if stats.BestScore != 100 {
		t.Errorf("Expected best score 100, got %d", stats.BestScore)
	}
}

func TestStoreRejectsUnknownOutcome(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(Run{LevelID: "keep", Outcome: "draw"}); err == nil {
		t.Error("Expected error for unknown outcome")
	}
}

func TestStoresAreIsolated(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	if _, err := a.SaveRun(Run{LevelID: "keep", Outcome: OutcomeVictory, Score: 50}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	stats, err := b.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 {
		t.Errorf("Expected an empty second log, got %d runs", stats.Runs)
	}
	if a.Session() == "" || a.Session() == b.Session() {
		t.Errorf("Expected distinct session IDs, got %q and %q", a.Session(), b.Session())
	}
}

func TestTally(t *testing.T) {
	var tally Tally
	tally.Observe([]core.Event{
		{Kind: core.EventEnemyKilled, Subject: "chaser"},
		{Kind: core.EventPlayerHurt, Value: 2},
		{Kind: core.EventGemCollected, Value: 10},
		{Kind: core.EventEnemyKilled, Subject: "chaser"},
		{Kind: core.EventPlayerHurt, Value: 1},
		{Kind: core.EventHeartCollected},
		{Kind: core.EventText},
	})

	if tally.Kills != 2 || tally.DamageTaken != 3 || tally.Gems != 1 || tally.Hearts != 1 {
		t.Errorf("Unexpected tally: %+v", tally)
	}

	var r Run
	tally.Fill(&r)
	if r.Kills != 2 || r.DamageTaken != 3 || r.Gems != 1 {
		t.Errorf("Fill() produced %+v", r)
	}

	tally.Reset()
	if tally != (Tally{}) {
		t.Errorf("Reset() left %+v", tally)
	}
}

func TestJournalKillsByKind(t *testing.T) {
	store := openTestStore(t)

	events := []core.Event{
		{Tick: 10, Kind: core.EventEnemyKilled, Subject: "chaser", Value: 3},
		{Tick: 10, Kind: core.EventText, Subject: "+10"},
		{Tick: 42, Kind: core.EventEnemyKilled, Subject: "turret", Value: 4},
		{Tick: 90, Kind: core.EventEnemyKilled, Subject: "chaser", Value: 3},
		{Tick: 91, Kind: core.EventPlayerHurt, Value: 1},
	}
	if err := store.Journal(1, events); err != nil {
		t.Fatalf("Journal() failed: %v", err)
	}
	if err := store.Journal(2, events[:1]); err != nil {
		t.Fatalf("Journal() failed: %v", err)
	}
	if err := store.Journal(2, nil); err != nil {
		t.Errorf("Journal() of no events = %v, expected nil", err)
	}

	kills, err := store.KillsByKind(1)
	if err != nil {
		t.Fatalf("KillsByKind() failed: %v", err)
	}
	if kills["chaser"] != 2 || kills["turret"] != 1 || len(kills) != 2 {
		t.Errorf("KillsByKind(1) = %v, expected chaser:2 turret:1", kills)
	}

	kills, err = store.KillsByKind(2)
	if err != nil {
		t.Fatalf("KillsByKind() failed: %v", err)
	}
	if kills["chaser"] != 1 || len(kills) != 1 {
		t.Errorf("KillsByKind(2) = %v, expected chaser:1", kills)
	}

	kills, err = store.KillsByKind(3)
	if err != nil {
		t.Fatalf("KillsByKind() failed: %v", err)
	}
	if len(kills) != 0 {
		t.Errorf("KillsByKind(3) = %v, expected empty", kills)
	}
}
