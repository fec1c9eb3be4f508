package storage

import "github.com/vovakirdan/tui-twinblade/internal/core"

// Tally accumulates run statistics from the events a game reports each tick.
type Tally struct {
	Kills       int
	DamageTaken int
	Gems        int
	Hearts      int
}

// Observe folds one tick's events into the tally.
func (t *Tally) Observe(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventEnemyKilled:
			t.Kills++
		case core.EventPlayerHurt:
			t.DamageTaken += e.Value
		case core.EventGemCollected:
			t.Gems++
		case core.EventHeartCollected:
			t.Hearts++
		}
	}
}

// Reset clears the tally for a new run.
func (t *Tally) Reset() {
	*t = Tally{}
}

// Fill copies the tally into a run record.
func (t *Tally) Fill(r *Run) {
	r.Kills = t.Kills
	r.DamageTaken = t.DamageTaken
	r.Gems = t.Gems
}
