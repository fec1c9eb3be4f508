package core

// Cue names a sound the presentation layer may play. The simulation only
// reports cues; it never owns an audio device.
type Cue int

const (
	CueNone Cue = iota
	CueShoot
	CueSwing
	CueHit
	CuePowerup
	CueEnemyHit
	CueDodge
	CueClash
	CueGameOver
	CueGemCollect
	CueChargeReady
	CueChargeRelease
)

var cueNames = [...]string{
	CueNone:          "none",
	CueShoot:         "shoot",
	CueSwing:         "swing",
	CueHit:           "hit",
	CuePowerup:       "powerup",
	CueEnemyHit:      "enemy_hit",
	CueDodge:         "dodge",
	CueClash:         "clash",
	CueGameOver:      "game_over",
	CueGemCollect:    "gem_collect",
	CueChargeReady:   "charge_ready",
	CueChargeRelease: "charge_release",
}

// String returns the cue's stable name.
func (c Cue) String() string {
	if c < 0 || int(c) >= len(cueNames) {
		return "unknown"
	}
	return cueNames[c]
}

// EventKind classifies a gameplay event.
type EventKind int

const (
	EventCue          EventKind = iota // cue only, no gameplay payload
	EventText                          // floating text at Pos
	EventEnemyHit                      // Subject = enemy kind, Value = damage
	EventEnemyKilled                   // Subject = enemy kind
	EventPlayerHurt                    // Value = damage taken
	EventGemCollected                  // Value = score gained
	EventHeartCollected                // Value = new max health
	EventAttack                        // Subject = attack kind
	EventDodge
	EventSwap // Subject = new character
	EventVictory
	EventDefeat
)

var eventKindNames = [...]string{
	EventCue:            "cue",
	EventText:           "text",
	EventEnemyHit:       "enemy_hit",
	EventEnemyKilled:    "enemy_killed",
	EventPlayerHurt:     "player_hurt",
	EventGemCollected:   "gem_collected",
	EventHeartCollected: "heart_collected",
	EventAttack:         "attack",
	EventDodge:          "dodge",
	EventSwap:           "swap",
	EventVictory:        "victory",
	EventDefeat:         "defeat",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventKindNames) {
		return "unknown"
	}
	return eventKindNames[k]
}

// Event is one notable occurrence within a tick.
type Event struct {
	Tick    uint64
	Kind    EventKind
	Cue     Cue
	Subject string
	Value   int
	Pos     Vec2
}
