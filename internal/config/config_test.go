package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("embedded YAML and DefaultConfig() disagree:\n yaml: %+v\n code: %+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPathOverridesKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("player:\n  max_health: 20\ncombat:\n  charged_multiplier: 2\nenemies:\n  tank:\n    health: 20\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Player.MaxHealth != 20 {
		t.Errorf("MaxHealth = %d, expected 20", cfg.Player.MaxHealth)
	}
	if cfg.Combat.ChargedMultiplier != 2 {
		t.Errorf("ChargedMultiplier = %d, expected 2", cfg.Combat.ChargedMultiplier)
	}
	// Untouched keys keep their defaults
	if cfg.Player.DodgeTicks != 15 {
		t.Errorf("DodgeTicks = %d, expected default 15", cfg.Player.DodgeTicks)
	}
	if _, ok := cfg.Profile("chaser"); !ok {
		t.Error("enemy table lost its defaults")
	}

	// A partial enemy row keeps the rest of its default stats
	tank, ok := cfg.Profile("tank")
	if !ok {
		t.Fatal("tank row missing")
	}
	want := DefaultConfig().Enemies["tank"]
	want.Health = 20
	if tank != want {
		t.Errorf("tank = %+v, expected %+v", tank, want)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing explicit path should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("player: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		wantHealth int
		wantRate   float64
	}{
		{DifficultyEasy, 14, 0.75},
		{DifficultyNormal, 10, 1},
		{DifficultyHard, 6, 1.5},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultConfig()
			ApplyPreset(&cfg, tc.preset)
			if got := cfg.PlayerMaxHealth(); got != tc.wantHealth {
				t.Errorf("PlayerMaxHealth() = %d, expected %d", got, tc.wantHealth)
			}
			if got := cfg.SpawnRate(1); got != tc.wantRate {
				t.Errorf("SpawnRate(1) = %v, expected %v", got, tc.wantRate)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v; expected normal", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(nightmare) should fail")
	}
}
