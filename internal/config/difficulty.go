package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. The empty string selects normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.SpawnBias = 0.75
		cfg.Difficulty.HealthBonus = 4
	case DifficultyHard:
		cfg.Difficulty.SpawnBias = 1.5
		cfg.Difficulty.HealthBonus = -4
	}
}

// PlayerMaxHealth returns the starting max health after difficulty, never below 1.
func (c Config) PlayerMaxHealth() int {
	return max(1, c.Player.MaxHealth+c.Difficulty.HealthBonus)
}

// SpawnRate returns a level's spawn-rate multiplier after difficulty bias.
func (c Config) SpawnRate(levelRate float64) float64 {
	bias := c.Difficulty.SpawnBias
	if bias <= 0 {
		bias = 1
	}
	return levelRate * bias
}
