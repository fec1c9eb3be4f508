package config

import (
	_ "embed"
)

//go:embed defaults/twinblade.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// DefaultConfig returns the built-in configuration. It mirrors the embedded
// YAML and is used when that file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Characters: Characters{
			Onyx: CharacterProfile{
				MoveSpeed:      0.35,
				MaxSpeed:       5.5,
				Friction:       0.60,
				TurnAccel:      2.5,
				AttackCooldown: 18,
				AttackDuration: 6,
				Damage:         3,
			},
			Zainab: CharacterProfile{
				MoveSpeed:      0.15,
				MaxSpeed:       7.0,
				Friction:       0.85,
				TurnAccel:      0.3,
				AttackCooldown: 15,
				AttackDuration: 5,
				Damage:         1,
				CanFly:         true,
			},
		},
		Player: PlayerConfig{
			MaxHealth:       10,
			Size:            24,
			Padding:         12,
			HurtboxSize:     24,
			ChargeThreshold: 30,
			DodgeTicks:      15,
			DodgeCooldown:   60,
			DodgeSpeed:      10,
			GhostEvery:      3,
			GhostLife:       10,
			AttackSlow:      0.5,
			ChargeSlow:      0.4,
			SpeedSetting:    1.1,
			Deadzone:        0.1,
			SlowTicks:       180,
			SlowFactor:      0.4,
		},
		Combat: CombatConfig{
			ChargedMultiplier:   3,
			ChargedScale:        1.5,
			ChargedRadius:       40,
			MeleeReach:          32,
			MeleeSize:           32,
			ActiveAfter:         2,
			ChargedKnockback:    25,
			NormalKnockback:     10,
			ProjectileKnockback: 4,
			HitStopHit:          4,
			HitStopKill:         8,
			HitStopHurt:         8,
			HitStopShot:         6,
			HitFlash:            10,
			Invulnerability:     30,
			ContactCooldown:     30,
			ShotKnockback:       10,
			PlayerShot:          ProjectileConfig{Speed: 8, Life: 60, Size: 10},
			EnemyShot:           ProjectileConfig{Speed: 4, Life: 100, Size: 10, Damage: 1},
			TurretCooldown:      100,
			TrailLength:         10,
			ShakeHurt:           12,
			ShakeSwap:           5,
		},
		Enemies: map[string]EnemyStats{
			"chaser": {Health: 3, Size: 32, Aggro: 300, Accel: 0.25, Friction: 0.9,
				ContactDamage: 1, ContactKnockback: 15, KnockbackFactor: 1},
			"dasher": {Health: 2, Size: 32, Aggro: 400, Friction: 0.9,
				ContactDamage: 1, ContactKnockback: 15, KnockbackFactor: 1, DashSpeed: 9},
			"slimer": {Health: 2, Size: 28, Aggro: 300, Accel: 0.1, MaxSpeed: 1.8, Friction: 0.9,
				ContactDamage: 1, ContactKnockback: 15, KnockbackFactor: 1},
			"turret": {Health: 4, Size: 32, Aggro: 450, Friction: 0.9,
				ContactDamage: 1, ContactKnockback: 15, KnockbackFactor: 1, InitialCooldown: 60},
			"tank": {Health: 15, Size: 48, Aggro: 200, Accel: 0.05, MaxSpeed: 0.8, Friction: 0.9,
				ContactDamage: 2, ContactKnockback: 20, KnockbackFactor: 0.1},
		},
		Population: PopulationConfig{
			BaseCount:     6,
			PerLevel:      2,
			AttemptBudget: 200,
			MinDistance:   6,
		},
		World: WorldConfig{
			TileSize:      48,
			FogRadius:     5,
			ViewportW:     960,
			ViewportH:     640,
			CameraLerp:    0.1,
			HeartBonus:    2,
			ParticleLimit: 400,
			Gem: GemConfig{
				Value:         10,
				Life:          600,
				Size:          12,
				Speed:         2,
				Friction:      0.9,
				MagnetRadius:  100,
				MagnetSpeed:   4,
				CollectRadius: 24,
			},
		},
		Difficulty: DifficultyAdjustments{
			SpawnBias: 1,
		},
	}
}
