// Package config provides YAML-based tuning for the simulation and
// difficulty preset handling.
package config

// Config contains every tunable of the simulation.
type Config struct {
	Characters Characters            `yaml:"characters"`
	Player     PlayerConfig          `yaml:"player"`
	Combat     CombatConfig          `yaml:"combat"`
	Enemies    map[string]EnemyStats `yaml:"enemies"`
	Population PopulationConfig      `yaml:"population"`
	World      WorldConfig           `yaml:"world"`
	Difficulty DifficultyAdjustments `yaml:"difficulty"`
}

// Characters holds the two playable physics profiles.
type Characters struct {
	Onyx   CharacterProfile `yaml:"onyx"`
	Zainab CharacterProfile `yaml:"zainab"`
}

// CharacterProfile is the fixed physics and attack profile of one character.
type CharacterProfile struct {
	MoveSpeed      float64 `yaml:"move_speed"` // acceleration (lerp factor toward target velocity)
	MaxSpeed       float64 `yaml:"max_speed"`
	Friction       float64 `yaml:"friction"` // velocity retained per tick without input
	TurnAccel      float64 `yaml:"turn_accel"`
	AttackCooldown int     `yaml:"attack_cooldown"`
	AttackDuration int     `yaml:"attack_duration"`
	Damage         int     `yaml:"damage"`
	CanFly         bool    `yaml:"can_fly"` // crosses pit tiles
}

// PlayerConfig defines the player body, timers and movement modifiers.
type PlayerConfig struct {
	MaxHealth       int     `yaml:"max_health"`
	Size            float64 `yaml:"size"`    // collision box edge
	Padding         float64 `yaml:"padding"` // collision box offset from position
	HurtboxSize     float64 `yaml:"hurtbox_size"`
	ChargeThreshold int     `yaml:"charge_threshold"`
	DodgeTicks      int     `yaml:"dodge_ticks"`
	DodgeCooldown   int     `yaml:"dodge_cooldown"`
	DodgeSpeed      float64 `yaml:"dodge_speed"`
	GhostEvery      int     `yaml:"ghost_every"`
	GhostLife       int     `yaml:"ghost_life"`
	AttackSlow      float64 `yaml:"attack_slow"` // speed factor while the melee swing is active
	ChargeSlow      float64 `yaml:"charge_slow"` // speed factor while charging
	SpeedSetting    float64 `yaml:"speed_setting"`
	Deadzone        float64 `yaml:"deadzone"`
	SlowTicks       int     `yaml:"slow_ticks"`
	SlowFactor      float64 `yaml:"slow_factor"`
}

// ProjectileConfig describes one projectile type.
type ProjectileConfig struct {
	Speed  float64 `yaml:"speed"`
	Life   int     `yaml:"life"`
	Size   float64 `yaml:"size"`
	Damage int     `yaml:"damage"` // enemy shots only; player shots use character damage
}

// CombatConfig defines hitboxes, knockback, hit-stop and invulnerability.
type CombatConfig struct {
	ChargedMultiplier   int              `yaml:"charged_multiplier"`
	ChargedScale        float64          `yaml:"charged_scale"` // duration and cooldown factor of a charged attack
	ChargedRadius       float64          `yaml:"charged_radius"`
	MeleeReach          float64          `yaml:"melee_reach"`
	MeleeSize           float64          `yaml:"melee_size"`
	ActiveAfter         int              `yaml:"active_after"` // hit test runs while attack frame > this
	ChargedKnockback    float64          `yaml:"charged_knockback"`
	NormalKnockback     float64          `yaml:"normal_knockback"`
	ProjectileKnockback float64          `yaml:"projectile_knockback"`
	HitStopHit          int              `yaml:"hit_stop_hit"`
	HitStopKill         int              `yaml:"hit_stop_kill"`
	HitStopHurt         int              `yaml:"hit_stop_hurt"`
	HitStopShot         int              `yaml:"hit_stop_shot"`
	HitFlash            int              `yaml:"hit_flash"`
	Invulnerability     int              `yaml:"invulnerability"`
	ContactCooldown     int              `yaml:"contact_cooldown"` // ticks between enemy contact hits
	ShotKnockback       float64          `yaml:"shot_knockback"` // applied to the player by enemy shots
	PlayerShot          ProjectileConfig `yaml:"player_shot"`
	EnemyShot           ProjectileConfig `yaml:"enemy_shot"`
	TurretCooldown      int              `yaml:"turret_cooldown"`
	TrailLength         int              `yaml:"trail_length"`
	ShakeHurt           float64          `yaml:"shake_hurt"`
	ShakeSwap           float64          `yaml:"shake_swap"`
}

// EnemyStats is one row of the enemy stat table.
type EnemyStats struct {
	Health           int     `yaml:"health"`
	Size             float64 `yaml:"size"`
	Aggro            float64 `yaml:"aggro"`
	Accel            float64 `yaml:"accel"`
	MaxSpeed         float64 `yaml:"max_speed"` // 0 means uncapped
	Friction         float64 `yaml:"friction"`
	ContactDamage    int     `yaml:"contact_damage"`
	ContactKnockback float64 `yaml:"contact_knockback"`
	KnockbackFactor  float64 `yaml:"knockback_factor"`
	InitialCooldown  int     `yaml:"initial_cooldown"`
	DashSpeed        float64 `yaml:"dash_speed,omitempty"`
}

// PopulationConfig controls procedural enemy placement.
type PopulationConfig struct {
	BaseCount     int     `yaml:"base_count"`
	PerLevel      int     `yaml:"per_level"`
	AttemptBudget int     `yaml:"attempt_budget"`
	MinDistance   float64 `yaml:"min_distance"` // tiles from the player spawn
}

// GemConfig defines the reward pickup.
type GemConfig struct {
	Value         int     `yaml:"value"`
	Life          int     `yaml:"life"`
	Size          float64 `yaml:"size"`
	Speed         float64 `yaml:"speed"`
	Friction      float64 `yaml:"friction"`
	MagnetRadius  float64 `yaml:"magnet_radius"`
	MagnetSpeed   float64 `yaml:"magnet_speed"`
	CollectRadius float64 `yaml:"collect_radius"`
}

// WorldConfig defines world geometry, visibility and camera behaviour.
type WorldConfig struct {
	TileSize      float64   `yaml:"tile_size"`
	FogRadius     int       `yaml:"fog_radius"`
	ViewportW     float64   `yaml:"viewport_w"`
	ViewportH     float64   `yaml:"viewport_h"`
	CameraLerp    float64   `yaml:"camera_lerp"`
	HeartBonus    int       `yaml:"heart_bonus"`
	ParticleLimit int       `yaml:"particle_limit"`
	Gem           GemConfig `yaml:"gem"`
}

// DifficultyAdjustments are applied on top of the level spawn rate.
type DifficultyAdjustments struct {
	SpawnBias   float64 `yaml:"spawn_bias"`   // multiplies each level's spawn rate
	HealthBonus int     `yaml:"health_bonus"` // added to player max health
}

// Profile returns the enemy stats for a kind name and whether it exists.
func (c Config) Profile(kind string) (EnemyStats, bool) {
	s, ok := c.Enemies[kind]
	return s, ok
}
