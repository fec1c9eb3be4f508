package twinblade

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-twinblade/internal/core"
)

// ErrUnknownEnemyKind is returned when a level names an enemy kind that does not exist.
var ErrUnknownEnemyKind = errors.New("twinblade: unknown enemy kind")

// Character is one of the two playable variants.
type Character int

const (
	Onyx   Character = iota // melee, heavy, grounded
	Zainab                  // ranged, floaty, crosses pits
)

func (c Character) String() string {
	switch c {
	case Onyx:
		return "onyx"
	case Zainab:
		return "zainab"
	}
	return "unknown"
}

// Ranged reports whether the character attacks with projectiles.
func (c Character) Ranged() bool {
	return c == Zainab
}

// Other returns the swap partner.
func (c Character) Other() Character {
	if c == Onyx {
		return Zainab
	}
	return Onyx
}

// Facing is a 4-way direction.
type Facing int

const (
	FacingDown Facing = iota
	FacingUp
	FacingLeft
	FacingRight
)

// Vec returns the unit vector for the direction.
func (f Facing) Vec() core.Vec2 {
	switch f {
	case FacingUp:
		return core.V(0, -1)
	case FacingLeft:
		return core.V(-1, 0)
	case FacingRight:
		return core.V(1, 0)
	default:
		return core.V(0, 1)
	}
}

func (f Facing) String() string {
	return [...]string{"down", "up", "left", "right"}[f]
}

// facingFor returns the facing along the dominant axis of v.
// Ties go to the vertical axis.
func facingFor(v core.Vec2, fallback Facing) Facing {
	ax, ay := v.X, v.Y
	if ax < 0 {
		ax = -ax
	}
	if ay < 0 {
		ay = -ay
	}
	switch {
	case ax == 0 && ay == 0:
		return fallback
	case ax > ay:
		if v.X > 0 {
			return FacingRight
		}
		return FacingLeft
	case v.Y > 0:
		return FacingDown
	default:
		return FacingUp
	}
}

// AttackKind distinguishes a normal swing from a released charge.
type AttackKind int

const (
	AttackNormal AttackKind = iota
	AttackCharged
)

func (k AttackKind) String() string {
	if k == AttackCharged {
		return "charged"
	}
	return "normal"
}

// PlayerState is the controller state derived from the player record.
type PlayerState int

const (
	StateIdle PlayerState = iota
	StateMoving
	StateCharging
	StateAttackingNormal
	StateAttackingCharged
	StateDodging
)

func (s PlayerState) String() string {
	return [...]string{"idle", "moving", "charging", "attacking", "attacking_charged", "dodging"}[s]
}

// EnemyKind selects an enemy behaviour policy.
type EnemyKind int

const (
	Chaser EnemyKind = iota
	Turret
	Dasher
	Tank
	Slimer
)

// EnemyKinds lists every kind in declaration order.
var EnemyKinds = []EnemyKind{Chaser, Turret, Dasher, Tank, Slimer}

func (k EnemyKind) String() string {
	switch k {
	case Chaser:
		return "chaser"
	case Turret:
		return "turret"
	case Dasher:
		return "dasher"
	case Tank:
		return "tank"
	case Slimer:
		return "slimer"
	}
	return "unknown"
}

// ParseEnemyKind maps a level or config name onto a kind.
func ParseEnemyKind(name string) (EnemyKind, error) {
	for _, k := range EnemyKinds {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEnemyKind, name)
}

// Owner is the side a projectile belongs to.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

func (o Owner) String() string {
	if o == OwnerEnemy {
		return "enemy"
	}
	return "player"
}

// Player is the controlled character's state.
type Player struct {
	Pos, Vel  core.Vec2
	Facing    Facing
	Character Character
	Health    int
	MaxHealth int

	Attacking      bool
	AttackKind     AttackKind
	AttackFrame    int
	AttackCooldown int
	ChargeTimer    int

	Dodging         bool
	DodgeTimer      int
	DodgeCooldown   int
	Invulnerable    int
	ContactCooldown int

	SpeedMult float64
	SlowTimer int
}

// Enemy is a hostile entity. Dead enemies stay in the slice with Active=false.
type Enemy struct {
	ID             int
	Kind           EnemyKind
	Pos, Vel       core.Vec2
	Size           float64
	Active         bool
	Health         int
	MaxHealth      int
	Aggro          float64
	Facing         Facing
	AttackCooldown int
	HitFlash       int
}

// Rect returns the enemy bounding box.
func (e *Enemy) Rect() core.Rect {
	return core.Square(e.Pos, e.Size)
}

// Center returns the middle of the bounding box.
func (e *Enemy) Center() core.Vec2 {
	return e.Rect().Center()
}

// Trail is a bounded queue of past positions, oldest first.
type Trail struct {
	points []core.Vec2
	limit  int
}

// Push appends p, dropping the oldest point once the limit is reached.
func (t *Trail) Push(p core.Vec2) {
	if t.limit <= 0 {
		return
	}
	if len(t.points) == t.limit {
		copy(t.points, t.points[1:])
		t.points = t.points[:t.limit-1]
	}
	t.points = append(t.points, p)
}

// Points returns the stored positions, oldest first.
func (t *Trail) Points() []core.Vec2 {
	return t.points
}

// Projectile is a moving hitbox owned by one side.
type Projectile struct {
	ID     int
	Pos    core.Vec2
	Vel    core.Vec2
	Size   float64
	Owner  Owner
	Damage int
	Life   int
	Trail  Trail
	Active bool
}

// Rect returns the projectile hitbox.
func (p *Projectile) Rect() core.Rect {
	return core.Square(p.Pos, p.Size)
}

// Pickup is a gem dropped by a dead enemy.
type Pickup struct {
	ID        int
	Pos, Vel  core.Vec2
	Size      float64
	Value     int
	Life      int
	Collected bool
	Active    bool
}

// Center returns the middle of the gem.
func (p *Pickup) Center() core.Vec2 {
	return core.Square(p.Pos, p.Size).Center()
}

// Ghost is an afterimage left behind by a dodge.
type Ghost struct {
	Pos       core.Vec2
	Character Character
	Life      int
}
