// Package sim is the real-time simulation core: entities with a
// motion/targeting state machine, weapons, collision and damage, and the
// world that advances them one fixed tick at a time.
//
// The package never touches the terminal. It consumes an Input snapshot per
// tick and exposes a Frame of renderable entity poses.
package sim

import (
	"math"

	"github.com/vovakirdan/skirmish/internal/core"
)

// Kind tags the entity variant. Behavior is dispatched on it by the world.
type Kind uint8

const (
	KindPlayer     Kind = iota // steered by input, never auto-wanders
	KindAI                     // wanders near its home point
	KindProjectile             // flies straight, damages what it touches
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindAI:
		return "ai"
	case KindProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}

// Entity is any simulated body: the player unit, an AI unit or a projectile.
type Entity struct {
	ID     EntityID
	Kind   Kind
	Name   string
	Sprite string // texture/sprite identifier, opaque to the simulation

	Position     core.Vector2
	Home         core.Vector2 // anchor for wander and return
	WanderRadius float64
	Velocity     core.Vector2 // one-shot displacement, cleared after it is applied
	Angle        float64      // facing, degrees
	Width        float64
	Height       float64
	Health       int
	MaxSpeed     float64

	Alive      bool
	Renderable bool
	Targeting  bool          // actively seeking Home
	Wander     *core.Vector2 // transient random destination near Home

	// Projectile state. Owner is a handle, not a reference: it only exempts
	// the shooter from its own projectiles.
	Owner     EntityID
	Damage    int
	Direction core.Vector2

	Weapons []*Weapon

	diedAt   uint64
	removing bool
}

// IsPlayer reports whether the entity is steered by input.
func (e *Entity) IsPlayer() bool {
	return e.Kind == KindPlayer
}

// EffectiveRadius is the collision radius: a quarter of the bounding box
// diagonal.
func (e *Entity) EffectiveRadius() float64 {
	return math.Hypot(e.Width, e.Height) / 4
}

// Overlaps reports whether the collision circles of e and o touch.
func (e *Entity) Overlaps(o *Entity) bool {
	return e.EffectiveRadius()+o.EffectiveRadius() >= e.Position.DistanceTo(o.Position)
}

// die is the two-phase death protocol. The first call marks the entity
// dead; a call on a later tick flags it for removal. A second call within
// the same tick does nothing, so an entity is never removed on the tick it
// died.
func (e *Entity) die(tick uint64) {
	if e.Alive {
		e.Alive = false
		e.diedAt = tick
		return
	}
	if tick > e.diedAt {
		e.removing = true
	}
}

// takeDamage lowers health and kills the entity at zero or below.
// Reports whether this hit was the killing blow.
func (e *Entity) takeDamage(n int, tick uint64) bool {
	wasAlive := e.Alive
	e.Health -= n
	if e.Health <= 0 {
		e.die(tick)
	}
	return wasAlive && !e.Alive
}

// wanderRadius is the leash for autonomous movement:
// (width+height)/2 * magic + speed + 1, with magic 0 for everything but
// AI units, so the player only keeps a small arrival tolerance.
func wanderRadius(kind Kind, width, height, speed float64) float64 {
	magic := 0.0
	if kind == KindAI {
		magic = 1
	}
	return (width+height)/2*magic + speed + 1
}
