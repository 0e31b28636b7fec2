package sim

import (
	"time"

	"github.com/vovakirdan/skirmish/internal/core"
)

// projectileSpeedFactor scales a weapon's bullet speed stat to the speed
// its projectiles actually travel at.
const projectileSpeedFactor = 3

// Weapon is an emitter attached to one entity. It spawns projectiles offset
// and rotated relative to its owner, at most once per cooldown.
type Weapon struct {
	owner EntityID

	Damage          int
	ProjectileSpeed float64
	Cooldown        time.Duration
	Offset          core.Vector2 // muzzle position relative to the owner
	AngleOffset     float64      // degrees added to the owner's facing
	ProjectileSize  float64
	Sprite          string

	LastFiredAt time.Time
}

func newWeapon(owner EntityID, spec WeaponSpec) *Weapon {
	return &Weapon{
		owner:           owner,
		Damage:          spec.Damage,
		ProjectileSpeed: spec.ProjectileSpeed,
		Cooldown:        spec.Cooldown,
		Offset:          spec.Offset,
		AngleOffset:     spec.AngleOffset,
		ProjectileSize:  spec.ProjectileSize,
		Sprite:          spec.Sprite,
	}
}

// Owner returns the handle of the entity carrying this weapon.
func (wp *Weapon) Owner() EntityID {
	return wp.owner
}

// Ready reports whether the cooldown has elapsed at now.
func (wp *Weapon) Ready(now time.Time) bool {
	if wp.LastFiredAt.IsZero() {
		return true
	}
	return now.Sub(wp.LastFiredAt) >= wp.Cooldown
}

// fire spawns one projectile into w, or does nothing while cooling down.
// A misfire is not an error.
func (wp *Weapon) fire(w *World, owner *Entity, now time.Time) (EntityID, bool) {
	if !wp.Ready(now) {
		return NoEntity, false
	}
	wp.LastFiredAt = now

	angle := owner.Angle + wp.AngleOffset
	pos := owner.Position.Add(wp.Offset.Rotate(90 + owner.Angle))

	p := &Entity{
		Kind:       KindProjectile,
		Name:       owner.Name + "/shot",
		Sprite:     wp.Sprite,
		Position:   pos,
		Home:       pos,
		Angle:      angle,
		Width:      wp.ProjectileSize,
		Height:     wp.ProjectileSize,
		Health:     1,
		MaxSpeed:   wp.ProjectileSpeed * projectileSpeedFactor,
		Alive:      true,
		Renderable: true,
		Owner:      owner.ID,
		Damage:     wp.Damage,
		Direction:  core.Heading(angle),
	}
	w.add(p)
	w.events.Shots++
	return p.ID, true
}

// attack fires every weapon of e; each one is gated by its own cooldown.
// Returns how many projectiles were spawned.
func (e *Entity) attack(w *World, now time.Time) int {
	n := 0
	for _, wp := range e.Weapons {
		if _, ok := wp.fire(w, e, now); ok {
			n++
		}
	}
	return n
}
