package sim

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/skirmish/internal/core"
)

var (
	// ErrInvalidSpawn is returned for spawn requests the world refuses to
	// build (degenerate size, missing sprite, broken weapon).
	ErrInvalidSpawn = errors.New("invalid spawn request")

	// ErrPlayerExists is returned when a second player is spawned.
	ErrPlayerExists = errors.New("player already spawned")
)

// SpawnSpec describes one entity of the initial population.
type SpawnSpec struct {
	Name     string
	Position core.Vector2
	Width    float64
	Height   float64
	Angle    float64
	Health   int
	Speed    float64
	Sprite   string
	Player   bool
	Weapons  []WeaponSpec
}

// WeaponSpec describes a weapon attached at spawn.
type WeaponSpec struct {
	Damage          int
	ProjectileSpeed float64
	Cooldown        time.Duration
	Offset          core.Vector2
	AngleOffset     float64
	ProjectileSize  float64
	Sprite          string
}

// Validate checks the spec and returns an error wrapping ErrInvalidSpawn.
func (s SpawnSpec) Validate() error {
	switch {
	case s.Width <= 0 || s.Height <= 0:
		return fmt.Errorf("%w: %q has size %gx%g", ErrInvalidSpawn, s.Name, s.Width, s.Height)
	case s.Sprite == "":
		return fmt.Errorf("%w: %q has no sprite", ErrInvalidSpawn, s.Name)
	case s.Speed < 0:
		return fmt.Errorf("%w: %q has negative speed %g", ErrInvalidSpawn, s.Name, s.Speed)
	}
	for i, wp := range s.Weapons {
		if err := wp.validate(); err != nil {
			return fmt.Errorf("%w: %q weapon %d: %v", ErrInvalidSpawn, s.Name, i, err)
		}
	}
	return nil
}

func (s WeaponSpec) validate() error {
	switch {
	case s.ProjectileSpeed <= 0:
		return fmt.Errorf("projectile speed %g must be positive", s.ProjectileSpeed)
	case s.ProjectileSize <= 0:
		return fmt.Errorf("projectile size %g must be positive", s.ProjectileSize)
	case s.Sprite == "":
		return errors.New("projectile has no sprite")
	case s.Cooldown < 0:
		return fmt.Errorf("negative cooldown %s", s.Cooldown)
	}
	return nil
}

// DefaultLoadout expands one weapon into the usual spread of three: forward,
// left and right. The side guns sit lateral units off the center line and
// are angled spread degrees outward.
func DefaultLoadout(base WeaponSpec, spread, lateral float64) []WeaponSpec {
	forward := base

	left := base
	left.Offset = base.Offset.Add(core.Vec(0, lateral))
	left.AngleOffset = base.AngleOffset + spread

	right := base
	right.Offset = base.Offset.Add(core.Vec(0, -lateral))
	right.AngleOffset = base.AngleOffset - spread

	return []WeaponSpec{forward, left, right}
}

// newEntity builds a unit from a validated spec.
func newEntity(id EntityID, s SpawnSpec) *Entity {
	kind := KindAI
	if s.Player {
		kind = KindPlayer
	}
	e := &Entity{
		ID:           id,
		Kind:         kind,
		Name:         s.Name,
		Sprite:       s.Sprite,
		Position:     s.Position,
		Home:         s.Position,
		WanderRadius: wanderRadius(kind, s.Width, s.Height, s.Speed),
		Angle:        s.Angle,
		Width:        s.Width,
		Height:       s.Height,
		Health:       s.Health,
		MaxSpeed:     s.Speed,
		Alive:        true,
		Renderable:   true,
		Targeting:    kind == KindAI,
	}
	for _, wp := range s.Weapons {
		e.Weapons = append(e.Weapons, newWeapon(id, wp))
	}
	return e
}
