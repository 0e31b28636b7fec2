package sim

import (
	"testing"
	"time"

	"github.com/vovakirdan/skirmish/internal/core"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestWorld(w, h float64) *World {
	return NewWorld(WorldConfig{Width: w, Height: h, Seed: 1})
}

func mustSpawn(t *testing.T, w *World, spec SpawnSpec) *Entity {
	t.Helper()
	id, err := w.Spawn(spec)
	if err != nil {
		t.Fatalf("Spawn(%q) failed: %v", spec.Name, err)
	}
	e, ok := w.Entity(id)
	if !ok {
		t.Fatalf("spawned entity %s not found", id)
	}
	return e
}

func gun(damage int, speed float64, cooldown time.Duration) WeaponSpec {
	return WeaponSpec{
		Damage:          damage,
		ProjectileSpeed: speed,
		Cooldown:        cooldown,
		ProjectileSize:  2,
		Sprite:          "shot",
	}
}

func playerAt(x, y float64, weapons ...WeaponSpec) SpawnSpec {
	return SpawnSpec{
		Name:     "kawak",
		Position: core.Vec(x, y),
		Width:    32,
		Height:   32,
		Health:   10,
		Speed:    2,
		Sprite:   "kawak_green",
		Player:   true,
		Weapons:  weapons,
	}
}

func dummyAt(x, y float64, health int) SpawnSpec {
	return SpawnSpec{
		Name:     "dummy",
		Position: core.Vec(x, y),
		Width:    10,
		Height:   10,
		Health:   health,
		Speed:    0,
		Sprite:   "kawak_red",
	}
}

func step(t *testing.T, w *World, now time.Time, in Input) TickEvents {
	t.Helper()
	ev, err := w.Step(TickContext{Now: now, Input: in})
	if err != nil {
		t.Fatalf("Step failed at tick %d: %v", w.Tick(), err)
	}
	return ev
}

func contains(w *World, e *Entity) bool {
	for _, x := range w.Entities() {
		if x == e {
			return true
		}
	}
	return false
}

func projectiles(w *World) []*Entity {
	var out []*Entity
	for _, e := range w.Entities() {
		if e.Kind == KindProjectile {
			out = append(out, e)
		}
	}
	return out
}
