package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/skirmish/internal/core"
)

func TestWanderRadius(t *testing.T) {
	tests := []struct {
		kind     Kind
		w, h     float64
		speed    float64
		expected float64
	}{
		{KindAI, 32, 32, 2, 35},
		{KindAI, 10, 20, 0, 16},
		{KindPlayer, 32, 32, 2, 3},
		{KindProjectile, 2, 2, 15, 16},
	}

	for _, tc := range tests {
		if got := wanderRadius(tc.kind, tc.w, tc.h, tc.speed); got != tc.expected {
			t.Errorf("wanderRadius(%v, %g, %g, %g) = %g, expected %g", tc.kind, tc.w, tc.h, tc.speed, got, tc.expected)
		}
	}
}

func TestPendingVelocityIsOneShot(t *testing.T) {
	w := newTestWorld(500, 500)
	p := mustSpawn(t, w, playerAt(100, 100))

	p.Velocity = core.Vec(3, 4)
	step(t, w, t0, Input{})

	if p.Position != core.Vec(103, 104) {
		t.Errorf("Position = %v, expected (103, 104)", p.Position)
	}
	if !p.Velocity.IsZero() {
		t.Errorf("Velocity should be cleared after integration, got %v", p.Velocity)
	}
	// (3, 4) points right and down: mirrored angle is negative
	wantAngle := -(180 - math.Atan2(3, 4)*180/math.Pi)
	if math.Abs(p.Angle-wantAngle) > 1e-9 {
		t.Errorf("Angle = %v, expected %v", p.Angle, wantAngle)
	}

	// Without new input the player stays put
	step(t, w, t0, Input{})
	if p.Position != core.Vec(103, 104) {
		t.Errorf("player without input moved to %v", p.Position)
	}
}

func TestPlayerKeyboardSteering(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		move core.Vector2
	}{
		{"up", Input{Up: true}, core.Vec(0, -2)},
		{"left", Input{Left: true}, core.Vec(-2, 0)},
		{"down", Input{Down: true}, core.Vec(0, 2)},
		{"right", Input{Right: true}, core.Vec(2, 0)},
		{"up and down, down wins", Input{Up: true, Down: true}, core.Vec(0, 2)},
		{"diagonal is normalized", Input{Up: true, Right: true}, core.Vec(math.Sqrt2, -math.Sqrt2)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(500, 500)
			p := mustSpawn(t, w, playerAt(100, 100))

			step(t, w, t0, tc.in)

			got := p.Position.Sub(core.Vec(100, 100))
			if !got.ApproxEqual(tc.move, 1e-9) {
				t.Errorf("moved by %v, expected %v", got, tc.move)
			}
			if d := got.Len(); math.Abs(d-2) > 1e-9 {
				t.Errorf("moved %v units, expected exactly maxSpeed", d)
			}
		})
	}
}

func TestPlayerClickToPointScenario(t *testing.T) {
	w := newTestWorld(500, 500)
	p := mustSpawn(t, w, playerAt(250, 250))
	target := core.Vec(300, 200)

	if p.Targeting {
		t.Fatal("player should not start in targeting mode")
	}

	step(t, w, t0, Input{Target: &target})

	if !p.Targeting {
		t.Fatal("click should enable targeting mode")
	}
	if p.Home != target {
		t.Errorf("Home = %v, expected %v", p.Home, target)
	}
	before := core.Vec(250, 250).DistanceTo(target)
	if after := p.Position.DistanceTo(target); math.Abs(before-after-2) > 1e-9 {
		t.Errorf("first tick should close the distance by maxSpeed, %v -> %v", before, after)
	}
	if math.Abs(p.Angle-(-45)) > 1e-9 {
		t.Errorf("Angle = %v, expected -45 (up and to the right)", p.Angle)
	}

	ticks := 1
	for p.Targeting && ticks < 200 {
		step(t, w, t0, Input{})
		ticks++
	}
	if p.Targeting {
		t.Fatal("player never reached the commanded point")
	}
	if d := p.Position.DistanceTo(target); d > p.WanderRadius {
		t.Errorf("arrived %v units away, expected within %v", d, p.WanderRadius)
	}

	rest := p.Position
	for i := 0; i < 10; i++ {
		step(t, w, t0, Input{})
	}
	if p.Position != rest {
		t.Errorf("player kept moving after arrival: %v -> %v", rest, p.Position)
	}
}

func TestWanderTargetWithinHomeSquare(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		w := NewWorld(WorldConfig{Width: 500, Height: 500, Seed: seed})
		spec := dummyAt(200, 200, 10)
		spec.Width, spec.Height, spec.Speed = 20, 20, 2
		e := mustSpawn(t, w, spec)

		if e.Wander != nil {
			t.Fatal("fresh AI unit should not have a wander target")
		}
		step(t, w, t0, Input{})

		if e.Wander == nil {
			t.Fatalf("seed %d: wander target not picked", seed)
		}
		r := e.WanderRadius
		if e.Wander.X < 200-r || e.Wander.X > 200+r || e.Wander.Y < 200-r || e.Wander.Y > 200+r {
			t.Errorf("seed %d: wander target %v outside [%v, %v]", seed, *e.Wander, 200-r, 200+r)
		}
		if e.Position != core.Vec(200, 200) {
			t.Errorf("seed %d: picking a target should not move the unit", seed)
		}
	}
}

func TestWanderTargetIsDeterministicPerSeed(t *testing.T) {
	pick := func() core.Vector2 {
		w := NewWorld(WorldConfig{Width: 500, Height: 500, Seed: 99})
		e := mustSpawn(t, w, dummyAt(200, 200, 10))
		step(t, w, t0, Input{})
		return *e.Wander
	}
	if a, b := pick(), pick(); a != b {
		t.Errorf("same seed picked %v and %v", a, b)
	}
}

func TestWanderTargetStates(t *testing.T) {
	newUnit := func(t *testing.T) (*World, *Entity) {
		w := newTestWorld(500, 500)
		spec := dummyAt(200, 200, 10)
		spec.Speed = 2 // radius = 10 + 2 + 1
		return w, mustSpawn(t, w, spec)
	}

	t.Run("outside leash is discarded", func(t *testing.T) {
		w, e := newUnit(t)
		far := core.Vec(300, 200)
		e.Wander = &far
		step(t, w, t0, Input{})
		if e.Wander != nil {
			t.Errorf("target beyond the leash should be dropped, got %v", *e.Wander)
		}
		if e.Position != core.Vec(200, 200) {
			t.Errorf("discarding should not move the unit, got %v", e.Position)
		}
	})

	t.Run("walks toward target", func(t *testing.T) {
		w, e := newUnit(t)
		goal := core.Vec(210, 200)
		e.Wander = &goal
		step(t, w, t0, Input{})
		if e.Position != core.Vec(202, 200) {
			t.Errorf("Position = %v, expected (202, 200)", e.Position)
		}
		if math.Abs(e.Angle-(-90)) > 1e-9 {
			t.Errorf("Angle = %v, expected -90", e.Angle)
		}
		if e.Wander == nil {
			t.Error("target should be kept until reached")
		}
	})

	t.Run("arrival clears target", func(t *testing.T) {
		w, e := newUnit(t)
		goal := core.Vec(203, 200) // within maxSpeed+1
		e.Wander = &goal
		step(t, w, t0, Input{})
		if e.Wander != nil {
			t.Error("reached target should be cleared")
		}
		if e.Position != core.Vec(200, 200) {
			t.Errorf("arrival tick should not move, got %v", e.Position)
		}
	})

	t.Run("outside home radius returns home", func(t *testing.T) {
		w, e := newUnit(t)
		e.Position = core.Vec(300, 200)
		step(t, w, t0, Input{})
		if e.Position != core.Vec(298, 200) {
			t.Errorf("Position = %v, expected (298, 200)", e.Position)
		}
		if math.Abs(e.Angle-90) > 1e-9 {
			t.Errorf("Angle = %v, expected 90", e.Angle)
		}
	})
}

func TestStationaryUnitNeverMoves(t *testing.T) {
	w := newTestWorld(500, 500)
	e := mustSpawn(t, w, dummyAt(50, 50, 10))

	for i := 0; i < 50; i++ {
		step(t, w, t0, Input{})
	}
	if e.Position != core.Vec(50, 50) {
		t.Errorf("speed 0 unit moved to %v", e.Position)
	}
}
