package sim

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/skirmish/internal/core"
)

// stepMotion runs one tick of the motion/targeting state machine for a unit.
// The state is not stored; it is re-derived from the fields every tick:
//
//  1. pending velocity: apply it and stop
//  2. targeting and outside the leash: head home at full speed
//  3. player inside the leash: the commanded point is reached, stop seeking
//  4. AI without a wander target: roll one inside the home square
//  5. AI with a wander target: drop it if it left the leash, walk toward it,
//     or clear it on arrival
//  6. otherwise idle
func (e *Entity) stepMotion(rng *rand.Rand) error {
	if !e.Velocity.IsZero() {
		return e.integrate()
	}
	if !e.Targeting {
		return nil
	}

	if e.Position.DistanceTo(e.Home) > e.WanderRadius {
		return e.seek(e.Home)
	}

	if e.IsPlayer() {
		e.Targeting = false
		return nil
	}

	if e.Wander == nil {
		e.pickWanderTarget(rng)
		return nil
	}

	target := *e.Wander
	switch {
	case e.Home.DistanceTo(target) > e.WanderRadius:
		e.Wander = nil // re-roll next tick
	case e.Position.DistanceTo(target) > e.MaxSpeed+1:
		return e.seek(target)
	default:
		e.Wander = nil // arrived
	}
	return nil
}

// integrate applies the pending velocity, turns the entity to face along it
// and clears it. Velocity is an impulse: whoever wants motion next tick has
// to set it again.
func (e *Entity) integrate() error {
	angle, err := core.FacingAngle(e.Velocity)
	if err != nil {
		return fmt.Errorf("sim: facing of entity %s: %w", e.ID, err)
	}
	e.Position = e.Position.Add(e.Velocity)
	e.Angle = angle
	e.Velocity = core.Vector2{}
	return nil
}

// seek moves toward target at MaxSpeed this tick.
// Callers only seek targets that are farther than the arrival threshold.
func (e *Entity) seek(target core.Vector2) error {
	if e.MaxSpeed == 0 {
		return nil
	}
	dir, err := target.Sub(e.Position).Normalized()
	if err != nil {
		return fmt.Errorf("sim: seek of entity %s: %w", e.ID, err)
	}
	e.Velocity = dir.Scale(e.MaxSpeed)
	return e.integrate()
}

// pickWanderTarget rolls a point uniformly in [Home-r, Home+r] per axis.
// Corners of the square lie outside the leash circle; those targets are
// discarded on the next tick.
func (e *Entity) pickWanderTarget(rng *rand.Rand) {
	r := e.WanderRadius
	target := core.Vector2{
		X: e.Home.X - r + rng.Float64()*2*r,
		Y: e.Home.Y - r + rng.Float64()*2*r,
	}
	e.Wander = &target
}

// steer sets the player's velocity from held movement keys. Each axis gets
// ±MaxSpeed; a diagonal is renormalized so it is not faster than a straight
// line.
func (e *Entity) steer(in Input) {
	var v core.Vector2
	if in.Up {
		v.Y = -e.MaxSpeed
	}
	if in.Left {
		v.X = -e.MaxSpeed
	}
	if in.Down {
		v.Y = e.MaxSpeed
	}
	if in.Right {
		v.X = e.MaxSpeed
	}
	if v.X != 0 && v.Y != 0 {
		if n, err := v.Normalized(); err == nil {
			v = n.Scale(e.MaxSpeed)
		}
	}
	if !v.IsZero() {
		e.Velocity = v
	}
}

// command points the entity at a new home and starts seeking it.
func (e *Entity) command(target core.Vector2) {
	e.Home = target
	e.Targeting = true
	e.Wander = nil
}
