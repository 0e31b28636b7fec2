package sim

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/skirmish/internal/core"
)

// Input is the per-tick input snapshot for the player entity.
type Input struct {
	Up, Left, Down, Right bool
	Fire                  bool

	// Target is a commanded point in world units, nil when nothing was
	// clicked this tick.
	Target *core.Vector2
}

// TickContext carries everything a tick needs from outside the world.
type TickContext struct {
	Now   time.Time
	Input Input
}

// TickEvents summarizes what happened during one tick.
type TickEvents struct {
	Tick       uint64
	Shots      int
	Hits       []Hit
	Kills      int // AI units killed this tick
	Removed    int // entities pruned at the end of the tick
	PlayerDied bool
}

// WorldConfig holds the static parameters of a world.
type WorldConfig struct {
	Width, Height float64
	Seed          int64

	// FireRange is how close the player must be for AI units to shoot.
	// Zero disables AI fire.
	FireRange float64
}

// World owns the entity collection and advances it one tick at a time.
// The player, when present, is always entities[0].
//
// Entities appended during a tick (projectiles) are visited later in that
// same traversal. Removals only happen after the traversal, so indices
// stay valid while it runs.
type World struct {
	width, height float64
	fireRange     float64

	entities []*Entity
	index    map[EntityID]*Entity
	handles  *handlePool
	rng      *rand.Rand

	tick   uint64
	events TickEvents
}

// NewWorld creates an empty world.
func NewWorld(cfg WorldConfig) *World {
	return &World{
		width:     cfg.Width,
		height:    cfg.Height,
		fireRange: cfg.FireRange,
		index:     make(map[EntityID]*Entity),
		handles:   newHandlePool(),
		rng:       rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Width returns the world width in world units.
func (w *World) Width() float64 { return w.width }

// Height returns the world height in world units.
func (w *World) Height() float64 { return w.height }

// Tick returns the number of completed ticks.
func (w *World) Tick() uint64 { return w.tick }

// Len returns the number of entities, dead ones awaiting removal included.
func (w *World) Len() int { return len(w.entities) }

// Entities returns the entity collection in order. The slice is a copy;
// the entities are not.
func (w *World) Entities() []*Entity {
	out := make([]*Entity, len(w.entities))
	copy(out, w.entities)
	return out
}

// Entity resolves a handle. Stale handles resolve to nothing.
func (w *World) Entity(id EntityID) (*Entity, bool) {
	if !w.handles.alive(id) {
		return nil, false
	}
	e, ok := w.index[id]
	return e, ok
}

// Player returns the player entity if one was spawned.
func (w *World) Player() (*Entity, bool) {
	if len(w.entities) == 0 || !w.entities[0].IsPlayer() {
		return nil, false
	}
	return w.entities[0], true
}

// CountAlive counts living entities of a kind.
func (w *World) CountAlive(kind Kind) int {
	n := 0
	for _, e := range w.entities {
		if e.Kind == kind && e.Alive {
			n++
		}
	}
	return n
}

// InBounds reports whether p lies inside [0,width]x[0,height].
func (w *World) InBounds(p core.Vector2) bool {
	return p.X >= 0 && p.X <= w.width && p.Y >= 0 && p.Y <= w.height
}

// Spawn validates spec and adds the entity. A player spec goes to the
// front of the collection; anything else is appended.
func (w *World) Spawn(spec SpawnSpec) (EntityID, error) {
	if err := spec.Validate(); err != nil {
		return NoEntity, err
	}
	if spec.Player {
		if _, ok := w.Player(); ok {
			return NoEntity, fmt.Errorf("sim: spawn %q: %w", spec.Name, ErrPlayerExists)
		}
	}

	e := newEntity(w.handles.create(), spec)
	w.index[e.ID] = e
	if e.IsPlayer() {
		w.entities = append([]*Entity{e}, w.entities...)
	} else {
		w.entities = append(w.entities, e)
	}
	return e.ID, nil
}

// add appends an entity built inside the simulation (projectiles).
func (w *World) add(e *Entity) {
	e.ID = w.handles.create()
	w.index[e.ID] = e
	w.entities = append(w.entities, e)
}

// Step advances the world by one tick: apply input to the player, tick
// every entity in collection order, then prune what finished dying.
//
// An error means the simulation reached a state it cannot continue from
// (a degenerate vector escaped a guard); it is not recoverable.
func (w *World) Step(ctx TickContext) (TickEvents, error) {
	w.tick++
	w.events = TickEvents{Tick: w.tick}

	w.applyInput(ctx)

	for i := 0; i < len(w.entities); i++ {
		if err := w.stepEntity(w.entities[i], ctx.Now); err != nil {
			return w.events, err
		}
	}

	w.compact()
	return w.events, nil
}

func (w *World) applyInput(ctx TickContext) {
	p, ok := w.Player()
	if !ok || !p.Alive {
		return
	}
	in := ctx.Input
	p.steer(in)
	if in.Target != nil {
		p.command(*in.Target)
	}
	if in.Fire {
		p.attack(w, ctx.Now)
	}
}

func (w *World) stepEntity(e *Entity, now time.Time) error {
	if !e.Alive {
		e.die(w.tick) // second visit: schedule removal
		return nil
	}

	switch e.Kind {
	case KindProjectile:
		return w.stepProjectile(e)
	case KindAI:
		if err := e.stepMotion(w.rng); err != nil {
			return err
		}
		w.aiAttack(e, now)
	case KindPlayer:
		return e.stepMotion(w.rng)
	}
	return nil
}

// aiAttack turns an AI unit toward a living player in range and fires.
func (w *World) aiAttack(e *Entity, now time.Time) {
	if w.fireRange <= 0 || len(e.Weapons) == 0 {
		return
	}
	p, ok := w.Player()
	if !ok || !p.Alive {
		return
	}
	aim := p.Position.Sub(e.Position)
	if aim.IsZero() || aim.Len() > w.fireRange {
		return
	}
	if angle, err := core.FacingAngle(aim); err == nil {
		e.Angle = angle
	}
	e.attack(w, now)
}

// compact drops entities flagged for removal, keeping order. The player
// slot is never removed.
func (w *World) compact() {
	n := len(w.entities)
	kept := w.entities[:0]
	for _, e := range w.entities {
		if e.removing && !e.IsPlayer() {
			delete(w.index, e.ID)
			w.handles.release(e.ID)
			w.events.Removed++
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < n; i++ {
		w.entities[i] = nil
	}
	w.entities = kept
}
