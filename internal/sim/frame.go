package sim

import "github.com/vovakirdan/skirmish/internal/core"

// Pose is what a renderer needs to draw one entity.
type Pose struct {
	ID       EntityID
	Kind     Kind
	Name     string
	Sprite   string
	Position core.Vector2
	Angle    float64
	Width    float64
	Height   float64
	Health   int
	Alive    bool // false during the grace tick before removal
}

// Frame is the render snapshot of one tick, in collection order.
type Frame struct {
	Tick          uint64
	Width, Height float64
	Poses         []Pose
}

// Snapshot captures the renderable entities of the current tick.
func (w *World) Snapshot() Frame {
	f := Frame{
		Tick:   w.tick,
		Width:  w.width,
		Height: w.height,
		Poses:  make([]Pose, 0, len(w.entities)),
	}
	for _, e := range w.entities {
		if !e.Renderable {
			continue
		}
		f.Poses = append(f.Poses, Pose{
			ID:       e.ID,
			Kind:     e.Kind,
			Name:     e.Name,
			Sprite:   e.Sprite,
			Position: e.Position,
			Angle:    e.Angle,
			Width:    e.Width,
			Height:   e.Height,
			Health:   e.Health,
			Alive:    e.Alive,
		})
	}
	return f
}
