package sim

// Hit records one projectile impact.
type Hit struct {
	Projectile EntityID
	Shooter    EntityID
	Target     EntityID
	TargetKind Kind
	Damage     int
	Killed     bool
}

// stepProjectile flies the projectile, then resolves at most one impact.
func (w *World) stepProjectile(p *Entity) error {
	p.Velocity = p.Direction.Scale(p.MaxSpeed)
	if err := p.integrate(); err != nil {
		return err
	}

	if !w.InBounds(p.Position) {
		p.die(w.tick)
		return nil
	}

	// The collection may have grown during this tick; index it live.
	for i := 0; i < len(w.entities); i++ {
		t := w.entities[i]
		if !canHit(p, t) || !p.Overlaps(t) {
			continue
		}

		killed := t.takeDamage(p.Damage, w.tick)
		p.die(w.tick)
		w.recordHit(Hit{
			Projectile: p.ID,
			Shooter:    p.Owner,
			Target:     t.ID,
			TargetKind: t.Kind,
			Damage:     p.Damage,
			Killed:     killed,
		})
		return nil // first match in collection order wins
	}
	return nil
}

// canHit filters impact candidates: never the projectile itself or its
// shooter, never something already dead, and never another projectile.
func canHit(p, t *Entity) bool {
	switch {
	case t == p, t.ID == p.Owner:
		return false
	case !t.Alive:
		return false
	case t.Kind == KindProjectile:
		return false
	}
	return true
}

func (w *World) recordHit(h Hit) {
	w.events.Hits = append(w.events.Hits, h)
	if !h.Killed {
		return
	}
	switch h.TargetKind {
	case KindAI:
		w.events.Kills++
	case KindPlayer:
		w.events.PlayerDied = true
	}
}
