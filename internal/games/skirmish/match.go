package skirmish

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/segmentio/ksuid"

	"github.com/vovakirdan/skirmish/internal/config"
	"github.com/vovakirdan/skirmish/internal/core"
	"github.com/vovakirdan/skirmish/internal/sim"
)

// spawnAttempts bounds the rerolls for a random spawn point that keeps its
// distance from the player.
const spawnAttempts = 20

// Match is one round of skirmish: a world, the wave schedule and the score.
// It is independent of the terminal so the headless runner can drive it.
type Match struct {
	// ID is unique per match and not derived from the seed, so replays of
	// one seed get different IDs.
	ID ksuid.KSUID

	cfg        config.SkirmishConfig
	world      *sim.World
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	logger     *log.Logger

	wave  int
	score int
	over  bool
	won   bool
}

// NewMatch validates cfg, spawns the player and the first wave.
func NewMatch(cfg config.SkirmishConfig, seed int64, logger *log.Logger) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if logger == nil {
		logger = log.New(io.Discard)
	}
	id := ksuid.New()

	m := &Match{
		ID:         id,
		cfg:        cfg,
		world:      BuildWorld(cfg, seed),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		// Offset so wave placement does not replay the world's wander rolls.
		rng:    rand.New(rand.NewSource(seed + 1)),
		logger: logger.With("match", id.String()),
	}

	if _, err := m.world.Spawn(m.playerSpec()); err != nil {
		return nil, fmt.Errorf("skirmish: player: %w", err)
	}
	m.logger.Debug("match start", "seed", seed, "world", fmt.Sprintf("%gx%g", cfg.World.Width, cfg.World.Height))
	m.nextWave()
	return m, nil
}

// BuildWorld creates the empty world described by cfg.
func BuildWorld(cfg config.SkirmishConfig, seed int64) *sim.World {
	return sim.NewWorld(sim.WorldConfig{
		Width:     cfg.World.Width,
		Height:    cfg.World.Height,
		Seed:      seed,
		FireRange: cfg.AI.FireRange,
	})
}

// World returns the simulated world.
func (m *Match) World() *sim.World { return m.world }

// Wave returns the current wave number, starting at 1.
func (m *Match) Wave() int { return m.wave }

// Score returns the number of AI units destroyed.
func (m *Match) Score() int { return m.score }

// Over reports whether the match has ended.
func (m *Match) Over() bool { return m.over }

// Won reports whether the match ended by clearing the last wave.
func (m *Match) Won() bool { return m.won }

// Step advances the world one tick and applies the match rules.
func (m *Match) Step(ctx sim.TickContext) (sim.TickEvents, error) {
	ev, err := m.world.Step(ctx)
	if err != nil {
		return ev, err
	}
	m.Observe(ev)
	return ev, nil
}

// Observe applies the match rules to the events of a tick that has already
// been stepped. Reports whether the match is over.
func (m *Match) Observe(ev sim.TickEvents) bool {
	if m.over {
		return true
	}

	if ev.Kills > 0 {
		m.score += ev.Kills
		m.logger.Debug("kills", "tick", ev.Tick, "kills", ev.Kills, "score", m.score)
	}

	if ev.PlayerDied {
		m.over = true
		m.logger.Info("player destroyed", "tick", ev.Tick, "wave", m.wave, "score", m.score)
		return true
	}

	// per_wave 0 is a sandbox: no waves, the match only ends with the player
	if m.cfg.Enemies.PerWave > 0 && m.world.CountAlive(sim.KindAI) == 0 {
		if last := m.cfg.Enemies.MaxWave; last > 0 && m.wave >= last {
			m.over, m.won = true, true
			m.logger.Info("all waves cleared", "tick", ev.Tick, "score", m.score)
			return true
		}
		m.nextWave()
	}
	return false
}

// nextWave spawns the next wave with difficulty-scaled stats. Spawns the
// world rejects are logged and skipped.
func (m *Match) nextWave() {
	m.wave++
	d, unit := m.difficulty, m.cfg.Enemies.Unit

	count := d.Count(m.cfg.Enemies.PerWave, m.score, m.wave)
	weapons := loadout(m.cfg.Weapons.Enemy, m.cfg.Projectile.Size,
		d.Cooldown(cooldown(m.cfg.Weapons.Enemy), m.score, m.wave))

	spawned := 0
	for i := 0; i < count; i++ {
		spec := sim.SpawnSpec{
			Name:     fmt.Sprintf("%s-%d.%d", unit.Name, m.wave, i+1),
			Position: m.spawnPoint(i),
			Width:    unit.Width,
			Height:   unit.Height,
			Angle:    180, // facing down
			Health:   d.Health(unit.Health, m.score, m.wave),
			Speed:    d.Speed(unit.Speed, m.score, m.wave),
			Sprite:   unit.Sprite,
			Weapons:  weapons,
		}
		if _, err := m.world.Spawn(spec); err != nil {
			m.logger.Warn("spawn rejected", "name", spec.Name, "err", err)
			continue
		}
		spawned++
	}

	m.logger.Info("wave start", "wave", m.wave, "units", spawned, "level", fmt.Sprintf("%.2f", d.Level(m.score, m.wave)))
	if spawned == 0 && count > 0 {
		// Nothing can ever be killed; end instead of retrying every tick.
		m.over = true
		m.logger.Error("wave has no valid units, ending match", "wave", m.wave)
	}
}

// spawnPoint picks the position of the i-th unit of a wave: the configured
// points in rotation, or a random point inside the margin that keeps
// MinGap from the player when possible.
func (m *Match) spawnPoint(i int) core.Vector2 {
	if pts := m.cfg.Enemies.Spawns; len(pts) > 0 {
		p := pts[i%len(pts)]
		return core.Vec(p.X, p.Y)
	}

	margin := m.cfg.Enemies.Margin
	w, h := m.cfg.World.Width-2*margin, m.cfg.World.Height-2*margin
	var avoid *core.Vector2
	if p, ok := m.world.Player(); ok {
		avoid = &p.Position
	}

	var pos core.Vector2
	for try := 0; try < spawnAttempts; try++ {
		pos = core.Vec(margin+m.rng.Float64()*w, margin+m.rng.Float64()*h)
		if avoid == nil || pos.DistanceTo(*avoid) >= m.cfg.Enemies.MinGap {
			break
		}
	}
	return pos
}

func (m *Match) playerSpec() sim.SpawnSpec {
	p := m.cfg.Player
	start := core.Vec(p.StartX, p.StartY)
	if start.IsZero() {
		start = core.Vec(m.cfg.World.Width/2, m.cfg.World.Height/2)
	}
	return sim.SpawnSpec{
		Name:     p.Unit.Name,
		Position: start,
		Width:    p.Unit.Width,
		Height:   p.Unit.Height,
		Health:   p.Unit.Health,
		Speed:    p.Unit.Speed,
		Sprite:   p.Unit.Sprite,
		Player:   true,
		Weapons:  loadout(m.cfg.Weapons.Player, m.cfg.Projectile.Size, cooldown(m.cfg.Weapons.Player)),
	}
}

// loadout expands a weapon config into the forward/left/right spread.
func loadout(w config.WeaponConfig, size float64, cd time.Duration) []sim.WeaponSpec {
	return sim.DefaultLoadout(sim.WeaponSpec{
		Damage:          w.Damage,
		ProjectileSpeed: w.ProjectileSpeed,
		Cooldown:        cd,
		ProjectileSize:  size,
		Sprite:          w.Sprite,
	}, w.Spread, w.Lateral)
}

func cooldown(w config.WeaponConfig) time.Duration {
	return time.Duration(w.CooldownMS) * time.Millisecond
}
