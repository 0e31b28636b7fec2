// Package skirmish implements a top-down arena shooter.
// The player steers a unit with the keyboard or by clicking a destination,
// and fires a three-gun spread at waves of wandering AI units that shoot
// back when the player comes close.
package skirmish

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skirmish/internal/config"
	"github.com/vovakirdan/skirmish/internal/core"
	"github.com/vovakirdan/skirmish/internal/registry"
	"github.com/vovakirdan/skirmish/internal/sim"
)

// epoch is where the virtual match clock starts. Cooldowns are measured on
// it, so a replay with the same seed and inputs fires on the same ticks.
var epoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// Game adapts a Match to the platform: input mapping, pause/restart and
// rendering onto the cell screen.
type Game struct {
	cfg    config.SkirmishConfig
	logger *log.Logger

	runtime core.RuntimeConfig
	match   *Match
	clock   *sim.ManualClock
	tick    time.Duration
	view    core.Viewport
	colors  map[string]core.Color

	paused bool
	err    error
}

// New creates a game from cfg. A nil logger discards.
func New(cfg config.SkirmishConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := &Game{cfg: cfg, logger: logger}
	g.colors = spriteColors(cfg, logger)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "skirmish"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Skirmish"
}

// Match returns the current match, nil before Reset or after a failed one.
func (g *Game) Match() *Match {
	return g.match
}

// Err returns the fault that stopped the game, if any.
func (g *Game) Err() error {
	return g.err
}

// Reset starts a new match.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}
	g.runtime = cfg
	g.paused = false
	g.err = nil
	g.clock = sim.NewManualClock(epoch)
	g.tick = time.Second / time.Duration(cfg.TickRate)
	g.view = viewport(g.cfg, cfg.ScreenW, cfg.ScreenH)

	m, err := NewMatch(g.cfg, cfg.Seed, g.logger)
	if err != nil {
		g.match = nil
		g.err = err
		g.logger.Error("match setup failed", "err", err)
		return
	}
	g.match = m
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.err != nil {
		return core.StepResult{State: g.State(), Err: g.err}
	}
	if g.match == nil {
		return core.StepResult{State: g.State()}
	}
	if g.match.Over() {
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		}
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	_, err := g.match.Step(sim.TickContext{
		Now:   g.clock.Now(),
		Input: g.simInput(in),
	})
	g.clock.Advance(g.tick)
	if err != nil {
		g.err = err
		g.logger.Error("simulation fault", "tick", g.match.World().Tick(), "err", err)
		return core.StepResult{State: g.State(), Err: err}
	}
	return core.StepResult{State: g.State()}
}

// simInput maps platform actions to the player input of one tick. A click
// inside the field becomes a commanded point; clicks elsewhere are ignored.
func (g *Game) simInput(in core.InputFrame) sim.Input {
	si := sim.Input{
		Up:    in.Has(core.ActionUp),
		Left:  in.Has(core.ActionLeft),
		Down:  in.Has(core.ActionDown),
		Right: in.Has(core.ActionRight),
		Fire:  in.Has(core.ActionFire),
	}
	if p := in.Pointer; p != nil && g.view.Area.Contains(p.X, p.Y) {
		target := g.view.ToWorld(p.X, p.Y)
		si.Target = &target
	}
	return si
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.match == nil {
		return core.GameState{GameOver: true}
	}
	return core.GameState{
		Score:    g.match.Score(),
		GameOver: g.match.Over() || g.err != nil,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("skirmish", "Skirmish", func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadSkirmish(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		if opts.Difficulty != "" {
			preset, err := config.ParseDifficulty(opts.Difficulty)
			if err != nil {
				return nil, err
			}
			config.ApplySkirmishPreset(&cfg, preset)
		}
		return New(cfg, opts.Logger), nil
	})
}
