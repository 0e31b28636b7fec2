package sim

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// InputProvider delivers the input snapshot for the next tick.
type InputProvider interface {
	Poll() Input
}

// InputFunc adapts a function to InputProvider.
type InputFunc func() Input

// Poll calls f.
func (f InputFunc) Poll() Input { return f() }

// Renderer consumes the render snapshot after each tick.
type Renderer interface {
	Render(Frame)
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(Frame)

// Render calls f.
func (f RenderFunc) Render(fr Frame) { f(fr) }

// LoopConfig configures a Loop.
type LoopConfig struct {
	TickRate int // ticks per second, 60 when zero
	Clock    Clock
	Logger   *log.Logger

	// MaxTicks stops Run after that many ticks; zero runs until the
	// context ends or Done says so.
	MaxTicks int

	// Done is checked after every tick; returning true stops Run.
	Done func(TickEvents) bool

	// Unpaced runs ticks back to back instead of on the ticker. Motion is
	// per tick, so the outcome is the same, only faster.
	Unpaced bool
}

// Loop is the fixed-rate driver: poll input, step the world, render.
// A slow frame just makes the game run slower; there is no catch-up.
type Loop struct {
	world    *World
	input    InputProvider
	renderer Renderer
	cfg      LoopConfig
	interval time.Duration
	ticks    int
}

// NewLoop creates a loop over world.
func NewLoop(world *World, input InputProvider, renderer Renderer, cfg LoopConfig) *Loop {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if cfg.Clock == nil {
		cfg.Clock = SystemClock{}
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if input == nil {
		input = InputFunc(func() Input { return Input{} })
	}
	if renderer == nil {
		renderer = RenderFunc(func(Frame) {})
	}
	return &Loop{
		world:    world,
		input:    input,
		renderer: renderer,
		cfg:      cfg,
		interval: time.Second / time.Duration(cfg.TickRate),
	}
}

// Ticks returns how many frames ran.
func (l *Loop) Ticks() int { return l.ticks }

// Interval returns the tick budget.
func (l *Loop) Interval() time.Duration { return l.interval }

// RunFrame runs one poll, step, render cycle.
func (l *Loop) RunFrame() (TickEvents, error) {
	started := time.Now()

	in := l.input.Poll()
	events, err := l.world.Step(TickContext{Now: l.cfg.Clock.Now(), Input: in})
	if err != nil {
		l.cfg.Logger.Error("simulation fault", "tick", events.Tick, "err", err)
		return events, err
	}
	l.renderer.Render(l.world.Snapshot())
	l.ticks++

	if adv, ok := l.cfg.Clock.(interface{ Advance(time.Duration) }); ok {
		adv.Advance(l.interval)
	}

	if elapsed := time.Since(started); !l.cfg.Unpaced && elapsed > l.interval {
		l.cfg.Logger.Debug("frame over budget", "tick", events.Tick, "elapsed", elapsed, "budget", l.interval)
	}
	return events, nil
}

// Run drives frames until the context is cancelled, MaxTicks is reached
// or Done returns true. Cancellation returns ctx.Err().
func (l *Loop) Run(ctx context.Context) error {
	l.cfg.Logger.Debug("loop start", "tick_rate", l.cfg.TickRate, "unpaced", l.cfg.Unpaced)

	var tick <-chan time.Time
	if !l.cfg.Unpaced {
		ticker := time.NewTicker(l.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		events, err := l.RunFrame()
		if err != nil {
			return err
		}
		// Done sees every tick, including the one that reaches MaxTicks.
		done := l.cfg.Done != nil && l.cfg.Done(events)
		if done || (l.cfg.MaxTicks > 0 && l.ticks >= l.cfg.MaxTicks) {
			return nil
		}
	}
}
