package skirmish

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skirmish/internal/config"
	"github.com/vovakirdan/skirmish/internal/core"
	"github.com/vovakirdan/skirmish/internal/sim"
)

// progressEvery is how often, in ticks, a headless run logs its progress.
const progressEvery = 600

// HeadlessOptions configure RunHeadless.
type HeadlessOptions struct {
	Seed     int64
	TickRate int // 60 when zero
	MaxTicks int // zero runs until the match is over

	// Paced runs on the wall clock ticker instead of as fast as possible.
	Paced bool

	// Retarget is how often the autopilot clicks a new destination, in
	// ticks. Zero keeps the player on the keyboard pattern only.
	Retarget int

	Logger *log.Logger
}

// Summary is the outcome of a headless match.
type Summary struct {
	MatchID string
	Ticks   int
	Wave    int
	Score   int
	Shots   int
	Over    bool
	Won     bool
}

// Autopilot scripts the player for headless runs: it fires every tick and
// clicks a random point in the world every Retarget ticks.
type Autopilot struct {
	width, height float64
	retarget      int
	rng           *rand.Rand
	tick          int
}

// NewAutopilot creates an autopilot for a world of the given size.
func NewAutopilot(width, height float64, retarget int, seed int64) *Autopilot {
	return &Autopilot{
		width:    width,
		height:   height,
		retarget: retarget,
		rng:      rand.New(rand.NewSource(seed + 2)),
	}
}

// Poll returns the input for the next tick.
func (a *Autopilot) Poll() sim.Input {
	in := sim.Input{Fire: true}
	if a.retarget > 0 && a.tick%a.retarget == 0 {
		p := core.Vec(a.rng.Float64()*a.width, a.rng.Float64()*a.height)
		in.Target = &p
	}
	a.tick++
	return in
}

// RunHeadless plays a match without a terminal on sim.Loop, using a virtual
// clock so a seed always replays the same way. A cancelled context returns
// the summary so far together with ctx.Err().
func RunHeadless(ctx context.Context, cfg config.SkirmishConfig, opts HeadlessOptions) (Summary, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	match, err := NewMatch(cfg, opts.Seed, opts.Logger)
	if err != nil {
		return Summary{}, err
	}

	shots := 0
	loop := sim.NewLoop(
		match.World(),
		NewAutopilot(cfg.World.Width, cfg.World.Height, opts.Retarget, opts.Seed),
		nil,
		sim.LoopConfig{
			TickRate: opts.TickRate,
			Clock:    sim.NewManualClock(epoch),
			Logger:   opts.Logger,
			MaxTicks: opts.MaxTicks,
			Unpaced:  !opts.Paced,
			Done: func(ev sim.TickEvents) bool {
				shots += ev.Shots
				if ev.Tick%progressEvery == 0 {
					opts.Logger.Debug("progress", "tick", ev.Tick, "wave", match.Wave(), "score", match.Score(), "entities", match.World().Len())
				}
				return match.Observe(ev)
			},
		},
	)

	start := time.Now()
	runErr := loop.Run(ctx)

	sum := Summary{
		MatchID: match.ID.String(),
		Ticks:   loop.Ticks(),
		Wave:    match.Wave(),
		Score:   match.Score(),
		Shots:   shots,
		Over:    match.Over(),
		Won:     match.Won(),
	}
	opts.Logger.Info("headless match finished",
		"match", sum.MatchID,
		"ticks", sum.Ticks,
		"wave", sum.Wave,
		"score", sum.Score,
		"won", sum.Won,
		"elapsed", time.Since(start))

	if runErr != nil && !errors.Is(runErr, context.Canceled) && !errors.Is(runErr, context.DeadlineExceeded) {
		opts.Logger.Error("headless match fault", "match", sum.MatchID, "err", runErr)
	}
	return sum, runErr
}
