package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skirmish/internal/config"
	"github.com/vovakirdan/skirmish/internal/games/skirmish"
)

var (
	flagSimTicks    int
	flagSimPaced    bool
	flagSimRetarget int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless match",
	Long: `Run a match without a terminal UI. The player is flown by an autopilot
that fires every tick and clicks a random destination every --retarget
ticks. With the same seed and config the ticks, waves, score and outcome
are always the same; the match ID is new on every run.

Examples:
  skirmish sim --seed 42
  skirmish sim --seed 42 --ticks 3600 --retarget 120
  skirmish sim --paced --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 60*60, "Stop after this many ticks (0 = until the match ends)")
	simCmd.Flags().BoolVar(&flagSimPaced, "paced", false, "Run at --fps instead of as fast as possible")
	simCmd.Flags().IntVar(&flagSimRetarget, "retarget", 90, "Ticks between autopilot destination clicks (0 = never)")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a custom config (YAML or TOML)")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runSim(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, source, err := config.ResolveSkirmish(flagConfig)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		preset, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return err
		}
		config.ApplySkirmishPreset(&cfg, preset)
	}
	logger.Debug("config loaded", "source", source)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	sum, err := skirmish.RunHeadless(ctx, cfg, skirmish.HeadlessOptions{
		Seed:     seed,
		TickRate: flagFPS,
		MaxTicks: flagSimTicks,
		Paced:    flagSimPaced,
		Retarget: flagSimRetarget,
		Logger:   logger,
	})
	if err != nil && !interrupted(err) {
		return err
	}

	outcome := "running"
	switch {
	case sum.Won:
		outcome = "won"
	case sum.Over:
		outcome = "lost"
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "match    %s\n", sum.MatchID)
	fmt.Fprintf(out, "seed     %d\n", seed)
	fmt.Fprintf(out, "ticks    %d\n", sum.Ticks)
	fmt.Fprintf(out, "wave     %d\n", sum.Wave)
	fmt.Fprintf(out, "score    %d\n", sum.Score)
	fmt.Fprintf(out, "shots    %d\n", sum.Shots)
	fmt.Fprintf(out, "outcome  %s\n", outcome)
	return nil
}

// interrupted reports whether err only means the run was stopped early.
// The summary so far is still printed.
func interrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
