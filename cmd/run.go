package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/app"
	"github.com/abhisek/mathdrill/internal/feedback"
	"github.com/abhisek/mathdrill/internal/problemgen"
	sessionscreen "github.com/abhisek/mathdrill/internal/screens/session"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	opts, err := startOptions(cmd)
	if err != nil {
		return err
	}

	logger, logCloser, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	defer logCloser.Close()

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	gen, seed := newGenerator(cmd, cfg.Seed)

	mute := cfg.Mute
	if cmd.Flags().Changed("mute") {
		mute, _ = cmd.Flags().GetBool("mute")
	}
	var player feedback.Player = feedback.NewBellPlayer(os.Stdout)
	if mute {
		player = feedback.Mute{}
	}

	opts.Deps = sessionscreen.Deps{
		Generator: gen,
		Player:    player,
		EventRepo: st.EventRepo(),
		Config:    cfg.Session,
		Logger:    logger,
	}

	logger.Info("starting", "seed", seed, "mute", mute, "op", opts.StartOp, "level", opts.StartLevel, "mastery", opts.Mastery)
	return app.Run(opts)
}

// newGenerator picks the problem source. An explicit --seed, zero included,
// wins over MATHDRILL_SEED; with neither the sequence is seeded from the clock.
// The returned label is for logging.
func newGenerator(cmd *cobra.Command, envSeed *uint64) (problemgen.Generator, string) {
	seed := envSeed
	if cmd.Flags().Changed("seed") {
		v, _ := cmd.Flags().GetUint64("seed")
		seed = &v
	}
	if seed == nil {
		return problemgen.NewTimeSeeded(), "time"
	}
	return problemgen.NewSeeded(*seed), strconv.FormatUint(*seed, 10)
}

// startOptions turns --op, --level and --mastery into the screens to open on.
func startOptions(cmd *cobra.Command) (app.Options, error) {
	var opts app.Options

	opName, _ := cmd.Flags().GetString("op")
	level, _ := cmd.Flags().GetInt("level")
	mastery, _ := cmd.Flags().GetBool("mastery")

	if opName == "" {
		if level != 0 || mastery {
			return opts, errors.New("--level and --mastery need --op")
		}
		return opts, nil
	}

	op, err := problemgen.ParseOperation(opName)
	if err != nil {
		return opts, err
	}
	if level != 0 {
		if _, _, err := problemgen.Bounds(level); err != nil {
			return opts, fmt.Errorf("--level: %w", err)
		}
	}

	opts.StartOp = op
	opts.StartLevel = level
	opts.Mastery = mastery
	return opts, nil
}
