package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay a traced search in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup(cmd)
		if err != nil {
			return err
		}
		delay, _ := cmd.Flags().GetDuration("delay")
		if delay <= 0 {
			return fmt.Errorf("--delay must be positive, got %s", delay)
		}

		logger := a.logger.With("run_id", uuid.NewString(), "query", "trace")
		planner := NewPlanner(a.grid, a.cfg, nil, a.logger)

		report, err := planner.Trace(cmd.Context(), logger)
		if err != nil {
			return err
		}

		screen, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		if err := screen.Init(); err != nil {
			return err
		}
		defer screen.Fini()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		err = RunReplay(ctx, screen, NewReplay(a.grid, report.Events, report.Result.Path), delay)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().Duration("delay", 80*time.Millisecond, "Delay between replayed events")
}
