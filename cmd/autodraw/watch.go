package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/askiada/go-autodraw/internal/config"
	"github.com/askiada/go-autodraw/pkg/autodraw"
)

func watchCmd(cfg *config.Config) *cobra.Command {
	var (
		interval      time.Duration
		untilComplete bool
	)

	cmd := &cobra.Command{
		Use:   "watch <project-id>",
		Short: "Start a project, then continue it periodically and re-render on every change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseProjectID(args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("interval") {
				cfg.Watch.Interval = interval
			}

			if cmd.Flags().Changed("until-complete") {
				cfg.Watch.UntilComplete = untilComplete
			}

			if cfg.Watch.Interval <= 0 {
				return errors.Errorf("interval must be positive, got %s", cfg.Watch.Interval)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := newApp(cfg, slog.Default(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.login(ctx); err != nil {
				return err
			}

			return a.watch(ctx, projectID)
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", 0, "Delay between continue fetches")
	cmd.Flags().BoolVar(&untilComplete, "until-complete", false, "Stop once the project reports completion")

	return cmd
}

// watch starts projectID then continues it every interval. A failed continue is logged and
// the previous state stays rendered. It returns when ctx is done, on a non recoverable
// error, or on completion when requested.
func (a *app) watch(ctx context.Context, projectID int) error {
	state, err := a.sync.StartProject(ctx, projectID)
	if err != nil {
		return err
	}

	if err := a.render(ctx, state); err != nil {
		return err
	}

	ticker := time.NewTicker(a.cfg.Watch.Interval)
	defer ticker.Stop()

	for {
		if a.cfg.Watch.UntilComplete && state.Progress.IsComplete {
			a.logger.Info("project complete", "project_id", projectID)
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		next, err := a.sync.ContinueProject(ctx, projectID)
		switch {
		case err == nil:
		case errors.Is(err, autodraw.ErrNotAuthenticated), errors.Is(err, autodraw.ErrNoActiveProject):
			return err
		case ctx.Err() != nil:
			return nil
		default:
			a.logger.Warn("continue failed, keeping previous state", "project_id", projectID, "error", err)
			continue
		}

		if next.Progress != state.Progress || next.Record.CreatedAt != state.Record.CreatedAt {
			a.logger.Info("project progressed",
				"project_id", projectID,
				"current_step", next.Progress.CurrentStep,
				"current_substep", next.Progress.CurrentSubstep,
			)
		}

		state = next

		if err := a.render(ctx, state); err != nil {
			return err
		}
	}
}
