package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/askiada/go-autodraw/internal/config"
)

func drawCmd(cfg *config.Config) *cobra.Command {
	var svg, dot string

	cmd := &cobra.Command{
		Use:   "draw <project-id>",
		Short: "Start a project and render its state once",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseProjectID(args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("svg") {
				cfg.Output.SVG = svg
			}

			if cmd.Flags().Changed("dot") {
				cfg.Output.DOT = dot
			}

			a, err := newApp(cfg, slog.Default(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer a.close()

			ctx := cmd.Context()

			if err := a.login(ctx); err != nil {
				return err
			}

			state, err := a.sync.StartProject(ctx, projectID)
			if err != nil {
				return err
			}

			return a.render(ctx, state)
		},
	}
	cmd.Flags().StringVar(&svg, "svg", "", "SVG output file, empty to disable")
	cmd.Flags().StringVar(&dot, "dot", "", "DOT output file for the workflow graph")

	return cmd
}
