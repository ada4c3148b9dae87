package main

import (
	"context"
	"io"
	"log/slog"
	"strconv"

	"github.com/pkg/errors"

	"github.com/askiada/go-autodraw/internal/config"
	"github.com/askiada/go-autodraw/internal/logging"
	"github.com/askiada/go-autodraw/pkg/autodraw"
	"github.com/askiada/go-autodraw/pkg/autodraw/api"
	"github.com/askiada/go-autodraw/pkg/autodraw/auth"
	"github.com/askiada/go-autodraw/pkg/autodraw/drawer"
	"github.com/askiada/go-autodraw/pkg/autodraw/layout"
	"github.com/askiada/go-autodraw/pkg/autodraw/measure"
	"github.com/askiada/go-autodraw/pkg/autodraw/model"
)

// app wires the collaborators of one command run.
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	auth      *auth.Service
	sync      *autodraw.Synchronizer
	measure   *measure.DefaultMeasure
	projector *layout.Projector
	drawer    drawer.Drawer
	graph     *drawer.WorkflowGraph
}

func newApp(cfg *config.Config, logger *slog.Logger, out io.Writer) (*app, error) {
	palette, err := drawer.ParsePalette(cfg.Palette)
	if err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	client := api.New(cfg.API.BaseURL, api.WithTimeout(cfg.API.Timeout), api.WithLogger(logger))
	authSvc := auth.NewService(client, logger)
	msr := measure.NewDefaultMeasure()

	syncer, err := autodraw.New(client, authSvc,
		autodraw.WithFetchTimeout(cfg.API.Timeout),
		autodraw.WithMeasure(msr),
		autodraw.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	var drawers []drawer.Drawer
	if cfg.Output.SVG != "" {
		drawers = append(drawers, drawer.NewSVGDrawer(cfg.Output.SVG, drawer.SVGPalette(palette)))
	}

	if cfg.Output.Terminal {
		drawers = append(drawers, drawer.NewTerminalDrawer(out,
			drawer.TerminalPalette(palette),
			drawer.TerminalDebug(level <= slog.LevelDebug),
		))
	}

	a := &app{
		cfg:       cfg,
		logger:    logger,
		auth:      authSvc,
		sync:      syncer,
		measure:   msr,
		projector: layout.New(layout.WithDebugDump(cfg.Output.DebugDump), layout.WithLogger(logger)),
		drawer:    drawer.NewMultiDrawer(drawers...),
	}

	if cfg.Output.DOT != "" {
		a.graph = drawer.NewWorkflowGraph(cfg.Output.DOT, palette)
	}

	return a, nil
}

func (a *app) login(ctx context.Context) error {
	session, err := a.auth.Login(ctx, a.cfg.Auth.Username, a.cfg.Auth.Password)
	if err != nil {
		return errors.Wrap(err, "unable to log in")
	}

	if !session.Verified {
		a.logger.Warn("account is not verified", "user", session.CurrentUser)
	}

	return nil
}

// render projects state and hands the commands to every configured output.
func (a *app) render(ctx context.Context, state model.ProjectState) error {
	res := a.projector.Project(state)
	for _, w := range res.Warnings {
		a.logger.Warn("geometry item skipped", "project_id", state.ProjectID, "kind", w.Kind, "detail", w.String())
	}

	err := a.drawer.Draw(ctx, res.Commands)
	if err != nil {
		return err
	}

	if a.graph != nil {
		err = a.graph.Export(state)
		if err != nil {
			return errors.Wrap(err, "unable to export workflow graph")
		}
	}

	return nil
}

func (a *app) close() {
	for _, name := range a.measure.Names() {
		mt := a.measure.GetMetric(name)
		a.logger.Info("fetch metrics",
			"operation", name,
			"total", mt.Total(),
			"failures", mt.Failures(),
			"avg", mt.AVGDuration(),
			"last", mt.LastDuration(),
		)
	}

	a.sync.Release()
	a.auth.Logout()
}

func parseProjectID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, errors.Errorf("project id must be a positive integer, got %q", arg)
	}

	return id, nil
}
