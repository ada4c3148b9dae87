// Package layout projects a project state into an ordered list of draw commands.
//
// The projection is a pure function of the state: the same state always yields the same
// commands in the same order. It writes a status board listing the steps, a column of
// workflow boxes holding the geometry each step selects, and optionally a row of debug
// boxes dumping the raw state. Items that cannot be drawn are reported as warnings and
// never abort the projection.
package layout

import (
	"log/slog"

	"github.com/askiada/go-autodraw/pkg/autodraw/model"
)

// Result is the outcome of a projection.
type Result struct {
	Commands []DrawCommand
	Warnings []Warning
}

// Projector holds the layout parameters. It keeps no state between calls and is safe for
// concurrent use.
type Projector struct {
	statusOrigin   Point
	boxOrigin      Point
	boxSize        float64
	geometryOffset Point
	debugDump      bool
	debugOrigin    Point
	measurer       TextMeasurer
	logger         *slog.Logger
}

// New creates a projector with the default layout.
func New(opts ...Option) *Projector {
	p := &Projector{
		statusOrigin:   DefaultStatusOrigin,
		boxOrigin:      DefaultBoxOrigin,
		boxSize:        DefaultBoxSize,
		geometryOffset: DefaultGeometryOffset,
		debugDump:      true,
		debugOrigin:    DefaultDebugOrigin,
		measurer:       DefaultMeasurer,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.New(slog.DiscardHandler)
	}

	return p
}

// Project projects state with the default layout.
func Project(state model.ProjectState) Result {
	return New().Project(state)
}

// Project emits the status board, then the debug boxes, then the workflow boxes.
func (p *Projector) Project(state model.ProjectState) Result {
	warnings := inspect(state.Record.Geometry)
	for _, w := range warnings {
		p.logger.Debug("geometry item reported", "project_id", state.ProjectID, "kind", w.Kind, "item", w.ItemID,
			"index", w.Index)
	}

	var cmds []DrawCommand

	cmds = append(cmds, p.statusBoard(state.Config, state.Progress)...)

	if p.debugDump {
		cmds = append(cmds, p.debugRow(state)...)
	}

	cmds = append(cmds, p.workflowBoxes(state.Config, state.Progress, state.Record)...)

	return Result{Commands: cmds, Warnings: warnings}
}
