package layout

import "log/slog"

const (
	// DefaultBoxSize is the side of a workflow box.
	DefaultBoxSize = 20000.0

	headerOffset      = 2000.0
	headerHeight      = 1200.0
	stepTextHeight    = 800.0
	substepTextHeight = 500.0
	linePitch         = 1.5
	substepIndent     = 1000.0
	stepGap           = 1500.0

	boxGap            = 0.0
	boxTitleHeight    = 500.0
	activeStrokeWidth = 250.0

	debugGap          = 0.0
	debugInset        = 200.0
	debugPadding      = 400.0
	debugTitleHeight  = 400.0
	debugBodyHeight   = 200.0
	activeSubstepMark = ">> "
	substepMark       = "   "
)

var (
	// DefaultStatusOrigin is where the first step of the status board is written.
	DefaultStatusOrigin = Point{X: -15000, Y: 0}
	// DefaultBoxOrigin is the top left corner of the first workflow box.
	DefaultBoxOrigin = Point{X: 0, Y: 0}
	// DefaultGeometryOffset moves item coordinates into the box frame.
	DefaultGeometryOffset = Point{X: 2000, Y: -2000}
	// DefaultDebugOrigin is the top left corner of the first debug box.
	DefaultDebugOrigin = Point{X: -100000, Y: 0}

	boxTitleOffset = Point{X: 500, Y: -500}
)

type Option func(p *Projector)

func WithStatusOrigin(origin Point) Option {
	return func(p *Projector) {
		p.statusOrigin = origin
	}
}

func WithBoxOrigin(origin Point) Option {
	return func(p *Projector) {
		p.boxOrigin = origin
	}
}

// WithBoxSize sets the side of every workflow box. Non positive sizes are ignored.
func WithBoxSize(size float64) Option {
	return func(p *Projector) {
		if size > 0 {
			p.boxSize = size
		}
	}
}

func WithGeometryOffset(offset Point) Option {
	return func(p *Projector) {
		p.geometryOffset = offset
	}
}

// WithDebugDump turns the debug boxes on or off. They are on by default.
func WithDebugDump(enabled bool) Option {
	return func(p *Projector) {
		p.debugDump = enabled
	}
}

func WithDebugOrigin(origin Point) Option {
	return func(p *Projector) {
		p.debugOrigin = origin
	}
}

// WithTextMeasurer sets how debug box widths are resolved.
func WithTextMeasurer(measurer TextMeasurer) Option {
	return func(p *Projector) {
		if measurer != nil {
			p.measurer = measurer
		}
	}
}

// WithLogger logs every warning at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Projector) {
		p.logger = logger
	}
}
