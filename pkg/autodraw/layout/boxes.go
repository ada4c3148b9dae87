package layout

import (
	"github.com/askiada/go-autodraw/pkg/autodraw/model"
	"github.com/askiada/go-autodraw/pkg/autodraw/rules"
)

// workflowBoxes stacks one box per step downwards from the box origin. Each box frames the
// lines its step selects. The active step only changes the box style.
func (p *Projector) workflowBoxes(
	cfg model.WorkflowConfig,
	progress model.Progress,
	record model.GeometryRecord,
) []DrawCommand {
	var cmds []DrawCommand

	top := p.boxOrigin

	for i, step := range cfg.Steps {
		active := i == progress.CurrentStep

		box := Rect{
			Min:   Point{X: top.X, Y: top.Y - p.boxSize},
			Max:   Point{X: top.X + p.boxSize, Y: top.Y},
			Class: ClassBox,
		}
		if active {
			box.Class = ClassBoxActive
			box.StrokeWeight = activeStrokeWidth
		}

		cmds = append(cmds, box, Text{
			Position: top.Add(boxTitleOffset),
			Height:   boxTitleHeight,
			Content:  stepTitle(i, step),
			Class:    ClassLabel,
			Active:   active,
		})

		for _, item := range rules.Select(record.Geometry, step.Show) {
			line, ok := item.Shape.(model.Line)
			if !ok || item.Type != model.TypeGeoLine {
				continue
			}

			cmds = append(cmds, Line{
				Start: p.place(line.Start, top),
				End:   p.place(line.End, top),
				Layer: item.ADLayer,
			})
		}

		top.Y -= p.boxSize + boxGap
	}

	return cmds
}

// place applies the local geometry offset, then moves the point into the box frame.
func (p *Projector) place(v model.Vector, boxTop Point) Point {
	local := Point{X: v.X(), Y: v.Y()}.Add(p.geometryOffset)

	return local.Add(boxTop)
}
