package layout

import (
	"fmt"

	"github.com/askiada/go-autodraw/pkg/autodraw/model"
)

func (p *Projector) statusBoard(cfg model.WorkflowConfig, progress model.Progress) []DrawCommand {
	origin := p.statusOrigin

	cmds := []DrawCommand{Text{
		Position: Point{X: origin.X, Y: origin.Y + headerOffset},
		Height:   headerHeight,
		Content:  "Steps",
		Class:    ClassHeader,
	}}

	y := origin.Y

	for i, step := range cfg.Steps {
		class := StepClass(i, progress.CurrentStep)

		cmds = append(cmds, Text{
			Position: Point{X: origin.X, Y: y},
			Height:   stepTextHeight,
			Content:  stepTitle(i, step),
			Class:    class,
		})
		y -= stepTextHeight * linePitch

		for j, sub := range step.Substeps {
			active := class == ClassCurrent && j == progress.CurrentSubstep

			mark := substepMark
			if active {
				mark = activeSubstepMark
			}

			cmds = append(cmds, Text{
				Position: Point{X: origin.X + substepIndent, Y: y},
				Height:   substepTextHeight,
				Content:  mark + sub.Label,
				Class:    class,
				Active:   active,
			})
			y -= substepTextHeight * linePitch
		}

		y -= stepGap
	}

	return cmds
}

func stepTitle(i int, step model.StepConfig) string {
	return fmt.Sprintf("Step %d: %s", i, step.Label)
}
