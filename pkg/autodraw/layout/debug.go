package layout

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/askiada/go-autodraw/pkg/autodraw/model"
)

type debugSection struct {
	title string
	value interface{}
}

func debugSections(state model.ProjectState) []debugSection {
	return []debugSection{
		{title: "project_attributes", value: map[string]interface{}{
			"project_attributes": state.ProjectAttributes,
			"product_attributes": state.ProductAttributes,
			"products":           state.Products,
		}},
		{title: "autodraw_config", value: state.Config},
		{title: "autodraw_meta", value: state.Progress},
		{title: "autodraw_record", value: state.Record},
	}
}

// debugRow packs one box per section from left to right. A box width is only known once
// its content has been measured, so each box starts at the right edge of the previous one.
func (p *Projector) debugRow(state model.ProjectState) []DrawCommand {
	var cmds []DrawCommand

	x := p.debugOrigin.X
	y := p.debugOrigin.Y

	for _, section := range debugSections(state) {
		body := toYAML(section.value)

		titleW, titleH := p.measurer.Measure(section.title, debugTitleHeight)
		bodyW, bodyH := p.measurer.Measure(body, debugBodyHeight)

		width := max(titleW, bodyW) + debugPadding
		height := titleH + debugBodyHeight*linePitch + bodyH + debugPadding

		titlePos := Point{X: x + debugInset, Y: y - debugInset}

		cmds = append(cmds,
			Text{Position: titlePos, Height: debugTitleHeight, Content: section.title, Class: ClassDebug},
			Text{
				Position: Point{X: titlePos.X, Y: titlePos.Y - titleH - debugBodyHeight*linePitch},
				Height:   debugBodyHeight,
				Content:  body,
				Class:    ClassDebug,
			},
			Rect{
				Min:   Point{X: x, Y: y - height},
				Max:   Point{X: x + width, Y: y},
				Class: ClassDebug,
			},
		)

		x += width + debugGap
	}

	return cmds
}

// toYAML renders value through its JSON form so that the dump uses the wire field names.
func toYAML(value interface{}) string {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("<unable to encode: %v>", err)
	}

	var generic interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return fmt.Sprintf("<unable to decode: %v>", err)
	}

	out, err := yaml.Marshal(generic)
	if err != nil {
		return fmt.Sprintf("<unable to encode: %v>", err)
	}

	return strings.TrimRight(string(out), "\n")
}
