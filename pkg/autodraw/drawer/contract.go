package drawer

import (
	"context"

	"github.com/askiada/go-autodraw/pkg/autodraw/layout"
)

// Drawer executes draw commands against a concrete output.
type Drawer interface {
	// Draw executes cmds in order. cmds must not be modified.
	Draw(ctx context.Context, cmds []layout.DrawCommand) error
}
