package drawer

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/askiada/go-autodraw/pkg/autodraw/layout"
)

// MultiDrawer runs several drawers concurrently on the same commands. The first failure
// cancels the context given to the others.
type MultiDrawer struct {
	drawers []Drawer
}

// NewMultiDrawer creates a drawer fanning out to drawers. Nil drawers are ignored.
func NewMultiDrawer(drawers ...Drawer) *MultiDrawer {
	m := &MultiDrawer{}

	for _, d := range drawers {
		if d != nil {
			m.drawers = append(m.drawers, d)
		}
	}

	return m
}

func (m *MultiDrawer) Draw(ctx context.Context, cmds []layout.DrawCommand) error {
	errGroup, gctx := errgroup.WithContext(ctx)

	for _, d := range m.drawers {
		d := d

		errGroup.Go(func() error {
			return d.Draw(gctx, cmds)
		})
	}

	err := errGroup.Wait()
	if err != nil {
		return errors.Wrap(err, "unable to draw")
	}

	return nil
}

var _ Drawer = (*MultiDrawer)(nil)
