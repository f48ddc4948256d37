package fetch

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Group loads independent sections concurrently. A failing section only
// settles its own State; siblings keep loading. All loads share the
// group's context, so cancelling it cancels every outstanding fetch.
type Group struct {
	ctx context.Context
	eg  errgroup.Group
}

func NewGroup(ctx context.Context) *Group {
	return &Group{ctx: ctx}
}

// Go marks dst Loading and settles it once fn returns. Each dst must be
// owned by exactly one call.
func Go[T any](g *Group, name string, dst *State[T], fn func(context.Context) (T, error)) {
	*dst = Pending[T]()
	g.eg.Go(func() error {
		*dst = Load(g.ctx, fn)
		if dst.Failed() {
			log.Warn().Err(dst.Err()).Str("section", name).Msg("[fetch] section failed")
		}
		return nil
	})
}

// Wait blocks until every section has settled.
func (g *Group) Wait() {
	_ = g.eg.Wait()
}
