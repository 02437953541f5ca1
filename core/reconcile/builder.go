package reconcile

import (
	"context"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Builder builds title contexts from a Source. Concurrent builds for the same
// title share one load; nothing is kept once the build returns.
type Builder struct {
	source Source
	logger *zap.Logger
	sf     singleflight.Group
}

// NewBuilder creates a Builder over the given source.
func NewBuilder(source Source, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{source: source, logger: logger}
}

// Build returns the title context for animeID. The shared load runs detached
// from any single caller's cancellation; each caller still stops waiting when
// its own ctx is done.
func (b *Builder) Build(ctx context.Context, animeID int) (*TitleContext, error) {
	loadCtx := context.WithoutCancel(ctx)
	ch := b.sf.DoChan(strconv.Itoa(animeID), func() (interface{}, error) {
		return BuildTitleContext(loadCtx, b.source, animeID, b.logger)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			b.logger.Debug("Shared title context build", zap.Int("anime_id", animeID))
		}
		return res.Val.(*TitleContext), nil
	}
}
