package reconcile

import (
	"context"

	"go.uber.org/zap"
)

// OverviewPlaceholder is written when a matched regular or override episode has no overview.
const OverviewPlaceholder = "Episode Overview Not Available"

// ArtworkChecker confirms that an image path exists in artwork storage.
type ArtworkChecker interface {
	Exists(ctx context.Context, path string) (bool, error)
}

// Policy merges alternate catalog metadata into resolved episode metadata.
// It holds no mutable state and is safe for concurrent use.
type Policy struct {
	titleSource TitleSource
	artwork     ArtworkChecker
	logger      *zap.Logger
}

// NewPolicy creates a merge policy. A nil artwork checker treats all artwork as missing.
func NewPolicy(titleSource TitleSource, artwork ArtworkChecker, logger *zap.Logger) *Policy {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Policy{
		titleSource: titleSource,
		artwork:     artwork,
		logger:      logger,
	}
}

// TitleSource returns the configured title source.
func (p *Policy) TitleSource() TitleSource {
	return p.titleSource
}

// Locate finds the alternate episode for a primary episode. Overrides win over
// range cross-references; an override whose target is unknown falls back to
// range resolution.
func Locate(ep PrimaryEpisode, tctx *TitleContext) Match {
	if tctx == nil {
		return Match{}
	}

	if alt, ok := tctx.OverrideEpisode(ep.ID); ok {
		return Match{Path: PathOverride, Episode: alt}
	}

	if !ep.Type.Mappable() {
		return Match{}
	}

	ref, ok := SelectCrossReference(ep.Number, ep.Type, tctx.CrossReferences)
	if !ok {
		return Match{}
	}

	alt, ok := Translate(ref, tctx, ep.Number)
	if !ok {
		return Match{}
	}

	path := PathRegular
	if ep.Type == EpisodeTypeSpecial {
		path = PathSpecial
	}
	return Match{Path: path, Episode: alt}
}

// Apply locates the alternate episode and writes its fields into out.
// When nothing is found out is left untouched.
func (p *Policy) Apply(ctx context.Context, ep PrimaryEpisode, tctx *TitleContext, out *Resolved) Match {
	m := Locate(ep, tctx)
	if !m.Found() {
		return m
	}

	alt := m.Episode

	switch {
	case m.Path == PathSpecial:
		out.Overview = alt.Overview
	case alt.Overview == "":
		out.Overview = OverviewPlaceholder
	default:
		out.Overview = alt.Overview
	}

	out.Image = p.image(ctx, alt)

	if p.titleSource == TitleSourceAlternate && alt.Title != "" {
		out.Title = alt.Title
	}

	return m
}

// Resolve returns the metadata for a primary episode, starting from the
// primary catalog defaults.
func (p *Policy) Resolve(ctx context.Context, ep PrimaryEpisode, tctx *TitleContext) (Resolved, Match) {
	out := Resolved{
		Title: ep.DefaultTitle(),
		Image: ImageNone,
	}
	m := p.Apply(ctx, ep, tctx, &out)
	return out, m
}

func (p *Policy) image(ctx context.Context, alt AlternateEpisode) ImageRef {
	if alt.ImagePath == "" || p.artwork == nil {
		return ImageNone
	}
	ok, err := p.artwork.Exists(ctx, alt.ImagePath)
	if err != nil {
		p.logger.Debug("Artwork check failed",
			zap.String("path", alt.ImagePath),
			zap.Int("tvdb_episode_id", alt.ID),
			zap.Error(err),
		)
		return ImageNone
	}
	if !ok {
		return ImageNone
	}
	return ImageRef{Kind: ImageKindTvDBEpisode, ID: alt.ID}
}
