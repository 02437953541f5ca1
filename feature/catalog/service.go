package catalog

import (
	"context"
	"fmt"
	"sort"
	"time"

	"metadata-bridge/core/metrics"
	"metadata-bridge/core/reconcile"
	"metadata-bridge/feature/catalog/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// artworkConcurrency bounds parallel artwork checks while resolving a title.
const artworkConcurrency = 8

// Repository is the catalog data the service reads.
type Repository interface {
	reconcile.Source
	GetAnime(ctx context.Context, animeID int) (*models.Anime, error)
	GetEpisode(ctx context.Context, episodeID int) (reconcile.PrimaryEpisode, error)
	GetEpisodesByAnime(ctx context.Context, animeID int) ([]reconcile.PrimaryEpisode, error)
}

// EpisodeMetadata is the resolved view of one primary episode.
type EpisodeMetadata struct {
	EpisodeID int                `json:"episode_id"`
	AnimeID   int                `json:"anime_id"`
	Number    int                `json:"number"`
	Type      string             `json:"type"`
	Title     string             `json:"title"`
	Overview  string             `json:"overview"`
	Image     reconcile.ImageRef `json:"image"`
	// Source names the resolution path: override, regular, special or none.
	Source             string `json:"source"`
	AlternateEpisodeID int    `json:"tvdb_episode_id,omitempty"`
	AlternateSeason    int    `json:"tvdb_season,omitempty"`
	AlternateNumber    int    `json:"tvdb_episode_number,omitempty"`
}

// AnimeEpisodes is the resolved episode list of a title.
type AnimeEpisodes struct {
	AnimeID   int               `json:"anime_id"`
	MainTitle string            `json:"main_title"`
	Episodes  []EpisodeMetadata `json:"episodes"`
}

// Service resolves episode metadata from the catalog.
type Service struct {
	repo    Repository
	builder *reconcile.Builder
	policy  *reconcile.Policy
	logger  *zap.Logger
}

// NewService creates a new catalog service.
func NewService(repo Repository, artwork reconcile.ArtworkChecker, titleSource reconcile.TitleSource, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:    repo,
		builder: reconcile.NewBuilder(repo, logger),
		policy:  reconcile.NewPolicy(titleSource, artwork, logger),
		logger:  logger,
	}
}

// Logger returns the service logger.
func (s *Service) Logger() *zap.Logger {
	return s.logger
}

// TitleContext builds the resolution summary of a title.
func (s *Service) TitleContext(ctx context.Context, animeID int) (*reconcile.TitleContext, error) {
	start := time.Now()
	tctx, err := s.builder.Build(ctx, animeID)
	metrics.RecordContextBuild(time.Since(start), err)
	return tctx, err
}

// GetEpisodeMetadata resolves a single primary episode.
func (s *Service) GetEpisodeMetadata(ctx context.Context, episodeID int) (*EpisodeMetadata, error) {
	ep, err := s.repo.GetEpisode(ctx, episodeID)
	if err != nil {
		return nil, err
	}

	tctx, err := s.TitleContext(ctx, ep.AnimeID)
	if err != nil {
		return nil, err
	}

	md := s.resolve(ctx, ep, tctx)
	return &md, nil
}

// GetAnimeEpisodes resolves every episode of a title, ordered by type then number.
func (s *Service) GetAnimeEpisodes(ctx context.Context, animeID int) (*AnimeEpisodes, error) {
	var (
		anime    *models.Anime
		episodes []reconcile.PrimaryEpisode
		tctx     *reconcile.TitleContext
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		anime, err = s.repo.GetAnime(gctx, animeID)
		return err
	})
	g.Go(func() error {
		var err error
		episodes, err = s.repo.GetEpisodesByAnime(gctx, animeID)
		return err
	})
	g.Go(func() error {
		var err error
		tctx, err = s.TitleContext(gctx, animeID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(episodes, func(i, j int) bool {
		if episodes[i].Type != episodes[j].Type {
			return episodes[i].Type < episodes[j].Type
		}
		return episodes[i].Number < episodes[j].Number
	})

	out := make([]EpisodeMetadata, len(episodes))
	rg, rctx := errgroup.WithContext(ctx)
	rg.SetLimit(artworkConcurrency)
	for i, ep := range episodes {
		i, ep := i, ep
		rg.Go(func() error {
			out[i] = s.resolve(rctx, ep, tctx)
			return nil
		})
	}
	if err := rg.Wait(); err != nil {
		return nil, fmt.Errorf("resolve episodes for anime %d: %w", animeID, err)
	}

	return &AnimeEpisodes{
		AnimeID:   anime.AnimeID,
		MainTitle: anime.MainTitle,
		Episodes:  out,
	}, nil
}

func (s *Service) resolve(ctx context.Context, ep reconcile.PrimaryEpisode, tctx *reconcile.TitleContext) EpisodeMetadata {
	res, m := s.policy.Resolve(ctx, ep, tctx)
	metrics.RecordResolution(m.Path.String())

	md := EpisodeMetadata{
		EpisodeID: ep.ID,
		AnimeID:   ep.AnimeID,
		Number:    ep.Number,
		Type:      ep.Type.String(),
		Title:     res.Title,
		Overview:  res.Overview,
		Image:     res.Image,
		Source:    m.Path.String(),
	}
	if m.Found() {
		md.AlternateEpisodeID = m.Episode.ID
		md.AlternateSeason = m.Episode.Season
		md.AlternateNumber = m.Episode.Number
	}
	return md
}
