package catalog

import (
	"context"
	"errors"
	"fmt"

	"metadata-bridge/core/reconcile"
	"metadata-bridge/feature/catalog/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a requested primary record does not exist.
var ErrNotFound = errors.New("not found")

// Store reads catalog rows through gorm. It satisfies reconcile.Source.
type Store struct {
	db *gorm.DB
}

var _ reconcile.Source = (*Store)(nil)

// NewStore creates a store over the given connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// GetAnime returns the title with the given id.
func (s *Store) GetAnime(ctx context.Context, animeID int) (*models.Anime, error) {
	var anime models.Anime
	err := s.db.WithContext(ctx).Where("anime_id = ?", animeID).Take(&anime).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("anime %d: %w", animeID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get anime %d: %w", animeID, err)
	}
	return &anime, nil
}

// GetEpisode returns the primary episode with the given id.
func (s *Store) GetEpisode(ctx context.Context, episodeID int) (reconcile.PrimaryEpisode, error) {
	var row models.Episode
	err := s.db.WithContext(ctx).Where("episode_id = ?", episodeID).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return reconcile.PrimaryEpisode{}, fmt.Errorf("episode %d: %w", episodeID, ErrNotFound)
	}
	if err != nil {
		return reconcile.PrimaryEpisode{}, fmt.Errorf("get episode %d: %w", episodeID, err)
	}
	return row.ToPrimary(), nil
}

// GetEpisodesByAnime returns every primary episode of a title.
func (s *Store) GetEpisodesByAnime(ctx context.Context, animeID int) ([]reconcile.PrimaryEpisode, error) {
	var rows []models.Episode
	err := s.db.WithContext(ctx).
		Where("anime_id = ?", animeID).
		Order("episode_type, episode_number, episode_id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list episodes for anime %d: %w", animeID, err)
	}

	out := make([]reconcile.PrimaryEpisode, len(rows))
	for i, r := range rows {
		out[i] = r.ToPrimary()
	}
	return out, nil
}

// LoadCrossReferences returns the range mappings of a title in insertion order.
func (s *Store) LoadCrossReferences(ctx context.Context, animeID int) ([]reconcile.CrossReference, error) {
	var rows []models.CrossRefTvDB
	if err := s.db.WithContext(ctx).Where("anime_id = ?", animeID).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]reconcile.CrossReference, len(rows))
	for i, r := range rows {
		out[i] = r.ToCrossReference()
	}
	return out, nil
}

// LoadOverrides returns the episode overrides of a title.
func (s *Store) LoadOverrides(ctx context.Context, animeID int) ([]reconcile.Override, error) {
	var rows []models.CrossRefTvDBEpisode
	if err := s.db.WithContext(ctx).Where("anime_id = ?", animeID).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]reconcile.Override, len(rows))
	for i, r := range rows {
		out[i] = r.ToOverride()
	}
	return out, nil
}

// LoadAlternateEpisodes returns every episode of an alternate series.
func (s *Store) LoadAlternateEpisodes(ctx context.Context, seriesID int) ([]reconcile.AlternateEpisode, error) {
	var rows []models.TvDBEpisode
	err := s.db.WithContext(ctx).
		Where("series_id = ?", seriesID).
		Order("season_number, episode_number, id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]reconcile.AlternateEpisode, len(rows))
	for i, r := range rows {
		out[i] = r.ToAlternate()
	}
	return out, nil
}

// Migrate creates or updates the catalog tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("migrate catalog tables: %w", err)
	}
	return nil
}
