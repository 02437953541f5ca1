package models

import (
	"strings"

	"metadata-bridge/core/reconcile"
)

// Anime represents the 'anidb_anime' table.
type Anime struct {
	AnimeID      int    `gorm:"column:anime_id;primaryKey;autoIncrement:false" json:"anime_id"`
	MainTitle    string `gorm:"column:main_title;size:500" json:"main_title"`
	EpisodeCount int    `gorm:"column:episode_count" json:"episode_count"`
}

// TableName overrides the table name.
func (Anime) TableName() string {
	return "anidb_anime"
}

// Episode represents the 'anidb_episode' table.
type Episode struct {
	EpisodeID     int    `gorm:"column:episode_id;primaryKey;autoIncrement:false"`
	AnimeID       int    `gorm:"column:anime_id;index"`
	EpisodeNumber int    `gorm:"column:episode_number"`
	EpisodeType   int    `gorm:"column:episode_type"`
	RomajiName    string `gorm:"column:romaji_name;size:500"`
	EnglishName   string `gorm:"column:english_name;size:500"`
}

// TableName overrides the table name.
func (Episode) TableName() string {
	return "anidb_episode"
}

// ToPrimary converts the row to a primary catalog episode.
func (e Episode) ToPrimary() reconcile.PrimaryEpisode {
	return reconcile.PrimaryEpisode{
		ID:             e.EpisodeID,
		AnimeID:        e.AnimeID,
		Number:         e.EpisodeNumber,
		Type:           reconcile.EpisodeType(e.EpisodeType),
		TitlePrimary:   strings.TrimSpace(e.RomajiName),
		TitleLocalized: strings.TrimSpace(e.EnglishName),
	}
}

// TvDBEpisode represents the 'tvdb_episode' table.
type TvDBEpisode struct {
	ID            int    `gorm:"column:id;primaryKey;autoIncrement:false"`
	SeriesID      int    `gorm:"column:series_id;index"`
	SeasonNumber  int    `gorm:"column:season_number"`
	EpisodeNumber int    `gorm:"column:episode_number"`
	EpisodeName   string `gorm:"column:episode_name;size:500"`
	Overview      string `gorm:"column:overview;type:text"`
	Filename      string `gorm:"column:filename;size:500"`
}

// TableName overrides the table name.
func (TvDBEpisode) TableName() string {
	return "tvdb_episode"
}

// ToAlternate converts the row to an alternate catalog episode. The absolute
// index is assigned when the catalog is summarized.
func (e TvDBEpisode) ToAlternate() reconcile.AlternateEpisode {
	return reconcile.AlternateEpisode{
		ID:        e.ID,
		SeriesID:  e.SeriesID,
		Season:    e.SeasonNumber,
		Number:    e.EpisodeNumber,
		Title:     e.EpisodeName,
		Overview:  e.Overview,
		ImagePath: e.Filename,
	}
}

// CrossRefTvDB represents the 'crossref_anidb_tvdb_v2' table.
type CrossRefTvDB struct {
	ID                      int    `gorm:"column:id;primaryKey"`
	AnimeID                 int    `gorm:"column:anime_id;index"`
	AniDBStartEpisodeType   int    `gorm:"column:anidb_start_episode_type"`
	AniDBStartEpisodeNumber int    `gorm:"column:anidb_start_episode_number"`
	TvDBID                  int    `gorm:"column:tvdb_id"`
	TvDBSeasonNumber        int    `gorm:"column:tvdb_season_number"`
	TvDBStartEpisodeNumber  int    `gorm:"column:tvdb_start_episode_number"`
	TvDBTitle               string `gorm:"column:tvdb_title;size:500"`
	CrossRefSource          int    `gorm:"column:cross_ref_source"`
}

// TableName overrides the table name.
func (CrossRefTvDB) TableName() string {
	return "crossref_anidb_tvdb_v2"
}

// ToCrossReference converts the row to a range mapping record.
func (c CrossRefTvDB) ToCrossReference() reconcile.CrossReference {
	return reconcile.CrossReference{
		SourceStartNumber:    c.AniDBStartEpisodeNumber,
		SourceStartType:      reconcile.EpisodeType(c.AniDBStartEpisodeType),
		AlternateID:          c.TvDBID,
		AlternateSeason:      c.TvDBSeasonNumber,
		AlternateStartNumber: c.TvDBStartEpisodeNumber,
	}
}

// CrossRefTvDBEpisode represents the 'crossref_anidb_tvdb_episode' table.
type CrossRefTvDBEpisode struct {
	ID             int `gorm:"column:id;primaryKey"`
	AnimeID        int `gorm:"column:anime_id;index"`
	AniDBEpisodeID int `gorm:"column:anidb_episode_id;uniqueIndex"`
	TvDBEpisodeID  int `gorm:"column:tvdb_episode_id"`
}

// TableName overrides the table name.
func (CrossRefTvDBEpisode) TableName() string {
	return "crossref_anidb_tvdb_episode"
}

// ToOverride converts the row to an episode override.
func (c CrossRefTvDBEpisode) ToOverride() reconcile.Override {
	return reconcile.Override{
		EpisodeID:          c.AniDBEpisodeID,
		AlternateEpisodeID: c.TvDBEpisodeID,
	}
}

// All returns every catalog model, in migration order.
func All() []any {
	return []any{
		&Anime{},
		&Episode{},
		&TvDBEpisode{},
		&CrossRefTvDB{},
		&CrossRefTvDBEpisode{},
	}
}
