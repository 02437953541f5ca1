package reconcile

// EpisodeType is the primary catalog (AniDB) episode type.
type EpisodeType int

const (
	EpisodeTypeRegular EpisodeType = 1
	EpisodeTypeCredits EpisodeType = 2
	EpisodeTypeSpecial EpisodeType = 3
	EpisodeTypeTrailer EpisodeType = 4
	EpisodeTypeParody  EpisodeType = 5
	EpisodeTypeOther   EpisodeType = 6
)

// String returns the lowercase name of the episode type.
func (t EpisodeType) String() string {
	switch t {
	case EpisodeTypeRegular:
		return "regular"
	case EpisodeTypeCredits:
		return "credits"
	case EpisodeTypeSpecial:
		return "special"
	case EpisodeTypeTrailer:
		return "trailer"
	case EpisodeTypeParody:
		return "parody"
	case EpisodeTypeOther:
		return "other"
	default:
		return "unknown"
	}
}

// Mappable reports whether range cross-references can resolve this type.
func (t EpisodeType) Mappable() bool {
	return t == EpisodeTypeRegular || t == EpisodeTypeSpecial
}

// PrimaryEpisode is an episode as numbered by the primary catalog.
type PrimaryEpisode struct {
	// ID is the primary catalog episode ID.
	ID int
	// AnimeID is the primary catalog title this episode belongs to.
	AnimeID int
	// Number is the episode number, scoped within Type.
	Number int
	// Type is the episode type.
	Type EpisodeType
	// TitlePrimary is the romanized title.
	TitlePrimary string
	// TitleLocalized is the English title, if known.
	TitleLocalized string
}

// DefaultTitle returns the localized title when present, else the primary one.
func (e PrimaryEpisode) DefaultTitle() string {
	if e.TitleLocalized != "" {
		return e.TitleLocalized
	}
	return e.TitlePrimary
}

// CrossReference maps a contiguous, right-open range of primary episode
// numbers of one type onto a position in an alternate catalog season.
type CrossReference struct {
	// SourceStartNumber is the first primary episode number of the range (1-based).
	SourceStartNumber int
	// SourceStartType is the primary episode type the range applies to.
	SourceStartType EpisodeType
	// AlternateID is the alternate catalog (series) ID.
	AlternateID int
	// AlternateSeason is the alternate season the range starts in.
	AlternateSeason int
	// AlternateStartNumber is the alternate episode number the range starts at (1-based).
	AlternateStartNumber int
}

// Override links one primary episode directly to one alternate episode.
type Override struct {
	EpisodeID          int
	AlternateEpisodeID int
}

// AlternateEpisode is an alternate catalog episode.
type AlternateEpisode struct {
	// ID is the alternate catalog episode ID.
	ID int
	// SeriesID is the alternate catalog the episode belongs to.
	SeriesID int
	// Season and Number are the alternate catalog numbering.
	Season int
	Number int
	// AbsoluteIndex is the flattened, 1-based position within the series.
	// It is assigned by NewAlternateCatalog.
	AbsoluteIndex int
	Title         string
	Overview      string
	ImagePath     string
}

// ImageKind identifies the catalog an image reference points into.
type ImageKind int

const (
	// ImageKindNone marks the absence of artwork.
	ImageKindNone ImageKind = 0
	// ImageKindTvDBEpisode refers to an alternate catalog episode thumbnail.
	ImageKindTvDBEpisode ImageKind = 6
)

// ImageRef references a piece of artwork by kind and owner ID.
type ImageRef struct {
	Kind ImageKind `json:"kind"`
	ID   int       `json:"id"`
}

// ImageNone is the "no artwork" sentinel.
var ImageNone = ImageRef{Kind: ImageKindNone, ID: 0}

// IsNone reports whether the reference is the "no artwork" sentinel.
func (r ImageRef) IsNone() bool {
	return r.Kind == ImageKindNone && r.ID == 0
}

// Resolved is the merged metadata for one primary episode.
type Resolved struct {
	Title    string   `json:"title"`
	Overview string   `json:"overview"`
	Image    ImageRef `json:"image"`
}

// TitleSource selects which catalog supplies episode titles.
type TitleSource string

const (
	TitleSourcePrimary   TitleSource = "primary"
	TitleSourceAlternate TitleSource = "alternate"
)

// Path records how an alternate episode was found.
type Path int

const (
	PathNone Path = iota
	PathOverride
	PathRegular
	PathSpecial
)

// String returns the label used in logs and metrics.
func (p Path) String() string {
	switch p {
	case PathOverride:
		return "override"
	case PathRegular:
		return "regular"
	case PathSpecial:
		return "special"
	default:
		return "none"
	}
}

// Match is the outcome of locating an alternate episode. A zero Match (PathNone)
// means nothing was found, which is a normal result and not an error.
type Match struct {
	Path    Path
	Episode AlternateEpisode
}

// Found reports whether an alternate episode was located.
func (m Match) Found() bool {
	return m.Path != PathNone
}
