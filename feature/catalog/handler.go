package catalog

import (
	"errors"

	"metadata-bridge/core/logger"
	"metadata-bridge/core/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for catalog metadata.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type idParam struct {
	ID int `validate:"min=1"`
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/anime/:id/episodes", h.HandleGetAnimeEpisodes)
	app.Get("/episodes/:id", h.HandleGetEpisode)
}

// HandleGetEpisode resolves a single episode.
// @Summary Get Episode Metadata
// @Description Resolves title, overview and image of an AniDB episode using the linked TvDB catalog.
// @Tags catalog
// @Produce json
// @Param id path int true "AniDB episode ID"
// @Success 200 {object} EpisodeMetadata
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Episode not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /episodes/{id} [get]
func (h *Handler) HandleGetEpisode(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.Logger(), c)

	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	md, err := h.service.GetEpisodeMetadata(c.Context(), id)
	if err != nil {
		return h.fail(c, l, "Episode lookup failed", err, zap.Int("episode_id", id))
	}

	return c.JSON(md)
}

// HandleGetAnimeEpisodes resolves every episode of a title.
// @Summary List Anime Episodes
// @Description Resolves every episode of an AniDB title, ordered by episode type then number.
// @Tags catalog
// @Produce json
// @Param id path int true "AniDB anime ID"
// @Success 200 {object} AnimeEpisodes
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Anime not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /anime/{id}/episodes [get]
func (h *Handler) HandleGetAnimeEpisodes(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.Logger(), c)

	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	list, err := h.service.GetAnimeEpisodes(c.Context(), id)
	if err != nil {
		return h.fail(c, l, "Episode list failed", err, zap.Int("anime_id", id))
	}

	return c.JSON(list)
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, msg string, err error, fields ...zap.Field) error {
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	l.Error(msg, append(fields, zap.Error(err))...)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

func parseID(c *fiber.Ctx) (int, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return 0, errors.New("id must be an integer")
	}
	if err := validation.Struct(idParam{ID: id}); err != nil {
		return 0, err
	}
	return id, nil
}
