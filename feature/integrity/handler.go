package integrity

import (
	"metadata-bridge/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/structure", h.HandleStructureCheck)
	group.Get("/schema", h.HandleSchemaCheck)
	group.Get("/crossref/:animeId", h.HandleCrossRefCheck)
}

// HandleIntegrityCheck triggers the storage and schema checks.
// @Summary Run All Integrity Checks
// @Description Performs the structure and schema checks. Cross reference checks are per title and not included.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	report := make(map[string]interface{})

	if missing, err := h.service.CheckStructure(c.Context()); err != nil {
		report["structure"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["structure"] = map[string]interface{}{"status": "ok", "missing": missing}
	}

	if schema, err := h.service.CheckSchema(); err != nil {
		report["schema"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["schema"] = schema
	}

	return c.JSON(report)
}

// HandleStructureCheck checks and optionally fixes the artwork folders.
// @Summary Check Structure
// @Description Checks that the artwork folders exist in the storage bucket. Optionally creates missing folders.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Fix missing folders"
// @Success 200 {object} map[string]interface{} "Structure Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/structure [get]
func (h *Handler) HandleStructureCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.QueryBool("fix", false)

	missing, err := h.service.CheckStructure(c.Context())
	if err != nil {
		l.Error("Structure check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(missing) > 0 {
		l.Warn("Missing folders detected", zap.Strings("missing", missing))

		if fix {
			l.Info("Attempting to fix missing folders")
			if err := h.service.FixStructure(c.Context(), missing); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to fix structure",
					"details": err.Error(),
					"missing": missing,
				})
			}
			return c.JSON(fiber.Map{
				"status": "fixed",
				"fixed":  missing,
			})
		}
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}

// HandleSchemaCheck checks the catalog schema.
// @Summary Check Catalog Schema
// @Description Checks that the catalog tables match the expected models.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckSchema()
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(report)
}

// HandleCrossRefCheck reports linkage problems for one title.
// @Summary Check Cross References
// @Description Reports duplicate range starts, unknown TvDB series, missing seasons and dangling overrides for an AniDB title.
// @Tags integrity
// @Produce json
// @Param animeId path int true "AniDB anime ID"
// @Success 200 {object} checks.CrossRefReport "Cross Reference Report"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/crossref/{animeId} [get]
func (h *Handler) HandleCrossRefCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	animeID, err := c.ParamsInt("animeId")
	if err != nil || animeID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "animeId must be a positive integer"})
	}

	report, err := h.service.CheckCrossReferences(c.Context(), animeID)
	if err != nil {
		l.Error("Cross reference check failed", zap.Int("anime_id", animeID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if !report.OK {
		l.Warn("Cross reference problems detected",
			zap.Int("anime_id", animeID),
			zap.Int("duplicates", len(report.Duplicates)),
			zap.Ints("unknown_catalogs", report.UnknownCatalogs),
			zap.Int("missing_seasons", len(report.MissingSeasons)),
			zap.Ints("dangling_overrides", report.DanglingOverrides),
		)
	}

	return c.JSON(report)
}
