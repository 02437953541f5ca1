package catalog

import (
	"metadata-bridge/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the catalog feature over an existing repository.
// A nil *Store counts as no repository.
func NewFeature(repo Repository, artwork reconcile.ArtworkChecker, titleSource reconcile.TitleSource, logger *zap.Logger) *Feature {
	if store, ok := repo.(*Store); ok && store == nil {
		repo = nil
	}
	svc := NewService(repo, artwork, titleSource, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "catalog"
}

// IsEnabled reports whether the feature has a repository to read from.
func (f *Feature) IsEnabled() bool {
	return f.service.repo != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service returns the feature's service.
func (f *Feature) Service() *Service {
	return f.service
}
