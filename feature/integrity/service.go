package integrity

import (
	"context"
	"fmt"

	"metadata-bridge/core/reconcile"
	"metadata-bridge/core/storage"
	"metadata-bridge/feature/catalog/models"
	"metadata-bridge/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ContextBuilder builds the resolution summary of a title.
type ContextBuilder interface {
	TitleContext(ctx context.Context, animeID int) (*reconcile.TitleContext, error)
}

// Service handles integrity checks.
type Service struct {
	client  storage.Client
	bucket  string
	prefix  string
	db      *gorm.DB
	builder ContextBuilder
	logger  *zap.Logger
}

// NewService creates a new integrity service. db and builder may be nil; the
// checks that need them then report an error.
func NewService(client storage.Client, bucket, prefix string, db *gorm.DB, builder ContextBuilder, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client:  client,
		bucket:  bucket,
		prefix:  prefix,
		db:      db,
		builder: builder,
		logger:  logger,
	}
}

// CheckStructure returns the missing artwork folders.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	return checks.CheckStructure(ctx, s.client, s.bucket, s.prefix)
}

// FixStructure creates the missing artwork folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	return checks.FixStructure(ctx, s.client, s.bucket, s.logger, missing)
}

// CheckSchema compares the catalog tables with the catalog models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, models.All()...)
}

// CheckCrossReferences reports linkage problems for one title.
func (s *Service) CheckCrossReferences(ctx context.Context, animeID int) (*checks.CrossRefReport, error) {
	if s.builder == nil {
		return nil, fmt.Errorf("catalog is not configured")
	}
	tctx, err := s.builder.TitleContext(ctx, animeID)
	if err != nil {
		return nil, err
	}
	return checks.CheckCrossReferences(tctx), nil
}
