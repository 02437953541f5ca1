package cmd

import (
	"fmt"

	"metadata-bridge/core/config"
	"metadata-bridge/core/database"
	"metadata-bridge/core/logger"
	"metadata-bridge/core/storage"
	"metadata-bridge/feature/catalog"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// deps holds the dependencies shared by every command.
type deps struct {
	cfg     *config.Config
	log     *zap.Logger
	db      *gorm.DB
	storage storage.Client
	artwork *storage.ArtworkChecker
}

// bootstrap loads configuration and opens the catalog database and artwork storage.
func bootstrap() (*deps, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database connection required: %w", err)
	}
	logg = logg.With(zap.String("driver", cfg.Database.Driver))

	if cfg.Database.AutoMigrate {
		if err := catalog.Migrate(db); err != nil {
			return nil, err
		}
		logg.Info("Catalog tables migrated")
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &deps{
		cfg:     cfg,
		log:     logg,
		db:      db,
		storage: client,
		artwork: storage.NewArtworkChecker(client, cfg.Storage.Bucket, cfg.Storage.ArtworkPrefix),
	}, nil
}

// catalogService builds the resolution service over the command dependencies.
func (d *deps) catalogService() *catalog.Service {
	return catalog.NewService(catalog.NewStore(d.db), d.artwork, d.cfg.Metadata.Source(), d.log)
}
