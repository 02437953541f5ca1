package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"metadata-bridge/core/loader"
	"metadata-bridge/core/logger"
	"metadata-bridge/core/middleware/auth"
	"metadata-bridge/core/middleware/rayid"
	"metadata-bridge/feature/catalog"
	"metadata-bridge/feature/integrity"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "metadata-bridge/docs/swagger"
)

// @title Metadata Bridge API
// @version 1.0
// @description Resolves AniDB episodes to TvDB metadata.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the metadata bridge server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := bootstrap()
		if err != nil {
			return err
		}
		logg := d.log
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		app := newApp(d)

		catalogFeature := catalog.NewFeature(catalog.NewStore(d.db), d.artwork, d.cfg.Metadata.Source(), logg)

		mgr := loader.NewManager()
		mgr.Register(catalogFeature)
		mgr.Register(integrity.NewFeature(d.storage, d.cfg.Storage.Bucket, d.cfg.Storage.ArtworkPrefix, d.db, catalogFeature.Service(), logg))

		loaded, err := mgr.LoadAll(app)
		if err != nil {
			return fmt.Errorf("failed to load features: %w", err)
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("addr", d.cfg.Server.Addr()))
			errCh <- app.Listen(d.cfg.Server.Addr())
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return fmt.Errorf("server failed: %w", err)
		case <-quit:
		}

		logg.Info("Shutting down server...", zap.Duration("timeout", d.cfg.Server.ShutdownTimeout()))
		return app.ShutdownWithTimeout(d.cfg.Server.ShutdownTimeout())
	},
}

// newApp creates the Fiber application with the global middleware chain.
// Feature routes registered afterwards sit behind the API key.
func newApp(d *deps) *fiber.App {
	logg := d.log

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	// RayID first so every log line carries it.
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	app.Get("/swagger/*", swagger.HandlerDefault)

	if d.cfg.Server.MetricsEnabled {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	app.Use(auth.New(auth.Config{ApiKey: d.cfg.Server.ApiKey}))

	return app
}

func init() {
	RootCmd.AddCommand(startCmd)
}
