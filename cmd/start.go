package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"holiday-manager/core/config"
	"holiday-manager/core/database"
	"holiday-manager/core/graph"
	"holiday-manager/core/holiday"
	"holiday-manager/core/loader"
	"holiday-manager/core/logger"
	"holiday-manager/core/middleware/auth"
	"holiday-manager/core/middleware/rayid"
	"holiday-manager/core/storage"
	"holiday-manager/core/tracking"

	"holiday-manager/feature/packs"
	"holiday-manager/feature/populate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "holiday-manager/docs/swagger"
)

// @title Holiday Manager API
// @version 1.0
// @description API for populating calendars from holiday packs.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the holiday manager server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Tracking Database (Optional)
		var tracker populate.Tracker
		if db, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional tracking database connection failed", zap.Error(err))
		} else if store, err := tracking.NewStore(db); err != nil {
			logg.Warn("Tracking schema migration failed", zap.Error(err))
		} else {
			tracker = store
			logg.Info("Connected to tracking database")
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 5. Initialize Storage and the Pack Source
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
		source := holiday.NewCachedSource(
			holiday.NewSource(store, cfg.Storage.Bucket),
			time.Duration(cfg.Storage.CacheTTLSeconds)*time.Second,
		)

		// 6. Initialize Graph Client
		graphClient := graph.NewClient(context.Background(), cfg.Graph)

		// 7. Initialize Feature Loader
		mgr := loader.NewManager()

		// Register Features
		mgr.Register(populate.NewFeature(source, graphClient, graphClient, tracker, logg, cfg.Server.WorkerCount()))
		mgr.Register(packs.NewFeature(store, cfg.Storage.Bucket, source, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			// Log error if happened
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 8. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 9. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 10. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
