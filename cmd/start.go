package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"indexer-sync/core/config"
	"indexer-sync/core/loader"
	"indexer-sync/core/logger"
	"indexer-sync/core/middleware/auth"
	"indexer-sync/core/middleware/requestid"
	"indexer-sync/feature/syncer"

	"github.com/go-co-op/gocron/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the indexer sync server",
	Long: `Starts the HTTP server exposing the sync trigger and status endpoints,
and optionally schedules periodic reconciliation runs.`,
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

		// 3. Wire the sync service
		service, err := newSyncService(cfg, logg)
		if err != nil {
			logg.Fatal("Failed to build sync service", zap.Error(err))
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// Middleware Registration
		// Request id first so everything downstream can trace
		app.Use(requestid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRequestID(logg, c)
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

		// Health endpoint stays public
		app.Get("/healthz", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})

		// Protect the API
		api := app.Group("/api", auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 5. Load Features
		mgr := loader.NewManager()
		mgr.Register(syncer.NewFeature(service, logg))
		if err := mgr.LoadAll(api); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Schedule periodic runs
		var scheduler gocron.Scheduler
		if cfg.Sync.IntervalMinutes > 0 {
			scheduler, err = gocron.NewScheduler()
			if err != nil {
				logg.Fatal("Failed to create scheduler", zap.Error(err))
			}
			interval := time.Duration(cfg.Sync.IntervalMinutes) * time.Minute
			_, err = scheduler.NewJob(
				gocron.DurationJob(interval),
				gocron.NewTask(func() {
					if _, err := service.Run(context.Background(), false); err != nil {
						logg.Error("Scheduled sync run failed", zap.Error(err))
					}
				}),
				gocron.WithName("sync"),
			)
			if err != nil {
				logg.Fatal("Failed to schedule sync job", zap.Error(err))
			}
			scheduler.Start()
			logg.Info("Scheduled periodic sync", zap.Duration("interval", interval))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		if scheduler != nil {
			_ = scheduler.Shutdown()
		}
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
