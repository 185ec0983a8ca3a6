package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"gradevault/core/config"
	"gradevault/core/database"
	"gradevault/core/loader"
	"gradevault/core/logger"
	mwauth "gradevault/core/middleware/auth"
	"gradevault/core/middleware/rayid"
	"gradevault/core/storage"
	"gradevault/core/token"

	"gradevault/feature/auth"
	"gradevault/feature/backup"
	"gradevault/feature/votes"

	authmodels "gradevault/feature/auth/models"
	votemodels "gradevault/feature/votes/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "gradevault/docs/swagger"
)

// @title GradeVault API
// @version 1.0
// @description API for personal grade records and backup reconciliation.
// @host localhost:3000
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the gradevault server",
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

		if !cfg.Server.HasSecret() {
			logg.Fatal("SERVER_JWT_SECRET must be set")
		}

		// 3. Connect to Database (Required)
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		if err := db.AutoMigrate(&authmodels.User{}, &votemodels.Vote{}); err != nil {
			logg.Fatal("Failed to migrate schema", zap.Error(err))
		}

		// 4. Token Manager + Request Guard
		tokens := token.NewManager(cfg.Server.JwtSecret,
			time.Duration(cfg.Server.AccessTokenMinutes)*time.Minute,
			time.Duration(cfg.Server.RefreshTokenDays)*24*time.Hour)

		authStore := auth.NewStore(db)
		guard := mwauth.New(mwauth.Config{Tokens: tokens, Users: authStore})

		// 5. Pre-restore Archive Storage (Optional)
		var archiver *backup.Archiver
		if cfg.Storage.Enabled {
			client, err := storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
			archiver = backup.NewArchiver(client, cfg.Storage.Bucket, logg)
			if err := archiver.EnsureBucket(context.Background()); err != nil {
				logg.Fatal("Failed to prepare archive bucket", zap.Error(err))
			}
			logg.Info("Pre-restore archive enabled", zap.String("bucket", cfg.Storage.Bucket))
		}

		// 6. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 7. Initialize Feature Loader
		mgr := loader.NewManager()

		votesFeature := votes.NewFeature(db, logg, guard)
		mgr.Register(auth.NewFeature(authStore, tokens, votesFeature.Store(), cfg.Server.SecureCookies, logg, guard))
		mgr.Register(votesFeature)
		mgr.Register(backup.NewFeature(votesFeature.Store(), archiver, logg, guard))

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
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 3. CORS (credentialed, for the browser client's refresh cookie)
		app.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Join(cfg.Server.AllowedOrigins(), ", "),
			AllowCredentials: true,
			AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		}))

		// 4. Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 5. Health Probe (Public)
		app.Get("/api/ok", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})

		// 6. Load Features (each feature applies the guard to its own routes)
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
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
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
