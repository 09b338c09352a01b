package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/everkeep/legacy-backend/internal/chat"
	"github.com/everkeep/legacy-backend/internal/config"
	"github.com/everkeep/legacy-backend/internal/features"
	"github.com/everkeep/legacy-backend/internal/features/avatars"
	chatfeature "github.com/everkeep/legacy-backend/internal/features/chat"
	"github.com/everkeep/legacy-backend/internal/features/family"
	"github.com/everkeep/legacy-backend/internal/features/home"
	"github.com/everkeep/legacy-backend/internal/features/interactions"
	"github.com/everkeep/legacy-backend/internal/features/memories"
	"github.com/everkeep/legacy-backend/internal/handlers"
	"github.com/everkeep/legacy-backend/internal/logging"
	"github.com/everkeep/legacy-backend/internal/middleware"
	"github.com/everkeep/legacy-backend/internal/routes"
	"github.com/everkeep/legacy-backend/internal/seed"
	"github.com/everkeep/legacy-backend/internal/store"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	// Sentry error tracking
	var sentryHandler *logging.SentryHandler
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)

			// Forward ERROR+ logs to Sentry (async batch)
			sentryHandler = logging.NewSentryHandler(sentry.CurrentHub())
			slog.SetDefault(slog.New(logging.NewMultiHandler(
				slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
				sentryHandler,
			)))
		}
	}

	// Stores, seeded once per process
	opts := store.Options{}
	if cfg.StoreLatency == "simulated" {
		opts.Latency = store.DefaultSimulated()
	}
	avatarStore := store.NewAvatarStore(seed.Avatars(), opts)
	memoryStore := store.NewMemoryStore(seed.Memories(), opts)
	interactionStore := store.NewInteractionStore(seed.Interactions(), opts)
	familyStore := store.NewFamilyMemberStore(seed.FamilyMembers(), opts)
	slog.Info("stores seeded",
		"avatars", avatarStore.Count(),
		"memories", memoryStore.Count(),
		"interactions", interactionStore.Count(),
		"family_members", familyStore.Count(),
	)

	// Features
	typingDelay := chat.UniformDelay{Min: cfg.ReplyDelayMin, Max: cfg.ReplyDelayMax}
	feats := []features.Feature{
		avatars.New(avatarStore),
		memories.New(memoryStore),
		interactions.New(interactionStore),
		family.New(familyStore),
		chatfeature.New(avatarStore, memoryStore, interactionStore, typingDelay),
		home.New(avatarStore, memoryStore, interactionStore, familyStore),
	}
	for _, f := range feats {
		slog.Info("feature registered", "feature", f.ID())
	}

	healthHandler := handlers.NewHealthHandler(avatarStore, memoryStore, interactionStore, familyStore)

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	// Sentry middleware
	if cfg.SentryDSN != "" {
		app.Use(sentryfiber.New(sentryfiber.Options{
			Repanic:         true,
			WaitForDelivery: false,
		}))
	}

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	// Routes
	routes.Setup(app, healthHandler, feats)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	if sentryHandler != nil {
		sentryHandler.Stop()
	}
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
