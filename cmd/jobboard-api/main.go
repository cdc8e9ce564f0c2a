package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/velja/jobboard-api/internal/banner"
	"github.com/velja/jobboard-api/internal/config"
	"github.com/velja/jobboard-api/internal/handlers"
	authmw "github.com/velja/jobboard-api/internal/middleware"
	"github.com/velja/jobboard-api/internal/services"
	"github.com/velja/jobboard-api/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var logger *zap.Logger
	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	store := storage.NewRedisStore(client, logger)
	defer store.Close()

	sessionService := services.NewSessionService(cfg.SessionSecret, cfg.AdminPassword, cfg.SessionExpiry, store)
	listingService := services.NewListingService(store)

	hub := banner.NewHub()
	go hub.Run()

	sessionHandler := handlers.NewSessionHandler(sessionService)
	listingHandler := handlers.NewListingHandler(listingService, hub)
	bannerHandler := handlers.NewBannerHandler(hub)

	app := drift.New()

	if cfg.IsProduction() {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(driftmw.Recovery())
	app.Use(driftmw.CORSWithConfig(driftmw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       86400,
	}))
	app.Use(driftmw.BodyParser())

	api := app.Group("/api/v1")

	api.Post("/session", sessionHandler.Open)
	api.Get("/listings", listingHandler.List)

	admin := api.Group("/admin")
	admin.Use(authmw.Auth(sessionService))

	admin.Get("/session", sessionHandler.Status)
	admin.Delete("/session", sessionHandler.Close)

	admin.Get("/listings", listingHandler.List)
	admin.Post("/listings", listingHandler.Submit)
	admin.Post("/listings/:id/edit", listingHandler.BeginEdit)
	admin.Delete("/listings/:id", listingHandler.Delete)

	admin.Get("/editor", listingHandler.EditorState)
	admin.Delete("/editor", listingHandler.CancelEdit)

	admin.Get("/events", bannerHandler.Connect)

	api.Get("/health", func(c *drift.Context) {
		_ = c.JSON(200, map[string]string{"status": "ok"})
	})

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		logger.Info("Server starting", zap.String("addr", addr))
		if err := app.Run(addr); err != nil {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
}
