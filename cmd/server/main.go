package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"itinerary-service/internal/infrastructure/config"
	"itinerary-service/internal/infrastructure/persistence"
	"itinerary-service/internal/interface/api"
	storeRepo "itinerary-service/internal/interface/repository"
	"itinerary-service/internal/usecase"
	"itinerary-service/pkg/logger"
	"itinerary-service/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	// Create logger
	log := logger.NewLogger(cfg.LogLevel)
	defer log.Sync()
	log.Info("Starting Itinerary Service", "version", cfg.AppVersion)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up PostgreSQL connection
	log.Info("Connecting to PostgreSQL")
	gormDB, err := persistence.NewPostgresDB(cfg.PostgresURI)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	store := storeRepo.NewGormStore(gormDB)
	if err := store.AutoMigrate(); err != nil {
		log.Fatal("Failed to migrate database", "error", err)
	}

	// Set up MongoDB connection for share tokens
	log.Info("Connecting to MongoDB")
	mongoClient, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	mongoDB := persistence.GetDatabase(mongoClient, cfg.MongoDB)
	tokenRepo := storeRepo.NewMongoShareTokenRepository(mongoDB)

	// Set up metrics
	m := metrics.NewMetrics("itinerary")

	// Set up usecases
	trips := usecase.NewTripPlanner(store, tokenRepo, log, m)
	stops := usecase.NewStopSequencer(store, log, m)
	movements := usecase.NewMovementLedger(store, log, m)
	activities := usecase.NewActivitySequencer(store, log, m)
	share := usecase.NewShareManager(store, tokenRepo, cfg.ShareTokenTTL, log)

	// Set up HTTP router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	handler := api.NewHandler(trips, stops, movements, activities, share, log, m)
	handler.Register(router)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "Healthy")
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	if err := mongoClient.Disconnect(context.Background()); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Itinerary Service stopped")
}
