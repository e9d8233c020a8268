package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kpireport/config"
	"kpireport/database"
	"kpireport/handlers"
	"kpireport/logger"
	"kpireport/middlewares"
	repository "kpireport/repositories"
	routes "kpireport/routes"
	services "kpireport/services"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration:", err)
	}

	appLog, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer appLog.Sync()

	// Create a new client and connect to the server
	clientOptions := options.Client().ApplyURI(cfg.MongoURI)
	client, err := mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		appLog.Fatal("Failed to connect to MongoDB", "error", err)
	}
	defer func() {
		if err = client.Disconnect(context.TODO()); err != nil {
			appLog.Error("Failed to disconnect from MongoDB", "error", err)
		}
	}()

	// Set a timeout for the ping operation
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx, nil); err != nil {
		appLog.Fatal("Failed to ping MongoDB", "error", err)
	}
	appLog.Info("Connected to MongoDB", "database", cfg.DatabaseName)

	db := client.Database(cfg.DatabaseName)

	if err := database.CreateIndexes(db); err != nil {
		appLog.Warn("Failed to create indexes", "error", err)
	}

	// Initialize repositories, services, and the handler
	catalogRepo := repository.NewCatalogRepository(db)
	updateRepo := repository.NewUpdateRepository(db)

	catalogService := services.NewCatalogService(catalogRepo)
	submissionService := services.NewSubmissionService(catalogRepo, updateRepo, appLog)
	reviewService := services.NewReviewService(updateRepo, cfg.AllowRereview, appLog)
	statsService := services.NewStatsService(updateRepo)

	kpiHandler := handlers.NewKPIHandler(catalogService, submissionService, reviewService, statsService, cfg.RequestTimeout)

	var auth middlewares.Authenticator
	if cfg.AuthMode == config.AuthModeJWT {
		auth = middlewares.NewJWTAuthenticator(cfg.Secret)
	} else {
		auth = middlewares.NewStaticTokenAuthenticator(cfg.Secret)
	}

	handler := routes.SetupRoutes(kpiHandler, auth, cfg.AllowedOrigins, appLog)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		appLog.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal("Server failed", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	appLog.Info("Shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLog.Error("Graceful shutdown failed", "error", err)
	}
}
