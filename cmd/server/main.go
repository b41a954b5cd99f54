// Package main initializes and starts the Lookate API server, setting up
// configuration, logging, the database connection, repositories, services,
// handlers and routing.
package main

import (
	"cmp"
	"fmt"

	nethttp "net/http"

	"go.uber.org/zap"

	"github.com/lookate/backend/internal/ai"
	"github.com/lookate/backend/internal/config"
	"github.com/lookate/backend/internal/db"
	"github.com/lookate/backend/internal/geocode"
	"github.com/lookate/backend/internal/logger"
	"github.com/lookate/backend/internal/repository"
	"github.com/lookate/backend/internal/server/handler/http"
	"github.com/lookate/backend/internal/service"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	if options.JWTSecret == "" {
		zapLogger.Fatal("JWT_SECRET must be set")
	}

	// Initialize PostgreSQL connection and schema.
	database, err := db.InitPostgres(options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}
	defer func() { _ = database.Close() }()

	// External service clients.
	maps := geocode.New(options.MapsKey, options.GeocodeTimeout, zapLogger)
	completer := ai.New(options.OpenAIKey)

	// Initialize repositories.
	userRepo := repository.NewPostgresUserRepository(database)
	taskRepo := repository.NewPostgresTaskRepository(database)
	searchRepo := repository.NewPostgresSearchRepository(database)
	chatRepo := repository.NewPostgresChatRepository(database)

	// Initialize business-logic services.
	secret := []byte(options.JWTSecret)
	authService := service.NewAuthService(userRepo, secret)
	taskService := service.NewTaskService(taskRepo, maps, zapLogger)
	profileService := service.NewProfileService(userRepo, taskRepo, searchRepo)
	searchService := service.NewSearchService(searchRepo, completer)
	chatService := service.NewChatService(chatRepo, completer)

	// Create HTTP handlers.
	authHandler := &http.AuthHandler{AuthService: authService}
	taskHandler := &http.TaskHandler{TaskService: taskService}
	profileHandler := &http.ProfileHandler{ProfileService: profileService}
	searchHandler := &http.SearchHandler{SearchService: searchService}
	chatHandler := &http.ChatHandler{ChatService: chatService}
	locationsHandler := &http.LocationsHandler{PlacesService: maps}

	// Build the router with middleware and routes.
	router := http.NewRouter(
		authHandler, taskHandler, profileHandler,
		searchHandler, chatHandler, locationsHandler,
		secret, zapLogger,
	)

	server := &nethttp.Server{
		Addr:    options.Addr,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", options.Addr))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
