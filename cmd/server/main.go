package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/cesargomez89/songbox/internal/app"
	"github.com/cesargomez89/songbox/internal/config"
	"github.com/cesargomez89/songbox/internal/constants"
	httpapp "github.com/cesargomez89/songbox/internal/http"
	"github.com/cesargomez89/songbox/internal/logger"
	"github.com/cesargomez89/songbox/internal/store"
	"github.com/cesargomez89/songbox/internal/uploads"
)

func main() {
	cfg := config.Load()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		appLogger.Error("Failed to init DB", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	uploadStore, err := uploads.NewStore(cfg.UploadsDir)
	if err != nil {
		appLogger.Error("Failed to init uploads dir", "error", err)
		os.Exit(1)
	}

	songService := app.NewSongService(db, uploadStore, appLogger.WithComponent("songs"))
	authService := app.NewAuthService(db, appLogger.WithComponent("auth"))

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.AllowedOrigin},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// Serve uploaded covers read-only from the content directory
	fileServer := http.FileServer(http.Dir(cfg.UploadsDir))
	r.Handle(constants.CoverURLPrefix+"/*", http.StripPrefix(constants.CoverURLPrefix+"/", fileServer))

	h := httpapp.NewHandler(songService, authService, appLogger.WithComponent("http"))
	h.RegisterRoutes(r)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  constants.ReadTimeout,
		WriteTimeout: constants.WriteTimeout,
	}

	go func() {
		appLogger.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown: stop accepting connections, drain in-flight
	// requests, then close the pool via the deferred db.Close.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	appLogger.Info("Server exiting")
}
