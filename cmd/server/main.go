package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/remi/logiprod-report/internal/api"
	"github.com/remi/logiprod-report/internal/api/render"
	"github.com/remi/logiprod-report/internal/config"
	"github.com/remi/logiprod-report/internal/repository/postgres"
	"github.com/remi/logiprod-report/internal/service"
	"github.com/remi/logiprod-report/internal/session"
)

func main() {
	// Local development keeps its settings in .env; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize database
	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Initialize repositories
	repos := postgres.NewRepositories(db)

	// Initialize services
	services := service.NewServices(repos)

	// Initialize session store and page renderer
	sessions, err := session.NewStore(cfg.SessionSecrets, cfg.IsProduction())
	if err != nil {
		log.Fatalf("failed to create session store: %v", err)
	}
	renderer, err := render.New()
	if err != nil {
		log.Fatalf("failed to parse templates: %v", err)
	}

	// Initialize router
	router := api.NewRouter(services, sessions, renderer)

	// Create server
	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
