package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/roamly/places-api/internal/api"
	"github.com/roamly/places-api/internal/config"
	"github.com/roamly/places-api/internal/geocode"
	"github.com/roamly/places-api/internal/pkg/password"
	"github.com/roamly/places-api/internal/repository/postgres"
	"github.com/roamly/places-api/internal/service/place"
	"github.com/roamly/places-api/internal/service/user"

	_ "github.com/lib/pq" // PostgreSQL driver
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.LoadFromEnv(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Database.URL == "" {
		log.Fatal("Database URL is required (config database.url or DATABASE_URL)")
	}

	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.Lifetime())

	// The server does not start without a reachable database.
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := db.PingContext(pingCtx); err != nil {
		pingCancel()
		log.Fatalf("Database ping failed: %v", err)
	}
	pingCancel()
	log.Println("Database connected")

	schemaCtx, schemaCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := postgres.EnsureSchema(schemaCtx, db); err != nil {
		schemaCancel()
		log.Fatalf("Schema setup failed: %v", err)
	}
	schemaCancel()

	placeSvc := place.NewService(postgres.NewPlaceRepo(db), geocode.NewClient(cfg.Geocoder))
	userSvc := user.NewService(postgres.NewUserRepo(db), password.NewHasher(cfg.Auth.BcryptCost))

	server := api.NewServer(cfg.Server, cfg.CORS, placeSvc, userSvc, db)

	// Setup graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.GetHost(), cfg.Server.Port)
		log.Printf("Starting server on %s (origin %s)", addr, cfg.CORS.AllowedOrigin)
		if err := server.ListenAndServe(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-done
	log.Println("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}
