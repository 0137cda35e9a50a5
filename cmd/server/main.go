package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cvnapi/internal/config"
	"cvnapi/internal/db"
	"cvnapi/internal/jobs"
	"cvnapi/internal/server"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// Open the data file
	database, err := db.New(ctx, cfg.DatabaseFile)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close()

	// Ensure the schema exists (skipped when the domain tables are
	// already there; a populated data file is never written to)
	if err := database.RunMigrations(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	srv := server.New(cfg)
	srv.RegisterRoutes(database)

	// Background freshness gauge
	jobCtx, cancelJobs := context.WithCancel(ctx)
	defer cancelJobs()
	watcher := jobs.NewFreshnessWatcher(database, 1*time.Minute)
	go watcher.Start(jobCtx)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancelJobs()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
