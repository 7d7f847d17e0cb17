package main

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ashisht1812/Fotush-Web/internal/config"
	"github.com/ashisht1812/Fotush-Web/internal/content"
	"github.com/ashisht1812/Fotush-Web/internal/database"
	"github.com/ashisht1812/Fotush-Web/server"
)

var (
	version = "dev"
)

//go:embed static/*
var staticFiles embed.FS

func main() {

	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Println(server.FormatBuildVersion(version))
		return
	}

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Errorf("failed to load config: %w", err))
	}

	site := content.Site()
	if err := content.Validate(site); err != nil {
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var db database.Database
	if cfg.UsePostgres() {
		db, err = database.NewDatabase(ctx, cfg.DatabaseURL, cfg.SessionTTL, len(site.Testimonials))
		if err != nil {
			panic(fmt.Errorf("failed to initialize database: %w", err))
		}
		slog.Info("Using PostgreSQL visitor store")
	} else {
		db = database.NewMemory(cfg.SessionTTL, len(site.Testimonials))
		slog.Info("Using in-memory visitor store")
	}
	defer db.Close()

	srv := server.NewServer(version, cfg, http.FS(staticFiles), site, db)

	purgeCtx, stopPurge := context.WithCancel(context.Background())
	defer stopPurge()
	go srv.PurgeLoop(purgeCtx, cfg.PurgeInterval)

	go srv.Start()

	slog.Info("Started server", slog.String("listen_addr", ":"+cfg.Port), slog.String("version", version))
	si := make(chan os.Signal, 1)
	signal.Notify(si, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-si
	slog.Info("Shutting down server")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Failed to shut down server", "error", err)
	}
}
