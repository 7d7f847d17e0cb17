package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime"
	"time"

	"github.com/ashisht1812/Fotush-Web/internal/components"
	"github.com/ashisht1812/Fotush-Web/internal/config"
	"github.com/ashisht1812/Fotush-Web/internal/database"
	"github.com/ashisht1812/Fotush-Web/internal/models"
)

type Server struct {
	version string
	cfg     config.Config
	server  *http.Server
	assets  http.FileSystem
	site    models.Site
	db      database.Database
	now     func() time.Time
}

func NewServer(version string, cfg config.Config, assets http.FileSystem, site models.Site, db database.Database) *Server {

	s := &Server{
		version: version,
		cfg:     cfg,
		assets:  assets,
		site:    site,
		db:      db,
		now:     time.Now,
	}

	s.server = &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

func (s *Server) Start() {
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) Close() {
	if err := s.server.Close(); err != nil {
		panic(err)
	}
}

// PurgeLoop drops expired visitor state every interval until ctx is done.
func (s *Server) PurgeLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.db.PurgeExpired(ctx)
			if err != nil {
				slog.Error("Failed to purge visitor state", "error", err)
				continue
			}
			if n > 0 {
				slog.Debug("Purged visitor state", slog.Int("visitors", n))
			}
		}
	}
}

func (s *Server) pageConfig() components.PageConfig {
	return components.PageConfig{
		Title:         s.site.Brand + " – Book a Photographer Instantly",
		Description:   s.site.Hero.Subheadline,
		HTMXScriptURL: s.cfg.HTMXScriptURL,
		Year:          s.now().Year(),
	}
}

func FormatBuildVersion(version string) string {
	return fmt.Sprintf("Go Version: %s\nVersion: %s\nOS/Arch: %s/%s", runtime.Version(), version, runtime.GOOS, runtime.GOARCH)
}
