package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/ashisht1812/Fotush-Web/internal/routepath"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.cfg.RequestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(httprate.LimitByIP(s.cfg.RateLimit, time.Minute))
	r.Use(middleware.Heartbeat(routepath.Health))
	r.Use(s.cacheControl)

	r.Mount(routepath.Static, http.FileServer(s.assets))

	r.Handle(routepath.Robots, s.serveFile("static/robots.txt", "text/plain; charset=utf-8"))
	r.Handle(routepath.Favicon, s.serveFile("static/favicon.svg", "image/svg+xml"))

	r.Group(func(r chi.Router) {
		r.Use(s.RequireVisitor)

		r.Get(routepath.Root, s.HandleIndex)

		r.Route(routepath.UIPrefix, func(r chi.Router) {
			r.Use(limitForm)
			r.Post("/menu", s.HandleToggleMenu)
			r.Post("/location", s.HandleBindLocation)
			r.Post("/testimonials/next", s.HandleNextTestimonial)
			r.Post("/testimonials/prev", s.HandlePrevTestimonial)
			r.Post("/testimonials/jump", s.HandleJumpTestimonial)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, routepath.Root, http.StatusMovedPermanently)
	})

	return r
}
