package server

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"

	"github.com/ashisht1812/Fotush-Web/internal/components"
	"github.com/ashisht1812/Fotush-Web/internal/routepath"
	"github.com/ashisht1812/Fotush-Web/internal/ui"
)

const maxFormBytes = 4 << 10

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

func (s *Server) render(w http.ResponseWriter, status int, n g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := n.Render(w); err != nil {
		slog.Error("Failed to render page", "error", err)
	}
}

func (s *Server) renderError(w http.ResponseWriter, status int) {
	s.render(w, status, components.ErrorPage(s.pageConfig(), status))
}

// update applies fn to the visitor's state and writes the error page itself
// when that fails. The returned state is the one fn produced.
func (s *Server) update(w http.ResponseWriter, r *http.Request, fn func(*ui.State) error) (ui.State, bool) {
	st, err := s.db.UpdateVisitor(r.Context(), visitorFromContext(r.Context()), fn)
	switch {
	case err == nil:
		return st, true
	case errors.Is(err, ui.ErrCursorOutOfRange):
		s.renderError(w, http.StatusBadRequest)
	default:
		slog.Error("Failed to update visitor state", "error", err)
		s.renderError(w, http.StatusInternalServerError)
	}
	return ui.State{}, false
}

func (s *Server) HandleIndex(w http.ResponseWriter, r *http.Request) {
	st, err := s.db.GetVisitor(r.Context(), visitorFromContext(r.Context()))
	if err != nil {
		slog.Error("Failed to load visitor state", "error", err)
		s.renderError(w, http.StatusInternalServerError)
		return
	}

	s.render(w, http.StatusOK, components.Page(s.pageConfig(), s.site, st))
}

func (s *Server) HandleToggleMenu(w http.ResponseWriter, r *http.Request) {
	st, ok := s.update(w, r, func(st *ui.State) error {
		st.Menu.Toggle()
		return nil
	})
	if !ok {
		return
	}

	if isHTMX(r) {
		s.render(w, http.StatusOK, components.Header(s.site, st.Menu))
		return
	}
	http.Redirect(w, r, routepath.Root, http.StatusSeeOther)
}

func (s *Server) HandleBindLocation(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.renderError(w, http.StatusBadRequest)
		return
	}
	value := r.PostForm.Get("location")

	if _, ok := s.update(w, r, func(st *ui.State) error {
		st.Location.Bind(value)
		return nil
	}); !ok {
		return
	}

	if isHTMX(r) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, routepath.Anchored(routepath.AnchorHero), http.StatusSeeOther)
}

func (s *Server) HandleNextTestimonial(w http.ResponseWriter, r *http.Request) {
	s.moveCarousel(w, r, func(c *ui.Carousel) error {
		c.Advance()
		return nil
	})
}

func (s *Server) HandlePrevTestimonial(w http.ResponseWriter, r *http.Request) {
	s.moveCarousel(w, r, func(c *ui.Carousel) error {
		c.Retreat()
		return nil
	})
}

func (s *Server) HandleJumpTestimonial(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.renderError(w, http.StatusBadRequest)
		return
	}
	index, err := strconv.Atoi(r.PostForm.Get("index"))
	if err != nil {
		s.renderError(w, http.StatusBadRequest)
		return
	}

	s.moveCarousel(w, r, func(c *ui.Carousel) error {
		if !c.JumpTo(index) {
			return ui.ErrCursorOutOfRange
		}
		return nil
	})
}

func (s *Server) moveCarousel(w http.ResponseWriter, r *http.Request, move func(*ui.Carousel) error) {
	st, ok := s.update(w, r, func(st *ui.State) error {
		return move(&st.Carousel)
	})
	if !ok {
		return
	}

	if isHTMX(r) {
		s.render(w, http.StatusOK, components.Carousel(s.site.Testimonials, st.Carousel))
		return
	}
	http.Redirect(w, r, routepath.Anchored(routepath.AnchorTestimonials), http.StatusSeeOther)
}

func (s *Server) serveFile(path, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, err := s.assets.Open(path)
		if err != nil {
			http.Error(w, "File not found", http.StatusNotFound)
			return
		}
		defer func() { _ = file.Close() }()
		w.Header().Set("Content-Type", contentType)
		_, _ = io.Copy(w, file)
	}
}

func (s *Server) cacheControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, routepath.Static+"/") {
			w.Header().Set("Cache-Control", "public, max-age=86400")
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		next.ServeHTTP(w, r)
	})
}

// limitForm caps the size of posted form bodies.
func limitForm(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
		next.ServeHTTP(w, r)
	})
}
