package server

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
)

const visitorCookie = "fotush_visitor"

type visitorKey struct{}

func (s *Server) createVisitor() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		panic("failed to generate visitor token: " + err.Error())
	}
	return hex.EncodeToString(bytes)
}

func validVisitor(token string) bool {
	if len(token) != 64 {
		return false
	}
	_, err := hex.DecodeString(token)
	return err == nil
}

func (s *Server) getVisitorFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(visitorCookie)
	if err != nil || !validVisitor(cookie.Value) {
		return ""
	}
	return cookie.Value
}

// RequireVisitor makes sure every request carries a visitor token, issuing a
// new one when the cookie is missing or malformed. The cookie lifetime is
// renewed on every request.
func (s *Server) RequireVisitor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := s.getVisitorFromRequest(r)
		if token == "" {
			token = s.createVisitor()
		}

		http.SetCookie(w, &http.Cookie{
			Name:     visitorCookie,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			MaxAge:   int(s.cfg.SessionTTL.Seconds()),
			SameSite: http.SameSiteLaxMode,
		})

		ctx := context.WithValue(r.Context(), visitorKey{}, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func visitorFromContext(ctx context.Context) string {
	token, _ := ctx.Value(visitorKey{}).(string)
	return token
}
