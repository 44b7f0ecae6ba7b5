package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"entraide/internal"
	"entraide/pkg/types"

	"github.com/lestrrat-go/jwx/v3/jwt"
	"github.com/sirupsen/logrus"
)

// Context key types to avoid collisions
type contextKey string

const contextKeySession contextKey = "session"

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (s *Service) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		s.logger.WithFields(logrus.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      rw.statusCode,
			"duration_ms": time.Since(started).Milliseconds(),
		}).Info("http request")
	})
}

// sessionFromRequest decrypts the access-token cookie and verifies the
// JWT against the identity provider's JWKS, returning the caller's
// session. Both auth middlewares share it.
func (s *Service) sessionFromRequest(r *http.Request) (*types.Session, error) {
	cookie, err := r.Cookie(internal.COOKIE_ACCESS_TOKEN_NAME)
	if err != nil {
		return nil, err
	}

	var accessToken string
	if err := s.cookie.Decode(internal.COOKIE_ACCESS_TOKEN_NAME, cookie.Value, &accessToken); err != nil {
		return nil, err
	}

	return s.sessionFromToken(r.Context(), accessToken)
}

func (s *Service) sessionFromToken(ctx context.Context, accessToken string) (*types.Session, error) {
	set, err := s.jwksCache.Lookup(ctx, s.jwksURL)
	if err != nil {
		return nil, err
	}

	token, err := jwt.Parse(
		[]byte(accessToken),
		jwt.WithKeySet(set),
		jwt.WithValidate(true),
	)
	if err != nil {
		return nil, err
	}

	userID, ok := token.Subject()
	if !ok || userID == "" {
		return nil, types.ErrUnauthenticated
	}

	session := &types.Session{UserID: userID}

	// email and name are private claims and optional
	var email string
	if err := token.Get("email", &email); err == nil {
		session.Email = email
	}

	var name string
	if err := token.Get("name", &name); err == nil {
		session.Name = name
	}

	return session, nil
}

// RequireAuth redirects anonymous callers to the login page, remembering
// where they were headed.
func (s *Service) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := r.Cookie(internal.COOKIE_ACCESS_TOKEN_NAME); err != nil {
			s.logger.WithError(err).Debug("no access token cookie found")

			s.setRedirectCookie(w, r.URL.Path, time.Minute*5)

			http.Redirect(w, r, "/login", http.StatusTemporaryRedirect)
			return
		}

		session, err := s.sessionFromRequest(r)
		if err != nil {
			s.logger.WithError(err).Error("failed to establish session from request")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		s.logger.WithFields(logrus.Fields{
			"user_id": session.UserID,
			"email":   session.Email,
		}).Debug("authenticated user")

		ctx := context.WithValue(r.Context(), contextKeySession, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithSession attaches a session when the caller presents a valid token
// but lets anonymous requests through untouched.
func (s *Service) WithSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := s.sessionFromRequest(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), contextKeySession, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Service) StripTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		// Only strip if path is not root and has trailing slash
		if path != "/" && strings.HasSuffix(path, "/") {
			newPath := strings.TrimSuffix(path, "/")
			newURL := *r.URL
			newURL.Path = newPath

			// Preserve query string
			http.Redirect(w, r, newURL.String(), http.StatusMovedPermanently)
			return
		}

		next.ServeHTTP(w, r)
	})
}
