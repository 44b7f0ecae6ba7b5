package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"entraide/internal"
	"entraide/pkg/types"

	"github.com/gorilla/securecookie"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return &Service{
		logger: logger,
		config: &types.Config{},
		cookie: securecookie.New(
			securecookie.GenerateRandomKey(32),
			securecookie.GenerateRandomKey(32),
		),
	}
}

func TestRequireAuthRedirectsAnonymous(t *testing.T) {
	s := newTestService(t)

	called := false
	handler := s.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/mon-espace", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.False(t, called, "protected handler must not run")
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	// The original destination is remembered for after login.
	var redirectCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == internal.COOKIE_REDIRECT_NAME {
			redirectCookie = c
		}
	}
	require.NotNil(t, redirectCookie)
	assert.Equal(t, "/mon-espace", redirectCookie.Value)
}

func TestRequireAuthRejectsGarbageCookie(t *testing.T) {
	s := newTestService(t)

	handler := s.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("protected handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/proposer-un-besoin", nil)
	req.AddCookie(&http.Cookie{Name: internal.COOKIE_ACCESS_TOKEN_NAME, Value: "not-a-real-token"})
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestWithSessionPassesAnonymousThrough(t *testing.T) {
	s := newTestService(t)

	var sawSession bool
	handler := s.WithSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawSession = r.Context().Value(contextKeySession).(*types.Session)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, sawSession, "anonymous request carries no session")
}

func TestStripTrailingSlash(t *testing.T) {
	s := newTestService(t)

	handler := s.StripTrailingSlash(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/mon-espace/?notice=ok", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/mon-espace?notice=ok", rec.Header().Get("Location"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code, "root path is left alone")
}

func TestLoadTemplates(t *testing.T) {
	templates, err := loadTemplates()
	require.NoError(t, err)

	for _, name := range []string{
		"page.home",
		"page.login",
		"page.register",
		"page.register.confirm",
		"page.propose",
		"page.espace",
	} {
		assert.NotNil(t, templates.Lookup(name), "template %q", name)
	}
}
