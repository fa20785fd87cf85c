package admin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"hrbot/internal/apiclient"
	"hrbot/internal/model"

	"github.com/gin-gonic/gin"
)

// fakeBackend serves just enough of the REST API for the panel handlers.
func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()

	admin := model.User{
		ID:       1,
		Username: "admin",
		IsActive: true,
		Role: &model.Role{
			ID: 1, Name: "admin",
			CanEditSettings: true, CanEditUsers: true, CanSendMessages: true, CanEditMenu: true,
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/sessions", func(w http.ResponseWriter, r *http.Request) {
		var req struct{ Username, Password string }
		json.NewDecoder(r.Body).Decode(&req)
		if req.Username != "admin" || req.Password != "secret1" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "wrong username or password"})
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(model.Session{ID: "live-session", UserID: admin.ID, ExpiredAt: time.Now().Add(time.Hour)})
	})
	mux.HandleFunc("GET /auth/sessions/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "live-session" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "wrong username or password"})
			return
		}
		json.NewEncoder(w).Encode(admin)
	})
	mux.HandleFunc("DELETE /auth/sessions/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /settings", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]model.Setting{
			{ID: 1, Name: "INITIAL_GREETING", Value: "Hello!", Description: "Shown on /start"},
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return NewServer(apiclient.New(fakeBackend(t).URL))
}

func TestSettingsPageRequiresLogin(t *testing.T) {
	server := newTestServer(t)

	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/settings", nil))

	if w.Code != http.StatusFound {
		t.Fatalf("expected a redirect, got %d", w.Code)
	}
	if location := w.Header().Get("Location"); location != "/login" {
		t.Fatalf("expected redirect to /login, got %q", location)
	}
}

func TestLoginFlow(t *testing.T) {
	server := newTestServer(t)

	form := url.Values{"username": {"admin"}, "password": {"secret1"}}
	req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected a redirect after login, got %d: %s", w.Code, w.Body.String())
	}

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == sessionCookie {
			cookie = c
		}
	}
	if cookie == nil || cookie.Value != "live-session" {
		t.Fatalf("session cookie not set: %+v", w.Result().Cookies())
	}

	// The cookie now opens the settings page.
	req = httptest.NewRequest("GET", "/settings", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "INITIAL_GREETING") {
		t.Fatal("settings page does not show the fetched settings")
	}
}

func TestLoginRejectsWrongCredentials(t *testing.T) {
	server := newTestServer(t)

	form := url.Values{"username": {"admin"}, "password": {"nope"}}
	req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "wrong username or password") {
		t.Fatal("login page does not surface the backend error")
	}
}

func TestLogoutClearsTheCookie(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest("GET", "/logout", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "live-session"})
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected a redirect, got %d", w.Code)
	}
	for _, c := range w.Result().Cookies() {
		if c.Name == sessionCookie && c.MaxAge >= 0 {
			t.Fatalf("cookie not expired: %+v", c)
		}
	}
}
