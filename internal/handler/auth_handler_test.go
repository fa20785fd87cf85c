package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hrbot/internal/model"
	"hrbot/internal/service"
	"hrbot/pkg/apierror"

	"github.com/gin-gonic/gin"
)

type mockAuthService struct {
	loginFunc   func(ctx context.Context, req service.LoginRequest) (*model.Session, error)
	resolveFunc func(ctx context.Context, sessionID string) (*model.User, error)
	logoutFunc  func(ctx context.Context, sessionID string) error
}

func (m *mockAuthService) Login(ctx context.Context, req service.LoginRequest) (*model.Session, error) {
	return m.loginFunc(ctx, req)
}

func (m *mockAuthService) Resolve(ctx context.Context, sessionID string) (*model.User, error) {
	return m.resolveFunc(ctx, sessionID)
}

func (m *mockAuthService) Logout(ctx context.Context, sessionID string) error {
	return m.logoutFunc(ctx, sessionID)
}

func (m *mockAuthService) RunCleanupLoop(ctx context.Context) {}

func authRouter(svc service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewAuthHandler(svc).RegisterRoutes(router.Group("/bot/api"))
	return router
}

func TestCreateSession(t *testing.T) {
	svc := &mockAuthService{
		loginFunc: func(ctx context.Context, req service.LoginRequest) (*model.Session, error) {
			if req.Username == "ivanov" && req.Password == "secret1" {
				return &model.Session{ID: "abc123", UserID: 7, ExpiredAt: time.Now().Add(time.Hour)}, nil
			}
			return nil, apierror.Unauthorized("wrong username or password")
		},
	}
	router := authRouter(svc)

	t.Run("valid credentials", func(t *testing.T) {
		w := httptest.NewRecorder()
		body := `{"username":"ivanov","password":"secret1"}`
		router.ServeHTTP(w, httptest.NewRequest("POST", "/bot/api/auth/sessions", strings.NewReader(body)))

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var session model.Session
		if err := json.Unmarshal(w.Body.Bytes(), &session); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if session.ID != "abc123" {
			t.Fatalf("unexpected session id %q", session.ID)
		}
	})

	t.Run("wrong credentials get a detail body", func(t *testing.T) {
		w := httptest.NewRecorder()
		body := `{"username":"ivanov","password":"nope"}`
		router.ServeHTTP(w, httptest.NewRequest("POST", "/bot/api/auth/sessions", strings.NewReader(body)))

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		var detail apierror.Detail
		if err := json.Unmarshal(w.Body.Bytes(), &detail); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if detail.Detail != "wrong username or password" {
			t.Fatalf("unexpected detail %q", detail.Detail)
		}
	})

	t.Run("binding failure does not echo the password", func(t *testing.T) {
		w := httptest.NewRecorder()
		body := `{"username":"ivanov","password":""}`
		router.ServeHTTP(w, httptest.NewRequest("POST", "/bot/api/auth/sessions", strings.NewReader(body)))

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		if strings.Contains(w.Body.String(), "ivanov") {
			t.Fatal("response echoes the submitted credentials")
		}
	})
}

func TestGetSession(t *testing.T) {
	svc := &mockAuthService{
		resolveFunc: func(ctx context.Context, sessionID string) (*model.User, error) {
			if sessionID == "live" {
				return &model.User{ID: 7, Username: "ivanov", IsActive: true}, nil
			}
			return nil, apierror.Unauthorized("wrong username or password")
		},
	}
	router := authRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/bot/api/auth/sessions/live", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "password") {
		t.Fatal("user payload must not carry the password field")
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/bot/api/auth/sessions/stale", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestDeleteSession(t *testing.T) {
	svc := &mockAuthService{
		logoutFunc: func(ctx context.Context, sessionID string) error { return nil },
	}
	router := authRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("DELETE", "/bot/api/auth/sessions/whatever", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
