package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/kscius/aura-test/internal/server/api"
	"github.com/kscius/aura-test/internal/server/config"
	"github.com/kscius/aura-test/internal/server/models"
	serr "github.com/kscius/aura-test/internal/shared/errors"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	h, _ := newTestHandler(t)
	return api.NewRouter(h, config.CORSConfig{AllowedOrigins: []string{"*"}, MaxAge: 300})
}

func TestRouter_RegisterThenProfile(t *testing.T) {
	h, repo := newTestHandler(t)
	router := api.NewRouter(h, config.CORSConfig{AllowedOrigins: []string{"*"}})

	repo.EXPECT().
		GetByEmail(gomock.Any(), "user@example.com").
		Return(models.User{}, serr.ErrNotFound)
	repo.EXPECT().
		Create(gomock.Any(), "user@example.com", "Ivan", "Petrov", gomock.Any()).
		Return(models.User{ID: 1, Email: "user@example.com", FirstName: "Ivan", LastName: "Petrov"}, nil)

	body := `{"email":"user@example.com","firstName":"Ivan","lastName":"Petrov","password":"secret1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var reg struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &reg); err != nil {
		t.Fatal(err)
	}
	if reg.Data.Token == "" {
		t.Fatal("register: empty token")
	}

	// токен из регистрации проходит через auth middleware
	repo.EXPECT().
		GetByID(gomock.Any(), int64(1)).
		Return(models.User{ID: 1, Email: "user@example.com", FirstName: "Ivan", LastName: "Petrov"}, nil)

	req = httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
	req.Header.Set("Authorization", "Bearer "+reg.Data.Token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("profile: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := decodeSuccess(t, w.Body)
	if resp.Message != "Profile retrieved successfully" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestRouter_ProtectedWithoutToken(t *testing.T) {
	router := newTestRouter(t)

	for _, tc := range []struct {
		method, path string
	}{
		{http.MethodGet, "/api/users"},
		{http.MethodGet, "/api/users/profile"},
		{http.MethodPut, "/api/users/profile"},
	} {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401, got %d", tc.method, tc.path, w.Code)
			continue
		}
		resp := decodeError(t, w.Body)
		if resp.Error != "UnauthorizedError" || resp.Message != "No token provided" {
			t.Errorf("%s %s: unexpected envelope: %+v", tc.method, tc.path, resp)
		}
	}
}

func TestRouter_ProtectedWithBadToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	resp := decodeError(t, w.Body)
	if resp.Error != "UnauthorizedError" || resp.Message != "Invalid or expired token" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	resp := decodeError(t, w.Body)
	if resp.Error != "NotFoundError" || resp.Message != "Route not found" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp api.HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != "ok" || resp.Message != "AURA API is running" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
