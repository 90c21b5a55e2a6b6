package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/kscius/aura-test/internal/server/api"
	"github.com/kscius/aura-test/internal/server/config"
	"github.com/kscius/aura-test/internal/server/crypto"
	"github.com/kscius/aura-test/internal/server/middleware"
	"github.com/kscius/aura-test/internal/server/models"
	"github.com/kscius/aura-test/internal/server/service"
	"github.com/kscius/aura-test/internal/server/service/mocks"
	serr "github.com/kscius/aura-test/internal/shared/errors"
	"github.com/kscius/aura-test/internal/shared/logger"
)

const testSigningKey = "0123456789abcdef0123456789abcdef"

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env = "prod" // 500-е не раскрывают подробностей
	cfg.Auth.Issuer = "aura-test"
	cfg.Auth.Audience = "aura-test"
	cfg.Auth.TokenTTL = time.Hour
	cfg.Auth.JWT.SigningKey = testSigningKey
	cfg.Password.Hasher = "bcrypt"
	cfg.Password.Bcrypt.Cost = 4
	return cfg
}

// newTestHandler собирает Handler поверх мока репозитория:
// сервисный слой настоящий, база подменена.
func newTestHandler(t *testing.T) (*api.Handler, *mocks.MockUsersRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUsersRepo(ctrl)

	cfg := testConfig()
	svc := service.NewServices(service.Repositories{Users: repo}, cfg)
	verifier := middleware.NewJWTVerifier(cfg.Auth.JWT.SigningKey, cfg.Auth.Issuer, cfg.Auth.Audience)
	log := &logger.HTTPLogger{Logger: zap.NewNop()}

	return api.NewHandler(svc, log, verifier, false), repo
}

func bcryptHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := crypto.HashPassword(password, crypto.PasswordParams{Hasher: "bcrypt", BcryptCost: 4})
	if err != nil {
		t.Fatal(err)
	}
	return hash
}

func decodeSuccess(t *testing.T, body *bytes.Buffer) api.SuccessResponse {
	t.Helper()
	var resp api.SuccessResponse
	if err := json.Unmarshal(body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v; body: %s", err, body.String())
	}
	return resp
}

func decodeError(t *testing.T, body *bytes.Buffer) api.ErrorResponse {
	t.Helper()
	var resp api.ErrorResponse
	if err := json.Unmarshal(body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v; body: %s", err, body.String())
	}
	return resp
}

func TestRegisterHandler(t *testing.T) {
	h, repo := newTestHandler(t)

	repo.EXPECT().
		GetByEmail(gomock.Any(), "user@example.com").
		Return(models.User{}, serr.ErrNotFound)
	repo.EXPECT().
		Create(gomock.Any(), "user@example.com", "Ivan", "Petrov", gomock.Any()).
		DoAndReturn(func(_ any, email, firstName, lastName, hash string) (models.User, error) {
			return models.User{ID: 1, Email: email, FirstName: firstName, LastName: lastName, PasswordHash: hash}, nil
		})

	body := `{"email":"user@example.com","firstName":"Ivan","lastName":"Petrov","password":"secret1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Register(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	// хэш пароля не должен попадать в JSON ни под каким именем
	if strings.Contains(w.Body.String(), "passwordHash") || strings.Contains(w.Body.String(), "password_hash") {
		t.Fatalf("response leaks password hash: %s", w.Body.String())
	}

	resp := decodeSuccess(t, w.Body)
	if resp.Message != "User registered successfully" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
	data, ok := resp.Data.(map[string]any)
	if !ok {
		t.Fatalf("unexpected data: %#v", resp.Data)
	}
	if token, _ := data["token"].(string); token == "" {
		t.Error("expected non-empty token")
	}
	user, _ := data["user"].(map[string]any)
	if user["email"] != "user@example.com" || user["firstName"] != "Ivan" {
		t.Errorf("unexpected user payload: %#v", user)
	}
}

func TestRegisterHandler_BadJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	h.Register(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	resp := decodeError(t, w.Body)
	if resp.Error != "BadRequestError" || resp.Message != "Invalid JSON body" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestRegisterHandler_ValidationDetails(t *testing.T) {
	h, _ := newTestHandler(t)

	body := `{"email":"bad","firstName":"","lastName":"Petrov","password":"123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Register(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	resp := decodeError(t, w.Body)
	if resp.Error != "ValidationError" || resp.Message != "Validation failed" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	details, ok := resp.Details.([]any)
	if !ok || len(details) != 3 {
		t.Fatalf("expected 3 issues in details, got %#v", resp.Details)
	}
}

func TestRegisterHandler_EmailTaken(t *testing.T) {
	h, repo := newTestHandler(t)

	repo.EXPECT().
		GetByEmail(gomock.Any(), "user@example.com").
		Return(models.User{ID: 1, Email: "user@example.com"}, nil)

	body := `{"email":"user@example.com","firstName":"Ivan","lastName":"Petrov","password":"secret1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Register(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	resp := decodeError(t, w.Body)
	if resp.Error != "BadRequestError" || resp.Message != "Email already in use" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestLoginHandler(t *testing.T) {
	h, repo := newTestHandler(t)

	repo.EXPECT().
		GetByEmail(gomock.Any(), "user@example.com").
		Return(models.User{ID: 3, Email: "user@example.com", PasswordHash: bcryptHash(t, "secret1")}, nil)

	body := `{"email":"user@example.com","password":"secret1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Login(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := decodeSuccess(t, w.Body)
	if resp.Message != "Login successful" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

// Ответ на логин с несуществующим email и с неверным паролем
// должен совпадать побайтово: ни статус, ни тело не раскрывают,
// зарегистрирован ли email.
func TestLoginHandler_UniformFailureBody(t *testing.T) {
	hash := bcryptHash(t, "secret1")

	h1, repo1 := newTestHandler(t)
	repo1.EXPECT().
		GetByEmail(gomock.Any(), "ghost@example.com").
		Return(models.User{}, serr.ErrNotFound)
	req1 := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"ghost@example.com","password":"secret1"}`))
	w1 := httptest.NewRecorder()
	h1.Login(w1, req1)

	h2, repo2 := newTestHandler(t)
	repo2.EXPECT().
		GetByEmail(gomock.Any(), "user@example.com").
		Return(models.User{ID: 3, Email: "user@example.com", PasswordHash: hash}, nil)
	req2 := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"user@example.com","password":"wrongpass"}`))
	w2 := httptest.NewRecorder()
	h2.Login(w2, req2)

	if w1.Code != http.StatusUnauthorized || w2.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", w1.Code, w2.Code)
	}
	if !bytes.Equal(w1.Body.Bytes(), w2.Body.Bytes()) {
		t.Fatalf("failure bodies differ:\n%s\n%s", w1.Body.String(), w2.Body.String())
	}
	resp := decodeError(t, w1.Body)
	if resp.Error != "UnauthorizedError" || resp.Message != "Invalid email or password" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}
