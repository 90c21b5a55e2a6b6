// HTTP-хендлеры регистрации и логина
package api

import (
	"encoding/json"
	"net/http"

	"github.com/kscius/aura-test/internal/server/models"
	"github.com/kscius/aura-test/internal/server/validation"
	serr "github.com/kscius/aura-test/internal/shared/errors"
)

// RegisterRequest описывает тело запроса регистрации пользователя.
type RegisterRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
}

// LoginRequest описывает тело запроса входа пользователя.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthData — полезная нагрузка успешной регистрации/логина:
// access-токен и пользователь без password hash.
type AuthData struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Register обрабатывает регистрацию пользователя.
//
// Ответы:
//   - 201 Created: регистрация успешна, в data токен и пользователь;
//   - 400 Bad Request: неверный JSON, ошибки валидации или занятый email;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Register user
// @Description  Creates a new user account and returns a JWT with the user profile.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Register request"
// @Success      201 {object} SuccessResponse
// @Failure      400 {object} ErrorResponse "Invalid input or email already in use"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, serr.ErrBadJSON)
		return
	}

	if issues := validation.ValidateRegister(req.Email, req.FirstName, req.LastName, req.Password); len(issues) > 0 {
		WriteValidationError(w, issues)
		return
	}

	token, user, err := h.Svc.Auth.Register(r.Context(), req.Email, req.FirstName, req.LastName, req.Password)
	if err != nil {
		h.WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, "User registered successfully", AuthData{
		Token: token,
		User:  user,
	})
}

// Login обрабатывает вход пользователя и выдачу токена.
//
// Ответы:
//   - 200 OK: успешный вход;
//   - 400 Bad Request: неверный JSON или ошибки валидации;
//   - 401 Unauthorized: неверные учётные данные (ответ одинаков для
//     несуществующего email и неверного пароля);
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Login user
// @Description  Authenticates a user and returns a JWT with the user profile.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login request"
// @Success      200 {object} SuccessResponse
// @Failure      400 {object} ErrorResponse "Invalid input"
// @Failure      401 {object} ErrorResponse "Invalid credentials"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, serr.ErrBadJSON)
		return
	}

	if issues := validation.ValidateLogin(req.Email, req.Password); len(issues) > 0 {
		WriteValidationError(w, issues)
		return
	}

	token, user, err := h.Svc.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, "Login successful", AuthData{
		Token: token,
		User:  user,
	})
}
