// HTTP-хендлеры профиля и списка пользователей
package api

import (
	"encoding/json"
	"net/http"

	"github.com/kscius/aura-test/internal/server/middleware"
	"github.com/kscius/aura-test/internal/server/models"
	"github.com/kscius/aura-test/internal/server/validation"
	serr "github.com/kscius/aura-test/internal/shared/errors"
)

// UpdateProfileRequest — тело запроса частичного обновления профиля.
// Поля-указатели: отсутствующее поле не трогается, не очищается.
type UpdateProfileRequest struct {
	Email     *string `json:"email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

// GetProfile возвращает профиль аутентифицированного пользователя.
//
// Требует JWT-аутентификацию.
//
// @Summary      Get profile
// @Description  Returns the authenticated user's profile.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} SuccessResponse
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      404 {object} ErrorResponse "User not found"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/users/profile [get]
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.WriteError(w, serr.ErrNoToken)
		return
	}

	user, err := h.Svc.Users.GetProfile(r.Context(), identity.UserID)
	if err != nil {
		h.WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, "Profile retrieved successfully", user)
}

// UpdateProfile применяет частичное обновление профиля
// аутентифицированного пользователя.
//
// Требует JWT-аутентификацию.
//
// @Summary      Update profile
// @Description  Partially updates the authenticated user's profile.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body UpdateProfileRequest true "Profile patch"
// @Success      200 {object} SuccessResponse
// @Failure      400 {object} ErrorResponse "Invalid input, empty patch or email already in use"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      404 {object} ErrorResponse "User not found"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/users/profile [put]
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.WriteError(w, serr.ErrNoToken)
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, serr.ErrBadJSON)
		return
	}

	issues := validation.ValidateProfilePatch(validation.ProfilePatchInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if len(issues) > 0 {
		WriteValidationError(w, issues)
		return
	}

	user, err := h.Svc.Users.UpdateProfile(r.Context(), identity.UserID, models.ProfilePatch{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		h.WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, "Profile updated successfully", user)
}

// ListUsers возвращает список всех пользователей, новые первыми.
//
// Требует JWT-аутентификацию.
//
// @Summary      List users
// @Description  Returns all users ordered by creation date, newest first.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} SuccessResponse
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/users [get]
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Svc.Users.ListUsers(r.Context())
	if err != nil {
		h.WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, "Users retrieved successfully", users)
}
