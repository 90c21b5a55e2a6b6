package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kscius/aura-test/internal/server/validation"
	serr "github.com/kscius/aura-test/internal/shared/errors"
)

// SuccessResponse — единый envelope успешного ответа: {message, data}.
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ErrorResponse — единый envelope ошибки: {error, message, details}.
//
// Error — стабильный дискриминатор вида ошибки (ValidationError,
// BadRequestError, UnauthorizedError, NotFoundError, InternalServerError).
// Details заполняется только для ошибок валидации (список замечаний
// по полям), в остальных случаях — пустой объект.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details any    `json:"details"`
}

// WriteSuccess пишет успешный JSON-ответ в едином envelope.
func WriteSuccess(w http.ResponseWriter, status int, message string, data any) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(SuccessResponse{Message: message, Data: data})
}

// WriteValidationError пишет 400 с видом ValidationError и списком
// замечаний по полям в details.
func WriteValidationError(w http.ResponseWriter, issues []validation.Issue) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:   "ValidationError",
		Message: "Validation failed",
		Details: issues,
	})
}

// WriteError — единая воронка нормализации ошибок.
//
// Любая ошибка сервисного слоя маппится на стабильный вид и HTTP-статус:
//
//	ErrBadJSON / ErrEmailTaken            -> 400 BadRequestError
//	ErrInvalidCredentials / токены        -> 401 UnauthorizedError
//	ErrNotFound                           -> 404 NotFoundError
//	всё остальное                         -> 500 InternalServerError
//
// Текст 500-й ошибки наружу не отдаётся вне dev-режима.
func (h *Handler) WriteError(w http.ResponseWriter, err error) {
	status, kind := classify(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		h.Log.Sugar().Errorf("internal error: %v", err)
		if !h.Dev {
			message = serr.ErrInternal.Error()
		}
	}

	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:   kind,
		Message: message,
		Details: struct{}{},
	})
}

// classify определяет HTTP-статус и вид ошибки по доменной ошибке.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, serr.ErrBadJSON), errors.Is(err, serr.ErrEmailTaken):
		return http.StatusBadRequest, "BadRequestError"
	case errors.Is(err, serr.ErrInvalidCredentials),
		errors.Is(err, serr.ErrNoToken),
		errors.Is(err, serr.ErrInvalidToken):
		return http.StatusUnauthorized, "UnauthorizedError"
	case errors.Is(err, serr.ErrNotFound):
		return http.StatusNotFound, "NotFoundError"
	default:
		return http.StatusInternalServerError, "InternalServerError"
	}
}
