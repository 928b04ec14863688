package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Tushar123097/Home-rent-app/internal/core/domain"
	"github.com/Tushar123097/Home-rent-app/internal/core/port"
)

// WriteJSONError отправляет JSON-ответ с полем "error" и заданным статусом.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// RespondWithJSON отправляет JSON-ответ.
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// statusForError сопоставляет ошибку use case с HTTP-статусом.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotAuthenticated),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrTokenInvalid):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrPropertyNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrEmailInUse),
		errors.Is(err, domain.ErrInvalidBookingTransition),
		errors.Is(err, domain.ErrPropertyUnavailable):
		return http.StatusConflict
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

// writeUseCaseError пишет ответ для ошибки use case. Текст внутренних
// ошибок клиенту не отдается.
func writeUseCaseError(w http.ResponseWriter, logger port.LoggerPort, err error) {
	status := statusForError(err)
	switch status {
	case http.StatusInternalServerError:
		logger.Error("Use case failed with an unexpected error", err, nil)
		WriteJSONError(w, status, "Internal server error")
		return
	case http.StatusGatewayTimeout:
		logger.Warn("Backend did not respond in time", port.Fields{"error": err.Error()})
		WriteJSONError(w, status, "Backend did not respond in time")
		return
	}

	logger.Warn("Request rejected", port.Fields{"status_code": status, "error": err.Error()})
	if errors.Is(err, domain.ErrInvalidCredentials) {
		WriteJSONError(w, status, "Invalid email or password")
		return
	}
	if errors.Is(err, domain.ErrMissingDates) {
		WriteJSONError(w, status, "Please select both check-in and check-out dates")
		return
	}
	WriteJSONError(w, status, err.Error())
}
