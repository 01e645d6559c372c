// AngelaMos | 2026
// response.go

package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the only error body shape this API emits.
type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data == nil {
		return
	}

	//nolint:errcheck // headers already written, nothing left to signal
	_ = json.NewEncoder(w).Encode(data)
}

func OK(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, data)
}

func Created(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusCreated, data)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func Message(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, MessageResponse{Message: message})
}

func BadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: message})
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "unauthorized"
	}
	writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: message})
}

func Forbidden(w http.ResponseWriter, message string) {
	if message == "" {
		message = "forbidden"
	}
	writeJSON(w, http.StatusForbidden, ErrorResponse{Error: message})
}

func NotFound(w http.ResponseWriter, resource string) {
	writeJSON(
		w,
		http.StatusNotFound,
		ErrorResponse{Error: resource + " not found"},
	)
}

// InternalServerError logs the cause and writes a generic body. Internal
// detail never reaches the client.
func InternalServerError(w http.ResponseWriter, err error) {
	slog.Error("internal server error", "error", err)
	writeJSON(
		w,
		http.StatusInternalServerError,
		ErrorResponse{Error: "internal server error"},
	)
}

// JSONError maps an error to its response. AppErrors carry their own status
// and message; anything else is treated as internal.
func JSONError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		writeJSON(w, appErr.Status, ErrorResponse{Error: appErr.Message})
		return
	}

	InternalServerError(w, err)
}

func FormatValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return "invalid request"
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		field := strings.ToLower(fieldErr.Field())

		switch fieldErr.Tag() {
		case "required":
			messages = append(messages, field+" is required")
		case "min":
			messages = append(messages, fmt.Sprintf(
				"%s must be at least %s characters", field, fieldErr.Param()))
		case "max":
			messages = append(messages, fmt.Sprintf(
				"%s must be at most %s characters", field, fieldErr.Param()))
		case "oneof":
			messages = append(messages, fmt.Sprintf(
				"%s must be one of: %s", field, fieldErr.Param()))
		default:
			messages = append(messages, field+" is invalid")
		}
	}

	return strings.Join(messages, "; ")
}
