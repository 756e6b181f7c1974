package middleware

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/helixml/xact/application/service"
	"github.com/helixml/xact/domain/textbuilder"
	"github.com/helixml/xact/domain/timespan"
	"github.com/helixml/xact/infrastructure/api/jsonapi"
	"github.com/helixml/xact/infrastructure/codec"
	"github.com/helixml/xact/internal/database"
)

// StatusFor maps an error to its HTTP status and title.
func StatusFor(err error) (int, string) {
	var apiErr *APIError
	var authErr *AuthenticationError

	switch {
	case errors.As(err, &apiErr):
		return apiErr.Code(), http.StatusText(apiErr.Code())
	case errors.As(err, &authErr):
		return http.StatusUnauthorized, "Authentication Failed"
	case errors.Is(err, database.ErrNotFound):
		return http.StatusNotFound, "Not Found"
	case errors.Is(err, timespan.ErrOverflow):
		return http.StatusUnprocessableEntity, "Overflow"
	case errors.Is(err, timespan.ErrFormat),
		errors.Is(err, timespan.ErrInvalidArgument),
		errors.Is(err, timespan.ErrDivideByZero),
		errors.Is(err, textbuilder.ErrInvalidArgument),
		errors.Is(err, textbuilder.ErrIndexOutOfRange),
		errors.Is(err, codec.ErrUnknownFormat),
		errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest, "Validation Error"
	default:
		return http.StatusInternalServerError, "Internal Server Error"
	}
}

// WriteError writes a JSON:API error document for err.
func WriteError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	status, title := StatusFor(err)

	detail := err.Error()
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		detail = apiErr.Message()
	}
	if status == http.StatusInternalServerError {
		detail = "an unexpected error occurred"
	}

	correlationID := GetCorrelationID(r.Context())

	if logger != nil {
		level := slog.LevelWarn
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(r.Context(), level, "request error",
			"correlation_id", correlationID,
			"status", status,
			"error", err.Error(),
			"path", r.URL.Path,
		)
	}

	doc := jsonapi.NewErrorResponse(jsonapi.Error{
		ID:     correlationID,
		Status: http.StatusText(status),
		Title:  title,
		Detail: detail,
	})

	w.Header().Set("Content-Type", jsonapi.MediaType)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(doc)
}

// WriteJSON writes a JSON response.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
