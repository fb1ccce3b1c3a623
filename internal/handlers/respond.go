package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"gimnasio/internal/contextutil"
	"gimnasio/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error     string              `json:"error"`
	Fields    map[string][]string `json:"fields,omitempty"`
	RequestID string              `json:"request_id,omitempty"`
}

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctx := r.Context()
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSONError(w, statusCode, ErrorResponse{
		Error: message,
	})
}

// writeValidationErrors reports govalidator failures field by field.
func writeValidationErrors(w http.ResponseWriter, errs url.Values) {
	writeJSONError(w, http.StatusBadRequest, ErrorResponse{
		Error:  "Validation failed",
		Fields: errs,
	})
}

// handleServiceError maps service errors to appropriate HTTP status codes and responses.
// Every response carries the request id.
func handleServiceError(w http.ResponseWriter, ctx context.Context, err error, defaultMsg string) {
	logger := contextutil.LoggerFromContext(ctx)
	resp := ErrorResponse{RequestID: contextutil.RequestIDFromContext(ctx)}

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		logger.WarnContext(ctx, "validation error", "field", validationErr.Field, "error", err)
		resp.Error = fmt.Sprintf("Validation error: %s", validationErr.Error())
		resp.Fields = map[string][]string{validationErr.Field: {validationErr.Message}}
		writeJSONError(w, http.StatusBadRequest, resp)
		return
	}

	var status int
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		logger.WarnContext(ctx, "invalid input", "error", err)
		status, resp.Error = http.StatusBadRequest, "Invalid input"
	case errors.Is(err, service.ErrNotFound):
		status, resp.Error = http.StatusNotFound, "Resource not found"
	case errors.Is(err, service.ErrConflict):
		logger.WarnContext(ctx, "conflict", "error", err)
		status, resp.Error = http.StatusConflict, err.Error()
	case errors.Is(err, service.ErrExternalService):
		logger.ErrorContext(ctx, "external service error", "error", err)
		status, resp.Error = http.StatusBadGateway, "External service error"
	case errors.Is(err, service.ErrUnavailable):
		status, resp.Error = http.StatusServiceUnavailable, "Service unavailable"
	default:
		logger.ErrorContext(ctx, "service error", "error", err)
		status, resp.Error = http.StatusInternalServerError, defaultMsg
	}
	writeJSONError(w, status, resp)
}

func writeJSONError(w http.ResponseWriter, statusCode int, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

// idParam parses a positive integer URL parameter.
func idParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// intQuery parses an optional integer query parameter. Missing means def.
func intQuery(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return n, nil
}
