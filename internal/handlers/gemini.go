package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"gimnasio/internal/contextutil"
	"gimnasio/internal/gemini"
	"gimnasio/internal/service"
)

const (
	geminiServiceName = "Google Gemini AI"
	missingParamsText = "missing parameters: goal, level, duration"
	missingParamsTag  = "error"
)

// GeminiHandler exposes the assistant endpoints.
type GeminiHandler struct {
	ai  service.AIService
	now func() time.Time
}

// NewGeminiHandler creates a new GeminiHandler.
func NewGeminiHandler(ai service.AIService) *GeminiHandler {
	return &GeminiHandler{
		ai:  ai,
		now: time.Now,
	}
}

// WorkoutRoutineRequest is the body of POST /api/gemini/workout-routine.
// Pointers distinguish a missing field from an empty one.
type WorkoutRoutineRequest struct {
	Goal     *string `json:"goal"`
	Level    *string `json:"level"`
	Duration *string `json:"duration"`
}

// ConnectionTestResponse is returned by GET /api/gemini/test.
type ConnectionTestResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// ServiceStatusResponse is returned by GET /api/gemini/health.
type ServiceStatusResponse struct {
	Service   string `json:"service"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Chat handles POST /api/gemini/chat.
func (h *GeminiHandler) Chat(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeChatRequest(w, r)
	if !ok {
		return
	}
	h.writeResult(w, r, h.ai.Chat(r.Context(), req.Message))
}

// ChatQuery handles GET /api/gemini/chat?message=.
func (h *GeminiHandler) ChatQuery(w http.ResponseWriter, r *http.Request) {
	values, ok := r.URL.Query()["message"]
	if !ok {
		writeError(w, http.StatusBadRequest, "message query parameter is required")
		return
	}
	h.writeResult(w, r, h.ai.Chat(r.Context(), values[0]))
}

// FitnessChat handles POST /api/gemini/chat/fitness.
func (h *GeminiHandler) FitnessChat(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeChatRequest(w, r)
	if !ok {
		return
	}
	h.writeResult(w, r, h.ai.FitnessChat(r.Context(), req.Message))
}

// WorkoutRoutine handles POST /api/gemini/workout-routine.
func (h *GeminiHandler) WorkoutRoutine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req WorkoutRoutineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Goal == nil || req.Level == nil || req.Duration == nil {
		logger.WarnContext(ctx, "workout routine parameters missing")
		writeJSON(w, r, http.StatusBadRequest, gemini.ChatResult{Text: missingParamsText, ModelTag: missingParamsTag})
		return
	}

	h.writeResult(w, r, h.ai.WorkoutRoutine(ctx, service.WorkoutRoutineRequest{
		Goal:     *req.Goal,
		Level:    *req.Level,
		Duration: *req.Duration,
	}))
}

// TestConnection handles GET /api/gemini/test.
func (h *GeminiHandler) TestConnection(w http.ResponseWriter, r *http.Request) {
	status := h.ai.TestConnection(r.Context())
	writeJSON(w, r, http.StatusOK, ConnectionTestResponse{
		Status:    status,
		Timestamp: h.timestamp(),
	})
}

// Health handles GET /api/gemini/health. It does not call the provider.
func (h *GeminiHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, ServiceStatusResponse{
		Service:   geminiServiceName,
		Status:    "active",
		Timestamp: h.timestamp(),
	})
}

func (h *GeminiHandler) timestamp() string {
	return h.now().UTC().Format(time.RFC3339)
}

// writeResult answers 200 with result, or 400 when the service produced nothing.
func (h *GeminiHandler) writeResult(w http.ResponseWriter, r *http.Request, result gemini.ChatResult) {
	if result.IsZero() {
		writeError(w, http.StatusBadRequest, "Empty result")
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

func decodeChatRequest(w http.ResponseWriter, r *http.Request) (gemini.ChatRequest, bool) {
	ctx := r.Context()
	var req gemini.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return req, false
	}
	return req, true
}
