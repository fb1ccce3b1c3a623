package handlers

import (
	"net/http"

	"github.com/thedevsaddam/govalidator"

	"gimnasio/internal/contextutil"
	"gimnasio/internal/service"
)

// ScheduleHandler handles the schedule endpoints.
type ScheduleHandler struct {
	schedules service.ScheduleService
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(schedules service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{schedules: schedules}
}

// ScheduleRequest is the body of schedule create and update calls.
type ScheduleRequest struct {
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	CoachID   int64  `json:"coach_id"`
}

// ScheduleResponse is the JSON form of a schedule.
type ScheduleResponse struct {
	ID        int64        `json:"id"`
	DayOfWeek string       `json:"day_of_week"`
	StartTime string       `json:"start_time"`
	EndTime   string       `json:"end_time"`
	Coach     UserResponse `json:"coach"`
}

var scheduleRules = govalidator.MapData{
	"day_of_week": []string{"required"},
	"start_time":  []string{"required", "between:4,5"},
	"end_time":    []string{"required", "between:4,5"},
	"coach_id":    []string{"required"},
}

// List handles GET /api/schedules.
func (h *ScheduleHandler) List(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.schedules.List(r.Context())
	if err != nil {
		handleServiceError(w, r.Context(), err, "Failed to list schedules")
		return
	}
	writeJSON(w, r, http.StatusOK, toScheduleResponses(schedules))
}

// ListByCoach handles GET /api/coaches/{id}/schedules.
func (h *ScheduleHandler) ListByCoach(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid coach id")
		return
	}

	schedules, err := h.schedules.ListByCoach(r.Context(), id)
	if err != nil {
		handleServiceError(w, r.Context(), err, "Failed to list schedules")
		return
	}
	writeJSON(w, r, http.StatusOK, toScheduleResponses(schedules))
}

// Get handles GET /api/schedules/{id}.
func (h *ScheduleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid schedule id")
		return
	}

	schedule, err := h.schedules.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, r.Context(), err, "Failed to get schedule")
		return
	}
	writeJSON(w, r, http.StatusOK, toScheduleResponse(schedule))
}

// Create handles POST /api/schedules.
func (h *ScheduleHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeScheduleRequest(w, r)
	if !ok {
		return
	}

	schedule, err := h.schedules.Create(r.Context(), req)
	if err != nil {
		handleServiceError(w, r.Context(), err, "Failed to create schedule")
		return
	}
	writeJSON(w, r, http.StatusCreated, toScheduleResponse(schedule))
}

// Update handles PUT /api/schedules/{id}.
func (h *ScheduleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid schedule id")
		return
	}
	req, ok := decodeScheduleRequest(w, r)
	if !ok {
		return
	}

	schedule, err := h.schedules.Update(r.Context(), id, req)
	if err != nil {
		handleServiceError(w, r.Context(), err, "Failed to update schedule")
		return
	}
	writeJSON(w, r, http.StatusOK, toScheduleResponse(schedule))
}

// Delete handles DELETE /api/schedules/{id}.
func (h *ScheduleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid schedule id")
		return
	}

	if err := h.schedules.Delete(r.Context(), id); err != nil {
		handleServiceError(w, r.Context(), err, "Failed to delete schedule")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeScheduleRequest(w http.ResponseWriter, r *http.Request) (service.ScheduleRequest, bool) {
	ctx := r.Context()

	var body ScheduleRequest
	errs := govalidator.New(govalidator.Options{
		Request: r,
		Data:    &body,
		Rules:   scheduleRules,
	}).ValidateJSON()
	if len(errs) != 0 {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "invalid schedule request", "errors", errs)
		writeValidationErrors(w, errs)
		return service.ScheduleRequest{}, false
	}

	return service.ScheduleRequest{
		DayOfWeek: body.DayOfWeek,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
		CoachID:   body.CoachID,
	}, true
}

func toScheduleResponse(schedule service.Schedule) ScheduleResponse {
	return ScheduleResponse{
		ID:        schedule.ID,
		DayOfWeek: schedule.DayOfWeek,
		StartTime: schedule.StartTime,
		EndTime:   schedule.EndTime,
		Coach:     toUserResponse(schedule.Coach),
	}
}

func toScheduleResponses(schedules []service.Schedule) []ScheduleResponse {
	resp := make([]ScheduleResponse, 0, len(schedules))
	for _, schedule := range schedules {
		resp = append(resp, toScheduleResponse(schedule))
	}
	return resp
}
