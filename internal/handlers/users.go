package handlers

import (
	"net/http"
	"time"

	"github.com/thedevsaddam/govalidator"

	"gimnasio/internal/contextutil"
	"gimnasio/internal/service"
)

// UserHandler handles the user and coach endpoints.
type UserHandler struct {
	users service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// UserRequest is the body of user create and update calls.
type UserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

// UserResponse is the JSON form of a user. The password is never returned.
type UserResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Role         string `json:"role"`
	RegisteredAt string `json:"registered_at"`
}

var userRules = govalidator.MapData{
	"name":     []string{"required", "max:120"},
	"email":    []string{"required", "email"},
	"password": []string{"required", "min:6", "max:72"},
	"phone":    []string{"required", "max:30"},
	"role":     []string{"required"},
}

// List handles GET /api/users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		handleServiceError(w, r.Context(), err, "Failed to list users")
		return
	}
	writeJSON(w, r, http.StatusOK, toUserResponses(users))
}

// ListCoaches handles GET /api/coaches.
func (h *UserHandler) ListCoaches(w http.ResponseWriter, r *http.Request) {
	coaches, err := h.users.ListCoaches(r.Context())
	if err != nil {
		handleServiceError(w, r.Context(), err, "Failed to list coaches")
		return
	}
	writeJSON(w, r, http.StatusOK, toUserResponses(coaches))
}

// Get handles GET /api/users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	user, err := h.users.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, r.Context(), err, "Failed to get user")
		return
	}
	writeJSON(w, r, http.StatusOK, toUserResponse(user))
}

// Create handles POST /api/users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeUserRequest(w, r)
	if !ok {
		return
	}

	user, err := h.users.Create(r.Context(), req)
	if err != nil {
		handleServiceError(w, r.Context(), err, "Failed to create user")
		return
	}
	writeJSON(w, r, http.StatusCreated, toUserResponse(user))
}

// Update handles PUT /api/users/{id}.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	req, ok := decodeUserRequest(w, r)
	if !ok {
		return
	}

	user, err := h.users.Update(r.Context(), id, req)
	if err != nil {
		handleServiceError(w, r.Context(), err, "Failed to update user")
		return
	}
	writeJSON(w, r, http.StatusOK, toUserResponse(user))
}

// Delete handles DELETE /api/users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	if err := h.users.Delete(r.Context(), id); err != nil {
		handleServiceError(w, r.Context(), err, "Failed to delete user")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeUserRequest(w http.ResponseWriter, r *http.Request) (service.UserRequest, bool) {
	ctx := r.Context()

	var body UserRequest
	errs := govalidator.New(govalidator.Options{
		Request: r,
		Data:    &body,
		Rules:   userRules,
	}).ValidateJSON()
	if len(errs) != 0 {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "invalid user request", "errors", errs)
		writeValidationErrors(w, errs)
		return service.UserRequest{}, false
	}

	return service.UserRequest{
		Name:     body.Name,
		Email:    body.Email,
		Password: body.Password,
		Phone:    body.Phone,
		Role:     body.Role,
	}, true
}

func toUserResponse(user service.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Phone:        user.Phone,
		Role:         user.Role,
		RegisteredAt: user.RegisteredAt.UTC().Format(time.RFC3339),
	}
}

func toUserResponses(users []service.User) []UserResponse {
	resp := make([]UserResponse, 0, len(users))
	for _, user := range users {
		resp = append(resp, toUserResponse(user))
	}
	return resp
}
