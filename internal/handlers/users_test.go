package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gimnasio/internal/service"
	"gimnasio/internal/service/mocks"

	"go.uber.org/mock/gomock"
)

var testRegisteredAt = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

func testUser(id int64, role string) service.User {
	return service.User{
		ID:           id,
		Name:         "Ana Pérez",
		Email:        "ana@example.com",
		Phone:        "600123123",
		Role:         role,
		RegisteredAt: testRegisteredAt,
	}
}

func validUserBody() map[string]any {
	return map[string]any{
		"name":     "Ana Pérez",
		"email":    "ana@example.com",
		"password": "secreto",
		"phone":    "600123123",
		"role":     "coach",
	}
}

func TestUserHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		mockSetup  func(*mocks.MockUserService)
		wantStatus int
		wantField  string
	}{
		{
			name: "created",
			body: validUserBody(),
			mockSetup: func(m *mocks.MockUserService) {
				m.EXPECT().Create(gomock.Any(), service.UserRequest{
					Name:     "Ana Pérez",
					Email:    "ana@example.com",
					Password: "secreto",
					Phone:    "600123123",
					Role:     "coach",
				}).Return(testUser(7, service.RoleCoach), nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "invalid email",
			body: func() map[string]any {
				b := validUserBody()
				b["email"] = "not-an-email"
				return b
			}(),
			mockSetup:  func(m *mocks.MockUserService) {},
			wantStatus: http.StatusBadRequest,
			wantField:  "email",
		},
		{
			name: "short password",
			body: func() map[string]any {
				b := validUserBody()
				b["password"] = "123"
				return b
			}(),
			mockSetup:  func(m *mocks.MockUserService) {},
			wantStatus: http.StatusBadRequest,
			wantField:  "password",
		},
		{
			name: "overlong password",
			body: func() map[string]any {
				b := validUserBody()
				b["password"] = strings.Repeat("x", 73)
				return b
			}(),
			mockSetup:  func(m *mocks.MockUserService) {},
			wantStatus: http.StatusBadRequest,
			wantField:  "password",
		},
		{
			name: "password too long for hashing",
			body: validUserBody(),
			mockSetup: func(m *mocks.MockUserService) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(service.User{}, &service.ValidationError{Field: "password", Message: "must be at most 72 bytes"})
			},
			wantStatus: http.StatusBadRequest,
			wantField:  "password",
		},
		{
			name: "missing role",
			body: func() map[string]any {
				b := validUserBody()
				delete(b, "role")
				return b
			}(),
			mockSetup:  func(m *mocks.MockUserService) {},
			wantStatus: http.StatusBadRequest,
			wantField:  "role",
		},
		{
			name: "unknown role rejected by service",
			body: func() map[string]any {
				b := validUserBody()
				b["role"] = "janitor"
				return b
			}(),
			mockSetup: func(m *mocks.MockUserService) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(service.User{}, &service.ValidationError{Field: "role", Message: "must be admin, coach or member"})
			},
			wantStatus: http.StatusBadRequest,
			wantField:  "role",
		},
		{
			name: "duplicate email",
			body: validUserBody(),
			mockSetup: func(m *mocks.MockUserService) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(service.User{}, fmt.Errorf("%w: email already registered", service.ErrConflict))
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "storage failure",
			body: validUserBody(),
			mockSetup: func(m *mocks.MockUserService) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).Return(service.User{}, errors.New("disk full"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUsers := mocks.NewMockUserService(ctrl)
			tt.mockSetup(mockUsers)

			w := httptest.NewRecorder()
			NewUserHandler(mockUsers).Create(w, newRequest(http.MethodPost, "/api/users", tt.body, nil))

			if w.Code != tt.wantStatus {
				t.Fatalf("Create() status = %v, want %v, body %s", w.Code, tt.wantStatus, w.Body.String())
			}

			switch {
			case tt.wantStatus == http.StatusCreated:
				got := decodeBody[UserResponse](t, w)
				if got.ID != 7 || got.Role != service.RoleCoach || got.RegisteredAt != "2025-01-02T03:04:05Z" {
					t.Errorf("Create() = %+v", got)
				}
			case tt.wantField != "":
				got := decodeBody[ErrorResponse](t, w)
				if len(got.Fields[tt.wantField]) == 0 {
					t.Errorf("Create() fields = %v, want entry for %q", got.Fields, tt.wantField)
				}
			}
		})
	}
}

func TestUserHandler_Get(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		mockSetup  func(*mocks.MockUserService)
		wantStatus int
	}{
		{
			name: "found",
			id:   "3",
			mockSetup: func(m *mocks.MockUserService) {
				m.EXPECT().Get(gomock.Any(), int64(3)).Return(testUser(3, service.RoleMember), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "not found",
			id:   "99",
			mockSetup: func(m *mocks.MockUserService) {
				m.EXPECT().Get(gomock.Any(), int64(99)).Return(service.User{}, service.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "non numeric id",
			id:         "abc",
			mockSetup:  func(m *mocks.MockUserService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "zero id",
			id:         "0",
			mockSetup:  func(m *mocks.MockUserService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUsers := mocks.NewMockUserService(ctrl)
			tt.mockSetup(mockUsers)

			w := httptest.NewRecorder()
			req := newRequest(http.MethodGet, "/api/users/"+tt.id, nil, map[string]string{"id": tt.id})
			NewUserHandler(mockUsers).Get(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Get() status = %v, want %v", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestUserHandler_UpdateAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mocks.NewMockUserService(ctrl)
	handler := NewUserHandler(mockUsers)

	mockUsers.EXPECT().Update(gomock.Any(), int64(4), gomock.Any()).Return(testUser(4, service.RoleCoach), nil)
	w := httptest.NewRecorder()
	handler.Update(w, newRequest(http.MethodPut, "/api/users/4", validUserBody(), map[string]string{"id": "4"}))
	if w.Code != http.StatusOK {
		t.Errorf("Update() status = %v, want 200", w.Code)
	}

	mockUsers.EXPECT().Delete(gomock.Any(), int64(4)).Return(nil)
	w = httptest.NewRecorder()
	handler.Delete(w, newRequest(http.MethodDelete, "/api/users/4", nil, map[string]string{"id": "4"}))
	if w.Code != http.StatusNoContent {
		t.Errorf("Delete() status = %v, want 204", w.Code)
	}

	mockUsers.EXPECT().Delete(gomock.Any(), int64(5)).
		Return(fmt.Errorf("%w: coach has schedules", service.ErrConflict))
	w = httptest.NewRecorder()
	handler.Delete(w, newRequest(http.MethodDelete, "/api/users/5", nil, map[string]string{"id": "5"}))
	if w.Code != http.StatusConflict {
		t.Errorf("Delete() with schedules status = %v, want 409", w.Code)
	}
}

func TestUserHandler_Lists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mocks.NewMockUserService(ctrl)
	handler := NewUserHandler(mockUsers)

	mockUsers.EXPECT().List(gomock.Any()).Return(nil, nil)
	w := httptest.NewRecorder()
	handler.List(w, newRequest(http.MethodGet, "/api/users", nil, nil))
	if got := decodeBody[[]UserResponse](t, w); got == nil || len(got) != 0 {
		t.Errorf("List() = %v, want empty array", got)
	}

	mockUsers.EXPECT().ListCoaches(gomock.Any()).Return([]service.User{testUser(1, service.RoleCoach), testUser(2, service.RoleCoach)}, nil)
	w = httptest.NewRecorder()
	handler.ListCoaches(w, newRequest(http.MethodGet, "/api/coaches", nil, nil))
	if got := decodeBody[[]UserResponse](t, w); len(got) != 2 {
		t.Errorf("ListCoaches() = %v, want 2 coaches", got)
	}
}
