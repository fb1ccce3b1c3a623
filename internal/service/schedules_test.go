package service_test

import (
	"context"
	"errors"
	"testing"

	"gimnasio/internal/service"
	"gimnasio/internal/service/mocks"
	"gimnasio/internal/storage"

	"go.uber.org/mock/gomock"
)

var testCoach = storage.UserRecord{ID: 9, Name: "Marta", Email: "marta@example.com", Role: "coach"}

func TestScheduleService_Create(t *testing.T) {
	tests := []struct {
		name       string
		req        service.ScheduleRequest
		mockSetup  func(*mocks.MockScheduleStore, *mocks.MockUserStore)
		wantErr    bool
		wantField  string
		wantRecord storage.ScheduleRecord
	}{
		{
			name: "successful create normalizes input",
			req:  service.ScheduleRequest{DayOfWeek: " Monday ", StartTime: "9:00", EndTime: "10:30", CoachID: 9},
			mockSetup: func(s *mocks.MockScheduleStore, u *mocks.MockUserStore) {
				u.EXPECT().GetByID(gomock.Any(), int64(9)).Return(testCoach, nil)
				s.EXPECT().
					Create(gomock.Any(), storage.ScheduleRecord{DayOfWeek: "monday", StartTime: "09:00", EndTime: "10:30", CoachID: 9}).
					DoAndReturn(func(ctx context.Context, r storage.ScheduleRecord) (storage.ScheduleRecord, error) {
						r.ID = 1
						r.Coach = testCoach
						return r, nil
					})
			},
		},
		{
			name:      "unknown day",
			req:       service.ScheduleRequest{DayOfWeek: "lunes", StartTime: "09:00", EndTime: "10:00", CoachID: 9},
			mockSetup: func(*mocks.MockScheduleStore, *mocks.MockUserStore) {},
			wantErr:   true,
			wantField: "day_of_week",
		},
		{
			name:      "bad start time",
			req:       service.ScheduleRequest{DayOfWeek: "friday", StartTime: "25:00", EndTime: "10:00", CoachID: 9},
			mockSetup: func(*mocks.MockScheduleStore, *mocks.MockUserStore) {},
			wantErr:   true,
			wantField: "start_time",
		},
		{
			name:      "end before start",
			req:       service.ScheduleRequest{DayOfWeek: "friday", StartTime: "11:00", EndTime: "10:00", CoachID: 9},
			mockSetup: func(*mocks.MockScheduleStore, *mocks.MockUserStore) {},
			wantErr:   true,
			wantField: "end_time",
		},
		{
			name:      "equal times",
			req:       service.ScheduleRequest{DayOfWeek: "friday", StartTime: "10:00", EndTime: "10:00", CoachID: 9},
			mockSetup: func(*mocks.MockScheduleStore, *mocks.MockUserStore) {},
			wantErr:   true,
			wantField: "end_time",
		},
		{
			name:      "missing coach id",
			req:       service.ScheduleRequest{DayOfWeek: "friday", StartTime: "09:00", EndTime: "10:00"},
			mockSetup: func(*mocks.MockScheduleStore, *mocks.MockUserStore) {},
			wantErr:   true,
			wantField: "coach_id",
		},
		{
			name: "coach does not exist",
			req:  service.ScheduleRequest{DayOfWeek: "friday", StartTime: "09:00", EndTime: "10:00", CoachID: 42},
			mockSetup: func(s *mocks.MockScheduleStore, u *mocks.MockUserStore) {
				u.EXPECT().GetByID(gomock.Any(), int64(42)).Return(storage.UserRecord{}, storage.ErrNotFound)
			},
			wantErr:   true,
			wantField: "coach_id",
		},
		{
			name: "user is not a coach",
			req:  service.ScheduleRequest{DayOfWeek: "friday", StartTime: "09:00", EndTime: "10:00", CoachID: 3},
			mockSetup: func(s *mocks.MockScheduleStore, u *mocks.MockUserStore) {
				u.EXPECT().GetByID(gomock.Any(), int64(3)).Return(storage.UserRecord{ID: 3, Role: "member"}, nil)
			},
			wantErr:   true,
			wantField: "coach_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			schedules := mocks.NewMockScheduleStore(ctrl)
			users := mocks.NewMockUserStore(ctrl)
			tt.mockSetup(schedules, users)
			svc := service.NewScheduleService(schedules, users)

			got, err := svc.Create(testContext(), tt.req)
			if tt.wantErr {
				var validationErr *service.ValidationError
				if !errors.As(err, &validationErr) || validationErr.Field != tt.wantField {
					t.Errorf("Create() error = %v, want validation error on %s", err, tt.wantField)
				}
				return
			}
			if err != nil {
				t.Fatalf("Create() unexpected error: %v", err)
			}
			if got.ID != 1 || got.Coach.Name != "Marta" || got.StartTime != "09:00" {
				t.Errorf("Create() = %+v", got)
			}
		})
	}
}

func TestScheduleService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	schedules := mocks.NewMockScheduleStore(ctrl)
	users := mocks.NewMockUserStore(ctrl)
	svc := service.NewScheduleService(schedules, users)

	req := service.ScheduleRequest{DayOfWeek: "sunday", StartTime: "08:00", EndTime: "09:00", CoachID: 9}
	users.EXPECT().GetByID(gomock.Any(), int64(9)).Return(testCoach, nil).Times(2)
	schedules.EXPECT().Update(gomock.Any(), gomock.Any()).Return(storage.ScheduleRecord{ID: 5, DayOfWeek: "sunday"}, nil)
	schedules.EXPECT().Update(gomock.Any(), gomock.Any()).Return(storage.ScheduleRecord{}, storage.ErrNotFound)

	got, err := svc.Update(testContext(), 5, req)
	if err != nil || got.ID != 5 {
		t.Errorf("Update() = %+v, %v", got, err)
	}
	if _, err := svc.Update(testContext(), 6, req); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Update() missing error = %v, want ErrNotFound", err)
	}
}

func TestScheduleService_GetListDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	schedules := mocks.NewMockScheduleStore(ctrl)
	users := mocks.NewMockUserStore(ctrl)
	svc := service.NewScheduleService(schedules, users)

	schedules.EXPECT().GetByID(gomock.Any(), int64(1)).Return(storage.ScheduleRecord{ID: 1, Coach: testCoach}, nil)
	schedules.EXPECT().GetByID(gomock.Any(), int64(2)).Return(storage.ScheduleRecord{}, storage.ErrNotFound)
	schedules.EXPECT().ListAll(gomock.Any()).Return([]storage.ScheduleRecord{{ID: 1}, {ID: 3}}, nil)
	schedules.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)
	schedules.EXPECT().Delete(gomock.Any(), int64(2)).Return(storage.ErrNotFound)

	if got, err := svc.Get(testContext(), 1); err != nil || got.Coach.Email != "marta@example.com" {
		t.Errorf("Get() = %+v, %v", got, err)
	}
	if _, err := svc.Get(testContext(), 2); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Get() missing error = %v", err)
	}
	if got, err := svc.List(testContext()); err != nil || len(got) != 2 {
		t.Errorf("List() = %+v, %v", got, err)
	}
	if err := svc.Delete(testContext(), 1); err != nil {
		t.Errorf("Delete() error = %v", err)
	}
	if err := svc.Delete(testContext(), 2); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Delete() missing error = %v", err)
	}
}

func TestScheduleService_ListByCoach(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	schedules := mocks.NewMockScheduleStore(ctrl)
	users := mocks.NewMockUserStore(ctrl)
	svc := service.NewScheduleService(schedules, users)

	users.EXPECT().GetByID(gomock.Any(), int64(9)).Return(testCoach, nil)
	users.EXPECT().GetByID(gomock.Any(), int64(3)).Return(storage.UserRecord{ID: 3, Role: "member"}, nil)
	users.EXPECT().GetByID(gomock.Any(), int64(404)).Return(storage.UserRecord{}, storage.ErrNotFound)
	schedules.EXPECT().ListByCoach(gomock.Any(), int64(9)).Return([]storage.ScheduleRecord{{ID: 1, CoachID: 9}}, nil)

	got, err := svc.ListByCoach(testContext(), 9)
	if err != nil || len(got) != 1 {
		t.Errorf("ListByCoach() = %+v, %v", got, err)
	}
	if _, err := svc.ListByCoach(testContext(), 3); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("ListByCoach() non-coach error = %v", err)
	}
	if _, err := svc.ListByCoach(testContext(), 404); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("ListByCoach() missing error = %v", err)
	}
}
