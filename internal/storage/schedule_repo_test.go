package storage

import (
	"context"
	"errors"
	"testing"
)

func TestScheduleRepo_CRUD(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepo(db)
	repo := NewScheduleRepo(db)
	ctx := context.Background()

	coach, err := users.Create(ctx, testUser("coach@example.com", "coach"))
	if err != nil {
		t.Fatalf("users.Create() error = %v", err)
	}

	created, err := repo.Create(ctx, ScheduleRecord{DayOfWeek: "wednesday", StartTime: "18:00", EndTime: "19:30", CoachID: coach.ID})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID <= 0 || created.Coach.ID != coach.ID || created.Coach.Email != "coach@example.com" {
		t.Errorf("Create() = %+v", created)
	}

	created.StartTime = "17:00"
	updated, err := repo.Update(ctx, created)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.StartTime != "17:00" {
		t.Errorf("Update() StartTime = %q", updated.StartTime)
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := repo.GetByID(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() after delete error = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() twice error = %v, want ErrNotFound", err)
	}
}

func TestScheduleRepo_UnknownCoach(t *testing.T) {
	repo := NewScheduleRepo(newTestDB(t))

	_, err := repo.Create(context.Background(), ScheduleRecord{DayOfWeek: "monday", StartTime: "08:00", EndTime: "09:00", CoachID: 42})
	if !errors.Is(err, ErrReferenced) {
		t.Errorf("Create() error = %v, want ErrReferenced", err)
	}
}

func TestScheduleRepo_ListOrdering(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepo(db)
	repo := NewScheduleRepo(db)
	ctx := context.Background()

	coachA, _ := users.Create(ctx, testUser("a@example.com", "coach"))
	coachB, _ := users.Create(ctx, testUser("b@example.com", "coach"))

	inputs := []ScheduleRecord{
		{DayOfWeek: "friday", StartTime: "10:00", EndTime: "11:00", CoachID: coachA.ID},
		{DayOfWeek: "monday", StartTime: "18:00", EndTime: "19:00", CoachID: coachB.ID},
		{DayOfWeek: "monday", StartTime: "07:00", EndTime: "08:00", CoachID: coachA.ID},
	}
	for _, in := range inputs {
		if _, err := repo.Create(ctx, in); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("ListAll() len = %d, want 3", len(all))
	}
	wantOrder := []string{"monday 07:00", "monday 18:00", "friday 10:00"}
	for i, s := range all {
		if got := s.DayOfWeek + " " + s.StartTime; got != wantOrder[i] {
			t.Errorf("ListAll()[%d] = %q, want %q", i, got, wantOrder[i])
		}
	}

	byCoach, err := repo.ListByCoach(ctx, coachA.ID)
	if err != nil {
		t.Fatalf("ListByCoach() error = %v", err)
	}
	if len(byCoach) != 2 {
		t.Errorf("ListByCoach() len = %d, want 2", len(byCoach))
	}

	count, err := repo.CountByCoach(ctx, coachB.ID)
	if err != nil {
		t.Fatalf("CountByCoach() error = %v", err)
	}
	if count != 1 {
		t.Errorf("CountByCoach() = %d, want 1", count)
	}
}
