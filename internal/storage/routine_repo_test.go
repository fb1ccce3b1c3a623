package storage

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRoutineRepo(t *testing.T) {
	repo := NewRoutineRepo(newTestDB(t))
	ctx := context.Background()

	base := time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)
	routines := []RoutineRecord{
		{ID: "11111111-1111-1111-1111-111111111111", Goal: "fuerza", Level: "principiante", Duration: "45 minutos", Content: "# Rutina A", Model: "gemini-2.5-flash", CreatedAt: base},
		{ID: "22222222-2222-2222-2222-222222222222", Goal: "cardio", Level: "intermedio", Duration: "30 minutos", Content: "# Rutina B", Model: "gemini-2.5-flash", CreatedAt: base.Add(time.Hour)},
		{ID: "33333333-3333-3333-3333-333333333333", Goal: "movilidad", Level: "avanzado", Duration: "1 hora", Content: "# Rutina C", Model: "gemini-2.5-flash", CreatedAt: base.Add(2 * time.Hour)},
	}
	for _, r := range routines {
		if err := repo.Insert(ctx, r); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	if err := repo.Insert(ctx, routines[0]); !errors.Is(err, ErrDuplicate) {
		t.Errorf("Insert() duplicate error = %v, want ErrDuplicate", err)
	}

	got, err := repo.GetByID(ctx, routines[1].ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Goal != "cardio" || got.Content != "# Rutina B" || !got.CreatedAt.Equal(routines[1].CreatedAt) {
		t.Errorf("GetByID() = %+v", got)
	}
	if _, err := repo.GetByID(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() missing error = %v, want ErrNotFound", err)
	}

	recent, err := repo.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("ListRecent() error = %v", err)
	}
	if len(recent) != 2 || recent[0].Goal != "movilidad" || recent[1].Goal != "cardio" {
		t.Errorf("ListRecent() = %+v", recent)
	}

	ordered, err := repo.GetByIDs(ctx, []string{routines[2].ID, "missing", routines[0].ID})
	if err != nil {
		t.Fatalf("GetByIDs() error = %v", err)
	}
	if len(ordered) != 2 || ordered[0].ID != routines[2].ID || ordered[1].ID != routines[0].ID {
		t.Errorf("GetByIDs() = %+v", ordered)
	}

	empty, err := repo.GetByIDs(ctx, nil)
	if err != nil || len(empty) != 0 {
		t.Errorf("GetByIDs(nil) = %v, %v", empty, err)
	}
}

func TestRoutineRepo_Delete(t *testing.T) {
	repo := NewRoutineRepo(newTestDB(t))
	ctx := context.Background()

	routine := RoutineRecord{ID: "44444444-4444-4444-4444-444444444444", Goal: "fuerza", Level: "principiante", Duration: "45 minutos", Content: "# Rutina", Model: "gemini-2.5-flash", CreatedAt: time.Now().UTC()}
	if err := repo.Insert(ctx, routine); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	if err := repo.Delete(ctx, routine.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := repo.GetByID(ctx, routine.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() after delete error = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, routine.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() twice error = %v, want ErrNotFound", err)
	}
}
