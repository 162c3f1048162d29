package service

import (
	"context"
	"testing"
	"time"

	"github.com/buildrite/buildrite/internal/domain"
)

func TestScheduleService_Create_Defaults(t *testing.T) {
	svc := NewScheduleService(newMockScheduleStore())

	sc := &domain.Schedule{Title: "Pour foundation"}
	if err := svc.Create(context.Background(), 1, sc); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if sc.Type != domain.ScheduleTask || sc.Status != domain.ScheduleScheduled {
		t.Fatalf("defaults not applied: type=%s status=%s", sc.Type, sc.Status)
	}
	if sc.TenantID != 1 {
		t.Fatalf("expected tenant 1, got %d", sc.TenantID)
	}
}

func TestScheduleService_ListByDate(t *testing.T) {
	store := newMockScheduleStore()
	svc := NewScheduleService(store)
	ctx := context.Background()

	mk := func(title string, start time.Time) {
		sc := &domain.Schedule{Title: title, StartAt: start, EndAt: start.Add(time.Hour)}
		if err := svc.Create(ctx, 1, sc); err != nil {
			t.Fatalf("create %s: %v", title, err)
		}
	}

	// The window is [00:00, 24:00) UTC of the named day.
	mk("start of day", time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
	mk("midday", time.Date(2025, 6, 15, 13, 30, 0, 0, time.UTC))
	mk("last second", time.Date(2025, 6, 15, 23, 59, 59, 0, time.UTC))
	mk("day before", time.Date(2025, 6, 14, 23, 59, 59, 0, time.UTC))
	mk("next midnight", time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC))

	// Other tenant, same day: must not appear.
	other := &domain.Schedule{Title: "foreign", StartAt: time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)}
	if err := svc.Create(ctx, 2, other); err != nil {
		t.Fatalf("create foreign: %v", err)
	}

	got, err := svc.ListByDate(ctx, 1, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 schedules, got %d", len(got))
	}
	for _, sc := range got {
		if sc.Title == "day before" || sc.Title == "next midnight" || sc.Title == "foreign" {
			t.Fatalf("%q leaked into the day window", sc.Title)
		}
	}
}

func TestScheduleService_ListByDate_NonUTCInput(t *testing.T) {
	store := newMockScheduleStore()
	svc := NewScheduleService(store)
	ctx := context.Background()

	sc := &domain.Schedule{Title: "morning", StartAt: time.Date(2025, 6, 15, 2, 0, 0, 0, time.UTC)}
	if err := svc.Create(ctx, 1, sc); err != nil {
		t.Fatalf("create: %v", err)
	}

	// A date carrying an offset still selects the UTC calendar day of
	// its Y/M/D components.
	loc := time.FixedZone("ahead", 10*3600)
	got, err := svc.ListByDate(ctx, 1, time.Date(2025, 6, 15, 0, 0, 0, 0, loc))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 schedule, got %d", len(got))
	}
}
