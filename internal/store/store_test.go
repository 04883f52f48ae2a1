package store

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/clinicdesk/scheduling/internal/model"
)

func validInput() CreateInput {
	return CreateInput{
		PatientName: "Alice Walker",
		DoctorName:  "Dr. Sarah Johnson",
		Type:        "Consultation",
		Date:        "2025-12-28",
		Time:        "13:00",
		Duration:    30,
		Mode:        model.ModeInPerson,
	}
}

func mustCreate(t *testing.T, s *Store, in CreateInput) model.Appointment {
	t.Helper()
	appt, err := s.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create(%+v) failed: %v", in, err)
	}
	return appt
}

func TestList_NoFiltersReturnsEverything(t *testing.T) {
	s := New()
	s.Seed(DemoAppointments())

	got := s.List(context.Background(), Filters{})
	if len(got) != len(DemoAppointments()) {
		t.Fatalf("expected %d appointments, got %d", len(DemoAppointments()), len(got))
	}
	// Insertion order must be preserved.
	for i, a := range got {
		if a.ID != DemoAppointments()[i].ID {
			t.Fatalf("position %d: expected id %s, got %s", i, DemoAppointments()[i].ID, a.ID)
		}
	}
}

func TestList_FilterCombinations(t *testing.T) {
	s := New()
	s.Seed(DemoAppointments())
	ctx := context.Background()

	cases := []struct {
		name    string
		filters Filters
		wantIDs []string
	}{
		{"date only", Filters{Date: "2025-12-29"}, []string{"6"}},
		{"doctor only", Filters{DoctorName: "Dr. David Lee"}, []string{"4", "10"}},
		{"status only", Filters{Status: model.StatusCompleted}, []string{"3", "7"}},
		{"date and doctor", Filters{Date: "2025-12-28", DoctorName: "Dr. Sarah Johnson"}, []string{"1", "3", "9"}},
		{"all three", Filters{Date: "2025-12-28", DoctorName: "Dr. Sarah Johnson", Status: model.StatusUpcoming}, []string{"1"}},
		{"no match", Filters{Date: "2030-01-01"}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := s.List(ctx, tc.filters)
			if len(got) != len(tc.wantIDs) {
				t.Fatalf("expected %d results, got %d", len(tc.wantIDs), len(got))
			}
			for i, a := range got {
				if a.ID != tc.wantIDs[i] {
					t.Fatalf("position %d: expected id %s, got %s", i, tc.wantIDs[i], a.ID)
				}
			}
		})
	}
}

func TestUpdateStatus_NotFoundLeavesStoreUnchanged(t *testing.T) {
	s := New()
	s.Seed(DemoAppointments())
	before := s.List(context.Background(), Filters{})

	_, err := s.UpdateStatus(context.Background(), "no-such-id", model.StatusConfirmed)
	if !IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}

	after := s.List(context.Background(), Filters{})
	if len(after) != len(before) {
		t.Fatalf("store size changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("record %d changed: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestUpdateStatus_ChangesOnlyStatus(t *testing.T) {
	s := New()
	created := mustCreate(t, s, validInput())

	updated, err := s.UpdateStatus(context.Background(), created.ID, model.StatusConfirmed)
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if updated.Status != model.StatusConfirmed {
		t.Fatalf("expected status confirmed, got %s", updated.Status)
	}

	want := created
	want.Status = model.StatusConfirmed
	if updated != want {
		t.Fatalf("fields other than status changed: %+v vs %+v", updated, want)
	}
}

func TestUpdateStatus_AnyTransitionAllowed(t *testing.T) {
	s := New()
	created := mustCreate(t, s, validInput())

	// No transition graph: completed may go back to scheduled, and a status
	// may be set to itself.
	for _, status := range []model.Status{
		model.StatusCompleted,
		model.StatusScheduled,
		model.StatusScheduled,
		model.StatusCancelled,
		model.StatusUpcoming,
	} {
		updated, err := s.UpdateStatus(context.Background(), created.ID, status)
		if err != nil {
			t.Fatalf("UpdateStatus(%s) failed: %v", status, err)
		}
		if updated.Status != status {
			t.Fatalf("expected status %s, got %s", status, updated.Status)
		}
	}
}

func TestCreate_MissingFieldsRejected(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateInput)
	}{
		{"patient name", func(in *CreateInput) { in.PatientName = "" }},
		{"doctor name", func(in *CreateInput) { in.DoctorName = "" }},
		{"type", func(in *CreateInput) { in.Type = "" }},
		{"date", func(in *CreateInput) { in.Date = "" }},
		{"time", func(in *CreateInput) { in.Time = "" }},
		{"duration", func(in *CreateInput) { in.Duration = 0 }},
		{"mode", func(in *CreateInput) { in.Mode = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := New()
			in := validInput()
			tc.mutate(&in)

			_, err := s.Create(context.Background(), in)
			if !IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if s.Len() != 0 {
				t.Fatalf("store mutated on validation failure: %d records", s.Len())
			}
		})
	}
}

func TestCreate_MalformedInputRejected(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateInput)
	}{
		{"negative duration", func(in *CreateInput) { in.Duration = -30 }},
		{"unknown mode", func(in *CreateInput) { in.Mode = "carrier-pigeon" }},
		{"bad date", func(in *CreateInput) { in.Date = "2025-13-40" }},
		{"bad time", func(in *CreateInput) { in.Time = "25:99" }},
		{"non-numeric time", func(in *CreateInput) { in.Time = "nine am" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := New()
			in := validInput()
			tc.mutate(&in)

			_, err := s.Create(context.Background(), in)
			if !IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if s.Len() != 0 {
				t.Fatalf("store mutated on validation failure: %d records", s.Len())
			}
		})
	}
}

func TestCreate_AssignsIDAndScheduledStatus(t *testing.T) {
	s := New()
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		in := validInput()
		in.Time = model.Clock(8*60 + i*30)
		appt := mustCreate(t, s, in)

		if appt.ID == "" {
			t.Fatal("expected a generated id")
		}
		if seen[appt.ID] {
			t.Fatalf("duplicate id %s", appt.ID)
		}
		seen[appt.ID] = true
		if appt.Status != model.StatusScheduled {
			t.Fatalf("expected status scheduled, got %s", appt.Status)
		}
	}
}

func TestCreate_OverlapLaw(t *testing.T) {
	// First appointment holds [600, 630) = 10:00 for 30 minutes.
	cases := []struct {
		name     string
		time     string
		duration int
		conflict bool
	}{
		{"identical slot", "10:00", 30, true},
		{"starts inside", "10:15", 30, true},
		{"ends inside", "09:45", 30, true},
		{"envelops", "09:30", 120, true},
		{"contained", "10:10", 10, true},
		{"touches end", "10:30", 30, false},
		{"touches start", "09:30", 30, false},
		{"well before", "08:00", 30, false},
		{"well after", "12:00", 30, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := New()
			first := validInput()
			first.Time = "10:00"
			first.Duration = 30
			mustCreate(t, s, first)

			second := validInput()
			second.PatientName = "Brian May"
			second.Time = tc.time
			second.Duration = tc.duration

			_, err := s.Create(context.Background(), second)
			if tc.conflict && !IsConflict(err) {
				t.Fatalf("expected conflict, got %v", err)
			}
			if !tc.conflict && err != nil {
				t.Fatalf("expected success, got %v", err)
			}
			wantLen := 2
			if tc.conflict {
				wantLen = 1
			}
			if s.Len() != wantLen {
				t.Fatalf("expected %d records, got %d", wantLen, s.Len())
			}
		})
	}
}

func TestCreate_DifferentDoctorOrDateDoesNotConflict(t *testing.T) {
	s := New()
	mustCreate(t, s, validInput())

	other := validInput()
	other.DoctorName = "Dr. Michael Chen"
	mustCreate(t, s, other)

	nextDay := validInput()
	nextDay.Date = "2025-12-29"
	mustCreate(t, s, nextDay)
}

func TestCreate_CancelledSlotIsFree(t *testing.T) {
	s := New()
	created := mustCreate(t, s, validInput())

	if _, err := s.UpdateStatus(context.Background(), created.ID, model.StatusCancelled); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	// Identical interval for the same doctor/date must now succeed.
	mustCreate(t, s, validInput())
}

func TestCreate_ConflictScenario(t *testing.T) {
	s := New()
	first := validInput()
	first.DoctorName = "Dr. A"
	first.Date = "2025-01-01"
	first.Time = "09:00"
	first.Duration = 30
	mustCreate(t, s, first)

	overlapping := first
	overlapping.Time = "09:15"
	_, err := s.Create(context.Background(), overlapping)
	if !IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if !strings.Contains(err.Error(), "Dr. A") {
		t.Fatalf("conflict error must name the doctor, got %q", err.Error())
	}

	adjacent := first
	adjacent.Time = "09:30"
	appt := mustCreate(t, s, adjacent)
	if appt.ID == "" || appt.Status != model.StatusScheduled {
		t.Fatalf("expected id and scheduled status, got %+v", appt)
	}
}

func TestCreate_ConcurrentSameSlotAdmitsOneWinner(t *testing.T) {
	s := New()
	const attempts = 32

	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.Create(context.Background(), validInput())
		}(i)
	}
	wg.Wait()

	var successes, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case IsConflict(err):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if successes != 1 {
		t.Fatalf("expected exactly one winner, got %d", successes)
	}
	if conflicts != attempts-1 {
		t.Fatalf("expected %d conflicts, got %d", attempts-1, conflicts)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 stored record, got %d", s.Len())
	}
}
