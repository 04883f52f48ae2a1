package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/clinicdesk/scheduling/internal/availability"
	"github.com/clinicdesk/scheduling/internal/model"
)

// Filters narrows List results. Zero-value fields impose no constraint;
// supplied fields must all match exactly.
type Filters struct {
	Date       string
	Status     model.Status
	DoctorName string
}

// CreateInput carries the caller-supplied fields of a new appointment.
// Every field is required; Status and ID are assigned by the store.
type CreateInput struct {
	PatientName string
	DoctorName  string
	Type        string
	Date        string
	Time        string
	Duration    int
	Mode        model.Mode
}

// Store holds every appointment for the life of the process. Create's
// conflict scan plus append and UpdateStatus's lookup plus mutate are
// critical sections: concurrent creates against a stale snapshot could
// otherwise double-book a doctor, so all access goes through mu.
type Store struct {
	mu           sync.RWMutex
	appointments []model.Appointment
	byID         map[string]int // id -> index; records are never removed
}

func New() *Store {
	return &Store{byID: make(map[string]int)}
}

// Seed loads pre-existing records, keeping their ids. Intended for demo
// datasets and tests; records are appended in the given order.
func (s *Store) Seed(appts []model.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range appts {
		s.byID[a.ID] = len(s.appointments)
		s.appointments = append(s.appointments, a)
	}
}

// Len reports the number of stored appointments.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.appointments)
}

// List returns copies of all appointments matching every supplied filter,
// in insertion order. An empty result is valid; List never fails.
func (s *Store) List(ctx context.Context, f Filters) []model.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Appointment, 0, len(s.appointments))
	for _, a := range s.appointments {
		if f.Date != "" && a.Date != f.Date {
			continue
		}
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		if f.DoctorName != "" && a.DoctorName != f.DoctorName {
			continue
		}
		out = append(out, a)
	}
	return out
}

// UpdateStatus replaces the status of the appointment with the given id and
// returns the updated record. Every other field is left untouched. Any
// status may transition to any other, including itself.
func (s *Store) UpdateStatus(ctx context.Context, id string, status model.Status) (model.Appointment, error) {
	if !status.Valid() {
		return model.Appointment{}, &ValidationError{Field: "status", Reason: "is not a known value"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.byID[id]
	if !ok {
		return model.Appointment{}, ErrNotFound
	}
	s.appointments[i].Status = status
	return s.appointments[i], nil
}

// Create validates the input, scans for a double-booking, and appends the
// new appointment with a fresh id and status scheduled. Nothing is written
// when validation or the conflict check fails.
func (s *Store) Create(ctx context.Context, in CreateInput) (model.Appointment, error) {
	newStart, err := validate(in)
	if err != nil {
		return model.Appointment{}, err
	}
	slot := availability.Interval{Start: newStart, End: newStart + in.Duration}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.appointments {
		if a.DoctorName != in.DoctorName || a.Date != in.Date {
			continue
		}
		if a.Status == model.StatusCancelled {
			// Cancelled appointments free their slot.
			continue
		}
		existingStart, err := model.MinuteOfDay(a.Time)
		if err != nil {
			continue
		}
		if slot.Overlaps(availability.Interval{Start: existingStart, End: existingStart + a.Duration}) {
			return model.Appointment{}, &ConflictError{
				DoctorName: in.DoctorName,
				Date:       in.Date,
				Time:       a.Time,
			}
		}
	}

	appt := model.Appointment{
		ID:          uuid.NewString(),
		PatientName: in.PatientName,
		DoctorName:  in.DoctorName,
		Type:        in.Type,
		Date:        in.Date,
		Time:        in.Time,
		Duration:    in.Duration,
		Mode:        in.Mode,
		Status:      model.StatusScheduled,
	}
	s.byID[appt.ID] = len(s.appointments)
	s.appointments = append(s.appointments, appt)
	return appt, nil
}

// validate checks the create payload and returns the start minute of the
// requested slot.
func validate(in CreateInput) (int, error) {
	switch {
	case in.PatientName == "":
		return 0, &ValidationError{Field: "patient_name", Reason: "is required"}
	case in.DoctorName == "":
		return 0, &ValidationError{Field: "doctor_name", Reason: "is required"}
	case in.Type == "":
		return 0, &ValidationError{Field: "type", Reason: "is required"}
	case in.Date == "":
		return 0, &ValidationError{Field: "date", Reason: "is required"}
	case in.Time == "":
		return 0, &ValidationError{Field: "time", Reason: "is required"}
	case in.Duration == 0:
		return 0, &ValidationError{Field: "duration_minutes", Reason: "is required"}
	case in.Mode == "":
		return 0, &ValidationError{Field: "mode", Reason: "is required"}
	}

	if in.Duration < 0 {
		return 0, &ValidationError{Field: "duration_minutes", Reason: "must be positive"}
	}
	if !in.Mode.Valid() {
		return 0, &ValidationError{Field: "mode", Reason: "is not a known value"}
	}
	if !model.ValidDate(in.Date) {
		return 0, &ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"}
	}
	start, err := model.MinuteOfDay(in.Time)
	if err != nil {
		return 0, &ValidationError{Field: "time", Reason: "must be HH:MM"}
	}
	return start, nil
}
