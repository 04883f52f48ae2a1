package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/clinicdesk/scheduling/internal/availability"
	"github.com/clinicdesk/scheduling/internal/events"
	"github.com/clinicdesk/scheduling/internal/model"
	"github.com/clinicdesk/scheduling/internal/store"
)

// AppointmentHandler serves the dashboard's scheduling API on top of the
// appointment store.
type AppointmentHandler struct {
	store  *store.Store
	events *events.Publisher
	logger *slog.Logger
}

func NewAppointmentHandler(st *store.Store, publisher *events.Publisher, logger *slog.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		store:  st,
		events: publisher,
		logger: logger,
	}
}

type appointmentItem struct {
	ID              string `json:"id"`
	PatientName     string `json:"patient_name"`
	DoctorName      string `json:"doctor_name"`
	Type            string `json:"type"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"duration_minutes"`
	Mode            string `json:"mode"`
	Status          string `json:"status"`
}

type createAppointmentRequest struct {
	PatientName     string `json:"patient_name"`
	DoctorName      string `json:"doctor_name"`
	Type            string `json:"type"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"duration_minutes"`
	Mode            string `json:"mode"`
}

type updateStatusRequest struct {
	AppointmentID string `json:"appointment_id"`
	Status        string `json:"status"`
}

type slotItem struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Appointments dispatches /api/v1/appointments: GET lists, POST creates.
func (h *AppointmentHandler) Appointments(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *AppointmentHandler) list(w http.ResponseWriter, r *http.Request) {
	filters := store.Filters{
		Date:       strings.TrimSpace(r.URL.Query().Get("date")),
		DoctorName: strings.TrimSpace(r.URL.Query().Get("doctor")),
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("status")); raw != "" {
		status, err := model.ParseStatus(raw)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		filters.Status = status
	}

	appts := h.store.List(r.Context(), filters)
	items := make([]appointmentItem, 0, len(appts))
	for _, a := range appts {
		items = append(items, toItem(a))
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *AppointmentHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}

	mode := model.Mode("")
	if raw := strings.TrimSpace(req.Mode); raw != "" {
		parsed, err := model.ParseMode(raw)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		mode = parsed
	}

	appt, err := h.store.Create(r.Context(), store.CreateInput{
		PatientName: strings.TrimSpace(req.PatientName),
		DoctorName:  strings.TrimSpace(req.DoctorName),
		Type:        strings.TrimSpace(req.Type),
		Date:        strings.TrimSpace(req.Date),
		Time:        strings.TrimSpace(req.Time),
		Duration:    req.DurationMinutes,
		Mode:        mode,
	})
	if err != nil {
		switch {
		case store.IsValidation(err):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case store.IsConflict(err):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			h.logger.Error("appointment create failed", "err", err)
			http.Error(w, "failed to create appointment", http.StatusInternalServerError)
		}
		return
	}

	h.events.AppointmentCreated(r.Context(), appt)
	writeJSON(w, http.StatusCreated, toItem(appt))
}

// UpdateStatus serves POST /api/v1/appointments/status.
func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.AppointmentID = strings.TrimSpace(req.AppointmentID)
	if req.AppointmentID == "" {
		http.Error(w, "appointment_id required", http.StatusBadRequest)
		return
	}
	status, err := model.ParseStatus(req.Status)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	appt, err := h.store.UpdateStatus(r.Context(), req.AppointmentID, status)
	if err != nil {
		if store.IsNotFound(err) {
			http.Error(w, "appointment not found", http.StatusNotFound)
			return
		}
		h.logger.Error("status update failed", "err", err, "appointment_id", req.AppointmentID)
		http.Error(w, "failed to update status", http.StatusInternalServerError)
		return
	}

	h.events.AppointmentStatusUpdated(r.Context(), appt)
	writeJSON(w, http.StatusOK, toItem(appt))
}

// Slots serves GET /api/v1/schedule/slots: the open slots for a doctor on a
// date, given the workday window and slot sizing. Cancelled appointments do
// not block a slot.
func (h *AppointmentHandler) Slots(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	doctor := strings.TrimSpace(q.Get("doctor"))
	date := strings.TrimSpace(q.Get("date"))
	if doctor == "" || date == "" {
		http.Error(w, "doctor and date are required", http.StatusBadRequest)
		return
	}
	if !model.ValidDate(date) {
		http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	duration := 30
	if v := strings.TrimSpace(q.Get("duration_minutes")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 8*60 {
			http.Error(w, "invalid duration_minutes", http.StatusBadRequest)
			return
		}
		duration = n
	}
	step := 15
	if v := strings.TrimSpace(q.Get("slot_step_minutes")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 120 {
			http.Error(w, "invalid slot_step_minutes", http.StatusBadRequest)
			return
		}
		step = n
	}

	windowStart, err := model.MinuteOfDay(strings.TrimSpace(defaultString(q.Get("workday_start"), "09:00")))
	if err != nil {
		http.Error(w, "invalid workday_start", http.StatusBadRequest)
		return
	}
	windowEnd, err := model.MinuteOfDay(strings.TrimSpace(defaultString(q.Get("workday_end"), "17:00")))
	if err != nil {
		http.Error(w, "invalid workday_end", http.StatusBadRequest)
		return
	}
	if windowEnd <= windowStart {
		http.Error(w, "workday_end must be after workday_start", http.StatusBadRequest)
		return
	}

	busy := h.busyIntervals(r, doctor, date)
	starts := availability.SlotStarts(windowStart, windowEnd, duration, step, busy)

	resp := make([]slotItem, 0, len(starts))
	for _, s := range starts {
		resp = append(resp, slotItem{
			StartTime: model.Clock(s),
			EndTime:   model.Clock(s + duration),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *AppointmentHandler) busyIntervals(r *http.Request, doctor, date string) []availability.Interval {
	appts := h.store.List(r.Context(), store.Filters{Date: date, DoctorName: doctor})
	busy := make([]availability.Interval, 0, len(appts))
	for _, a := range appts {
		if a.Status == model.StatusCancelled {
			continue
		}
		start, err := model.MinuteOfDay(a.Time)
		if err != nil {
			continue
		}
		busy = append(busy, availability.Interval{Start: start, End: start + a.Duration})
	}
	return busy
}

func toItem(a model.Appointment) appointmentItem {
	return appointmentItem{
		ID:              a.ID,
		PatientName:     a.PatientName,
		DoctorName:      a.DoctorName,
		Type:            a.Type,
		Date:            a.Date,
		Time:            a.Time,
		DurationMinutes: a.Duration,
		Mode:            string(a.Mode),
		Status:          string(a.Status),
	}
}

func defaultString(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "failed to build response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
