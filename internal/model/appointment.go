package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Status is the lifecycle label of an appointment. The domain does not model
// a transition graph: any status may replace any other.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusUpcoming  Status = "upcoming"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	switch s {
	case StatusScheduled, StatusUpcoming, StatusConfirmed, StatusCancelled, StatusCompleted:
		return s, nil
	}
	return "", fmt.Errorf("unknown appointment status %q", raw)
}

func (s Status) Valid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}

// Mode is how the encounter takes place.
type Mode string

const (
	ModeInPerson Mode = "in-person"
	ModeVideo    Mode = "video"
	ModePhone    Mode = "phone"
)

func ParseMode(raw string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(raw)))
	switch m {
	case ModeInPerson, ModeVideo, ModePhone:
		return m, nil
	}
	return "", fmt.Errorf("unknown appointment mode %q", raw)
}

func (m Mode) Valid() bool {
	_, err := ParseMode(string(m))
	return err == nil
}

// Appointment is one scheduled patient/doctor encounter. Dates and clock
// times are naive local values: Date is YYYY-MM-DD, Time is HH:MM (24h),
// Duration is minutes. Only Status changes after creation.
type Appointment struct {
	ID          string
	PatientName string
	DoctorName  string
	Type        string
	Date        string
	Time        string
	Duration    int
	Mode        Mode
	Status      Status
}

// MinuteOfDay converts an HH:MM clock string to minutes since midnight.
func MinuteOfDay(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("clock time must be HH:MM, got %q", clock)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("clock time must be HH:MM, got %q", clock)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("clock time must be HH:MM, got %q", clock)
	}
	return hours*60 + minutes, nil
}

// Clock renders minutes since midnight as an HH:MM string.
func Clock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD calendar date.
func ValidDate(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	year, err := strconv.Atoi(s[:4])
	if err != nil || year < 1 {
		return false
	}
	month, err := strconv.Atoi(s[5:7])
	if err != nil || month < 1 || month > 12 {
		return false
	}
	day, err := strconv.Atoi(s[8:10])
	if err != nil || day < 1 || day > daysIn(year, month) {
		return false
	}
	return true
}

func daysIn(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	}
	if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
		return 29
	}
	return 28
}
