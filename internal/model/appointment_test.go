package model

import "testing"

func TestMinuteOfDay(t *testing.T) {
	cases := []struct {
		clock   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"09:15", 555, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"12", 0, true},
		{"12:00:00", 0, true},
		{"nine am", 0, true},
		{"", 0, true},
	}

	for _, tc := range cases {
		got, err := MinuteOfDay(tc.clock)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("MinuteOfDay(%q): expected error, got %d", tc.clock, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("MinuteOfDay(%q) failed: %v", tc.clock, err)
		}
		if got != tc.want {
			t.Fatalf("MinuteOfDay(%q) = %d, want %d", tc.clock, got, tc.want)
		}
	}
}

func TestClockRoundTrip(t *testing.T) {
	for _, clock := range []string{"00:00", "09:05", "13:30", "23:59"} {
		m, err := MinuteOfDay(clock)
		if err != nil {
			t.Fatalf("MinuteOfDay(%q) failed: %v", clock, err)
		}
		if Clock(m) != clock {
			t.Fatalf("Clock(%d) = %s, want %s", m, Clock(m), clock)
		}
	}
}

func TestParseStatus(t *testing.T) {
	if s, err := ParseStatus(" Scheduled "); err != nil || s != StatusScheduled {
		t.Fatalf("expected scheduled, got %q (%v)", s, err)
	}
	if _, err := ParseStatus("archived"); err == nil {
		t.Fatal("expected error for unknown status")
	}
	if _, err := ParseStatus(""); err == nil {
		t.Fatal("expected error for empty status")
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode("In-Person"); err != nil || m != ModeInPerson {
		t.Fatalf("expected in-person, got %q (%v)", m, err)
	}
	if _, err := ParseMode("telegraph"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestValidDate(t *testing.T) {
	valid := []string{"2025-12-28", "2024-02-29", "2025-01-01"}
	for _, d := range valid {
		if !ValidDate(d) {
			t.Fatalf("expected %q to be valid", d)
		}
	}
	invalid := []string{"2025-02-29", "2025-13-01", "2025-00-10", "2025-12-32", "20251228", "2025-1-2", ""}
	for _, d := range invalid {
		if ValidDate(d) {
			t.Fatalf("expected %q to be invalid", d)
		}
	}
}
