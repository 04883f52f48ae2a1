package availability

import "testing"

func TestSlotStarts_Basic(t *testing.T) {
	// 09:00-10:00 window, 15 minute slots, 09:15-09:45 busy.
	busy := []Interval{{Start: 555, End: 585}}

	slots := SlotStarts(540, 600, 15, 15, busy)
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if slots[0] != 540 {
		t.Fatalf("expected first slot at 09:00 (540), got %d", slots[0])
	}
	if slots[1] != 585 {
		t.Fatalf("expected second slot at 09:45 (585), got %d", slots[1])
	}
}

func TestSlotStarts_SlotMustFitWindow(t *testing.T) {
	// A 45-minute booking does not fit after 16:15 in a window ending 17:00.
	slots := SlotStarts(960, 1020, 45, 15, nil)
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if slots[len(slots)-1] != 975 {
		t.Fatalf("expected last slot at 16:15 (975), got %d", slots[len(slots)-1])
	}
}

func TestSlotStarts_DegenerateInputs(t *testing.T) {
	if got := SlotStarts(600, 540, 30, 15, nil); got != nil {
		t.Fatalf("expected nil for inverted window, got %v", got)
	}
	if got := SlotStarts(540, 600, 0, 15, nil); got != nil {
		t.Fatalf("expected nil for zero duration, got %v", got)
	}
	if got := SlotStarts(540, 600, 30, 0, nil); got != nil {
		t.Fatalf("expected nil for zero step, got %v", got)
	}
}

func TestOverlaps_HalfOpen(t *testing.T) {
	a := Interval{Start: 540, End: 570}
	cases := []struct {
		name string
		b    Interval
		want bool
	}{
		{"identical", Interval{540, 570}, true},
		{"starts inside", Interval{555, 585}, true},
		{"ends inside", Interval{525, 555}, true},
		{"touching end", Interval{570, 600}, false},
		{"touching start", Interval{510, 540}, false},
		{"disjoint", Interval{600, 630}, false},
	}
	for _, tc := range cases {
		if got := a.Overlaps(tc.b); got != tc.want {
			t.Fatalf("%s: Overlaps(%+v) = %v, want %v", tc.name, tc.b, got, tc.want)
		}
	}
}
