package availability

// Interval is a half-open [Start, End) span in minutes since midnight.
// Half-open semantics mean back-to-back bookings do not collide.
type Interval struct {
	Start int
	End   int
}

// Overlaps reports whether two half-open intervals share any minute.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && other.Start < iv.End
}

// SlotStarts returns the start minutes within [windowStart, windowEnd) where
// a booking of the given duration would not overlap any busy interval.
// Candidates advance by step minutes from the window start.
func SlotStarts(windowStart, windowEnd, duration, step int, busy []Interval) []int {
	if duration <= 0 || step <= 0 {
		return nil
	}
	if windowEnd <= windowStart {
		return nil
	}

	var slots []int
	for t := windowStart; t+duration <= windowEnd; t += step {
		candidate := Interval{Start: t, End: t + duration}
		if !overlapsAny(candidate, busy) {
			slots = append(slots, t)
		}
	}
	return slots
}

func overlapsAny(candidate Interval, busy []Interval) bool {
	for _, b := range busy {
		if candidate.Overlaps(b) {
			return true
		}
	}
	return false
}
