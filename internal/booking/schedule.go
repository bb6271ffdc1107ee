package booking

// MinutesPerDay is the length of the continuous minutes-of-day domain.
const MinutesPerDay = 60 * 24

// Window is a half-open occupied interval [StartMin, EndMin) in
// minutes-of-day coordinates on a single day index.
type Window struct {
	Day      int
	StartMin int
	EndMin   int
}

// OccupiedWindows maps a booking to the day-local intervals it occupies.
// A booking ending before midnight yields one window. A booking wrapping
// past midnight yields a window clipped at minute 1440 on its start day
// plus the overflow window starting at minute 0 on day+1.
func OccupiedWindows(day, startHour, durationMinutes int) []Window {
	startMin := 60 * startHour
	endMin := startMin + durationMinutes

	if endMin < MinutesPerDay {
		return []Window{{Day: day, StartMin: startMin, EndMin: endMin}}
	}

	return []Window{
		{Day: day, StartMin: startMin, EndMin: MinutesPerDay},
		{Day: day + 1, StartMin: 0, EndMin: endMin - MinutesPerDay},
	}
}

// Overlaps reports whether two windows intersect: same day index and
// the standard half-open interval test.
func (w Window) Overlaps(o Window) bool {
	return w.Day == o.Day && w.StartMin < o.EndMin && o.StartMin < w.EndMin
}
