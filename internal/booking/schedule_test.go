package booking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matuteb/cancha-rental-backend/internal/booking"
)

// anyOverlap expands both bookings into their occupied windows and
// checks for any intersecting pair.
func anyOverlap(day1, hour1, dur1, day2, hour2, dur2 int) bool {
	for _, w := range booking.OccupiedWindows(day1, hour1, dur1) {
		for _, o := range booking.OccupiedWindows(day2, hour2, dur2) {
			if w.Overlaps(o) {
				return true
			}
		}
	}
	return false
}

func TestOccupiedWindowsSameDay(t *testing.T) {
	windows := booking.OccupiedWindows(5, 18, 45)
	require.Len(t, windows, 1)
	assert.Equal(t, booking.Window{Day: 5, StartMin: 1080, EndMin: 1125}, windows[0])
}

func TestOccupiedWindowsWrapsMidnight(t *testing.T) {
	windows := booking.OccupiedWindows(5, 23, 120)
	require.Len(t, windows, 2)
	assert.Equal(t, booking.Window{Day: 5, StartMin: 1380, EndMin: 1440}, windows[0])
	assert.Equal(t, booking.Window{Day: 6, StartMin: 0, EndMin: 60}, windows[1])
}

func TestOccupiedWindowsEndingExactlyAtMidnight(t *testing.T) {
	// 23:00 + 60min ends at minute 1440, which belongs to the next day,
	// so the overflow window is empty but present.
	windows := booking.OccupiedWindows(5, 23, 60)
	require.Len(t, windows, 2)
	assert.Equal(t, booking.Window{Day: 5, StartMin: 1380, EndMin: 1440}, windows[0])
	assert.Equal(t, booking.Window{Day: 6, StartMin: 0, EndMin: 0}, windows[1])
}

func TestWindowOverlaps(t *testing.T) {
	cases := []struct {
		name                                 string
		day1, hour1, dur1, day2, hour2, dur2 int
		want                                 bool
	}{
		{"identical", 5, 18, 45, 5, 18, 45, true},
		{"contained", 5, 18, 60, 5, 18, 30, true},
		{"partial overlap", 5, 18, 45, 5, 18, 30, true},
		{"back to back", 5, 18, 60, 5, 19, 60, false},
		{"different day", 5, 18, 45, 6, 18, 45, false},
		{"different hour same day", 5, 18, 45, 5, 20, 45, false},
		{"midnight wrap hits next day start", 5, 23, 120, 6, 0, 60, true},
		{"midnight wrap misses later next day", 5, 23, 120, 6, 2, 60, false},
		{"midnight wrap still occupies start day", 5, 23, 120, 5, 22, 90, true},
		{"empty overflow window does not collide", 5, 23, 60, 6, 0, 30, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, anyOverlap(tc.day1, tc.hour1, tc.dur1, tc.day2, tc.hour2, tc.dur2))
			assert.Equal(t, tc.want, anyOverlap(tc.day2, tc.hour2, tc.dur2, tc.day1, tc.hour1, tc.dur1), "overlap must be symmetric")
		})
	}
}
