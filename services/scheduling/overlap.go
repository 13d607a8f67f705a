package scheduling

import "time"

// Overlaps reports whether two room/interval pairs conflict. Intervals are
// half-open [start, end): a reservation ending exactly when another starts is
// not a conflict, so adjacent slots can be booked back to back.
func Overlaps(roomA string, startA, endA time.Time, roomB string, startB, endB time.Time) bool {
	if roomA != roomB {
		return false
	}
	return startA.Before(endB) && startB.Before(endA)
}
