package scheduling

import (
	"time"

	"roomify/models"
)

// kst is the fixed local offset used when no location is configured. The
// system makes no timezone guarantee beyond one fixed offset.
var kst = time.FixedZone("KST", 9*60*60)

// Occurrence caps for recurring requests.
const (
	MaxWeeklyOccurrences  = 52
	MaxMonthlyOccurrences = 12
)

// Interval is one half-open occurrence [Start, End) of a booking series.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Expander turns a booking request into the ordered sequence of candidate
// occurrence intervals. It owns the calendar arithmetic only; conflict
// checking happens in the booking service.
type Expander struct {
	loc *time.Location
}

// NewExpander constructs an Expander that evaluates calendar arithmetic in
// the provided location. If loc is nil, KST is used.
func NewExpander(loc *time.Location) *Expander {
	if loc == nil {
		loc = kst
	}
	return &Expander{loc: loc}
}

// Expand generates the occurrence intervals for a request.
//
// Semantics:
//   - Repeat "none" yields exactly one occurrence, the base interval.
//   - Weekly advances the anchor date by 7 days, monthly by one calendar
//     month with the day-of-month clamped to the target month's length
//     (Jan 31 -> Feb 28/29), always re-applying the base time-of-day and
//     preserving the base duration exactly.
//   - Exactly one bound is set for recurring requests: RepeatCount (capped at
//     52 weekly / 12 monthly) or RepeatUntil (generate while the occurrence
//     start does not pass it, subject to the same cap).
func (e *Expander) Expand(req models.BookingRequest) ([]Interval, error) {
	start := req.StartTime.In(e.loc)
	end := req.EndTime.In(e.loc)

	if !end.After(start) {
		return nil, newValidationError("endTime", "must be after startTime")
	}
	if !req.Repeat.Valid() {
		return nil, newValidationError("repeatType", "unsupported repeat type %q", string(req.Repeat))
	}
	duration := end.Sub(start)

	if req.Repeat == models.RepeatNone {
		return []Interval{{Start: start, End: end}}, nil
	}

	limit := MaxWeeklyOccurrences
	if req.Repeat == models.RepeatMonthly {
		limit = MaxMonthlyOccurrences
	}

	var until time.Time
	count := req.RepeatCount
	switch {
	case count != 0 && req.RepeatUntil != nil:
		return nil, newValidationError("", "repeatCount and repeatEndDate are mutually exclusive")
	case req.RepeatUntil != nil:
		until = req.RepeatUntil.In(e.loc)
		if until.Before(start) {
			return nil, newValidationError("repeatEndDate", "must not precede startTime")
		}
		count = limit
	case count <= 0:
		return nil, newValidationError("repeatCount", "must be a positive number")
	case count > limit:
		return nil, newValidationError("repeatCount", "must not exceed %d for %s repeats", limit, string(req.Repeat))
	}

	baseYear, baseMonth, baseDay := start.Date()
	hour, min, sec := start.Clock()
	nsec := start.Nanosecond()

	intervals := make([]Interval, 0, count)
	for i := 0; i < count; i++ {
		var occStart time.Time
		switch {
		case i == 0:
			occStart = start
		case req.Repeat == models.RepeatWeekly:
			occStart = time.Date(baseYear, baseMonth, baseDay+7*i, hour, min, sec, nsec, e.loc)
		default: // monthly
			y, m := normalizeMonth(baseYear, baseMonth, i)
			occStart = time.Date(y, m, clampDay(baseDay, y, m), hour, min, sec, nsec, e.loc)
		}
		if req.RepeatUntil != nil && occStart.After(until) {
			break
		}
		intervals = append(intervals, Interval{Start: occStart, End: occStart.Add(duration)})
	}
	return intervals, nil
}

// normalizeMonth advances (year, month) by delta calendar months.
func normalizeMonth(year int, month time.Month, delta int) (int, time.Month) {
	t := time.Date(year, month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}

// clampDay bounds a day-of-month to the length of the target month, so a
// day-31 anchor lands on the last day of shorter months.
func clampDay(day, year int, month time.Month) int {
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > last {
		return last
	}
	return day
}
