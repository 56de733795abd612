package schedule

import "time"

// Working day boundaries for slot generation. Slots run from 09:00 up to
// but not including 19:00.
const (
	dayStart = 9 * time.Hour
	dayEnd   = 19 * time.Hour

	// SlotLength is the fixed duration of every appointment slot.
	SlotLength = 30 * time.Minute

	// CancellationNotice is the minimum notice required before a slot's
	// start time to permit cancellation.
	CancellationNotice = 4 * time.Hour

	timeLayout = "15:04"
)

// Slot is one half-hour window on a given date.
type Slot struct {
	Date  time.Time
	Start string
	End   string
}

// Slots emits consecutive half-hour slots from 09:00 to 19:00 for every
// date in [startDate, endDate] inclusive. Dates are normalized to midnight.
// No overlap check is made against previously generated ranges.
func Slots(startDate, endDate time.Time) []Slot {
	start := DateOnly(startDate)
	end := DateOnly(endDate)
	if start.After(end) {
		return nil
	}

	var slots []Slot
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		for off := dayStart; off < dayEnd; off += SlotLength {
			slots = append(slots, Slot{
				Date:  d,
				Start: d.Add(off).Format(timeLayout),
				End:   d.Add(off + SlotLength).Format(timeLayout),
			})
		}
	}
	return slots
}

// SlotsPerDay is the number of slots Slots emits for a single date.
func SlotsPerDay() int {
	return int((dayEnd - dayStart) / SlotLength)
}

// EndOfMonth returns the last day of t's month, normalized to midnight.
func EndOfMonth(t time.Time) time.Time {
	firstOfNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1)
}

// DateOnly strips the clock from t, keeping its location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartsWithinNotice reports whether start is less than CancellationNotice
// away from now. Slots already in the past are inside the window too.
func StartsWithinNotice(start, now time.Time) bool {
	return start.Before(now.Add(CancellationNotice))
}
