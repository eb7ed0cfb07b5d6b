package stats

import (
	"time"

	"github.com/joescharf/pomo/internal/models"
)

// Window restricts aggregation to a time range relative to "now".
type Window string

const (
	AllTime Window = "all time"
	Week    Window = "this week"
	Month   Window = "this month"
)

// Summary holds aggregate counts for one window. A zero Summary is the
// valid result for an empty window.
type Summary struct {
	WorkSessions int // completed work intervals
	Breaks       int // completed short and long breaks
	FocusSeconds int // planned seconds summed over completed work intervals
	Incomplete   int // intervals the user cancelled early
}

// FocusMinutes returns the total focused time in whole minutes.
func (s Summary) FocusMinutes() int { return s.FocusSeconds / 60 }

// Filter returns the records whose StartedAt falls inside the window,
// preserving order. The week runs Monday 00:00 local to the next Monday;
// the month is the current calendar month.
func Filter(records []models.SessionRecord, w Window, now time.Time) []models.SessionRecord {
	start, end, bounded := bounds(w, now)
	if !bounded {
		return records
	}

	out := make([]models.SessionRecord, 0, len(records))
	for _, rec := range records {
		if !rec.StartedAt.Before(start) && rec.StartedAt.Before(end) {
			out = append(out, rec)
		}
	}
	return out
}

// Aggregate summarizes the records inside the window.
func Aggregate(records []models.SessionRecord, w Window, now time.Time) Summary {
	var sum Summary
	for _, rec := range Filter(records, w, now) {
		if !rec.Completed {
			sum.Incomplete++
			continue
		}
		if rec.Kind == models.KindWork {
			sum.WorkSessions++
			sum.FocusSeconds += rec.DurationSeconds
		} else if rec.Kind.IsBreak() {
			sum.Breaks++
		}
	}
	return sum
}

// AvgWorkPerDay returns completed work sessions per distinct active day
// over the given (already filtered) records, or 0 if there are none.
func AvgWorkPerDay(records []models.SessionRecord) float64 {
	days := make(map[string]struct{})
	work := 0
	for _, rec := range records {
		if !rec.Completed || rec.Kind != models.KindWork {
			continue
		}
		days[rec.StartedAt.Format("2006-01-02")] = struct{}{}
		work++
	}
	if len(days) == 0 {
		return 0
	}
	return float64(work) / float64(len(days))
}

// Recent returns up to n records, newest first.
func Recent(records []models.SessionRecord, n int) []models.SessionRecord {
	out := make([]models.SessionRecord, 0, n)
	for i := len(records) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, records[i])
	}
	return out
}

// bounds returns the half-open interval [start, end) for a window, or
// bounded=false for AllTime. Boundaries are local-time midnights so a
// record started exactly on a boundary lands in exactly one window.
func bounds(w Window, now time.Time) (start, end time.Time, bounded bool) {
	switch w {
	case Week:
		start = weekStart(now)
		return start, start.AddDate(0, 0, 7), true
	case Month:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return start, start.AddDate(0, 1, 0), true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// weekStart returns Monday 00:00 local of the week containing t.
func weekStart(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(midnight.Weekday()) + 6) % 7 // Monday = 0
	return midnight.AddDate(0, 0, -offset)
}
