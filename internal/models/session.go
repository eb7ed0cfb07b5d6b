package models

import "time"

// IntervalKind identifies the kind of interval a record tracks.
type IntervalKind string

const (
	KindWork       IntervalKind = "work"
	KindShortBreak IntervalKind = "short_break"
	KindLongBreak  IntervalKind = "long_break"
)

// IsBreak reports whether the kind is a break interval.
func (k IntervalKind) IsBreak() bool {
	return k == KindShortBreak || k == KindLongBreak
}

// Label returns a human-readable name for the kind.
func (k IntervalKind) Label() string {
	switch k {
	case KindWork:
		return "work session"
	case KindShortBreak:
		return "short break"
	case KindLongBreak:
		return "long break"
	default:
		return string(k)
	}
}

// SessionRecord is one finished interval, completed or cancelled.
// Records are append-only and never mutated once written. Field names are
// stable across versions; readers treat missing fields as zero values so
// old history files keep loading.
type SessionRecord struct {
	ID              string       `json:"id,omitempty"` // ULID, assigned by the store on append
	Kind            IntervalKind `json:"kind"`
	StartedAt       time.Time    `json:"started_at"`
	EndedAt         time.Time    `json:"ended_at"`
	DurationSeconds int          `json:"duration_seconds"` // planned length, not actual elapsed
	Completed       bool         `json:"completed"`        // false when the user cancelled early
}
