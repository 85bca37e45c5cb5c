package domain

import "time"

// Interval represents a half-open time interval [Start, End).
// Invariant: Start < End. All instants are stored in UTC.
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval constructs an interval, normalizing both instants to UTC.
// Returns false if start >= end.
func NewInterval(start, end time.Time) (Interval, bool) {
	iv := Interval{Start: start.UTC(), End: end.UTC()}
	return iv, iv.IsValid()
}

// IsValid returns true if the interval has positive length.
func (i Interval) IsValid() bool {
	return i.Start.Before(i.End)
}

// Duration returns the length of the interval.
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Overlaps reports whether two intervals genuinely intersect.
// Intervals that merely touch at a boundary do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// Contains reports whether the instant t lies inside the interval.
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}
