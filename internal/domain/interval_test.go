package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewInterval(t *testing.T) {
	start := time.Date(2025, 6, 10, 10, 0, 0, 0, time.FixedZone("UTC+3", 3*3600))
	end := time.Date(2025, 6, 10, 12, 0, 0, 0, time.FixedZone("UTC+3", 3*3600))

	iv, ok := NewInterval(start, end)
	assert.True(t, ok)
	// Хранение всегда в UTC
	assert.Equal(t, time.UTC, iv.Start.Location())
	assert.Equal(t, 2*time.Hour, iv.Duration())

	_, ok = NewInterval(end, start)
	assert.False(t, ok)

	_, ok = NewInterval(start, start)
	assert.False(t, ok)
}

func TestIntervalOverlaps(t *testing.T) {
	base := Interval{
		Start: time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC),
	}

	overlapping := Interval{
		Start: time.Date(2025, 6, 10, 11, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 10, 13, 0, 0, 0, time.UTC),
	}
	assert.True(t, base.Overlaps(overlapping))
	assert.True(t, overlapping.Overlaps(base))

	// Касание границ пересечением не считается
	touching := Interval{
		Start: base.End,
		End:   base.End.Add(time.Hour),
	}
	assert.False(t, base.Overlaps(touching))
}
