package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/AFC-ReservationService/internal/domain"
)

func TestComputeBuffers(t *testing.T) {
	interval := domain.Interval{
		Start: time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC),
	}

	window := ComputeBuffers(interval, 3*time.Hour, 3*time.Hour)

	assert.Equal(t, time.Date(2025, 6, 10, 7, 0, 0, 0, time.UTC), window.PreparationStart)
	assert.Equal(t, time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC), window.ClosureEnd)
}

func TestBufferWindowContains(t *testing.T) {
	window := BufferWindow{
		PreparationStart: time.Date(2025, 6, 10, 7, 0, 0, 0, time.UTC),
		ClosureEnd:       time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC),
	}

	assert.True(t, window.Contains(time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)))
	// Границы полуоткрыты: касание краёв окна допустимо
	assert.False(t, window.Contains(window.PreparationStart))
	assert.False(t, window.Contains(window.ClosureEnd))
}

func TestDetectOvernight(t *testing.T) {
	day := func(d, h, m int) time.Time {
		return time.Date(2025, 6, d, h, m, 0, 0, time.UTC)
	}

	tests := []struct {
		name        string
		departure   time.Time
		ret         time.Time
		isOvernight bool
		nightCount  int
	}{
		{
			name:      "same day round trip",
			departure: day(10, 8, 0),
			ret:       day(10, 18, 0),
		},
		{
			name:        "single midnight crossing",
			departure:   day(10, 8, 0),
			ret:         day(11, 2, 0),
			isOvernight: true,
			nightCount:  1,
		},
		{
			name:        "two nights away",
			departure:   day(10, 9, 0),
			ret:         day(12, 17, 0),
			isOvernight: true,
			nightCount:  2,
		},
		{
			name:        "departure just before midnight",
			departure:   day(10, 23, 50),
			ret:         day(11, 0, 30),
			isOvernight: true,
			nightCount:  1,
		},
		{
			name:      "return before departure",
			departure: day(10, 12, 0),
			ret:       day(10, 8, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := DetectOvernight(tt.departure, tt.ret)
			assert.Equal(t, tt.isOvernight, info.IsOvernight)
			assert.Equal(t, tt.nightCount, info.NightCount)
		})
	}
}

func TestDetectOvernightZoneIndependent(t *testing.T) {
	zone := time.FixedZone("UTC+5", 5*3600)

	depUTC := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	retUTC := time.Date(2025, 6, 11, 2, 0, 0, 0, time.UTC)

	// Оба момента в одной зоне — результат не зависит от выбора зоны
	depZone := time.Date(2025, 6, 10, 8, 0, 0, 0, zone)
	retZone := time.Date(2025, 6, 11, 2, 0, 0, 0, zone)

	assert.Equal(t, DetectOvernight(depUTC, retUTC), DetectOvernight(depZone, retZone))
}
