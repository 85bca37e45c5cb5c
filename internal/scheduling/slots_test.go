package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AFC-ReservationService/internal/domain"
)

const testAircraftID = int64(7)

func at(h, m int) time.Time {
	return time.Date(2025, 6, 10, h, m, 0, 0, time.UTC)
}

func testParams(now time.Time) SlotParams {
	return SlotParams{
		Granularity: 30 * time.Minute,
		Preparation: 3 * time.Hour,
		Closure:     3 * time.Hour,
		Now:         now,
	}
}

func confirmedMission(id int64, start, end time.Time) *domain.Mission {
	return &domain.Mission{
		ID:           id,
		AircraftID:   testAircraftID,
		Interval:     domain.Interval{Start: start, End: end},
		Status:       domain.StatusConfirmed,
		BlockedUntil: end.Add(3 * time.Hour),
	}
}

func TestGetSlotsInvalidInput(t *testing.T) {
	_, err := GetSlots(testAircraftID, domain.Interval{Start: at(12, 0), End: at(10, 0)}, nil, nil, testParams(at(0, 0)))
	assert.ErrorIs(t, err, ErrInvalidInterval)

	params := testParams(at(0, 0))
	params.Granularity = 0
	_, err = GetSlots(testAircraftID, domain.Interval{Start: at(10, 0), End: at(12, 0)}, nil, nil, params)
	assert.ErrorIs(t, err, ErrInvalidGranularity)
}

func TestGetSlotsPartitionsRange(t *testing.T) {
	query := domain.Interval{Start: at(8, 0), End: at(10, 0)}

	slots, err := GetSlots(testAircraftID, query, nil, nil, testParams(at(0, 0)))
	require.NoError(t, err)
	require.Len(t, slots, 4)

	// Слоты покрывают диапазон без зазоров и перекрытий
	assert.Equal(t, query.Start, slots[0].Interval.Start)
	assert.Equal(t, query.End, slots[len(slots)-1].Interval.End)
	for i := 1; i < len(slots); i++ {
		assert.Equal(t, slots[i-1].Interval.End, slots[i].Interval.Start)
	}
}

func TestGetSlotsClampsTrailingSlot(t *testing.T) {
	query := domain.Interval{Start: at(8, 0), End: at(8, 45)}

	slots, err := GetSlots(testAircraftID, query, nil, nil, testParams(at(0, 0)))
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, at(8, 45), slots[1].Interval.End)
	assert.Equal(t, 15*time.Minute, slots[1].Interval.Duration())
}

func TestGetSlotsBufferClassification(t *testing.T) {
	// Миссия 10:00–12:00 c трёхчасовыми буферами занимает 07:00–15:00
	mission := confirmedMission(1, at(10, 0), at(12, 0))
	query := domain.Interval{Start: at(6, 0), End: at(16, 0)}

	slots, err := GetSlots(testAircraftID, query, []*domain.Mission{mission}, nil, testParams(at(5, 0)))
	require.NoError(t, err)

	for _, slot := range slots {
		switch {
		case slot.Interval.End.Before(at(7, 0)) || slot.Interval.End.Equal(at(7, 0)),
			slot.Interval.Start.After(at(15, 0)) || slot.Interval.Start.Equal(at(15, 0)):
			assert.Equal(t, domain.SlotAvailable, slot.Status, "slot %v", slot.Interval)

		case slot.Interval.Overlaps(mission.Interval):
			assert.Equal(t, domain.SlotBooked, slot.Status, "slot %v", slot.Interval)
			require.NotNil(t, slot.RelatedMissionID)
			assert.Equal(t, mission.ID, *slot.RelatedMissionID)

		default:
			assert.Equal(t, domain.SlotBlocked, slot.Status, "slot %v", slot.Interval)
			require.NotNil(t, slot.Reason)
			assert.Equal(t, BufferReason, *slot.Reason)
			require.NotNil(t, slot.NextAvailable)
			assert.Equal(t, mission.BlockedUntil, *slot.NextAvailable)
		}
	}
}

func TestGetSlotsAdminBlockWinsOverMission(t *testing.T) {
	mission := confirmedMission(1, at(10, 0), at(12, 0))
	block := &domain.Block{
		ID:         4,
		AircraftID: testAircraftID,
		Interval:   domain.Interval{Start: at(9, 0), End: at(11, 0)},
		Reason:     "100-hour inspection",
	}
	query := domain.Interval{Start: at(10, 0), End: at(10, 30)}

	slots, err := GetSlots(testAircraftID, query, []*domain.Mission{mission}, []*domain.Block{block}, testParams(at(5, 0)))
	require.NoError(t, err)
	require.Len(t, slots, 1)

	slot := slots[0]
	assert.Equal(t, domain.SlotBlocked, slot.Status)
	require.NotNil(t, slot.Reason)
	assert.Equal(t, "100-hour inspection", *slot.Reason)

	// Связывающее ограничение — ресурс с самым ранним концом (блокировка,
	// заканчивающаяся в 11:00), а не миссия до 12:00
	require.NotNil(t, slot.NextAvailable)
	assert.Equal(t, at(11, 0), *slot.NextAvailable)
}

func TestGetSlotsEarliestEndingConflictBinds(t *testing.T) {
	early := confirmedMission(1, at(9, 0), at(10, 30))
	late := confirmedMission(2, at(10, 0), at(13, 0))
	query := domain.Interval{Start: at(10, 0), End: at(10, 30)}

	slots, err := GetSlots(testAircraftID, query, []*domain.Mission{early, late}, nil, testParams(at(5, 0)))
	require.NoError(t, err)
	require.Len(t, slots, 1)

	require.NotNil(t, slots[0].NextAvailable)
	assert.Equal(t, early.BlockedUntil, *slots[0].NextAvailable)
}

func TestGetSlotsPastSlotsInvalid(t *testing.T) {
	now := at(9, 15)
	query := domain.Interval{Start: at(8, 0), End: at(10, 0)}

	slots, err := GetSlots(testAircraftID, query, nil, nil, testParams(now))
	require.NoError(t, err)
	require.Len(t, slots, 4)

	assert.Equal(t, domain.SlotInvalid, slots[0].Status)  // 08:00–08:30
	assert.Equal(t, domain.SlotInvalid, slots[1].Status)  // 08:30–09:00
	assert.Equal(t, domain.SlotAvailable, slots[2].Status) // 09:00–09:30 ещё идёт
	assert.Equal(t, domain.SlotAvailable, slots[3].Status)
}

func TestGetSlotsIgnoresOtherAircraftAndCancelled(t *testing.T) {
	other := confirmedMission(1, at(10, 0), at(12, 0))
	other.AircraftID = testAircraftID + 1

	cancelled := confirmedMission(2, at(10, 0), at(12, 0))
	cancelled.Status = domain.StatusCancelled

	query := domain.Interval{Start: at(10, 0), End: at(11, 0)}

	slots, err := GetSlots(testAircraftID, query, []*domain.Mission{other, cancelled}, nil, testParams(at(5, 0)))
	require.NoError(t, err)
	for _, slot := range slots {
		assert.Equal(t, domain.SlotAvailable, slot.Status)
	}
}
