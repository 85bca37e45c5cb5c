package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AFC-ReservationService/internal/domain"
)

func TestFindConflictsInvalidInterval(t *testing.T) {
	_, err := FindConflicts(
		domain.Interval{Start: at(12, 0), End: at(12, 0)},
		testAircraftID, nil, nil, 3*time.Hour, 3*time.Hour,
	)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestFindConflictsFreeInterval(t *testing.T) {
	mission := confirmedMission(1, at(10, 0), at(12, 0))

	// 15:00–16:00 начинается ровно на границе буфера закрытия — не конфликт
	conflicts, err := FindConflicts(
		domain.Interval{Start: at(15, 0), End: at(16, 0)},
		testAircraftID, []*domain.Mission{mission}, nil, 3*time.Hour, 3*time.Hour,
	)
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestFindConflictsBufferOverlap(t *testing.T) {
	// Миссия 10:00–12:00, буферы по 3 часа → судно занято 07:00–15:00.
	// Запрос 14:00–16:00 должен дать буферный конфликт с nextAvailable=15:00
	mission := confirmedMission(1, at(10, 0), at(12, 0))

	conflicts, err := FindConflicts(
		domain.Interval{Start: at(14, 0), End: at(16, 0)},
		testAircraftID, []*domain.Mission{mission}, nil, 3*time.Hour, 3*time.Hour,
	)
	require.NoError(t, err)
	require.Len(t, conflicts, 1)

	c := conflicts[0]
	assert.Equal(t, OverlapBuffer, c.OverlapKind)
	require.NotNil(t, c.MissionID)
	assert.Equal(t, mission.ID, *c.MissionID)
	assert.Equal(t, at(15, 0), c.NextAvailable)
}

func TestFindConflictsDirectOverlap(t *testing.T) {
	mission := confirmedMission(1, at(10, 0), at(12, 0))

	conflicts, err := FindConflicts(
		domain.Interval{Start: at(11, 0), End: at(13, 0)},
		testAircraftID, []*domain.Mission{mission}, nil, 3*time.Hour, 3*time.Hour,
	)
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, OverlapDirect, conflicts[0].OverlapKind)
}

func TestFindConflictsTouchingPreparationEdge(t *testing.T) {
	mission := confirmedMission(1, at(10, 0), at(12, 0))

	// Запрос заканчивается ровно в начале буфера подготовки (07:00) —
	// буферы полуоткрыты, стыковка вплотную разрешена
	conflicts, err := FindConflicts(
		domain.Interval{Start: at(6, 0), End: at(7, 0)},
		testAircraftID, []*domain.Mission{mission}, nil, 3*time.Hour, 3*time.Hour,
	)
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestFindConflictsBlockExact(t *testing.T) {
	block := &domain.Block{
		ID:         9,
		AircraftID: testAircraftID,
		Interval:   domain.Interval{Start: at(10, 0), End: at(12, 0)},
		Reason:     "annual inspection",
	}

	// Блокировки без буферов: касание границы — не конфликт
	conflicts, err := FindConflicts(
		domain.Interval{Start: at(12, 0), End: at(13, 0)},
		testAircraftID, nil, []*domain.Block{block}, 3*time.Hour, 3*time.Hour,
	)
	require.NoError(t, err)
	assert.Empty(t, conflicts)

	conflicts, err = FindConflicts(
		domain.Interval{Start: at(11, 0), End: at(13, 0)},
		testAircraftID, nil, []*domain.Block{block}, 3*time.Hour, 3*time.Hour,
	)
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, OverlapDirect, conflicts[0].OverlapKind)
	require.NotNil(t, conflicts[0].BlockID)
	assert.Equal(t, block.ID, *conflicts[0].BlockID)
	assert.Equal(t, at(12, 0), conflicts[0].NextAvailable)
}

func TestFindConflictsSortedByNextAvailable(t *testing.T) {
	first := confirmedMission(1, at(8, 0), at(9, 0))   // blockedUntil 12:00
	second := confirmedMission(2, at(11, 0), at(13, 0)) // blockedUntil 16:00

	conflicts, err := FindConflicts(
		domain.Interval{Start: at(9, 30), End: at(11, 30)},
		testAircraftID, []*domain.Mission{second, first}, nil, 3*time.Hour, 3*time.Hour,
	)
	require.NoError(t, err)
	require.Len(t, conflicts, 2)
	assert.Equal(t, first.ID, *conflicts[0].MissionID)
	assert.Equal(t, second.ID, *conflicts[1].MissionID)
}

// Пустой список конфликтов и полная доступность слотов — одно и то же
// утверждение, сделанное двумя компонентами
func TestFindConflictsAgreesWithGetSlots(t *testing.T) {
	mission := confirmedMission(1, at(10, 0), at(12, 0))
	missions := []*domain.Mission{mission}

	intervals := []domain.Interval{
		{Start: at(15, 0), End: at(17, 0)}, // свободно
		{Start: at(14, 0), End: at(16, 0)}, // буферный конфликт
		{Start: at(11, 0), End: at(13, 0)}, // прямой конфликт
	}

	for _, iv := range intervals {
		conflicts, err := FindConflicts(iv, testAircraftID, missions, nil, 3*time.Hour, 3*time.Hour)
		require.NoError(t, err)

		slots, err := GetSlots(testAircraftID, iv, missions, nil, testParams(at(0, 0)))
		require.NoError(t, err)

		allAvailable := true
		for _, s := range slots {
			if s.Status != domain.SlotAvailable {
				allAvailable = false
			}
		}

		assert.Equal(t, len(conflicts) == 0, allAvailable, "interval %v", iv)
	}
}
