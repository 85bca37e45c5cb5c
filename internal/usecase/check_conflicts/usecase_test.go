package check_conflicts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AFC-ReservationService/internal/domain"
	"github.com/m04kA/AFC-ReservationService/internal/scheduling"
)

type fakeMissionRepo struct {
	missions []*domain.Mission
}

func (f *fakeMissionRepo) GetByAircraftWithFilter(_ context.Context, _ domain.AircraftMissionsFilter) ([]*domain.Mission, error) {
	return f.missions, nil
}

type fakeBlockRepo struct {
	blocks []*domain.Block
}

func (f *fakeBlockRepo) GetByAircraft(_ context.Context, _ int64, _, _ *time.Time) ([]*domain.Block, error) {
	return f.blocks, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func at(h, m int) time.Time {
	return time.Date(2025, 6, 10, h, m, 0, 0, time.UTC)
}

func newTestUseCase(missions []*domain.Mission, blocks []*domain.Block) *UseCase {
	return NewUseCase(
		&fakeMissionRepo{missions: missions},
		&fakeBlockRepo{blocks: blocks},
		SchedulingParams{PreparationBuffer: 3 * time.Hour, ClosureBuffer: 3 * time.Hour},
		nopLogger{},
	)
}

func confirmedMission(id int64, start, end time.Time) *domain.Mission {
	interval, _ := domain.NewInterval(start, end)
	return &domain.Mission{
		ID:           id,
		AircraftID:   7,
		MemberID:     101,
		Interval:     interval,
		Status:       domain.StatusConfirmed,
		BlockedUntil: end.Add(3 * time.Hour),
	}
}

func TestExecute_NoConflicts(t *testing.T) {
	uc := newTestUseCase(nil, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		AircraftID: 7,
		From:       at(8, 0),
		To:         at(12, 0),
	})
	require.NoError(t, err)
	assert.False(t, resp.HasConflicts)
	assert.Empty(t, resp.Conflicts)
	assert.Nil(t, resp.NextAvailable)
}

func TestExecute_BufferConflict(t *testing.T) {
	// Миссия 10:00-12:00 блокирует судно до 15:00
	uc := newTestUseCase([]*domain.Mission{confirmedMission(1, at(10, 0), at(12, 0))}, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		AircraftID: 7,
		From:       at(14, 0),
		To:         at(16, 0),
	})
	require.NoError(t, err)
	require.True(t, resp.HasConflicts)
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, string(scheduling.OverlapBuffer), resp.Conflicts[0].OverlapKind)
	require.NotNil(t, resp.NextAvailable)
	assert.True(t, resp.NextAvailable.Equal(at(15, 0)))
}

func TestExecute_TouchingBufferEdgeIsFree(t *testing.T) {
	uc := newTestUseCase([]*domain.Mission{confirmedMission(1, at(10, 0), at(12, 0))}, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		AircraftID: 7,
		From:       at(15, 0),
		To:         at(17, 0),
	})
	require.NoError(t, err)
	assert.False(t, resp.HasConflicts)
}

func TestExecute_InvalidRange(t *testing.T) {
	uc := newTestUseCase(nil, nil)

	_, err := uc.Execute(context.Background(), &Request{
		AircraftID: 7,
		From:       at(12, 0),
		To:         at(8, 0),
	})
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = uc.Execute(context.Background(), &Request{
		AircraftID: -1,
		From:       at(8, 0),
		To:         at(12, 0),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
