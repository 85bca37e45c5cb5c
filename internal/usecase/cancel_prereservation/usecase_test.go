package cancel_prereservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AFC-ReservationService/internal/domain"
	preReservationRepo "github.com/m04kA/AFC-ReservationService/internal/infra/storage/prereservation"
	"github.com/m04kA/AFC-ReservationService/pkg/events"
)

type fakePreReservationRepo struct {
	items map[int64]*domain.PreReservation
}

func (f *fakePreReservationRepo) GetByID(_ context.Context, id int64) (*domain.PreReservation, error) {
	p, ok := f.items[id]
	if !ok {
		return nil, preReservationRepo.ErrPreReservationNotFound
	}
	return p, nil
}

func (f *fakePreReservationRepo) UpdateStatus(_ context.Context, id int64, from, to domain.PreReservationStatus) error {
	p, ok := f.items[id]
	if !ok || p.Status != from {
		return preReservationRepo.ErrStaleStatus
	}
	p.Status = to
	return nil
}

type recordingPublisher struct {
	published []events.Event
}

func (r *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	r.published = append(r.published, e)
	return nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testPre(id, memberID int64, status domain.PreReservationStatus) *domain.PreReservation {
	start := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
	interval, _ := domain.NewInterval(start, start.Add(4*time.Hour))
	return &domain.PreReservation{
		ID:         id,
		MemberID:   memberID,
		AircraftID: 7,
		Interval:   interval,
		Status:     status,
	}
}

func TestExecute_CancelsWaiting(t *testing.T) {
	pre := testPre(1, 101, domain.PreReservationWaiting)
	repo := &fakePreReservationRepo{items: map[int64]*domain.PreReservation{1: pre}}
	publisher := &recordingPublisher{}
	uc := NewUseCase(repo, publisher, passthroughTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), &Request{PreReservationID: 1, MemberID: 101})
	require.NoError(t, err)
	assert.Equal(t, domain.PreReservationSuperseded, pre.Status)

	require.Len(t, publisher.published, 1)
	assert.Equal(t, events.TypePreReservationSuperseded, publisher.published[0].Type)
}

func TestExecute_Errors(t *testing.T) {
	repo := &fakePreReservationRepo{items: map[int64]*domain.PreReservation{
		1: testPre(1, 101, domain.PreReservationWaiting),
		2: testPre(2, 101, domain.PreReservationConfirmed),
	}}
	uc := NewUseCase(repo, &recordingPublisher{}, passthroughTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), &Request{PreReservationID: 42, MemberID: 101})
	assert.ErrorIs(t, err, ErrPreReservationNotFound)

	err = uc.Execute(context.Background(), &Request{PreReservationID: 1, MemberID: 202})
	assert.ErrorIs(t, err, ErrAccessDenied)

	err = uc.Execute(context.Background(), &Request{PreReservationID: 2, MemberID: 101})
	assert.ErrorIs(t, err, ErrNotWaiting)

	err = uc.Execute(context.Background(), &Request{PreReservationID: 0, MemberID: 101})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
