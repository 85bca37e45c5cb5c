package create_prereservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AFC-ReservationService/internal/domain"
	priorityRepo "github.com/m04kA/AFC-ReservationService/internal/infra/storage/priority"
	"github.com/m04kA/AFC-ReservationService/internal/integrations/memberservice"
	"github.com/m04kA/AFC-ReservationService/pkg/events"
)

type fakePreReservationRepo struct {
	created *domain.PreReservation
	nextID  int64
}

func (f *fakePreReservationRepo) Create(_ context.Context, p *domain.PreReservation) (*domain.PreReservation, error) {
	f.nextID++
	out := *p
	out.ID = f.nextID
	out.CreatedAt = time.Now().UTC()
	f.created = &out
	return &out, nil
}

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

type fakePriorityRepo struct {
	positions map[int64]int
}

func (f *fakePriorityRepo) GetPosition(_ context.Context, memberID int64) (int, error) {
	pos, ok := f.positions[memberID]
	if !ok {
		return 0, priorityRepo.ErrMemberNotFound
	}
	return pos, nil
}

type fakeMemberClient struct {
	members map[int64]*memberservice.Member
}

func (f *fakeMemberClient) GetMember(_ context.Context, memberID int64) (*memberservice.Member, error) {
	m, ok := f.members[memberID]
	if !ok {
		return nil, memberservice.ErrMemberNotFound
	}
	return m, nil
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

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func at(h, m int) time.Time {
	return time.Date(2025, 6, 10, h, m, 0, 0, time.UTC)
}

type fixture struct {
	uc        *UseCase
	preRepo   *fakePreReservationRepo
	publisher *recordingPublisher
}

func newFixture(missions []*domain.Mission, blocks []*domain.Block) *fixture {
	preRepo := &fakePreReservationRepo{}
	publisher := &recordingPublisher{}
	uc := NewUseCase(
		preRepo,
		&fakeMissionRepo{missions: missions},
		&fakeBlockRepo{blocks: blocks},
		&fakePriorityRepo{positions: map[int64]int{101: 1, 202: 4, 404: 3}},
		&fakeMemberClient{members: map[int64]*memberservice.Member{
			101: {ID: 101, FullName: "Ivan Petrov", IsActive: true},
			202: {ID: 202, FullName: "Anna Sidorova", IsActive: true},
			303: {ID: 303, FullName: "Former Member", IsActive: false},
			404: {ID: 404, FullName: "Olga Smirnova", IsActive: true},
		}},
		publisher,
		passthroughTxManager{},
		SchedulingParams{
			PreparationBuffer: 3 * time.Hour,
			ClosureBuffer:     3 * time.Hour,
			HoldDuration:      12 * time.Hour,
		},
		nopLogger{},
	)
	uc.timeProvider = fixedTime{now: at(0, 0)}
	return &fixture{uc: uc, preRepo: preRepo, publisher: publisher}
}

func validRequest(memberID int64) *Request {
	return &Request{
		MemberID:      memberID,
		AircraftID:    7,
		DepartureTime: at(10, 0),
		ReturnTime:    at(14, 0),
		Origin:        "UUEE",
		Destination:   "ULLI",
		QuotedCost:    12900,
	}
}

func TestExecute_CreatesWaitingHold(t *testing.T) {
	f := newFixture(nil, nil)

	resp, err := f.uc.Execute(context.Background(), validRequest(202))
	require.NoError(t, err)

	assert.Equal(t, string(domain.PreReservationWaiting), resp.Status)
	assert.Equal(t, 4, resp.PriorityPosition)
	assert.True(t, resp.HoldExpiresAt.Equal(at(12, 0)))

	require.Len(t, f.publisher.published, 1)
	assert.Equal(t, events.TypePreReservationCreated, f.publisher.published[0].Type)
}

func TestExecute_CanConfirmImmediately(t *testing.T) {
	// Флаг поднимается только у держателя первой позиции; бронирование
	// всё равно создается ожидающим и проходит через подтверждение
	tests := []struct {
		name     string
		memberID int64
		position int
		want     bool
	}{
		{name: "position 1", memberID: 101, position: 1, want: true},
		{name: "position 3", memberID: 404, position: 3, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(nil, nil)

			resp, err := f.uc.Execute(context.Background(), validRequest(tt.memberID))
			require.NoError(t, err)

			assert.Equal(t, tt.position, resp.PriorityPosition)
			assert.Equal(t, tt.want, resp.CanConfirmImmediately)
			assert.Equal(t, string(domain.PreReservationWaiting), resp.Status)
		})
	}
}

func TestExecute_SlotNotAvailable(t *testing.T) {
	interval, _ := domain.NewInterval(at(10, 0), at(12, 0))
	mission := &domain.Mission{
		ID:           1,
		AircraftID:   7,
		MemberID:     303,
		Interval:     interval,
		Status:       domain.StatusConfirmed,
		BlockedUntil: at(15, 0),
	}
	f := newFixture([]*domain.Mission{mission}, nil)

	// 14:00 попадает в буфер закрытия миссии (до 15:00)
	req := validRequest(101)
	req.DepartureTime = at(14, 0)
	req.ReturnTime = at(16, 0)

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, f.preRepo.created)
}

func TestExecute_TouchingBufferEdgeAllowed(t *testing.T) {
	interval, _ := domain.NewInterval(at(4, 0), at(6, 0))
	mission := &domain.Mission{
		ID:           1,
		AircraftID:   7,
		MemberID:     303,
		Interval:     interval,
		Status:       domain.StatusConfirmed,
		BlockedUntil: at(9, 0),
	}
	f := newFixture([]*domain.Mission{mission}, nil)

	// Вылет ровно в конце буфера закрытия — конфликта нет
	req := validRequest(101)
	req.DepartureTime = at(9, 0)
	req.ReturnTime = at(11, 0)

	_, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestExecute_MemberChecks(t *testing.T) {
	f := newFixture(nil, nil)

	_, err := f.uc.Execute(context.Background(), validRequest(999))
	assert.ErrorIs(t, err, ErrMemberNotFound)

	_, err = f.uc.Execute(context.Background(), validRequest(303))
	assert.ErrorIs(t, err, ErrMemberInactive)
}

func TestExecute_MemberNotInQueue(t *testing.T) {
	f := newFixture(nil, nil)
	f.uc.priorityRepo = &fakePriorityRepo{positions: map[int64]int{}}

	_, err := f.uc.Execute(context.Background(), validRequest(101))
	assert.ErrorIs(t, err, ErrMemberNotInQueue)
}

func TestExecute_Validation(t *testing.T) {
	f := newFixture(nil, nil)

	req := validRequest(101)
	req.DepartureTime = at(14, 0)
	req.ReturnTime = at(10, 0)
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidRange)

	req = validRequest(101)
	req.DepartureTime = time.Date(2025, 6, 9, 10, 0, 0, 0, time.UTC)
	req.ReturnTime = time.Date(2025, 6, 9, 14, 0, 0, 0, time.UTC)
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDepartureInPast)

	req = validRequest(101)
	req.Origin = " "
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
