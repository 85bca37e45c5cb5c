package confirm_prereservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AFC-ReservationService/internal/domain"
	preReservationRepo "github.com/m04kA/AFC-ReservationService/internal/infra/storage/prereservation"
	"github.com/m04kA/AFC-ReservationService/internal/integrations/memberservice"
	"github.com/m04kA/AFC-ReservationService/pkg/events"
)

type fakePreReservationRepo struct {
	items     map[int64]*domain.PreReservation
	confirmed map[int64]int64
}

func newFakePreRepo(items ...*domain.PreReservation) *fakePreReservationRepo {
	repo := &fakePreReservationRepo{
		items:     make(map[int64]*domain.PreReservation),
		confirmed: make(map[int64]int64),
	}
	for _, p := range items {
		repo.items[p.ID] = p
	}
	return repo
}

func (f *fakePreReservationRepo) GetByID(_ context.Context, id int64) (*domain.PreReservation, error) {
	p, ok := f.items[id]
	if !ok {
		return nil, preReservationRepo.ErrPreReservationNotFound
	}
	return p, nil
}

func (f *fakePreReservationRepo) FindWaitingOverlapping(_ context.Context, aircraftID int64, interval domain.Interval, excludeID int64) ([]*domain.PreReservation, error) {
	var out []*domain.PreReservation
	for _, p := range f.items {
		if p.ID == excludeID || p.AircraftID != aircraftID || p.Status != domain.PreReservationWaiting {
			continue
		}
		if interval.Overlaps(p.Interval) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePreReservationRepo) UpdateStatus(_ context.Context, id int64, from, to domain.PreReservationStatus) error {
	p, ok := f.items[id]
	if !ok || p.Status != from {
		return preReservationRepo.ErrStaleStatus
	}
	p.Status = to
	return nil
}

func (f *fakePreReservationRepo) Confirm(_ context.Context, id, missionID int64) error {
	p, ok := f.items[id]
	if !ok || p.Status != domain.PreReservationWaiting {
		return preReservationRepo.ErrStaleStatus
	}
	p.Status = domain.PreReservationConfirmed
	p.MissionID = &missionID
	f.confirmed[id] = missionID
	return nil
}

type fakeMissionRepo struct {
	missions []*domain.Mission
	created  *domain.Mission
	nextID   int64
}

func (f *fakeMissionRepo) Create(_ context.Context, m *domain.Mission) (*domain.Mission, error) {
	f.nextID++
	out := *m
	out.ID = f.nextID
	f.created = &out
	return &out, nil
}

func (f *fakeMissionRepo) GetByAircraftWithFilter(_ context.Context, _ domain.AircraftMissionsFilter) ([]*domain.Mission, error) {
	return f.missions, nil
}

type fakeBlockRepo struct{}

func (fakeBlockRepo) GetByAircraft(_ context.Context, _ int64, _, _ *time.Time) ([]*domain.Block, error) {
	return nil, nil
}

type fakeMemberClient struct {
	balance float64
	debited []memberservice.DebitRequest
}

func (f *fakeMemberClient) GetMember(_ context.Context, memberID int64) (*memberservice.Member, error) {
	return &memberservice.Member{
		ID:                   memberID,
		FullName:             "Ivan Petrov",
		Balance:              f.balance,
		DefaultPaymentMethod: "club_account",
		IsActive:             true,
	}, nil
}

func (f *fakeMemberClient) Debit(_ context.Context, _ int64, debit memberservice.DebitRequest) (*memberservice.DebitResponse, error) {
	if debit.Amount > f.balance {
		return nil, memberservice.ErrInsufficientBalance
	}
	f.balance -= debit.Amount
	f.debited = append(f.debited, debit)
	return &memberservice.DebitResponse{}, nil
}

type recordingPublisher struct {
	published []events.Event
}

func (r *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	r.published = append(r.published, e)
	return nil
}

func (r *recordingPublisher) types() []string {
	out := make([]string, 0, len(r.published))
	for _, e := range r.published {
		out = append(out, e.Type)
	}
	return out
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

func waitingPre(id, memberID int64, position int, start, end time.Time) *domain.PreReservation {
	interval, _ := domain.NewInterval(start, end)
	return &domain.PreReservation{
		ID:                         id,
		MemberID:                   memberID,
		AircraftID:                 7,
		Interval:                   interval,
		Origin:                     "UUEE",
		Destination:                "ULLI",
		PriorityPositionAtCreation: position,
		QuotedCost:                 12900,
		Status:                     domain.PreReservationWaiting,
		HoldExpiresAt:              at(20, 0),
	}
}

type fixture struct {
	uc          *UseCase
	preRepo     *fakePreReservationRepo
	missionRepo *fakeMissionRepo
	member      *fakeMemberClient
	publisher   *recordingPublisher
}

func newFixture(pres []*domain.PreReservation, missions []*domain.Mission, balance float64) *fixture {
	preRepo := newFakePreRepo(pres...)
	missionRepo := &fakeMissionRepo{missions: missions}
	member := &fakeMemberClient{balance: balance}
	publisher := &recordingPublisher{}
	uc := NewUseCase(
		preRepo, missionRepo, fakeBlockRepo{}, member, publisher,
		passthroughTxManager{},
		SchedulingParams{PreparationBuffer: 3 * time.Hour, ClosureBuffer: 3 * time.Hour},
		nopLogger{},
	)
	uc.timeProvider = fixedTime{now: at(1, 0)}
	return &fixture{uc: uc, preRepo: preRepo, missionRepo: missionRepo, member: member, publisher: publisher}
}

func TestExecute_ConfirmsAndCreatesMission(t *testing.T) {
	pre := waitingPre(1, 101, 2, at(10, 0), at(14, 0))
	f := newFixture([]*domain.PreReservation{pre}, nil, 50000)

	resp, err := f.uc.Execute(context.Background(), &Request{PreReservationID: 1, MemberID: 101})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.MissionID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.True(t, resp.BlockedUntil.Equal(at(17, 0)))
	assert.Equal(t, float64(12900), resp.Cost)

	assert.Equal(t, domain.PreReservationConfirmed, pre.Status)
	require.NotNil(t, pre.MissionID)
	assert.Equal(t, int64(1), *pre.MissionID)

	require.Len(t, f.member.debited, 1)
	assert.Equal(t, float64(12900), f.member.debited[0].Amount)
	assert.Equal(t, "club_account", f.member.debited[0].PaymentMethod)
	assert.Equal(t, "pre-reservation 1", f.member.debited[0].Reference)

	assert.Equal(t, []string{events.TypePreReservationConfirmed, events.TypeMissionConfirmed}, f.publisher.types())
}

func TestExecute_HoldExpired(t *testing.T) {
	pre := waitingPre(1, 101, 2, at(10, 0), at(14, 0))
	pre.HoldExpiresAt = at(0, 30)
	f := newFixture([]*domain.PreReservation{pre}, nil, 50000)

	_, err := f.uc.Execute(context.Background(), &Request{PreReservationID: 1, MemberID: 101})
	assert.ErrorIs(t, err, ErrHoldExpired)
	assert.Equal(t, domain.PreReservationExpired, pre.Status)
	assert.Equal(t, []string{events.TypePreReservationExpired}, f.publisher.types())
}

func TestExecute_YieldsToHigherPriority(t *testing.T) {
	// Проигравший приоритетному конкуренту истекает: superseded
	// зарезервирован за отменой самим участником
	mine := waitingPre(1, 101, 4, at(10, 0), at(14, 0))
	rival := waitingPre(2, 202, 1, at(11, 0), at(13, 0))
	f := newFixture([]*domain.PreReservation{mine, rival}, nil, 50000)

	_, err := f.uc.Execute(context.Background(), &Request{PreReservationID: 1, MemberID: 101})
	assert.ErrorIs(t, err, ErrSupersededByPriority)
	assert.Equal(t, domain.PreReservationExpired, mine.Status)
	assert.Equal(t, domain.PreReservationWaiting, rival.Status)
	assert.Nil(t, f.missionRepo.created)
	assert.Equal(t, []string{events.TypePreReservationExpired}, f.publisher.types())
}

func TestExecute_LowerPriorityRivalDoesNotBlock(t *testing.T) {
	mine := waitingPre(1, 101, 1, at(10, 0), at(14, 0))
	rival := waitingPre(2, 202, 4, at(11, 0), at(13, 0))
	f := newFixture([]*domain.PreReservation{mine, rival}, nil, 50000)

	_, err := f.uc.Execute(context.Background(), &Request{PreReservationID: 1, MemberID: 101})
	require.NoError(t, err)
	assert.Equal(t, domain.PreReservationConfirmed, mine.Status)
}

func TestExecute_SlotTaken(t *testing.T) {
	pre := waitingPre(1, 101, 2, at(10, 0), at(14, 0))
	interval, _ := domain.NewInterval(at(9, 0), at(11, 0))
	taken := &domain.Mission{
		ID:           9,
		AircraftID:   7,
		MemberID:     202,
		Interval:     interval,
		Status:       domain.StatusConfirmed,
		BlockedUntil: at(14, 0),
	}
	f := newFixture([]*domain.PreReservation{pre}, []*domain.Mission{taken}, 50000)

	_, err := f.uc.Execute(context.Background(), &Request{PreReservationID: 1, MemberID: 101})
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Equal(t, domain.PreReservationExpired, pre.Status)
	assert.Nil(t, f.missionRepo.created)
}

func TestExecute_InsufficientBalance(t *testing.T) {
	pre := waitingPre(1, 101, 2, at(10, 0), at(14, 0))
	f := newFixture([]*domain.PreReservation{pre}, nil, 100)

	_, err := f.uc.Execute(context.Background(), &Request{PreReservationID: 1, MemberID: 101})
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, domain.PreReservationExpired, pre.Status)
	assert.Nil(t, f.missionRepo.created)
}

func TestExecute_GuardChecks(t *testing.T) {
	confirmedPre := waitingPre(2, 101, 2, at(16, 0), at(18, 0))
	confirmedPre.Status = domain.PreReservationConfirmed
	f := newFixture([]*domain.PreReservation{
		waitingPre(1, 101, 2, at(10, 0), at(14, 0)),
		confirmedPre,
	}, nil, 50000)

	_, err := f.uc.Execute(context.Background(), &Request{PreReservationID: 42, MemberID: 101})
	assert.ErrorIs(t, err, ErrPreReservationNotFound)

	_, err = f.uc.Execute(context.Background(), &Request{PreReservationID: 1, MemberID: 202})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = f.uc.Execute(context.Background(), &Request{PreReservationID: 2, MemberID: 101})
	assert.ErrorIs(t, err, ErrNotWaiting)
}
