package priorityqueue

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AFC-ReservationService/internal/domain"
	priorityRepo "github.com/m04kA/AFC-ReservationService/internal/infra/storage/priority"
	"github.com/m04kA/AFC-ReservationService/pkg/events"
)

type fakeQueueRepo struct {
	entries    []domain.PriorityEntry
	replaced   []domain.PriorityEntry
	listErr    error
	replaceErr error
}

func (f *fakeQueueRepo) List(_ context.Context) ([]domain.PriorityEntry, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]domain.PriorityEntry, len(f.entries))
	copy(out, f.entries)
	return out, nil
}

func (f *fakeQueueRepo) GetPosition(_ context.Context, memberID int64) (int, error) {
	for _, e := range f.entries {
		if e.MemberID == memberID {
			return e.Position, nil
		}
	}
	return 0, priorityRepo.ErrMemberNotFound
}

func (f *fakeQueueRepo) GetHolder(_ context.Context, position int) (int64, error) {
	for _, e := range f.entries {
		if e.Position == position {
			return e.MemberID, nil
		}
	}
	return 0, priorityRepo.ErrPositionNotFound
}

func (f *fakeQueueRepo) ReplaceAll(_ context.Context, entries []domain.PriorityEntry) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.replaced = entries
	f.entries = entries
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

func queueOf(memberIDs ...int64) []domain.PriorityEntry {
	entries := make([]domain.PriorityEntry, 0, len(memberIDs))
	for i, id := range memberIDs {
		entries = append(entries, domain.PriorityEntry{MemberID: id, Position: i + 1})
	}
	return entries
}

type recordingPublisher struct {
	published []events.Event
}

func (r *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	r.published = append(r.published, e)
	return nil
}

func newTestService(repo *fakeQueueRepo) *Service {
	return NewService(repo, &recordingPublisher{}, passthroughTxManager{}, nopLogger{})
}

func TestService_GetPosition(t *testing.T) {
	repo := &fakeQueueRepo{entries: queueOf(101, 102, 103)}
	svc := newTestService(repo)

	pos, err := svc.GetPosition(context.Background(), 102)
	require.NoError(t, err)
	assert.Equal(t, 2, pos)

	_, err = svc.GetPosition(context.Background(), 999)
	assert.ErrorIs(t, err, ErrUnknownMember)
}

func TestService_GetHolder(t *testing.T) {
	repo := &fakeQueueRepo{entries: queueOf(101, 102, 103)}
	svc := newTestService(repo)

	memberID, err := svc.GetHolder(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(103), memberID)

	_, err = svc.GetHolder(context.Background(), 7)
	assert.ErrorIs(t, err, ErrPositionNotHeld)

	_, err = svc.GetHolder(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidPosition)
}

func TestService_Rotate(t *testing.T) {
	repo := &fakeQueueRepo{entries: queueOf(101, 102, 103)}
	svc := newTestService(repo)
	publisher := svc.publisher.(*recordingPublisher)

	err := svc.Rotate(context.Background())
	require.NoError(t, err)

	want := []domain.PriorityEntry{
		{MemberID: 102, Position: 1},
		{MemberID: 103, Position: 2},
		{MemberID: 101, Position: 3},
	}
	assert.ElementsMatch(t, want, repo.replaced)

	require.Len(t, publisher.published, 1)
	assert.Equal(t, events.TypePrioritiesRotated, publisher.published[0].Type)
	assert.Equal(t, int64(102), publisher.published[0].MemberID)
}

func TestService_Rotate_EmptyQueue(t *testing.T) {
	repo := &fakeQueueRepo{}
	svc := newTestService(repo)
	publisher := svc.publisher.(*recordingPublisher)

	err := svc.Rotate(context.Background())
	require.NoError(t, err)
	assert.Nil(t, repo.replaced)
	assert.Empty(t, publisher.published)
}

func TestService_Rotate_CorruptedQueue(t *testing.T) {
	repo := &fakeQueueRepo{entries: []domain.PriorityEntry{
		{MemberID: 101, Position: 1},
		{MemberID: 102, Position: 3},
	}}
	svc := newTestService(repo)
	publisher := svc.publisher.(*recordingPublisher)

	err := svc.Rotate(context.Background())
	assert.ErrorIs(t, err, ErrQueueCorrupted)
	assert.Nil(t, repo.replaced)
	assert.Empty(t, publisher.published)
}

func TestService_AdminOverride(t *testing.T) {
	tests := []struct {
		name        string
		memberID    int64
		newPosition int
		want        []domain.PriorityEntry
		wantErr     error
	}{
		{
			name:        "move tail to head",
			memberID:    104,
			newPosition: 1,
			want: []domain.PriorityEntry{
				{MemberID: 104, Position: 1},
				{MemberID: 101, Position: 2},
				{MemberID: 102, Position: 3},
				{MemberID: 103, Position: 4},
			},
		},
		{
			name:        "move head to middle",
			memberID:    101,
			newPosition: 3,
			want: []domain.PriorityEntry{
				{MemberID: 102, Position: 1},
				{MemberID: 103, Position: 2},
				{MemberID: 101, Position: 3},
				{MemberID: 104, Position: 4},
			},
		},
		{
			name:        "unknown member",
			memberID:    999,
			newPosition: 2,
			wantErr:     ErrUnknownMember,
		},
		{
			name:        "position out of range",
			memberID:    101,
			newPosition: 5,
			wantErr:     ErrInvalidPosition,
		},
		{
			name:        "position below one",
			memberID:    101,
			newPosition: 0,
			wantErr:     ErrInvalidPosition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeQueueRepo{entries: queueOf(101, 102, 103, 104)}
			svc := newTestService(repo)

			err := svc.AdminOverride(context.Background(), tt.memberID, tt.newPosition)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, repo.replaced)
				return
			}
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, repo.replaced)
		})
	}
}

func TestService_List_RepositoryError(t *testing.T) {
	repo := &fakeQueueRepo{listErr: errors.New("connection reset")}
	svc := newTestService(repo)

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
