package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/immxrtalbeast/techflow_meet/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMeeting(t *testing.T, creator uuid.UUID, createdAt time.Time) *domain.Meeting {
	t.Helper()

	return domain.NewMeeting("standup", creator, uuid.New(), domain.MeetingTypeInstant, nil, nil, createdAt)
}

func TestInMemoryMeetingRepository_DuplicateRoomID(t *testing.T) {
	repo := NewInMemoryMeetingRepository()
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	first := newMeeting(t, uuid.New(), now)
	require.NoError(t, repo.Create(ctx, first))

	second := newMeeting(t, uuid.New(), now)
	second.RoomID = first.RoomID
	require.ErrorIs(t, repo.Create(ctx, second), ErrRoomIDExists)
}

func TestInMemoryMeetingRepository_GetByRoomID(t *testing.T) {
	repo := NewInMemoryMeetingRepository()
	ctx := context.Background()

	meeting := newMeeting(t, uuid.New(), time.Now())
	require.NoError(t, repo.Create(ctx, meeting))

	got, err := repo.GetByRoomID(ctx, meeting.RoomID)
	require.NoError(t, err)
	assert.Equal(t, meeting.ID, got.ID)

	// Mutating the returned record must not leak into the store.
	got.Title = "changed"
	again, err := repo.GetByRoomID(ctx, meeting.RoomID)
	require.NoError(t, err)
	assert.Equal(t, "standup", again.Title)

	_, err = repo.GetByRoomID(ctx, "no-such-room")
	require.ErrorIs(t, err, ErrMeetingNotFound)
}

func TestInMemoryMeetingRepository_ListByUser(t *testing.T) {
	repo := NewInMemoryMeetingRepository()
	ctx := context.Background()
	user := uuid.New()
	base := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	older := newMeeting(t, user, base)
	newer := newMeeting(t, user, base.Add(time.Hour))
	other := newMeeting(t, uuid.New(), base)

	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))
	require.NoError(t, repo.Create(ctx, other))

	got, err := repo.ListByUser(ctx, user)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, newer.ID, got[0].ID)
	assert.Equal(t, older.ID, got[1].ID)

	asParticipant, err := repo.ListByUser(ctx, older.Participant)
	require.NoError(t, err)
	require.Len(t, asParticipant, 1)
	assert.Equal(t, older.ID, asParticipant[0].ID)
}

func TestInMemoryMeetingRepository_Delete(t *testing.T) {
	repo := NewInMemoryMeetingRepository()
	ctx := context.Background()

	meeting := newMeeting(t, uuid.New(), time.Now())
	require.NoError(t, repo.Create(ctx, meeting))
	require.NoError(t, repo.Delete(ctx, meeting.ID))

	_, err := repo.GetByRoomID(ctx, meeting.RoomID)
	require.ErrorIs(t, err, ErrMeetingNotFound)

	require.ErrorIs(t, repo.Delete(ctx, meeting.ID), ErrMeetingNotFound)
}

func TestInMemoryMeetingRepository_Update(t *testing.T) {
	repo := NewInMemoryMeetingRepository()
	ctx := context.Background()

	meeting := newMeeting(t, uuid.New(), time.Now())
	require.NoError(t, repo.Create(ctx, meeting))

	meeting.IsClosed = true
	require.NoError(t, repo.Update(ctx, meeting))

	got, err := repo.GetByRoomID(ctx, meeting.RoomID)
	require.NoError(t, err)
	assert.True(t, got.IsClosed)

	unknown := newMeeting(t, uuid.New(), time.Now())
	require.ErrorIs(t, repo.Update(ctx, unknown), ErrMeetingNotFound)
}

func TestInMemoryScheduleRepository_ListByAttendee(t *testing.T) {
	repo := NewInMemoryScheduleRepository()
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	older := &domain.Schedule{
		ID:            uuid.New(),
		Title:         "older",
		AssignedUsers: []string{"a@example.com"},
		CreatedAt:     base,
	}
	newer := &domain.Schedule{
		ID:            uuid.New(),
		Title:         "newer",
		AssignedUsers: []string{"a@example.com", "b@example.com"},
		CreatedAt:     base.Add(time.Hour),
	}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	got, err := repo.ListByAttendee(ctx, "a@example.com")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "newer", got[0].Title)
	assert.Equal(t, "older", got[1].Title)

	onlyNewer, err := repo.ListByAttendee(ctx, "b@example.com")
	require.NoError(t, err)
	require.Len(t, onlyNewer, 1)

	none, err := repo.ListByAttendee(ctx, "z@example.com")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestInMemoryUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewInMemoryUserRepository()
	ctx := context.Background()

	first := domain.NewUser("Alice", "alice@example.com")
	require.NoError(t, repo.Create(ctx, first))

	second := domain.NewUser("Other Alice", "alice@example.com")
	require.ErrorIs(t, repo.Create(ctx, second), ErrUserEmailExists)

	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)

	_, err = repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestInMemoryUserRepository_CopiesRecords(t *testing.T) {
	repo := NewInMemoryUserRepository()
	ctx := context.Background()

	user := domain.NewUser("Alice", "alice@example.com")
	require.NoError(t, repo.Create(ctx, user))

	// Mutating the caller's record after Create must not leak into the store.
	user.Name = "changed after create"
	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)

	// Nor may mutating a returned record.
	got.Name = "changed after get"
	again, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", again.Name)
}
