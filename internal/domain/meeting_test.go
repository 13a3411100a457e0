package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestNewMeeting_RoomID(t *testing.T) {
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	creator := uuid.New()
	participant := uuid.New()

	m := NewMeeting("Standup", creator, participant, MeetingTypeInstant, nil, nil, now)

	require.NotEmpty(t, m.RoomID)
	parts := strings.SplitN(m.RoomID, "-", 2)
	require.Len(t, parts, 2)
	assert.Equal(t, "1735725600000", parts[0])
	assert.Len(t, parts[1], 6)

	other := NewMeeting("Standup", creator, participant, MeetingTypeInstant, nil, nil, now)
	assert.NotEqual(t, m.RoomID, other.RoomID)
}

func TestMeeting_IsAuthorized(t *testing.T) {
	creator := uuid.New()
	participant := uuid.New()
	stranger := uuid.New()

	m := &Meeting{Creator: creator, Participant: participant}

	assert.True(t, m.IsAuthorized(creator))
	assert.True(t, m.IsAuthorized(participant))
	assert.False(t, m.IsAuthorized(stranger))

	selfMeeting := &Meeting{Creator: creator, Participant: creator}
	assert.True(t, selfMeeting.IsAuthorized(creator))

	var nilMeeting *Meeting
	assert.False(t, nilMeeting.IsAuthorized(creator))
}

func TestMeeting_CanCloseAndDelete(t *testing.T) {
	creator := uuid.New()
	participant := uuid.New()

	m := &Meeting{Creator: creator, Participant: participant}

	assert.True(t, m.CanClose(creator))
	assert.True(t, m.CanDelete(creator))
	assert.False(t, m.CanClose(participant))
	assert.False(t, m.CanDelete(participant))
}

func TestMeeting_Status_Scheduled(t *testing.T) {
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 1, 11, 0, 0, 0, time.UTC)

	m := &Meeting{
		MeetingType: MeetingTypeScheduled,
		StartTime:   timePtr(start),
		EndTime:     timePtr(end),
	}

	tests := []struct {
		name string
		now  time.Time
		want MeetingStatus
	}{
		{"before window", time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC), MeetingStatusUpcoming},
		{"inside window", time.Date(2025, 1, 1, 10, 30, 0, 0, time.UTC), MeetingStatusOngoing},
		{"at start", start, MeetingStatusOngoing},
		{"at end", end, MeetingStatusOngoing},
		{"after window", time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC), MeetingStatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Status(tt.now))
		})
	}
}

func TestMeeting_Status_Instant(t *testing.T) {
	m := &Meeting{MeetingType: MeetingTypeInstant}

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, MeetingStatusOngoing, m.Status(now))
	assert.Equal(t, MeetingStatusOngoing, m.Status(now.Add(48*time.Hour)))

	m.Close(now)
	assert.Equal(t, MeetingStatusCompleted, m.Status(now))
}

func TestMeeting_Status_ClosedWinsOverWindow(t *testing.T) {
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 1, 11, 0, 0, 0, time.UTC)

	m := &Meeting{
		MeetingType: MeetingTypeScheduled,
		StartTime:   timePtr(start),
		EndTime:     timePtr(end),
		IsClosed:    true,
	}

	assert.Equal(t, MeetingStatusCompleted, m.Status(start.Add(-time.Hour)))
}

func TestMeeting_Close_ClampsEndTime(t *testing.T) {
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 1, 11, 0, 0, 0, time.UTC)
	now := time.Date(2025, 1, 1, 10, 30, 0, 0, time.UTC)

	m := &Meeting{
		MeetingType: MeetingTypeScheduled,
		StartTime:   timePtr(start),
		EndTime:     timePtr(end),
	}

	m.Close(now)

	require.True(t, m.IsClosed)
	require.NotNil(t, m.ClosedAt)
	assert.Equal(t, now, *m.ClosedAt)
	require.NotNil(t, m.EndTime)
	assert.Equal(t, now, *m.EndTime)
	assert.False(t, m.EndTime.After(*m.ClosedAt))
}

func TestMeeting_Close_KeepsEarlierEndTime(t *testing.T) {
	end := time.Date(2025, 1, 1, 11, 0, 0, 0, time.UTC)
	now := time.Date(2025, 1, 1, 15, 0, 0, 0, time.UTC)

	m := &Meeting{
		MeetingType: MeetingTypeScheduled,
		StartTime:   timePtr(end.Add(-time.Hour)),
		EndTime:     timePtr(end),
	}

	m.Close(now)

	assert.Equal(t, end, *m.EndTime)
}

func TestMeeting_Close_SetsMissingEndTime(t *testing.T) {
	now := time.Date(2025, 1, 1, 15, 0, 0, 0, time.UTC)

	m := &Meeting{MeetingType: MeetingTypeScheduled}
	m.Close(now)

	require.NotNil(t, m.EndTime)
	assert.Equal(t, now, *m.EndTime)
}

func TestMeeting_Close_InstantLeavesEndTimeNil(t *testing.T) {
	now := time.Date(2025, 1, 1, 15, 0, 0, 0, time.UTC)

	m := &Meeting{MeetingType: MeetingTypeInstant}
	m.Close(now)

	assert.True(t, m.IsClosed)
	assert.Nil(t, m.EndTime)
}

func TestMeeting_Close_RepeatedUpdatesClosedAt(t *testing.T) {
	first := time.Date(2025, 1, 1, 15, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	m := &Meeting{MeetingType: MeetingTypeInstant}
	m.Close(first)
	m.Close(second)

	assert.True(t, m.IsClosed)
	assert.Equal(t, second, *m.ClosedAt)
}
