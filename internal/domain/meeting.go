package domain

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

type MeetingType string

const (
	MeetingTypeScheduled MeetingType = "scheduled"
	MeetingTypeInstant   MeetingType = "instant"
)

// MeetingStatus is the lifecycle bucket reported for two-party meetings.
// Note that the vocabulary differs from ScheduleStatus: a finished meeting
// is "completed" here, clients depend on the exact strings.
type MeetingStatus string

const (
	MeetingStatusUpcoming  MeetingStatus = "upcoming"
	MeetingStatusOngoing   MeetingStatus = "ongoing"
	MeetingStatusCompleted MeetingStatus = "completed"
)

const roomSuffixLength = 6
const roomSuffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Meeting is a two-party call record. Instant meetings have no schedule
// window and stay live until explicitly closed; scheduled meetings carry
// a start/end window.
type Meeting struct {
	ID          uuid.UUID
	Title       string
	Creator     uuid.UUID
	Participant uuid.UUID
	MeetingType MeetingType
	StartTime   *time.Time
	EndTime     *time.Time
	RoomID      string
	JoinLink    string
	IsClosed    bool
	ClosedAt    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewMeeting constructs a meeting with a generated room id. The room id is
// unique with overwhelming probability only; the store's unique index is the
// real guarantor. JoinLink is filled in by the caller once the id is known.
func NewMeeting(title string, creator, participant uuid.UUID, meetingType MeetingType, startTime, endTime *time.Time, now time.Time) *Meeting {
	return &Meeting{
		ID:          uuid.New(),
		Title:       title,
		Creator:     creator,
		Participant: participant,
		MeetingType: meetingType,
		StartTime:   startTime,
		EndTime:     endTime,
		RoomID:      generateRoomID(now),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsAuthorized reports whether the user may join the meeting: creator and
// participant only. A user who is both is trivially authorized.
func (m *Meeting) IsAuthorized(userID uuid.UUID) bool {
	if m == nil {
		return false
	}
	return m.Creator == userID || m.Participant == userID
}

// CanClose requires a strict creator match; the participant cannot close.
func (m *Meeting) CanClose(userID uuid.UUID) bool {
	return m != nil && m.Creator == userID
}

// CanDelete requires a strict creator match; the participant cannot delete.
func (m *Meeting) CanDelete(userID uuid.UUID) bool {
	return m != nil && m.Creator == userID
}

// Status derives the lifecycle bucket at the given instant. Closed meetings
// are completed regardless of window; instant meetings are ongoing until
// closed.
func (m *Meeting) Status(now time.Time) MeetingStatus {
	if m.IsClosed {
		return MeetingStatusCompleted
	}
	if m.MeetingType == MeetingTypeScheduled && m.StartTime != nil && m.EndTime != nil {
		switch {
		case now.Before(*m.StartTime):
			return MeetingStatusUpcoming
		case now.After(*m.EndTime):
			return MeetingStatusCompleted
		}
	}
	return MeetingStatusOngoing
}

// Close marks the meeting closed at the given instant. For scheduled
// meetings the end time is clamped so it never exceeds the close timestamp;
// an end time already in the past is left untouched. Re-closing is allowed
// and updates ClosedAt.
func (m *Meeting) Close(now time.Time) {
	m.IsClosed = true
	closedAt := now
	m.ClosedAt = &closedAt
	if m.MeetingType == MeetingTypeScheduled {
		if m.EndTime == nil || m.EndTime.After(now) {
			end := now
			m.EndTime = &end
		}
	}
	m.UpdatedAt = now
}

func generateRoomID(now time.Time) string {
	suffix := make([]byte, roomSuffixLength)
	for i := range suffix {
		suffix[i] = roomSuffixAlphabet[rand.IntN(len(roomSuffixAlphabet))]
	}
	return fmt.Sprintf("%d-%s", now.UnixMilli(), suffix)
}
