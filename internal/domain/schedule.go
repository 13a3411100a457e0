package domain

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleStatus is the lifecycle bucket reported for calendar-backed
// schedules. A finished schedule is "past", not "completed"; the two
// vocabularies are deliberately distinct.
type ScheduleStatus string

const (
	ScheduleStatusUpcoming ScheduleStatus = "upcoming"
	ScheduleStatusOngoing  ScheduleStatus = "ongoing"
	ScheduleStatusPast     ScheduleStatus = "past"
)

// InstantScheduleDuration is the window assigned to instant schedules,
// caller-supplied times are ignored for those.
const InstantScheduleDuration = 30 * time.Minute

// Schedule is a calendar-backed meeting with a multi-attendee list. It is
// created once through the calendar provider and immutable afterwards.
type Schedule struct {
	ID               uuid.UUID
	Title            string
	Description      string
	StartTime        time.Time
	EndTime          time.Time
	IsInstantMeeting bool
	AssignedUsers    []string
	GoogleEventID    string
	GoogleMeetLink   string
	CreatedBy        uuid.UUID
	CreatedAt        time.Time
}

// Status derives the lifecycle bucket at the given instant.
func (s *Schedule) Status(now time.Time) ScheduleStatus {
	switch {
	case now.Before(s.StartTime):
		return ScheduleStatusUpcoming
	case now.After(s.EndTime):
		return ScheduleStatusPast
	}
	return ScheduleStatusOngoing
}

// HasAttendee reports whether the email appears in the assigned user list.
func (s *Schedule) HasAttendee(email string) bool {
	for _, assigned := range s.AssignedUsers {
		if assigned == email {
			return true
		}
	}
	return false
}
