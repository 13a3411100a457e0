package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedule_Status(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	s := &Schedule{StartTime: start, EndTime: end}

	tests := []struct {
		name string
		now  time.Time
		want ScheduleStatus
	}{
		{"before start", start.Add(-time.Minute), ScheduleStatusUpcoming},
		{"at start", start, ScheduleStatusOngoing},
		{"inside window", start.Add(30 * time.Minute), ScheduleStatusOngoing},
		{"at end", end, ScheduleStatusOngoing},
		{"after end", end.Add(time.Minute), ScheduleStatusPast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Status(tt.now))
		})
	}
}

func TestSchedule_StatusVocabularyIsPast(t *testing.T) {
	// The schedule path reports "past", never "completed"; clients key off
	// the exact strings.
	s := &Schedule{
		StartTime: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
	}

	status := s.Status(time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "past", string(status))
}

func TestSchedule_HasAttendee(t *testing.T) {
	s := &Schedule{AssignedUsers: []string{"a@example.com", "b@example.com"}}

	assert.True(t, s.HasAttendee("a@example.com"))
	assert.True(t, s.HasAttendee("b@example.com"))
	assert.False(t, s.HasAttendee("c@example.com"))
	assert.False(t, s.HasAttendee(""))
}
