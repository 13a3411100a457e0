package calendar

import (
	"context"
	"errors"
	"time"
)

var ErrNotConfigured = errors.New("google calendar is not configured")

// EventInput describes the calendar event to create. Conferencing data is
// always requested; the provider may still decline to attach a link.
type EventInput struct {
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Attendees   []string
}

// CreatedEvent is the provider's reference for a created event. MeetLink is
// empty when the provider returned no conferencing entry point.
type CreatedEvent struct {
	EventID  string
	MeetLink string
}

type Provider interface {
	CreateEvent(ctx context.Context, input EventInput) (*CreatedEvent, error)
}
