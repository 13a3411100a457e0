package calendar

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gcal "google.golang.org/api/calendar/v3"
)

func TestMeetLink_PrefersHangoutLink(t *testing.T) {
	event := &gcal.Event{
		HangoutLink: "https://meet.google.com/abc-defg-hij",
		ConferenceData: &gcal.ConferenceData{
			EntryPoints: []*gcal.EntryPoint{
				{EntryPointType: "video", Uri: "https://meet.google.com/other"},
			},
		},
	}

	assert.Equal(t, "https://meet.google.com/abc-defg-hij", MeetLink(event))
}

func TestMeetLink_FallsBackToVideoEntryPoint(t *testing.T) {
	event := &gcal.Event{
		ConferenceData: &gcal.ConferenceData{
			EntryPoints: []*gcal.EntryPoint{
				{EntryPointType: "phone", Uri: "tel:+1-555-0100"},
				{EntryPointType: "video", Uri: "https://meet.google.com/abc-defg-hij"},
				{EntryPointType: "video", Uri: "https://meet.google.com/second"},
			},
		},
	}

	assert.Equal(t, "https://meet.google.com/abc-defg-hij", MeetLink(event))
}

func TestMeetLink_AbsentLinkIsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		event *gcal.Event
	}{
		{"nil event", nil},
		{"no conference data", &gcal.Event{}},
		{"no entry points", &gcal.Event{ConferenceData: &gcal.ConferenceData{}}},
		{"only phone entry", &gcal.Event{ConferenceData: &gcal.ConferenceData{
			EntryPoints: []*gcal.EntryPoint{{EntryPointType: "phone", Uri: "tel:+1-555-0100"}},
		}}},
		{"video entry without uri", &gcal.Event{ConferenceData: &gcal.ConferenceData{
			EntryPoints: []*gcal.EntryPoint{{EntryPointType: "video"}},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, MeetLink(tt.event))
		})
	}
}

func TestGoogle_CreateEvent_NotConfigured(t *testing.T) {
	g := NewGoogle(GoogleConfig{}, nil)

	_, err := g.CreateEvent(context.Background(), EventInput{
		Title:     "Review",
		StartTime: time.Now(),
		EndTime:   time.Now().Add(time.Hour),
	})
	require.ErrorIs(t, err, ErrNotConfigured)
}

func TestNewRequestID(t *testing.T) {
	id := newRequestID()
	assert.True(t, strings.HasPrefix(id, "req-"))

	other := newRequestID()
	assert.NotEqual(t, id, other)
}
