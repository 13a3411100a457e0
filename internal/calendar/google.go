package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"golang.org/x/oauth2"
	googleauth "golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const defaultTimeout = 15 * time.Second

// GoogleConfig carries either a service-account key file or an OAuth2
// client triple. The service account is preferred when both are present.
type GoogleConfig struct {
	ServiceAccountFile string
	ClientID           string
	ClientSecret       string
	RefreshToken       string
	RedirectURI        string
	CalendarID         string
}

// Google creates calendar events with conferencing data attached.
type Google struct {
	cfg     GoogleConfig
	log     *slog.Logger
	timeout time.Duration
}

func NewGoogle(cfg GoogleConfig, log *slog.Logger) *Google {
	if log == nil {
		log = slog.Default()
	}
	return &Google{cfg: cfg, log: log, timeout: defaultTimeout}
}

func (g *Google) CreateEvent(ctx context.Context, input EventInput) (*CreatedEvent, error) {
	const op = "calendar.google.createEvent"
	log := g.log.With(slog.String("op", op), slog.String("title", input.Title))

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	svc, err := g.service(ctx)
	if err != nil {
		return nil, err
	}

	attendees := make([]*gcal.EventAttendee, 0, len(input.Attendees))
	for _, email := range input.Attendees {
		attendees = append(attendees, &gcal.EventAttendee{Email: email})
	}

	event := &gcal.Event{
		Summary:     input.Title,
		Description: input.Description,
		Start:       &gcal.EventDateTime{DateTime: input.StartTime.Format(time.RFC3339)},
		End:         &gcal.EventDateTime{DateTime: input.EndTime.Format(time.RFC3339)},
		Attendees:   attendees,
		ConferenceData: &gcal.ConferenceData{
			CreateRequest: &gcal.CreateConferenceRequest{
				RequestId: newRequestID(),
			},
		},
	}

	created, err := svc.Events.Insert(g.calendarID(), event).
		ConferenceDataVersion(1).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}

	log.Info("calendar event created", slog.String("event_id", created.Id))

	return &CreatedEvent{
		EventID:  created.Id,
		MeetLink: MeetLink(created),
	}, nil
}

func (g *Google) service(ctx context.Context) (*gcal.Service, error) {
	if g.cfg.ServiceAccountFile != "" {
		return gcal.NewService(ctx,
			option.WithCredentialsFile(g.cfg.ServiceAccountFile),
			option.WithScopes(gcal.CalendarScope),
		)
	}

	if g.cfg.ClientID != "" && g.cfg.ClientSecret != "" && g.cfg.RefreshToken != "" {
		conf := &oauth2.Config{
			ClientID:     g.cfg.ClientID,
			ClientSecret: g.cfg.ClientSecret,
			RedirectURL:  g.cfg.RedirectURI,
			Endpoint:     googleauth.Endpoint,
			Scopes:       []string{gcal.CalendarScope},
		}
		source := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: g.cfg.RefreshToken})
		return gcal.NewService(ctx, option.WithTokenSource(source))
	}

	return nil, ErrNotConfigured
}

func (g *Google) calendarID() string {
	if g.cfg.CalendarID != "" {
		return g.cfg.CalendarID
	}
	return "primary"
}

// MeetLink picks the best conferencing URI from a created event: the direct
// hangout link first, then the first video-typed entry point, then empty.
func MeetLink(event *gcal.Event) string {
	if event == nil {
		return ""
	}
	if event.HangoutLink != "" {
		return event.HangoutLink
	}
	if event.ConferenceData == nil {
		return ""
	}
	for _, ep := range event.ConferenceData.EntryPoints {
		if ep != nil && ep.EntryPointType == "video" && ep.Uri != "" {
			return ep.Uri
		}
	}
	return ""
}

const requestIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

func newRequestID() string {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = requestIDAlphabet[rand.IntN(len(requestIDAlphabet))]
	}
	return fmt.Sprintf("req-%d-%s", time.Now().UnixMilli(), suffix)
}
