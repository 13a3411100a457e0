package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/immxrtalbeast/techflow_meet/internal/calendar"
	"github.com/immxrtalbeast/techflow_meet/internal/domain"
	"github.com/immxrtalbeast/techflow_meet/internal/repository"
	"github.com/immxrtalbeast/techflow_meet/lib/logger/sl"
)

type CreateScheduleInput struct {
	CreatedBy        uuid.UUID
	Title            string
	Description      string
	StartTime        *time.Time
	EndTime          *time.Time
	IsInstantMeeting bool
	AssignedUsers    []string
}

// ScheduleView is a schedule tagged with its derived status for listings.
type ScheduleView struct {
	MeetingID      uuid.UUID
	Title          string
	Description    string
	StartTime      time.Time
	EndTime        time.Time
	GoogleMeetLink string
	Status         domain.ScheduleStatus
}

type ScheduleService struct {
	schedules repository.ScheduleRepository
	calendar  calendar.Provider
	log       *slog.Logger
	now       func() time.Time
}

func NewScheduleService(schedules repository.ScheduleRepository, provider calendar.Provider, log *slog.Logger) *ScheduleService {
	if log == nil {
		log = slog.Default()
	}
	return &ScheduleService{
		schedules: schedules,
		calendar:  provider,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *ScheduleService) CreateSchedule(ctx context.Context, input CreateScheduleInput) (*domain.Schedule, error) {
	const op = "service.schedule.create"
	log := s.log.With(
		slog.String("op", op),
		slog.String("created_by", input.CreatedBy.String()),
	)

	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	now := s.now()

	var start, end time.Time
	if input.IsInstantMeeting {
		// Caller-supplied times are ignored for instant schedules.
		start = now
		end = start.Add(domain.InstantScheduleDuration)
	} else {
		if input.StartTime == nil || input.EndTime == nil {
			return nil, fmt.Errorf("%w: startTime and endTime are required when isInstantMeeting is false", ErrValidation)
		}
		start = *input.StartTime
		end = *input.EndTime
		if !start.Before(end) {
			return nil, fmt.Errorf("%w: startTime must be before endTime", ErrValidation)
		}
	}

	created, err := s.calendar.CreateEvent(ctx, calendar.EventInput{
		Title:       input.Title,
		Description: input.Description,
		StartTime:   start,
		EndTime:     end,
		Attendees:   input.AssignedUsers,
	})
	if err != nil {
		if errors.Is(err, calendar.ErrNotConfigured) {
			return nil, fmt.Errorf("%w: google calendar credentials missing", ErrNotConfigured)
		}
		return nil, fmt.Errorf("%w: create calendar event: %v", ErrUpstream, err)
	}

	schedule := &domain.Schedule{
		ID:               uuid.New(),
		Title:            input.Title,
		Description:      input.Description,
		StartTime:        start,
		EndTime:          end,
		IsInstantMeeting: input.IsInstantMeeting,
		AssignedUsers:    input.AssignedUsers,
		GoogleEventID:    created.EventID,
		GoogleMeetLink:   created.MeetLink,
		CreatedBy:        input.CreatedBy,
		CreatedAt:        now,
	}

	if err := s.schedules.Create(ctx, schedule); err != nil {
		// The calendar event is not rolled back; surface its id so the
		// orphan can be reconciled manually.
		log.Error("schedule not persisted after calendar event creation",
			slog.String("google_event_id", created.EventID),
			sl.Err(err),
		)
		return nil, fmt.Errorf("%w: calendar event %s created but schedule not persisted: %v", ErrUpstream, created.EventID, err)
	}

	log.Info("schedule created",
		slog.String("schedule_id", schedule.ID.String()),
		slog.String("google_event_id", created.EventID),
		slog.Int("attendees", len(schedule.AssignedUsers)),
	)

	return schedule, nil
}

func (s *ScheduleService) SchedulesByEmail(ctx context.Context, email string) ([]*ScheduleView, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}

	schedules, err := s.schedules.ListByAttendee(ctx, email)
	if err != nil {
		return nil, err
	}

	now := s.now()
	views := make([]*ScheduleView, 0, len(schedules))
	for _, sched := range schedules {
		views = append(views, &ScheduleView{
			MeetingID:      sched.ID,
			Title:          sched.Title,
			Description:    sched.Description,
			StartTime:      sched.StartTime,
			EndTime:        sched.EndTime,
			GoogleMeetLink: sched.GoogleMeetLink,
			Status:         sched.Status(now),
		})
	}

	return views, nil
}
