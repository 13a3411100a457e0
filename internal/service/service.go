package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/immxrtalbeast/techflow_meet/internal/domain"
)

// Failure taxonomy surfaced to the HTTP layer. Services wrap these with
// context via fmt.Errorf("%w: ..."); controllers map them with errors.Is.
var (
	ErrValidation    = errors.New("validation failed")
	ErrNotFound      = errors.New("not found")
	ErrForbidden     = errors.New("forbidden")
	ErrNotConfigured = errors.New("provider is not configured")
	ErrUpstream      = errors.New("upstream provider failure")
)

type MeetingInteractor interface {
	CreateMeeting(ctx context.Context, input CreateMeetingInput) (*domain.Meeting, error)
	GetAccessToken(ctx context.Context, userID uuid.UUID, roomID string) (*RoomAccess, error)
	MyMeetings(ctx context.Context, userID uuid.UUID) ([]*MeetingView, error)
	CloseMeeting(ctx context.Context, userID uuid.UUID, roomID string) (*domain.Meeting, error)
	DeleteMeeting(ctx context.Context, userID uuid.UUID, roomID string) error
}

type ScheduleInteractor interface {
	CreateSchedule(ctx context.Context, input CreateScheduleInput) (*domain.Schedule, error)
	SchedulesByEmail(ctx context.Context, email string) ([]*ScheduleView, error)
}

type UserInteractor interface {
	CreateUser(ctx context.Context, name string, email string) (*domain.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) error
}
