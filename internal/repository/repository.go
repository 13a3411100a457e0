package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/immxrtalbeast/techflow_meet/internal/domain"
)

var (
	ErrMeetingNotFound = errors.New("meeting not found")
	ErrRoomIDExists    = errors.New("room id already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrUserEmailExists = errors.New("user with email already exists")
)

type MeetingRepository interface {
	Create(ctx context.Context, meeting *domain.Meeting) error
	GetByRoomID(ctx context.Context, roomID string) (*domain.Meeting, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Meeting, error)
	Update(ctx context.Context, meeting *domain.Meeting) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ScheduleRepository interface {
	Create(ctx context.Context, schedule *domain.Schedule) error
	ListByAttendee(ctx context.Context, email string) ([]*domain.Schedule, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}
