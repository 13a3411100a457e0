package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/immxrtalbeast/techflow_meet/internal/domain"
)

type InMemoryMeetingRepository struct {
	mu       sync.RWMutex
	meetings map[uuid.UUID]*domain.Meeting
	rooms    map[string]uuid.UUID
}

func NewInMemoryMeetingRepository() *InMemoryMeetingRepository {
	return &InMemoryMeetingRepository{
		meetings: make(map[uuid.UUID]*domain.Meeting),
		rooms:    make(map[string]uuid.UUID),
	}
}

func (r *InMemoryMeetingRepository) Create(ctx context.Context, meeting *domain.Meeting) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rooms[meeting.RoomID]; ok {
		return ErrRoomIDExists
	}

	copied := *meeting
	r.meetings[meeting.ID] = &copied
	r.rooms[meeting.RoomID] = meeting.ID
	return nil
}

func (r *InMemoryMeetingRepository) GetByRoomID(ctx context.Context, roomID string) (*domain.Meeting, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.rooms[roomID]
	if !ok {
		return nil, ErrMeetingNotFound
	}

	meeting, ok := r.meetings[id]
	if !ok {
		return nil, ErrMeetingNotFound
	}

	copied := *meeting
	return &copied, nil
}

func (r *InMemoryMeetingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Meeting, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Meeting, 0)
	for _, meeting := range r.meetings {
		if meeting.Creator == userID || meeting.Participant == userID {
			copied := *meeting
			result = append(result, &copied)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

func (r *InMemoryMeetingRepository) Update(ctx context.Context, meeting *domain.Meeting) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.meetings[meeting.ID]; !ok {
		return ErrMeetingNotFound
	}

	copied := *meeting
	r.meetings[meeting.ID] = &copied
	r.rooms[meeting.RoomID] = meeting.ID
	return nil
}

func (r *InMemoryMeetingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	meeting, ok := r.meetings[id]
	if !ok {
		return ErrMeetingNotFound
	}

	delete(r.rooms, meeting.RoomID)
	delete(r.meetings, id)
	return nil
}

type InMemoryScheduleRepository struct {
	mu        sync.RWMutex
	schedules []*domain.Schedule
}

func NewInMemoryScheduleRepository() *InMemoryScheduleRepository {
	return &InMemoryScheduleRepository{}
}

func (r *InMemoryScheduleRepository) Create(ctx context.Context, schedule *domain.Schedule) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *schedule
	r.schedules = append(r.schedules, &copied)
	return nil
}

func (r *InMemoryScheduleRepository) ListByAttendee(ctx context.Context, email string) ([]*domain.Schedule, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Schedule, 0)
	for _, schedule := range r.schedules {
		if schedule.HasAttendee(email) {
			copied := *schedule
			result = append(result, &copied)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

type InMemoryUserRepository struct {
	mu     sync.RWMutex
	users  map[uuid.UUID]*domain.User
	emails map[string]uuid.UUID
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users:  make(map[uuid.UUID]*domain.User),
		emails: make(map[string]uuid.UUID),
	}
}

func (r *InMemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if user.Email != "" {
		if _, ok := r.emails[user.Email]; ok {
			return ErrUserEmailExists
		}
		r.emails[user.Email] = user.ID
	}

	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *InMemoryUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}

	copied := *user
	return &copied, nil
}

func (r *InMemoryUserRepository) Update(ctx context.Context, user *domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return ErrUserNotFound
	}

	copied := *user
	r.users[user.ID] = &copied
	if user.Email != "" {
		r.emails[user.Email] = user.ID
	}
	return nil
}
