package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/immxrtalbeast/techflow_meet/internal/domain"
	"github.com/immxrtalbeast/techflow_meet/internal/repository/model"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type PostgresMeetingRepository struct {
	db *gorm.DB
}

func NewPostgresMeetingRepository(db *gorm.DB) *PostgresMeetingRepository {
	return &PostgresMeetingRepository{db: db}
}

func (r *PostgresMeetingRepository) Create(ctx context.Context, meeting *domain.Meeting) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if meeting == nil {
		return errors.New("meeting is nil")
	}

	meetingModel := toModelMeeting(meeting)

	if err := r.db.WithContext(ctx).Create(meetingModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrRoomIDExists
		}
		return err
	}
	return nil
}

func (r *PostgresMeetingRepository) GetByRoomID(ctx context.Context, roomID string) (*domain.Meeting, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var meeting model.Meeting
	err := r.db.WithContext(ctx).First(&meeting, "room_id = ?", roomID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMeetingNotFound
		}
		return nil, err
	}

	return toDomainMeeting(&meeting), nil
}

func (r *PostgresMeetingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Meeting, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var meetings []model.Meeting
	err := r.db.WithContext(ctx).
		Where("creator = ? OR participant = ?", userID, userID).
		Order("created_at DESC").
		Find(&meetings).Error
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Meeting, 0, len(meetings))
	for i := range meetings {
		result = append(result, toDomainMeeting(&meetings[i]))
	}

	return result, nil
}

func (r *PostgresMeetingRepository) Update(ctx context.Context, meeting *domain.Meeting) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if meeting == nil {
		return errors.New("meeting is nil")
	}

	meetingModel := toModelMeeting(meeting)

	updates := map[string]any{
		"title":      meetingModel.Title,
		"is_closed":  meetingModel.IsClosed,
		"updated_at": meetingModel.UpdatedAt,
	}

	if meetingModel.ClosedAt == nil {
		updates["closed_at"] = gorm.Expr("NULL")
	} else {
		updates["closed_at"] = meetingModel.ClosedAt
	}
	if meetingModel.EndTime == nil {
		updates["end_time"] = gorm.Expr("NULL")
	} else {
		updates["end_time"] = meetingModel.EndTime
	}

	res := r.db.WithContext(ctx).Model(&model.Meeting{}).Where("id = ?", meetingModel.ID).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMeetingNotFound
	}
	return nil
}

func (r *PostgresMeetingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	res := r.db.WithContext(ctx).Delete(&model.Meeting{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMeetingNotFound
	}
	return nil
}

type PostgresScheduleRepository struct {
	db *gorm.DB
}

func NewPostgresScheduleRepository(db *gorm.DB) *PostgresScheduleRepository {
	return &PostgresScheduleRepository{db: db}
}

func (r *PostgresScheduleRepository) Create(ctx context.Context, schedule *domain.Schedule) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if schedule == nil {
		return errors.New("schedule is nil")
	}

	return r.db.WithContext(ctx).Create(toModelSchedule(schedule)).Error
}

func (r *PostgresScheduleRepository) ListByAttendee(ctx context.Context, email string) ([]*domain.Schedule, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var schedules []model.Schedule
	err := r.db.WithContext(ctx).
		Where("? = ANY(assigned_users)", email).
		Order("created_at DESC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Schedule, 0, len(schedules))
	for i := range schedules {
		result = append(result, toDomainSchedule(&schedules[i]))
	}

	return result, nil
}

type PostgresUserRepository struct {
	db *gorm.DB
}

func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(ctx context.Context, user *domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if user == nil {
		return errors.New("user is nil")
	}

	userModel := toModelUser(user)

	if err := r.db.WithContext(ctx).Create(userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserEmailExists
		}
		return err
	}
	return nil
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var user model.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return toDomainUser(&user), nil
}

func (r *PostgresUserRepository) Update(ctx context.Context, user *domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if user == nil {
		return errors.New("user is nil")
	}

	userModel := toModelUser(user)

	updates := map[string]any{
		"name":       userModel.Name,
		"updated_at": userModel.UpdatedAt,
	}

	if userModel.Email == nil {
		updates["email"] = gorm.Expr("NULL")
	} else {
		updates["email"] = userModel.Email
	}

	res := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userModel.ID).Updates(updates)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return ErrUserEmailExists
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func toModelMeeting(meeting *domain.Meeting) *model.Meeting {
	return &model.Meeting{
		ID:          meeting.ID,
		Title:       meeting.Title,
		Creator:     meeting.Creator,
		Participant: meeting.Participant,
		MeetingType: string(meeting.MeetingType),
		StartTime:   utcOrNil(meeting.StartTime),
		EndTime:     utcOrNil(meeting.EndTime),
		RoomID:      meeting.RoomID,
		JoinLink:    meeting.JoinLink,
		IsClosed:    meeting.IsClosed,
		ClosedAt:    utcOrNil(meeting.ClosedAt),
		CreatedAt:   meeting.CreatedAt.UTC(),
		UpdatedAt:   meeting.UpdatedAt.UTC(),
	}
}

func toDomainMeeting(meeting *model.Meeting) *domain.Meeting {
	return &domain.Meeting{
		ID:          meeting.ID,
		Title:       meeting.Title,
		Creator:     meeting.Creator,
		Participant: meeting.Participant,
		MeetingType: domain.MeetingType(meeting.MeetingType),
		StartTime:   utcOrNil(meeting.StartTime),
		EndTime:     utcOrNil(meeting.EndTime),
		RoomID:      meeting.RoomID,
		JoinLink:    meeting.JoinLink,
		IsClosed:    meeting.IsClosed,
		ClosedAt:    utcOrNil(meeting.ClosedAt),
		CreatedAt:   meeting.CreatedAt.UTC(),
		UpdatedAt:   meeting.UpdatedAt.UTC(),
	}
}

func toModelSchedule(schedule *domain.Schedule) *model.Schedule {
	var eventID *string
	if schedule.GoogleEventID != "" {
		e := schedule.GoogleEventID
		eventID = &e
	}
	var meetLink *string
	if schedule.GoogleMeetLink != "" {
		l := schedule.GoogleMeetLink
		meetLink = &l
	}

	return &model.Schedule{
		ID:               schedule.ID,
		Title:            schedule.Title,
		Description:      schedule.Description,
		StartTime:        schedule.StartTime.UTC(),
		EndTime:          schedule.EndTime.UTC(),
		IsInstantMeeting: schedule.IsInstantMeeting,
		AssignedUsers:    pq.StringArray(schedule.AssignedUsers),
		GoogleEventID:    eventID,
		GoogleMeetLink:   meetLink,
		CreatedBy:        schedule.CreatedBy,
		CreatedAt:        schedule.CreatedAt.UTC(),
	}
}

func toDomainSchedule(schedule *model.Schedule) *domain.Schedule {
	eventID := ""
	if schedule.GoogleEventID != nil {
		eventID = *schedule.GoogleEventID
	}
	meetLink := ""
	if schedule.GoogleMeetLink != nil {
		meetLink = *schedule.GoogleMeetLink
	}

	return &domain.Schedule{
		ID:               schedule.ID,
		Title:            schedule.Title,
		Description:      schedule.Description,
		StartTime:        schedule.StartTime.UTC(),
		EndTime:          schedule.EndTime.UTC(),
		IsInstantMeeting: schedule.IsInstantMeeting,
		AssignedUsers:    []string(schedule.AssignedUsers),
		GoogleEventID:    eventID,
		GoogleMeetLink:   meetLink,
		CreatedBy:        schedule.CreatedBy,
		CreatedAt:        schedule.CreatedAt.UTC(),
	}
}

func toModelUser(user *domain.User) *model.User {
	var email *string
	if user.Email != "" {
		e := user.Email
		email = &e
	}
	return &model.User{
		ID:        user.ID,
		Name:      user.Name,
		Email:     email,
		CreatedAt: user.CreatedAt.UTC(),
		UpdatedAt: user.UpdatedAt.UTC(),
	}
}

func toDomainUser(user *model.User) *domain.User {
	email := ""
	if user.Email != nil {
		email = *user.Email
	}

	return &domain.User{
		ID:        user.ID,
		Name:      user.Name,
		Email:     email,
		CreatedAt: user.CreatedAt.UTC(),
		UpdatedAt: user.UpdatedAt.UTC(),
	}
}

func utcOrNil(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
