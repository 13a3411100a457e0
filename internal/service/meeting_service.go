package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/immxrtalbeast/techflow_meet/internal/domain"
	"github.com/immxrtalbeast/techflow_meet/internal/mailer"
	"github.com/immxrtalbeast/techflow_meet/internal/repository"
	"github.com/immxrtalbeast/techflow_meet/internal/rtctoken"
	"github.com/immxrtalbeast/techflow_meet/lib/logger/sl"
)

// All participants share uid 0; identity is enforced by the authorization
// check here, not by the token provider.
const (
	tokenUID           uint32 = 0
	tokenExpireSeconds uint32 = 3600
)

type CreateMeetingInput struct {
	Creator     uuid.UUID
	Participant uuid.UUID
	MeetingType domain.MeetingType
	Title       string
	StartTime   *time.Time
	EndTime     *time.Time
}

type RoomAccess struct {
	Token       string
	ChannelName string
}

type UserInfo struct {
	ID    uuid.UUID
	Name  string
	Email string
}

// MeetingView is a meeting annotated with its derived status and resolved
// party display info for listings.
type MeetingView struct {
	Creator     UserInfo
	Participant UserInfo
	MeetingType domain.MeetingType
	StartTime   *time.Time
	EndTime     *time.Time
	RoomID      string
	JoinLink    string
	Status      domain.MeetingStatus
}

type MeetingService struct {
	meetings     repository.MeetingRepository
	users        repository.UserRepository
	tokens       rtctoken.Builder
	mail         mailer.Sender
	joinLinkBase string
	log          *slog.Logger
	now          func() time.Time
}

func NewMeetingService(
	meetings repository.MeetingRepository,
	users repository.UserRepository,
	tokens rtctoken.Builder,
	mail mailer.Sender,
	joinLinkBase string,
	log *slog.Logger,
) *MeetingService {
	if log == nil {
		log = slog.Default()
	}
	return &MeetingService{
		meetings:     meetings,
		users:        users,
		tokens:       tokens,
		mail:         mail,
		joinLinkBase: joinLinkBase,
		log:          log,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *MeetingService) CreateMeeting(ctx context.Context, input CreateMeetingInput) (*domain.Meeting, error) {
	const op = "service.meeting.create"
	log := s.log.With(
		slog.String("op", op),
		slog.String("creator", input.Creator.String()),
	)

	participant, err := s.users.GetByID(ctx, input.Participant)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: participant does not exist", ErrValidation)
		}
		return nil, err
	}

	switch input.MeetingType {
	case domain.MeetingTypeInstant:
	case domain.MeetingTypeScheduled:
		if input.StartTime == nil || input.EndTime == nil {
			return nil, fmt.Errorf("%w: startTime and endTime are required for scheduled meetings", ErrValidation)
		}
		if !input.StartTime.Before(*input.EndTime) {
			return nil, fmt.Errorf("%w: startTime must be before endTime", ErrValidation)
		}
	default:
		return nil, fmt.Errorf("%w: unknown meeting type %q", ErrValidation, input.MeetingType)
	}

	var meeting *domain.Meeting
	for {
		meeting = domain.NewMeeting(input.Title, input.Creator, participant.ID, input.MeetingType, input.StartTime, input.EndTime, s.now())
		meeting.JoinLink = s.joinLink(meeting.RoomID)

		if err := s.meetings.Create(ctx, meeting); err != nil {
			if errors.Is(err, repository.ErrRoomIDExists) {
				continue
			}
			return nil, err
		}
		break
	}

	log.Info("meeting created",
		slog.String("room_id", meeting.RoomID),
		slog.String("type", string(meeting.MeetingType)),
	)

	s.sendInvites(ctx, meeting, participant)

	return meeting, nil
}

func (s *MeetingService) GetAccessToken(ctx context.Context, userID uuid.UUID, roomID string) (*RoomAccess, error) {
	const op = "service.meeting.accessToken"
	log := s.log.With(
		slog.String("op", op),
		slog.String("room_id", roomID),
		slog.String("user_id", userID.String()),
	)

	meeting, err := s.meetings.GetByRoomID(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrMeetingNotFound) {
			return nil, fmt.Errorf("%w: meeting %s", ErrNotFound, roomID)
		}
		return nil, err
	}

	if !meeting.IsAuthorized(userID) {
		log.Info("join rejected, user is neither creator nor participant")
		return nil, fmt.Errorf("%w: not authorized to join", ErrForbidden)
	}

	if !s.tokens.Configured() {
		return nil, fmt.Errorf("%w: agora credentials missing", ErrNotConfigured)
	}

	token, err := s.tokens.BuildToken(meeting.RoomID, tokenUID, tokenExpireSeconds)
	if err != nil {
		return nil, fmt.Errorf("%w: build rtc token: %v", ErrUpstream, err)
	}

	return &RoomAccess{Token: token, ChannelName: meeting.RoomID}, nil
}

func (s *MeetingService) MyMeetings(ctx context.Context, userID uuid.UUID) ([]*MeetingView, error) {
	meetings, err := s.meetings.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	userCache := make(map[uuid.UUID]UserInfo)

	views := make([]*MeetingView, 0, len(meetings))
	for _, m := range meetings {
		views = append(views, &MeetingView{
			Creator:     s.userInfo(ctx, m.Creator, userCache),
			Participant: s.userInfo(ctx, m.Participant, userCache),
			MeetingType: m.MeetingType,
			StartTime:   m.StartTime,
			EndTime:     m.EndTime,
			RoomID:      m.RoomID,
			JoinLink:    m.JoinLink,
			Status:      m.Status(now),
		})
	}

	return views, nil
}

func (s *MeetingService) CloseMeeting(ctx context.Context, userID uuid.UUID, roomID string) (*domain.Meeting, error) {
	const op = "service.meeting.close"
	log := s.log.With(slog.String("op", op), slog.String("room_id", roomID))

	meeting, err := s.meetings.GetByRoomID(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrMeetingNotFound) {
			return nil, fmt.Errorf("%w: meeting %s", ErrNotFound, roomID)
		}
		return nil, err
	}

	if !meeting.CanClose(userID) {
		return nil, fmt.Errorf("%w: only creator can close", ErrForbidden)
	}

	meeting.Close(s.now())

	if err := s.meetings.Update(ctx, meeting); err != nil {
		return nil, err
	}

	log.Info("meeting closed", slog.Time("closed_at", *meeting.ClosedAt))
	return meeting, nil
}

func (s *MeetingService) DeleteMeeting(ctx context.Context, userID uuid.UUID, roomID string) error {
	const op = "service.meeting.delete"
	log := s.log.With(slog.String("op", op), slog.String("room_id", roomID))

	meeting, err := s.meetings.GetByRoomID(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrMeetingNotFound) {
			return fmt.Errorf("%w: meeting %s", ErrNotFound, roomID)
		}
		return err
	}

	if !meeting.CanDelete(userID) {
		return fmt.Errorf("%w: only creator can delete", ErrForbidden)
	}

	if err := s.meetings.Delete(ctx, meeting.ID); err != nil {
		return err
	}

	log.Info("meeting deleted")
	return nil
}

// sendInvites dispatches invitation emails to both parties. Dispatch is
// fire-and-forget: a missing creator record or mail failure never fails
// the creation that already happened.
func (s *MeetingService) sendInvites(ctx context.Context, meeting *domain.Meeting, participant *domain.User) {
	details := mailer.InviteDetails{
		Title:       meeting.Title,
		MeetingType: string(meeting.MeetingType),
		StartTime:   meeting.StartTime,
		EndTime:     meeting.EndTime,
		JoinLink:    meeting.JoinLink,
	}

	creator, err := s.users.GetByID(ctx, meeting.Creator)
	if err != nil {
		s.log.Warn("creator lookup failed, skipping invite", sl.Err(err))
	} else if creator.Email != "" {
		s.mail.Send(mailer.MeetingInvite(creator.Email, details))
	}

	if participant.Email != "" {
		s.mail.Send(mailer.MeetingInvite(participant.Email, details))
	}
}

func (s *MeetingService) userInfo(ctx context.Context, id uuid.UUID, cache map[uuid.UUID]UserInfo) UserInfo {
	if info, ok := cache[id]; ok {
		return info
	}

	info := UserInfo{ID: id}
	if user, err := s.users.GetByID(ctx, id); err == nil {
		info.Name = user.Name
		info.Email = user.Email
	}

	cache[id] = info
	return info
}

func (s *MeetingService) joinLink(roomID string) string {
	return fmt.Sprintf("%s/api/v1/meetings/join/%s", s.joinLinkBase, roomID)
}
