package converter

import (
	"time"

	"github.com/google/uuid"
	"github.com/immxrtalbeast/techflow_meet/internal/domain"
	"github.com/immxrtalbeast/techflow_meet/internal/service"
)

type UserInfoResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type MeetingResponse struct {
	Creator     UserInfoResponse     `json:"creator"`
	Participant UserInfoResponse     `json:"participant"`
	MeetingType domain.MeetingType   `json:"meetingType"`
	StartTime   *time.Time           `json:"startTime"`
	EndTime     *time.Time           `json:"endTime"`
	RoomID      string               `json:"roomId"`
	JoinLink    string               `json:"joinLink"`
	Status      domain.MeetingStatus `json:"status"`
}

func MeetingToApi(view *service.MeetingView) MeetingResponse {
	return MeetingResponse{
		Creator:     userInfoToApi(view.Creator),
		Participant: userInfoToApi(view.Participant),
		MeetingType: view.MeetingType,
		StartTime:   view.StartTime,
		EndTime:     view.EndTime,
		RoomID:      view.RoomID,
		JoinLink:    view.JoinLink,
		Status:      view.Status,
	}
}

func userInfoToApi(info service.UserInfo) UserInfoResponse {
	return UserInfoResponse{
		ID:    info.ID,
		Name:  info.Name,
		Email: info.Email,
	}
}
