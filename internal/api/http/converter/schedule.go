package converter

import (
	"time"

	"github.com/google/uuid"
	"github.com/immxrtalbeast/techflow_meet/internal/domain"
	"github.com/immxrtalbeast/techflow_meet/internal/service"
)

type ScheduleCreatedResponse struct {
	MeetingID      uuid.UUID `json:"meetingId"`
	GoogleEventID  string    `json:"googleEventId"`
	GoogleMeetLink *string   `json:"googleMeetLink"`
	StartTime      time.Time `json:"startTime"`
	EndTime        time.Time `json:"endTime"`
	AssignedUsers  []string  `json:"assignedUsers"`
}

type ScheduleResponse struct {
	MeetingID      uuid.UUID             `json:"meetingId"`
	Title          string                `json:"title"`
	Description    string                `json:"description,omitempty"`
	StartTime      time.Time             `json:"startTime"`
	EndTime        time.Time             `json:"endTime"`
	GoogleMeetLink *string               `json:"googleMeetLink"`
	Status         domain.ScheduleStatus `json:"status"`
}

func ScheduleCreatedToApi(schedule *domain.Schedule) ScheduleCreatedResponse {
	return ScheduleCreatedResponse{
		MeetingID:      schedule.ID,
		GoogleEventID:  schedule.GoogleEventID,
		GoogleMeetLink: nullableLink(schedule.GoogleMeetLink),
		StartTime:      schedule.StartTime,
		EndTime:        schedule.EndTime,
		AssignedUsers:  schedule.AssignedUsers,
	}
}

func ScheduleToApi(view *service.ScheduleView) ScheduleResponse {
	return ScheduleResponse{
		MeetingID:      view.MeetingID,
		Title:          view.Title,
		Description:    view.Description,
		StartTime:      view.StartTime,
		EndTime:        view.EndTime,
		GoogleMeetLink: nullableLink(view.GoogleMeetLink),
		Status:         view.Status,
	}
}

// nullableLink keeps an absent meet link as JSON null rather than "".
func nullableLink(link string) *string {
	if link == "" {
		return nil
	}
	return &link
}
