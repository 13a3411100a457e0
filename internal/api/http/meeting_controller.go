package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/immxrtalbeast/techflow_meet/internal/api/http/converter"
	"github.com/immxrtalbeast/techflow_meet/internal/domain"
	"github.com/immxrtalbeast/techflow_meet/internal/service"
)

type MeetingController struct {
	meetings service.MeetingInteractor
}

func NewMeetingController(meetings service.MeetingInteractor) *MeetingController {
	return &MeetingController{meetings: meetings}
}

func (c *MeetingController) CreateMeeting(ctx *gin.Context) {
	type request struct {
		Title         string     `json:"title"`
		ParticipantID string     `json:"participantId" binding:"required"`
		MeetingType   string     `json:"meetingType" binding:"required,oneof=scheduled instant"`
		StartTime     *time.Time `json:"startTime"`
		EndTime       *time.Time `json:"endTime"`
	}

	userID, ok := currentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "missing user identity"})
		return
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	participantID, err := uuid.Parse(req.ParticipantID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid participant id"})
		return
	}

	meeting, err := c.meetings.CreateMeeting(ctx.Request.Context(), service.CreateMeetingInput{
		Creator:     userID,
		Participant: participantID,
		MeetingType: domain.MeetingType(req.MeetingType),
		Title:       req.Title,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"id":          meeting.RoomID,
		"joinLink":    meeting.JoinLink,
		"meetingType": meeting.MeetingType,
	})
}

func (c *MeetingController) JoinMeeting(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "missing user identity"})
		return
	}

	access, err := c.meetings.GetAccessToken(ctx.Request.Context(), userID, ctx.Param("roomID"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"token":       access.Token,
		"channelName": access.ChannelName,
	})
}

func (c *MeetingController) MyMeetings(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "missing user identity"})
		return
	}

	views, err := c.meetings.MyMeetings(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	meetings := make([]converter.MeetingResponse, 0, len(views))
	for _, view := range views {
		meetings = append(meetings, converter.MeetingToApi(view))
	}

	ctx.JSON(http.StatusOK, gin.H{"meetings": meetings})
}

func (c *MeetingController) CloseMeeting(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "missing user identity"})
		return
	}

	meeting, err := c.meetings.CloseMeeting(ctx.Request.Context(), userID, ctx.Param("roomID"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"roomId":   meeting.RoomID,
		"closedAt": meeting.ClosedAt,
	})
}

func (c *MeetingController) DeleteMeeting(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "missing user identity"})
		return
	}

	roomID := ctx.Param("roomID")
	if err := c.meetings.DeleteMeeting(ctx.Request.Context(), userID, roomID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"roomId": roomID})
}

func respondError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrUpstream):
		status = http.StatusBadGateway
	}
	ctx.JSON(status, gin.H{"error": err.Error()})
}
