package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/immxrtalbeast/techflow_meet/internal/api/http/converter"
	"github.com/immxrtalbeast/techflow_meet/internal/domain"
	"github.com/immxrtalbeast/techflow_meet/internal/service"
)

type ScheduleController struct {
	schedules service.ScheduleInteractor
}

func NewScheduleController(schedules service.ScheduleInteractor) *ScheduleController {
	return &ScheduleController{schedules: schedules}
}

func (c *ScheduleController) CreateSchedule(ctx *gin.Context) {
	type request struct {
		Title            string     `json:"title" binding:"required"`
		Description      string     `json:"description"`
		StartTime        *time.Time `json:"startTime"`
		EndTime          *time.Time `json:"endTime"`
		IsInstantMeeting bool       `json:"isInstantMeeting"`
		AssignedUsers    []string   `json:"assignedUsers" binding:"dive,email"`
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

	schedule, err := c.schedules.CreateSchedule(ctx.Request.Context(), service.CreateScheduleInput{
		CreatedBy:        userID,
		Title:            req.Title,
		Description:      req.Description,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		IsInstantMeeting: req.IsInstantMeeting,
		AssignedUsers:    req.AssignedUsers,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, converter.ScheduleCreatedToApi(schedule))
}

func (c *ScheduleController) GetSchedules(ctx *gin.Context) {
	email := ctx.Query("email")

	views, err := c.schedules.SchedulesByEmail(ctx.Request.Context(), email)
	if err != nil {
		respondError(ctx, err)
		return
	}

	upcoming := make([]converter.ScheduleResponse, 0)
	ongoing := make([]converter.ScheduleResponse, 0)
	past := make([]converter.ScheduleResponse, 0)

	for _, view := range views {
		resp := converter.ScheduleToApi(view)
		switch view.Status {
		case domain.ScheduleStatusUpcoming:
			upcoming = append(upcoming, resp)
		case domain.ScheduleStatusPast:
			past = append(past, resp)
		default:
			ongoing = append(ongoing, resp)
		}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"upcoming": upcoming,
		"ongoing":  ongoing,
		"past":     past,
	})
}
