package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(meetingController *MeetingController, scheduleController *ScheduleController, userController *UserController) *gin.Engine {
	router := gin.Default()
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{
		"http://localhost:3000",
		"https://localhost:3000",
	}
	config.AllowCredentials = true
	config.AllowHeaders = []string{
		"Authorization",
		"Content-Type",
		"Origin",
		"Accept",
		"X-User-ID",
	}
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	router.Use(cors.New(config))
	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	if userController != nil {
		users := api.Group("/users")
		users.POST("/create", userController.CreateUser)
		users.GET("/:userID", userController.GetUser)
	}

	if meetingController != nil {
		meetings := api.Group("/meetings", UserIdentity())
		meetings.POST("/create-meeting", meetingController.CreateMeeting)
		meetings.GET("/join/:roomID", meetingController.JoinMeeting)
		meetings.GET("/my-meetings", meetingController.MyMeetings)
		meetings.PATCH("/close/:roomID", meetingController.CloseMeeting)
		meetings.DELETE("/:roomID", meetingController.DeleteMeeting)
	}

	if scheduleController != nil {
		schedules := api.Group("/schedules", UserIdentity())
		schedules.POST("", scheduleController.CreateSchedule)
		schedules.GET("", scheduleController.GetSchedules)
	}

	return router
}
