package main

import (
	"errors"
	"log/slog"
	"os"
	"time"

	httpapi "github.com/immxrtalbeast/techflow_meet/internal/api/http"
	"github.com/immxrtalbeast/techflow_meet/internal/calendar"
	"github.com/immxrtalbeast/techflow_meet/internal/config"
	"github.com/immxrtalbeast/techflow_meet/internal/mailer"
	"github.com/immxrtalbeast/techflow_meet/internal/repository"
	"github.com/immxrtalbeast/techflow_meet/internal/repository/model"
	"github.com/immxrtalbeast/techflow_meet/internal/rtctoken"
	"github.com/immxrtalbeast/techflow_meet/internal/service"
	"github.com/immxrtalbeast/techflow_meet/lib/logger/slogpretty"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load(".env")

	cfg := config.MustLoad()
	log := setupLogger(cfg.Env)

	db, err := connectDatabase(cfg.Database)
	if err != nil {
		log.Error("failed to connect database", slog.Any("error", err))
		os.Exit(1)
	}

	meetingRepo := repository.NewPostgresMeetingRepository(db)
	scheduleRepo := repository.NewPostgresScheduleRepository(db)
	userRepo := repository.NewPostgresUserRepository(db)

	tokenBuilder := rtctoken.NewAgora(cfg.Agora.AppID, cfg.Agora.AppCertificate)
	calendarProvider := calendar.NewGoogle(calendar.GoogleConfig{
		ServiceAccountFile: cfg.Google.ServiceAccountFile,
		ClientID:           cfg.Google.ClientID,
		ClientSecret:       cfg.Google.ClientSecret,
		RefreshToken:       cfg.Google.RefreshToken,
		RedirectURI:        cfg.Google.RedirectURI,
		CalendarID:         cfg.Google.CalendarID,
	}, log)
	mail := mailer.New(mailer.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	}, log)

	meetingService := service.NewMeetingService(meetingRepo, userRepo, tokenBuilder, mail, cfg.JoinLink.BaseURL(), log)
	scheduleService := service.NewScheduleService(scheduleRepo, calendarProvider, log)
	userService := service.NewUserService(userRepo, log)

	meetingController := httpapi.NewMeetingController(meetingService)
	scheduleController := httpapi.NewScheduleController(scheduleService)
	userController := httpapi.NewUserController(userService)

	router := httpapi.SetupRouter(meetingController, scheduleController, userController)

	log.Info("starting application", slog.String("addr", cfg.HTTP.Address))
	if err := router.Run(cfg.HTTP.Address); err != nil {
		log.Error("http server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = setupPrettySlog()
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	handler := opts.NewPrettyHandler(os.Stdout)

	return slog.New(handler)
}

func connectDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	if cfg.DSN == "" {
		return nil, errors.New("database dsn is empty")
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.Meeting{}, &model.Schedule{}, &model.User{}); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}
