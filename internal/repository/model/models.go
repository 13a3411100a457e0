package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Meeting struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"size:255"`
	Creator     uuid.UUID `gorm:"type:uuid;index;not null"`
	Participant uuid.UUID `gorm:"type:uuid;index;not null"`
	MeetingType string    `gorm:"size:32;not null"`
	StartTime   *time.Time
	EndTime     *time.Time
	RoomID      string `gorm:"size:64;uniqueIndex;not null"`
	JoinLink    string `gorm:"size:512;not null"`
	IsClosed    bool   `gorm:"not null;default:false"`
	ClosedAt    *time.Time
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

type Schedule struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title            string    `gorm:"size:255;not null"`
	Description      string
	StartTime        time.Time      `gorm:"not null"`
	EndTime          time.Time      `gorm:"not null"`
	IsInstantMeeting bool           `gorm:"not null;default:false"`
	AssignedUsers    pq.StringArray `gorm:"type:text[]"`
	GoogleEventID    *string        `gorm:"size:255"`
	GoogleMeetLink   *string        `gorm:"size:512"`
	CreatedBy        uuid.UUID      `gorm:"type:uuid;index;not null"`
	CreatedAt        time.Time      `gorm:"not null;index"`
}

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:255;not null"`
	Email     *string   `gorm:"size:255;uniqueIndex:idx_users_email,where:email IS NOT NULL"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}
