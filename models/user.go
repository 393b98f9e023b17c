// models/user.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       string `gorm:"primaryKey;type:uuid" json:"id"`
	Username string `gorm:"uniqueIndex;not null;size:50" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Age      int    `gorm:"not null" json:"age"`

	// Stats (denormalized counters, incremented atomically on quiz submit)
	TotalPoints      int `gorm:"default:0" json:"total_points"`
	QuizzesCompleted int `gorm:"default:0" json:"quizzes_completed"`

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	LastLogin time.Time `json:"last_login"`

	// Relationships
	Badges  []BadgeAward  `gorm:"foreignKey:UserID" json:"badges,omitempty"`
	History []QuizAttempt `gorm:"foreignKey:UserID" json:"history,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns an opaque UUID identifier when none is set.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// UserStats is the aggregate snapshot the achievement evaluator runs against.
type UserStats struct {
	TotalPoints      int `json:"total_points"`
	QuizzesCompleted int `json:"quizzes_completed"`
}

func (u *User) Stats() UserStats {
	return UserStats{
		TotalPoints:      u.TotalPoints,
		QuizzesCompleted: u.QuizzesCompleted,
	}
}
