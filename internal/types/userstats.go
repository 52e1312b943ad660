package types

import (
  "time"
  "github.com/google/uuid"
)

type UserStats struct {
  ID           uuid.UUID   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  UserID       uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
  LoginCount   int         `gorm:"column:login_count;not null;default:0" json:"login_count"`
  StreakDays   int         `gorm:"column:streak_days;not null;default:0" json:"streak_days"`
  LastLoginAt  *time.Time  `gorm:"column:last_login_at" json:"last_login_at,omitempty"`
  StudyHours   float64     `gorm:"column:study_hours;not null;default:0" json:"study_hours"`
  CreatedAt    time.Time   `gorm:"not null;default:now()" json:"created_at"`
  UpdatedAt    time.Time   `gorm:"not null;default:now()" json:"updated_at"`
}

func (UserStats) TableName() string {
  return "user_stats"
}
