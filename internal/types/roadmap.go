package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/datatypes"
  "gorm.io/gorm"
)

type Roadmap struct {
  ID             uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  UserID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
  User           *User           `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
  Topic          string          `gorm:"column:topic;not null" json:"topic"`
  DurationWeeks  int             `gorm:"column:duration_weeks;not null;default:4" json:"duration_weeks"`
  Payload        datatypes.JSON  `gorm:"column:payload;type:jsonb" json:"payload"`
  CreatedAt      time.Time       `gorm:"not null;default:now()" json:"created_at"`
  UpdatedAt      time.Time       `gorm:"not null;default:now()" json:"updated_at"`
  DeletedAt      gorm.DeletedAt  `gorm:"index" json:"deleted_at,omitempty"`
}

func (Roadmap) TableName() string { return "roadmap" }
