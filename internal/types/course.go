package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/datatypes"
  "gorm.io/gorm"
)

type Course struct {
  ID               uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  UserID           uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
  User             *User           `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
  Name             string          `gorm:"column:name;not null" json:"name"`
  Description      string          `gorm:"column:description" json:"description"`
  Subject          string          `gorm:"column:subject" json:"subject"`
  DifficultyLevel  string          `gorm:"column:difficulty_level" json:"difficulty_level"`
  EstimatedHours   int             `gorm:"column:estimated_hours" json:"estimated_hours"`
  StartDate        *time.Time      `gorm:"column:start_date" json:"start_date,omitempty"`
  EndDate          *time.Time      `gorm:"column:end_date" json:"end_date,omitempty"`
  StudyPlan        datatypes.JSON  `gorm:"column:study_plan;type:jsonb" json:"study_plan,omitempty"`
  PlanGeneratedAt  *time.Time      `gorm:"column:plan_generated_at" json:"plan_generated_at,omitempty"`
  CreatedAt        time.Time       `gorm:"not null;default:now()" json:"created_at"`
  UpdatedAt        time.Time       `gorm:"not null;default:now()" json:"updated_at"`
  DeletedAt        gorm.DeletedAt  `gorm:"index" json:"deleted_at,omitempty"`
}

func (Course) TableName() string { return "course" }
