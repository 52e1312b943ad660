package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
)

type CourseFile struct {
  ID            uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  CourseID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"course_id"`
  Course        *Course         `gorm:"constraint:OnDelete:CASCADE;foreignKey:CourseID;references:ID" json:"course,omitempty"`
  OriginalName  string          `gorm:"column:original_name;not null" json:"original_name"`
  StorageKey    string          `gorm:"column:storage_key;index" json:"storage_key"`
  FileURL       string          `gorm:"column:file_url" json:"file_url"`
  MimeType      string          `gorm:"column:mime_type" json:"mime_type"`
  SizeBytes     int64           `gorm:"column:size_bytes" json:"size_bytes"`
  Status        string          `gorm:"column:status;not null;default:'pending_upload'" json:"status"`
  UploadedAt    *time.Time      `gorm:"column:uploaded_at" json:"uploaded_at,omitempty"`
  CreatedAt     time.Time       `gorm:"not null;default:now()" json:"created_at"`
  UpdatedAt     time.Time       `gorm:"not null;default:now()" json:"updated_at"`
  DeletedAt     gorm.DeletedAt  `gorm:"index" json:"deleted_at,omitempty"`
}

func (CourseFile) TableName() string { return "course_file" }
