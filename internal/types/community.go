package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
)

type Community struct {
  ID           uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  Name         string          `gorm:"column:name;not null;uniqueIndex" json:"name"`
  Description  string          `gorm:"column:description" json:"description"`
  MemberCount  int             `gorm:"column:member_count;not null;default:0" json:"member_count"`
  CreatedAt    time.Time       `gorm:"not null;default:now()" json:"created_at"`
  UpdatedAt    time.Time       `gorm:"not null;default:now()" json:"updated_at"`
  DeletedAt    gorm.DeletedAt  `gorm:"index" json:"deleted_at,omitempty"`
}

func (Community) TableName() string { return "community" }

type Post struct {
  ID           uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  CommunityID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"community_id"`
  Community    *Community      `gorm:"constraint:OnDelete:CASCADE;foreignKey:CommunityID;references:ID" json:"community,omitempty"`
  UserID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
  User         *User           `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
  Title        string          `gorm:"column:title;not null" json:"title"`
  Content      string          `gorm:"column:content" json:"content"`
  CreatedAt    time.Time       `gorm:"not null;default:now()" json:"created_at"`
  UpdatedAt    time.Time       `gorm:"not null;default:now()" json:"updated_at"`
  DeletedAt    gorm.DeletedAt  `gorm:"index" json:"deleted_at,omitempty"`
}

func (Post) TableName() string { return "post" }
