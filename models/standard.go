package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Standard struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Code        string    `gorm:"size:20;not null;uniqueIndex" json:"code"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Slug        string    `gorm:"size:100;index" json:"slug"`
	SortOrder   int       `gorm:"column:sort_order;default:1" json:"sort_order"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	Chapters    []Chapter `gorm:"foreignKey:StandardID" json:"chapters,omitempty"`
}

func (s *Standard) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
