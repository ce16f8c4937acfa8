package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Section struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	ChapterID   uuid.UUID    `gorm:"type:uuid;not null;index" json:"chapter_id"`
	Chapter     *Chapter     `gorm:"constraint:OnDelete:CASCADE;" json:"chapter,omitempty"`
	Title       string       `gorm:"size:255;not null" json:"title"`
	SortOrder   int          `gorm:"column:sort_order;default:1" json:"sort_order"`
	CreatedAt   time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
	Subsections []Subsection `gorm:"foreignKey:SectionID" json:"subsections,omitempty"`
}

func (s *Section) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
