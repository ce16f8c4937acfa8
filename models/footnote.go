package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Footnote struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	SubsectionID uuid.UUID   `gorm:"type:uuid;not null;index" json:"subsection_id"`
	Subsection   *Subsection `gorm:"constraint:OnDelete:CASCADE;" json:"subsection,omitempty"`
	Number       int         `gorm:"not null" json:"number"`
	Content      string      `gorm:"type:text;not null" json:"content"`
	CreatedAt    time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (f *Footnote) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
