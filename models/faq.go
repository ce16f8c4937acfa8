package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FAQ struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	SubsectionID uuid.UUID   `gorm:"type:uuid;not null;index" json:"subsection_id"`
	Subsection   *Subsection `gorm:"constraint:OnDelete:CASCADE;" json:"subsection,omitempty"`
	Question     string      `gorm:"type:text;not null" json:"question"`
	Answer       string      `gorm:"type:text;not null" json:"answer"`
	SortOrder    int         `gorm:"column:sort_order;default:1" json:"sort_order"`
	CreatedAt    time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (f *FAQ) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
