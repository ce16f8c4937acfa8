package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Revision is a historical snapshot of a subsection's text. Rows are
// append-only: superseded content gets a new revision, existing ones
// are never rewritten.
type Revision struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	SubsectionID uuid.UUID   `gorm:"type:uuid;not null;index" json:"subsection_id"`
	Subsection   *Subsection `gorm:"constraint:OnDelete:CASCADE;" json:"subsection,omitempty"`
	Title        string      `gorm:"size:255;not null" json:"title"`
	Content      string      `gorm:"type:text" json:"content"`
	RevisionDate time.Time   `gorm:"not null" json:"revision_date"`
	SortOrder    int         `gorm:"column:sort_order;default:1" json:"sort_order"`
	CreatedAt    time.Time   `gorm:"autoCreateTime" json:"created_at"`
}

func (r *Revision) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
