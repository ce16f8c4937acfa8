package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subsection holds the actual regulatory text. Number is the human-facing
// identifier (e.g. "20.1") and must be unique within its section.
type Subsection struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	SectionID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_section_number" json:"section_id"`
	Section      *Section   `gorm:"constraint:OnDelete:CASCADE;" json:"section,omitempty"`
	Number       string     `gorm:"size:30;not null;uniqueIndex:idx_section_number" json:"number"`
	Content      string     `gorm:"type:text" json:"content"`
	AdvisoryNote *string    `gorm:"type:text" json:"advisory_note,omitempty"`
	SortOrder    int        `gorm:"column:sort_order;default:1" json:"sort_order"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	Footnotes    []Footnote `gorm:"foreignKey:SubsectionID" json:"footnotes,omitempty"`
	FAQs         []FAQ      `gorm:"foreignKey:SubsectionID" json:"faqs,omitempty"`
	Revisions    []Revision `gorm:"foreignKey:SubsectionID" json:"revisions,omitempty"`
}

func (s *Subsection) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
