package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PDFStatus string

const (
	PDFPending   PDFStatus = "pending"   // record created, bytes not yet in storage
	PDFCommitted PDFStatus = "committed" // storage upload confirmed
)

type ChapterPDF struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ChapterID     uuid.UUID `gorm:"type:uuid;not null;index" json:"chapter_id"`
	Chapter       *Chapter  `gorm:"constraint:OnDelete:CASCADE;" json:"chapter,omitempty"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	URL           string    `gorm:"type:text" json:"url"`
	ObjectName    string    `gorm:"size:255" json:"object_name"` // storage path, needed for delete
	Status        PDFStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	ExtractedText string    `gorm:"type:text" json:"-"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *ChapterPDF) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
