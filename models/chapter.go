package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChapterStatus string

const (
	ChapterCurrent  ChapterStatus = "current"
	ChapterArchived ChapterStatus = "archived"
)

type Chapter struct {
	ID            uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	StandardID    uuid.UUID     `gorm:"type:uuid;not null;index" json:"standard_id"`
	Standard      *Standard     `gorm:"constraint:OnDelete:CASCADE;" json:"standard,omitempty"`
	Code          string        `gorm:"size:20;not null" json:"code"`
	Title         string        `gorm:"size:255;not null" json:"title"`
	Status        ChapterStatus `gorm:"type:varchar(20);not null;default:'current'" json:"status"`
	EffectiveDate *time.Time    `json:"effective_date,omitempty"`
	LastUpdate    time.Time     `gorm:"column:last_update;autoCreateTime" json:"last_update"` // stamped on every update
	SortOrder     int           `gorm:"column:sort_order;default:1" json:"sort_order"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
	Sections      []Section     `gorm:"foreignKey:ChapterID" json:"sections,omitempty"`
	PDFs          []ChapterPDF  `gorm:"foreignKey:ChapterID" json:"pdfs,omitempty"`
}

func (ch *Chapter) BeforeCreate(tx *gorm.DB) error {
	if ch.ID == uuid.Nil {
		ch.ID = uuid.New()
	}
	return nil
}
