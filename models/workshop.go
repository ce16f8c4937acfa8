package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkshopStatus string

const (
	WorkshopOpen   WorkshopStatus = "open"
	WorkshopClosed WorkshopStatus = "closed"
)

type RegistrationStatus string

const (
	RegistrationPending   RegistrationStatus = "pending"
	RegistrationConfirmed RegistrationStatus = "confirmed"
	RegistrationCancelled RegistrationStatus = "cancelled"
)

type Workshop struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Date        time.Time      `gorm:"not null" json:"date"`
	Location    string         `gorm:"size:255" json:"location"`
	Capacity    int            `gorm:"default:0" json:"capacity"` // 0 = unlimited
	Status      WorkshopStatus `gorm:"type:varchar(20);not null;default:'open'" json:"status"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	Registrations []WorkshopRegistration `gorm:"foreignKey:WorkshopID" json:"registrations,omitempty"`
}

func (w *Workshop) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

type WorkshopRegistration struct {
	ID         uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	WorkshopID uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_workshop_email" json:"workshop_id"`
	Workshop   *Workshop          `gorm:"constraint:OnDelete:CASCADE;" json:"workshop,omitempty"`
	Name       string             `gorm:"size:150;not null" json:"name"`
	Email      string             `gorm:"size:150;not null;uniqueIndex:idx_workshop_email" json:"email"`
	Company    string             `gorm:"size:150" json:"company"`
	Phone      string             `gorm:"size:30" json:"phone"`
	Status     RegistrationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt  time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time          `gorm:"autoUpdateTime" json:"updated_at"`
}

func (r *WorkshopRegistration) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
