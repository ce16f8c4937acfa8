package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arkaconsulting/regmaps-backend/models"
)

type CreateWorkshopInput struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" binding:"required"`
	Location    string    `json:"location"`
	Capacity    int       `json:"capacity"`
}

type UpdateWorkshopInput struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
	Location    *string    `json:"location"`
	Capacity    *int       `json:"capacity"`
	Status      *string    `json:"status"`
}

type RegisterWorkshopInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
}

type UpdateRegistrationInput struct {
	Status string `json:"status" binding:"required"`
}

// GET /workshops — public list of open workshops
func GetOpenWorkshops(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var workshops []models.Workshop
	if err := db.Where("status = ?", models.WorkshopOpen).
		Order("date ASC").
		Find(&workshops).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot list workshops"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"workshops": workshops})
}

// POST /workshops/:id/register — public
func RegisterForWorkshop(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	workshopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var workshop models.Workshop
	if err := db.First(&workshop, "id = ?", workshopID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Workshop not found"})
		return
	}
	if workshop.Status != models.WorkshopOpen {
		c.JSON(http.StatusConflict, gin.H{"error": "Workshop is closed for registration"})
		return
	}

	var input RegisterWorkshopInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and a valid email are required"})
		return
	}

	var count int64
	db.Model(&models.WorkshopRegistration{}).
		Where("workshop_id = ? AND LOWER(email) = LOWER(?)", workshopID, input.Email).
		Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "This email is already registered for the workshop"})
		return
	}

	if workshop.Capacity > 0 {
		var taken int64
		db.Model(&models.WorkshopRegistration{}).
			Where("workshop_id = ? AND status <> ?", workshopID, models.RegistrationCancelled).
			Count(&taken)
		if taken >= int64(workshop.Capacity) {
			c.JSON(http.StatusConflict, gin.H{"error": "Workshop is full"})
			return
		}
	}

	registration := models.WorkshopRegistration{
		WorkshopID: workshopID,
		Name:       input.Name,
		Email:      input.Email,
		Company:    input.Company,
		Phone:      input.Phone,
		Status:     models.RegistrationPending,
	}

	if err := db.Create(&registration).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot create registration"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"registration": registration})
}

// POST /admin/workshops
func CreateWorkshop(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input CreateWorkshopInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and date are required"})
		return
	}

	workshop := models.Workshop{
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		Location:    input.Location,
		Capacity:    input.Capacity,
		Status:      models.WorkshopOpen,
	}

	if err := db.Create(&workshop).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot create workshop"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"workshop": workshop})
}

// GET /admin/workshops
func GetWorkshops(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var workshops []models.Workshop
	if err := db.Order("date DESC").Find(&workshops).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot list workshops"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"workshops": workshops})
}

// PUT /admin/workshops/:id
func UpdateWorkshop(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	workshopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var workshop models.Workshop
	if err := db.First(&workshop, "id = ?", workshopID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Workshop not found"})
		return
	}

	var input UpdateWorkshopInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Date != nil {
		updates["date"] = *input.Date
	}
	if input.Location != nil {
		updates["location"] = *input.Location
	}
	if input.Capacity != nil {
		updates["capacity"] = *input.Capacity
	}
	if input.Status != nil {
		if *input.Status != string(models.WorkshopOpen) && *input.Status != string(models.WorkshopClosed) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be open or closed"})
			return
		}
		updates["status"] = *input.Status
	}

	if len(updates) > 0 {
		if err := db.Model(&workshop).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot update workshop"})
			return
		}
	}

	if err := db.First(&workshop, "id = ?", workshopID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot reload workshop"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"workshop": workshop})
}

// DELETE /admin/workshops/:id
func DeleteWorkshop(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	workshopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var workshop models.Workshop
	if err := db.First(&workshop, "id = ?", workshopID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Workshop not found"})
		return
	}

	if err := db.Delete(&workshop).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot delete workshop"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GET /admin/workshops/:id/registrations
func GetWorkshopRegistrations(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	workshopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var registrations []models.WorkshopRegistration
	if err := db.Where("workshop_id = ?", workshopID).
		Order("created_at ASC").
		Find(&registrations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot list registrations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"registrations": registrations})
}

// PATCH /admin/registrations/:id
// Confirming a registration leaves a note in the acting admin's inbox so
// follow-ups are traceable.
func UpdateRegistrationStatus(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	registrationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var input UpdateRegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		return
	}
	switch models.RegistrationStatus(input.Status) {
	case models.RegistrationPending, models.RegistrationConfirmed, models.RegistrationCancelled:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be pending, confirmed or cancelled"})
		return
	}

	var registration models.WorkshopRegistration
	if err := db.Preload("Workshop").First(&registration, "id = ?", registrationID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Registration not found"})
		return
	}

	if err := db.Model(&registration).Update("status", input.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot update registration"})
		return
	}

	if models.RegistrationStatus(input.Status) == models.RegistrationConfirmed {
		if adminID, err := uuid.Parse(c.GetString("user_id")); err == nil {
			title := "Workshop registration confirmed"
			message := registration.Name + " (" + registration.Email + ") confirmed"
			if registration.Workshop != nil {
				message += " for " + registration.Workshop.Title
			}
			notif := models.Notification{
				UserID:  adminID,
				Title:   title,
				Message: message,
				Type:    "workshop",
			}
			if err := db.Create(&notif).Error; err == nil {
				pushBadge(db, adminID)
			}
		}
	}

	registration.Status = models.RegistrationStatus(input.Status)
	c.JSON(http.StatusOK, gin.H{"registration": registration})
}

// DELETE /admin/registrations/:id
func DeleteRegistration(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	registrationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var registration models.WorkshopRegistration
	if err := db.First(&registration, "id = ?", registrationID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Registration not found"})
		return
	}

	if err := db.Delete(&registration).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot delete registration"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
