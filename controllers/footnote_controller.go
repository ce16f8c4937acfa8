package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arkaconsulting/regmaps-backend/models"
)

type CreateFootnoteInput struct {
	SubsectionID uuid.UUID `json:"subsection_id" binding:"required"`
	Number       int       `json:"number" binding:"required"`
	Content      string    `json:"content" binding:"required"`
}

type UpdateFootnoteInput struct {
	Number  *int    `json:"number"`
	Content *string `json:"content"`
}

// POST /admin/footnotes
func CreateFootnote(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input CreateFootnoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "subsection_id, number and content are required"})
		return
	}

	footnote := models.Footnote{
		SubsectionID: input.SubsectionID,
		Number:       input.Number,
		Content:      input.Content,
	}

	if err := db.Create(&footnote).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot create footnote"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"footnote": footnote})
}

// GET /admin/footnotes?subsection_id=...
func GetFootnotes(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	subsectionID, err := uuid.Parse(c.Query("subsection_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "subsection_id is required"})
		return
	}

	var footnotes []models.Footnote
	if err := db.Where("subsection_id = ?", subsectionID).
		Order("number ASC").
		Find(&footnotes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot list footnotes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"footnotes": footnotes})
}

// PUT /admin/footnotes/:id
func UpdateFootnote(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	footnoteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var footnote models.Footnote
	if err := db.First(&footnote, "id = ?", footnoteID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Footnote not found"})
		return
	}

	var input UpdateFootnoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.Number != nil {
		updates["number"] = *input.Number
	}
	if input.Content != nil {
		updates["content"] = *input.Content
	}

	if len(updates) > 0 {
		if err := db.Model(&footnote).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot update footnote"})
			return
		}
	}

	if err := db.First(&footnote, "id = ?", footnoteID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot reload footnote"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"footnote": footnote})
}

// DELETE /admin/footnotes/:id
func DeleteFootnote(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	footnoteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var footnote models.Footnote
	if err := db.First(&footnote, "id = ?", footnoteID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Footnote not found"})
		return
	}

	if err := db.Delete(&footnote).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot delete footnote"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
