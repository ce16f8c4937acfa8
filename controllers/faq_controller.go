package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arkaconsulting/regmaps-backend/models"
)

type CreateFAQInput struct {
	SubsectionID uuid.UUID `json:"subsection_id" binding:"required"`
	Question     string    `json:"question" binding:"required"`
	Answer       string    `json:"answer" binding:"required"`
	SortOrder    int       `json:"sort_order"`
}

type UpdateFAQInput struct {
	Question  *string `json:"question"`
	Answer    *string `json:"answer"`
	SortOrder *int    `json:"sort_order"`
}

// POST /admin/faqs
func CreateFAQ(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input CreateFAQInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "subsection_id, question and answer are required"})
		return
	}

	faq := models.FAQ{
		SubsectionID: input.SubsectionID,
		Question:     input.Question,
		Answer:       input.Answer,
		SortOrder:    input.SortOrder,
	}
	if faq.SortOrder == 0 {
		faq.SortOrder = 1
	}

	if err := db.Create(&faq).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot create FAQ"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"faq": faq})
}

// GET /admin/faqs?subsection_id=...
func GetFAQs(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	subsectionID, err := uuid.Parse(c.Query("subsection_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "subsection_id is required"})
		return
	}

	var faqs []models.FAQ
	if err := db.Where("subsection_id = ?", subsectionID).
		Order("sort_order ASC").
		Find(&faqs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot list FAQs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"faqs": faqs})
}

// PUT /admin/faqs/:id
func UpdateFAQ(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	faqID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var faq models.FAQ
	if err := db.First(&faq, "id = ?", faqID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "FAQ not found"})
		return
	}

	var input UpdateFAQInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.Question != nil {
		updates["question"] = *input.Question
	}
	if input.Answer != nil {
		updates["answer"] = *input.Answer
	}
	if input.SortOrder != nil {
		updates["sort_order"] = *input.SortOrder
	}

	if len(updates) > 0 {
		if err := db.Model(&faq).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot update FAQ"})
			return
		}
	}

	if err := db.First(&faq, "id = ?", faqID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot reload FAQ"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"faq": faq})
}

// DELETE /admin/faqs/:id
func DeleteFAQ(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	faqID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var faq models.FAQ
	if err := db.First(&faq, "id = ?", faqID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "FAQ not found"})
		return
	}

	if err := db.Delete(&faq).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot delete FAQ"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
