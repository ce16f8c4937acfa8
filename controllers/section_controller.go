package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arkaconsulting/regmaps-backend/models"
	"github.com/arkaconsulting/regmaps-backend/services"
)

type CreateSectionInput struct {
	ChapterID uuid.UUID `json:"chapter_id" binding:"required"`
	Title     string    `json:"title" binding:"required"`
	SortOrder int       `json:"sort_order"`
}

type UpdateSectionInput struct {
	Title     *string `json:"title"`
	SortOrder *int    `json:"sort_order"`
}

// POST /admin/sections
func CreateSection(cache *services.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		db := c.MustGet("db").(*gorm.DB)

		var input CreateSectionInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "chapter_id and title are required"})
			return
		}

		section := models.Section{
			ChapterID: input.ChapterID,
			Title:     input.Title,
			SortOrder: input.SortOrder,
		}
		if section.SortOrder == 0 {
			section.SortOrder = 1
		}

		if err := db.Create(&section).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot create section"})
			return
		}

		cache.Invalidate(services.ReferenceTreeKey)
		c.JSON(http.StatusCreated, gin.H{"section": section})
	}
}

// GET /admin/sections?chapter_id=...
func GetSections(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	chapterID, err := uuid.Parse(c.Query("chapter_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "chapter_id is required"})
		return
	}

	var sections []models.Section
	if err := db.Where("chapter_id = ?", chapterID).
		Order("sort_order ASC").
		Find(&sections).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot list sections"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sections": sections})
}

// GET /admin/sections/:id
func GetSectionDetail(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	sectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var section models.Section
	if err := db.
		Preload("Subsections", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		First(&section, "id = ?", sectionID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"section": section})
}

// PUT /admin/sections/:id
func UpdateSection(cache *services.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		db := c.MustGet("db").(*gorm.DB)

		sectionID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
			return
		}

		var section models.Section
		if err := db.First(&section, "id = ?", sectionID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
			return
		}

		var input UpdateSectionInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := map[string]interface{}{}
		if input.Title != nil {
			updates["title"] = *input.Title
		}
		if input.SortOrder != nil {
			updates["sort_order"] = *input.SortOrder
		}

		if len(updates) > 0 {
			if err := db.Model(&section).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot update section"})
				return
			}
		}

		if err := db.First(&section, "id = ?", sectionID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot reload section"})
			return
		}

		cache.Invalidate(services.ReferenceTreeKey)
		c.JSON(http.StatusOK, gin.H{"section": section})
	}
}

// DELETE /admin/sections/:id
func DeleteSection(cache *services.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		db := c.MustGet("db").(*gorm.DB)

		sectionID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
			return
		}

		var section models.Section
		if err := db.First(&section, "id = ?", sectionID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
			return
		}

		if err := db.Delete(&section).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot delete section"})
			return
		}

		cache.Invalidate(services.ReferenceTreeKey)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
