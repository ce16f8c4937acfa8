package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/arkaconsulting/regmaps-backend/models"
	"github.com/arkaconsulting/regmaps-backend/services"
)

type CreateStandardInput struct {
	Code        string `json:"code" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

type UpdateStandardInput struct {
	Code        *string `json:"code"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	SortOrder   *int    `json:"sort_order"`
}

// POST /admin/standards
func CreateStandard(cache *services.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		db := c.MustGet("db").(*gorm.DB)

		var input CreateStandardInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Code and name are required"})
			return
		}

		var count int64
		db.Model(&models.Standard{}).Where("LOWER(code) = LOWER(?)", input.Code).Count(&count)
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "A standard with this code already exists"})
			return
		}

		standard := models.Standard{
			Code:        input.Code,
			Name:        input.Name,
			Description: input.Description,
			Slug:        slug.Make(input.Code),
			SortOrder:   input.SortOrder,
		}
		if standard.SortOrder == 0 {
			standard.SortOrder = 1
		}

		if err := db.Create(&standard).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot create standard"})
			return
		}

		cache.Invalidate(services.ReferenceTreeKey)
		c.JSON(http.StatusCreated, gin.H{"standard": standard})
	}
}

// GET /admin/standards
func GetStandards(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var standards []models.Standard
	if err := db.Order("sort_order ASC").Find(&standards).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot list standards"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"standards": standards})
}

// GET /admin/standards/:id
func GetStandardDetail(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	standardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var standard models.Standard
	if err := db.
		Preload("Chapters", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		First(&standard, "id = ?", standardID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Standard not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"standard": standard})
}

// PUT /admin/standards/:id
func UpdateStandard(cache *services.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		db := c.MustGet("db").(*gorm.DB)

		standardID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
			return
		}

		var standard models.Standard
		if err := db.First(&standard, "id = ?", standardID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Standard not found"})
			return
		}

		var input UpdateStandardInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := map[string]interface{}{}
		if input.Code != nil {
			updates["code"] = *input.Code
			updates["slug"] = slug.Make(*input.Code)
		}
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.SortOrder != nil {
			updates["sort_order"] = *input.SortOrder
		}

		if len(updates) > 0 {
			if err := db.Model(&standard).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot update standard"})
				return
			}
		}

		if err := db.First(&standard, "id = ?", standardID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot reload standard"})
			return
		}

		cache.Invalidate(services.ReferenceTreeKey)
		c.JSON(http.StatusOK, gin.H{"standard": standard})
	}
}

// DELETE /admin/standards/:id
func DeleteStandard(cache *services.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		db := c.MustGet("db").(*gorm.DB)

		standardID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
			return
		}

		var standard models.Standard
		if err := db.First(&standard, "id = ?", standardID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Standard not found"})
			return
		}

		// FK constraints cascade to chapters and below
		if err := db.Delete(&standard).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot delete standard"})
			return
		}

		cache.Invalidate(services.ReferenceTreeKey)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
