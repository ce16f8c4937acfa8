package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arkaconsulting/regmaps-backend/models"
	"github.com/arkaconsulting/regmaps-backend/services"
)

// GET /references
// Full standards tree for the reference picker. The deep nested read is
// memoized for five minutes; admin writes to any tree entity invalidate it.
// X-Cache reports HIT or MISS.
func GetReferences(cache *services.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cached, ok := cache.Get(services.ReferenceTreeKey); ok {
			c.Header("X-Cache", "HIT")
			c.JSON(http.StatusOK, gin.H{"standards": cached})
			return
		}

		db := c.MustGet("db").(*gorm.DB)

		var standards []models.Standard
		if err := db.
			Order("sort_order ASC").
			Preload("Chapters", func(db *gorm.DB) *gorm.DB {
				return db.Order("sort_order ASC")
			}).
			Preload("Chapters.Sections", func(db *gorm.DB) *gorm.DB {
				return db.Order("sort_order ASC")
			}).
			Preload("Chapters.Sections.Subsections", func(db *gorm.DB) *gorm.DB {
				return db.Select("id, section_id, number, sort_order").Order("sort_order ASC")
			}).
			Find(&standards).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot build reference tree"})
			return
		}

		cache.Set(services.ReferenceTreeKey, standards, services.ReferenceTreeTTL)

		c.Header("X-Cache", "MISS")
		c.JSON(http.StatusOK, gin.H{"standards": standards})
	}
}
