package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arkaconsulting/regmaps-backend/models"
	"github.com/arkaconsulting/regmaps-backend/services"
)

type CreateChapterInput struct {
	StandardID    uuid.UUID  `json:"standard_id" binding:"required"`
	Code          string     `json:"code" binding:"required"`
	Title         string     `json:"title" binding:"required"`
	Status        string     `json:"status"`
	EffectiveDate *time.Time `json:"effective_date"`
	SortOrder     int        `json:"sort_order"`
}

type UpdateChapterInput struct {
	Code          *string    `json:"code"`
	Title         *string    `json:"title"`
	Status        *string    `json:"status"`
	EffectiveDate *time.Time `json:"effective_date"`
	SortOrder     *int       `json:"sort_order"`
}

// POST /admin/chapters
func CreateChapter(cache *services.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		db := c.MustGet("db").(*gorm.DB)

		var input CreateChapterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "standard_id, code and title are required"})
			return
		}

		status := models.ChapterCurrent
		if input.Status == string(models.ChapterArchived) {
			status = models.ChapterArchived
		}

		chapter := models.Chapter{
			StandardID:    input.StandardID,
			Code:          input.Code,
			Title:         input.Title,
			Status:        status,
			EffectiveDate: input.EffectiveDate,
			LastUpdate:    time.Now(),
			SortOrder:     input.SortOrder,
		}
		if chapter.SortOrder == 0 {
			chapter.SortOrder = 1
		}

		if err := db.Create(&chapter).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot create chapter"})
			return
		}

		cache.Invalidate(services.ReferenceTreeKey)
		c.JSON(http.StatusCreated, gin.H{"chapter": chapter})
	}
}

// GET /admin/chapters?standard_id=...
func GetChapters(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	standardID, err := uuid.Parse(c.Query("standard_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "standard_id is required"})
		return
	}

	var chapters []models.Chapter
	if err := db.Where("standard_id = ?", standardID).
		Order("sort_order ASC").
		Find(&chapters).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot list chapters"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"chapters": chapters})
}

// GET /admin/chapters/:id — full nested tree for the chapter page
func GetChapterDetail(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	chapterID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var chapter models.Chapter
	if err := db.
		Preload("Standard").
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Sections.Subsections", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Sections.Subsections.Footnotes", func(db *gorm.DB) *gorm.DB {
			return db.Order("number ASC")
		}).
		Preload("Sections.Subsections.FAQs", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Sections.Subsections.Revisions", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("PDFs", "status = ?", models.PDFCommitted).
		First(&chapter, "id = ?", chapterID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chapter not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"chapter": chapter})
}

// PUT /admin/chapters/:id
// last_update is stamped on every call, whatever fields changed.
func UpdateChapter(cache *services.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		db := c.MustGet("db").(*gorm.DB)

		chapterID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
			return
		}

		var chapter models.Chapter
		if err := db.First(&chapter, "id = ?", chapterID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Chapter not found"})
			return
		}

		var input UpdateChapterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := map[string]interface{}{
			"last_update": time.Now(),
		}
		if input.Code != nil {
			updates["code"] = *input.Code
		}
		if input.Title != nil {
			updates["title"] = *input.Title
		}
		if input.Status != nil {
			if *input.Status != string(models.ChapterCurrent) && *input.Status != string(models.ChapterArchived) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be current or archived"})
				return
			}
			updates["status"] = *input.Status
		}
		if input.EffectiveDate != nil {
			updates["effective_date"] = *input.EffectiveDate
		}
		if input.SortOrder != nil {
			updates["sort_order"] = *input.SortOrder
		}

		if err := db.Model(&chapter).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot update chapter"})
			return
		}

		if err := db.First(&chapter, "id = ?", chapterID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot reload chapter"})
			return
		}

		cache.Invalidate(services.ReferenceTreeKey)
		c.JSON(http.StatusOK, gin.H{"chapter": chapter})
	}
}

// DELETE /admin/chapters/:id
func DeleteChapter(cache *services.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		db := c.MustGet("db").(*gorm.DB)

		chapterID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
			return
		}

		var chapter models.Chapter
		if err := db.First(&chapter, "id = ?", chapterID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Chapter not found"})
			return
		}

		if err := db.Delete(&chapter).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot delete chapter"})
			return
		}

		cache.Invalidate(services.ReferenceTreeKey)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
