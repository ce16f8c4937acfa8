package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arkaconsulting/regmaps-backend/models"
	"github.com/arkaconsulting/regmaps-backend/services"
)

var errDuplicateNumber = errors.New("duplicate subsection number")

type CreateSubsectionInput struct {
	SectionID    uuid.UUID `json:"section_id" binding:"required"`
	Number       string    `json:"number" binding:"required"`
	Content      string    `json:"content"`
	AdvisoryNote *string   `json:"advisory_note"`
	SortOrder    int       `json:"sort_order"`
}

type UpdateSubsectionInput struct {
	Number       *string `json:"number"`
	Content      *string `json:"content"`
	AdvisoryNote *string `json:"advisory_note"`
	SortOrder    *int    `json:"sort_order"`
}

// POST /admin/subsections
// The duplicate-number check and the insert run in one transaction; the
// unique index on (section_id, number) backs it up under concurrency.
func CreateSubsection(cache *services.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		db := c.MustGet("db").(*gorm.DB)

		var input CreateSubsectionInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "section_id and number are required"})
			return
		}

		subsection := models.Subsection{
			SectionID:    input.SectionID,
			Number:       input.Number,
			Content:      input.Content,
			AdvisoryNote: input.AdvisoryNote,
			SortOrder:    input.SortOrder,
		}
		if subsection.SortOrder == 0 {
			subsection.SortOrder = 1
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(&models.Subsection{}).
				Where("section_id = ? AND number = ?", input.SectionID, input.Number).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return errDuplicateNumber
			}
			return tx.Create(&subsection).Error
		})
		if err != nil {
			if errors.Is(err, errDuplicateNumber) {
				c.JSON(http.StatusConflict, gin.H{"error": "A subsection with this number already exists in the section"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot create subsection"})
			return
		}

		cache.Invalidate(services.ReferenceTreeKey)
		c.JSON(http.StatusCreated, gin.H{"subsection": subsection})
	}
}

// GET /admin/subsections?section_id=...
func GetSubsections(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	sectionID, err := uuid.Parse(c.Query("section_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "section_id is required"})
		return
	}

	var subsections []models.Subsection
	if err := db.Where("section_id = ?", sectionID).
		Order("sort_order ASC").
		Find(&subsections).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot list subsections"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"subsections": subsections})
}

// GET /admin/subsections/:id
func GetSubsectionDetail(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	subsectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var subsection models.Subsection
	if err := db.
		Preload("Footnotes", func(db *gorm.DB) *gorm.DB {
			return db.Order("number ASC")
		}).
		Preload("FAQs", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Revisions", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		First(&subsection, "id = ?", subsectionID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subsection not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"subsection": subsection})
}

// PUT /admin/subsections/:id
func UpdateSubsection(cache *services.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		db := c.MustGet("db").(*gorm.DB)

		subsectionID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
			return
		}

		var subsection models.Subsection
		if err := db.First(&subsection, "id = ?", subsectionID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subsection not found"})
			return
		}

		var input UpdateSubsectionInput
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
		if input.AdvisoryNote != nil {
			updates["advisory_note"] = *input.AdvisoryNote
		}
		if input.SortOrder != nil {
			updates["sort_order"] = *input.SortOrder
		}

		// Same transaction shape as the create path so a concurrent rename
		// surfaces as a 409 instead of tripping the unique index.
		err = db.Transaction(func(tx *gorm.DB) error {
			if input.Number != nil && *input.Number != subsection.Number {
				var count int64
				if err := tx.Model(&models.Subsection{}).
					Where("section_id = ? AND number = ? AND id <> ?", subsection.SectionID, *input.Number, subsection.ID).
					Count(&count).Error; err != nil {
					return err
				}
				if count > 0 {
					return errDuplicateNumber
				}
			}
			if len(updates) == 0 {
				return nil
			}
			return tx.Model(&subsection).Updates(updates).Error
		})
		if err != nil {
			if errors.Is(err, errDuplicateNumber) {
				c.JSON(http.StatusConflict, gin.H{"error": "A subsection with this number already exists in the section"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot update subsection"})
			return
		}

		if err := db.First(&subsection, "id = ?", subsectionID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot reload subsection"})
			return
		}

		cache.Invalidate(services.ReferenceTreeKey)
		c.JSON(http.StatusOK, gin.H{"subsection": subsection})
	}
}

// DELETE /admin/subsections/:id
func DeleteSubsection(cache *services.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		db := c.MustGet("db").(*gorm.DB)

		subsectionID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
			return
		}

		var subsection models.Subsection
		if err := db.First(&subsection, "id = ?", subsectionID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subsection not found"})
			return
		}

		if err := db.Delete(&subsection).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot delete subsection"})
			return
		}

		cache.Invalidate(services.ReferenceTreeKey)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
