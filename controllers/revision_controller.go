package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arkaconsulting/regmaps-backend/models"
)

type CreateRevisionInput struct {
	SubsectionID uuid.UUID `json:"subsection_id" binding:"required"`
	Title        string    `json:"title" binding:"required"`
	Content      string    `json:"content"`
	RevisionDate time.Time `json:"revision_date" binding:"required"`
	SortOrder    int       `json:"sort_order"`
}

// POST /admin/revisions
// Revisions are append-only history; there is no update endpoint.
func CreateRevision(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input CreateRevisionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "subsection_id, title and revision_date are required"})
		return
	}

	revision := models.Revision{
		SubsectionID: input.SubsectionID,
		Title:        input.Title,
		Content:      input.Content,
		RevisionDate: input.RevisionDate,
		SortOrder:    input.SortOrder,
	}
	if revision.SortOrder == 0 {
		revision.SortOrder = 1
	}

	if err := db.Create(&revision).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot create revision"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"revision": revision})
}

// GET /admin/revisions?subsection_id=...
func GetRevisions(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	subsectionID, err := uuid.Parse(c.Query("subsection_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "subsection_id is required"})
		return
	}

	var revisions []models.Revision
	if err := db.Where("subsection_id = ?", subsectionID).
		Order("sort_order ASC").
		Find(&revisions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot list revisions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"revisions": revisions})
}

// DELETE /admin/revisions/:id
func DeleteRevision(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	revisionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var revision models.Revision
	if err := db.First(&revision, "id = ?", revisionID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Revision not found"})
		return
	}

	if err := db.Delete(&revision).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot delete revision"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
