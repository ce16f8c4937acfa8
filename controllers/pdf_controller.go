package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arkaconsulting/regmaps-backend/models"
	"github.com/arkaconsulting/regmaps-backend/services"
	"github.com/arkaconsulting/regmaps-backend/utils"
)

const pdfUploadTimeout = 60 * time.Second

// POST /admin/chapters/:id/pdfs
// Two-phase write: a pending metadata record goes in first, then the bytes.
// If the storage upload fails the pending record is removed again, so a
// crash can only leave a pending row behind, never a dangling committed one.
func UploadChapterPDF(c *gin.Context) {
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

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A PDF file is required"})
		return
	}

	name := c.PostForm("name")
	if name == "" {
		name = fileHeader.Filename
	}

	record := models.ChapterPDF{
		ChapterID: chapter.ID,
		Name:      name,
		Status:    models.PDFPending,
	}
	if err := db.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot create PDF record"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), pdfUploadTimeout)
	defer cancel()

	type uploadResult struct {
		url    string
		object string
		err    error
	}
	done := make(chan uploadResult, 1)
	go func() {
		url, object, err := utils.UploadPDFToSupabase(fileHeader, record.ID.String())
		done <- uploadResult{url: url, object: object, err: err}
	}()

	var res uploadResult
	select {
	case res = <-done:
	case <-ctx.Done():
		res = uploadResult{err: ctx.Err()}
	}
	if res.err != nil {
		// compensation: take the pending record back out
		if delErr := db.Delete(&record).Error; delErr != nil {
			log.Println("cannot remove pending PDF record:", delErr)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot upload PDF"})
		return
	}

	// Text extraction is best-effort; the attachment is useful without it.
	extracted := ""
	if file, err := fileHeader.Open(); err == nil {
		if text, err := services.ExtractTextFromPDF(file); err == nil {
			extracted = text
		}
		file.Close()
	}

	updates := map[string]interface{}{
		"url":            res.url,
		"object_name":    res.object,
		"status":         models.PDFCommitted,
		"extracted_text": extracted,
	}
	if err := db.Model(&record).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot commit PDF record"})
		return
	}

	if err := db.First(&record, "id = ?", record.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot reload PDF record"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"pdf": record})
}

// GET /admin/chapters/:id/pdfs
func GetChapterPDFs(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	chapterID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var pdfs []models.ChapterPDF
	if err := db.Where("chapter_id = ?", chapterID).
		Order("created_at ASC").
		Find(&pdfs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot list PDFs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"pdfs": pdfs})
}

// DELETE /admin/pdfs/:id
// Record first, then the object. Storage failure is logged and swallowed:
// an orphaned file is preferable to a metadata row pointing nowhere.
func DeleteChapterPDF(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	pdfID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var record models.ChapterPDF
	if err := db.First(&record, "id = ?", pdfID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "PDF not found"})
		return
	}

	if err := db.Delete(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot delete PDF record"})
		return
	}

	if record.ObjectName != "" {
		if err := utils.DeleteObjectFromSupabase(record.ObjectName); err != nil {
			log.Println("cannot delete PDF object from storage:", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
