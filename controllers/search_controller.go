package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arkaconsulting/regmaps-backend/models"
)

// Per-type result caps. Four independent bounded queries, no ranking:
// fine for a hand-curated corpus.
const (
	searchLimitStandards   = 5
	searchLimitChapters    = 10
	searchLimitSections    = 10
	searchLimitSubsections = 20
)

type SearchResult struct {
	Type  string `json:"type"` // standard | chapter | section | subsection
	ID    string `json:"id"`
	Code  string `json:"code"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

type SearchResponse struct {
	Total   int            `json:"total"`
	Results []SearchResult `json:"results"`
}

func standardURL(s *models.Standard) string {
	return "/regmaps/" + s.Slug
}

func chapterURL(ch *models.Chapter) string {
	return fmt.Sprintf("%s/%s", standardURL(ch.Standard), ch.Code)
}

// GET /search?q=...
func SearchHandler(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	query := strings.TrimSpace(c.Query("q"))
	if len(query) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query must be at least 2 characters"})
		return
	}
	pattern := "%" + strings.ToLower(query) + "%"

	var standards []models.Standard
	if err := db.
		Where("LOWER(code) LIKE ? OR LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern, pattern).
		Limit(searchLimitStandards).
		Find(&standards).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	var chapters []models.Chapter
	if err := db.
		Preload("Standard").
		Where("LOWER(code) LIKE ? OR LOWER(title) LIKE ?", pattern, pattern).
		Limit(searchLimitChapters).
		Find(&chapters).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	var sections []models.Section
	if err := db.
		Preload("Chapter.Standard").
		Where("LOWER(title) LIKE ?", pattern).
		Limit(searchLimitSections).
		Find(&sections).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	var subsections []models.Subsection
	if err := db.
		Preload("Section.Chapter.Standard").
		Where("LOWER(number) LIKE ? OR LOWER(content) LIKE ?", pattern, pattern).
		Limit(searchLimitSubsections).
		Find(&subsections).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	results := make([]SearchResult, 0,
		len(standards)+len(chapters)+len(sections)+len(subsections))

	for i := range standards {
		s := &standards[i]
		results = append(results, SearchResult{
			Type:  "standard",
			ID:    s.ID.String(),
			Code:  s.Code,
			Title: s.Name,
			URL:   standardURL(s),
		})
	}
	for i := range chapters {
		ch := &chapters[i]
		if ch.Standard == nil {
			continue // orphaned row, skip rather than fabricate a URL
		}
		results = append(results, SearchResult{
			Type:  "chapter",
			ID:    ch.ID.String(),
			Code:  ch.Standard.Code + ch.Code,
			Title: ch.Title,
			URL:   chapterURL(ch),
		})
	}
	for i := range sections {
		sec := &sections[i]
		if sec.Chapter == nil || sec.Chapter.Standard == nil {
			continue
		}
		results = append(results, SearchResult{
			Type:  "section",
			ID:    sec.ID.String(),
			Code:  sec.Chapter.Standard.Code + sec.Chapter.Code,
			Title: sec.Title,
			URL:   fmt.Sprintf("%s#sec-%s", chapterURL(sec.Chapter), sec.ID),
		})
	}
	for i := range subsections {
		sub := &subsections[i]
		if sub.Section == nil || sub.Section.Chapter == nil || sub.Section.Chapter.Standard == nil {
			continue
		}
		ch := sub.Section.Chapter
		results = append(results, SearchResult{
			Type:  "subsection",
			ID:    sub.ID.String(),
			Code:  fmt.Sprintf("%s%s.%s", ch.Standard.Code, ch.Code, sub.Number),
			Title: sub.Number,
			URL:   fmt.Sprintf("%s#sub-%s", chapterURL(ch), sub.ID),
		})
	}

	c.JSON(http.StatusOK, SearchResponse{
		Total:   len(results),
		Results: results,
	})
}
