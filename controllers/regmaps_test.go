package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/arkaconsulting/regmaps-backend/models"
)

func TestCreateTreeAndReadBack(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "admin@example.com", models.RoleAdmin)

	_, chapterID, _, _ := env.seedTree(t, token)

	w := env.request(t, http.MethodGet, "/api/chapters/"+chapterID, "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	chapter := decodeBody(t, w)["chapter"].(map[string]any)
	sections := chapter["sections"].([]any)
	require.Len(t, sections, 1)

	subsections := sections[0].(map[string]any)["subsections"].([]any)
	require.Len(t, subsections, 1)
	require.Equal(t, "1", subsections[0].(map[string]any)["number"])
	require.Equal(t, "hello", subsections[0].(map[string]any)["content"])
}

func TestDuplicateSubsectionNumberConflict(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "admin@example.com", models.RoleAdmin)

	_, _, sectionID, _ := env.seedTree(t, token)

	w := env.request(t, http.MethodPost, "/api/admin/subsections", token, gin.H{
		"number": "1", "content": "duplicate", "section_id": sectionID,
	})
	require.Equal(t, http.StatusConflict, w.Code)
	require.Contains(t, decodeBody(t, w)["error"], "already exists")

	// A different number under the same section is fine
	w = env.request(t, http.MethodPost, "/api/admin/subsections", token, gin.H{
		"number": "2", "content": "second", "section_id": sectionID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestSubsectionRenameToExistingNumberConflict(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "admin@example.com", models.RoleAdmin)

	_, _, sectionID, _ := env.seedTree(t, token)

	w := env.request(t, http.MethodPost, "/api/admin/subsections", token, gin.H{
		"number": "2", "content": "second", "section_id": sectionID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	secondID := decodeBody(t, w)["subsection"].(map[string]any)["id"].(string)

	// Renaming onto a taken number must 409 and leave the row unchanged
	w = env.request(t, http.MethodPut, "/api/admin/subsections/"+secondID, token, gin.H{
		"number": "1",
	})
	require.Equal(t, http.StatusConflict, w.Code)
	require.Contains(t, decodeBody(t, w)["error"], "already exists")

	w = env.request(t, http.MethodGet, "/api/subsections/"+secondID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "2", decodeBody(t, w)["subsection"].(map[string]any)["number"])

	// Renaming to itself is not a conflict
	w = env.request(t, http.MethodPut, "/api/admin/subsections/"+secondID, token, gin.H{
		"number": "2",
	})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestChildrenOrderedBySortOrder(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "admin@example.com", models.RoleAdmin)

	standardID, chapterID, _, _ := env.seedTree(t, token)

	// Insert a second chapter that sorts before the first
	w := env.request(t, http.MethodPost, "/api/admin/chapters", token, gin.H{
		"code": "00", "title": "Scope", "standard_id": standardID, "sort_order": 0,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// sort_order 0 is normalized to 1, so bump the first chapter instead
	w = env.request(t, http.MethodPut, "/api/admin/chapters/"+chapterID, token, gin.H{
		"sort_order": 5,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, http.MethodGet, "/api/standards/"+standardID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	chapters := decodeBody(t, w)["standard"].(map[string]any)["chapters"].([]any)
	require.Len(t, chapters, 2)
	require.Equal(t, "Scope", chapters[0].(map[string]any)["title"])
	require.Equal(t, "Intro", chapters[1].(map[string]any)["title"])
}

func TestChapterUpdateAlwaysStampsLastUpdate(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "admin@example.com", models.RoleAdmin)

	_, chapterID, _, _ := env.seedTree(t, token)

	var before models.Chapter
	require.NoError(t, env.db.First(&before, "id = ?", chapterID).Error)

	time.Sleep(10 * time.Millisecond)

	// Empty payload: no fields change, the stamp still advances
	w := env.request(t, http.MethodPut, "/api/admin/chapters/"+chapterID, token, gin.H{})
	require.Equal(t, http.StatusOK, w.Code)

	var after models.Chapter
	require.NoError(t, env.db.First(&after, "id = ?", chapterID).Error)
	require.True(t, after.LastUpdate.After(before.LastUpdate))
	require.Equal(t, before.Title, after.Title)
}

func TestUpdateIsIdempotentModuloLastUpdate(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "admin@example.com", models.RoleAdmin)

	_, chapterID, _, _ := env.seedTree(t, token)

	payload := gin.H{"title": "Revised Intro", "status": "archived"}

	w := env.request(t, http.MethodPut, "/api/admin/chapters/"+chapterID, token, payload)
	require.Equal(t, http.StatusOK, w.Code)
	first := decodeBody(t, w)["chapter"].(map[string]any)

	w = env.request(t, http.MethodPut, "/api/admin/chapters/"+chapterID, token, payload)
	require.Equal(t, http.StatusOK, w.Code)
	second := decodeBody(t, w)["chapter"].(map[string]any)

	require.Equal(t, first["title"], second["title"])
	require.Equal(t, first["status"], second["status"])
	require.Equal(t, first["code"], second["code"])
	require.Equal(t, first["sort_order"], second["sort_order"])
}

func TestPartialUpdateLeavesOtherFieldsAlone(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "admin@example.com", models.RoleAdmin)

	_, _, _, subsectionID := env.seedTree(t, token)

	w := env.request(t, http.MethodPut, "/api/admin/subsections/"+subsectionID, token, gin.H{
		"content": "updated text",
	})
	require.Equal(t, http.StatusOK, w.Code)

	sub := decodeBody(t, w)["subsection"].(map[string]any)
	require.Equal(t, "updated text", sub["content"])
	require.Equal(t, "1", sub["number"])
}

func TestDeleteStandardNotFound(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "admin@example.com", models.RoleAdmin)

	w := env.request(t, http.MethodDelete, "/api/admin/standards/6d9a05cb-7c7a-4d4e-9a6c-3a2b1c0d9e8f", token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDuplicateStandardCodeConflict(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "admin@example.com", models.RoleAdmin)

	w := env.request(t, http.MethodPost, "/api/admin/standards", token, gin.H{
		"code": "CRE", "name": "Credit Risk",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.request(t, http.MethodPost, "/api/admin/standards", token, gin.H{
		"code": "cre", "name": "Credit Risk Again",
	})
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestFootnoteFAQRevisionLifecycle(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "admin@example.com", models.RoleAdmin)

	_, _, _, subsectionID := env.seedTree(t, token)

	w := env.request(t, http.MethodPost, "/api/admin/footnotes", token, gin.H{
		"subsection_id": subsectionID, "number": 1, "content": "see CRE20",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = env.request(t, http.MethodPost, "/api/admin/faqs", token, gin.H{
		"subsection_id": subsectionID,
		"question":      "Does this apply to branches?",
		"answer":        "Yes.",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = env.request(t, http.MethodPost, "/api/admin/revisions", token, gin.H{
		"subsection_id": subsectionID,
		"title":         "Version effective 2023-01-01",
		"content":       "previous wording",
		"revision_date": "2023-01-01T00:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = env.request(t, http.MethodGet, "/api/subsections/"+subsectionID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	sub := decodeBody(t, w)["subsection"].(map[string]any)
	require.Len(t, sub["footnotes"].([]any), 1)
	require.Len(t, sub["faqs"].([]any), 1)
	require.Len(t, sub["revisions"].([]any), 1)
}

func TestAdminGate(t *testing.T) {
	env := newTestEnv(t)
	_, memberToken := env.createUser(t, "member@example.com", models.RoleMember)

	// no token
	w := env.request(t, http.MethodPost, "/api/admin/standards", "", gin.H{
		"code": "XYZ", "name": "Test",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// wrong role
	w = env.request(t, http.MethodPost, "/api/admin/standards", memberToken, gin.H{
		"code": "XYZ", "name": "Test",
	})
	require.Equal(t, http.StatusForbidden, w.Code)
}
