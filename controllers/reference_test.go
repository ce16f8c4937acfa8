package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/arkaconsulting/regmaps-backend/models"
)

func TestReferenceTreeCacheHitAndMiss(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "admin@example.com", models.RoleAdmin)
	env.seedTree(t, token)

	first := env.request(t, http.MethodGet, "/api/references", "", nil)
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, "MISS", first.Header().Get("X-Cache"))

	second := env.request(t, http.MethodGet, "/api/references", "", nil)
	require.Equal(t, http.StatusOK, second.Code)
	require.Equal(t, "HIT", second.Header().Get("X-Cache"))

	// Within the TTL the payload is byte-identical
	require.Equal(t, first.Body.Bytes(), second.Body.Bytes())
}

func TestReferenceTreeInvalidatedByAdminWrite(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "admin@example.com", models.RoleAdmin)
	standardID, _, _, _ := env.seedTree(t, token)

	w := env.request(t, http.MethodGet, "/api/references", "", nil)
	require.Equal(t, "MISS", w.Header().Get("X-Cache"))
	w = env.request(t, http.MethodGet, "/api/references", "", nil)
	require.Equal(t, "HIT", w.Header().Get("X-Cache"))

	// An admin write drops the memoized tree
	w = env.request(t, http.MethodPut, "/api/admin/standards/"+standardID, token, gin.H{
		"name": "Renamed",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, http.MethodGet, "/api/references", "", nil)
	require.Equal(t, "MISS", w.Header().Get("X-Cache"))

	body := decodeBody(t, w)
	standards := body["standards"].([]any)
	require.Len(t, standards, 1)
	require.Equal(t, "Renamed", standards[0].(map[string]any)["name"])
}

func TestReferenceTreeShape(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "admin@example.com", models.RoleAdmin)
	env.seedTree(t, token)

	w := env.request(t, http.MethodGet, "/api/references", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	standards := decodeBody(t, w)["standards"].([]any)
	require.Len(t, standards, 1)

	chapters := standards[0].(map[string]any)["chapters"].([]any)
	require.Len(t, chapters, 1)

	sections := chapters[0].(map[string]any)["sections"].([]any)
	require.Len(t, sections, 1)

	subsections := sections[0].(map[string]any)["subsections"].([]any)
	require.Len(t, subsections, 1)
	require.Equal(t, "1", subsections[0].(map[string]any)["number"])
}
