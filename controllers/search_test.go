package controllers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arkaconsulting/regmaps-backend/models"
)

func TestSearchRejectsShortQuery(t *testing.T) {
	env := newTestEnv(t)

	for _, q := range []string{"", "x", " x "} {
		w := env.request(t, http.MethodGet, "/api/search?q="+strings.TrimSpace(q), "", nil)
		require.Equal(t, http.StatusBadRequest, w.Code, "query %q", q)
	}
}

func TestSearchNoMatches(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "admin@example.com", models.RoleAdmin)
	env.seedTree(t, token)

	w := env.request(t, http.MethodGet, "/api/search?q=zzzznothing", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	require.Equal(t, float64(0), body["total"])
	require.Empty(t, body["results"])
}

func TestSearchFindsStandardWithURL(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "admin@example.com", models.RoleAdmin)
	env.seedTree(t, token)

	w := env.request(t, http.MethodGet, "/api/search?q=XYZ", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	results := body["results"].([]any)
	require.NotEmpty(t, results)

	var found bool
	for _, r := range results {
		res := r.(map[string]any)
		if res["type"] == "standard" {
			found = true
			require.True(t, strings.HasSuffix(res["url"].(string), "/regmaps/xyz"), res["url"])
		}
	}
	require.True(t, found, "expected a standard result")
}

func TestSearchIsCaseInsensitiveAndSpansBuckets(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "admin@example.com", models.RoleAdmin)
	_, _, _, _ = env.seedTree(t, token)

	// "Intro" matches the chapter title; "hello" the subsection content.
	w := env.request(t, http.MethodGet, "/api/search?q=INTRO", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	require.Equal(t, float64(1), body["total"])
	result := body["results"].([]any)[0].(map[string]any)
	require.Equal(t, "chapter", result["type"])
	require.Equal(t, "XYZ01", result["code"])
	require.Equal(t, "/regmaps/xyz/01", result["url"])

	w = env.request(t, http.MethodGet, "/api/search?q=hello", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	require.Equal(t, float64(1), body["total"])
	result = body["results"].([]any)[0].(map[string]any)
	require.Equal(t, "subsection", result["type"])
	require.Equal(t, "XYZ01.1", result["code"])
	require.Contains(t, result["url"], "/regmaps/xyz/01#sub-")
}

func TestSearchTotalEqualsBucketSum(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "admin@example.com", models.RoleAdmin)
	env.seedTree(t, token)

	// "1" appears in the chapter code (01), the section title (Sec1)
	// and the subsection number — but the query needs 2+ chars.
	w := env.request(t, http.MethodGet, "/api/search?q=Sec1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	results := body["results"].([]any)
	require.Equal(t, float64(len(results)), body["total"])

	counts := map[string]int{}
	for _, r := range results {
		counts[r.(map[string]any)["type"].(string)]++
	}
	require.Equal(t, 1, counts["section"])
}
