package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/arkaconsulting/regmaps-backend/config"
	"github.com/arkaconsulting/regmaps-backend/models"
	"github.com/arkaconsulting/regmaps-backend/routes"
	"github.com/arkaconsulting/regmaps-backend/services"
	"github.com/arkaconsulting/regmaps-backend/utils"
)

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	cache  *services.Cache
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	cache := services.NewCache()
	t.Cleanup(cache.Stop)

	r := gin.New()
	r = routes.SetupRouter(r, db, cache)

	return &testEnv{router: r, db: db, cache: cache}
}

func (e *testEnv) createUser(t *testing.T, email string, role models.UserRole) (models.User, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		FullName: "Test User",
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}
	require.NoError(t, e.db.Create(&user).Error)

	token, err := utils.GenerateToken(user.ID.String(), string(role))
	require.NoError(t, err)
	return user, token
}

func (e *testEnv) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func jsonUnmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// seedTree creates Standard XYZ -> Chapter 01 -> Section Sec1 -> Subsection 1
// via the admin API (scenario used by several tests).
func (e *testEnv) seedTree(t *testing.T, token string) (standardID, chapterID, sectionID, subsectionID string) {
	t.Helper()

	w := e.request(t, http.MethodPost, "/api/admin/standards", token, gin.H{
		"code": "XYZ", "name": "Test",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	standardID = decodeBody(t, w)["standard"].(map[string]any)["id"].(string)

	w = e.request(t, http.MethodPost, "/api/admin/chapters", token, gin.H{
		"code": "01", "title": "Intro", "standard_id": standardID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	chapterID = decodeBody(t, w)["chapter"].(map[string]any)["id"].(string)

	w = e.request(t, http.MethodPost, "/api/admin/sections", token, gin.H{
		"title": "Sec1", "chapter_id": chapterID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	sectionID = decodeBody(t, w)["section"].(map[string]any)["id"].(string)

	w = e.request(t, http.MethodPost, "/api/admin/subsections", token, gin.H{
		"number": "1", "content": "hello", "section_id": sectionID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	subsectionID = decodeBody(t, w)["subsection"].(map[string]any)["id"].(string)

	return standardID, chapterID, sectionID, subsectionID
}
