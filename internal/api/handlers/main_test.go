package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/mixmini/mixmini/internal/api"
	"github.com/mixmini/mixmini/internal/api/middleware"
	"github.com/mixmini/mixmini/internal/models"
	"github.com/mixmini/mixmini/internal/repositories"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTest points the package-level DB at a fresh in-memory SQLite
// database and returns the real router. One connection keeps the
// shared-cache memory database alive for the whole test.
func setupTest(t *testing.T) http.Handler {
	t.Helper()

	name := strings.NewReplacer("/", "_", "#", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Paint{},
		&models.UserPaint{},
		&models.Recipe{},
		&models.RecipeComponent{},
	))

	repositories.DB = db
	return api.SetupRouter()
}

func postForm(router http.Handler, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func newHTMXRequest(method, path string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("HX-Request", "true")
	return req, httptest.NewRecorder()
}

func get(router http.Handler, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// registerUser registers through the real endpoint and returns the
// session cookie it set.
func registerUser(t *testing.T, router http.Handler, email, password string) *http.Cookie {
	t.Helper()

	rec := postForm(router, "/auth/register", url.Values{
		"email":    {email},
		"password": {password},
	}, nil)
	require.Equal(t, http.StatusSeeOther, rec.Code, rec.Body.String())

	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookie && c.Value != "" {
			return c
		}
	}
	t.Fatal("registration did not set a session cookie")
	return nil
}

func createPaint(t *testing.T, brand, rng, name, hex, paintType string) models.Paint {
	t.Helper()

	paint := models.Paint{Brand: brand, Range: rng, Name: name, Hex: hex, PaintType: paintType}
	require.NoError(t, repositories.DB.Create(&paint).Error)
	return paint
}
