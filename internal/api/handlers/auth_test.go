package handlers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/mixmini/mixmini/internal/api/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterThenLogin(t *testing.T) {
	router := setupTest(t)

	registerUser(t, router, "painter@example.com", "trustworthy-brush")

	rec := postForm(router, "/auth/login", url.Values{
		"email":    {"painter@example.com"},
		"password": {"trustworthy-brush"},
	}, nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/catalog", rec.Header().Get("Location"))

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			cookie = c
		}
	}
	require.NotNil(t, cookie)

	page := get(router, "/catalog", cookie)
	assert.Equal(t, http.StatusOK, page.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	router := setupTest(t)

	registerUser(t, router, "painter@example.com", "trustworthy-brush")

	rec := postForm(router, "/auth/login", url.Values{
		"email":    {"painter@example.com"},
		"password": {"wrong-password"},
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid email or password")
}

func TestLoginUnknownEmail(t *testing.T) {
	router := setupTest(t)

	rec := postForm(router, "/auth/login", url.Values{
		"email":    {"nobody@example.com"},
		"password": {"whatever-goes"},
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDuplicateRegistration(t *testing.T) {
	router := setupTest(t)

	registerUser(t, router, "painter@example.com", "trustworthy-brush")

	rec := postForm(router, "/auth/register", url.Values{
		"email":    {"painter@example.com"},
		"password": {"another-password"},
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "already exists")
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	router := setupTest(t)

	rec := postForm(router, "/auth/register", url.Values{
		"email":    {"painter@example.com"},
		"password": {"short"},
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProtectedPagesRedirectToLogin(t *testing.T) {
	router := setupTest(t)

	for _, path := range []string{"/catalog", "/inventory", "/recipes", "/settings"} {
		rec := get(router, path, nil)
		assert.Equal(t, http.StatusFound, rec.Code, path)
		assert.Equal(t, "/login", rec.Header().Get("Location"), path)
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	router := setupTest(t)

	cookie := registerUser(t, router, "painter@example.com", "trustworthy-brush")
	cookie.Value = cookie.Value + "tampered"

	rec := get(router, "/catalog", cookie)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestHTMXRequestGetsHXRedirect(t *testing.T) {
	router := setupTest(t)

	req, rec := newHTMXRequest(http.MethodPost, "/catalog/toggle/1")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("HX-Redirect"))
}

func TestLoginPageRedirectsWhenAuthenticated(t *testing.T) {
	router := setupTest(t)

	cookie := registerUser(t, router, "painter@example.com", "trustworthy-brush")

	rec := get(router, "/login", cookie)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/catalog", rec.Header().Get("Location"))
}

func TestChangePassword(t *testing.T) {
	router := setupTest(t)

	cookie := registerUser(t, router, "painter@example.com", "trustworthy-brush")

	rec := postForm(router, "/settings", url.Values{
		"email":            {"painter@example.com"},
		"current_password": {"trustworthy-brush"},
		"new_password":     {"fresh-new-secret"},
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	old := postForm(router, "/auth/login", url.Values{
		"email":    {"painter@example.com"},
		"password": {"trustworthy-brush"},
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, old.Code)

	fresh := postForm(router, "/auth/login", url.Values{
		"email":    {"painter@example.com"},
		"password": {"fresh-new-secret"},
	}, nil)
	assert.Equal(t, http.StatusSeeOther, fresh.Code)
}
