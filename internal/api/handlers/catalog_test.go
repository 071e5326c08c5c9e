package handlers_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/mixmini/mixmini/internal/models"
	"github.com/mixmini/mixmini/internal/repositories"
	"github.com/mixmini/mixmini/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleOwnedRoundTrip(t *testing.T) {
	router := setupTest(t)
	cookie := registerUser(t, router, "painter@example.com", "trustworthy-brush")
	paint := createPaint(t, "Citadel", "Base", "Mephiston Red", "#9A1115", "base")

	togglePath := fmt.Sprintf("/catalog/toggle/%d", paint.ID)

	// Mark owned.
	rec := postForm(router, togglePath, nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Owned")

	var count int64
	require.NoError(t, repositories.DB.Model(&models.UserPaint{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// Unmark: the owned set is back to its prior state.
	rec = postForm(router, togglePath, nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Mark owned")

	require.NoError(t, repositories.DB.Model(&models.UserPaint{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestToggleUnknownPaint(t *testing.T) {
	router := setupTest(t)
	cookie := registerUser(t, router, "painter@example.com", "trustworthy-brush")

	rec := postForm(router, "/catalog/toggle/9999", nil, cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCatalogSearchFiltersByName(t *testing.T) {
	router := setupTest(t)
	cookie := registerUser(t, router, "painter@example.com", "trustworthy-brush")
	createPaint(t, "Citadel", "Base", "Macragge Blue", "#0F3D7C", "base")
	createPaint(t, "Citadel", "Layer", "Moot Green", "#50B843", "layer")

	rec := get(router, "/catalog?q=macragge", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Macragge Blue")
	assert.NotContains(t, rec.Body.String(), "Moot Green")
}

func TestPaintSearchReturnsFirstTwenty(t *testing.T) {
	router := setupTest(t)
	cookie := registerUser(t, router, "painter@example.com", "trustworthy-brush")

	for i := 1; i <= 25; i++ {
		createPaint(t, "Vallejo", "Model Color", fmt.Sprintf("Neutral Grey %02d", i), "#808080", "acrylic")
	}
	createPaint(t, "Citadel", "Base", "Mephiston Red", "#9A1115", "base")

	rec := get(router, "/recipes/paint-search?q=Neutral+Grey", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	assert.Equal(t, 20, strings.Count(body, `class="swatch small"`))
	assert.NotContains(t, body, "Mephiston Red")

	// Catalog order is brand/range/name, so the first twenty by name win.
	assert.Contains(t, body, "Neutral Grey 01")
	assert.Contains(t, body, "Neutral Grey 20")
	assert.NotContains(t, body, "Neutral Grey 21")
}

func TestSeededAbaddonBlackInventory(t *testing.T) {
	router := setupTest(t)
	cookie := registerUser(t, router, "painter@example.com", "trustworthy-brush")

	_, err := seed.Load(repositories.DB)
	require.NoError(t, err)

	var paint models.Paint
	require.NoError(t, repositories.DB.
		Where(`brand = ? AND "range" = ? AND name = ?`, "Citadel", "Base", "Abaddon Black").
		First(&paint).Error)
	assert.Equal(t, "#1D1D20", paint.Hex)

	rec := postForm(router, fmt.Sprintf("/catalog/toggle/%d", paint.ID), nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	// The inventory holds exactly that one paint.
	var ups []models.UserPaint
	require.NoError(t, repositories.DB.Find(&ups).Error)
	require.Len(t, ups, 1)
	assert.Equal(t, paint.ID, ups[0].PaintID)

	page := get(router, "/inventory", cookie)
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "Abaddon Black")
}

func TestCycleStatusAndRemove(t *testing.T) {
	router := setupTest(t)
	cookie := registerUser(t, router, "painter@example.com", "trustworthy-brush")
	paint := createPaint(t, "Citadel", "Base", "Zandri Dust", "#9E915C", "base")

	rec := postForm(router, fmt.Sprintf("/catalog/toggle/%d", paint.ID), nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	statusPath := fmt.Sprintf("/inventory/status/%d", paint.ID)
	for _, want := range []models.PaintStatus{models.StatusLow, models.StatusEmpty, models.StatusFull} {
		rec = postForm(router, statusPath, nil, cookie)
		require.Equal(t, http.StatusOK, rec.Code)

		var up models.UserPaint
		require.NoError(t, repositories.DB.
			Where("paint_id = ?", paint.ID).First(&up).Error)
		assert.Equal(t, want, up.Status)
	}

	removePath := fmt.Sprintf("/inventory/remove/%d", paint.ID)
	rec = postForm(router, removePath, nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var count int64
	require.NoError(t, repositories.DB.Model(&models.UserPaint{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	// Removing again is a no-op, not an error.
	rec = postForm(router, removePath, nil, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCycleStatusNotInInventory(t *testing.T) {
	router := setupTest(t)
	cookie := registerUser(t, router, "painter@example.com", "trustworthy-brush")
	paint := createPaint(t, "Citadel", "Base", "Zandri Dust", "#9E915C", "base")

	rec := postForm(router, fmt.Sprintf("/inventory/status/%d", paint.ID), nil, cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInventoryStatusFilter(t *testing.T) {
	router := setupTest(t)
	cookie := registerUser(t, router, "painter@example.com", "trustworthy-brush")
	full := createPaint(t, "Citadel", "Base", "Khorne Red", "#6A0002", "base")
	low := createPaint(t, "Citadel", "Base", "Kantor Blue", "#02134E", "base")

	postForm(router, fmt.Sprintf("/catalog/toggle/%d", full.ID), nil, cookie)
	postForm(router, fmt.Sprintf("/catalog/toggle/%d", low.ID), nil, cookie)
	postForm(router, fmt.Sprintf("/inventory/status/%d", low.ID), nil, cookie)

	rec := get(router, "/inventory?status=low", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Kantor Blue")
	assert.NotContains(t, rec.Body.String(), "Khorne Red")
}
