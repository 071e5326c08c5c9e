package repositories

import (
	"path/filepath"
	"testing"

	"github.com/mixmini/mixmini/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openMigrated builds a file-backed database through the embedded SQL
// migrations, the same path the deployed binary takes.
func openMigrated(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "mixmini.db")
	require.NoError(t, MigrateUp(path))

	db, err := gorm.Open(sqlite.Open(DSN(path)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func TestMigrateUpIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mixmini.db")
	require.NoError(t, MigrateUp(path))
	require.NoError(t, MigrateUp(path))
}

func TestMigrateDownRollsBackOneStep(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mixmini.db")
	require.NoError(t, MigrateUp(path))
	require.NoError(t, MigrateDown(path))
	// Only the latest step was undone; re-applying brings it back.
	require.NoError(t, MigrateUp(path))
}

// The SQL migrations and the GORM models describe the same schema; this
// drives every model through a migrated database to catch drift.
func TestMigratedSchemaDrivesModels(t *testing.T) {
	db := openMigrated(t)

	user := models.User{Email: "painter@example.com", PasswordHash: "x", IsActive: true}
	require.NoError(t, db.Create(&user).Error)
	require.NotEqual(t, "00000000-0000-0000-0000-000000000000", user.ID.String())

	paint := models.Paint{Brand: "Citadel", Range: "Base", Name: "Abaddon Black", Hex: "#1D1D20", PaintType: "base"}
	require.NoError(t, db.Create(&paint).Error)

	dup := models.Paint{Brand: "Citadel", Range: "Base", Name: "Abaddon Black", Hex: "#000000", PaintType: "base"}
	assert.Error(t, db.Create(&dup).Error, "brand/range/name must be unique")

	up := models.UserPaint{UserID: user.ID, PaintID: paint.ID, Status: models.StatusFull}
	require.NoError(t, db.Create(&up).Error)

	again := models.UserPaint{UserID: user.ID, PaintID: paint.ID, Status: models.StatusLow}
	assert.Error(t, db.Create(&again).Error, "a paint can be owned once per user")

	recipe := models.Recipe{UserID: user.ID, Name: "Thinned Black"}
	require.NoError(t, db.Create(&recipe).Error)
	comp := models.RecipeComponent{RecipeID: recipe.ID, PaintID: paint.ID, Ratio: 2}
	require.NoError(t, db.Create(&comp).Error)

	// The cascade lives in the schema, not in GORM: a raw delete must
	// still take the components with it.
	require.NoError(t, db.Exec("DELETE FROM recipes WHERE id = ?", recipe.ID).Error)
	var components int64
	require.NoError(t, db.Model(&models.RecipeComponent{}).Count(&components).Error)
	assert.Equal(t, int64(0), components)

	var got models.UserPaint
	require.NoError(t, db.Preload("Paint").First(&got).Error)
	assert.Equal(t, models.StatusFull, got.Status, "status column default from the second migration")
	assert.Equal(t, "Abaddon Black", got.Paint.Name)
}
