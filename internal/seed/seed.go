// Package seed loads the static paint catalog. The catalog is reference
// data: seeding is idempotent and never touches user-owned rows.
package seed

import (
	"fmt"

	"github.com/mixmini/mixmini/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Load upserts the catalog keyed on (brand, range, name) and returns the
// resulting catalog size. Existing rows are left untouched, so re-running
// the seed after a catalog update only adds the new paints.
func Load(db *gorm.DB) (int64, error) {
	paints := Catalog()

	if err := db.Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(paints, 100).Error; err != nil {
		return 0, fmt.Errorf("seed catalog: %w", err)
	}

	var n int64
	if err := db.Model(&models.Paint{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
