package handlers

import "github.com/mixmini/mixmini/internal/models"

// PaintCard feeds the paint_card partial. Context selects between the
// catalog's toggle button and the inventory's status/remove buttons.
type PaintCard struct {
	Paint   models.Paint
	Owned   *models.UserPaint
	Context string
}

type RangeGroup struct {
	Range string
	Cards []PaintCard
}

type BrandGroup struct {
	Brand  string
	Ranges []RangeGroup
}

// groupPaints turns a brand/range/name ordered paint list into the
// nested brand → range groups the templates render.
func groupPaints(paints []models.Paint, owned map[uint]*models.UserPaint, context string) []BrandGroup {
	var groups []BrandGroup
	for _, paint := range paints {
		card := PaintCard{Paint: paint, Owned: owned[paint.ID], Context: context}

		if len(groups) == 0 || groups[len(groups)-1].Brand != paint.Brand {
			groups = append(groups, BrandGroup{Brand: paint.Brand})
		}
		brand := &groups[len(groups)-1]

		if len(brand.Ranges) == 0 || brand.Ranges[len(brand.Ranges)-1].Range != paint.Range {
			brand.Ranges = append(brand.Ranges, RangeGroup{Range: paint.Range})
		}
		rng := &brand.Ranges[len(brand.Ranges)-1]
		rng.Cards = append(rng.Cards, card)
	}
	return groups
}
