package handlers

import (
	"net/http"

	"github.com/mixmini/mixmini/internal/models"
	"github.com/mixmini/mixmini/internal/repositories"
	"github.com/mixmini/mixmini/internal/web"
	"gorm.io/gorm"
)

const paintOrder = `brand, "range", name`

type catalogView struct {
	User       *models.User
	Groups     []BrandGroup
	Search     string
	OwnedCount int
	TotalCount int
}

// GET /catalog
func Catalog(w http.ResponseWriter, r *http.Request) {
	user := mustUser(w, r)
	if user == nil {
		return
	}

	q := r.URL.Query().Get("q")

	query := repositories.DB.Order(paintOrder)
	if q != "" {
		query = query.Where("name LIKE ?", "%"+q+"%")
	}

	var paints []models.Paint
	if err := query.Find(&paints).Error; err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	owned, err := ownedPaintMap(user)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	web.Render(w, http.StatusOK, "catalog", catalogView{
		User:       user,
		Groups:     groupPaints(paints, owned, "catalog"),
		Search:     q,
		OwnedCount: len(owned),
		TotalCount: len(paints),
	})
}

// POST /catalog/toggle/{paintID}
//
// Marks the paint owned if it isn't, unmarks it if it is, and returns
// the re-rendered card so htmx can swap it in place.
func CatalogToggle(w http.ResponseWriter, r *http.Request) {
	user := mustUser(w, r)
	if user == nil {
		return
	}

	paintID, err := pathID(r, "paintID")
	if err != nil {
		http.Error(w, "Invalid paint id", http.StatusBadRequest)
		return
	}

	var paint models.Paint
	if err := repositories.DB.First(&paint, paintID).Error; err != nil {
		http.Error(w, "Paint not found", http.StatusNotFound)
		return
	}

	var card PaintCard
	var existing models.UserPaint
	err = repositories.DB.
		Where("user_id = ? AND paint_id = ?", user.ID, paintID).
		First(&existing).Error

	switch err {
	case nil:
		if err := repositories.DB.Delete(&existing).Error; err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		card = PaintCard{Paint: paint, Owned: nil, Context: "catalog"}

	case gorm.ErrRecordNotFound:
		up := models.UserPaint{
			UserID:  user.ID,
			PaintID: paintID,
			Status:  models.StatusFull,
		}
		if err := repositories.DB.Create(&up).Error; err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		card = PaintCard{Paint: paint, Owned: &up, Context: "catalog"}

	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	web.RenderPartial(w, "paint_card", card)
}

// GET /recipes/paint-search
func PaintSearch(w http.ResponseWriter, r *http.Request) {
	if mustUser(w, r) == nil {
		return
	}

	q := r.URL.Query().Get("q")

	query := repositories.DB.Order(paintOrder).Limit(20)
	if q != "" {
		query = query.Where("name LIKE ?", "%"+q+"%")
	}

	var paints []models.Paint
	if err := query.Find(&paints).Error; err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	web.RenderPartial(w, "paint_search_results", struct{ Paints []models.Paint }{paints})
}

func ownedPaintMap(user *models.User) (map[uint]*models.UserPaint, error) {
	var ups []models.UserPaint
	if err := repositories.DB.Where("user_id = ?", user.ID).Find(&ups).Error; err != nil {
		return nil, err
	}

	owned := make(map[uint]*models.UserPaint, len(ups))
	for i := range ups {
		owned[ups[i].PaintID] = &ups[i]
	}
	return owned, nil
}
