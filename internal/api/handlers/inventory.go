package handlers

import (
	"net/http"

	"github.com/mixmini/mixmini/internal/models"
	"github.com/mixmini/mixmini/internal/repositories"
	"github.com/mixmini/mixmini/internal/web"
)

type inventoryView struct {
	User         *models.User
	Groups       []BrandGroup
	StatusFilter string
	AllCount     int64
	FullCount    int64
	LowCount     int64
	EmptyCount   int64
}

// GET /inventory
func Inventory(w http.ResponseWriter, r *http.Request) {
	user := mustUser(w, r)
	if user == nil {
		return
	}

	status := r.URL.Query().Get("status")
	switch status {
	case "full", "low", "empty":
	default:
		status = ""
	}

	query := repositories.DB.
		Joins("JOIN paints ON paints.id = user_paints.paint_id").
		Where("user_paints.user_id = ?", user.ID).
		Order(`paints.brand, paints."range", paints.name`).
		Preload("Paint")
	if status != "" {
		query = query.Where("user_paints.status = ?", status)
	}

	var ups []models.UserPaint
	if err := query.Find(&ups).Error; err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	paints := make([]models.Paint, 0, len(ups))
	owned := make(map[uint]*models.UserPaint, len(ups))
	for i := range ups {
		paints = append(paints, ups[i].Paint)
		owned[ups[i].PaintID] = &ups[i]
	}

	view := inventoryView{
		User:         user,
		Groups:       groupPaints(paints, owned, "inventory"),
		StatusFilter: status,
	}

	// Counts for the filter tabs
	counts := map[models.PaintStatus]*int64{
		models.StatusFull:  &view.FullCount,
		models.StatusLow:   &view.LowCount,
		models.StatusEmpty: &view.EmptyCount,
	}
	if err := repositories.DB.Model(&models.UserPaint{}).
		Where("user_id = ?", user.ID).
		Count(&view.AllCount).Error; err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	for st, dst := range counts {
		if err := repositories.DB.Model(&models.UserPaint{}).
			Where("user_id = ? AND status = ?", user.ID, st).
			Count(dst).Error; err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
	}

	web.Render(w, http.StatusOK, "inventory", view)
}

// POST /inventory/status/{paintID}
//
// Cycles the pot through full → low → empty → full and returns the
// re-rendered card.
func CycleStatus(w http.ResponseWriter, r *http.Request) {
	user := mustUser(w, r)
	if user == nil {
		return
	}

	paintID, err := pathID(r, "paintID")
	if err != nil {
		http.Error(w, "Invalid paint id", http.StatusBadRequest)
		return
	}

	var up models.UserPaint
	if err := repositories.DB.Preload("Paint").
		Where("user_id = ? AND paint_id = ?", user.ID, paintID).
		First(&up).Error; err != nil {
		http.Error(w, "Paint not in inventory", http.StatusNotFound)
		return
	}

	up.Status = up.Status.Next()
	if err := repositories.DB.Save(&up).Error; err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	web.RenderPartial(w, "paint_card", PaintCard{
		Paint:   up.Paint,
		Owned:   &up,
		Context: "inventory",
	})
}

// POST /inventory/remove/{paintID}
//
// Removing a paint that is not in the inventory is a no-op; either way
// the empty body makes htmx drop the card.
func InventoryRemove(w http.ResponseWriter, r *http.Request) {
	user := mustUser(w, r)
	if user == nil {
		return
	}

	paintID, err := pathID(r, "paintID")
	if err != nil {
		http.Error(w, "Invalid paint id", http.StatusBadRequest)
		return
	}

	if err := repositories.DB.
		Where("user_id = ? AND paint_id = ?", user.ID, paintID).
		Delete(&models.UserPaint{}).Error; err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
}
