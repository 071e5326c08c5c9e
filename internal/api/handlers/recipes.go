package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/mixmini/mixmini/internal/models"
	"github.com/mixmini/mixmini/internal/repositories"
	"github.com/mixmini/mixmini/internal/web"
	"gorm.io/gorm"
)

// Blank rows offered in the builder beyond any existing components.
const blankComponentRows = 5

type componentRow struct {
	PaintID uint
	Ratio   int
}

type recipeFormView struct {
	User   *models.User
	Action string
	Name   string
	Note   string
	Rows   []componentRow
	Paints []models.Paint
	Error  string
}

type recipeListView struct {
	User    *models.User
	Recipes []models.Recipe
}

type componentView struct {
	Component models.RecipeComponent
	Owned     bool
	Percent   int
}

type recipeDetailView struct {
	User        *models.User
	Recipe      models.Recipe
	Components  []componentView
	TotalParts  int
	NeededCount int
}

// GET /recipes
func RecipeList(w http.ResponseWriter, r *http.Request) {
	user := mustUser(w, r)
	if user == nil {
		return
	}

	var recipes []models.Recipe
	if err := repositories.DB.
		Where("user_id = ?", user.ID).
		Order("name").
		Preload("Components.Paint").
		Find(&recipes).Error; err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	web.Render(w, http.StatusOK, "recipes/list", recipeListView{User: user, Recipes: recipes})
}

// GET /recipes/new
func RecipeNew(w http.ResponseWriter, r *http.Request) {
	user := mustUser(w, r)
	if user == nil {
		return
	}

	paints, err := allPaints()
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	web.Render(w, http.StatusOK, "recipes/new", recipeFormView{
		User:   user,
		Action: "/recipes",
		Rows:   make([]componentRow, blankComponentRows),
		Paints: paints,
	})
}

// POST /recipes
func RecipeCreate(w http.ResponseWriter, r *http.Request) {
	user := mustUser(w, r)
	if user == nil {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	form, errMsg := parseRecipeForm(r)
	if errMsg != "" {
		renderRecipeForm(w, user, "recipes/new", "/recipes", form, errMsg)
		return
	}

	recipe := models.Recipe{
		UserID: user.ID,
		Name:   form.name,
		Note:   form.note,
	}

	err := repositories.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&recipe).Error; err != nil {
			return err
		}
		for i := range form.components {
			form.components[i].RecipeID = recipe.ID
		}
		if len(form.components) > 0 {
			return tx.Create(&form.components).Error
		}
		return nil
	})
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/recipes/%d", recipe.ID), http.StatusSeeOther)
}

// GET /recipes/{recipeID}
func RecipeDetail(w http.ResponseWriter, r *http.Request) {
	user := mustUser(w, r)
	if user == nil {
		return
	}

	recipe, ok := findUserRecipe(w, r, user, true)
	if !ok {
		return
	}

	owned, err := ownedPaintMap(user)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	view := recipeDetailView{User: user, Recipe: *recipe}
	for _, c := range recipe.Components {
		view.TotalParts += c.Ratio
	}
	for _, c := range recipe.Components {
		_, has := owned[c.PaintID]
		cv := componentView{Component: c, Owned: has}
		if view.TotalParts > 0 {
			cv.Percent = c.Ratio * 100 / view.TotalParts
		}
		if !has {
			view.NeededCount++
		}
		view.Components = append(view.Components, cv)
	}

	web.Render(w, http.StatusOK, "recipes/detail", view)
}

// GET /recipes/{recipeID}/edit
func RecipeEdit(w http.ResponseWriter, r *http.Request) {
	user := mustUser(w, r)
	if user == nil {
		return
	}

	recipe, ok := findUserRecipe(w, r, user, true)
	if !ok {
		return
	}

	paints, err := allPaints()
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	rows := make([]componentRow, 0, len(recipe.Components)+blankComponentRows)
	for _, c := range recipe.Components {
		rows = append(rows, componentRow{PaintID: c.PaintID, Ratio: c.Ratio})
	}
	rows = append(rows, make([]componentRow, blankComponentRows)...)

	web.Render(w, http.StatusOK, "recipes/edit", recipeFormView{
		User:   user,
		Action: fmt.Sprintf("/recipes/%d", recipe.ID),
		Name:   recipe.Name,
		Note:   recipe.Note,
		Rows:   rows,
		Paints: paints,
	})
}

// POST /recipes/{recipeID}
//
// Edits replace the component list wholesale: delete then re-insert.
func RecipeUpdate(w http.ResponseWriter, r *http.Request) {
	user := mustUser(w, r)
	if user == nil {
		return
	}

	recipe, ok := findUserRecipe(w, r, user, false)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	action := fmt.Sprintf("/recipes/%d", recipe.ID)
	form, errMsg := parseRecipeForm(r)
	if errMsg != "" {
		renderRecipeForm(w, user, "recipes/edit", action, form, errMsg)
		return
	}

	err := repositories.DB.Transaction(func(tx *gorm.DB) error {
		recipe.Name = form.name
		recipe.Note = form.note
		if err := tx.Save(recipe).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).
			Delete(&models.RecipeComponent{}).Error; err != nil {
			return err
		}
		for i := range form.components {
			form.components[i].RecipeID = recipe.ID
		}
		if len(form.components) > 0 {
			return tx.Create(&form.components).Error
		}
		return nil
	})
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, action, http.StatusSeeOther)
}

// POST /recipes/{recipeID}/delete
func RecipeDelete(w http.ResponseWriter, r *http.Request) {
	user := mustUser(w, r)
	if user == nil {
		return
	}

	recipe, ok := findUserRecipe(w, r, user, false)
	if !ok {
		return
	}

	err := repositories.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipe.ID).
			Delete(&models.RecipeComponent{}).Error; err != nil {
			return err
		}
		return tx.Delete(recipe).Error
	})
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/recipes", http.StatusSeeOther)
}

// findUserRecipe loads the recipe from the path, scoped to the current
// user. A recipe owned by someone else looks exactly like a missing one.
func findUserRecipe(w http.ResponseWriter, r *http.Request, user *models.User, withComponents bool) (*models.Recipe, bool) {
	recipeID, err := pathID(r, "recipeID")
	if err != nil {
		http.Error(w, "Recipe not found", http.StatusNotFound)
		return nil, false
	}

	query := repositories.DB.Where("id = ? AND user_id = ?", recipeID, user.ID)
	if withComponents {
		query = query.Preload("Components.Paint")
	}

	var recipe models.Recipe
	if err := query.First(&recipe).Error; err != nil {
		http.Error(w, "Recipe not found", http.StatusNotFound)
		return nil, false
	}
	return &recipe, true
}

type recipeForm struct {
	name       string
	note       string
	components []models.RecipeComponent
	rows       []componentRow
}

// parseRecipeForm reads the builder form: a name, an optional note, and
// parallel paint_id / ratio lists where fully blank rows are skipped.
// Returns a user-facing error message when the input is rejected.
func parseRecipeForm(r *http.Request) (recipeForm, string) {
	form := recipeForm{
		name: strings.TrimSpace(r.PostFormValue("name")),
		note: strings.TrimSpace(r.PostFormValue("note")),
	}

	paintIDs := r.PostForm["paint_id"]
	ratios := r.PostForm["ratio"]

	n := len(paintIDs)
	if len(ratios) < n {
		n = len(ratios)
	}

	for i := 0; i < n; i++ {
		idStr := strings.TrimSpace(paintIDs[i])
		ratioStr := strings.TrimSpace(ratios[i])
		if idStr == "" && ratioStr == "" {
			continue
		}
		if idStr == "" || ratioStr == "" {
			return form, "Each component needs both a paint and a ratio"
		}

		paintID, err := strconv.ParseUint(idStr, 10, 32)
		if err != nil {
			return form, "Invalid paint id or ratio"
		}
		ratio, err := strconv.Atoi(ratioStr)
		if err != nil {
			return form, "Invalid paint id or ratio"
		}
		if ratio <= 0 {
			return form, "Ratio must be a positive number of parts"
		}

		form.components = append(form.components, models.RecipeComponent{
			PaintID: uint(paintID),
			Ratio:   ratio,
		})
		form.rows = append(form.rows, componentRow{PaintID: uint(paintID), Ratio: ratio})
	}

	if form.name == "" {
		return form, "Recipe name is required"
	}

	// All referenced paints must exist in the catalog.
	if len(form.components) > 0 {
		ids := make([]uint, 0, len(form.components))
		for _, c := range form.components {
			ids = append(ids, c.PaintID)
		}
		var count int64
		if err := repositories.DB.Model(&models.Paint{}).
			Where("id IN ?", ids).
			Count(&count).Error; err != nil || count != int64(len(uniqueIDs(ids))) {
			return form, "One of the selected paints does not exist"
		}
	}

	return form, ""
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func renderRecipeForm(w http.ResponseWriter, user *models.User, page, action string, form recipeForm, errMsg string) {
	paints, err := allPaints()
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	rows := append(form.rows, make([]componentRow, blankComponentRows)...)
	web.Render(w, http.StatusBadRequest, page, recipeFormView{
		User:   user,
		Action: action,
		Name:   form.name,
		Note:   form.note,
		Rows:   rows,
		Paints: paints,
		Error:  errMsg,
	})
}

func allPaints() ([]models.Paint, error) {
	var paints []models.Paint
	err := repositories.DB.Order(paintOrder).Find(&paints).Error
	return paints, err
}
