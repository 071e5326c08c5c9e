package handlers

import (
	"net/http"

	"github.com/mixmini/mixmini/internal/models"
	"github.com/mixmini/mixmini/internal/utils"
	"github.com/mixmini/mixmini/internal/web"
)

// GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "ok",
	})
}

type indexView struct {
	User *models.User
}

// GET /
func Index(w http.ResponseWriter, r *http.Request) {
	web.Render(w, http.StatusOK, "index", indexView{User: optionalUser(r)})
}

// GET /login
func LoginPage(w http.ResponseWriter, r *http.Request) {
	if optionalUser(r) != nil {
		http.Redirect(w, r, "/catalog", http.StatusFound)
		return
	}
	web.Render(w, http.StatusOK, "login", authView{})
}

// GET /register
func RegisterPage(w http.ResponseWriter, r *http.Request) {
	if optionalUser(r) != nil {
		http.Redirect(w, r, "/catalog", http.StatusFound)
		return
	}
	web.Render(w, http.StatusOK, "register", authView{})
}
