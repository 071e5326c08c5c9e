package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/mixmini/mixmini/internal/api/middleware"
	"github.com/mixmini/mixmini/internal/models"
	"github.com/mixmini/mixmini/internal/repositories"
)

var errNoUser = errors.New("no authenticated user")

// currentUser resolves the user id stored by the auth middleware to a
// full user row.
func currentUser(r *http.Request) (*models.User, error) {
	raw, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok || raw == "" {
		return nil, errNoUser
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, errNoUser
	}

	var user models.User
	if err := repositories.DB.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// mustUser is for handlers behind RequireUser. A valid cookie whose user
// row no longer exists gets a fresh login instead of a 500.
func mustUser(w http.ResponseWriter, r *http.Request) *models.User {
	user, err := currentUser(r)
	if err != nil {
		clearSession(w)
		http.Redirect(w, r, "/login", http.StatusFound)
		return nil
	}
	return user
}

// optionalUser is for pages that render logged-out too.
func optionalUser(r *http.Request) *models.User {
	user, err := currentUser(r)
	if err != nil {
		return nil
	}
	return user
}

func pathID(r *http.Request, name string) (uint, error) {
	n, err := strconv.ParseUint(r.PathValue(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(n), nil
}
