package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mixmini/mixmini/internal/api/middleware"
	"github.com/mixmini/mixmini/internal/config"
	"github.com/mixmini/mixmini/internal/models"
	"github.com/mixmini/mixmini/internal/repositories"
	"github.com/mixmini/mixmini/internal/web"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const sessionLifetime = 30 * 24 * time.Hour

// JWT Claims struct
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type authView struct {
	User  *models.User
	Error string
	Email string
}

// issueSession signs a session token and sets it as the auth cookie.
func issueSession(w http.ResponseWriter, user *models.User) error {
	expiration := time.Now().Add(sessionLifetime)
	claims := &Claims{
		UserID: user.ID.String(),
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiration),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(config.Envs.JWTSecret))
	if err != nil {
		return err
	}

	isProd := config.IsProduction()
	sameSite := http.SameSiteLaxMode
	if isProd {
		sameSite = http.SameSiteNoneMode
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    tokenString,
		Path:     "/",
		MaxAge:   int(sessionLifetime.Seconds()),
		Secure:   isProd,
		HttpOnly: true,
		SameSite: sameSite,
	})
	return nil
}

func clearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1, // maxAge < 0 deletes the cookie
		Secure:   config.IsProduction(),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// POST /auth/register
func RegisterUser(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	email := strings.ToLower(strings.TrimSpace(r.PostFormValue("email")))
	password := r.PostFormValue("password")

	fail := func(msg string) {
		web.Render(w, http.StatusBadRequest, "register", authView{Error: msg, Email: email})
	}

	if email == "" || !strings.Contains(email, "@") {
		fail("A valid email address is required")
		return
	}
	if len(password) < 8 {
		fail("Password must be at least 8 characters")
		return
	}

	var existing models.User
	err := repositories.DB.Where("email = ?", email).First(&existing).Error

	switch err {
	case nil: // email exists
		fail("An account with this email already exists")
		return

	case gorm.ErrRecordNotFound: // new user, create account
		hashed, hashErr := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if hashErr != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		newUser := models.User{
			Email:        email,
			PasswordHash: string(hashed),
			IsActive:     true,
		}
		if createErr := repositories.DB.Create(&newUser).Error; createErr != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		if err := issueSession(w, &newUser); err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/catalog", http.StatusSeeOther)

	default: // some other DB error
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// POST /auth/login
func LoginUser(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	email := strings.ToLower(strings.TrimSpace(r.PostFormValue("email")))
	password := r.PostFormValue("password")

	fail := func() {
		web.Render(w, http.StatusUnauthorized, "login", authView{
			Error: "Invalid email or password",
			Email: email,
		})
	}

	var user models.User
	err := repositories.DB.Where("email = ?", email).First(&user).Error
	switch err {
	case nil:
		// user found
	case gorm.ErrRecordNotFound:
		fail()
		return
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if !user.IsActive {
		fail()
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		fail()
		return
	}

	if err := issueSession(w, &user); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/catalog", http.StatusSeeOther)
}

// POST /auth/logout
func Logout(w http.ResponseWriter, r *http.Request) {
	clearSession(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

type settingsView struct {
	User    *models.User
	Error   string
	Success string
}

// GET /settings
func SettingsPage(w http.ResponseWriter, r *http.Request) {
	user := mustUser(w, r)
	if user == nil {
		return
	}
	web.Render(w, http.StatusOK, "settings", settingsView{User: user})
}

// POST /settings
func UpdateSettings(w http.ResponseWriter, r *http.Request) {
	user := mustUser(w, r)
	if user == nil {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	email := strings.ToLower(strings.TrimSpace(r.PostFormValue("email")))
	currentPassword := r.PostFormValue("current_password")
	newPassword := r.PostFormValue("new_password")

	fail := func(msg string) {
		web.Render(w, http.StatusBadRequest, "settings", settingsView{User: user, Error: msg})
	}

	if email == "" || !strings.Contains(email, "@") {
		fail("A valid email address is required")
		return
	}

	if email != user.Email {
		var other models.User
		if err := repositories.DB.Where("email = ? AND id <> ?", email, user.ID).First(&other).Error; err == nil {
			fail("An account with this email already exists")
			return
		}
		user.Email = email
	}

	if newPassword != "" {
		if len(newPassword) < 8 {
			fail("New password must be at least 8 characters")
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
			fail("Current password is incorrect")
			return
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		user.PasswordHash = string(hashed)
	}

	if err := repositories.DB.Save(user).Error; err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// Email lives in the token claims, so re-issue after a change.
	if err := issueSession(w, user); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	web.Render(w, http.StatusOK, "settings", settingsView{User: user, Success: "Settings saved"})
}
