package api

import (
	"log"
	"net/http"

	"github.com/mixmini/mixmini/internal/api/handlers"
	"github.com/mixmini/mixmini/internal/api/middleware"
	"github.com/mixmini/mixmini/internal/config"
	"github.com/mixmini/mixmini/internal/web"
	"github.com/rs/cors"
)

func SetupRouter() http.Handler {
	mainMux := http.NewServeMux()
	c := cors.New(config.Envs.CorsConfig)

	// ---------- PUBLIC ROUTES ----------
	mainMux.HandleFunc("GET /health", handlers.Health)
	mainMux.Handle("GET /static/", web.StaticHandler())

	mainMux.Handle("GET /{$}", middleware.OptionalUser(http.HandlerFunc(handlers.Index)))
	mainMux.Handle("GET /login", middleware.OptionalUser(http.HandlerFunc(handlers.LoginPage)))
	mainMux.Handle("GET /register", middleware.OptionalUser(http.HandlerFunc(handlers.RegisterPage)))

	mainMux.HandleFunc("POST /auth/register", handlers.RegisterUser)
	mainMux.HandleFunc("POST /auth/login", handlers.LoginUser)
	mainMux.HandleFunc("POST /auth/logout", handlers.Logout)

	// ---------- PROTECTED ROUTES ----------
	protectedMux := http.NewServeMux()

	protectedMux.HandleFunc("GET /catalog", handlers.Catalog)
	protectedMux.HandleFunc("POST /catalog/toggle/{paintID}", handlers.CatalogToggle)

	protectedMux.HandleFunc("GET /inventory", handlers.Inventory)
	protectedMux.HandleFunc("POST /inventory/status/{paintID}", handlers.CycleStatus)
	protectedMux.HandleFunc("POST /inventory/remove/{paintID}", handlers.InventoryRemove)

	protectedMux.HandleFunc("GET /recipes", handlers.RecipeList)
	protectedMux.HandleFunc("GET /recipes/new", handlers.RecipeNew)
	protectedMux.HandleFunc("GET /recipes/paint-search", handlers.PaintSearch)
	protectedMux.HandleFunc("POST /recipes", handlers.RecipeCreate)
	protectedMux.HandleFunc("GET /recipes/{recipeID}", handlers.RecipeDetail)
	protectedMux.HandleFunc("GET /recipes/{recipeID}/edit", handlers.RecipeEdit)
	protectedMux.HandleFunc("POST /recipes/{recipeID}", handlers.RecipeUpdate)
	protectedMux.HandleFunc("POST /recipes/{recipeID}/delete", handlers.RecipeDelete)

	protectedMux.HandleFunc("GET /settings", handlers.SettingsPage)
	protectedMux.HandleFunc("POST /settings", handlers.UpdateSettings)

	// Everything not matched above goes through auth first.
	mainMux.Handle("/", middleware.RequireUser(protectedMux))

	log.Println("Router initialized")
	handler := c.Handler(mainMux)
	handler = middleware.Logger(handler)
	return handler
}
