package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/modelvision/leadgen/app"
	"github.com/modelvision/leadgen/routes/middlewares"
)

func Wire(app app.App) http.Handler {
	root := chi.NewRouter()
	root.Use(middleware.Logger, middleware.Recoverer)

	root.Mount("/api", apiRouter(app))
	root.Mount("/", servePublicFiles())

	return root
}

func apiRouter(app app.App) http.Handler {
	api := chi.NewRouter()
	api.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	api.Post("/signups", SubmitSignup(app))
	api.With(middlewares.Admin(app.TokenSecret)).Get("/signups", ListSignups(app))

	api.Post("/login", Login(app))
	api.Post("/refresh", Refresh(app))

	return api
}

func servePublicFiles() http.Handler {
	return http.FileServer(http.Dir("public"))
}
