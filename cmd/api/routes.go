package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (app *Application) routes() http.Handler {
	router := chi.NewRouter()
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		app.Http.NotFound(w, r, "Page not found")
	})
	router.MethodNotAllowed(app.Http.MethodNotAllowed)
	router.Use(middleware.RequestID)
	router.Use(app.requestLogger)
	router.Use(app.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	router.Use(app.RateLimiter)

	router.Get("/status", app.status)
	router.Get("/healthcheck", app.healthcheck)
	router.Post("/register", app.register)
	router.Post("/login", app.login)
	router.Route("/movies", func(r chi.Router) {
		r.Get("/", app.listMovies)
		r.Get("/{id}", app.getMovie)
		r.Group(func(r chi.Router) {
			r.Use(app.requireAuthenticatedUser)
			r.Post("/", app.createMovie)
			r.Patch("/{id}", app.updateMovie)
			r.Delete("/{id}", app.deleteMovie)
		})
	})
	router.Route("/directors", func(r chi.Router) {
		r.Get("/", app.listDirectors)
		r.Get("/{name}", app.getDirector)
		r.Group(func(r chi.Router) {
			r.Use(app.requireAuthenticatedUser)
			r.Post("/", app.createDirector)
			r.Put("/{name}", app.renameDirector)
			r.Delete("/{name}", app.deleteDirector)
		})
	})
	return router
}
