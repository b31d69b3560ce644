package main

import (
	"errors"
	"net/http"

	"moviecatalog/proj/internal/domain/models"
	"moviecatalog/proj/internal/lib/validator"
	"moviecatalog/proj/internal/services/movies"
)

func (app *Application) listMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := app.Services.Movies.List(storeCtx(r))
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, "success", envelop{"data": movies})
}

func (app *Application) getMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	movie, err := app.Services.Movies.Get(storeCtx(r), id)
	if err != nil {
		if errors.Is(err, movies.ErrMovieNotFound) {
			app.Http.NotFound(w, r, "Movie not found")
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, "success", envelop{"data": movie})
}

func (app *Application) createMovie(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Title    string `json:"title" validate:"required,notblank,max=500"`
		Director string `json:"director" validate:"required,notblank,max=200"`
		Year     int32  `json:"year" validate:"required"`
	}
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, &input); errs != nil {
		app.Http.FailedValidation(w, r, "Missing movie fields", errs)
		return
	}
	movie, err := app.Services.Movies.Create(storeCtx(r), input.Title, input.Director, input.Year)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.actorLogger(r).Info("movie created", "id", movie.ID)
	app.Http.Created(w, r, "Movie added successfully", envelop{"data": movie})
}

func (app *Application) updateMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	var input struct {
		Title    string `json:"title" validate:"omitempty,notblank,max=500"`
		Director string `json:"director" validate:"omitempty,notblank,max=200"`
		Year     int32  `json:"year"`
	}
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, &input); errs != nil {
		app.Http.FailedValidation(w, r, "Invalid movie fields", errs)
		return
	}
	patch := models.MoviePatch{Title: input.Title, Director: input.Director, Year: input.Year}
	movie, err := app.Services.Movies.Update(storeCtx(r), id, patch)
	if err != nil {
		if errors.Is(err, movies.ErrMovieNotFound) {
			app.Http.NotFound(w, r, "Movie not found")
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.actorLogger(r).Info("movie updated", "id", movie.ID)
	app.Http.Ok(w, r, "Movie updated successfully", envelop{"data": movie})
}

func (app *Application) deleteMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	if err := app.Services.Movies.Delete(storeCtx(r), id); err != nil {
		if errors.Is(err, movies.ErrMovieNotFound) {
			app.Http.NotFound(w, r, "Movie not found")
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.actorLogger(r).Info("movie deleted", "id", id)
	app.Http.Ok(w, r, "Movie deleted successfully", nil)
}
