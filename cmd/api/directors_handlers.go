package main

import (
	"errors"
	"fmt"
	"net/http"

	"moviecatalog/proj/internal/lib/validator"
	"moviecatalog/proj/internal/services/directors"
)

const msgDirectorNotFound = "Director not found"

func (app *Application) listDirectors(w http.ResponseWriter, r *http.Request) {
	names, err := app.Services.Directors.List(storeCtx(r))
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, "success", envelop{"data": names})
}

func (app *Application) getDirector(w http.ResponseWriter, r *http.Request) {
	movies, err := app.Services.Directors.Movies(storeCtx(r), extractNameParam(r, "name"))
	if err != nil {
		if errors.Is(err, directors.ErrDirectorNotFound) {
			app.Http.NotFound(w, r, msgDirectorNotFound)
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, "success", envelop{"data": movies})
}

func (app *Application) createDirector(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name  string `json:"name" validate:"required,notblank,max=200"`
		Title string `json:"title" validate:"required,notblank,max=500"`
		Year  int32  `json:"year" validate:"required"`
	}
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, &input); errs != nil {
		app.Http.FailedValidation(w, r, "Missing director or movie info", errs)
		return
	}
	movie, err := app.Services.Directors.Add(storeCtx(r), input.Name, input.Title, input.Year)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.actorLogger(r).Info("director added", "name", input.Name, "movie_id", movie.ID)
	msg := fmt.Sprintf("Director '%s' added with movie '%s'", input.Name, input.Title)
	app.Http.Created(w, r, msg, envelop{"data": movie})
}

func (app *Application) renameDirector(w http.ResponseWriter, r *http.Request) {
	var input struct {
		NewName string `json:"newName" validate:"required,notblank,max=200"`
	}
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, &input); errs != nil {
		app.Http.FailedValidation(w, r, "New name is required", errs)
		return
	}
	updated, err := app.Services.Directors.Rename(storeCtx(r), extractNameParam(r, "name"), input.NewName)
	if err != nil {
		if errors.Is(err, directors.ErrDirectorNotFound) {
			app.Http.NotFound(w, r, msgDirectorNotFound)
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.actorLogger(r).Info("director renamed", "new_name", input.NewName, "movies", updated)
	app.Http.Ok(w, r, "Director updated successfully", envelop{"updated": updated})
}

func (app *Application) deleteDirector(w http.ResponseWriter, r *http.Request) {
	deleted, err := app.Services.Directors.Delete(storeCtx(r), extractNameParam(r, "name"))
	if err != nil {
		if errors.Is(err, directors.ErrDirectorNotFound) {
			app.Http.NotFound(w, r, msgDirectorNotFound)
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.actorLogger(r).Info("director deleted", "movies", deleted)
	app.Http.Ok(w, r, "Director and related movies deleted", envelop{"deleted": deleted})
}
