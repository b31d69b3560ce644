package main

import (
	"errors"
	"net/http"

	"moviecatalog/proj/internal/services/auth"
)

type credentialsInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (app *Application) register(w http.ResponseWriter, r *http.Request) {
	var input credentialsInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	userID, err := app.Services.Auth.Register(storeCtx(r), input.Username, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			app.Http.BadRequest(w, r, "Invalid username or password")
		case errors.Is(err, auth.ErrUsernameTaken):
			app.Http.Conflict(w, r, "Username already exists")
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Created(w, r, "User registered", envelop{"userId": userID})
}

func (app *Application) login(w http.ResponseWriter, r *http.Request) {
	var input credentialsInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	token, err := app.Services.Auth.Login(storeCtx(r), input.Username, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingCredentials):
			app.Http.BadRequest(w, r, "Missing credentials")
		case errors.Is(err, auth.ErrInvalidCredentials):
			app.Http.Unauthorized(w, r, "Invalid username or password")
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Ok(w, r, "Login successful", envelop{"token": token})
}
