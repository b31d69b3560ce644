package main

import (
	"net/http"

	"github.com/go-chi/render"
)

func (app *Application) status(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, envelop{
		"ok":      true,
		"status":  "Server is running",
		"service": "Movie API",
	})
}

func (app *Application) healthcheck(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, struct {
		Status  string `json:"status"`
		Debug   bool   `json:"debug"`
		Version string `json:"version"`
		Storage string `json:"storage"`
	}{
		Status:  "available",
		Debug:   app.cfg.Debug,
		Version: version,
		Storage: app.storageName,
	})
}
