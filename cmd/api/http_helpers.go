package main

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"moviecatalog/proj/internal/config"
)

type Http struct {
	log *slog.Logger
	cfg *config.Config
}

type envelop map[string]any

const defaultServerErrMsg = "Sorry! Can't process your request. Please try again later."

func (h *Http) setupLogPerReq(r *http.Request) *slog.Logger {
	return h.log.With(
		"request_id",
		middleware.GetReqID(r.Context()),
		"method",
		r.Method,
		"path",
		r.URL.Path,
	)
}

func (h *Http) Response(w http.ResponseWriter, r *http.Request, data envelop, status int) {
	render.Status(r, status)
	render.JSON(w, r, data)
}

// withMessage returns data extended with the "message" key.
func withMessage(data envelop, msg string) envelop {
	resp := envelop{"message": msg}
	for k, v := range data {
		resp[k] = v
	}
	return resp
}

func (h *Http) Ok(w http.ResponseWriter, r *http.Request, msg string, data envelop) {
	h.Response(w, r, withMessage(data, msg), http.StatusOK)
}

func (h *Http) Created(w http.ResponseWriter, r *http.Request, msg string, data envelop) {
	h.Response(w, r, withMessage(data, msg), http.StatusCreated)
}

func (h *Http) Error(w http.ResponseWriter, r *http.Request, msg string, status int) {
	if msg == "" {
		msg = http.StatusText(status)
	}
	h.Response(w, r, envelop{"error": msg}, status)
}

func (h *Http) BadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	h.Error(w, r, msg, http.StatusBadRequest)
}

func (h *Http) FailedValidation(w http.ResponseWriter, r *http.Request, msg string, errors map[string]string) {
	h.Response(w, r, envelop{"error": msg, "errors": errors}, http.StatusBadRequest)
}

func (h *Http) Unauthorized(w http.ResponseWriter, r *http.Request, msg string) {
	h.Error(w, r, msg, http.StatusUnauthorized)
}

func (h *Http) Forbidden(w http.ResponseWriter, r *http.Request, msg string) {
	h.Error(w, r, msg, http.StatusForbidden)
}

func (h *Http) NotFound(w http.ResponseWriter, r *http.Request, msg string) {
	h.Error(w, r, msg, http.StatusNotFound)
}

func (h *Http) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.Error(w, r, "", http.StatusMethodNotAllowed)
}

func (h *Http) Conflict(w http.ResponseWriter, r *http.Request, msg string) {
	h.Error(w, r, msg, http.StatusConflict)
}

func (h *Http) TooManyRequests(w http.ResponseWriter, r *http.Request) {
	h.Error(w, r, "rate limit exceeded", http.StatusTooManyRequests)
}

// ServerError logs err and answers 500 with a generic message. Debug mode
// adds the stack to the log record, never to the response.
func (h *Http) ServerError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := h.setupLogPerReq(r)
	if err != nil {
		if h.cfg.Debug {
			log.Error(err.Error(), "stack", string(debug.Stack()))
		} else {
			log.Error(err.Error())
		}
	}
	if msg == "" {
		msg = defaultServerErrMsg
	}
	h.Error(w, r, msg, http.StatusInternalServerError)
}
