package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"moviecatalog/proj/internal/lib/logger"
)

type CtxKey string

const CtxKeyUser CtxKey = "user"

const (
	msgNoToken      = "Access denied. No token provided."
	msgInvalidToken = "Invalid or expired token"
)

func (app *Application) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				err, ok := rec.(error)
				if !ok {
					err = fmt.Errorf("%v", rec)
				}
				app.Http.ServerError(w, r, err, "")
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (app *Application) requestLogger(next http.Handler) http.Handler {
	return middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  logger.LogAdapter(app.log),
		NoColor: true,
	})(next)
}

// RateLimiter keys clients by the connection's remote ip. Forwarding headers
// are ignored since any client can set them. Limiter backend failures let the
// request through.
func (app *Application) RateLimiter(next http.Handler) http.Handler {
	const op = "middlewares.RateLimiter"
	log := app.log.With("op", op)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app.limiter == nil {
			next.ServeHTTP(w, r)
			return
		}
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		allowed, err := app.limiter.Allow(r.Context(), ip)
		if err != nil {
			log.Error("rate limiter unavailable", "ip", ip, "errMsg", err.Error())
			next.ServeHTTP(w, r)
			return
		}
		if !allowed {
			log.Warn("rate limit exceeded", "ip", ip)
			app.Http.TooManyRequests(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireAuthenticatedUser accepts "Authorization: Bearer <token>" only. A
// missing token is 401, a token that fails verification is 403.
func (app *Application) requireAuthenticatedUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := app.Http.setupLogPerReq(r)
		scheme, token, _ := strings.Cut(r.Header.Get("Authorization"), " ")
		token = strings.TrimSpace(token)
		if scheme != "Bearer" || token == "" {
			log.Debug("no bearer token in request")
			app.Http.Unauthorized(w, r, msgNoToken)
			return
		}
		claims, err := app.Services.Auth.ParseToken(token)
		if err != nil {
			log.Warn("rejected token", "errMsg", err.Error())
			app.Http.Forbidden(w, r, msgInvalidToken)
			return
		}
		r = r.WithContext(context.WithValue(r.Context(), CtxKeyUser, claims.User))
		next.ServeHTTP(w, r)
	})
}
