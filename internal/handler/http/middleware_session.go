// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the site. Session resolution, the route-protection gate, logging and
// tracing concerns are all handled at this layer before requests are
// forwarded to the service layer.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"blogz/internal/logger"
	"blogz/internal/service"
	"blogz/internal/utils"
)

// sessionCookieName is the cookie carrying the opaque session token.
const sessionCookieName = "blogz_session"

// withSession resolves the session cookie on every request, public or not.
//
// When the cookie holds a token with an active server-side session, the
// authenticated email is stored in the request context under
// [utils.SessionEmailCtxKey] so that downstream handlers can personalise
// public views and the gate can authorise protected ones. A missing,
// unknown or expired token leaves the context untouched: the request simply
// proceeds as anonymous.
//
// Only a storage failure aborts the request, with HTTP 500.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		email, err := h.services.SessionService.Identity(r.Context(), cookie.Value)
		if err != nil {
			if errors.Is(err, service.ErrNoActiveSession) {
				next.ServeHTTP(w, r)
				return
			}
			log.Err(err).Msg("session resolution failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		ctx := context.WithValue(r.Context(), utils.SessionEmailCtxKey, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireSession is the access gate for every route outside the public
// allow-list. Protection is the default: a route becomes public only by
// being registered in the allow-listed group, never by an omission here.
//
// Anonymous requests are redirected to the public landing index with
// HTTP 303 and no further processing, so a protected handler can never run
// without an authenticated email in its context.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		if _, ok := utils.GetSessionEmailFromContext(r.Context()); !ok {
			log.Debug().Str("uri", r.RequestURI).Msg("anonymous request to protected route")
			http.Redirect(w, r, "/index", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// setSessionCookie installs the session token on the client.
func setSessionCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie expires the session cookie on the client.
func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
