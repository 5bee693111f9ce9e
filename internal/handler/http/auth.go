// SPDX-License-Identifier: Apache-2.0

package http

import (
	"errors"
	"net/http"

	"blogz/internal/logger"
	"blogz/internal/service"
	"blogz/internal/store"
	"blogz/internal/utils"
	"blogz/models"
)

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	_, authenticated := utils.GetSessionEmailFromContext(r.Context())

	utils.WriteJSON(w, models.ViewResponse{
		View:          models.ViewLogin,
		Authenticated: authenticated,
	}, http.StatusOK)
}

// login authenticates the submitted credentials and opens a session.
//
// On success the session identity is the user's email and the client is
// redirected to the home route. On failure the login form is re-presented
// with a flashed error and the submitted email, so the client only has to
// retype the password. Unknown email and wrong password are reported with
// the same message.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("malformed login form")
		http.Error(w, "malformed form submission", http.StatusBadRequest)
		return
	}

	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	user, err := h.services.AuthService.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			log.Error().Str("email", email).Msg("login rejected")
			utils.WriteJSON(w, models.ViewResponse{
				View:  models.ViewLogin,
				Flash: "invalid email or password",
				Form:  map[string]string{"email": email},
			}, http.StatusUnauthorized)
			return
		}
		log.Err(err).Msg("unexpected error occurred during login")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	session, err := h.services.SessionService.Open(ctx, user.Email)
	if err != nil {
		log.Err(err).Msg("session establishment failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	setSessionCookie(w, session.Token, session.ExpiresAt)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) registerForm(w http.ResponseWriter, r *http.Request) {
	_, authenticated := utils.GetSessionEmailFromContext(r.Context())

	utils.WriteJSON(w, models.ViewResponse{
		View:          models.ViewRegister,
		Authenticated: authenticated,
	}, http.StatusOK)
}

// register creates the account, opens a session for it and redirects to the
// new-post page. Validation failures re-present the registration form with a
// flashed message and the submitted email.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("malformed registration form")
		http.Error(w, "malformed form submission", http.StatusBadRequest)
		return
	}

	email := r.PostFormValue("email")
	password := r.PostFormValue("password")
	verify := r.PostFormValue("verify")

	user, err := h.services.AuthService.Register(ctx, email, password, verify)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailNotShaped):
			h.registerFlash(w, email, "that's not an email address", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrPasswordsDoNotMatch):
			h.registerFlash(w, email, "passwords do not match", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			h.registerFlash(w, email, "that email is already registered", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	session, err := h.services.SessionService.Open(ctx, user.Email)
	if err != nil {
		log.Err(err).Msg("session establishment failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	setSessionCookie(w, session.Token, session.ExpiresAt)
	http.Redirect(w, r, "/new-post", http.StatusSeeOther)
}

// registerFlash re-presents the registration form after a validation
// failure, echoing the submitted email but never the passwords.
func (h *Handler) registerFlash(w http.ResponseWriter, email, flash string, statusCode int) {
	utils.WriteJSON(w, models.ViewResponse{
		View:  models.ViewRegister,
		Flash: flash,
		Form:  map[string]string{"email": email},
	}, statusCode)
}

// logout closes the server-side session and expires the cookie. Both effects
// are idempotent, so a stale or replayed logout still succeeds.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if err := h.services.SessionService.Close(r.Context(), cookie.Value); err != nil {
			log.Err(err).Msg("session teardown failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	clearSessionCookie(w)
	http.Redirect(w, r, "/index", http.StatusSeeOther)
}
