// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"blogz/internal/service"
	"blogz/internal/store"
	"blogz/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeView unmarshals the recorded response body as a ViewResponse.
func decodeView(t *testing.T, rec *httptest.ResponseRecorder) models.ViewResponse {
	t.Helper()
	var view models.ViewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	return view
}

// sessionCookie extracts the session cookie from a recorded response, or
// nil when none was set.
func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	return nil
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

// TestLogin_Success verifies that valid credentials open a session, set the
// cookie and redirect home.
func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, email, password string) (models.User, error) {
			assert.Equal(t, "a@b.com", email)
			assert.Equal(t, "secret", password)
			return models.User{UserID: 1, Email: email}, nil
		},
	}
	opened := false
	sessions := &mockSessionService{
		openFn: func(_ context.Context, email string) (models.Session, error) {
			opened = true
			return models.Session{Token: "tok-1", Email: email}, nil
		},
	}
	h := newTestHandler(t, auth, sessions, nil)

	rec := httptest.NewRecorder()
	h.login(rec, formRequest("/login", url.Values{"email": {"a@b.com"}, "password": {"secret"}}))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.True(t, opened)

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Equal(t, "tok-1", cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

// TestLogin_WrongPassword verifies the end-to-end failure contract: the
// session stays anonymous, a flash is present, and there is no redirect.
func TestLogin_WrongPassword(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}
	sessions := &mockSessionService{
		openFn: func(_ context.Context, _ string) (models.Session, error) {
			t.Fatal("no session may be opened on a failed login")
			return models.Session{}, nil
		},
	}
	h := newTestHandler(t, auth, sessions, nil)

	rec := httptest.NewRecorder()
	h.login(rec, formRequest("/login", url.Values{"email": {"a@b.com"}, "password": {"wrong"}}))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Header().Get("Location"))
	assert.Nil(t, sessionCookie(rec))

	view := decodeView(t, rec)
	assert.Equal(t, models.ViewLogin, view.View)
	assert.NotEmpty(t, view.Flash)
	assert.Equal(t, "a@b.com", view.Form["email"], "submitted email must survive the re-render")
}

// TestLogin_UnknownEmailSameAsWrongPassword verifies both failure modes
// produce an identical response shape.
func TestLogin_UnknownEmailSameAsWrongPassword(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}
	h := newTestHandler(t, auth, nil, nil)

	rec := httptest.NewRecorder()
	h.login(rec, formRequest("/login", url.Values{"email": {"ghost@b.com"}, "password": {"secret"}}))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid email or password", decodeView(t, rec).Flash)
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, email, password, verify string) (models.User, error) {
			assert.Equal(t, "a@b.com", email)
			assert.Equal(t, password, verify)
			return models.User{UserID: 1, Email: email}, nil
		},
	}
	sessions := &mockSessionService{
		openFn: func(_ context.Context, email string) (models.Session, error) {
			return models.Session{Token: "tok-1", Email: email}, nil
		},
	}
	h := newTestHandler(t, auth, sessions, nil)

	rec := httptest.NewRecorder()
	h.register(rec, formRequest("/register", url.Values{
		"email":    {"a@b.com"},
		"password": {"secret"},
		"verify":   {"secret"},
	}))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/new-post", rec.Header().Get("Location"))
	require.NotNil(t, sessionCookie(rec))
}

func TestRegister_ValidationFlashes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "bad email shape", err: service.ErrEmailNotShaped, wantStatus: http.StatusBadRequest},
		{name: "password mismatch", err: service.ErrPasswordsDoNotMatch, wantStatus: http.StatusBadRequest},
		{name: "duplicate email", err: store.ErrEmailAlreadyExists, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				registerFn: func(_ context.Context, _, _, _ string) (models.User, error) {
					return models.User{}, tt.err
				},
			}
			h := newTestHandler(t, auth, nil, nil)

			rec := httptest.NewRecorder()
			h.register(rec, formRequest("/register", url.Values{
				"email":    {"a@b.com"},
				"password": {"secret"},
				"verify":   {"other"},
			}))

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Nil(t, sessionCookie(rec))

			view := decodeView(t, rec)
			assert.Equal(t, models.ViewRegister, view.View)
			assert.NotEmpty(t, view.Flash)
			assert.Equal(t, "a@b.com", view.Form["email"])
			assert.NotContains(t, view.Form, "password", "passwords are never echoed back")
		})
	}
}

// ─────────────────────────────────────────────
// logout
// ─────────────────────────────────────────────

// TestLogout_Idempotent verifies logging out twice in a row succeeds both
// times and leaves the client anonymous.
func TestLogout_Idempotent(t *testing.T) {
	closed := 0
	sessions := staticIdentity("tok-1", "a@b.com")
	sessions.closeFn = func(_ context.Context, token string) error {
		closed++
		return nil
	}
	h := newTestHandler(t, nil, sessions, nil)
	router := h.Init()

	// first logout carries a live session
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, withSessionToken(httptest.NewRequest(http.MethodPost, "/logout", nil), "tok-1"))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/index", rec.Header().Get("Location"))
	assert.Equal(t, 1, closed)

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)

	// second logout is anonymous: the gate redirects, nothing faults
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/logout", nil))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/index", rec.Header().Get("Location"))
	assert.Equal(t, 1, closed)
}

// TestLogout_StaleCookie verifies a cookie whose session is already gone
// still logs out cleanly when the route is reached with a live context.
func TestLogout_StaleCookie(t *testing.T) {
	sessions := staticIdentity("tok-1", "a@b.com")
	sessions.closeFn = func(_ context.Context, _ string) error { return nil }
	h := newTestHandler(t, nil, sessions, nil)

	req := withSessionToken(httptest.NewRequest(http.MethodGet, "/logout", nil), "tok-1")
	req = req.WithContext(contextWithEmail(req.Context(), "a@b.com"))
	rec := httptest.NewRecorder()

	h.logout(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
}
