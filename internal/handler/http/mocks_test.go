package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"blogz/internal/logger"
	"blogz/internal/service"
	"blogz/internal/utils"
	"blogz/models"
)

// ─────────────────────────────────────────────
// Mock service.AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn func(ctx context.Context, email, password, verify string) (models.User, error)
	loginFn    func(ctx context.Context, email, password string) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, email, password, verify string) (models.User, error) {
	return m.registerFn(ctx, email, password, verify)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	return m.loginFn(ctx, email, password)
}

// ─────────────────────────────────────────────
// Mock service.SessionService
// ─────────────────────────────────────────────

type mockSessionService struct {
	openFn     func(ctx context.Context, email string) (models.Session, error)
	identityFn func(ctx context.Context, token string) (string, error)
	closeFn    func(ctx context.Context, token string) error
	cleanupFn  func(ctx context.Context) (int64, error)
}

func (m *mockSessionService) Open(ctx context.Context, email string) (models.Session, error) {
	if m.openFn != nil {
		return m.openFn(ctx, email)
	}
	return models.Session{
		Token:     "test-token",
		Email:     email,
		CreatedAt: time.Now().UTC(),
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}, nil
}

func (m *mockSessionService) Identity(ctx context.Context, token string) (string, error) {
	if m.identityFn != nil {
		return m.identityFn(ctx, token)
	}
	return "", service.ErrNoActiveSession
}

func (m *mockSessionService) Close(ctx context.Context, token string) error {
	if m.closeFn != nil {
		return m.closeFn(ctx, token)
	}
	return nil
}

func (m *mockSessionService) Cleanup(ctx context.Context) (int64, error) {
	if m.cleanupFn != nil {
		return m.cleanupFn(ctx)
	}
	return 0, nil
}

// ─────────────────────────────────────────────
// Mock service.BlogService
// ─────────────────────────────────────────────

type mockBlogService struct {
	createFn     func(ctx context.Context, title, body, ownerEmail string) (models.Blog, error)
	ownerBlogsFn func(ctx context.Context, email string) ([]models.Blog, error)
	byOwnerIDFn  func(ctx context.Context, ownerID int64) ([]models.Blog, error)
	allBlogsFn   func(ctx context.Context) ([]models.Blog, error)
	authorViewFn func(ctx context.Context) ([]models.Blog, map[int64]string, error)
	blogByIDFn   func(ctx context.Context, id int64) (models.Blog, map[int64]string, error)
	allUsersFn   func(ctx context.Context) ([]models.User, error)
}

func (m *mockBlogService) CreateBlog(ctx context.Context, title, body, ownerEmail string) (models.Blog, error) {
	if m.createFn != nil {
		return m.createFn(ctx, title, body, ownerEmail)
	}
	return models.Blog{}, nil
}

func (m *mockBlogService) OwnerBlogs(ctx context.Context, email string) ([]models.Blog, error) {
	if m.ownerBlogsFn != nil {
		return m.ownerBlogsFn(ctx, email)
	}
	return nil, nil
}

func (m *mockBlogService) BlogsByOwnerID(ctx context.Context, ownerID int64) ([]models.Blog, error) {
	if m.byOwnerIDFn != nil {
		return m.byOwnerIDFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockBlogService) AllBlogs(ctx context.Context) ([]models.Blog, error) {
	if m.allBlogsFn != nil {
		return m.allBlogsFn(ctx)
	}
	return nil, nil
}

func (m *mockBlogService) AuthorView(ctx context.Context) ([]models.Blog, map[int64]string, error) {
	if m.authorViewFn != nil {
		return m.authorViewFn(ctx)
	}
	return nil, nil, nil
}

func (m *mockBlogService) BlogByID(ctx context.Context, id int64) (models.Blog, map[int64]string, error) {
	if m.blogByIDFn != nil {
		return m.blogByIDFn(ctx, id)
	}
	return models.Blog{}, nil, nil
}

func (m *mockBlogService) AllUsers(ctx context.Context) ([]models.User, error) {
	if m.allUsersFn != nil {
		return m.allUsersFn(ctx)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over the given service mocks, substituting
// inert defaults for any nil ones.
func newTestHandler(t *testing.T, auth *mockAuthService, sessions *mockSessionService, blogs *mockBlogService) *Handler {
	t.Helper()
	if auth == nil {
		auth = &mockAuthService{}
	}
	if sessions == nil {
		sessions = &mockSessionService{}
	}
	if blogs == nil {
		blogs = &mockBlogService{}
	}
	svcs := &service.Services{
		AuthService:    auth,
		SessionService: sessions,
		BlogService:    blogs,
	}
	return NewHandler(svcs, "test", logger.Nop())
}

// formRequest builds an urlencoded POST the way a browser submits a form.
func formRequest(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// withSessionToken attaches a session cookie to req.
func withSessionToken(req *http.Request, token string) *http.Request {
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	return req
}

// contextWithEmail simulates what withSession does after resolving a token.
func contextWithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, utils.SessionEmailCtxKey, email)
}

// staticIdentity returns a SessionService whose Identity resolves token to
// email and rejects everything else.
func staticIdentity(token, email string) *mockSessionService {
	return &mockSessionService{
		identityFn: func(_ context.Context, got string) (string, error) {
			if got == token {
				return email, nil
			}
			return "", service.ErrNoActiveSession
		},
	}
}
