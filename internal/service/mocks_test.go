package service

import (
	"context"
	"errors"
	"time"

	"blogz/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn      func(ctx context.Context, user models.User) (models.User, error)
	findByEmailFn func(ctx context.Context, email string) (models.User, error)
	findByIDFn    func(ctx context.Context, id int64) (models.User, error)
	listFn        func(ctx context.Context) ([]models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: store.BlogRepository
// ─────────────────────────────────────────────

type mockBlogRepository struct {
	createFn          func(ctx context.Context, blog models.Blog) (models.Blog, error)
	findByIDFn        func(ctx context.Context, id int64) (models.Blog, error)
	listByOwnerFn     func(ctx context.Context, ownerID int64) ([]models.Blog, error)
	listAllFn         func(ctx context.Context) ([]models.Blog, error)
	listWithAuthorsFn func(ctx context.Context) ([]models.Blog, map[int64]string, error)
}

func (m *mockBlogRepository) CreateBlog(ctx context.Context, blog models.Blog) (models.Blog, error) {
	if m.createFn != nil {
		return m.createFn(ctx, blog)
	}
	return blog, nil
}

func (m *mockBlogRepository) FindBlogByID(ctx context.Context, id int64) (models.Blog, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return models.Blog{}, nil
}

func (m *mockBlogRepository) ListBlogsByOwner(ctx context.Context, ownerID int64) ([]models.Blog, error) {
	if m.listByOwnerFn != nil {
		return m.listByOwnerFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockBlogRepository) ListAllBlogs(ctx context.Context) ([]models.Blog, error) {
	if m.listAllFn != nil {
		return m.listAllFn(ctx)
	}
	return nil, nil
}

func (m *mockBlogRepository) ListBlogsWithAuthors(ctx context.Context) ([]models.Blog, map[int64]string, error) {
	if m.listWithAuthorsFn != nil {
		return m.listWithAuthorsFn(ctx)
	}
	return nil, nil, nil
}

// ─────────────────────────────────────────────
// Mock: store.SessionRepository
// ─────────────────────────────────────────────

type mockSessionRepository struct {
	createFn        func(ctx context.Context, session models.Session) error
	findByTokenFn   func(ctx context.Context, token string) (models.Session, error)
	deleteFn        func(ctx context.Context, token string) error
	deleteExpiredFn func(ctx context.Context, now time.Time) (int64, error)
}

func (m *mockSessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	if m.createFn != nil {
		return m.createFn(ctx, session)
	}
	return nil
}

func (m *mockSessionRepository) FindSessionByToken(ctx context.Context, token string) (models.Session, error) {
	if m.findByTokenFn != nil {
		return m.findByTokenFn(ctx, token)
	}
	return models.Session{}, nil
}

func (m *mockSessionRepository) DeleteSession(ctx context.Context, token string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, token)
	}
	return nil
}

func (m *mockSessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	if m.deleteExpiredFn != nil {
		return m.deleteExpiredFn(ctx, now)
	}
	return 0, nil
}

var errStorage = errors.New("storage error")
