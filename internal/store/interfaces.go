package store

import (
	"context"
	"time"

	"blogz/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

type BlogRepository interface {
	CreateBlog(ctx context.Context, blog models.Blog) (models.Blog, error)
	FindBlogByID(ctx context.Context, id int64) (models.Blog, error)
	ListBlogsByOwner(ctx context.Context, ownerID int64) ([]models.Blog, error)
	ListAllBlogs(ctx context.Context) ([]models.Blog, error)
	ListBlogsWithAuthors(ctx context.Context) ([]models.Blog, map[int64]string, error)
}

type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) error
	FindSessionByToken(ctx context.Context, token string) (models.Session, error)
	DeleteSession(ctx context.Context, token string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}
