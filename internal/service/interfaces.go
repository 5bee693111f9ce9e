package service

import (
	"context"

	"blogz/models"
)

// AuthService owns credential verification and account creation.
type AuthService interface {
	// Register validates a registration submission (email shape, password
	// verification match, email uniqueness — in that order, short-circuiting
	// on the first failure) and creates the account.
	Register(ctx context.Context, email, password, verify string) (models.User, error)

	// Login authenticates an existing user by email and password.
	Login(ctx context.Context, email, password string) (models.User, error)
}

// SessionService owns the session lifecycle: one opaque token per
// authenticated client, holding the user's email as the sole identity field.
type SessionService interface {
	// Open establishes a new session for email and returns it with a fresh
	// opaque token and the configured expiry.
	Open(ctx context.Context, email string) (models.Session, error)

	// Identity resolves a token to the authenticated email, or
	// ErrNoActiveSession when the token is unknown or expired.
	Identity(ctx context.Context, token string) (string, error)

	// Close destroys the session for token. Closing an absent or expired
	// session succeeds silently: logout is idempotent.
	Close(ctx context.Context, token string) error

	// Cleanup removes expired session rows and returns how many were removed.
	Cleanup(ctx context.Context) (int64, error)
}

// BlogService owns post creation and every read model behind the views.
type BlogService interface {
	// CreateBlog validates the post fields, resolves the owner by the
	// session email, and persists the post.
	CreateBlog(ctx context.Context, title, body, ownerEmail string) (models.Blog, error)

	// OwnerBlogs lists the posts of the user identified by email,
	// most recent first. Backs the home view.
	OwnerBlogs(ctx context.Context, email string) ([]models.Blog, error)

	// BlogsByOwnerID lists the posts of one owner. Backs the public
	// single_user view.
	BlogsByOwnerID(ctx context.Context, ownerID int64) ([]models.Blog, error)

	// AllBlogs lists every stored post. Backs the public blog view without
	// an id parameter.
	AllBlogs(ctx context.Context) ([]models.Blog, error)

	// AuthorView lists every post joined with a map from owner IDs to owner
	// emails. Backs the public blog view with an id parameter.
	AuthorView(ctx context.Context) ([]models.Blog, map[int64]string, error)

	// BlogByID resolves a single post with its author attribution map.
	// Backs the public single view.
	BlogByID(ctx context.Context, id int64) (models.Blog, map[int64]string, error)

	// AllUsers lists every registered user for the public index view.
	AllUsers(ctx context.Context) ([]models.User, error)
}
