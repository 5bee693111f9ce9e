package store

import (
	"context"
	"fmt"
	"time"

	"blogz/internal/logger"
	"blogz/models"
)

// blogRepository is the SQL-backed implementation of [BlogRepository].
// It handles post creation and the listing queries behind the home, author,
// and single-post views.
type blogRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBlogRepository constructs a [BlogRepository] backed by the provided
// database connection and logger.
func NewBlogRepository(db *DB, logger *logger.Logger) BlogRepository {
	logger.Debug().Msg("creating blog repository")
	return &blogRepository{
		db:     db,
		logger: logger,
	}
}

// CreateBlog persists a new post and returns it with server-assigned fields.
// When the caller leaves PubDate zero, the current UTC time is assigned
// before the insert; publication-time defaulting belongs here, not in the
// model constructor.
func (r *blogRepository) CreateBlog(ctx context.Context, blog models.Blog) (models.Blog, error) {
	log := logger.FromContext(ctx)

	if blog.PubDate.IsZero() {
		blog.PubDate = time.Now().UTC()
	}

	row := r.db.QueryRowContext(ctx, createBlog, blog.Title, blog.Body, blog.PubDate, blog.OwnerID)

	if err := row.Scan(&blog.BlogID, &blog.Title, &blog.Body, &blog.PubDate, &blog.OwnerID); err != nil {
		log.Err(err).Str("func", "*blogRepository.CreateBlog").Msg("error: scanning error")
		return models.Blog{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return blog, nil
}

// FindBlogByID retrieves a single post by identifier.
//
// Error handling:
//   - empty result set → [ErrBlogNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *blogRepository) FindBlogByID(ctx context.Context, id int64) (models.Blog, error) {
	log := logger.FromContext(ctx)

	var blog models.Blog
	row := r.db.QueryRowContext(ctx, findBlogByID, id)

	if err := row.Scan(&blog.BlogID, &blog.Title, &blog.Body, &blog.PubDate, &blog.OwnerID); err != nil {
		if r.db.errorClassifier.IsNotFound(err) {
			return models.Blog{}, ErrBlogNotFound
		}

		log.Err(err).Str("func", "*blogRepository.FindBlogByID").Msg("error: scanning error")
		return models.Blog{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return blog, nil
}

// ListBlogsByOwner returns one owner's posts ordered by publication date
// descending (most recent first).
func (r *blogRepository) ListBlogsByOwner(ctx context.Context, ownerID int64) ([]models.Blog, error) {
	query, args, err := selectBlogsByOwner(ownerID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building sql query: %w", err)
	}

	return r.queryBlogs(ctx, query, args...)
}

// ListAllBlogs returns every stored post in natural order.
func (r *blogRepository) ListAllBlogs(ctx context.Context) ([]models.Blog, error) {
	query, args, err := selectBlogs().ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building sql query: %w", err)
	}

	return r.queryBlogs(ctx, query, args...)
}

// ListBlogsWithAuthors returns every post joined with its owner, plus a
// mapping from owner IDs to owner emails for attribution on the author view.
func (r *blogRepository) ListBlogsWithAuthors(ctx context.Context) ([]models.Blog, map[int64]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectBlogsWithAuthors().ToSql()
	if err != nil {
		return nil, nil, fmt.Errorf("error building sql query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.ListBlogsWithAuthors").Msg("error executing query")
		return nil, nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var blogs []models.Blog
	authors := make(map[int64]string)
	for rows.Next() {
		var b models.Blog
		var email string
		if err := rows.Scan(&b.BlogID, &b.Title, &b.Body, &b.PubDate, &b.OwnerID, &email); err != nil {
			log.Err(err).Str("func", "*blogRepository.ListBlogsWithAuthors").Msg("error: scanning error")
			return nil, nil, err
		}
		blogs = append(blogs, b)
		authors[b.OwnerID] = email
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return blogs, authors, nil
}

// queryBlogs runs a listing query and scans the result rows.
func (r *blogRepository) queryBlogs(ctx context.Context, query string, args ...any) ([]models.Blog, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.queryBlogs").Msg("error executing query")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var blogs []models.Blog
	for rows.Next() {
		var b models.Blog
		if err := rows.Scan(&b.BlogID, &b.Title, &b.Body, &b.PubDate, &b.OwnerID); err != nil {
			log.Err(err).Str("func", "*blogRepository.queryBlogs").Msg("error: scanning error")
			return nil, err
		}
		blogs = append(blogs, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return blogs, nil
}
