package service

import (
	"context"
	"fmt"

	"blogz/internal/logger"
	"blogz/internal/store"
	"blogz/internal/validators"
	"blogz/models"
)

// blogService is the concrete implementation of BlogService.
type blogService struct {
	blogRepository store.BlogRepository
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewBlogService constructs a BlogService wired to the given repositories.
func NewBlogService(blogRepository store.BlogRepository, userRepository store.UserRepository, logger *logger.Logger) BlogService {
	return &blogService{
		blogRepository: blogRepository,
		userRepository: userRepository,
		logger:         logger,
	}
}

// CreateBlog validates the post fields, resolves the owner by ownerEmail and
// persists the post.
//
// Returns the persisted post (with a server-assigned BlogID and publication
// time) or:
//   - validators.ErrEmptyTitle / validators.ErrEmptyBody on a blank field.
//   - store.ErrNoUserWasFound if ownerEmail has no account.
//   - A wrapped storage error if persistence fails.
func (b *blogService) CreateBlog(ctx context.Context, title, body, ownerEmail string) (models.Blog, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateNewPost(title, body); err != nil {
		log.Error().Str("email", ownerEmail).Msg("new post rejected by validation")
		return models.Blog{}, err
	}

	owner, err := b.userRepository.FindUserByEmail(ctx, ownerEmail)
	if err != nil {
		log.Err(err).Str("email", ownerEmail).Msg("post owner lookup failed")
		return models.Blog{}, fmt.Errorf("post owner lookup failed: %w", err)
	}

	createdBlog, err := b.blogRepository.CreateBlog(ctx, models.Blog{
		Title:   title,
		Body:    body,
		OwnerID: owner.UserID,
	})
	if err != nil {
		log.Err(err).Int64("owner_id", owner.UserID).Msg("post creation ended with error")
		return models.Blog{}, fmt.Errorf("post creation ended with error: %w", err)
	}

	return createdBlog, nil
}

// OwnerBlogs lists the posts of the user identified by email, most recent
// first.
func (b *blogService) OwnerBlogs(ctx context.Context, email string) ([]models.Blog, error) {
	log := logger.FromContext(ctx)

	owner, err := b.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("owner lookup failed")
		return nil, fmt.Errorf("owner lookup failed: %w", err)
	}

	return b.BlogsByOwnerID(ctx, owner.UserID)
}

// BlogsByOwnerID lists the posts of one owner, most recent first.
func (b *blogService) BlogsByOwnerID(ctx context.Context, ownerID int64) ([]models.Blog, error) {
	log := logger.FromContext(ctx)

	blogs, err := b.blogRepository.ListBlogsByOwner(ctx, ownerID)
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("post listing by owner failed")
		return nil, fmt.Errorf("post listing by owner failed: %w", err)
	}

	return blogs, nil
}

// AllBlogs lists every stored post.
func (b *blogService) AllBlogs(ctx context.Context) ([]models.Blog, error) {
	log := logger.FromContext(ctx)

	blogs, err := b.blogRepository.ListAllBlogs(ctx)
	if err != nil {
		log.Err(err).Msg("post listing failed")
		return nil, fmt.Errorf("post listing failed: %w", err)
	}

	return blogs, nil
}

// AuthorView lists every post together with a map from owner IDs to owner
// emails, so callers can attribute each post without a second query.
func (b *blogService) AuthorView(ctx context.Context) ([]models.Blog, map[int64]string, error) {
	log := logger.FromContext(ctx)

	blogs, authors, err := b.blogRepository.ListBlogsWithAuthors(ctx)
	if err != nil {
		log.Err(err).Msg("post listing with authors failed")
		return nil, nil, fmt.Errorf("post listing with authors failed: %w", err)
	}

	return blogs, authors, nil
}

// BlogByID resolves a single post with its author attribution map.
//
// Returns store.ErrBlogNotFound (wrapped) when no post has the given id.
func (b *blogService) BlogByID(ctx context.Context, id int64) (models.Blog, map[int64]string, error) {
	log := logger.FromContext(ctx)

	blog, err := b.blogRepository.FindBlogByID(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("post lookup failed")
		return models.Blog{}, nil, fmt.Errorf("post lookup failed: %w", err)
	}

	owner, err := b.userRepository.FindUserByID(ctx, blog.OwnerID)
	if err != nil {
		log.Err(err).Int64("owner_id", blog.OwnerID).Msg("author resolution failed")
		return models.Blog{}, nil, fmt.Errorf("author resolution failed: %w", err)
	}

	return blog, map[int64]string{owner.UserID: owner.Email}, nil
}

// AllUsers lists every registered user.
func (b *blogService) AllUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users, err := b.userRepository.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("user listing failed")
		return nil, fmt.Errorf("user listing failed: %w", err)
	}

	return users, nil
}
