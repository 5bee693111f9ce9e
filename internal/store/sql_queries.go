package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (email, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, password_hash, created_at
    FROM users
    WHERE user_id = $1;`

	createBlog = `INSERT INTO blogs (title, body, pub_date, owner_id)
    VALUES ($1, $2, $3, $4)
    RETURNING blog_id, title, body, pub_date, owner_id;`

	findBlogByID = `SELECT blog_id, title, body, pub_date, owner_id
    FROM blogs
    WHERE blog_id = $1;`

	createSession = `INSERT INTO sessions (token, email, created_at, expires_at)
    VALUES ($1, $2, $3, $4);`

	findSessionByToken = `SELECT token, email, created_at, expires_at
    FROM sessions
    WHERE token = $1 AND expires_at > $2;`

	deleteSession = `DELETE FROM sessions
    WHERE token = $1;`

	deleteExpiredSessions = `DELETE FROM sessions
    WHERE expires_at <= $1;`
)

// psql is the shared builder for the listing queries whose shape varies by
// filter. Both supported engines accept $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// selectUsers lists all users in insertion order.
func selectUsers() sq.SelectBuilder {
	return psql.
		Select("user_id", "email", "password_hash", "created_at").
		From("users").
		OrderBy("user_id")
}

// selectBlogs is the base listing query over the blogs table.
func selectBlogs() sq.SelectBuilder {
	return psql.
		Select("blog_id", "title", "body", "pub_date", "owner_id").
		From("blogs")
}

// selectBlogsByOwner lists one owner's posts, most recent first.
func selectBlogsByOwner(ownerID int64) sq.SelectBuilder {
	return selectBlogs().
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("pub_date DESC")
}

// selectBlogsWithAuthors joins every post with its owner's email for the
// public author view.
func selectBlogsWithAuthors() sq.SelectBuilder {
	return psql.
		Select("b.blog_id", "b.title", "b.body", "b.pub_date", "b.owner_id", "u.email").
		From("blogs b").
		Join("users u ON b.owner_id = u.user_id")
}
