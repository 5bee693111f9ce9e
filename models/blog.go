package models

import "time"

// Blog represents a single published post. A post always belongs to exactly
// one owning User, fixed at creation time.
type Blog struct {
	// BlogID is the internal unique identifier of the post,
	// assigned by the database on creation.
	BlogID int64 `json:"id"`

	// Title is the post headline. Required to be non-empty on creation.
	Title string `json:"title"`

	// Body is the post content. Required to be non-empty on creation.
	Body string `json:"body"`

	// PubDate is the publication timestamp in UTC. When the caller leaves it
	// zero, the store assigns the current UTC time on insert.
	PubDate time.Time `json:"pub_date"`

	// OwnerID references the authoring User. The owner must exist at
	// creation time; it is the currently authenticated user.
	OwnerID int64 `json:"owner_id"`
}

// TableName returns the name of the database table
// associated with the Blog model.
func (b Blog) TableName() string {
	return "blogs"
}
