package validators

import "errors"

// Sentinel errors returned by post-field validation. Callers match them with
// [errors.Is] and translate them into user-visible flash messages.
var (
	// ErrEmptyTitle is returned when a post is submitted without a title.
	ErrEmptyTitle = errors.New("post title is empty")

	// ErrEmptyBody is returned when a post is submitted without content.
	ErrEmptyBody = errors.New("post body is empty")
)
