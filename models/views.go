package models

// View identifiers returned to the presentation layer. HTML rendering is
// outside this service; a template layer consumes the view name plus the
// bound data carried in the response.
const (
	ViewHome       = "home"
	ViewLogin      = "login"
	ViewRegister   = "register"
	ViewIndex      = "index"
	ViewBlog       = "blog"
	ViewSingle     = "single"
	ViewSingleUser = "single_user"
	ViewNewPost    = "new-post"
	ViewNotFound   = "not-found"
)

// ViewResponse is the envelope every rendered view is delivered in.
// Exactly one of the optional data fields is populated depending on the view.
type ViewResponse struct {
	// View names the template the presentation layer should render.
	View string `json:"view"`

	// Flash carries a one-time user-visible status or error message to be
	// surfaced on this render, e.g. a validation failure explanation.
	Flash string `json:"flash,omitempty"`

	// Authenticated reports whether the request carried an active session.
	Authenticated bool `json:"authenticated"`

	// Users is populated for the public index view (author navigation).
	Users []User `json:"users,omitempty"`

	// Blogs is populated for listing views (home, single_user, blog).
	Blogs []Blog `json:"blogs,omitempty"`

	// Blog is populated for the single-post view.
	Blog *Blog `json:"blog,omitempty"`

	// Authors maps owner IDs to owner emails for post attribution on the
	// author and single-post views.
	Authors map[int64]string `json:"authors,omitempty"`

	// Form echoes the submitted form values back when a validation failure
	// re-presents the originating form, so the client does not lose input.
	Form map[string]string `json:"form,omitempty"`
}
