package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withSession)

	// routes on the public allow-list
	router.Group(func(r chi.Router) {
		r.Get("/login", h.loginForm)
		r.Post("/login", h.login)
		r.Get("/register", h.registerForm)
		r.Post("/register", h.register)
		r.Get("/index", h.index)
		r.Get("/blog", h.blog)
		r.Get("/single_user", h.singleUser)
		r.Get("/single", h.single)
		r.Get("/health", h.health)
	})

	// every other route requires an active session; the gate redirects
	// anonymous clients to /index before the handler runs
	router.Group(func(r chi.Router) {
		r.Use(h.requireSession)
		r.Get("/", h.home)
		r.Get("/new-post", h.newPostForm)
		r.Post("/new-post", h.newPost)
		r.Get("/logout", h.logout)
		r.Post("/logout", h.logout)
	})

	return router
}
