// SPDX-License-Identifier: Apache-2.0

package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"blogz/internal/logger"
	"blogz/internal/store"
	"blogz/internal/utils"
	"blogz/internal/validators"
	"blogz/models"
)

// home lists the authenticated user's own posts, most recent first. The gate
// guarantees a session email is present before this handler runs.
func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	email, _ := utils.GetSessionEmailFromContext(ctx)

	blogs, err := h.services.BlogService.OwnerBlogs(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("home listing failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.ViewResponse{
		View:          models.ViewHome,
		Authenticated: true,
		Blogs:         blogs,
	}, http.StatusOK)
}

// index is the public landing page: every registered user, for navigation to
// each author's public posts.
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.BlogService.AllUsers(ctx)
	if err != nil {
		log.Err(err).Msg("user listing failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	_, authenticated := utils.GetSessionEmailFromContext(ctx)
	utils.WriteJSON(w, models.ViewResponse{
		View:          models.ViewIndex,
		Authenticated: authenticated,
		Users:         users,
	}, http.StatusOK)
}

// blog is the public post listing. With an id query parameter it renders the
// author view: every post joined with its owner's email for attribution.
// Without one it renders a plain listing of every post.
func (h *Handler) blog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	_, authenticated := utils.GetSessionEmailFromContext(ctx)

	if r.URL.Query().Get("id") != "" {
		blogs, authors, err := h.services.BlogService.AuthorView(ctx)
		if err != nil {
			log.Err(err).Msg("author view failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		utils.WriteJSON(w, models.ViewResponse{
			View:          models.ViewBlog,
			Authenticated: authenticated,
			Blogs:         blogs,
			Authors:       authors,
		}, http.StatusOK)
		return
	}

	blogs, err := h.services.BlogService.AllBlogs(ctx)
	if err != nil {
		log.Err(err).Msg("post listing failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.ViewResponse{
		View:          models.ViewBlog,
		Authenticated: authenticated,
		Blogs:         blogs,
	}, http.StatusOK)
}

// singleUser lists one owner's public posts by the id query parameter.
func (h *Handler) singleUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, err := idParam(r)
	if err != nil {
		h.notFound(w, r)
		return
	}

	blogs, err := h.services.BlogService.BlogsByOwnerID(ctx, ownerID)
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("owner listing failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	_, authenticated := utils.GetSessionEmailFromContext(ctx)
	utils.WriteJSON(w, models.ViewResponse{
		View:          models.ViewSingleUser,
		Authenticated: authenticated,
		Blogs:         blogs,
	}, http.StatusOK)
}

// single resolves one post by the id query parameter and renders it with its
// author attribution. A missing, malformed or unknown id renders the
// not-found view rather than faulting.
func (h *Handler) single(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idParam(r)
	if err != nil {
		h.notFound(w, r)
		return
	}

	blog, authors, err := h.services.BlogService.BlogByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrBlogNotFound) {
			h.notFound(w, r)
			return
		}
		log.Err(err).Int64("id", id).Msg("post lookup failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	_, authenticated := utils.GetSessionEmailFromContext(ctx)
	utils.WriteJSON(w, models.ViewResponse{
		View:          models.ViewSingle,
		Authenticated: authenticated,
		Blog:          &blog,
		Authors:       authors,
	}, http.StatusOK)
}

func (h *Handler) newPostForm(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ViewResponse{
		View:          models.ViewNewPost,
		Authenticated: true,
	}, http.StatusOK)
}

// newPost creates a post owned by the authenticated user and redirects to
// its single-post view. Empty title or body re-presents the form with a
// flashed message and the submitted fields.
func (h *Handler) newPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("malformed post form")
		http.Error(w, "malformed form submission", http.StatusBadRequest)
		return
	}

	title := r.PostFormValue("title")
	body := r.PostFormValue("body")
	email, _ := utils.GetSessionEmailFromContext(ctx)

	blog, err := h.services.BlogService.CreateBlog(ctx, title, body, email)
	if err != nil {
		switch {
		case errors.Is(err, validators.ErrEmptyTitle):
			h.newPostFlash(w, title, body, "a post needs a title")
			return
		case errors.Is(err, validators.ErrEmptyBody):
			h.newPostFlash(w, title, body, "a post needs a body")
			return
		default:
			log.Err(err).Str("email", email).Msg("post creation failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	http.Redirect(w, r, fmt.Sprintf("/single?id=%d", blog.BlogID), http.StatusSeeOther)
}

// newPostFlash re-presents the new-post form with the rejected fields.
func (h *Handler) newPostFlash(w http.ResponseWriter, title, body, flash string) {
	utils.WriteJSON(w, models.ViewResponse{
		View:          models.ViewNewPost,
		Authenticated: true,
		Flash:         flash,
		Form:          map[string]string{"title": title, "body": body},
	}, http.StatusBadRequest)
}

// notFound renders the explicit not-found view.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	_, authenticated := utils.GetSessionEmailFromContext(r.Context())
	utils.WriteJSON(w, models.ViewResponse{
		View:          models.ViewNotFound,
		Authenticated: authenticated,
	}, http.StatusNotFound)
}

// idParam parses the numeric id query parameter.
func idParam(r *http.Request) (int64, error) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		return 0, errors.New("missing id parameter")
	}
	return strconv.ParseInt(raw, 10, 64)
}
