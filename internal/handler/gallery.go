package handler

import (
	"bytes"
	"net/http"
	"net/url"
	"strings"

	"github.com/zvz09/2025-blog-public/internal/domain"
	"github.com/zvz09/2025-blog-public/internal/gallery"
)

// getGallery handles GET /, the HTML gallery.
// The view state comes from the query string: tag, q, engine, edit, menu.
func (s *Server) getGallery(w http.ResponseWriter, r *http.Request) {
	state := gallery.StateFromQuery(r.URL.Query())
	view, err := s.shares.Gallery(r.Context(), state)
	if err != nil {
		s.serviceError(w, r, err, "gallery not found")
		return
	}

	var buf bytes.Buffer
	if err := s.pages.RenderGallery(&buf, view); err != nil {
		s.serviceError(w, r, err, "gallery not found")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// submitSearch handles POST /, the search form.
// With a web engine and a non-blank term it redirects to the engine's search
// page. Otherwise it redirects back to the gallery filtered by the term.
func (s *Server) submitSearch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		badRequest(w, "invalid form")
		return
	}
	state := gallery.StateFromQuery(r.PostForm)
	state.DropdownOpen = false

	if target, ok := gallery.WebSearchURL(state.Engine, state.Term); ok {
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, state.Href(), http.StatusSeeOther)
}

// search handles GET /search?engine=&q=.
// It redirects to the engine's search page, or answers 204 when the engine is
// local or unknown or the term is blank.
func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	target, ok := gallery.WebSearchURL(gallery.Engine(q.Get("engine")), q.Get("q"))
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// submitEdit handles POST /shares/{id}/edit, the inline card form.
// Posted name, url and description values that differ from the stored share
// are applied as PATCH /shares/{id} would apply them. A non-blank logo that
// differs is submitted as a URL logo; a blank one keeps the current logo.
// It redirects back to the gallery with the card closed.
func (s *Server) submitEdit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		badRequest(w, "invalid form")
		return
	}
	current, ok := s.loadShare(w, r)
	if !ok {
		return
	}

	changedValue := func(key, stored string) *string {
		if _, posted := r.PostForm[key]; !posted {
			return nil
		}
		v := r.PostForm.Get(key)
		if v == stored {
			return nil
		}
		return &v
	}
	var logo *domain.LogoItem
	if v := strings.TrimSpace(r.PostForm.Get("logo")); v != "" && v != current.Logo {
		logo = &domain.LogoItem{Type: domain.LogoTypeURL, URL: v}
	}

	cmd, changed, err := replayEdits(current, []fieldEdit{
		{gallery.FieldName, changedValue("name", current.Name)},
		{gallery.FieldURL, changedValue("url", current.URL)},
		{gallery.FieldDescription, changedValue("description", current.Description)},
	}, logo)
	if err != nil {
		s.serviceError(w, r, err, "share not found")
		return
	}
	if changed {
		if _, err := s.shares.Dispatch(r.Context(), cmd); err != nil {
			s.serviceError(w, r, err, "share not found")
			return
		}
	}
	http.Redirect(w, r, galleryReturn(r.PostForm), http.StatusSeeOther)
}

// submitDelete handles POST /shares/{id}/delete, the delete button of a card
// in edit mode. It redirects back to the gallery.
func (s *Server) submitDelete(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		badRequest(w, "invalid form")
		return
	}
	id, ok := pathID(w, r, "share not found")
	if !ok {
		return
	}
	session := gallery.NewEditSession(domain.Share{ID: id})
	if _, err := s.shares.Dispatch(r.Context(), session.Delete()); err != nil {
		s.serviceError(w, r, err, "share not found")
		return
	}
	http.Redirect(w, r, galleryReturn(r.PostForm), http.StatusSeeOther)
}

// galleryReturn is the gallery link a card form redirects to: the posted
// state with the dropdown and the edited card closed.
func galleryReturn(form url.Values) string {
	state := gallery.StateFromQuery(form)
	state.DropdownOpen = false
	state.Editing = ""
	return state.Href()
}
