package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/zvz09/2025-blog-public/internal/domain"
	"github.com/zvz09/2025-blog-public/internal/gallery"
)

// shareRequest is the body of POST /shares.
type shareRequest struct {
	Name        string   `json:"name"`
	Logo        string   `json:"logo"`
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Stars       int      `json:"stars"`
}

// patchRequest is the body of PATCH /shares/{id}. Absent fields are left alone.
type patchRequest struct {
	Name        *string          `json:"name"`
	URL         *string          `json:"url"`
	Description *string          `json:"description"`
	Logo        *domain.LogoItem `json:"logo"`
}

// Pagination is the paging metadata of a list response.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// ShareList is the body of GET /shares.
type ShareList struct {
	Data       []domain.Share `json:"data"`
	Pagination Pagination     `json:"pagination"`
}

// listShares handles GET /shares.
// Supports ?q=, ?tag= and ?engine= with the gallery's filter semantics, plus
// ?page= and ?limit= (defaults: page=1, limit=20, max=100). A missing tag
// means every tag.
func (s *Server) listShares(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := optionalInt(q.Get("page"))
	if err != nil {
		badRequest(w, "page must be an integer")
		return
	}
	limit, err := optionalInt(q.Get("limit"))
	if err != nil {
		badRequest(w, "limit must be an integer")
		return
	}
	params := domain.NewPaginationParams(page, limit)

	tag := q.Get("tag")
	if tag == "" {
		tag = gallery.AllTagsValue
	}
	engine := gallery.Engine(q.Get("engine"))
	if engine == "" {
		engine = gallery.EngineLocal
	}

	shares, total, err := s.shares.Find(r.Context(), q.Get("q"), tag, engine, params)
	if err != nil {
		s.serviceError(w, r, err, "shares not found")
		return
	}
	writeJSON(w, http.StatusOK, ShareList{
		Data:       shares,
		Pagination: Pagination{Page: params.Page, Limit: params.Limit, Total: total},
	})
}

// createShare handles POST /shares.
func (s *Server) createShare(w http.ResponseWriter, r *http.Request) {
	var req shareRequest
	if !decodeBody(w, r, &req) {
		return
	}

	created, err := s.shares.Create(r.Context(), domain.Share{
		Name:        req.Name,
		Logo:        req.Logo,
		URL:         req.URL,
		Description: req.Description,
		Tags:        req.Tags,
		Stars:       req.Stars,
	})
	if err != nil {
		s.serviceError(w, r, err, "share not found")
		return
	}
	w.Header().Set("Location", "/shares/"+created.ID.String())
	writeJSON(w, http.StatusCreated, created)
}

// getShare handles GET /shares/{id}.
func (s *Server) getShare(w http.ResponseWriter, r *http.Request) {
	share, ok := s.loadShare(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, share)
}

// patchShare handles PATCH /shares/{id}.
//
// The body is replayed through a gallery.EditSession on the stored share:
// name, url and description changes first, then the logo.
func (s *Server) patchShare(w http.ResponseWriter, r *http.Request) {
	var req patchRequest
	if !decodeBody(w, r, &req) {
		return
	}

	current, ok := s.loadShare(w, r)
	if !ok {
		return
	}

	cmd, changed, err := replayEdits(current, []fieldEdit{
		{gallery.FieldName, req.Name},
		{gallery.FieldURL, req.URL},
		{gallery.FieldDescription, req.Description},
	}, req.Logo)
	if err != nil {
		s.serviceError(w, r, err, "share not found")
		return
	}
	if !changed {
		badRequest(w, "no changes")
		return
	}

	updated, err := s.shares.Dispatch(r.Context(), cmd)
	if err != nil {
		s.serviceError(w, r, err, "share not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// fieldEdit is one requested field change. A nil value leaves the field alone.
type fieldEdit struct {
	field gallery.Field
	value *string
}

// replayEdits runs edits and then logo through a gallery.EditSession on
// current. Each step yields a command carrying the whole merged share, so
// only the last one is returned. changed is false when nothing applied.
func replayEdits(current domain.Share, edits []fieldEdit, logo *domain.LogoItem) (cmd domain.Command, changed bool, err error) {
	session := gallery.NewEditSession(current)
	session.Begin()
	for _, e := range edits {
		if e.value == nil {
			continue
		}
		cmd, err = session.ChangeField(e.field, *e.value)
		if err != nil {
			return domain.Command{}, false, err
		}
		changed = true
	}
	if logo != nil {
		cmd, changed = session.SubmitLogo(*logo), true
	}
	session.Done()
	return cmd, changed, nil
}

// deleteShare handles DELETE /shares/{id}.
func (s *Server) deleteShare(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "share not found")
	if !ok {
		return
	}
	session := gallery.NewEditSession(domain.Share{ID: id})
	if _, err := s.shares.Dispatch(r.Context(), session.Delete()); err != nil {
		s.serviceError(w, r, err, "share not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// openShare handles GET /shares/{id}/open, the card click.
// It redirects to the normalized share URL. A share with a blank URL, or a
// request made in edit mode (?edit=1), does not navigate and gets 204.
func (s *Server) openShare(w http.ResponseWriter, r *http.Request) {
	share, ok := s.loadShare(w, r)
	if !ok {
		return
	}
	if gallery.StateFromQuery(r.URL.Query()).EditMode || share.URL == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, gallery.NormalizeURL(share.URL), http.StatusFound)
}

// loadShare resolves the {id} path parameter to a stored share, writing the
// error response itself when that fails.
func (s *Server) loadShare(w http.ResponseWriter, r *http.Request) (domain.Share, bool) {
	id, ok := pathID(w, r, "share not found")
	if !ok {
		return domain.Share{}, false
	}
	share, err := s.shares.Get(r.Context(), id)
	if err != nil {
		s.serviceError(w, r, err, "share not found")
		return domain.Share{}, false
	}
	return share, true
}

// pathID parses the {id} path parameter. A malformed ID cannot name an
// existing resource, so it is answered with 404.
func pathID(w http.ResponseWriter, r *http.Request, notFoundMsg string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		notFound(w, notFoundMsg)
		return uuid.Nil, false
	}
	return id, true
}

// decodeBody decodes a JSON request body into v, writing 413 or 422 itself
// when the body is too large or malformed.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request_too_large", "request body too large")
			return false
		}
		badRequest(w, "invalid request body")
		return false
	}
	return true
}

func optionalInt(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
