package handler

import "net/http"

// listTags handles GET /tags.
// Tags come in gallery order, each with the number of shares carrying it.
func (s *Server) listTags(w http.ResponseWriter, r *http.Request) {
	tags, err := s.tags.List(r.Context())
	if err != nil {
		s.serviceError(w, r, err, "tags not found")
		return
	}
	writeJSON(w, http.StatusOK, tags)
}
