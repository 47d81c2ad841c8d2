package handler

import (
	"net/http"
	"strconv"
)

// getLogo handles GET /logos/{id} and serves the stored image bytes.
// Stored logos never change, so they may be cached indefinitely.
func (s *Server) getLogo(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "logo not found")
	if !ok {
		return
	}
	logo, err := s.logos.Get(r.Context(), id)
	if err != nil {
		s.serviceError(w, r, err, "logo not found")
		return
	}
	w.Header().Set("Content-Type", logo.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(logo.Data)))
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(logo.Data)
}
