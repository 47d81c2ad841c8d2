// Package handler implements the HTTP surface of the share gallery.
// All handlers are methods on Server. Methods are split into domain-specific
// files (share.go, gallery.go, etc.) but all share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/zvz09/2025-blog-public/internal/domain"
	"github.com/zvz09/2025-blog-public/internal/gallery"
)

// ShareServicer defines the business operations the share handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the database or service layer.
type ShareServicer interface {
	Find(ctx context.Context, term, tag string, engine gallery.Engine, p domain.PaginationParams) ([]domain.Share, int, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Share, error)
	Create(ctx context.Context, share domain.Share) (domain.Share, error)
	Dispatch(ctx context.Context, cmd domain.Command) (domain.Share, error)
	Gallery(ctx context.Context, state gallery.State) (gallery.View, error)
}

// TagServicer lists tags in use.
type TagServicer interface {
	List(ctx context.Context) ([]domain.TagCount, error)
}

// LogoServicer loads stored logos.
type LogoServicer interface {
	Get(ctx context.Context, id uuid.UUID) (domain.Logo, error)
}

// ExportServicer produces the flat export table.
type ExportServicer interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// GalleryRenderer writes the HTML page for a gallery view.
type GalleryRenderer interface {
	RenderGallery(w io.Writer, v gallery.View) error
}

// Server holds the dependencies of every handler.
type Server struct {
	shares  ShareServicer
	tags    TagServicer
	logos   LogoServicer
	export  ExportServicer
	pages   GalleryRenderer
	openAPI []byte
	log     *slog.Logger
}

// Deps groups the collaborators passed to NewServer.
// Leave a field nil when the routes using it are not exercised (tests).
type Deps struct {
	Shares  ShareServicer
	Tags    TagServicer
	Logos   LogoServicer
	Export  ExportServicer
	Pages   GalleryRenderer
	OpenAPI []byte
	Logger  *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(d Deps) *Server {
	log := d.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		shares:  d.Shares,
		tags:    d.Tags,
		logos:   d.Logos,
		export:  d.Export,
		pages:   d.Pages,
		openAPI: d.OpenAPI,
		log:     log,
	}
}

// Handler returns the router for every endpoint. The writeLimits middleware
// wraps only the routes that change data or leave the site.
func (s *Server) Handler(writeLimits ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.getHealth)
	r.Get("/openapi.yaml", s.getOpenAPI)

	r.Get("/", s.getGallery)
	r.Get("/tags", s.listTags)
	r.Get("/logos/{id}", s.getLogo)
	r.Get("/export", s.getExport)
	r.Get("/shares", s.listShares)
	r.Get("/shares/{id}", s.getShare)
	r.Get("/shares/{id}/open", s.openShare)
	r.Get("/search", s.search)

	r.Group(func(r chi.Router) {
		r.Use(writeLimits...)
		r.Post("/", s.submitSearch)
		r.Post("/shares", s.createShare)
		r.Patch("/shares/{id}", s.patchShare)
		r.Delete("/shares/{id}", s.deleteShare)
		r.Post("/shares/{id}/edit", s.submitEdit)
		r.Post("/shares/{id}/delete", s.submitDelete)
	})

	return r
}

// getHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) getHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// getOpenAPI handles GET /openapi.yaml.
func (s *Server) getOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(s.openAPI)
}
