package handler_test

import (
	"context"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/zvz09/2025-blog-public/internal/domain"
	"github.com/zvz09/2025-blog-public/internal/gallery"
	"github.com/zvz09/2025-blog-public/internal/handler"
	"github.com/zvz09/2025-blog-public/internal/web"
)

// ---- mock ShareServicer ----------------------------------------------------

// mockShareServicer is a test double for handler.ShareServicer.
// Set only the method fields your test needs.
type mockShareServicer struct {
	find     func(ctx context.Context, term, tag string, engine gallery.Engine, p domain.PaginationParams) ([]domain.Share, int, error)
	get      func(ctx context.Context, id uuid.UUID) (domain.Share, error)
	create   func(ctx context.Context, s domain.Share) (domain.Share, error)
	dispatch func(ctx context.Context, cmd domain.Command) (domain.Share, error)
	gallery  func(ctx context.Context, st gallery.State) (gallery.View, error)
}

func (m *mockShareServicer) Find(ctx context.Context, term, tag string, engine gallery.Engine, p domain.PaginationParams) ([]domain.Share, int, error) {
	return m.find(ctx, term, tag, engine, p)
}
func (m *mockShareServicer) Get(ctx context.Context, id uuid.UUID) (domain.Share, error) {
	return m.get(ctx, id)
}
func (m *mockShareServicer) Create(ctx context.Context, s domain.Share) (domain.Share, error) {
	return m.create(ctx, s)
}
func (m *mockShareServicer) Dispatch(ctx context.Context, cmd domain.Command) (domain.Share, error) {
	return m.dispatch(ctx, cmd)
}
func (m *mockShareServicer) Gallery(ctx context.Context, st gallery.State) (gallery.View, error) {
	return m.gallery(ctx, st)
}

// ---- mock TagServicer ------------------------------------------------------

type mockTagServicer struct {
	list func(ctx context.Context) ([]domain.TagCount, error)
}

func (m *mockTagServicer) List(ctx context.Context) ([]domain.TagCount, error) {
	return m.list(ctx)
}

// ---- mock LogoServicer -----------------------------------------------------

type mockLogoServicer struct {
	get func(ctx context.Context, id uuid.UUID) (domain.Logo, error)
}

func (m *mockLogoServicer) Get(ctx context.Context, id uuid.UUID) (domain.Logo, error) {
	return m.get(ctx, id)
}

// ---- mock ExportServicer ---------------------------------------------------

type mockExportServicer struct {
	export func(ctx context.Context) ([]domain.ExportRow, error)
}

func (m *mockExportServicer) Export(ctx context.Context) ([]domain.ExportRow, error) {
	return m.export(ctx)
}

// ---- mock GalleryRenderer --------------------------------------------------

type mockRenderer struct {
	render func(w io.Writer, v gallery.View) error
}

func (m *mockRenderer) RenderGallery(w io.Writer, v gallery.View) error {
	return m.render(w, v)
}

// compile-time checks: mocks must satisfy the handler interfaces.
var (
	_ handler.ShareServicer   = (*mockShareServicer)(nil)
	_ handler.TagServicer     = (*mockTagServicer)(nil)
	_ handler.LogoServicer    = (*mockLogoServicer)(nil)
	_ handler.ExportServicer  = (*mockExportServicer)(nil)
	_ handler.GalleryRenderer = (*mockRenderer)(nil)
	_ handler.GalleryRenderer = (*web.Renderer)(nil)
)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server from deps and returns its router.
func newHTTPHandler(d handler.Deps, writeLimits ...func(http.Handler) http.Handler) http.Handler {
	return handler.NewServer(d).Handler(writeLimits...)
}

func shareFixture() domain.Share {
	return domain.Share{
		ID:          uuid.New(),
		Name:        "GitHub",
		URL:         "github.com",
		Description: "Where code lives",
		Tags:        []string{"dev"},
		Stars:       4,
	}
}

// getter returns a mock whose Get yields s for its own ID and ErrNotFound otherwise.
func getter(s domain.Share) func(context.Context, uuid.UUID) (domain.Share, error) {
	return func(_ context.Context, id uuid.UUID) (domain.Share, error) {
		if id != s.ID {
			return domain.Share{}, domain.ErrNotFound
		}
		return s, nil
	}
}
