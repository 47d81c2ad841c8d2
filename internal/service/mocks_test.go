package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/zvz09/2025-blog-public/internal/domain"
	"github.com/zvz09/2025-blog-public/internal/repo"
)

// ---- mock ShareRepo --------------------------------------------------------

// mockShareRepo is a test double for repo.ShareRepo.
// Set only the method fields your test needs.
type mockShareRepo struct {
	create   func(ctx context.Context, s domain.Share) (domain.Share, error)
	getByID  func(ctx context.Context, id uuid.UUID) (domain.Share, error)
	getByURL func(ctx context.Context, url string) (domain.Share, error)
	list     func(ctx context.Context) ([]domain.Share, error)
	update   func(ctx context.Context, s domain.Share) (domain.Share, error)
	delete   func(ctx context.Context, id uuid.UUID) error
}

func (m *mockShareRepo) Create(ctx context.Context, s domain.Share) (domain.Share, error) {
	return m.create(ctx, s)
}
func (m *mockShareRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Share, error) {
	return m.getByID(ctx, id)
}
func (m *mockShareRepo) GetByURL(ctx context.Context, url string) (domain.Share, error) {
	return m.getByURL(ctx, url)
}
func (m *mockShareRepo) List(ctx context.Context) ([]domain.Share, error) {
	return m.list(ctx)
}
func (m *mockShareRepo) Update(ctx context.Context, s domain.Share) (domain.Share, error) {
	return m.update(ctx, s)
}
func (m *mockShareRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

// ---- mock TagRepo ----------------------------------------------------------

type mockTagRepo struct {
	listCounts func(ctx context.Context) ([]domain.TagCount, error)
}

func (m *mockTagRepo) ListCounts(ctx context.Context) ([]domain.TagCount, error) {
	return m.listCounts(ctx)
}

// ---- mock LogoRepo ---------------------------------------------------------

type mockLogoRepo struct {
	create func(ctx context.Context, contentType string, data []byte) (domain.Logo, error)
	get    func(ctx context.Context, id uuid.UUID) (domain.Logo, error)
}

func (m *mockLogoRepo) Create(ctx context.Context, contentType string, data []byte) (domain.Logo, error) {
	return m.create(ctx, contentType, data)
}
func (m *mockLogoRepo) Get(ctx context.Context, id uuid.UUID) (domain.Logo, error) {
	return m.get(ctx, id)
}

// compile-time checks
var (
	_ repo.ShareRepo = (*mockShareRepo)(nil)
	_ repo.TagRepo   = (*mockTagRepo)(nil)
	_ repo.LogoRepo  = (*mockLogoRepo)(nil)
)

func shareFixture() domain.Share {
	return domain.Share{
		ID:          uuid.New(),
		Name:        "GitHub",
		URL:         "github.com",
		Description: "Where code lives",
		Tags:        []string{"dev", "docs"},
		Stars:       5,
	}
}
