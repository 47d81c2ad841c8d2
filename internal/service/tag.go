package service

import (
	"context"
	"fmt"

	"github.com/zvz09/2025-blog-public/internal/domain"
	"github.com/zvz09/2025-blog-public/internal/repo"
)

// TagService exposes the tags in use across the gallery.
type TagService struct {
	tags repo.TagRepo
}

// NewTagService constructs a TagService backed by the provided TagRepo.
func NewTagService(tags repo.TagRepo) *TagService {
	return &TagService{tags: tags}
}

// List returns every tag in use with its share count, in gallery order.
// Always returns a non-nil slice.
func (s *TagService) List(ctx context.Context) ([]domain.TagCount, error) {
	counts, err := s.tags.ListCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TagService.List: %w", err)
	}
	if counts == nil {
		return []domain.TagCount{}, nil
	}
	return counts, nil
}
