package service

import (
	"context"
	"fmt"
	"time"

	"github.com/zvz09/2025-blog-public/internal/domain"
	"github.com/zvz09/2025-blog-public/internal/repo"
)

// ExportService assembles a flat export of every share.
type ExportService struct {
	shares repo.ShareRepo
}

// NewExportService constructs an ExportService backed by the provided repo.
func NewExportService(shares repo.ShareRepo) *ExportService {
	return &ExportService{shares: shares}
}

// Export returns one ExportRow per share in gallery order.
// Always returns a non-nil slice.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	shares, err := s.shares.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := make([]domain.ExportRow, 0, len(shares))
	for _, sh := range shares {
		tags := sh.Tags
		if tags == nil {
			tags = []string{}
		}
		rows = append(rows, domain.ExportRow{
			ID:          sh.ID.String(),
			Name:        sh.Name,
			URL:         sh.URL,
			Logo:        sh.Logo,
			Description: sh.Description,
			Tags:        tags,
			Stars:       sh.Stars,
			CreatedAt:   sh.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return rows, nil
}
