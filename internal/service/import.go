package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/zvz09/2025-blog-public/internal/domain"
)

// ImportResult counts what an import changed.
type ImportResult struct {
	Created int
	Updated int
}

// Import upserts shares by URL: a share whose URL already exists overwrites
// that record, any other share is created. Shares are processed in order and
// the first failure stops the import; earlier writes are kept.
func (s *ShareService) Import(ctx context.Context, shares []domain.Share) (ImportResult, error) {
	var res ImportResult
	for i, in := range shares {
		in = normalizeShare(in)
		if err := validateShare(in); err != nil {
			return res, fmt.Errorf("service.ShareService.Import: item %d: %w", i, err)
		}

		existing, err := s.shares.GetByURL(ctx, in.URL)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			if _, err := s.shares.Create(ctx, in); err != nil {
				return res, fmt.Errorf("service.ShareService.Import: item %d: %w", i, err)
			}
			res.Created++
		case err != nil:
			return res, fmt.Errorf("service.ShareService.Import: item %d: %w", i, err)
		default:
			in.ID = existing.ID
			if _, err := s.shares.Update(ctx, in); err != nil {
				return res, fmt.Errorf("service.ShareService.Import: item %d: %w", i, err)
			}
			res.Updated++
		}
	}
	return res, nil
}
