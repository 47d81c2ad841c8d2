// Package service contains the business logic for the share gallery.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/zvz09/2025-blog-public/internal/domain"
	"github.com/zvz09/2025-blog-public/internal/gallery"
	"github.com/zvz09/2025-blog-public/internal/repo"
)

// ShareService implements business logic for Share operations.
// It is the store that gallery commands are dispatched to; it holds the logo
// repo because an update may carry an uploaded logo that must be stored first.
type ShareService struct {
	shares repo.ShareRepo
	logos  repo.LogoRepo
}

// NewShareService constructs a ShareService backed by the provided repos.
func NewShareService(shares repo.ShareRepo, logos repo.LogoRepo) *ShareService {
	return &ShareService{shares: shares, logos: logos}
}

// List returns every share in gallery order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ShareService) List(ctx context.Context) ([]domain.Share, error) {
	shares, err := s.shares.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ShareService.List: %w", err)
	}
	if shares == nil {
		return []domain.Share{}, nil
	}
	return shares, nil
}

// Get returns a single share by ID.
// Returns domain.ErrNotFound if no share with that ID exists.
func (s *ShareService) Get(ctx context.Context, id uuid.UUID) (domain.Share, error) {
	result, err := s.shares.GetByID(ctx, id)
	if err != nil {
		return domain.Share{}, fmt.Errorf("service.ShareService.Get: %w", err)
	}
	return result, nil
}

// Find returns one page of the shares matching term, tag and engine, and
// the total number of matches. Matching is gallery.Filter's.
func (s *ShareService) Find(ctx context.Context, term, tag string, engine gallery.Engine, p domain.PaginationParams) ([]domain.Share, int, error) {
	all, err := s.shares.List(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("service.ShareService.Find: %w", err)
	}
	matched := gallery.Filter(all, term, tag, engine)
	start, end := p.Window(len(matched))
	return matched[start:end], len(matched), nil
}

// Gallery loads every share and builds the view for state.
func (s *ShareService) Gallery(ctx context.Context, state gallery.State) (gallery.View, error) {
	all, err := s.shares.List(ctx)
	if err != nil {
		return gallery.View{}, fmt.Errorf("service.ShareService.Gallery: %w", err)
	}
	return gallery.BuildView(all, state), nil
}

// Create validates and persists a new share.
// Returns domain.ErrValidation for invalid input and domain.ErrConflict if
// the URL is already shared.
func (s *ShareService) Create(ctx context.Context, share domain.Share) (domain.Share, error) {
	share = normalizeShare(share)
	if err := validateShare(share); err != nil {
		return domain.Share{}, err
	}
	result, err := s.shares.Create(ctx, share)
	if err != nil {
		return domain.Share{}, fmt.Errorf("service.ShareService.Create: %w", err)
	}
	return result, nil
}

// Dispatch applies a gallery command. For an update it returns the persisted
// share; for a delete it returns the zero Share.
//
// An update is addressed by cmd.Previous.ID. Its logo payload, when present,
// decides the stored logo reference: a URL logo is kept as is, an uploaded
// file is stored in the logo repo and referenced by its serving path.
func (s *ShareService) Dispatch(ctx context.Context, cmd domain.Command) (domain.Share, error) {
	switch cmd.Kind {
	case domain.CommandUpdate:
		return s.update(ctx, cmd)
	case domain.CommandDelete:
		if err := s.shares.Delete(ctx, cmd.Share.ID); err != nil {
			return domain.Share{}, fmt.Errorf("service.ShareService.Dispatch: %w", err)
		}
		return domain.Share{}, nil
	default:
		return domain.Share{}, fmt.Errorf("%w: unknown command %q", domain.ErrValidation, cmd.Kind)
	}
}

func (s *ShareService) update(ctx context.Context, cmd domain.Command) (domain.Share, error) {
	if cmd.Previous.ID == uuid.Nil {
		return domain.Share{}, fmt.Errorf("%w: previous share id is required", domain.ErrValidation)
	}
	updated := normalizeShare(cmd.Share)
	updated.ID = cmd.Previous.ID
	if err := validateShare(updated); err != nil {
		return domain.Share{}, err
	}

	if cmd.Logo != nil {
		logoRef, err := s.storeLogo(ctx, *cmd.Logo)
		if err != nil {
			return domain.Share{}, err
		}
		updated.Logo = logoRef
	}

	result, err := s.shares.Update(ctx, updated)
	if err != nil {
		return domain.Share{}, fmt.Errorf("service.ShareService.Dispatch: %w", err)
	}
	return result, nil
}

// storeLogo resolves a logo payload to the reference saved on the share.
func (s *ShareService) storeLogo(ctx context.Context, logo domain.LogoItem) (string, error) {
	switch logo.Type {
	case domain.LogoTypeURL:
		if strings.TrimSpace(logo.URL) == "" {
			return "", fmt.Errorf("%w: logo url is required", domain.ErrValidation)
		}
		return logo.URL, nil
	case domain.LogoTypeFile:
		if len(logo.Data) == 0 {
			return "", fmt.Errorf("%w: logo file is empty", domain.ErrValidation)
		}
		contentType := logo.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		stored, err := s.logos.Create(ctx, contentType, logo.Data)
		if err != nil {
			return "", fmt.Errorf("service.ShareService.storeLogo: %w", err)
		}
		return domain.LogoPath(stored.ID), nil
	default:
		return "", fmt.Errorf("%w: unknown logo type %q", domain.ErrValidation, logo.Type)
	}
}

// normalizeShare trims the URL and cleans the tag list: tags are trimmed,
// blanks dropped, and duplicates removed keeping the first occurrence.
// Name and description are kept verbatim; a blank name renders as "?".
func normalizeShare(share domain.Share) domain.Share {
	share.URL = strings.TrimSpace(share.URL)

	seen := make(map[string]struct{}, len(share.Tags))
	tags := make([]string, 0, len(share.Tags))
	for _, t := range share.Tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		tags = append(tags, t)
	}
	share.Tags = tags
	return share
}

// validateShare enforces business rules common to Create and Update.
//   - URL must be non-empty (it is the share's natural key).
//   - Tags must not use the reserved "all" selection value.
//   - Stars must not be negative.
func validateShare(share domain.Share) error {
	if share.URL == "" {
		return fmt.Errorf("%w: url is required", domain.ErrValidation)
	}
	for _, t := range share.Tags {
		if t == gallery.AllTagsValue {
			return fmt.Errorf("%w: tag %q is reserved", domain.ErrValidation, t)
		}
	}
	if share.Stars < 0 {
		return fmt.Errorf("%w: stars must not be negative", domain.ErrValidation)
	}
	return nil
}
