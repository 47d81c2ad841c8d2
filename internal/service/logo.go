package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/zvz09/2025-blog-public/internal/domain"
	"github.com/zvz09/2025-blog-public/internal/repo"
)

// LogoService serves uploaded logos.
type LogoService struct {
	logos repo.LogoRepo
}

// NewLogoService constructs a LogoService backed by the provided LogoRepo.
func NewLogoService(logos repo.LogoRepo) *LogoService {
	return &LogoService{logos: logos}
}

// Get returns a stored logo. Returns domain.ErrNotFound if it does not exist.
func (s *LogoService) Get(ctx context.Context, id uuid.UUID) (domain.Logo, error) {
	logo, err := s.logos.Get(ctx, id)
	if err != nil {
		return domain.Logo{}, fmt.Errorf("service.LogoService.Get: %w", err)
	}
	return logo, nil
}
