package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/zvz09/2025-blog-public/internal/domain"
)

// LogoRepo stores uploaded logo images.
type LogoRepo interface {
	// Create stores a logo blob and returns it with its generated ID.
	Create(ctx context.Context, contentType string, data []byte) (domain.Logo, error)

	// Get retrieves a logo by ID. Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id uuid.UUID) (domain.Logo, error)
}

// pgLogoRepo is the Postgres implementation of LogoRepo.
type pgLogoRepo struct {
	db db
}

// NewLogoRepo constructs a LogoRepo backed by the provided db connection.
func NewLogoRepo(db db) LogoRepo {
	return &pgLogoRepo{db: db}
}

// Create inserts a logo row.
func (r *pgLogoRepo) Create(ctx context.Context, contentType string, data []byte) (domain.Logo, error) {
	const q = `
		INSERT INTO logos (content_type, data)
		VALUES (@content_type, @data)
		RETURNING id, content_type, data, created_at`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"content_type": contentType, "data": data})
	result, err := scanLogo(row)
	if err != nil {
		return domain.Logo{}, fmt.Errorf("repo.LogoRepo.Create: %w", err)
	}
	return result, nil
}

// Get retrieves a logo by primary key.
func (r *pgLogoRepo) Get(ctx context.Context, id uuid.UUID) (domain.Logo, error) {
	const q = `
		SELECT id, content_type, data, created_at
		FROM logos
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanLogo(row)
	if err != nil {
		return domain.Logo{}, fmt.Errorf("repo.LogoRepo.Get: %w", err)
	}
	return result, nil
}

func scanLogo(s scanner) (domain.Logo, error) {
	var (
		l  domain.Logo
		id pgtype.UUID
	)
	if err := s.Scan(&id, &l.ContentType, &l.Data, &l.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Logo{}, domain.ErrNotFound
		}
		return domain.Logo{}, err
	}
	l.ID = uuid.UUID(id.Bytes)
	return l, nil
}
