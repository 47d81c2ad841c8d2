// Package repo contains all database access logic for the share gallery.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/zvz09/2025-blog-public/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, *pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
// Begin on a pgx.Tx opens a savepoint, so multi-statement writes nest cleanly.
type db interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ShareRepo defines the persistence operations for Shares and their ordered tags.
// The service layer depends on this interface, not the concrete Postgres implementation,
// which allows the service to be unit-tested with a mock.
type ShareRepo interface {
	// Create inserts a new share with its tags and returns the persisted record
	// (with DB-generated id, created_at, and updated_at populated).
	// Returns domain.ErrConflict if another share already has the same URL.
	Create(ctx context.Context, share domain.Share) (domain.Share, error)

	// GetByID retrieves a single share by its UUID primary key.
	// Returns domain.ErrNotFound if no share with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Share, error)

	// GetByURL retrieves a single share by its exact URL.
	// Returns domain.ErrNotFound if no share has that URL.
	GetByURL(ctx context.Context, url string) (domain.Share, error)

	// List returns all shares in insertion order.
	List(ctx context.Context) ([]domain.Share, error)

	// Update overwrites the mutable fields of an existing share, replaces its
	// tag list, and returns the updated record.
	// Returns domain.ErrNotFound if no share with that ID exists.
	Update(ctx context.Context, share domain.Share) (domain.Share, error)

	// Delete removes a share by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgShareRepo is the Postgres implementation of ShareRepo.
type pgShareRepo struct {
	db db
}

// NewShareRepo constructs a ShareRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewShareRepo(db db) ShareRepo {
	return &pgShareRepo{db: db}
}

// selectShares is the shared projection for every read. Tags are aggregated
// in their per-share order; shares without tags get an empty array.
const selectShares = `
	SELECT s.id, s.name, s.logo, s.url, s.description, s.stars,
	       COALESCE(array_agg(t.name ORDER BY st.position) FILTER (WHERE t.name IS NOT NULL), '{}') AS tags,
	       s.created_at, s.updated_at
	FROM shares s
	LEFT JOIN share_tags st ON st.share_id = s.id
	LEFT JOIN tags t ON t.id = st.tag_id`

// Create inserts the share row and its tag links in one transaction.
func (r *pgShareRepo) Create(ctx context.Context, share domain.Share) (domain.Share, error) {
	const q = `
		INSERT INTO shares (name, logo, url, description, stars)
		VALUES (@name, @logo, @url, @description, @stars)
		RETURNING id, created_at, updated_at`

	var result domain.Share
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		var id pgtype.UUID
		args := pgx.NamedArgs{
			"name":        share.Name,
			"logo":        share.Logo,
			"url":         share.URL,
			"description": share.Description,
			"stars":       share.Stars,
		}
		if err := tx.QueryRow(ctx, q, args).Scan(&id, &share.CreatedAt, &share.UpdatedAt); err != nil {
			return mapWriteErr(err)
		}
		share.ID = uuid.UUID(id.Bytes)
		if err := replaceTags(ctx, tx, share.ID, share.Tags); err != nil {
			return err
		}
		result = share
		return nil
	})
	if err != nil {
		return domain.Share{}, fmt.Errorf("repo.ShareRepo.Create: %w", err)
	}
	if result.Tags == nil {
		result.Tags = []string{}
	}
	return result, nil
}

// GetByID retrieves a share by primary key.
func (r *pgShareRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Share, error) {
	const q = selectShares + `
		WHERE s.id = @id
		GROUP BY s.id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanShare(row)
	if err != nil {
		return domain.Share{}, fmt.Errorf("repo.ShareRepo.GetByID: %w", err)
	}
	return result, nil
}

// GetByURL retrieves a share by its unique URL.
func (r *pgShareRepo) GetByURL(ctx context.Context, url string) (domain.Share, error) {
	const q = selectShares + `
		WHERE s.url = @url
		GROUP BY s.id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"url": url})
	result, err := scanShare(row)
	if err != nil {
		return domain.Share{}, fmt.Errorf("repo.ShareRepo.GetByURL: %w", err)
	}
	return result, nil
}

// List returns all shares ordered by insertion position.
func (r *pgShareRepo) List(ctx context.Context) ([]domain.Share, error) {
	const q = selectShares + `
		GROUP BY s.id
		ORDER BY s.position`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.ShareRepo.List: %w", err)
	}
	defer rows.Close()

	shares := []domain.Share{}
	for rows.Next() {
		s, err := scanShare(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ShareRepo.List: scan: %w", err)
		}
		shares = append(shares, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ShareRepo.List: rows: %w", err)
	}
	return shares, nil
}

// Update overwrites the mutable fields and the tag list of a share.
func (r *pgShareRepo) Update(ctx context.Context, share domain.Share) (domain.Share, error) {
	const q = `
		UPDATE shares
		SET name        = @name,
		    logo        = @logo,
		    url         = @url,
		    description = @description,
		    stars       = @stars,
		    updated_at  = now()
		WHERE id = @id
		RETURNING created_at, updated_at`

	var result domain.Share
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		args := pgx.NamedArgs{
			"id":          share.ID,
			"name":        share.Name,
			"logo":        share.Logo,
			"url":         share.URL,
			"description": share.Description,
			"stars":       share.Stars,
		}
		if err := tx.QueryRow(ctx, q, args).Scan(&share.CreatedAt, &share.UpdatedAt); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrNotFound
			}
			return mapWriteErr(err)
		}
		if err := replaceTags(ctx, tx, share.ID, share.Tags); err != nil {
			return err
		}
		result = share
		return nil
	})
	if err != nil {
		return domain.Share{}, fmt.Errorf("repo.ShareRepo.Update: %w", err)
	}
	if result.Tags == nil {
		result.Tags = []string{}
	}
	return result, nil
}

// Delete removes a share by primary key. Tag links cascade.
func (r *pgShareRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM shares WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ShareRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ShareRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// inTx runs fn inside a transaction (a savepoint when r.db is already a tx),
// committing on success and rolling back on any error.
func (r *pgShareRepo) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// replaceTags rewrites the ordered tag links of a share, creating tag rows
// on first use. The DO UPDATE SET trick forces RETURNING to fire on conflict.
func replaceTags(ctx context.Context, tx pgx.Tx, shareID uuid.UUID, tags []string) error {
	const (
		unlink = `DELETE FROM share_tags WHERE share_id = @share_id`
		upsert = `
			INSERT INTO tags (name)
			VALUES (@name)
			ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			RETURNING id`
		link = `
			INSERT INTO share_tags (share_id, tag_id, position)
			VALUES (@share_id, @tag_id, @position)
			ON CONFLICT (share_id, tag_id) DO NOTHING`
	)

	if _, err := tx.Exec(ctx, unlink, pgx.NamedArgs{"share_id": shareID}); err != nil {
		return fmt.Errorf("clear tags: %w", err)
	}
	for i, name := range tags {
		var tagID pgtype.UUID
		if err := tx.QueryRow(ctx, upsert, pgx.NamedArgs{"name": name}).Scan(&tagID); err != nil {
			return fmt.Errorf("upsert tag %q: %w", name, err)
		}
		args := pgx.NamedArgs{"share_id": shareID, "tag_id": tagID, "position": i}
		if _, err := tx.Exec(ctx, link, args); err != nil {
			return fmt.Errorf("link tag %q: %w", name, err)
		}
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanShare to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanShare maps a single row of selectShares into a domain.Share.
func scanShare(s scanner) (domain.Share, error) {
	var (
		sh domain.Share
		id pgtype.UUID
	)
	err := s.Scan(&id, &sh.Name, &sh.Logo, &sh.URL, &sh.Description, &sh.Stars, &sh.Tags, &sh.CreatedAt, &sh.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Share{}, domain.ErrNotFound
		}
		return domain.Share{}, err
	}
	sh.ID = uuid.UUID(id.Bytes)
	if sh.Tags == nil {
		sh.Tags = []string{}
	}
	return sh, nil
}

// uniqueViolation is the Postgres SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// mapWriteErr turns a duplicate-URL violation into domain.ErrConflict.
func mapWriteErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: url already shared", domain.ErrConflict)
	}
	return err
}
