package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/zvz09/2025-blog-public/internal/domain"
)

// TagRepo defines the read operations over tags. Tags are written only as a
// side effect of ShareRepo.Create and ShareRepo.Update.
type TagRepo interface {
	// ListCounts returns every tag linked to at least one share with the number
	// of shares carrying it, ordered by first appearance in the gallery
	// (the position of the earliest share, then the tag's position on it).
	ListCounts(ctx context.Context) ([]domain.TagCount, error)
}

// pgTagRepo is the Postgres implementation of TagRepo.
type pgTagRepo struct {
	db db
}

// NewTagRepo constructs a TagRepo backed by the provided db connection.
func NewTagRepo(db db) TagRepo {
	return &pgTagRepo{db: db}
}

// ListCounts aggregates share_tags per tag. Each tag is ordered by its first
// link (share position, then tag position), which is the gallery's first-seen order.
func (r *pgTagRepo) ListCounts(ctx context.Context) ([]domain.TagCount, error) {
	const q = `
		WITH links AS (
			SELECT st.tag_id, s.position AS share_pos, st.position AS tag_pos,
			       ROW_NUMBER() OVER (PARTITION BY st.tag_id ORDER BY s.position, st.position) AS rn,
			       COUNT(*) OVER (PARTITION BY st.tag_id) AS shares
			FROM share_tags st
			JOIN shares s ON s.id = st.share_id
		)
		SELECT t.name, l.shares
		FROM tags t
		JOIN links l ON l.tag_id = t.id AND l.rn = 1
		ORDER BY l.share_pos, l.tag_pos`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TagRepo.ListCounts: %w", err)
	}
	defer rows.Close()

	counts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TagCount, error) {
		var tc domain.TagCount
		err := row.Scan(&tc.Name, &tc.Count)
		return tc, err
	})
	if err != nil {
		return nil, fmt.Errorf("repo.TagRepo.ListCounts: scan: %w", err)
	}
	if counts == nil {
		counts = []domain.TagCount{}
	}
	return counts, nil
}
