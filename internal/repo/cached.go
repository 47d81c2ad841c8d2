package repo

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/zvz09/2025-blog-public/internal/domain"
)

// listKey is the single cache entry: the full ordered share list. Every
// gallery render reads it, and every write through the decorator drops it.
const listKey = "shares:list"

// cachedShareRepo is a read-through cache in front of another ShareRepo.
// Only List is cached. Single-share reads go straight to the inner repo.
//
// gen counts invalidations. A List result is stored only if no write began
// or finished while it was being read, so a slow List can never put a
// pre-write snapshot back after the write dropped the key.
type cachedShareRepo struct {
	inner ShareRepo
	cache *gocache.Cache

	mu  sync.Mutex
	gen uint64
}

// NewCachedShareRepo wraps inner so that List results are kept for ttl.
// Writes made through the returned repo invalidate the cached list; writes
// made to the database by other processes become visible after ttl.
// A ttl <= 0 disables caching and returns inner unchanged.
func NewCachedShareRepo(inner ShareRepo, ttl time.Duration) ShareRepo {
	if ttl <= 0 {
		return inner
	}
	// cleanupInterval 0: the only key is overwritten or deleted, never left to
	// pile up, so no janitor goroutine is needed.
	return &cachedShareRepo{inner: inner, cache: gocache.New(ttl, 0)}
}

func (r *cachedShareRepo) List(ctx context.Context) ([]domain.Share, error) {
	if v, ok := r.cache.Get(listKey); ok {
		return cloneShares(v.([]domain.Share)), nil
	}
	r.mu.Lock()
	gen := r.gen
	r.mu.Unlock()

	shares, err := r.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	if r.gen == gen {
		r.cache.SetDefault(listKey, cloneShares(shares))
	}
	r.mu.Unlock()
	return shares, nil
}

// invalidate drops the cached list and fences off any List already in flight.
func (r *cachedShareRepo) invalidate() {
	r.mu.Lock()
	r.gen++
	r.cache.Delete(listKey)
	r.mu.Unlock()
}

func (r *cachedShareRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Share, error) {
	return r.inner.GetByID(ctx, id)
}

func (r *cachedShareRepo) GetByURL(ctx context.Context, url string) (domain.Share, error) {
	return r.inner.GetByURL(ctx, url)
}

func (r *cachedShareRepo) Create(ctx context.Context, share domain.Share) (domain.Share, error) {
	r.invalidate()
	defer r.invalidate()
	return r.inner.Create(ctx, share)
}

func (r *cachedShareRepo) Update(ctx context.Context, share domain.Share) (domain.Share, error) {
	r.invalidate()
	defer r.invalidate()
	return r.inner.Update(ctx, share)
}

func (r *cachedShareRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.invalidate()
	defer r.invalidate()
	return r.inner.Delete(ctx, id)
}

// cloneShares copies the slice and each share's tags so callers can never
// mutate the cached value.
func cloneShares(in []domain.Share) []domain.Share {
	out := make([]domain.Share, len(in))
	for i, s := range in {
		s.Tags = append([]string(nil), s.Tags...)
		if s.Tags == nil {
			s.Tags = []string{}
		}
		out[i] = s
	}
	return out
}
