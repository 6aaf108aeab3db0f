package reports

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/liekit/pkg/lies"
	"github.com/dmitrymomot/liekit/pkg/logger"
)

// VerdictCache is a hash-keyed cache in front of the stores.
type VerdictCache interface {
	Set(ctx context.Context, v lies.Verdict) error
	Get(ctx context.Context, hash string) (lies.Verdict, error)
}

// Repository writes verdicts to every configured store and serves hash
// lookups from the cache first.
type Repository struct {
	stores []Store
	cache  VerdictCache
	log    *slog.Logger
}

// Option configures a Repository.
type Option func(*Repository)

// WithStore adds a store. Stores are read in the order they were added.
func WithStore(s Store) Option {
	return func(r *Repository) {
		if s != nil {
			r.stores = append(r.stores, s)
		}
	}
}

// WithCache puts c in front of hash lookups.
func WithCache(c VerdictCache) Option {
	return func(r *Repository) {
		r.cache = c
	}
}

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(r *Repository) {
		if l != nil {
			r.log = l
		}
	}
}

// NewRepository builds a repository. Without stores it falls back to a
// MemoryStore.
func NewRepository(opts ...Option) *Repository {
	r := &Repository{log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(r)
	}
	if len(r.stores) == 0 {
		r.stores = []Store{NewMemoryStore()}
	}
	r.log = r.log.With(logger.Component("reports"))
	return r
}

// Save writes v to all stores, then caches it. Cache failures are logged
// and do not fail the save.
func (r *Repository) Save(ctx context.Context, v lies.Verdict) error {
	var errs []error
	for _, s := range r.stores {
		if err := s.Save(ctx, v); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, v); err != nil {
			r.log.WarnContext(ctx, "verdict not cached", logger.Hash(v.Hash), logger.Error(err))
		}
	}
	return nil
}

// Get returns the verdict from the first store that has it.
func (r *Repository) Get(ctx context.Context, id string) (lies.Verdict, error) {
	for _, s := range r.stores {
		v, err := s.Get(ctx, id)
		if err == nil {
			return v, nil
		}
		if !IsNotFound(err) {
			return lies.Verdict{}, err
		}
	}
	return lies.Verdict{}, ErrNotFound
}

// LatestByHash checks the cache, then the stores. A store hit refills the cache.
func (r *Repository) LatestByHash(ctx context.Context, hash string) (lies.Verdict, error) {
	if r.cache != nil {
		v, err := r.cache.Get(ctx, hash)
		if err == nil {
			return v, nil
		}
		if !IsNotFound(err) {
			r.log.WarnContext(ctx, "verdict cache read failed", logger.Hash(hash), logger.Error(err))
		}
	}

	for _, s := range r.stores {
		v, err := s.LatestByHash(ctx, hash)
		if err == nil {
			if r.cache != nil {
				if err := r.cache.Set(ctx, v); err != nil {
					r.log.WarnContext(ctx, "verdict not cached", logger.Hash(hash), logger.Error(err))
				}
			}
			return v, nil
		}
		if !IsNotFound(err) {
			return lies.Verdict{}, err
		}
	}
	return lies.Verdict{}, ErrNotFound
}
