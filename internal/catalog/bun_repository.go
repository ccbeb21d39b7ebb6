package catalog

import (
	"context"
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
)

// errUniqueViolation tags uniqueness conflicts surfaced by the in-memory
// repository so the retry logic treats both backends uniformly.
var errUniqueViolation = errors.New("catalog: unique constraint violation")

// IsUniqueViolation reports whether err stems from a slug/locale unique
// index, either the storage-level one or the in-memory equivalent.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, errUniqueViolation) {
		return true
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}

// BunEntityRepository implements EntityRepository on top of bun via
// go-repository-bun generics, with optional read caching.
type BunEntityRepository[E any, T any] struct {
	handlers     EntityHandlers[E, T]
	repo         repository.Repository[E]
	translations repository.Repository[T]
}

// NewBunEntityRepository constructs a bun-backed repository for one entity kind.
func NewBunEntityRepository[E any, T any](db *bun.DB, handlers EntityHandlers[E, T]) *BunEntityRepository[E, T] {
	return NewBunEntityRepositoryWithCache(db, handlers, nil, nil)
}

// NewBunEntityRepositoryWithCache constructs a bun-backed repository with
// optional caching of entity and translation reads.
func NewBunEntityRepositoryWithCache[E any, T any](db *bun.DB, handlers EntityHandlers[E, T], cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunEntityRepository[E, T] {
	base := repository.MustNewRepository(db, repository.ModelHandlers[E]{
		NewRecord: handlers.NewEntity,
		GetID: func(e E) uuid.UUID {
			return handlers.EntityID(e)
		},
		SetID: func(e E, id uuid.UUID) {
			handlers.SetEntityID(e, id)
		},
		GetIdentifier: func() string {
			return "slug"
		},
		GetIdentifierValue: func(e E) string {
			return handlers.EntitySlug(e)
		},
	})
	translationBase := repository.MustNewRepository(db, repository.ModelHandlers[T]{
		NewRecord: handlers.NewTranslation,
		GetID: func(t T) uuid.UUID {
			return handlers.TranslationID(t)
		},
		SetID: func(t T, id uuid.UUID) {
			handlers.SetTranslationID(t, id)
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(t T) string {
			return handlers.TranslationID(t).String()
		},
	})
	return &BunEntityRepository[E, T]{
		handlers:     handlers,
		repo:         wrapWithCache(base, cacheService, keySerializer),
		translations: wrapWithCache(translationBase, cacheService, keySerializer),
	}
}

func (r *BunEntityRepository[E, T]) Create(ctx context.Context, record E) (E, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		var zero E
		return zero, err
	}
	return created, nil
}

func (r *BunEntityRepository[E, T]) Update(ctx context.Context, record E) (E, error) {
	updated, err := r.repo.Update(ctx, record)
	if err != nil {
		var zero E
		return zero, err
	}
	return updated, nil
}

func (r *BunEntityRepository[E, T]) GetByID(ctx context.Context, id uuid.UUID) (E, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		var zero E
		return zero, r.mapError(err, r.handlers.Kind, id.String())
	}
	return result, nil
}

func (r *BunEntityRepository[E, T]) GetBySlug(ctx context.Context, slugValue string) (E, error) {
	result, err := r.repo.GetByIdentifier(ctx, slugValue)
	if err != nil {
		var zero E
		return zero, r.mapError(err, r.handlers.Kind, slugValue)
	}
	return result, nil
}

func (r *BunEntityRepository[E, T]) List(ctx context.Context) ([]E, error) {
	records, _, err := r.repo.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.OrderExpr("?TableAlias.slug ASC")
	}))
	return records, err
}

func (r *BunEntityRepository[E, T]) ListTranslations(ctx context.Context, entityID uuid.UUID) ([]T, error) {
	records, _, err := r.translations.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where(fmt.Sprintf("?TableAlias.%s = ?", r.handlers.TranslationEntityField), entityID)
		}),
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.locale ASC")
		}),
	)
	return records, err
}

func (r *BunEntityRepository[E, T]) GetTranslation(ctx context.Context, entityID uuid.UUID, locale Locale) (T, error) {
	records, _, err := r.translations.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where(fmt.Sprintf("?TableAlias.%s = ?", r.handlers.TranslationEntityField), entityID).
				Where("?TableAlias.locale = ?", locale)
		}),
		repository.SelectPaginate(1, 0),
	)
	var zero T
	if err != nil {
		return zero, err
	}
	if len(records) == 0 {
		return zero, &NotFoundError{
			Resource: r.handlers.Kind + "_translation",
			Key:      fmt.Sprintf("%s/%s", entityID, locale),
		}
	}
	return records[0], nil
}

func (r *BunEntityRepository[E, T]) CreateTranslation(ctx context.Context, record T) (T, error) {
	created, err := r.translations.Create(ctx, record)
	if err != nil {
		var zero T
		return zero, err
	}
	return created, nil
}

func (r *BunEntityRepository[E, T]) UpdateTranslation(ctx context.Context, record T) (T, error) {
	updated, err := r.translations.Update(ctx, record)
	if err != nil {
		var zero T
		return zero, err
	}
	return updated, nil
}

func (r *BunEntityRepository[E, T]) FindTranslationsBySlug(ctx context.Context, slugValue string) ([]T, error) {
	records, _, err := r.translations.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.slug = ?", slugValue)
		}),
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.locale ASC")
		}),
	)
	return records, err
}

func (r *BunEntityRepository[E, T]) SlugExists(ctx context.Context, locale Locale, slugValue string, exclude uuid.UUID) (bool, error) {
	if locale == "" {
		records, _, err := r.repo.List(ctx,
			repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
				q = q.Where("?TableAlias.slug = ?", slugValue)
				if exclude != uuid.Nil {
					q = q.Where("?TableAlias.id != ?", exclude)
				}
				return q
			}),
			repository.SelectPaginate(1, 0),
		)
		if err != nil {
			return false, err
		}
		return len(records) > 0, nil
	}

	records, _, err := r.translations.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			q = q.Where("?TableAlias.locale = ?", locale).
				Where("?TableAlias.slug = ?", slugValue)
			if exclude != uuid.Nil {
				q = q.Where("?TableAlias.id != ?", exclude)
			}
			return q
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return false, err
	}
	return len(records) > 0, nil
}

func (r *BunEntityRepository[E, T]) mapError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if isRepoNotFound(err) {
		return &NotFoundError{
			Resource: resource,
			Key:      key,
		}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}

func isRepoNotFound(err error) bool {
	return goerrors.IsCategory(err, repository.CategoryDatabaseNotFound)
}

func wrapWithCache[T any](base repository.Repository[T], cacheService cache.CacheService, keySerializer cache.KeySerializer) repository.Repository[T] {
	if cacheService == nil || keySerializer == nil {
		return base
	}
	return repositorycache.New(base, cacheService, keySerializer)
}
