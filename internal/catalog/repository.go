package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SlugIndex reports whether a slug is already taken within a uniqueness
// scope. An empty locale selects the base-slug scope (the whole table);
// a concrete locale selects that locale's translation rows. The exclude id
// lets in-place renames skip the row being updated.
type SlugIndex interface {
	SlugExists(ctx context.Context, locale Locale, slugValue string, exclude uuid.UUID) (bool, error)
}

// EntityRepository abstracts storage for one catalog table and its
// translation table. E is the base record pointer type, T the translation
// row pointer type.
type EntityRepository[E any, T any] interface {
	Create(ctx context.Context, record E) (E, error)
	Update(ctx context.Context, record E) (E, error)
	GetByID(ctx context.Context, id uuid.UUID) (E, error)
	GetBySlug(ctx context.Context, slugValue string) (E, error)
	List(ctx context.Context) ([]E, error)

	ListTranslations(ctx context.Context, entityID uuid.UUID) ([]T, error)
	GetTranslation(ctx context.Context, entityID uuid.UUID, locale Locale) (T, error)
	CreateTranslation(ctx context.Context, record T) (T, error)
	UpdateTranslation(ctx context.Context, record T) (T, error)
	FindTranslationsBySlug(ctx context.Context, slugValue string) ([]T, error)

	SlugIndex
}

// EntityHandlers adapts one concrete entity kind to the generic repository,
// resolver, and service implementations, the same way go-repository-bun's
// ModelHandlers adapt models to its generic repository.
type EntityHandlers[E any, T any] struct {
	Kind                   string
	Table                  string
	TranslationTable       string
	TranslationEntityField string

	NewEntity      func() E
	EntityID       func(E) uuid.UUID
	SetEntityID    func(E, uuid.UUID)
	EntityTitle    func(E) string
	SetEntityTitle func(E, string)
	EntitySlug     func(E) string
	SetEntitySlug  func(E, string)
	StampEntity    func(E, time.Time)
	EntityView     func(E) TranslationView

	// Parent hooks are nil for kinds without a parent relationship.
	EntityParentID    func(E) uuid.UUID
	SetEntityParentID func(E, uuid.UUID)

	NewTranslation         func() T
	TranslationID          func(T) uuid.UUID
	SetTranslationID       func(T, uuid.UUID)
	TranslationEntityID    func(T) uuid.UUID
	SetTranslationEntityID func(T, uuid.UUID)
	TranslationLocale      func(T) Locale
	SetTranslationLocale   func(T, Locale)
	TranslationTitle       func(T) string
	SetTranslationTitle    func(T, string)
	TranslationSlug        func(T) string
	SetTranslationSlug     func(T, string)
	StampTranslation       func(T, time.Time)
	ApplyTranslationInput  func(T, TranslationInput)
	TranslationView        func(T) TranslationView
}

// HasParent reports whether the kind participates in a parent/child
// relationship (services under practice areas).
func (h EntityHandlers[E, T]) HasParent() bool {
	return h.EntityParentID != nil && h.SetEntityParentID != nil
}
