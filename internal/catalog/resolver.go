package catalog

import (
	"context"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// ResolveFields computes the effective display fields for a requested
// locale. The fallback chain is requested locale, then the canonical `ka`
// translation, then the base record, applied independently per field so a
// translation with a title but no description still inherits a description.
func ResolveFields(base TranslationView, translations []TranslationView, locale Locale) DisplayFields {
	var requested, canonical *TranslationView
	for i := range translations {
		switch translations[i].Locale {
		case locale:
			requested = &translations[i]
		case DefaultLocale:
			canonical = &translations[i]
		}
	}
	if locale == DefaultLocale {
		canonical = nil
	}

	chain := make([]TranslationView, 0, 3)
	if requested != nil {
		chain = append(chain, *requested)
	}
	if canonical != nil {
		chain = append(chain, *canonical)
	}
	chain = append(chain, base)

	fields := DisplayFields{Locale: locale}
	for _, view := range chain {
		if fields.Title == "" {
			fields.Title = view.Title
		}
		if fields.Slug == "" {
			fields.Slug = view.Slug
		}
		if fields.Description == nil {
			fields.Description = view.Description
		}
		if fields.SEOTitle == nil {
			fields.SEOTitle = view.SEOTitle
		}
		if fields.SEODescription == nil {
			fields.SEODescription = view.SEODescription
		}
	}
	return fields
}

// Resolver answers read-time lookups for one entity kind: effective display
// fields for a locale, and the reverse slug-to-entity resolution used by the
// routing layer.
type Resolver[E any, T any] struct {
	repo     EntityRepository[E, T]
	handlers EntityHandlers[E, T]
}

// NewResolver constructs a resolver over the given repository.
func NewResolver[E any, T any](repo EntityRepository[E, T], handlers EntityHandlers[E, T]) *Resolver[E, T] {
	return &Resolver[E, T]{repo: repo, handlers: handlers}
}

// Resolve loads the entity and returns its effective fields for the locale.
func (r *Resolver[E, T]) Resolve(ctx context.Context, id uuid.UUID, locale Locale) (DisplayFields, error) {
	if id == uuid.Nil {
		return DisplayFields{}, ErrEntityIDRequired
	}
	entity, err := r.repo.GetByID(ctx, id)
	if err != nil {
		return DisplayFields{}, err
	}
	translations, err := r.repo.ListTranslations(ctx, id)
	if err != nil {
		return DisplayFields{}, err
	}

	views := make([]TranslationView, 0, len(translations))
	for _, tr := range translations {
		views = append(views, r.handlers.TranslationView(tr))
	}
	return ResolveFields(r.handlers.EntityView(entity), views, locale), nil
}

// FindBySlug resolves a raw slug string back to its owning entity. The raw
// value is percent-decoded first so non-Latin slugs copied from address bars
// resolve. Lookup order: base slug, then any locale's translation slug (old
// bookmarked URLs may use a slug superseded by a retranslation), preferring
// a translation in the requested locale when several match.
func (r *Resolver[E, T]) FindBySlug(ctx context.Context, locale Locale, rawSlug string) (E, error) {
	var zero E

	slugValue := strings.TrimSpace(rawSlug)
	if decoded, err := url.PathUnescape(slugValue); err == nil {
		slugValue = decoded
	}
	if slugValue == "" {
		return zero, &NotFoundError{Resource: r.handlers.Kind, Key: rawSlug}
	}

	entity, err := r.repo.GetBySlug(ctx, slugValue)
	if err == nil {
		return entity, nil
	}
	if !IsNotFound(err) {
		return zero, err
	}

	matches, err := r.repo.FindTranslationsBySlug(ctx, slugValue)
	if err != nil {
		return zero, err
	}
	if len(matches) == 0 {
		return zero, &NotFoundError{Resource: r.handlers.Kind, Key: rawSlug}
	}

	chosen := matches[0]
	for _, match := range matches {
		if r.handlers.TranslationLocale(match) == locale {
			chosen = match
			break
		}
	}
	return r.repo.GetByID(ctx, r.handlers.TranslationEntityID(chosen))
}
