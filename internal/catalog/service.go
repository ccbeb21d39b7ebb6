package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/advokati/go-directory/internal/logging"
	slugger "github.com/advokati/go-directory/internal/slug"
	"github.com/advokati/go-directory/pkg/interfaces"
)

// slugWriteAttempts bounds retries when a storage-level unique index rejects
// a slug that looked free at check time (racing writer).
const slugWriteAttempts = 3

// TranslationInput carries localized fields supplied by callers. Optional
// fields left nil preserve whatever the stored translation already has.
type TranslationInput struct {
	Locale         Locale
	Title          string
	Description    *string
	SEOTitle       *string
	SEODescription *string
}

// CreateRequest captures the information required to create a catalog entity.
// Slug optionally overrides the generated base slug; it is validated and may
// still receive a numeric suffix when taken.
type CreateRequest struct {
	Title        string
	TitleLocale  Locale
	Slug         string
	ParentID     uuid.UUID
	Translations []TranslationInput
}

// RenameRequest captures an in-place title change. The slug is regenerated
// and re-checked for uniqueness, excluding the entity's own row.
type RenameRequest struct {
	ID          uuid.UUID
	Title       string
	TitleLocale Locale
}

// UpsertTranslationRequest creates or updates one locale's translation row.
type UpsertTranslationRequest struct {
	EntityID    uuid.UUID
	Translation TranslationInput
}

// UpsertOutcome reports what an upsert did, so batch runs can compile
// accurate reconciliation reports.
type UpsertOutcome int

const (
	OutcomeUnchanged UpsertOutcome = iota
	OutcomeCreated
	OutcomeUpdated
)

// CatalogOption configures a Catalog at construction time.
type CatalogOption func(*catalogSettings)

type catalogSettings struct {
	now    func() time.Time
	id     func() uuid.UUID
	logger interfaces.Logger
}

// WithClock overrides the clock used to stamp records.
func WithClock(clock func() time.Time) CatalogOption {
	return func(s *catalogSettings) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithIDGenerator overrides the identifier generator.
func WithIDGenerator(generator func() uuid.UUID) CatalogOption {
	return func(s *catalogSettings) {
		if generator != nil {
			s.id = generator
		}
	}
}

// WithLogger injects the service logger. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) CatalogOption {
	return func(s *catalogSettings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Catalog exposes the slug-bearing use cases for one entity kind: creation,
// renames, lazy per-locale translation upserts, and read-time resolution.
type Catalog[E any, T any] struct {
	repo     EntityRepository[E, T]
	handlers EntityHandlers[E, T]
	enforcer *Enforcer
	resolver *Resolver[E, T]
	logger   interfaces.Logger
	now      func() time.Time
	id       func() uuid.UUID
}

// NewCatalog constructs the service for one entity kind.
func NewCatalog[E any, T any](repo EntityRepository[E, T], handlers EntityHandlers[E, T], opts ...CatalogOption) *Catalog[E, T] {
	settings := catalogSettings{
		now:    time.Now,
		id:     uuid.New,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(&settings)
	}
	return &Catalog[E, T]{
		repo:     repo,
		handlers: handlers,
		enforcer: NewEnforcer(repo, WithEnforcerClock(settings.now)),
		resolver: NewResolver(repo, handlers),
		logger:   settings.logger,
		now:      settings.now,
		id:       settings.id,
	}
}

// Create creates the base record plus any supplied translations. The base
// slug derives from the title in the given locale and is finalized against
// the table-wide scope.
func (c *Catalog[E, T]) Create(ctx context.Context, req CreateRequest) (E, error) {
	var zero E

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return zero, ErrTitleRequired
	}
	titleLocale := req.TitleLocale
	if titleLocale == "" {
		titleLocale = DefaultLocale
	}
	if !titleLocale.Valid() {
		return zero, ErrUnknownLocale
	}
	if c.handlers.HasParent() && req.ParentID == uuid.Nil {
		return zero, ErrParentRequired
	}

	seen := map[Locale]struct{}{}
	for _, in := range req.Translations {
		if !in.Locale.Valid() {
			return zero, ErrUnknownLocale
		}
		if _, dup := seen[in.Locale]; dup {
			return zero, ErrDuplicateLocale
		}
		seen[in.Locale] = struct{}{}
	}

	entity := c.handlers.NewEntity()
	c.handlers.SetEntityID(entity, c.id())
	c.handlers.SetEntityTitle(entity, title)
	if c.handlers.HasParent() {
		c.handlers.SetEntityParentID(entity, req.ParentID)
	}

	candidate := strings.TrimSpace(req.Slug)
	if candidate != "" {
		normalized, err := normalizeExplicitSlug(candidate, titleLocale)
		if err != nil {
			return zero, err
		}
		candidate = normalized
	} else {
		candidate = slugger.Generate(title, titleLocale)
	}
	created, err := c.writeEntity(ctx, entity, candidate, uuid.Nil, c.repo.Create)
	if err != nil {
		return zero, err
	}

	entityID := c.handlers.EntityID(created)
	for _, in := range req.Translations {
		if _, _, err := c.upsertTranslation(ctx, entityID, in); err != nil {
			return zero, err
		}
	}

	c.logger.Debug("catalog.entity.created",
		"kind", c.handlers.Kind,
		"slug", c.handlers.EntitySlug(created),
	)
	return created, nil
}

// Rename changes the base title and regenerates the base slug, keeping the
// entity's own row out of the uniqueness check.
func (c *Catalog[E, T]) Rename(ctx context.Context, req RenameRequest) (E, error) {
	var zero E

	if req.ID == uuid.Nil {
		return zero, ErrEntityIDRequired
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return zero, ErrTitleRequired
	}
	titleLocale := req.TitleLocale
	if titleLocale == "" {
		titleLocale = DefaultLocale
	}
	if !titleLocale.Valid() {
		return zero, ErrUnknownLocale
	}

	entity, err := c.repo.GetByID(ctx, req.ID)
	if err != nil {
		return zero, err
	}
	if c.handlers.EntityTitle(entity) == title {
		return entity, nil
	}

	c.handlers.SetEntityTitle(entity, title)
	candidate := slugger.Generate(title, titleLocale)
	return c.writeEntity(ctx, entity, candidate, req.ID, c.repo.Update)
}

// UpsertTranslation creates the locale's translation row on first localized
// edit, or updates it in place. A title change regenerates the translation
// slug within the (table, locale) scope.
func (c *Catalog[E, T]) UpsertTranslation(ctx context.Context, req UpsertTranslationRequest) (T, UpsertOutcome, error) {
	var zero T

	if req.EntityID == uuid.Nil {
		return zero, OutcomeUnchanged, ErrEntityIDRequired
	}
	if !req.Translation.Locale.Valid() {
		return zero, OutcomeUnchanged, ErrUnknownLocale
	}
	if strings.TrimSpace(req.Translation.Title) == "" {
		return zero, OutcomeUnchanged, ErrTitleRequired
	}
	if _, err := c.repo.GetByID(ctx, req.EntityID); err != nil {
		return zero, OutcomeUnchanged, err
	}
	return c.upsertTranslation(ctx, req.EntityID, req.Translation)
}

// Get fetches an entity by identifier.
func (c *Catalog[E, T]) Get(ctx context.Context, id uuid.UUID) (E, error) {
	return c.repo.GetByID(ctx, id)
}

// GetBySlug fetches an entity by its base slug.
func (c *Catalog[E, T]) GetBySlug(ctx context.Context, slugValue string) (E, error) {
	return c.repo.GetBySlug(ctx, slugValue)
}

// List returns all entities of this kind.
func (c *Catalog[E, T]) List(ctx context.Context) ([]E, error) {
	return c.repo.List(ctx)
}

// GetTranslation fetches one locale's translation row.
func (c *Catalog[E, T]) GetTranslation(ctx context.Context, entityID uuid.UUID, locale Locale) (T, error) {
	return c.repo.GetTranslation(ctx, entityID, locale)
}

// ListTranslations returns all translation rows for an entity.
func (c *Catalog[E, T]) ListTranslations(ctx context.Context, entityID uuid.UUID) ([]T, error) {
	return c.repo.ListTranslations(ctx, entityID)
}

// Resolve returns the effective display fields for the locale.
func (c *Catalog[E, T]) Resolve(ctx context.Context, id uuid.UUID, locale Locale) (DisplayFields, error) {
	return c.resolver.Resolve(ctx, id, locale)
}

// FindBySlug resolves a raw slug back to its owning entity.
func (c *Catalog[E, T]) FindBySlug(ctx context.Context, locale Locale, rawSlug string) (E, error) {
	return c.resolver.FindBySlug(ctx, locale, rawSlug)
}

func (c *Catalog[E, T]) writeEntity(ctx context.Context, entity E, candidate string, exclude uuid.UUID, write func(context.Context, E) (E, error)) (E, error) {
	var zero E
	var lastErr error
	for attempt := 0; attempt < slugWriteAttempts; attempt++ {
		slugValue, err := c.enforcer.EnsureUnique(ctx, candidate, "", exclude)
		if err != nil {
			return zero, err
		}
		c.handlers.SetEntitySlug(entity, slugValue)
		c.handlers.StampEntity(entity, c.now())

		written, err := write(ctx, entity)
		if err == nil {
			return written, nil
		}
		if !IsUniqueViolation(err) {
			return zero, err
		}
		lastErr = err
		c.logger.Warn("catalog.slug.conflict_retry",
			"kind", c.handlers.Kind,
			"slug", slugValue,
		)
	}
	return zero, lastErr
}

func (c *Catalog[E, T]) upsertTranslation(ctx context.Context, entityID uuid.UUID, in TranslationInput) (T, UpsertOutcome, error) {
	var zero T
	title := strings.TrimSpace(in.Title)

	existing, err := c.repo.GetTranslation(ctx, entityID, in.Locale)
	if err != nil {
		if !IsNotFound(err) {
			return zero, OutcomeUnchanged, err
		}

		record := c.handlers.NewTranslation()
		c.handlers.SetTranslationID(record, c.id())
		c.handlers.SetTranslationEntityID(record, entityID)
		c.handlers.SetTranslationLocale(record, in.Locale)
		c.handlers.SetTranslationTitle(record, title)
		c.handlers.ApplyTranslationInput(record, in)

		created, err := c.writeTranslation(ctx, record, title, in.Locale, uuid.Nil, c.repo.CreateTranslation)
		if err != nil {
			return zero, OutcomeUnchanged, err
		}
		return created, OutcomeCreated, nil
	}

	before := c.handlers.TranslationView(existing)
	titleChanged := c.handlers.TranslationTitle(existing) != title
	c.handlers.SetTranslationTitle(existing, title)
	c.handlers.ApplyTranslationInput(existing, in)

	if !titleChanged && viewsEqual(before, c.handlers.TranslationView(existing)) {
		return existing, OutcomeUnchanged, nil
	}

	if titleChanged {
		updated, err := c.writeTranslation(ctx, existing, title, in.Locale, c.handlers.TranslationID(existing), c.repo.UpdateTranslation)
		if err != nil {
			return zero, OutcomeUnchanged, err
		}
		return updated, OutcomeUpdated, nil
	}

	c.handlers.StampTranslation(existing, c.now())
	updated, err := c.repo.UpdateTranslation(ctx, existing)
	if err != nil {
		return zero, OutcomeUnchanged, err
	}
	return updated, OutcomeUpdated, nil
}

func (c *Catalog[E, T]) writeTranslation(ctx context.Context, record T, title string, locale Locale, exclude uuid.UUID, write func(context.Context, T) (T, error)) (T, error) {
	var zero T
	candidate := slugger.Generate(title, locale)

	var lastErr error
	for attempt := 0; attempt < slugWriteAttempts; attempt++ {
		slugValue, err := c.enforcer.EnsureUnique(ctx, candidate, locale, exclude)
		if err != nil {
			return zero, err
		}
		c.handlers.SetTranslationSlug(record, slugValue)
		c.handlers.StampTranslation(record, c.now())

		written, err := write(ctx, record)
		if err == nil {
			return written, nil
		}
		if !IsUniqueViolation(err) {
			return zero, err
		}
		lastErr = err
		c.logger.Warn("catalog.translation_slug.conflict_retry",
			"kind", c.handlers.Kind,
			"locale", locale,
			"slug", slugValue,
		)
	}
	return zero, lastErr
}

// normalizeExplicitSlug validates an operator-supplied slug. Latin-script
// locales go through the go-slug normalizer; native-script slugs must
// already be in generated form.
func normalizeExplicitSlug(candidate string, locale Locale) (string, error) {
	if locale.LatinScript() {
		normalized, err := NormalizeSlug(candidate)
		if err != nil || normalized == "" {
			return "", ErrSlugInvalid
		}
		return normalized, nil
	}
	if generated := slugger.Generate(candidate, locale); generated != candidate {
		return "", ErrSlugInvalid
	}
	return candidate, nil
}

func viewsEqual(a, b TranslationView) bool {
	return a.Locale == b.Locale &&
		a.Title == b.Title &&
		a.Slug == b.Slug &&
		strPtrEqual(a.Description, b.Description) &&
		strPtrEqual(a.SEOTitle, b.SEOTitle) &&
		strPtrEqual(a.SEODescription, b.SEODescription)
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
