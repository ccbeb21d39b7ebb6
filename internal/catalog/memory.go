package catalog

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryEntityRepository is an in-memory implementation for scaffolding and
// tests. It enforces the same uniqueness rules the SQL schema declares so
// unit tests exercise the conflict paths too.
type MemoryEntityRepository[E any, T any] struct {
	mu           sync.RWMutex
	handlers     EntityHandlers[E, T]
	entities     map[uuid.UUID]E
	translations map[uuid.UUID]T
}

// NewMemoryEntityRepository creates an empty in-memory repository for one
// entity kind.
func NewMemoryEntityRepository[E any, T any](handlers EntityHandlers[E, T]) *MemoryEntityRepository[E, T] {
	return &MemoryEntityRepository[E, T]{
		handlers:     handlers,
		entities:     make(map[uuid.UUID]E),
		translations: make(map[uuid.UUID]T),
	}
}

func (m *MemoryEntityRepository[E, T]) Create(_ context.Context, record E) (E, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var zero E
	slugValue := m.handlers.EntitySlug(record)
	if id, taken := m.baseSlugOwner(slugValue); taken && id != m.handlers.EntityID(record) {
		return zero, fmt.Errorf("%w: %s slug %q", errUniqueViolation, m.handlers.Kind, slugValue)
	}
	m.entities[m.handlers.EntityID(record)] = record
	return record, nil
}

func (m *MemoryEntityRepository[E, T]) Update(_ context.Context, record E) (E, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var zero E
	id := m.handlers.EntityID(record)
	if _, ok := m.entities[id]; !ok {
		return zero, &NotFoundError{Resource: m.handlers.Kind, Key: id.String()}
	}
	slugValue := m.handlers.EntitySlug(record)
	if owner, taken := m.baseSlugOwner(slugValue); taken && owner != id {
		return zero, fmt.Errorf("%w: %s slug %q", errUniqueViolation, m.handlers.Kind, slugValue)
	}
	m.entities[id] = record
	return record, nil
}

func (m *MemoryEntityRepository[E, T]) GetByID(_ context.Context, id uuid.UUID) (E, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.entities[id]
	if !ok {
		var zero E
		return zero, &NotFoundError{Resource: m.handlers.Kind, Key: id.String()}
	}
	return rec, nil
}

func (m *MemoryEntityRepository[E, T]) GetBySlug(_ context.Context, slugValue string) (E, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, rec := range m.entities {
		if m.handlers.EntitySlug(rec) == slugValue {
			return rec, nil
		}
	}
	var zero E
	return zero, &NotFoundError{Resource: m.handlers.Kind, Key: slugValue}
}

func (m *MemoryEntityRepository[E, T]) List(_ context.Context) ([]E, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]E, 0, len(m.entities))
	for _, rec := range m.entities {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		return m.handlers.EntitySlug(out[i]) < m.handlers.EntitySlug(out[j])
	})
	return out, nil
}

func (m *MemoryEntityRepository[E, T]) ListTranslations(_ context.Context, entityID uuid.UUID) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]T, 0, 3)
	for _, tr := range m.translations {
		if m.handlers.TranslationEntityID(tr) == entityID {
			out = append(out, tr)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return m.handlers.TranslationLocale(out[i]) < m.handlers.TranslationLocale(out[j])
	})
	return out, nil
}

func (m *MemoryEntityRepository[E, T]) GetTranslation(_ context.Context, entityID uuid.UUID, locale Locale) (T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, tr := range m.translations {
		if m.handlers.TranslationEntityID(tr) == entityID && m.handlers.TranslationLocale(tr) == locale {
			return tr, nil
		}
	}
	var zero T
	return zero, &NotFoundError{
		Resource: m.handlers.Kind + "_translation",
		Key:      fmt.Sprintf("%s/%s", entityID, locale),
	}
}

func (m *MemoryEntityRepository[E, T]) CreateTranslation(_ context.Context, record T) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.putTranslation(record)
}

func (m *MemoryEntityRepository[E, T]) UpdateTranslation(_ context.Context, record T) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var zero T
	if _, ok := m.translations[m.handlers.TranslationID(record)]; !ok {
		return zero, &NotFoundError{
			Resource: m.handlers.Kind + "_translation",
			Key:      m.handlers.TranslationID(record).String(),
		}
	}
	return m.putTranslation(record)
}

func (m *MemoryEntityRepository[E, T]) FindTranslationsBySlug(_ context.Context, slugValue string) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]T, 0, 1)
	for _, tr := range m.translations {
		if m.handlers.TranslationSlug(tr) == slugValue {
			out = append(out, tr)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return m.handlers.TranslationLocale(out[i]) < m.handlers.TranslationLocale(out[j])
	})
	return out, nil
}

func (m *MemoryEntityRepository[E, T]) SlugExists(_ context.Context, locale Locale, slugValue string, exclude uuid.UUID) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if locale == "" {
		owner, taken := m.baseSlugOwner(slugValue)
		return taken && owner != exclude, nil
	}
	for _, tr := range m.translations {
		if m.handlers.TranslationLocale(tr) != locale || m.handlers.TranslationSlug(tr) != slugValue {
			continue
		}
		if m.handlers.TranslationID(tr) != exclude {
			return true, nil
		}
	}
	return false, nil
}

func (m *MemoryEntityRepository[E, T]) putTranslation(record T) (T, error) {
	var zero T
	id := m.handlers.TranslationID(record)
	entityID := m.handlers.TranslationEntityID(record)
	locale := m.handlers.TranslationLocale(record)
	slugValue := m.handlers.TranslationSlug(record)

	for _, tr := range m.translations {
		if m.handlers.TranslationID(tr) == id {
			continue
		}
		if m.handlers.TranslationEntityID(tr) == entityID && m.handlers.TranslationLocale(tr) == locale {
			return zero, fmt.Errorf("%w: %s translation %s/%s", errUniqueViolation, m.handlers.Kind, entityID, locale)
		}
		if m.handlers.TranslationLocale(tr) == locale && m.handlers.TranslationSlug(tr) == slugValue {
			return zero, fmt.Errorf("%w: %s translation slug %s/%q", errUniqueViolation, m.handlers.Kind, locale, slugValue)
		}
	}
	m.translations[id] = record
	return record, nil
}

func (m *MemoryEntityRepository[E, T]) baseSlugOwner(slugValue string) (uuid.UUID, bool) {
	for _, rec := range m.entities {
		if m.handlers.EntitySlug(rec) == slugValue {
			return m.handlers.EntityID(rec), true
		}
	}
	return uuid.Nil, false
}
