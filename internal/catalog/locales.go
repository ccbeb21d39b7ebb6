package catalog

import (
	"context"
	"sort"
	"sync"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// LocaleRegistry stores the set of supported languages. The registry is
// seeded from configuration and consulted by callers that need display names
// or the active set, not by the slug pipeline, which works on Locale codes.
type LocaleRegistry interface {
	Ensure(ctx context.Context, record *LocaleRecord) (*LocaleRecord, error)
	GetByCode(ctx context.Context, code string) (*LocaleRecord, error)
	List(ctx context.Context) ([]*LocaleRecord, error)
	Default(ctx context.Context) (*LocaleRecord, error)
}

// SeedLocales writes the built-in locale set into the registry. Existing
// rows are left untouched, so operators can rename display strings.
func SeedLocales(ctx context.Context, registry LocaleRegistry) error {
	seeds := []*LocaleRecord{
		{Code: string(LocaleGeorgian), Display: "ქართული", IsActive: true, IsDefault: true},
		{Code: string(LocaleEnglish), Display: "English", IsActive: true},
		{Code: string(LocaleRussian), Display: "Русский", IsActive: true},
	}
	for _, seed := range seeds {
		if _, err := registry.Ensure(ctx, seed); err != nil {
			return err
		}
	}
	return nil
}

// BunLocaleRegistry persists locales through go-repository-bun.
type BunLocaleRegistry struct {
	repo repository.Repository[*LocaleRecord]
}

// NewBunLocaleRegistry constructs the registry over a bun database.
func NewBunLocaleRegistry(db *bun.DB) *BunLocaleRegistry {
	return &BunLocaleRegistry{
		repo: repository.MustNewRepository(db, repository.ModelHandlers[*LocaleRecord]{
			NewRecord: func() *LocaleRecord { return &LocaleRecord{} },
			GetID: func(rec *LocaleRecord) uuid.UUID {
				return rec.ID
			},
			SetID: func(rec *LocaleRecord, id uuid.UUID) {
				rec.ID = id
			},
			GetIdentifier: func() string {
				return "code"
			},
			GetIdentifierValue: func(rec *LocaleRecord) string {
				return rec.Code
			},
		}),
	}
}

func (r *BunLocaleRegistry) Ensure(ctx context.Context, record *LocaleRecord) (*LocaleRecord, error) {
	if existing, err := r.GetByCode(ctx, record.Code); err == nil {
		return existing, nil
	} else if !IsNotFound(err) {
		return nil, err
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	return r.repo.Create(ctx, record)
}

func (r *BunLocaleRegistry) GetByCode(ctx context.Context, code string) (*LocaleRecord, error) {
	record, err := r.repo.GetByIdentifier(ctx, code)
	if err != nil {
		return nil, mapLocaleError(err, code)
	}
	return record, nil
}

func (r *BunLocaleRegistry) List(ctx context.Context) ([]*LocaleRecord, error) {
	records, _, err := r.repo.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("?TableAlias.is_active = ?", true).OrderExpr("?TableAlias.code ASC")
	}))
	return records, err
}

func (r *BunLocaleRegistry) Default(ctx context.Context) (*LocaleRecord, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.is_default = ?", true)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Resource: "locale", Key: "default"}
	}
	return records[0], nil
}

// MemoryLocaleRegistry is the in-memory registry used by tests.
type MemoryLocaleRegistry struct {
	mu      sync.RWMutex
	records map[string]*LocaleRecord
}

// NewMemoryLocaleRegistry creates an empty in-memory registry.
func NewMemoryLocaleRegistry() *MemoryLocaleRegistry {
	return &MemoryLocaleRegistry{records: make(map[string]*LocaleRecord)}
}

func (r *MemoryLocaleRegistry) Ensure(_ context.Context, record *LocaleRecord) (*LocaleRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.records[record.Code]; ok {
		return existing, nil
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	r.records[record.Code] = record
	return record, nil
}

func (r *MemoryLocaleRegistry) GetByCode(_ context.Context, code string) (*LocaleRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[code]
	if !ok {
		return nil, &NotFoundError{Resource: "locale", Key: code}
	}
	return record, nil
}

func (r *MemoryLocaleRegistry) List(_ context.Context) ([]*LocaleRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*LocaleRecord, 0, len(r.records))
	for _, record := range r.records {
		if record.IsActive {
			out = append(out, record)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (r *MemoryLocaleRegistry) Default(_ context.Context) (*LocaleRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, record := range r.records {
		if record.IsDefault {
			return record, nil
		}
	}
	return nil, &NotFoundError{Resource: "locale", Key: "default"}
}

func mapLocaleError(err error, code string) error {
	if err == nil {
		return nil
	}
	if isRepoNotFound(err) {
		return &NotFoundError{Resource: "locale", Key: code}
	}
	return err
}
