package directory

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/mattn/go-sqlite3"

	"github.com/advokati/go-directory/catalog"
	internalcatalog "github.com/advokati/go-directory/internal/catalog"
	"github.com/advokati/go-directory/internal/logging"
	"github.com/advokati/go-directory/internal/logging/gologger"
	dirsync "github.com/advokati/go-directory/internal/sync"
	"github.com/advokati/go-directory/pkg/interfaces"
)

// Catalog service types for the four directory entity kinds.
type (
	PracticeAreaCatalog = internalcatalog.Catalog[*catalog.PracticeArea, *catalog.PracticeAreaTranslation]
	ServiceCatalog      = internalcatalog.Catalog[*catalog.Service, *catalog.ServiceTranslation]
	SpecialistCatalog   = internalcatalog.Catalog[*catalog.SpecialistProfile, *catalog.SpecialistProfileTranslation]
	CompanyCatalog      = internalcatalog.Catalog[*catalog.Company, *catalog.CompanyTranslation]
)

// Re-exported request and result types for host applications.
type (
	CreateRequest            = internalcatalog.CreateRequest
	RenameRequest            = internalcatalog.RenameRequest
	UpsertTranslationRequest = internalcatalog.UpsertTranslationRequest
	TranslationInput         = internalcatalog.TranslationInput
	UpsertOutcome            = internalcatalog.UpsertOutcome
	DisplayFields            = catalog.DisplayFields
	Locale                   = catalog.Locale
	LocaleRegistry           = internalcatalog.LocaleRegistry

	SyncEngine     = dirsync.Engine
	SyncSource     = dirsync.Source
	SyncGroup      = dirsync.Group
	SyncReport     = dirsync.Report
	SyncWarning    = dirsync.Warning
	SyncRunRequest = dirsync.RunRequest
)

// Option overrides module wiring.
type Option func(*moduleDeps)

type moduleDeps struct {
	db             *bun.DB
	ownsDB         bool
	loggerProvider interfaces.LoggerProvider
	cacheService   cache.CacheService
	keySerializer  cache.KeySerializer
}

// WithDB injects an existing bun database instead of opening one from the
// configured DSN.
func WithDB(db *bun.DB) Option {
	return func(d *moduleDeps) {
		d.db = db
	}
}

// WithLoggerProvider overrides the logger provider built from configuration.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(d *moduleDeps) {
		d.loggerProvider = provider
	}
}

// WithCache enables repository read caching through the given cache service.
func WithCache(service cache.CacheService, serializer cache.KeySerializer) Option {
	return func(d *moduleDeps) {
		d.cacheService = service
		d.keySerializer = serializer
	}
}

// Module is the top-level directory runtime facade.
type Module struct {
	cfg  Config
	deps moduleDeps

	practiceAreas *PracticeAreaCatalog
	services      *ServiceCatalog
	specialists   *SpecialistCatalog
	companies     *CompanyCatalog
	locales       LocaleRegistry
	engine        *SyncEngine
}

// New constructs the directory module from configuration plus optional
// dependency overrides.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Module{cfg: cfg}
	for _, opt := range opts {
		opt(&m.deps)
	}

	if m.deps.loggerProvider == nil && cfg.Logging.Enabled {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
		if err != nil {
			return nil, err
		}
		m.deps.loggerProvider = provider
	}

	if err := m.buildStorage(); err != nil {
		return nil, err
	}
	m.engine = dirsync.NewEngine(m.practiceAreas, m.services,
		dirsync.WithEngineLogger(logging.SyncLogger(m.deps.loggerProvider)),
	)
	return m, nil
}

func (m *Module) buildStorage() error {
	catalogLogger := logging.CatalogLogger(m.deps.loggerProvider)

	if strings.EqualFold(m.cfg.Storage.Driver, "memory") && m.deps.db == nil {
		m.practiceAreas = internalcatalog.NewCatalog[*catalog.PracticeArea, *catalog.PracticeAreaTranslation](
			internalcatalog.NewMemoryEntityRepository(internalcatalog.PracticeAreaHandlers()),
			internalcatalog.PracticeAreaHandlers(),
			internalcatalog.WithLogger(catalogLogger),
		)
		m.services = internalcatalog.NewCatalog[*catalog.Service, *catalog.ServiceTranslation](
			internalcatalog.NewMemoryEntityRepository(internalcatalog.ServiceHandlers()),
			internalcatalog.ServiceHandlers(),
			internalcatalog.WithLogger(catalogLogger),
		)
		m.specialists = internalcatalog.NewCatalog[*catalog.SpecialistProfile, *catalog.SpecialistProfileTranslation](
			internalcatalog.NewMemoryEntityRepository(internalcatalog.SpecialistProfileHandlers()),
			internalcatalog.SpecialistProfileHandlers(),
			internalcatalog.WithLogger(catalogLogger),
		)
		m.companies = internalcatalog.NewCatalog[*catalog.Company, *catalog.CompanyTranslation](
			internalcatalog.NewMemoryEntityRepository(internalcatalog.CompanyHandlers()),
			internalcatalog.CompanyHandlers(),
			internalcatalog.WithLogger(catalogLogger),
		)
		m.locales = internalcatalog.NewMemoryLocaleRegistry()
		return nil
	}

	if m.deps.db == nil {
		sqlDB, err := sql.Open("sqlite3", m.cfg.Storage.DSN)
		if err != nil {
			return fmt.Errorf("open sqlite database: %w", err)
		}
		m.deps.db = bun.NewDB(sqlDB, sqlitedialect.New())
		m.deps.ownsDB = true
	}

	var cacheService cache.CacheService
	var keySerializer cache.KeySerializer
	if m.cfg.Cache.Enabled {
		cacheService = m.deps.cacheService
		keySerializer = m.deps.keySerializer
	}

	m.practiceAreas = internalcatalog.NewCatalog[*catalog.PracticeArea, *catalog.PracticeAreaTranslation](
		internalcatalog.NewBunEntityRepositoryWithCache(m.deps.db, internalcatalog.PracticeAreaHandlers(), cacheService, keySerializer),
		internalcatalog.PracticeAreaHandlers(),
		internalcatalog.WithLogger(catalogLogger),
	)
	m.services = internalcatalog.NewCatalog[*catalog.Service, *catalog.ServiceTranslation](
		internalcatalog.NewBunEntityRepositoryWithCache(m.deps.db, internalcatalog.ServiceHandlers(), cacheService, keySerializer),
		internalcatalog.ServiceHandlers(),
		internalcatalog.WithLogger(catalogLogger),
	)
	m.specialists = internalcatalog.NewCatalog[*catalog.SpecialistProfile, *catalog.SpecialistProfileTranslation](
		internalcatalog.NewBunEntityRepositoryWithCache(m.deps.db, internalcatalog.SpecialistProfileHandlers(), cacheService, keySerializer),
		internalcatalog.SpecialistProfileHandlers(),
		internalcatalog.WithLogger(catalogLogger),
	)
	m.companies = internalcatalog.NewCatalog[*catalog.Company, *catalog.CompanyTranslation](
		internalcatalog.NewBunEntityRepositoryWithCache(m.deps.db, internalcatalog.CompanyHandlers(), cacheService, keySerializer),
		internalcatalog.CompanyHandlers(),
		internalcatalog.WithLogger(catalogLogger),
	)
	m.locales = internalcatalog.NewBunLocaleRegistry(m.deps.db)
	return nil
}

// Migrate applies the embedded schema migrations and seeds the locale
// registry. Safe to call on every startup.
func (m *Module) Migrate(ctx context.Context) error {
	if m.deps.db != nil {
		if err := ApplyMigrations(ctx, m.deps.db); err != nil {
			return err
		}
	}
	return internalcatalog.SeedLocales(ctx, m.locales)
}

// Close releases the database when the module opened it itself.
func (m *Module) Close() error {
	if m.deps.ownsDB && m.deps.db != nil {
		return m.deps.db.Close()
	}
	return nil
}

// DB exposes the underlying bun database for advanced integrations. Nil for
// memory storage.
func (m *Module) DB() *bun.DB {
	return m.deps.db
}

// PracticeAreas returns the practice-area catalog service.
func (m *Module) PracticeAreas() *PracticeAreaCatalog {
	return m.practiceAreas
}

// LegalServices returns the service catalog service.
func (m *Module) LegalServices() *ServiceCatalog {
	return m.services
}

// Specialists returns the specialist-profile catalog service.
func (m *Module) Specialists() *SpecialistCatalog {
	return m.specialists
}

// Companies returns the company catalog service.
func (m *Module) Companies() *CompanyCatalog {
	return m.companies
}

// Locales returns the locale registry.
func (m *Module) Locales() LocaleRegistry {
	return m.locales
}

// Sync returns the sheet reconciliation engine.
func (m *Module) Sync() *SyncEngine {
	return m.engine
}
