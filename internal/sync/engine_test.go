package sync

import (
	"context"
	"testing"

	"github.com/advokati/go-directory/internal/catalog"
)

func newTestEngine(t *testing.T) (*Engine, *PracticeAreaCatalog, *ServiceCatalog) {
	t.Helper()
	parents := catalog.NewCatalog[*catalog.PracticeArea, *catalog.PracticeAreaTranslation](
		catalog.NewMemoryEntityRepository(catalog.PracticeAreaHandlers()),
		catalog.PracticeAreaHandlers(),
	)
	children := catalog.NewCatalog[*catalog.Service, *catalog.ServiceTranslation](
		catalog.NewMemoryEntityRepository(catalog.ServiceHandlers()),
		catalog.ServiceHandlers(),
	)
	return NewEngine(parents, children), parents, children
}

func sheetFixture() RunRequest {
	return RunRequest{
		Canonical: Source{
			Locale: catalog.LocaleEnglish,
			Groups: []Group{
				{ParentTitle: "Family Law", ChildTitles: []string{"Divorce", "Adoption"}},
				{ParentTitle: "Tax Law", ChildTitles: []string{"Tax Disputes"}},
			},
		},
		Sources: []Source{
			{
				Locale: catalog.LocaleGeorgian,
				Groups: []Group{
					{ParentTitle: "საოჯახო სამართალი", ChildTitles: []string{"განქორწინება", "შვილად აყვანა"}},
					{ParentTitle: "საგადასახადო სამართალი", ChildTitles: []string{"საგადასახადო დავები"}},
				},
			},
			{
				Locale: catalog.LocaleRussian,
				Groups: []Group{
					{ParentTitle: "Семейное право", ChildTitles: []string{"Развод", "Усыновление"}},
					{ParentTitle: "Налоговое право", ChildTitles: []string{"Налоговые споры"}},
				},
			},
		},
	}
}

func TestEngineRunCreatesCatalog(t *testing.T) {
	engine, parents, children := newTestEngine(t)
	ctx := context.Background()

	report, err := engine.Run(ctx, sheetFixture())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if report.ParentsCreated != 2 || report.ChildrenCreated != 3 {
		t.Fatalf("created %d parents, %d children; want 2 and 3", report.ParentsCreated, report.ChildrenCreated)
	}
	// every entity gets en, ka and ru rows
	if report.TranslationsCreated != 15 {
		t.Fatalf("TranslationsCreated = %d, want 15", report.TranslationsCreated)
	}
	if len(report.Warnings) != 0 {
		t.Fatalf("warnings = %v, want none", report.Warnings)
	}

	family, err := parents.GetBySlug(ctx, "family-law")
	if err != nil {
		t.Fatalf("GetBySlug(family-law) error = %v", err)
	}
	translations, err := parents.ListTranslations(ctx, family.ID)
	if err != nil {
		t.Fatalf("ListTranslations() error = %v", err)
	}
	if len(translations) != 3 {
		t.Fatalf("family law has %d translations, want 3", len(translations))
	}

	divorce, err := children.GetBySlug(ctx, "divorce")
	if err != nil {
		t.Fatalf("GetBySlug(divorce) error = %v", err)
	}
	if divorce.PracticeAreaID != family.ID {
		t.Fatalf("divorce parent = %s, want family law %s", divorce.PracticeAreaID, family.ID)
	}

	ka, err := children.GetTranslation(ctx, divorce.ID, catalog.LocaleGeorgian)
	if err != nil {
		t.Fatalf("GetTranslation(ka) error = %v", err)
	}
	if ka.Slug != "განქორწინება" {
		t.Fatalf("ka slug = %q", ka.Slug)
	}
}

func TestEngineRunIsIdempotent(t *testing.T) {
	engine, _, _ := newTestEngine(t)
	ctx := context.Background()

	if _, err := engine.Run(ctx, sheetFixture()); err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	report, err := engine.Run(ctx, sheetFixture())
	if err != nil {
		t.Fatalf("second Run() error = %v", err)
	}
	if report.Changed() {
		t.Fatalf("second run reported changes: %s", report.Summary())
	}
	if report.ParentsMatched != 2 || report.ChildrenMatched != 3 {
		t.Fatalf("matched %d parents, %d children; want 2 and 3", report.ParentsMatched, report.ChildrenMatched)
	}
	if report.TranslationsUnchanged != 15 {
		t.Fatalf("TranslationsUnchanged = %d, want 15", report.TranslationsUnchanged)
	}
}

func TestEngineRunRetitlesTranslation(t *testing.T) {
	engine, parents, _ := newTestEngine(t)
	ctx := context.Background()

	if _, err := engine.Run(ctx, sheetFixture()); err != nil {
		t.Fatalf("first Run() error = %v", err)
	}

	req := sheetFixture()
	req.Sources[1].Groups[0].ParentTitle = "Семейное и наследственное право"
	report, err := engine.Run(ctx, req)
	if err != nil {
		t.Fatalf("second Run() error = %v", err)
	}
	if report.TranslationsUpdated != 1 {
		t.Fatalf("TranslationsUpdated = %d, want 1", report.TranslationsUpdated)
	}

	family, err := parents.GetBySlug(ctx, "family-law")
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	ru, err := parents.GetTranslation(ctx, family.ID, catalog.LocaleRussian)
	if err != nil {
		t.Fatalf("GetTranslation(ru) error = %v", err)
	}
	if ru.Slug != "семейное-и-наследственное-право" {
		t.Fatalf("ru slug = %q, want regenerated", ru.Slug)
	}
}

func TestEngineRunWarnsOnCountMismatch(t *testing.T) {
	engine, _, _ := newTestEngine(t)
	ctx := context.Background()

	req := sheetFixture()
	// the ka sheet is missing the second practice area and one service
	req.Sources[0].Groups = req.Sources[0].Groups[:1]
	req.Sources[0].Groups[0].ChildTitles = req.Sources[0].Groups[0].ChildTitles[:1]

	report, err := engine.Run(ctx, req)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var groupMismatch, childMismatch bool
	for _, w := range report.Warnings {
		switch w.Kind {
		case WarningGroupCountMismatch:
			if w.Locale == catalog.LocaleGeorgian {
				groupMismatch = true
			}
		case WarningChildCountMismatch:
			if w.Locale == catalog.LocaleGeorgian {
				childMismatch = true
			}
		}
	}
	if !groupMismatch || !childMismatch {
		t.Fatalf("warnings = %v, want group and child count mismatches", report.Warnings)
	}

	// aligned rows still land
	if report.TranslationsCreated != 12 {
		t.Fatalf("TranslationsCreated = %d, want 12", report.TranslationsCreated)
	}
}

func TestEngineRunRejectsDuplicateLocales(t *testing.T) {
	engine, _, _ := newTestEngine(t)

	req := sheetFixture()
	req.Sources[0].Locale = catalog.LocaleEnglish
	if _, err := engine.Run(context.Background(), req); err == nil {
		t.Fatal("Run() accepted a source sharing the canonical locale")
	}
}

func TestEngineRunRejectsUnknownLocale(t *testing.T) {
	engine, _, _ := newTestEngine(t)

	req := sheetFixture()
	req.Canonical.Locale = catalog.Locale("de")
	if _, err := engine.Run(context.Background(), req); err != catalog.ErrUnknownLocale {
		t.Fatalf("Run() error = %v, want ErrUnknownLocale", err)
	}
}
