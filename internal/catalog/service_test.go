package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newPracticeAreaCatalog(t *testing.T) (*Catalog[*PracticeArea, *PracticeAreaTranslation], *MemoryEntityRepository[*PracticeArea, *PracticeAreaTranslation]) {
	t.Helper()
	repo := NewMemoryEntityRepository(PracticeAreaHandlers())
	svc := NewCatalog[*PracticeArea, *PracticeAreaTranslation](repo, PracticeAreaHandlers(),
		WithClock(func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }),
	)
	return svc, repo
}

func newServiceCatalog(t *testing.T) *Catalog[*Service, *ServiceTranslation] {
	t.Helper()
	repo := NewMemoryEntityRepository(ServiceHandlers())
	return NewCatalog[*Service, *ServiceTranslation](repo, ServiceHandlers())
}

func TestCatalogCreateGeneratesSlug(t *testing.T) {
	svc, _ := newPracticeAreaCatalog(t)

	created, err := svc.Create(context.Background(), CreateRequest{
		Title:       "Family Law",
		TitleLocale: LocaleEnglish,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.Slug != "family-law" {
		t.Fatalf("Slug = %q, want %q", created.Slug, "family-law")
	}
	if created.ID == uuid.Nil {
		t.Fatal("Create() left ID unset")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatal("Create() left timestamps unset")
	}
}

func TestCatalogCreateDefaultsToCanonicalLocale(t *testing.T) {
	svc, _ := newPracticeAreaCatalog(t)

	created, err := svc.Create(context.Background(), CreateRequest{Title: "საოჯახო სამართალი"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.Slug != "საოჯახო-სამართალი" {
		t.Fatalf("Slug = %q, want native ka slug", created.Slug)
	}
}

func TestCatalogCreateSuffixesDuplicateTitles(t *testing.T) {
	svc, _ := newPracticeAreaCatalog(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, CreateRequest{Title: "Family Law", TitleLocale: LocaleEnglish})
	if err != nil {
		t.Fatalf("first Create() error = %v", err)
	}
	second, err := svc.Create(ctx, CreateRequest{Title: "Family Law", TitleLocale: LocaleEnglish})
	if err != nil {
		t.Fatalf("second Create() error = %v", err)
	}
	if first.Slug != "family-law" || second.Slug != "family-law-1" {
		t.Fatalf("slugs = %q, %q; want family-law, family-law-1", first.Slug, second.Slug)
	}
}

func TestCatalogCreateExplicitSlug(t *testing.T) {
	svc, _ := newPracticeAreaCatalog(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateRequest{
		Title:       "Family Law",
		TitleLocale: LocaleEnglish,
		Slug:        "Family Law Practice",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.Slug != "family-law-practice" {
		t.Fatalf("Slug = %q, want normalized override", created.Slug)
	}

	native, err := svc.Create(ctx, CreateRequest{Title: "მიგრაცია", Slug: "მიგრაცია"})
	if err != nil {
		t.Fatalf("Create(native slug) error = %v", err)
	}
	if native.Slug != "მიგრაცია" {
		t.Fatalf("Slug = %q, want native override kept", native.Slug)
	}

	if _, err := svc.Create(ctx, CreateRequest{Title: "მიგრაცია", Slug: "არა კარგი!"}); err != ErrSlugInvalid {
		t.Fatalf("invalid native slug error = %v, want ErrSlugInvalid", err)
	}
}

func TestCatalogCreateValidation(t *testing.T) {
	svc, _ := newPracticeAreaCatalog(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateRequest{Title: "   "}); err != ErrTitleRequired {
		t.Fatalf("blank title error = %v, want ErrTitleRequired", err)
	}
	if _, err := svc.Create(ctx, CreateRequest{Title: "X", TitleLocale: Locale("de")}); err != ErrUnknownLocale {
		t.Fatalf("unknown locale error = %v, want ErrUnknownLocale", err)
	}
	_, err := svc.Create(ctx, CreateRequest{
		Title: "X",
		Translations: []TranslationInput{
			{Locale: LocaleRussian, Title: "А"},
			{Locale: LocaleRussian, Title: "Б"},
		},
	})
	if err != ErrDuplicateLocale {
		t.Fatalf("duplicate locale error = %v, want ErrDuplicateLocale", err)
	}
}

func TestCatalogCreateServiceRequiresParent(t *testing.T) {
	svc := newServiceCatalog(t)

	if _, err := svc.Create(context.Background(), CreateRequest{Title: "Visa Services", TitleLocale: LocaleEnglish}); err != ErrParentRequired {
		t.Fatalf("Create() error = %v, want ErrParentRequired", err)
	}

	parentID := uuid.New()
	created, err := svc.Create(context.Background(), CreateRequest{
		Title:       "Visa Services",
		TitleLocale: LocaleEnglish,
		ParentID:    parentID,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.PracticeAreaID != parentID {
		t.Fatalf("PracticeAreaID = %s, want %s", created.PracticeAreaID, parentID)
	}
}

func TestCatalogCreateWithTranslations(t *testing.T) {
	svc, _ := newPracticeAreaCatalog(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateRequest{
		Title:       "Family Law",
		TitleLocale: LocaleEnglish,
		Translations: []TranslationInput{
			{Locale: LocaleGeorgian, Title: "საოჯახო სამართალი"},
			{Locale: LocaleRussian, Title: "Семейное право", Description: strPtr("описание")},
		},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	translations, err := svc.ListTranslations(ctx, created.ID)
	if err != nil {
		t.Fatalf("ListTranslations() error = %v", err)
	}
	if len(translations) != 2 {
		t.Fatalf("ListTranslations() = %d rows, want 2", len(translations))
	}

	ka, err := svc.GetTranslation(ctx, created.ID, LocaleGeorgian)
	if err != nil {
		t.Fatalf("GetTranslation(ka) error = %v", err)
	}
	if ka.Slug != "საოჯახო-სამართალი" {
		t.Fatalf("ka slug = %q, want native script preserved", ka.Slug)
	}

	ru, err := svc.GetTranslation(ctx, created.ID, LocaleRussian)
	if err != nil {
		t.Fatalf("GetTranslation(ru) error = %v", err)
	}
	if ru.Slug != "семейное-право" {
		t.Fatalf("ru slug = %q", ru.Slug)
	}
	if ru.Description == nil || *ru.Description != "описание" {
		t.Fatalf("ru description = %v, want applied", ru.Description)
	}
}

func TestCatalogRenameRegeneratesSlug(t *testing.T) {
	svc, _ := newPracticeAreaCatalog(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateRequest{Title: "Family Law", TitleLocale: LocaleEnglish})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	renamed, err := svc.Rename(ctx, RenameRequest{ID: created.ID, Title: "Family and Inheritance Law", TitleLocale: LocaleEnglish})
	if err != nil {
		t.Fatalf("Rename() error = %v", err)
	}
	if renamed.Slug != "family-and-inheritance-law" {
		t.Fatalf("Slug = %q after rename", renamed.Slug)
	}

	// renaming to the same title is a no-op
	same, err := svc.Rename(ctx, RenameRequest{ID: created.ID, Title: "Family and Inheritance Law", TitleLocale: LocaleEnglish})
	if err != nil {
		t.Fatalf("Rename(no-op) error = %v", err)
	}
	if same.Slug != "family-and-inheritance-law" {
		t.Fatalf("no-op rename changed slug to %q", same.Slug)
	}
}

func TestCatalogRenameKeepsOwnSlugOutOfScope(t *testing.T) {
	svc, _ := newPracticeAreaCatalog(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateRequest{Title: "Tax Law", TitleLocale: LocaleEnglish})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// rename away and back; the entity must reclaim its original slug
	// instead of getting tax-law-1.
	if _, err := svc.Rename(ctx, RenameRequest{ID: created.ID, Title: "Taxation", TitleLocale: LocaleEnglish}); err != nil {
		t.Fatalf("Rename() error = %v", err)
	}
	back, err := svc.Rename(ctx, RenameRequest{ID: created.ID, Title: "Tax Law", TitleLocale: LocaleEnglish})
	if err != nil {
		t.Fatalf("Rename(back) error = %v", err)
	}
	if back.Slug != "tax-law" {
		t.Fatalf("Slug = %q, want original slug reclaimed", back.Slug)
	}
}

func TestCatalogUpsertTranslationLifecycle(t *testing.T) {
	svc, _ := newPracticeAreaCatalog(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateRequest{Title: "Family Law", TitleLocale: LocaleEnglish})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// first localized edit creates the row
	tr, outcome, err := svc.UpsertTranslation(ctx, UpsertTranslationRequest{
		EntityID:    created.ID,
		Translation: TranslationInput{Locale: LocaleRussian, Title: "Семейное право"},
	})
	if err != nil {
		t.Fatalf("UpsertTranslation(create) error = %v", err)
	}
	if outcome != OutcomeCreated {
		t.Fatalf("outcome = %d, want OutcomeCreated", outcome)
	}
	if tr.Slug != "семейное-право" {
		t.Fatalf("slug = %q", tr.Slug)
	}

	// identical payload is a no-op
	_, outcome, err = svc.UpsertTranslation(ctx, UpsertTranslationRequest{
		EntityID:    created.ID,
		Translation: TranslationInput{Locale: LocaleRussian, Title: "Семейное право"},
	})
	if err != nil {
		t.Fatalf("UpsertTranslation(repeat) error = %v", err)
	}
	if outcome != OutcomeUnchanged {
		t.Fatalf("outcome = %d, want OutcomeUnchanged", outcome)
	}

	// retitling regenerates the locale slug
	retitled, outcome, err := svc.UpsertTranslation(ctx, UpsertTranslationRequest{
		EntityID:    created.ID,
		Translation: TranslationInput{Locale: LocaleRussian, Title: "Наследственное право"},
	})
	if err != nil {
		t.Fatalf("UpsertTranslation(retitle) error = %v", err)
	}
	if outcome != OutcomeUpdated {
		t.Fatalf("outcome = %d, want OutcomeUpdated", outcome)
	}
	if retitled.Slug != "наследственное-право" {
		t.Fatalf("slug = %q after retitle", retitled.Slug)
	}
	if retitled.ID != tr.ID {
		t.Fatal("retitle must update the row in place, not create a new one")
	}

	// a description-only change updates without touching the slug
	updated, outcome, err := svc.UpsertTranslation(ctx, UpsertTranslationRequest{
		EntityID: created.ID,
		Translation: TranslationInput{
			Locale:      LocaleRussian,
			Title:       "Наследственное право",
			Description: strPtr("описание"),
		},
	})
	if err != nil {
		t.Fatalf("UpsertTranslation(description) error = %v", err)
	}
	if outcome != OutcomeUpdated {
		t.Fatalf("outcome = %d, want OutcomeUpdated", outcome)
	}
	if updated.Slug != "наследственное-право" {
		t.Fatalf("description change moved slug to %q", updated.Slug)
	}
}

func TestCatalogUpsertTranslationValidation(t *testing.T) {
	svc, _ := newPracticeAreaCatalog(t)
	ctx := context.Background()

	if _, _, err := svc.UpsertTranslation(ctx, UpsertTranslationRequest{
		Translation: TranslationInput{Locale: LocaleRussian, Title: "X"},
	}); err != ErrEntityIDRequired {
		t.Fatalf("missing entity id error = %v, want ErrEntityIDRequired", err)
	}

	if _, _, err := svc.UpsertTranslation(ctx, UpsertTranslationRequest{
		EntityID:    uuid.New(),
		Translation: TranslationInput{Locale: LocaleRussian, Title: "X"},
	}); !IsNotFound(err) {
		t.Fatalf("unknown entity error = %v, want not found", err)
	}

	created, err := svc.Create(ctx, CreateRequest{Title: "Family Law", TitleLocale: LocaleEnglish})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, _, err := svc.UpsertTranslation(ctx, UpsertTranslationRequest{
		EntityID:    created.ID,
		Translation: TranslationInput{Locale: Locale("de"), Title: "X"},
	}); err != ErrUnknownLocale {
		t.Fatalf("unknown locale error = %v, want ErrUnknownLocale", err)
	}
	if _, _, err := svc.UpsertTranslation(ctx, UpsertTranslationRequest{
		EntityID:    created.ID,
		Translation: TranslationInput{Locale: LocaleRussian, Title: " "},
	}); err != ErrTitleRequired {
		t.Fatalf("blank title error = %v, want ErrTitleRequired", err)
	}
}

func TestCatalogResolveRoundTrip(t *testing.T) {
	svc, _ := newPracticeAreaCatalog(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateRequest{
		Title:       "Family Law",
		TitleLocale: LocaleEnglish,
		Translations: []TranslationInput{
			{Locale: LocaleGeorgian, Title: "საოჯახო სამართალი"},
		},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	fields, err := svc.Resolve(ctx, created.ID, LocaleRussian)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	// no ru translation: canonical ka supplies title and slug
	if fields.Title != "საოჯახო სამართალი" {
		t.Fatalf("Title = %q, want ka fallback", fields.Title)
	}

	found, err := svc.FindBySlug(ctx, LocaleGeorgian, "საოჯახო-სამართალი")
	if err != nil {
		t.Fatalf("FindBySlug() error = %v", err)
	}
	if found.ID != created.ID {
		t.Fatalf("FindBySlug() resolved %s, want %s", found.ID, created.ID)
	}
}
