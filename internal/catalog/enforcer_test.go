package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func seedPracticeArea(t *testing.T, repo *MemoryEntityRepository[*PracticeArea, *PracticeAreaTranslation], title, slugValue string) *PracticeArea {
	t.Helper()
	created, err := repo.Create(context.Background(), &PracticeArea{
		ID:    uuid.New(),
		Title: title,
		Slug:  slugValue,
	})
	if err != nil {
		t.Fatalf("seed practice area %q: %v", slugValue, err)
	}
	return created
}

func seedPracticeAreaTranslation(t *testing.T, repo *MemoryEntityRepository[*PracticeArea, *PracticeAreaTranslation], entityID uuid.UUID, locale Locale, title, slugValue string) *PracticeAreaTranslation {
	t.Helper()
	created, err := repo.CreateTranslation(context.Background(), &PracticeAreaTranslation{
		ID:             uuid.New(),
		PracticeAreaID: entityID,
		Locale:         locale,
		Title:          title,
		Slug:           slugValue,
	})
	if err != nil {
		t.Fatalf("seed translation %s/%q: %v", locale, slugValue, err)
	}
	return created
}

func TestEnforcerFreeCandidate(t *testing.T) {
	repo := NewMemoryEntityRepository(PracticeAreaHandlers())
	enforcer := NewEnforcer(repo)

	got, err := enforcer.EnsureUnique(context.Background(), "family-law", "", uuid.Nil)
	if err != nil {
		t.Fatalf("EnsureUnique() error = %v", err)
	}
	if got != "family-law" {
		t.Fatalf("EnsureUnique() = %q, want %q", got, "family-law")
	}
}

func TestEnforcerSuffixesOnCollision(t *testing.T) {
	repo := NewMemoryEntityRepository(PracticeAreaHandlers())
	seedPracticeArea(t, repo, "Family Law", "family-law")
	seedPracticeArea(t, repo, "Family Law", "family-law-1")
	enforcer := NewEnforcer(repo)

	got, err := enforcer.EnsureUnique(context.Background(), "family-law", "", uuid.Nil)
	if err != nil {
		t.Fatalf("EnsureUnique() error = %v", err)
	}
	if got != "family-law-2" {
		t.Fatalf("EnsureUnique() = %q, want %q", got, "family-law-2")
	}
}

func TestEnforcerExcludesOwnRecord(t *testing.T) {
	repo := NewMemoryEntityRepository(PracticeAreaHandlers())
	owner := seedPracticeArea(t, repo, "Family Law", "family-law")
	enforcer := NewEnforcer(repo)

	got, err := enforcer.EnsureUnique(context.Background(), "family-law", "", owner.ID)
	if err != nil {
		t.Fatalf("EnsureUnique() error = %v", err)
	}
	if got != "family-law" {
		t.Fatalf("EnsureUnique() = %q, want own slug kept", got)
	}
}

func TestEnforcerLocaleScopesAreIndependent(t *testing.T) {
	repo := NewMemoryEntityRepository(PracticeAreaHandlers())
	area := seedPracticeArea(t, repo, "Migration", "migration")
	seedPracticeAreaTranslation(t, repo, area.ID, LocaleRussian, "Миграция", "миграция")
	enforcer := NewEnforcer(repo)

	got, err := enforcer.EnsureUnique(context.Background(), "миграция", LocaleGeorgian, uuid.Nil)
	if err != nil {
		t.Fatalf("EnsureUnique() error = %v", err)
	}
	if got != "миграция" {
		t.Fatalf("EnsureUnique() = %q, ru slug should not collide with ka scope", got)
	}
}

func TestEnforcerSyntheticFallbackForEmptyCandidate(t *testing.T) {
	repo := NewMemoryEntityRepository(PracticeAreaHandlers())
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	enforcer := NewEnforcer(repo, WithEnforcerClock(func() time.Time { return fixed }))

	got, err := enforcer.EnsureUnique(context.Background(), "   ", "", uuid.Nil)
	if err != nil {
		t.Fatalf("EnsureUnique() error = %v", err)
	}
	want := "entry-" + "1748779200000000000"
	if got != want {
		t.Fatalf("EnsureUnique() = %q, want %q", got, want)
	}
}
