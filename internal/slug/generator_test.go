package slug_test

import (
	"testing"

	"github.com/advokati/go-directory/catalog"
	"github.com/advokati/go-directory/internal/slug"
)

func TestGenerateLatin(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Family Law", "family-law"},
		{"Visa Services", "visa-services"},
		{"Visa  Services", "visa-services"},
		{"  Tax Law  ", "tax-law"},
		{"Café & Bistro Licensing", "cafe-bistro-licensing"},
		{"Already-Hyphenated Title", "already-hyphenated-title"},
		{"M&A / Due-Diligence", "ma-due-diligence"},
		{"...", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := slug.Generate(tc.title, catalog.LocaleEnglish); got != tc.want {
			t.Fatalf("Generate(%q, en) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestGenerateGeorgianKeepsScript(t *testing.T) {
	got := slug.Generate("მიგრაცია", catalog.LocaleGeorgian)
	if got != "მიგრაცია" {
		t.Fatalf("expected Georgian slug preserved, got %q", got)
	}

	got = slug.Generate("საოჯახო სამართალი", catalog.LocaleGeorgian)
	if got != "საოჯახო-სამართალი" {
		t.Fatalf("expected hyphen-joined Georgian slug, got %q", got)
	}

	for _, r := range got {
		if r >= 'a' && r <= 'z' {
			t.Fatalf("Georgian slug %q contains Latin characters", got)
		}
	}
}

func TestGenerateRussian(t *testing.T) {
	got := slug.Generate("Семейное право", catalog.LocaleRussian)
	if got != "семейное-право" {
		t.Fatalf("expected lower-cased Russian slug, got %q", got)
	}

	got = slug.Generate("«Визовые» услуги", catalog.LocaleRussian)
	if got != "визовые-услуги" {
		t.Fatalf("expected quotes stripped, got %q", got)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for range 5 {
		if slug.Generate("Corporate Law", catalog.LocaleEnglish) != "corporate-law" {
			t.Fatal("generation is not deterministic")
		}
	}
}

func TestGenerateCaseAndAccentCollapse(t *testing.T) {
	a := slug.Generate("VISA Services", catalog.LocaleEnglish)
	b := slug.Generate("visa services", catalog.LocaleEnglish)
	if a != b {
		t.Fatalf("case variants should collapse: %q vs %q", a, b)
	}
}
