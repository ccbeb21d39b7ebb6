package catalog

import (
	"fmt"
	"strings"
)

// Locale identifies one of the supported content languages.
type Locale string

const (
	// LocaleGeorgian is the canonical locale: resolution falls back to it
	// before reaching the base record.
	LocaleGeorgian Locale = "ka"
	LocaleEnglish  Locale = "en"
	LocaleRussian  Locale = "ru"
)

// DefaultLocale is the canonical fallback locale for the directory.
const DefaultLocale = LocaleGeorgian

// Locales returns the supported locales in fallback-priority order.
func Locales() []Locale {
	return []Locale{LocaleGeorgian, LocaleEnglish, LocaleRussian}
}

// Valid reports whether the locale is one of the supported codes.
func (l Locale) Valid() bool {
	switch l {
	case LocaleGeorgian, LocaleEnglish, LocaleRussian:
		return true
	}
	return false
}

func (l Locale) String() string {
	return string(l)
}

// LatinScript reports whether slugs for this locale are restricted to the
// ASCII range. Georgian and Russian slugs keep their native script.
func (l Locale) LatinScript() bool {
	return l == LocaleEnglish
}

// ParseLocale normalizes and validates a locale code.
func ParseLocale(code string) (Locale, error) {
	normalized := Locale(strings.ToLower(strings.TrimSpace(code)))
	if !normalized.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownLocale, code)
	}
	return normalized, nil
}
