// Package slug derives URL-safe tokens from human titles. Latin-script
// locales fold to ASCII; Georgian and Russian titles keep their native
// script and are never transliterated.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/advokati/go-directory/catalog"
)

// latinFold decomposes characters and strips combining marks so accented
// Latin input ("Café") folds onto its ASCII skeleton.
var latinFold = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var casers = map[catalog.Locale]cases.Caser{
	catalog.LocaleGeorgian: cases.Lower(language.Georgian),
	catalog.LocaleRussian:  cases.Lower(language.Russian),
}

const quoteChars = "\"'`´’‘‚“”„«»"

// Generate derives a deterministic slug candidate from a title. It returns
// the empty string when the title carries no usable characters; the caller
// decides the fallback identity, Generate never invents one.
func Generate(title string, locale catalog.Locale) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}
	if locale.LatinScript() {
		return generateLatin(title)
	}
	return generateNative(title, locale)
}

func generateLatin(title string) string {
	folded, _, err := transform.String(latinFold, title)
	if err != nil {
		folded = title
	}
	lowered := strings.ToLower(folded)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || unicode.IsSpace(r):
			b.WriteByte('-')
		}
	}
	return collapseHyphens(b.String())
}

func generateNative(title string, locale catalog.Locale) string {
	normalized := norm.NFKC.String(title)
	if caser, ok := casers[locale]; ok {
		normalized = caser.String(normalized)
	} else {
		normalized = strings.ToLower(normalized)
	}

	var b strings.Builder
	b.Grow(len(normalized))
	for _, r := range normalized {
		switch {
		case strings.ContainsRune(quoteChars, r):
			// quotes vanish instead of becoming separators
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	return collapseHyphens(b.String())
}

func collapseHyphens(value string) string {
	for strings.Contains(value, "--") {
		value = strings.ReplaceAll(value, "--", "-")
	}
	return strings.Trim(value, "-")
}
