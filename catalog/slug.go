package catalog

import "github.com/goliatone/go-slug"

// SlugNormalizer exposes the slug normalizer interface.
type SlugNormalizer = slug.Normalizer

// DefaultSlugNormalizer returns the default Latin-script slug normalizer.
func DefaultSlugNormalizer() SlugNormalizer {
	return slug.Default()
}

// NormalizeSlug applies the default Latin-script slug normalization rules.
// Georgian and Russian slugs go through the locale-aware generator instead.
func NormalizeSlug(value string) (string, error) {
	return slug.Normalize(value)
}

// IsValidSlug reports whether the slug matches the default Latin-script rules.
func IsValidSlug(value string) bool {
	return slug.IsValid(value)
}
