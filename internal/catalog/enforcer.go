package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Enforcer finalizes slug candidates against a uniqueness scope by suffixing
// -1, -2, … until a free token is found. It always terminates with a free
// slug; concurrent writers are caught by the storage-level unique index and
// retried by the service layer.
type Enforcer struct {
	index SlugIndex
	now   func() time.Time
}

// EnforcerOption configures an Enforcer at construction time.
type EnforcerOption func(*Enforcer)

// WithEnforcerClock overrides the clock used for synthetic fallback slugs.
func WithEnforcerClock(clock func() time.Time) EnforcerOption {
	return func(e *Enforcer) {
		if clock != nil {
			e.now = clock
		}
	}
}

// NewEnforcer constructs an Enforcer over the given slug index.
func NewEnforcer(index SlugIndex, opts ...EnforcerOption) *Enforcer {
	e := &Enforcer{
		index: index,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EnsureUnique returns a slug guaranteed unused within the scope at check
// time. An empty locale selects the base-slug scope. Empty candidates get a
// time-derived synthetic base before checking; the generator never invents
// identity, so this is the only place a fallback token is minted.
func (e *Enforcer) EnsureUnique(ctx context.Context, candidate string, locale Locale, exclude uuid.UUID) (string, error) {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		candidate = fmt.Sprintf("entry-%d", e.now().UTC().UnixNano())
	}

	slugValue := candidate
	for n := 1; ; n++ {
		taken, err := e.index.SlugExists(ctx, locale, slugValue, exclude)
		if err != nil {
			return "", err
		}
		if !taken {
			return slugValue, nil
		}
		slugValue = fmt.Sprintf("%s-%d", candidate, n)
	}
}
