package sync

import (
	"fmt"
	"strings"

	"github.com/advokati/go-directory/internal/catalog"
)

// WarningKind classifies non-fatal reconciliation findings.
type WarningKind string

const (
	// WarningOrphanRow marks a service row that precedes any practice area.
	WarningOrphanRow WarningKind = "orphan_row"
	// WarningGroupCountMismatch marks a locale sheet whose practice-area
	// count differs from the canonical sheet.
	WarningGroupCountMismatch WarningKind = "group_count_mismatch"
	// WarningChildCountMismatch marks a group whose service count differs
	// from the canonical sheet, so positional alignment is unsafe past the
	// shorter list.
	WarningChildCountMismatch WarningKind = "child_count_mismatch"
	// WarningEmptyTitle marks a blank cell where a title was expected.
	WarningEmptyTitle WarningKind = "empty_title"
)

// Warning is one non-fatal finding from a reconciliation run. Runs continue
// past warnings; the affected rows are simply skipped.
type Warning struct {
	Kind    WarningKind
	Locale  catalog.Locale
	Group   int
	Message string
}

// Report accumulates what a reconciliation run did.
type Report struct {
	ParentsCreated  int
	ParentsMatched  int
	ChildrenCreated int
	ChildrenMatched int

	TranslationsCreated   int
	TranslationsUpdated   int
	TranslationsUnchanged int

	Warnings []Warning
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{}
}

func (r *Report) warn(w Warning) {
	r.Warnings = append(r.Warnings, w)
}

func (r *Report) countTranslation(outcome catalog.UpsertOutcome) {
	switch outcome {
	case catalog.OutcomeCreated:
		r.TranslationsCreated++
	case catalog.OutcomeUpdated:
		r.TranslationsUpdated++
	default:
		r.TranslationsUnchanged++
	}
}

// Changed reports whether the run wrote anything. A repeat run over an
// unchanged sheet reports false.
func (r *Report) Changed() bool {
	return r.ParentsCreated > 0 ||
		r.ChildrenCreated > 0 ||
		r.TranslationsCreated > 0 ||
		r.TranslationsUpdated > 0
}

// Summary renders the report for CLI output and logs.
func (r *Report) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "practice areas: %d created, %d matched\n", r.ParentsCreated, r.ParentsMatched)
	fmt.Fprintf(&b, "services: %d created, %d matched\n", r.ChildrenCreated, r.ChildrenMatched)
	fmt.Fprintf(&b, "translations: %d created, %d updated, %d unchanged\n",
		r.TranslationsCreated, r.TranslationsUpdated, r.TranslationsUnchanged)
	fmt.Fprintf(&b, "warnings: %d", len(r.Warnings))
	for _, w := range r.Warnings {
		fmt.Fprintf(&b, "\n  [%s] %s", w.Kind, w.Message)
	}
	return b.String()
}
