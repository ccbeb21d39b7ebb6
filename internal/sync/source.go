package sync

import (
	"errors"
	"fmt"
	"strings"

	"github.com/advokati/go-directory/internal/catalog"
)

var (
	// ErrNoRows is returned when a sheet export holds no usable rows.
	ErrNoRows = errors.New("sync: source has no rows")
	// ErrAmbiguousColumns is returned when column detection cannot tell the
	// practice-area column from the service column confidently enough to
	// proceed without an explicit mapping.
	ErrAmbiguousColumns = errors.New("sync: ambiguous column layout, explicit mapping required")
)

// DetectionThreshold is the minimum confidence DetectColumns requires before
// a detected layout is applied automatically.
const DetectionThreshold = 0.25

// ColumnMapping names the sheet columns holding the practice-area title and
// the service title.
type ColumnMapping struct {
	ParentColumn int
	ChildColumn  int
}

// Group is one practice area and its services, in sheet order.
type Group struct {
	ParentTitle string
	ChildTitles []string
}

// Source is one locale's sheet, reduced to ordered groups.
type Source struct {
	Locale catalog.Locale
	Groups []Group
}

// DetectColumns guesses which of the two densest columns is the parent
// column. Practice-area cells repeat down their services (or are left blank
// under a merged cell), so the column with the lower distinct-value ratio is
// the parent. The returned confidence is the ratio gap between the two
// columns; callers must not apply a mapping below DetectionThreshold.
func DetectColumns(rows [][]string) (ColumnMapping, float64, error) {
	if len(rows) == 0 {
		return ColumnMapping{}, 0, ErrNoRows
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	type columnStats struct {
		index    int
		filled   int
		distinct int
	}
	stats := make([]columnStats, 0, width)
	for col := 0; col < width; col++ {
		seen := map[string]struct{}{}
		filled := 0
		for _, row := range rows {
			value := strings.TrimSpace(cell(row, col))
			if value == "" {
				continue
			}
			filled++
			seen[value] = struct{}{}
		}
		if filled > 0 {
			stats = append(stats, columnStats{index: col, filled: filled, distinct: len(seen)})
		}
	}
	if len(stats) < 2 {
		return ColumnMapping{}, 0, ErrAmbiguousColumns
	}

	// keep the two densest columns, preserving sheet order
	for len(stats) > 2 {
		thinnest := 0
		for i := range stats {
			if stats[i].filled < stats[thinnest].filled {
				thinnest = i
			}
		}
		stats = append(stats[:thinnest], stats[thinnest+1:]...)
	}

	ratioA := float64(stats[0].distinct) / float64(stats[0].filled)
	ratioB := float64(stats[1].distinct) / float64(stats[1].filled)

	mapping := ColumnMapping{ParentColumn: stats[0].index, ChildColumn: stats[1].index}
	confidence := ratioB - ratioA
	if ratioA > ratioB {
		mapping = ColumnMapping{ParentColumn: stats[1].index, ChildColumn: stats[0].index}
		confidence = ratioA - ratioB
	}
	if confidence < DetectionThreshold {
		return mapping, confidence, fmt.Errorf("%w: confidence %.2f", ErrAmbiguousColumns, confidence)
	}
	return mapping, confidence, nil
}

// BuildSource reduces raw sheet rows into ordered groups. Consecutive rows
// with the same parent cell belong to one group; an empty parent cell
// continues the current group, which is how spreadsheet exports render
// merged cells. Child cells before the first parent are dropped with a
// warning.
func BuildSource(locale catalog.Locale, rows [][]string, mapping ColumnMapping) (Source, []Warning) {
	source := Source{Locale: locale}
	var warnings []Warning

	for i, row := range rows {
		parent := strings.TrimSpace(cell(row, mapping.ParentColumn))
		child := strings.TrimSpace(cell(row, mapping.ChildColumn))
		if parent == "" && child == "" {
			continue
		}

		switch {
		case parent != "" && (len(source.Groups) == 0 || currentParent(&source) != parent):
			source.Groups = append(source.Groups, Group{ParentTitle: parent})
		case parent == "" && len(source.Groups) == 0:
			warnings = append(warnings, Warning{
				Kind:    WarningOrphanRow,
				Locale:  locale,
				Message: fmt.Sprintf("row %d: service %q appears before any practice area", i+1, child),
			})
			continue
		}

		if child != "" {
			last := &source.Groups[len(source.Groups)-1]
			last.ChildTitles = append(last.ChildTitles, child)
		}
	}
	return source, warnings
}

func currentParent(source *Source) string {
	return source.Groups[len(source.Groups)-1].ParentTitle
}

func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
