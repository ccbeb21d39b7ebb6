package sync

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/advokati/go-directory/internal/catalog"
	"github.com/advokati/go-directory/internal/logging"
	"github.com/advokati/go-directory/pkg/interfaces"
)

// PracticeAreaCatalog and ServiceCatalog are the two catalog services the
// engine writes through.
type (
	PracticeAreaCatalog = catalog.Catalog[*catalog.PracticeArea, *catalog.PracticeAreaTranslation]
	ServiceCatalog      = catalog.Catalog[*catalog.Service, *catalog.ServiceTranslation]
)

// Engine reconciles sheet exports into the practice-area and service
// catalogs. Runs are idempotent: entities are matched by title under their
// parent, and translation upserts only write when content actually changed.
type Engine struct {
	parents  *PracticeAreaCatalog
	children *ServiceCatalog
	logger   interfaces.Logger
}

// EngineOption configures the engine.
type EngineOption func(*Engine)

// WithEngineLogger injects the engine logger.
func WithEngineLogger(logger interfaces.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine constructs the reconciliation engine.
func NewEngine(parents *PracticeAreaCatalog, children *ServiceCatalog, opts ...EngineOption) *Engine {
	e := &Engine{
		parents:  parents,
		children: children,
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RunRequest carries one reconciliation batch. The canonical source defines
// the entity set and ordering; the remaining sources contribute translations
// by positional alignment against it.
type RunRequest struct {
	Canonical Source
	Sources   []Source
}

// alignedGroup records, in canonical sheet order, which entity each row slot
// resolved to. uuid.Nil marks a skipped slot.
type alignedGroup struct {
	parentID uuid.UUID
	childIDs []uuid.UUID
}

// Run reconciles the batch and reports what changed. Cross-locale rows have
// no shared key, so alignment is positional; count mismatches produce
// warnings and stop alignment at the shorter list instead of guessing.
func (e *Engine) Run(ctx context.Context, req RunRequest) (*Report, error) {
	report := NewReport()

	if !req.Canonical.Locale.Valid() {
		return nil, catalog.ErrUnknownLocale
	}
	for _, source := range req.Sources {
		if !source.Locale.Valid() {
			return nil, catalog.ErrUnknownLocale
		}
		if source.Locale == req.Canonical.Locale {
			return nil, fmt.Errorf("sync: locale %s supplied as both canonical and secondary source", source.Locale)
		}
	}

	parentIndex, childIndex, err := e.loadIndexes(ctx)
	if err != nil {
		return nil, err
	}

	aligned := make([]alignedGroup, 0, len(req.Canonical.Groups))
	for gi, group := range req.Canonical.Groups {
		slot, err := e.applyCanonicalGroup(ctx, report, parentIndex, childIndex, req.Canonical.Locale, gi, group)
		if err != nil {
			return report, err
		}
		aligned = append(aligned, slot)
	}

	for _, source := range req.Sources {
		if err := e.applyLocale(ctx, report, aligned, req.Canonical, source); err != nil {
			return report, err
		}
	}

	e.logger.Info("sync.run.completed",
		"canonical", req.Canonical.Locale,
		"sources", len(req.Sources),
		"changed", report.Changed(),
		"warnings", len(report.Warnings),
	)
	return report, nil
}

type childKey struct {
	parentID uuid.UUID
	title    string
}

func (e *Engine) loadIndexes(ctx context.Context) (map[string]*catalog.PracticeArea, map[childKey]*catalog.Service, error) {
	parents, err := e.parents.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	parentIndex := make(map[string]*catalog.PracticeArea, len(parents))
	for _, parent := range parents {
		parentIndex[parent.Title] = parent
	}

	children, err := e.children.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	childIndex := make(map[childKey]*catalog.Service, len(children))
	for _, child := range children {
		childIndex[childKey{parentID: child.PracticeAreaID, title: child.Title}] = child
	}
	return parentIndex, childIndex, nil
}

func (e *Engine) applyCanonicalGroup(
	ctx context.Context,
	report *Report,
	parentIndex map[string]*catalog.PracticeArea,
	childIndex map[childKey]*catalog.Service,
	locale catalog.Locale,
	gi int,
	group Group,
) (alignedGroup, error) {
	slot := alignedGroup{parentID: uuid.Nil}

	parentTitle := strings.TrimSpace(group.ParentTitle)
	if parentTitle == "" {
		report.warn(Warning{
			Kind:    WarningEmptyTitle,
			Locale:  locale,
			Group:   gi,
			Message: fmt.Sprintf("group %d: practice area title is blank", gi+1),
		})
		return slot, nil
	}

	parent, ok := parentIndex[parentTitle]
	if !ok {
		created, err := e.parents.Create(ctx, catalog.CreateRequest{
			Title:       parentTitle,
			TitleLocale: locale,
		})
		if err != nil {
			return slot, fmt.Errorf("create practice area %q: %w", parentTitle, err)
		}
		parent = created
		parentIndex[parentTitle] = parent
		report.ParentsCreated++
	} else {
		report.ParentsMatched++
	}
	slot.parentID = parent.ID

	_, outcome, err := e.parents.UpsertTranslation(ctx, catalog.UpsertTranslationRequest{
		EntityID:    parent.ID,
		Translation: catalog.TranslationInput{Locale: locale, Title: parentTitle},
	})
	if err != nil {
		return slot, fmt.Errorf("translate practice area %q (%s): %w", parentTitle, locale, err)
	}
	report.countTranslation(outcome)

	for ci, rawChild := range group.ChildTitles {
		childTitle := strings.TrimSpace(rawChild)
		if childTitle == "" {
			report.warn(Warning{
				Kind:    WarningEmptyTitle,
				Locale:  locale,
				Group:   gi,
				Message: fmt.Sprintf("group %d row %d: service title is blank", gi+1, ci+1),
			})
			slot.childIDs = append(slot.childIDs, uuid.Nil)
			continue
		}

		key := childKey{parentID: parent.ID, title: childTitle}
		child, ok := childIndex[key]
		if !ok {
			created, err := e.children.Create(ctx, catalog.CreateRequest{
				Title:       childTitle,
				TitleLocale: locale,
				ParentID:    parent.ID,
			})
			if err != nil {
				return slot, fmt.Errorf("create service %q under %q: %w", childTitle, parentTitle, err)
			}
			child = created
			childIndex[key] = child
			report.ChildrenCreated++
		} else {
			report.ChildrenMatched++
		}

		_, outcome, err := e.children.UpsertTranslation(ctx, catalog.UpsertTranslationRequest{
			EntityID:    child.ID,
			Translation: catalog.TranslationInput{Locale: locale, Title: childTitle},
		})
		if err != nil {
			return slot, fmt.Errorf("translate service %q (%s): %w", childTitle, locale, err)
		}
		report.countTranslation(outcome)
		slot.childIDs = append(slot.childIDs, child.ID)
	}
	return slot, nil
}

func (e *Engine) applyLocale(ctx context.Context, report *Report, aligned []alignedGroup, canonical Source, source Source) error {
	if len(source.Groups) != len(aligned) {
		report.warn(Warning{
			Kind:   WarningGroupCountMismatch,
			Locale: source.Locale,
			Message: fmt.Sprintf("%s sheet has %d practice areas, canonical %s sheet has %d",
				source.Locale, len(source.Groups), canonical.Locale, len(aligned)),
		})
	}

	groups := len(source.Groups)
	if len(aligned) < groups {
		groups = len(aligned)
	}

	for gi := 0; gi < groups; gi++ {
		group := source.Groups[gi]
		slot := aligned[gi]
		if slot.parentID == uuid.Nil {
			continue
		}

		parentTitle := strings.TrimSpace(group.ParentTitle)
		if parentTitle == "" {
			report.warn(Warning{
				Kind:    WarningEmptyTitle,
				Locale:  source.Locale,
				Group:   gi,
				Message: fmt.Sprintf("group %d: %s practice area title is blank", gi+1, source.Locale),
			})
		} else {
			_, outcome, err := e.parents.UpsertTranslation(ctx, catalog.UpsertTranslationRequest{
				EntityID:    slot.parentID,
				Translation: catalog.TranslationInput{Locale: source.Locale, Title: parentTitle},
			})
			if err != nil {
				return fmt.Errorf("translate practice area %q (%s): %w", parentTitle, source.Locale, err)
			}
			report.countTranslation(outcome)
		}

		if len(group.ChildTitles) != len(slot.childIDs) {
			report.warn(Warning{
				Kind:   WarningChildCountMismatch,
				Locale: source.Locale,
				Group:  gi,
				Message: fmt.Sprintf("group %d (%q): %s sheet has %d services, canonical has %d",
					gi+1, parentTitle, source.Locale, len(group.ChildTitles), len(slot.childIDs)),
			})
		}

		rows := len(group.ChildTitles)
		if len(slot.childIDs) < rows {
			rows = len(slot.childIDs)
		}
		for ci := 0; ci < rows; ci++ {
			if slot.childIDs[ci] == uuid.Nil {
				continue
			}
			childTitle := strings.TrimSpace(group.ChildTitles[ci])
			if childTitle == "" {
				report.warn(Warning{
					Kind:    WarningEmptyTitle,
					Locale:  source.Locale,
					Group:   gi,
					Message: fmt.Sprintf("group %d row %d: %s service title is blank", gi+1, ci+1, source.Locale),
				})
				continue
			}
			_, outcome, err := e.children.UpsertTranslation(ctx, catalog.UpsertTranslationRequest{
				EntityID:    slot.childIDs[ci],
				Translation: catalog.TranslationInput{Locale: source.Locale, Title: childTitle},
			})
			if err != nil {
				return fmt.Errorf("translate service %q (%s): %w", childTitle, source.Locale, err)
			}
			report.countTranslation(outcome)
		}
	}
	return nil
}
