package synccmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/advokati/go-directory/internal/catalog"
	"github.com/advokati/go-directory/internal/commands"
	dirsync "github.com/advokati/go-directory/internal/sync"
	"github.com/advokati/go-directory/pkg/interfaces"
)

const runReconciliationMessageType = "directory.sync.run"

// RunReconciliationCommand requests a reconciliation of sheet exports into
// the practice-area and service catalogs.
type RunReconciliationCommand struct {
	Canonical dirsync.Source   `json:"canonical"`
	Sources   []dirsync.Source `json:"sources,omitempty"`
}

// Type implements command.Message.
func (RunReconciliationCommand) Type() string { return runReconciliationMessageType }

// Validate ensures the message carries usable sources before reaching handlers.
func (m RunReconciliationCommand) Validate() error {
	errs := validation.Errors{}
	if !m.Canonical.Locale.Valid() {
		errs["canonical.locale"] = validation.NewError(
			"directory.sync.run.canonical_locale_invalid",
			"canonical locale is missing or unsupported")
	}
	if len(m.Canonical.Groups) == 0 {
		errs["canonical.groups"] = validation.NewError(
			"directory.sync.run.canonical_empty",
			"canonical source has no groups")
	}
	seen := map[catalog.Locale]struct{}{m.Canonical.Locale: {}}
	for _, source := range m.Sources {
		if !source.Locale.Valid() {
			errs["sources.locale"] = validation.NewError(
				"directory.sync.run.source_locale_invalid",
				"source locale is missing or unsupported")
			continue
		}
		if _, dup := seen[source.Locale]; dup {
			errs["sources.locale"] = validation.NewError(
				"directory.sync.run.source_locale_duplicate",
				"each locale may appear at most once per run")
			continue
		}
		seen[source.Locale] = struct{}{}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RunReconciliationHandler executes reconciliation runs through the engine
// using the shared command handler foundation.
type RunReconciliationHandler struct {
	inner  *commands.Handler[RunReconciliationCommand]
	report *dirsync.Report
}

// NewRunReconciliationHandler constructs a handler wired to the given engine.
func NewRunReconciliationHandler(engine *dirsync.Engine, logger interfaces.Logger, opts ...commands.HandlerOption[RunReconciliationCommand]) *RunReconciliationHandler {
	h := &RunReconciliationHandler{}

	exec := func(ctx context.Context, msg RunReconciliationCommand) error {
		report, err := engine.Run(ctx, dirsync.RunRequest{
			Canonical: msg.Canonical,
			Sources:   msg.Sources,
		})
		h.report = report
		return err
	}

	handlerOpts := []commands.HandlerOption[RunReconciliationCommand]{
		commands.WithLogger[RunReconciliationCommand](logger),
		commands.WithOperation[RunReconciliationCommand]("sync.run"),
	}
	handlerOpts = append(handlerOpts, opts...)

	h.inner = commands.NewHandler[RunReconciliationCommand](exec, handlerOpts...)
	return h
}

// Execute satisfies command.Commander[RunReconciliationCommand].Execute.
func (h *RunReconciliationHandler) Execute(ctx context.Context, msg RunReconciliationCommand) error {
	return h.inner.Execute(ctx, msg)
}

// Report returns the report from the most recent execution, or nil when the
// handler has not run.
func (h *RunReconciliationHandler) Report() *dirsync.Report {
	return h.report
}
