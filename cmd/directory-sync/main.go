package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	directory "github.com/advokati/go-directory"
	"github.com/advokati/go-directory/catalog"
	synccmd "github.com/advokati/go-directory/internal/commands/synccmd"
	"github.com/advokati/go-directory/internal/logging"
	dirsync "github.com/advokati/go-directory/internal/sync"
)

// sheetFlags collects repeated -sheet locale=path arguments.
type sheetFlags map[catalog.Locale]string

func (s sheetFlags) String() string {
	parts := make([]string, 0, len(s))
	for locale, path := range s {
		parts = append(parts, fmt.Sprintf("%s=%s", locale, path))
	}
	return strings.Join(parts, ",")
}

func (s sheetFlags) Set(value string) error {
	code, path, ok := strings.Cut(value, "=")
	if !ok {
		return fmt.Errorf("expected locale=path, got %q", value)
	}
	locale, err := catalog.ParseLocale(strings.TrimSpace(code))
	if err != nil {
		return err
	}
	if _, dup := s[locale]; dup {
		return fmt.Errorf("locale %s supplied twice", locale)
	}
	s[locale] = strings.TrimSpace(path)
	return nil
}

func main() {
	if err := runSync(os.Args[1:]); err != nil {
		log.Fatalf("directory sync: %v", err)
	}
}

func runSync(args []string) error {
	fs := flag.NewFlagSet("directory-sync", flag.ExitOnError)
	sheets := sheetFlags{}
	fs.Var(sheets, "sheet", "Sheet export as locale=path (repeatable, e.g. -sheet en=en.csv -sheet ka=ka.csv)")
	driver := fs.String("driver", "sqlite", "Storage driver: sqlite or memory")
	dsn := fs.String("dsn", "file:directory.db?_fk=1", "SQLite DSN")
	canonical := fs.String("canonical", "en", "Locale of the canonical sheet that defines the entity set")
	hasHeader := fs.Bool("header", true, "Treat the first row of each sheet as a header")
	parentCol := fs.Int("parent-col", -1, "Practice-area column index (auto-detected when negative)")
	childCol := fs.Int("child-col", -1, "Service column index (auto-detected when negative)")
	threshold := fs.Float64("threshold", dirsync.DetectionThreshold, "Minimum confidence for automatic column detection")
	logLevel := fs.String("log-level", "info", "Log level")
	logFormat := fs.String("log-format", "", "Log format: json, console or pretty")

	if err := fs.Parse(args); err != nil {
		return err
	}

	canonicalLocale, err := catalog.ParseLocale(*canonical)
	if err != nil {
		return err
	}
	canonicalPath, ok := sheets[canonicalLocale]
	if !ok {
		return fmt.Errorf("canonical locale %s has no -sheet argument", canonicalLocale)
	}

	cfg := directory.DefaultConfig()
	cfg.Storage.Driver = *driver
	cfg.Storage.DSN = *dsn
	cfg.Sync.CanonicalLocale = string(canonicalLocale)
	cfg.Sync.DetectionThreshold = *threshold
	cfg.Logging.Level = *logLevel
	cfg.Logging.Format = *logFormat
	if *logFormat != "" {
		cfg.Logging.Provider = "gologger"
	}

	module, err := directory.New(cfg)
	if err != nil {
		return fmt.Errorf("build module: %w", err)
	}
	defer module.Close()

	ctx := context.Background()
	if err := module.Migrate(ctx); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	canonicalRows, err := readSheet(canonicalPath, *hasHeader)
	if err != nil {
		return fmt.Errorf("read canonical sheet: %w", err)
	}
	mapping, err := resolveMapping(canonicalRows, *parentCol, *childCol, *threshold)
	if err != nil {
		return err
	}

	msg := synccmd.RunReconciliationCommand{}
	var parseWarnings []dirsync.Warning
	msg.Canonical, parseWarnings = dirsync.BuildSource(canonicalLocale, canonicalRows, mapping)

	for _, locale := range catalog.Locales() {
		path, ok := sheets[locale]
		if !ok || locale == canonicalLocale {
			continue
		}
		rows, err := readSheet(path, *hasHeader)
		if err != nil {
			return fmt.Errorf("read %s sheet: %w", locale, err)
		}
		source, warnings := dirsync.BuildSource(locale, rows, mapping)
		parseWarnings = append(parseWarnings, warnings...)
		msg.Sources = append(msg.Sources, source)
	}

	handler := synccmd.NewRunReconciliationHandler(module.Sync(), logging.NoOp())
	if err := handler.Execute(ctx, msg); err != nil {
		return fmt.Errorf("run reconciliation: %w", err)
	}

	report := handler.Report()
	for _, w := range parseWarnings {
		fmt.Fprintf(os.Stderr, "warning [%s] %s\n", w.Kind, w.Message)
	}
	fmt.Fprintln(os.Stdout, report.Summary())
	return nil
}

func readSheet(path string, hasHeader bool) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if hasHeader && len(rows) > 0 {
		rows = rows[1:]
	}
	return rows, nil
}

func resolveMapping(rows [][]string, parentCol, childCol int, threshold float64) (dirsync.ColumnMapping, error) {
	if parentCol >= 0 && childCol >= 0 {
		return dirsync.ColumnMapping{ParentColumn: parentCol, ChildColumn: childCol}, nil
	}

	mapping, confidence, err := dirsync.DetectColumns(rows)
	if err != nil {
		// a lowered threshold lets an operator accept a weaker detection
		if errors.Is(err, dirsync.ErrAmbiguousColumns) && confidence >= threshold && confidence > 0 {
			fmt.Fprintf(os.Stderr, "warning: column detection confidence %.2f below default, applied per -threshold\n", confidence)
			return mapping, nil
		}
		return mapping, fmt.Errorf("%w (pass -parent-col and -child-col to override)", err)
	}
	fmt.Fprintf(os.Stderr, "detected columns: parent=%d child=%d (confidence %.2f)\n",
		mapping.ParentColumn, mapping.ChildColumn, confidence)
	return mapping, nil
}
