// Package app implements the application layer for scorebook.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sync"

	"go.opentelemetry.io/otel/trace/noop"
	"go.trai.ch/scorebook/internal/adapters/book"
	"go.trai.ch/scorebook/internal/adapters/codec"
	"go.trai.ch/scorebook/internal/adapters/telemetry"
	"go.trai.ch/scorebook/internal/core/domain"
	"go.trai.ch/scorebook/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// configurableLogger is implemented by loggers whose format and level can
// follow the configuration.
type configurableLogger interface {
	SetJSON(enable bool)
	SetLevel(level domain.LogLevel)
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	codec        ports.Codec[domain.RunTable]
	tracer       ports.Tracer

	mu     sync.Mutex
	config *domain.Config
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	runCodec ports.Codec[domain.RunTable],
	tracer ports.Tracer,
) *App {
	if tracer == nil {
		tracer = telemetry.NewOTelTracerWithProvider(noop.NewTracerProvider(), telemetry.InstrumentationName)
	}
	return &App{
		configLoader: loader,
		logger:       log,
		codec:        runCodec,
		tracer:       tracer,
	}
}

// ConfigureOptions carries the global CLI flags that override the config file.
type ConfigureOptions struct {
	Dir   string
	Book  string
	JSON  bool
	Debug bool
}

// Configure loads the configuration found from opts.Dir, applies the
// overrides and sets up the logger accordingly.
func (a *App) Configure(_ context.Context, opts ConfigureOptions) (domain.Config, error) {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	cfg, err := a.configLoader.Load(dir)
	if err != nil {
		return domain.Config{}, zerr.Wrap(err, "failed to load configuration")
	}

	if opts.Book != "" {
		cfg.Book = opts.Book
	}
	if opts.JSON {
		cfg.LogJSON = true
	}
	if opts.Debug {
		cfg.LogLevel = domain.LogDebug
	}

	if l, ok := a.logger.(configurableLogger); ok {
		l.SetJSON(cfg.LogJSON)
		l.SetLevel(cfg.LogLevel)
	}

	a.mu.Lock()
	a.config = &cfg
	a.mu.Unlock()

	return cfg, nil
}

// currentConfig returns the configuration set by Configure, loading it from
// the working directory when Configure was never called.
func (a *App) currentConfig(ctx context.Context) (domain.Config, error) {
	a.mu.Lock()
	cfg := a.config
	a.mu.Unlock()

	if cfg != nil {
		return *cfg, nil
	}
	return a.Configure(ctx, ConfigureOptions{})
}

// openBook opens the book at dir, or the configured book when dir is empty.
func (a *App) openBook(ctx context.Context, dir string) (*book.Book, error) {
	cfg, err := a.currentConfig(ctx)
	if err != nil {
		return nil, err
	}
	if dir == "" {
		dir = cfg.Book
	}
	return book.Open(dir, a.logger, a.tracer, cfg.FlushConcurrency)
}

// ShowOptions configuration for the Show method.
type ShowOptions struct {
	Book     string
	Sheet    int
	Artifact string
}

// Show loads the artifacts of one sheet on demand and renders a summary.
// Naming an artifact that is not stored fails with ErrArtifactNotAvailable.
// Without a name, every known artifact is listed and the call fails only
// when the sheet holds none of them.
func (a *App) Show(ctx context.Context, opts ShowOptions, w io.Writer) error {
	names := domain.KnownArtifacts()
	if opts.Artifact != "" {
		if !domain.IsKnownArtifact(opts.Artifact) {
			return zerr.With(domain.ErrUnknownArtifact, "artifact", opts.Artifact)
		}
		names = []string{opts.Artifact}
	}

	b, err := a.openBook(ctx, opts.Book)
	if err != nil {
		return err
	}
	sheet, err := b.Sheet(opts.Sheet)
	if err != nil {
		return err
	}
	artifacts := NewSheetArtifacts(sheet, a.codec, a.logger, a.tracer)

	rows := make([]Row, 0, len(names))
	available := 0
	for _, name := range names {
		h, err := artifacts.Handle(name)
		if err != nil {
			return err
		}
		table := h.Get(ctx, sheet)
		if table != nil {
			available++
		}
		rows = append(rows, Row{Artifact: name, Table: table})
	}

	if available == 0 {
		err := zerr.With(domain.ErrArtifactNotAvailable, "sheet", opts.Sheet)
		if opts.Artifact != "" {
			err = zerr.With(err, "artifact", opts.Artifact)
		}
		return err
	}

	return NewRenderer(w).Sheet(opts.Sheet, rows)
}

// ImportOptions configuration for the Import method.
type ImportOptions struct {
	Book     string
	Sheet    int
	Artifact string
	Source   string
}

// Import reads a YAML run table from opts.Source, stores it as an artifact
// of the sheet and flushes it to disk.
func (a *App) Import(ctx context.Context, opts ImportOptions) error {
	if !domain.IsKnownArtifact(opts.Artifact) {
		return zerr.With(domain.ErrUnknownArtifact, "artifact", opts.Artifact)
	}

	table, err := readRunTable(opts.Source)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrImportFailed.Error()), "source", opts.Source)
	}
	if err := checkOrientation(opts.Artifact, table); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrImportFailed.Error()), "source", opts.Source)
	}

	b, err := a.openBook(ctx, opts.Book)
	if err != nil {
		return err
	}
	sheet, err := b.Sheet(opts.Sheet)
	if err != nil {
		return err
	}
	artifacts := NewSheetArtifacts(sheet, a.codec, a.logger, a.tracer)

	h, err := artifacts.Handle(opts.Artifact)
	if err != nil {
		return err
	}
	h.SetData(table)

	if err := b.Flush(ctx); err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("imported %s into %s", opts.Source, domain.SheetDirName(opts.Sheet)+"/"+opts.Artifact))
	return nil
}

func readRunTable(source string) (*domain.RunTable, error) {
	// #nosec G304 -- source is named by the user on the command line
	f, err := os.Open(source)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrFileOpenFailed.Error())
	}
	defer func() {
		_ = f.Close()
	}()

	return codec.NewYAML[domain.RunTable]().Decode(f)
}

// checkOrientation rejects a table stored under the artifact of the other orientation.
func checkOrientation(artifact string, table *domain.RunTable) error {
	var want domain.Orientation
	switch artifact {
	case domain.HorizontalArtifact:
		want = domain.Horizontal
	case domain.VerticalArtifact:
		want = domain.Vertical
	default:
		return nil
	}

	if table.Orientation != want {
		err := zerr.With(domain.ErrInvalidRunTable, "orientation", table.Orientation)
		return zerr.With(err, "artifact", artifact)
	}
	return nil
}

// VerifyOptions configuration for the Verify method.
type VerifyOptions struct {
	Book string
}

// Verify decodes every stored artifact of every sheet and reports the result.
func (a *App) Verify(ctx context.Context, opts VerifyOptions, w io.Writer) error {
	cfg, err := a.currentConfig(ctx)
	if err != nil {
		return err
	}
	b, err := a.openBook(ctx, opts.Book)
	if err != nil {
		return err
	}

	numbers, err := b.SheetNumbers()
	if err != nil {
		return err
	}

	type job struct {
		sheet *book.Sheet
		name  string
	}
	var jobs []job
	for _, n := range numbers {
		sheet, err := b.Sheet(n)
		if err != nil {
			return err
		}
		for _, name := range domain.KnownArtifacts() {
			jobs = append(jobs, job{sheet: sheet, name: name})
		}
	}

	results := make([]Check, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.FlushConcurrency)
	for i, j := range jobs {
		g.Go(func() error {
			results[i] = a.verifyArtifact(gctx, j.sheet, j.name)
			return nil
		})
	}
	_ = g.Wait()

	results = slices.DeleteFunc(results, func(c Check) bool { return c.Missing })
	failed := 0
	for _, c := range results {
		if c.Err != nil {
			failed++
		}
	}

	if err := NewRenderer(w).Checks(results); err != nil {
		return err
	}

	if failed > 0 {
		return zerr.With(domain.ErrVerifyFailed, "failed", failed)
	}
	a.logger.Info(fmt.Sprintf("verified %d artifacts in %d sheets", len(results), len(numbers)))
	return nil
}

func (a *App) verifyArtifact(ctx context.Context, sheet *book.Sheet, name string) Check {
	check := Check{Sheet: sheet.Number(), Artifact: name}

	_, span := a.tracer.Start(ctx, "artifact.verify")
	defer span.End()
	span.SetAttribute("artifact.path", domain.SheetDirName(sheet.Number())+"/"+name)

	loc, err := sheet.ResolveForRead(name)
	if err != nil {
		check.Err = err
		span.RecordError(err)
		return check
	}

	r, err := loc.Open()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			check.Missing = true
			return check
		}
		check.Err = zerr.Wrap(err, domain.ErrFileOpenFailed.Error())
		span.RecordError(check.Err)
		return check
	}
	defer func() {
		_ = r.Close()
	}()

	table, err := a.codec.Decode(r)
	if err != nil {
		check.Err = err
		span.RecordError(err)
		return check
	}
	check.Err = checkOrientation(name, table)
	if check.Err != nil {
		span.RecordError(check.Err)
	}
	return check
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	Book string
	// Sheet selects one sheet; zero cleans every sheet of the book.
	Sheet int
}

// Clean removes the artifact files of one or all sheets.
func (a *App) Clean(ctx context.Context, opts CleanOptions) error {
	b, err := a.openBook(ctx, opts.Book)
	if err != nil {
		return err
	}

	numbers := []int{opts.Sheet}
	if opts.Sheet == 0 {
		numbers, err = b.SheetNumbers()
		if err != nil {
			return err
		}
	}

	var errs error
	for _, n := range numbers {
		if err := b.RemoveArtifacts(n); err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		a.logger.Info("cleaned " + domain.SheetDirName(n))
	}
	return errs
}
