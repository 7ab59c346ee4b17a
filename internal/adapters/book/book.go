// Package book implements the on-disk book: a directory of numbered sheet
// folders whose artifacts share one lock.
package book

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"

	"go.trai.ch/scorebook/internal/core/domain"
	"go.trai.ch/scorebook/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Book is a directory holding one folder per sheet.
type Book struct {
	root        string
	logger      ports.Logger
	tracer      ports.Tracer
	concurrency int

	// lock guards artifact loads and flushes across all sheets.
	lock sync.Mutex

	mu     sync.Mutex
	sheets map[int]*Sheet
}

// Open opens the book rooted at root, creating the directory when needed.
func Open(root string, logger ports.Logger, tracer ports.Tracer, concurrency int) (*Book, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBookOpenFailed.Error()), "root", root)
	}
	if err := os.MkdirAll(abs, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBookOpenFailed.Error()), "root", abs)
	}
	if concurrency < 1 {
		concurrency = domain.DefaultFlushConcurrency
	}

	return &Book{
		root:        abs,
		logger:      logger,
		tracer:      tracer,
		concurrency: concurrency,
		sheets:      make(map[int]*Sheet),
	}, nil
}

// Root returns the absolute book directory.
func (b *Book) Root() string {
	return b.root
}

// Lock returns the lock shared by every sheet of the book.
func (b *Book) Lock() sync.Locker {
	return &b.lock
}

// Sheet returns the sheet with the given number. The same *Sheet is
// returned on every call so artifacts tracked on it survive.
func (b *Book) Sheet(number int) (*Sheet, error) {
	if number < 1 {
		return nil, zerr.With(domain.ErrInvalidSheetNumber, "sheet", number)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if s, ok := b.sheets[number]; ok {
		return s, nil
	}
	s := &Sheet{
		book:   b,
		number: number,
		folder: domain.SheetPath(b.root, number),
	}
	b.sheets[number] = s
	return s, nil
}

// SheetNumbers lists the sheets present on disk, in ascending order.
func (b *Book) SheetNumbers() ([]int, error) {
	entries, err := os.ReadDir(b.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBookScanFailed.Error()), "root", b.root)
	}

	var numbers []int
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		suffix, ok := strings.CutPrefix(entry.Name(), domain.SheetDirPrefix)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(suffix)
		if err != nil || n < 1 || strconv.Itoa(n) != suffix {
			continue
		}
		numbers = append(numbers, n)
	}
	slices.Sort(numbers)
	return numbers, nil
}

// Flush writes the modified artifacts of every opened sheet.
// Sheets are flushed in parallel; their writes still serialize on the book lock.
func (b *Book) Flush(ctx context.Context) error {
	b.mu.Lock()
	sheets := make([]*Sheet, 0, len(b.sheets))
	for _, s := range b.sheets {
		sheets = append(sheets, s)
	}
	b.mu.Unlock()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	var (
		mu   sync.Mutex
		errs error
	)
	for _, s := range sheets {
		g.Go(func() error {
			if err := s.Flush(ctx); err != nil {
				mu.Lock()
				errs = errors.Join(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	return errs
}

// RemoveArtifacts deletes the known artifact files of one sheet.
// Missing files are ignored.
func (b *Book) RemoveArtifacts(number int) error {
	s, err := b.Sheet(number)
	if err != nil {
		return err
	}

	b.lock.Lock()
	defer b.lock.Unlock()

	var errs error
	for _, name := range domain.KnownArtifacts() {
		path := filepath.Join(s.folder, name)
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, domain.ErrFileRemoveFailed.Error()), "path", path))
			continue
		}
		b.logger.Debug("removed " + path)
	}
	return errs
}
