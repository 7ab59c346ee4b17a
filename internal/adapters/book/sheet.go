package book

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"slices"
	"sync"

	"go.trai.ch/scorebook/internal/core/domain"
	"go.trai.ch/scorebook/internal/core/ports"
	"go.trai.ch/zerr"
)

// FlushSpanName is the name of the span wrapping the flush of one sheet.
const FlushSpanName = "sheet.flush"

// Sheet is one numbered folder of a book.
// It implements ports.WritableContainer for the artifacts of that sheet.
type Sheet struct {
	book   *Book
	number int
	folder string

	mu        sync.Mutex
	artifacts []ports.Artifact
}

var _ ports.WritableContainer = (*Sheet)(nil)

// Number returns the sheet number, starting at 1.
func (s *Sheet) Number() int {
	return s.number
}

// Folder returns the absolute sheet folder.
func (s *Sheet) Folder() string {
	return s.folder
}

// Lock returns the lock of the enclosing book.
func (s *Sheet) Lock() sync.Locker {
	return s.book.Lock()
}

// ResolveForRead resolves path inside the sheet folder.
func (s *Sheet) ResolveForRead(path string) (ports.Location, error) {
	abs, err := s.resolve(path)
	if err != nil {
		return nil, err
	}
	return fileLocation(abs), nil
}

// ResolveForWrite resolves path inside the sheet folder for writing.
func (s *Sheet) ResolveForWrite(path string) (ports.Destination, error) {
	abs, err := s.resolve(path)
	if err != nil {
		return nil, err
	}
	return fileDestination(abs), nil
}

func (s *Sheet) resolve(path string) (string, error) {
	if !filepath.IsLocal(path) {
		return "", zerr.With(zerr.With(domain.ErrPathOutsideSheet, "path", path), "sheet", s.number)
	}
	return filepath.Join(s.folder, path), nil
}

// Track registers an artifact to be written by Flush.
// An artifact tracked under an already tracked path replaces it.
func (s *Sheet) Track(a ports.Artifact) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.artifacts {
		if existing.Path() == a.Path() {
			s.artifacts[i] = a
			return
		}
	}
	s.artifacts = append(s.artifacts, a)
}

// Flush writes every tracked artifact that holds modified data, then clears
// its dirty flag. Artifacts that fail to write stay modified.
func (s *Sheet) Flush(ctx context.Context) error {
	s.mu.Lock()
	artifacts := slices.Clone(s.artifacts)
	s.mu.Unlock()

	var span ports.Span
	if s.book.tracer != nil {
		_, span = s.book.tracer.Start(ctx, FlushSpanName)
		defer span.End()
		span.SetAttribute("sheet.number", s.number)
	}

	lock := s.Lock()
	lock.Lock()
	defer lock.Unlock()

	var errs error
	written := 0
	for _, a := range artifacts {
		if !a.HasData() || !a.IsModified() {
			continue
		}

		where, err := s.store(a)
		if err != nil {
			err = zerr.With(zerr.Wrap(err, domain.ErrArtifactFlushFailed.Error()), "path", a.Path())
			errs = errors.Join(errs, err)
			continue
		}

		a.SetModified(false)
		written++
		s.book.logger.Info("stored " + where)
	}

	if span != nil {
		span.SetAttribute("sheet.flushed", written)
		if errs != nil {
			span.RecordError(errs)
		}
	}
	return errs
}

func (s *Sheet) store(a ports.Artifact) (string, error) {
	var buf bytes.Buffer
	if err := a.Encode(&buf); err != nil {
		return "", err
	}

	dest, err := s.ResolveForWrite(a.Path())
	if err != nil {
		return "", err
	}

	w, err := dest.Create()
	if err != nil {
		return dest.String(), err
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		_ = w.Close()
		return dest.String(), err
	}
	return dest.String(), w.Close()
}
