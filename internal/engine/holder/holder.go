// Package holder implements lazily loaded, dirty-tracked sheet artifacts.
//
// A Holder knows the path of its artifact relative to a sheet folder and
// loads the payload on first access. Loads are serialized on the lock of the
// container passed to Get, which is shared by every artifact of a book, so at
// most one goroutine reads a given artifact from disk.
package holder

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"

	"go.trai.ch/scorebook/internal/core/domain"
	"go.trai.ch/scorebook/internal/core/ports"
	"go.trai.ch/zerr"
)

// LoadSpanName is the name of the span wrapping a load from disk.
const LoadSpanName = "artifact.load"

// Holder holds the reference to an artifact: always its path, and on demand
// the decoded payload.
//
// SetData is not coordinated with Get. Callers that replace the payload while
// other goroutines may read it must synchronize at a higher level.
type Holder[T any] struct {
	path   string
	codec  ports.Codec[T]
	logger ports.Logger
	tracer ports.Tracer

	data     atomic.Pointer[T]
	modified atomic.Bool
}

// New creates a Holder for the artifact at path. No I/O happens until Get.
// A nil tracer disables tracing.
func New[T any](path string, codec ports.Codec[T], logger ports.Logger, tracer ports.Tracer) *Holder[T] {
	return &Holder[T]{
		path:   path,
		codec:  codec,
		logger: logger,
		tracer: tracer,
	}
}

// Path returns the artifact path relative to its sheet folder.
func (h *Holder[T]) Path() string {
	return h.path
}

// Get returns the payload, loading it from the container on first use.
//
// A load failure is logged as a warning and nil is returned. Nothing records
// the failure, so the next Get tries again.
func (h *Holder[T]) Get(ctx context.Context, c ports.Container) *T {
	if data := h.data.Load(); data != nil {
		return data
	}

	lock := c.Lock()
	lock.Lock()
	defer lock.Unlock()

	// Another goroutine may have loaded it while we waited.
	if data := h.data.Load(); data != nil {
		return data
	}

	_, span := h.startSpan(ctx)
	defer span.End()
	span.SetAttribute("artifact.path", h.path)

	data, where, err := h.load(c)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrArtifactLoadFailed.Error()), "path", h.path)
		span.RecordError(err)
		span.SetAttribute("artifact.loaded", false)
		// The warning stays on one line; the span event carries the metadata.
		h.logger.Warn(fmt.Sprintf("error loading %s: %v", h.path, err))
		return h.data.Load()
	}

	span.SetAttribute("artifact.loaded", true)
	if !h.data.CompareAndSwap(nil, data) {
		// SetData won the race; keep its payload and its dirty flag.
		return h.data.Load()
	}
	h.modified.Store(false)
	h.logger.Info("loaded " + where)

	return data
}

func (h *Holder[T]) load(c ports.Container) (*T, string, error) {
	loc, err := c.ResolveForRead(h.path)
	if err != nil {
		return nil, "", err
	}
	where := loc.String()
	h.logger.Debug("path: " + where)

	r, err := loc.Open()
	if err != nil {
		return nil, where, zerr.Wrap(err, domain.ErrFileOpenFailed.Error())
	}
	defer func() {
		_ = r.Close()
	}()

	data, err := h.codec.Decode(r)
	if err != nil {
		return nil, where, err
	}
	if data == nil {
		return nil, where, domain.ErrPayloadMalformed
	}

	return data, where, nil
}

// HasData reports whether the payload is in memory. It never loads.
func (h *Holder[T]) HasData() bool {
	return h.data.Load() != nil
}

// IsModified reports whether the payload has been set since the last load or flush.
func (h *Holder[T]) IsModified() bool {
	return h.modified.Load()
}

// SetData replaces the payload and marks it modified.
// Setting nil drops the payload and clears the flag, since there is nothing left to flush.
func (h *Holder[T]) SetData(data *T) {
	h.data.Store(data)
	h.modified.Store(data != nil)
}

// SetModified overwrites the dirty flag. The flush collaborator resets it
// once the payload has been written.
func (h *Holder[T]) SetModified(modified bool) {
	h.modified.Store(modified)
}

// Encode writes the in-memory payload with the holder's codec.
func (h *Holder[T]) Encode(w io.Writer) error {
	data := h.data.Load()
	if data == nil {
		return zerr.With(domain.ErrArtifactNotAvailable, "path", h.path)
	}
	return h.codec.Encode(w, data)
}

func (h *Holder[T]) startSpan(ctx context.Context) (context.Context, ports.Span) {
	if h.tracer == nil {
		return ctx, noopSpan{}
	}
	return h.tracer.Start(ctx, LoadSpanName)
}

type noopSpan struct{}

func (noopSpan) End()                     {}
func (noopSpan) RecordError(error)        {}
func (noopSpan) SetAttribute(string, any) {}

var _ ports.Artifact = (*Holder[struct{}])(nil)
