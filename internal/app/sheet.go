package app

import (
	"go.trai.ch/scorebook/internal/adapters/book"
	"go.trai.ch/scorebook/internal/core/domain"
	"go.trai.ch/scorebook/internal/core/ports"
	"go.trai.ch/scorebook/internal/engine/holder"
	"go.trai.ch/zerr"
)

// SheetArtifacts holds the lazy run-table handles of one sheet.
// Every handle is tracked by the sheet so a flush writes it back.
type SheetArtifacts struct {
	sheet   *book.Sheet
	handles map[string]*holder.Holder[domain.RunTable]
}

// NewSheetArtifacts creates unloaded handles for the known artifacts of sheet.
func NewSheetArtifacts(
	sheet *book.Sheet,
	runCodec ports.Codec[domain.RunTable],
	log ports.Logger,
	tracer ports.Tracer,
) *SheetArtifacts {
	s := &SheetArtifacts{
		sheet:   sheet,
		handles: make(map[string]*holder.Holder[domain.RunTable]),
	}
	for _, name := range domain.KnownArtifacts() {
		h := holder.New(name, runCodec, log, tracer)
		s.handles[name] = h
		sheet.Track(h)
	}
	return s
}

// Sheet returns the container the handles load from.
func (s *SheetArtifacts) Sheet() *book.Sheet {
	return s.sheet
}

// Handle returns the handle for a known artifact name.
func (s *SheetArtifacts) Handle(name string) (*holder.Holder[domain.RunTable], error) {
	h, ok := s.handles[name]
	if !ok {
		return nil, zerr.With(domain.ErrUnknownArtifact, "artifact", name)
	}
	return h, nil
}

// Binary returns the binarized image runs.
func (s *SheetArtifacts) Binary() *holder.Holder[domain.RunTable] {
	return s.handles[domain.BinaryArtifact]
}

// Horizontal returns the horizontal runs.
func (s *SheetArtifacts) Horizontal() *holder.Holder[domain.RunTable] {
	return s.handles[domain.HorizontalArtifact]
}

// Vertical returns the vertical runs.
func (s *SheetArtifacts) Vertical() *holder.Holder[domain.RunTable] {
	return s.handles[domain.VerticalArtifact]
}
