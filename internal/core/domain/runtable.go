package domain

import "go.trai.ch/zerr"

// Orientation tells whether the sequences of a run table are rows or columns.
type Orientation string

const (
	// Horizontal tables hold one sequence per image row.
	Horizontal Orientation = "HORIZONTAL"
	// Vertical tables hold one sequence per image column.
	Vertical Orientation = "VERTICAL"
)

// Run is a maximal span of foreground pixels within one sequence.
type Run struct {
	Start  int `yaml:"start"`
	Length int `yaml:"length"`
}

// End returns the last pixel coordinate covered by the run.
func (r Run) End() int {
	return r.Start + r.Length - 1
}

// RunTable is the run-length representation of a binary sheet image.
type RunTable struct {
	Orientation Orientation `yaml:"orientation"`
	Width       int         `yaml:"width"`
	Height      int         `yaml:"height"`
	Sequences   [][]Run     `yaml:"sequences,omitempty"`
}

// Size returns the number of sequences the table must hold for its orientation.
func (t *RunTable) Size() int {
	if t.Orientation == Vertical {
		return t.Width
	}
	return t.Height
}

// Length returns the extent of a single sequence.
func (t *RunTable) Length() int {
	if t.Orientation == Vertical {
		return t.Height
	}
	return t.Width
}

// RunCount returns the total number of runs in the table.
func (t *RunTable) RunCount() int {
	count := 0
	for _, seq := range t.Sequences {
		count += len(seq)
	}
	return count
}

// Weight returns the number of foreground pixels.
func (t *RunTable) Weight() int {
	weight := 0
	for _, seq := range t.Sequences {
		for _, run := range seq {
			weight += run.Length
		}
	}
	return weight
}

// Validate checks the geometry of the table.
// Runs must be ordered, separated by at least one background pixel and lie within the sequence.
func (t *RunTable) Validate() error {
	if t.Orientation != Horizontal && t.Orientation != Vertical {
		return zerr.With(ErrInvalidRunTable, "orientation", string(t.Orientation))
	}
	if t.Width <= 0 || t.Height <= 0 {
		return zerr.With(zerr.With(ErrInvalidRunTable, "width", t.Width), "height", t.Height)
	}
	if len(t.Sequences) != t.Size() {
		return zerr.With(zerr.With(ErrInvalidRunTable, "sequences", len(t.Sequences)), "expected", t.Size())
	}

	length := t.Length()
	for i, seq := range t.Sequences {
		next := 0
		for _, run := range seq {
			// Compared without End so a huge Start cannot wrap around.
			if run.Length <= 0 || run.Start < next || run.Start >= length || run.Length > length-run.Start {
				err := zerr.With(ErrInvalidRunTable, "sequence", i)
				return zerr.With(zerr.With(err, "start", run.Start), "length", run.Length)
			}
			next = run.End() + 2
		}
	}

	return nil
}
