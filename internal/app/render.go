package app

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"go.trai.ch/scorebook/internal/core/domain"
	"go.trai.ch/scorebook/internal/ui/output"
	"go.trai.ch/scorebook/internal/ui/style"
)

// Row is one artifact of a sheet as shown by Show. A nil Table is absent.
type Row struct {
	Artifact string
	Table    *domain.RunTable
}

// Check is the outcome of verifying one stored artifact.
type Check struct {
	Sheet    int
	Artifact string
	Err      error
	// Missing marks an artifact without a file; it is not reported.
	Missing bool
}

// Renderer writes reports to a terminal or plain writer.
type Renderer struct {
	out *termenv.Output
}

// NewRenderer creates a Renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{out: output.New(w)}
}

// Sheet renders the artifacts of one sheet.
func (r *Renderer) Sheet(number int, rows []Row) error {
	if _, err := fmt.Fprintln(r.out, output.Paint(r.out, domain.SheetDirName(number), style.Iris)); err != nil {
		return err
	}

	for _, row := range rows {
		icon, color := style.Presence(row.Table != nil)
		label := output.Paint(r.out, fmt.Sprintf("%s %-16s", icon, row.Artifact), color)

		detail := "not available"
		if t := row.Table; t != nil {
			detail = fmt.Sprintf("%-10s %dx%d runs=%d weight=%d",
				t.Orientation, t.Width, t.Height, t.RunCount(), t.Weight())
		}
		if _, err := fmt.Fprintf(r.out, "  %s %s\n", label, detail); err != nil {
			return err
		}
	}
	return nil
}

// Checks renders verification results, one line per artifact.
func (r *Renderer) Checks(checks []Check) error {
	for _, c := range checks {
		icon, color := style.Status(c.Err == nil)
		line := fmt.Sprintf("%s %s/%s", icon, domain.SheetDirName(c.Sheet), c.Artifact)
		if c.Err != nil {
			line += ": " + c.Err.Error()
		}
		if _, err := fmt.Fprintln(r.out, output.Paint(r.out, line, color)); err != nil {
			return err
		}
	}
	return nil
}
