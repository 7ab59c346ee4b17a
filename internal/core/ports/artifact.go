package ports

import "io"

// Artifact is the view a flush collaborator has on a lazily loaded artifact.
type Artifact interface {
	// Path returns the artifact path relative to its sheet folder.
	Path() string
	// HasData reports whether the payload is held in memory.
	HasData() bool
	// IsModified reports whether the payload differs from its on-disk form.
	IsModified() bool
	// SetModified overwrites the dirty flag.
	SetModified(modified bool)
	// Encode writes the in-memory payload.
	Encode(w io.Writer) error
}
