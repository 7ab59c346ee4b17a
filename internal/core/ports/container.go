package ports

import (
	"io"
	"sync"
)

// Location is a resolved, readable artifact location.
type Location interface {
	// Open opens the location for reading. The caller closes the reader.
	Open() (io.ReadCloser, error)
	// String returns a printable form of the location.
	String() string
}

// Destination is a resolved, writable artifact location.
type Destination interface {
	// Create opens the destination for writing.
	// Written data replaces the previous content only once the writer is closed without error.
	Create() (io.WriteCloser, error)
	// String returns a printable form of the destination.
	String() string
}

// Container resolves artifact paths within one numbered sheet and exposes the
// lock shared by every artifact of the enclosing book.
//
//go:generate mockgen -source=container.go -destination=mocks/mock_container.go -package=mocks
type Container interface {
	// ResolveForRead resolves a path relative to the sheet folder.
	ResolveForRead(path string) (Location, error)
	// Lock returns the mutual exclusion shared by all artifacts of the book.
	Lock() sync.Locker
}

// WritableContainer is a Container that can also resolve write destinations.
type WritableContainer interface {
	Container
	// ResolveForWrite resolves a path relative to the sheet folder for writing.
	ResolveForWrite(path string) (Destination, error)
}
