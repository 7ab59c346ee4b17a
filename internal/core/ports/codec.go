package ports

import "io"

// Codec serializes payloads of type T.
type Codec[T any] interface {
	// Encode writes v to w.
	Encode(w io.Writer, v *T) error
	// Decode reads a payload from r.
	Decode(r io.Reader) (*T, error)
}
