// Package codec implements payload serialization for sheet artifacts.
package codec

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/scorebook/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Magic opens every framed artifact file.
const Magic = "SBK1"

// headerSize is the magic followed by a big-endian xxhash64 of the body.
const headerSize = len(Magic) + 8

// validator is implemented by payloads that can check their own invariants.
type validator interface {
	Validate() error
}

// Framed encodes payloads as a checksummed YAML body.
type Framed[T any] struct{}

// NewFramed creates a Framed codec.
func NewFramed[T any]() *Framed[T] {
	return &Framed[T]{}
}

// Encode writes the header and the YAML body of v.
func (f *Framed[T]) Encode(w io.Writer, v *T) error {
	body, err := yaml.Marshal(v)
	if err != nil {
		return zerr.Wrap(err, domain.ErrPayloadMarshalFailed.Error())
	}

	header := make([]byte, headerSize)
	copy(header, Magic)
	binary.BigEndian.PutUint64(header[len(Magic):], xxhash.Sum64(body))

	if _, err := w.Write(header); err != nil {
		return zerr.Wrap(err, domain.ErrFileWriteFailed.Error())
	}
	if _, err := w.Write(body); err != nil {
		return zerr.Wrap(err, domain.ErrFileWriteFailed.Error())
	}
	return nil
}

// Decode reads a framed payload, verifying magic and checksum before parsing.
func (f *Framed[T]) Decode(r io.Reader) (*T, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrFileOpenFailed.Error())
	}
	if len(raw) < headerSize || !bytes.Equal(raw[:len(Magic)], []byte(Magic)) {
		return nil, zerr.With(domain.ErrPayloadMalformed, "size", len(raw))
	}

	body := raw[headerSize:]
	want := binary.BigEndian.Uint64(raw[len(Magic):headerSize])
	if got := xxhash.Sum64(body); got != want {
		return nil, zerr.With(zerr.With(domain.ErrChecksumMismatch, "want", want), "got", got)
	}

	return unmarshal[T](body)
}

// YAML encodes payloads as plain YAML, for files written by hand.
type YAML[T any] struct{}

// NewYAML creates a YAML codec.
func NewYAML[T any]() *YAML[T] {
	return &YAML[T]{}
}

// Encode writes v as YAML.
func (y *YAML[T]) Encode(w io.Writer, v *T) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return zerr.Wrap(err, domain.ErrPayloadMarshalFailed.Error())
	}
	return enc.Close()
}

// Decode reads a YAML payload.
func (y *YAML[T]) Decode(r io.Reader) (*T, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrFileOpenFailed.Error())
	}
	return unmarshal[T](raw)
}

func unmarshal[T any](body []byte) (*T, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, zerr.With(domain.ErrPayloadMalformed, "reason", "empty body")
	}

	v := new(T)
	if err := yaml.Unmarshal(body, v); err != nil {
		return nil, zerr.Wrap(err, domain.ErrPayloadUnmarshalFailed.Error())
	}

	if val, ok := any(v).(validator); ok {
		if err := val.Validate(); err != nil {
			return nil, err
		}
	}
	return v, nil
}
