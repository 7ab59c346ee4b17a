package book

import (
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/scorebook/internal/core/domain"
	"go.trai.ch/zerr"
)

type fileLocation string

func (l fileLocation) String() string {
	return string(l)
}

func (l fileLocation) Open() (io.ReadCloser, error) {
	//nolint:gosec // Path is confined to the sheet folder by resolve
	return os.Open(string(l))
}

type fileDestination string

func (d fileDestination) String() string {
	return string(d)
}

// Create writes to a temporary sibling that replaces the target on Close.
func (d fileDestination) Create() (io.WriteCloser, error) {
	path := string(d)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSheetCreateFailed.Error()), "folder", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", path)
	}
	return &atomicFile{tmp: tmp, target: path}, nil
}

// atomicFile remembers the first write error so Close can discard a partial file.
type atomicFile struct {
	tmp    *os.File
	target string
	err    error
}

func (f *atomicFile) Write(p []byte) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	n, err := f.tmp.Write(p)
	if err != nil {
		f.err = zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", f.target)
	}
	return n, f.err
}

func (f *atomicFile) Close() error {
	closeErr := f.tmp.Close()
	if f.err == nil && closeErr != nil {
		f.err = zerr.With(zerr.Wrap(closeErr, domain.ErrFileWriteFailed.Error()), "path", f.target)
	}
	if f.err == nil {
		if err := os.Chmod(f.tmp.Name(), domain.FilePerm); err != nil {
			f.err = zerr.Wrap(err, domain.ErrFileWriteFailed.Error())
		}
	}
	if f.err == nil {
		if err := os.Rename(f.tmp.Name(), f.target); err != nil {
			f.err = zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", f.target)
		}
	}
	if f.err != nil {
		_ = os.Remove(f.tmp.Name())
		return f.err
	}
	return nil
}
