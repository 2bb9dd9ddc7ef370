package domain

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Source is where a ledger is read from. The set of implementations is closed:
// a FileSource or a StreamSource, resolved by the caller before ingestion.
type Source interface {
	// Open returns a reader positioned at the start of the ledger. Callers must close it.
	Open() (io.ReadCloser, error)

	// Name identifies the source in logs and errors
	Name() string

	isSource()
}

// FileSource reads a ledger from a path on disk
type FileSource struct {
	Path string
}

// NewFileSource creates a new FileSource
func NewFileSource(path string) FileSource {
	return FileSource{Path: path}
}

// Open implements the Source interface
func (s FileSource) Open() (io.ReadCloser, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: s.Path, Err: err}
		}
		return nil, fmt.Errorf("opening ledger file: %w", err)
	}
	return f, nil
}

// Name implements the Source interface
func (s FileSource) Name() string {
	return s.Path
}

func (FileSource) isSource() {}

// StreamSource reads a ledger from an already open stream, e.g. stdin or an upload
type StreamSource struct {
	Label  string
	Reader io.Reader
}

// NewStreamSource creates a new StreamSource
func NewStreamSource(label string, r io.Reader) StreamSource {
	return StreamSource{Label: label, Reader: r}
}

// Open implements the Source interface. The underlying stream is not closed;
// its owner is responsible for that.
func (s StreamSource) Open() (io.ReadCloser, error) {
	if s.Reader == nil {
		return nil, &NotFoundError{Path: s.Name(), Err: errors.New("no stream provided")}
	}
	return io.NopCloser(s.Reader), nil
}

// Name implements the Source interface
func (s StreamSource) Name() string {
	if s.Label == "" {
		return "stream"
	}
	return s.Label
}

func (StreamSource) isSource() {}
