package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mtlprog/lendstat/internal/domain"
)

// ErrInvalidDocument indicates that an input document could not be decoded.
var ErrInvalidDocument = errors.New("invalid input document")

// Document is the investments/tokens pair fed to the dashboard.
// A missing or null key decodes to a nil slice; "[]" decodes to an empty one.
type Document struct {
	Investments []domain.Investment `json:"investments"`
	Tokens      []domain.Token      `json:"tokens"`
}

// Complete reports whether both collections are present.
func (d Document) Complete() bool {
	return d.Investments != nil && d.Tokens != nil
}

// Decode reads a JSON input document.
func Decode(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return doc, nil
}

// LoadFile reads a JSON input document from disk.
func LoadFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("opening input document: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return Document{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return doc, nil
}

// Source supplies input documents to long-running consumers.
type Source interface {
	Load(ctx context.Context) (Document, error)
}

// FileSource loads the document from a file on every call.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load implements Source.
func (s *FileSource) Load(ctx context.Context) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	return LoadFile(s.path)
}
