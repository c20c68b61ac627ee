// Package document loads the file being searched.
package document

import (
	"context"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/ccollicutt/minigrep/pkg/search"
)

// ErrIo is returned when a document cannot be read as UTF-8 text.
var ErrIo = errors.New("io error")

// Document is the full text of a file, held in memory for one search.
type Document struct {
	// Path is the file the contents were read from.
	Path string

	// Contents is the whole file as text.
	Contents string
}

// Load reads the file at path fully into memory.
// Missing files, directories, unreadable files and invalid UTF-8 all
// produce an error wrapping ErrIo.
func Load(ctx context.Context, path string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIo, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrIo, path)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path is expected
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIo, err)
	}

	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: %s: stream did not contain valid UTF-8", ErrIo, path)
	}

	return &Document{Path: path, Contents: string(data)}, nil
}

// Lines returns the document split into lines.
func (d *Document) Lines() []string {
	return search.Lines(d.Contents)
}
