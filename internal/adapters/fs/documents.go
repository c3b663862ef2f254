package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"slices"

	"go.trai.ch/ulink/internal/core/domain"
	"go.trai.ch/ulink/internal/core/ports"
	"go.trai.ch/zerr"
)

// DocumentExt is the extension of UI layout documents.
const DocumentExt = ".uxml"

var _ ports.DocumentStore = (*Documents)(nil)

// Documents implements ports.DocumentStore for layout documents on disk.
type Documents struct {
	walker *Walker
	rename renameFunc
}

// NewDocuments creates a new Documents store.
func NewDocuments(walker *Walker) *Documents {
	return &Documents{walker: walker, rename: os.Rename}
}

// Find returns the sorted layout documents below dirs. Missing directories are
// skipped.
func (d *Documents) Find(dirs []string) ([]string, error) {
	var paths []string
	for _, dir := range dirs {
		if _, err := os.Stat(dir); err != nil {
			if errors.Is(err, iofs.ErrNotExist) {
				continue
			}
			return nil, zerr.With(zerr.Wrap(err, domain.ErrDocumentReadFailed.Error()), "path", dir)
		}
		for path := range d.walker.WalkFiles(dir, DocumentExt) {
			paths = append(paths, path)
		}
	}
	slices.Sort(paths)
	return slices.Compact(paths), nil
}

// Read returns the document content.
func (d *Documents) Read(path string) ([]byte, error) {
	//nolint:gosec // Path comes from Find
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDocumentReadFailed.Error()), "path", path)
	}
	return data, nil
}

// Write replaces the document content atomically.
func (d *Documents) Write(path string, data []byte) error {
	return writeFileAtomic(path, data, d.rename)
}
