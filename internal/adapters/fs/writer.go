package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/ulink/internal/core/domain"
	"go.trai.ch/ulink/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactWriter = (*Writer)(nil)

// Writer implements ports.ArtifactWriter on the local file system.
type Writer struct {
	rename renameFunc
}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{rename: os.Rename}
}

// WriteIfChanged writes content to dir/fileName unless the existing file holds
// the same text after line ending normalization.
func (w *Writer) WriteIfChanged(dir, fileName, content string) (bool, error) {
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrGenerateDirFailed.Error()), "dir", dir)
	}

	content = domain.NormalizeLineEndings(content)
	target := filepath.Join(dir, fileName)

	//nolint:gosec // Path is built from the resolved root and settings
	existing, err := os.ReadFile(target)
	switch {
	case err == nil:
		if domain.NormalizeLineEndings(string(existing)) == content {
			return false, nil
		}
	case errors.Is(err, iofs.ErrNotExist):
	default:
		return false, zerr.With(zerr.Wrap(err, domain.ErrArtifactReadFailed.Error()), "path", target)
	}

	if err := writeFileAtomic(target, []byte(content), w.rename); err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes the file at path. A missing file is not an error.
func (w *Writer) Remove(path string) (bool, error) {
	if err := os.Remove(path); err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, domain.ErrArtifactRemoveFailed.Error()), "path", path)
	}
	return true, nil
}
