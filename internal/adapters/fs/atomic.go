// Package fs provides file system adapters for persisting artifacts and documents.
package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/ulink/internal/core/domain"
	"go.trai.ch/zerr"
)

type renameFunc func(oldpath, newpath string) error

// writeFileAtomic writes data to a temporary sibling of path and renames it over
// path. On failure the temporary file is removed and path is left untouched.
func writeFileAtomic(path string, data []byte, rename renameFunc) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrGenerateDirFailed.Error()), "dir", dir)
	}

	tmpFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error()), "path", path)
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error()), "path", path)
	}

	if err := tmpFile.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error()), "path", path)
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error()), "path", path)
	}

	if err := rename(tmpName, path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactReplaceFailed.Error()), "path", path)
	}

	return nil
}
