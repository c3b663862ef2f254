package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"
)

// skipDirs are host directories that never contain authored documents.
var skipDirs = map[string]bool{
	".git":    true,
	"Library": true,
	"Temp":    true,
	"Logs":    true,
	"obj":     true,
}

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields the files below root whose name ends with ext. Hidden and
// host-owned directories are skipped.
func (w *Walker) WalkFiles(root, ext string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // Unreadable entries are skipped
			}

			if d.IsDir() {
				if path != root && w.shouldSkipDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}

			if !strings.EqualFold(filepath.Ext(path), ext) {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func (w *Walker) shouldSkipDir(name string) bool {
	return skipDirs[name] || strings.HasPrefix(name, ".")
}
