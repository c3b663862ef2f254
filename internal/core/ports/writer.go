package ports

import "context"

// ArtifactWriter persists generated artifacts.
//
//go:generate mockgen -source=writer.go -destination=mocks/mock_writer.go -package=mocks
type ArtifactWriter interface {
	// WriteIfChanged writes content to dir/fileName unless the file already holds
	// the same text after line ending normalization. It reports whether it wrote.
	WriteIfChanged(dir, fileName, content string) (bool, error)
	// Remove deletes the file at path. It reports whether a file was removed.
	Remove(path string) (bool, error)
}

// Refresher asks the host to re-import changed assets.
type Refresher interface {
	// Refresh emits one refresh signal covering the changed artifact paths.
	Refresh(ctx context.Context, stampPath string, changed []string) error
}
