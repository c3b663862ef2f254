package ports

// DocumentStore finds and rewrites UI layout documents.
//
//go:generate mockgen -source=documents.go -destination=mocks/mock_documents.go -package=mocks
type DocumentStore interface {
	// Find returns the layout documents below the given directories, sorted.
	Find(dirs []string) ([]string, error)
	// Read returns the document content.
	Read(path string) ([]byte, error)
	// Write replaces the document content atomically.
	Write(path string, data []byte) error
}
