package ports

import "go.trai.ch/ulink/internal/core/domain"

// SourceRenderer turns the ordered sections of one root into source text.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type SourceRenderer interface {
	// Render returns the artifact text and its content fingerprint.
	// The result is a pure function of the sections.
	Render(sections []domain.Section) (text, fingerprint string, err error)
	// RenderRuntime returns the support source generated code depends on.
	RenderRuntime() (string, error)
}
