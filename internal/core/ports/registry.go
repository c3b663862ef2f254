// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/ulink/internal/core/domain"

// TypeRegistry answers type queries against one snapshot of the loaded types.
// Results carry no ordering guarantee.
//
//go:generate mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type TypeRegistry interface {
	// TypesWithMarker returns every type carrying the given marker annotation.
	TypesWithMarker(marker string) []domain.CandidateType
	// TypesImplementing returns every type declaring the given capability.
	TypesImplementing(capability string) []domain.CandidateType
}

// UnitLocator enumerates compilation units and their definition files.
type UnitLocator interface {
	// Units returns the names of every compilation unit that has a definition file.
	Units() []string
	// DefinitionFile returns the project-relative path of the unit's definition file.
	DefinitionFile(unit string) (string, error)
}

// Registry is a loaded snapshot that serves both type and unit queries.
type Registry interface {
	TypeRegistry
	UnitLocator
}

// RegistryLoader reads a registry snapshot exported by the host.
type RegistryLoader interface {
	// Load reads and parses the snapshot at path.
	Load(path string) (Registry, error)
	// Read returns the raw snapshot bytes at path.
	Read(path string) ([]byte, error)
	// Parse indexes snapshot bytes already read.
	Parse(data []byte) (Registry, error)
}
