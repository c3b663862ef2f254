package registry

import (
	"os"
	"path/filepath"

	"go.trai.ch/ulink/internal/core/domain"
	"go.trai.ch/ulink/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.RegistryLoader = (*Loader)(nil)

// Loader implements ports.RegistryLoader for YAML snapshots.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and indexes the snapshot at path.
func (l *Loader) Load(path string) (ports.Registry, error) {
	data, err := Read(path)
	if err != nil {
		return nil, err
	}
	return l.Parse(data)
}

// Read returns the raw snapshot bytes at path.
func (l *Loader) Read(path string) ([]byte, error) {
	return Read(path)
}

// Parse indexes snapshot bytes already read.
func (l *Loader) Parse(data []byte) (ports.Registry, error) {
	r, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Read returns the raw snapshot bytes.
func Read(path string) ([]byte, error) {
	// #nosec G304 -- path comes from the project settings
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRegistryReadFailed.Error()), "path", path)
	}
	return data, nil
}

// Parse decodes and indexes snapshot bytes.
func Parse(data []byte) (*Registry, error) {
	var snapshot Snapshot
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return nil, zerr.Wrap(err, domain.ErrRegistryParseFailed.Error())
	}

	if snapshot.Version != SnapshotVersion {
		return nil, zerr.With(
			zerr.Wrap(domain.ErrUnsupportedRegistryVersion, "invalid registry"),
			"version", snapshot.Version,
		)
	}

	units := make(map[string]string, len(snapshot.Units))
	for _, u := range snapshot.Units {
		units[u.Name] = filepath.ToSlash(u.Definition)
	}

	types := make([]domain.CandidateType, 0, len(snapshot.Types))
	for _, dto := range snapshot.Types {
		types = append(types, domain.CandidateType{
			FullName:     dto.Name,
			Namespace:    dto.Namespace,
			Unit:         dto.Unit,
			Kind:         domain.TypeKind(dto.Kind),
			Abstract:     dto.Abstract,
			Base:         dto.Base,
			Ancestors:    dto.Ancestors,
			Markers:      dto.Markers,
			Capabilities: dto.Capabilities,
		})
	}

	return New(units, types)
}
