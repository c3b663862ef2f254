package registry

// SnapshotVersion is the only snapshot format this loader understands.
const SnapshotVersion = "1"

// Snapshot is the registry document the host writes after each compilation.
type Snapshot struct {
	Version string    `yaml:"version"`
	Units   []UnitDTO `yaml:"units"`
	Types   []TypeDTO `yaml:"types"`
}

// UnitDTO describes one compilation unit.
type UnitDTO struct {
	Name       string `yaml:"name"`
	Definition string `yaml:"definition"`
}

// TypeDTO describes one loaded type.
type TypeDTO struct {
	Name         string   `yaml:"name"`
	Namespace    string   `yaml:"namespace"`
	Unit         string   `yaml:"unit"`
	Kind         string   `yaml:"kind"`
	Abstract     bool     `yaml:"abstract"`
	Base         string   `yaml:"base"`
	Ancestors    []string `yaml:"ancestors"`
	Markers      []string `yaml:"markers"`
	Capabilities []string `yaml:"capabilities"`
}
