package domain

import "path/filepath"

const (
	// DefaultRoot is the output root for units without a definition file.
	DefaultRoot = "Assets"

	// GeneratedDirName is the generation subdirectory below each root.
	GeneratedDirName = "Generated/Controller"

	// ArtifactFileName is the name of the generated source file.
	ArtifactFileName = "Ulink.g.cs"

	// RuntimeFileName is the name of the emitted binder support source.
	RuntimeFileName = "UlinkBinder.cs"

	// TemplateVersion is bumped whenever the generated block shape changes.
	TemplateVersion = 2

	// SettingsFileName is the name of the project settings file.
	SettingsFileName = "ulink.yaml"

	// UlinkDirName is the name of the host exchange directory.
	UlinkDirName = "Library/Ulink"

	// RegistryFileName is the name of the registry snapshot written by the host.
	RegistryFileName = "registry.yaml"

	// RefreshStampFileName is the name of the stamp the host watches for refresh requests.
	RefreshStampFileName = "refresh.stamp"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// PinnedUnits are the host's implicit units. They always resolve to DefaultRoot.
func PinnedUnits() []string {
	return []string{"Assembly-CSharp", "Assembly-CSharp-Editor"}
}

// DefaultRegistryPath returns the default path of the registry snapshot.
func DefaultRegistryPath() string {
	return filepath.Join(UlinkDirName, RegistryFileName)
}

// DefaultRefreshStampPath returns the default path of the refresh stamp.
func DefaultRefreshStampPath() string {
	return filepath.Join(UlinkDirName, RefreshStampFileName)
}

// ArtifactPath returns the generated file path for a root.
func ArtifactPath(root, generatedDir, fileName string) string {
	return filepath.ToSlash(filepath.Join(root, generatedDir, fileName))
}
