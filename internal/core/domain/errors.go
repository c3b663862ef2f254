package domain

import "go.trai.ch/zerr"

var (
	// ErrPassInProgress is returned when a generation pass is requested while another is running.
	ErrPassInProgress = zerr.New("generation pass already in progress")

	// ErrRegistryReadFailed is returned when the registry snapshot cannot be read.
	ErrRegistryReadFailed = zerr.New("failed to read registry snapshot")

	// ErrRegistryParseFailed is returned when the registry snapshot cannot be parsed.
	ErrRegistryParseFailed = zerr.New("failed to parse registry snapshot")

	// ErrUnsupportedRegistryVersion is returned for snapshots written by an unknown exporter version.
	ErrUnsupportedRegistryVersion = zerr.New("unsupported registry snapshot version")

	// ErrInvalidTypeEntry is returned when a registry entry has no name.
	ErrInvalidTypeEntry = zerr.New("registry type entry is missing a name")

	// ErrAncestorChainTooDeep is returned when a base chain does not reach the root sentinel.
	ErrAncestorChainTooDeep = zerr.New("ancestor chain does not terminate")

	// ErrNoDefinitionFile is returned when a compilation unit has no definition file.
	ErrNoDefinitionFile = zerr.New("compilation unit has no definition file")

	// ErrSettingsReadFailed is returned when the settings file cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read settings file")

	// ErrSettingsDecodeFailed is returned when the settings cannot be decoded.
	ErrSettingsDecodeFailed = zerr.New("failed to decode settings")

	// ErrInvalidSettings is returned when a setting has an unusable value.
	ErrInvalidSettings = zerr.New("invalid settings")

	// ErrRenderFailed is returned when an artifact template cannot be executed.
	ErrRenderFailed = zerr.New("failed to render artifact")

	// ErrGenerateDirFailed is returned when the generation directory cannot be created.
	ErrGenerateDirFailed = zerr.New("failed to create generation directory")

	// ErrArtifactReadFailed is returned when the existing artifact cannot be read.
	ErrArtifactReadFailed = zerr.New("failed to read existing artifact")

	// ErrArtifactWriteFailed is returned when the temporary artifact cannot be written.
	ErrArtifactWriteFailed = zerr.New("failed to write artifact")

	// ErrArtifactReplaceFailed is returned when the temporary artifact cannot replace the target.
	ErrArtifactReplaceFailed = zerr.New("failed to replace artifact")

	// ErrArtifactRemoveFailed is returned when a generated artifact cannot be removed.
	ErrArtifactRemoveFailed = zerr.New("failed to remove artifact")

	// ErrRefreshFailed is returned when the host refresh signal cannot be emitted.
	ErrRefreshFailed = zerr.New("failed to signal asset refresh")

	// ErrUnknownControllerRef is returned when a bare identifier matches no controller type.
	ErrUnknownControllerRef = zerr.New("controller type not found")

	// ErrAmbiguousControllerRef is returned when a bare identifier matches several controller types.
	ErrAmbiguousControllerRef = zerr.New("controller type name is ambiguous")

	// ErrDocumentReadFailed is returned when a UXML document cannot be read.
	ErrDocumentReadFailed = zerr.New("failed to read document")

	// ErrRootsFailed is returned when a pass finished but skipped at least one root.
	ErrRootsFailed = zerr.New("some roots could not be generated")

	// ErrWatchFailed is returned when the registry snapshot cannot be watched.
	ErrWatchFailed = zerr.New("failed to watch registry snapshot")
)
