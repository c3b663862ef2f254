package ports

import "go.trai.ch/ulink/internal/core/domain"

// SettingsLoader defines the interface for loading the project settings.
//
//go:generate mockgen -source=settings_loader.go -destination=mocks/mock_settings_loader.go -package=mocks
type SettingsLoader interface {
	// Load reads the settings file at path. A missing file yields the defaults.
	Load(path string) (*domain.Settings, error)
}
