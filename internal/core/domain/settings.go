package domain

import "time"

// Settings is the project configuration read from ulink.yaml.
type Settings struct {
	Registry             string        `mapstructure:"registry"`
	DefaultRoot          string        `mapstructure:"default_root"`
	GeneratedDir         string        `mapstructure:"generated_dir"`
	FileName             string        `mapstructure:"file_name"`
	PinnedUnits          []string      `mapstructure:"pinned_units"`
	RefreshStamp         string        `mapstructure:"refresh_stamp"`
	ControllerCapability string        `mapstructure:"controller_capability"`
	Watch                WatchSettings `mapstructure:"watch"`
	Log                  LogSettings   `mapstructure:"log"`
}

// WatchSettings configures watch mode.
type WatchSettings struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// LogSettings configures the optional rotating log file.
type LogSettings struct {
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

// DefaultSettings returns the settings used when no file is present.
func DefaultSettings() Settings {
	return Settings{
		Registry:             DefaultRegistryPath(),
		DefaultRoot:          DefaultRoot,
		GeneratedDir:         GeneratedDirName,
		FileName:             ArtifactFileName,
		PinnedUnits:          PinnedUnits(),
		RefreshStamp:         DefaultRefreshStampPath(),
		ControllerCapability: ControllerCapability,
		Watch: WatchSettings{
			Debounce: 200 * time.Millisecond,
		},
		Log: LogSettings{
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   true,
		},
	}
}
