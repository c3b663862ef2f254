// Package config provides the settings loader for ulink.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.trai.ch/ulink/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	envPrefix  = "ULINK"
	configType = "yaml"
)

// Loader implements ports.SettingsLoader on top of viper.
// Precedence, lowest first: built-in defaults, the settings file, ULINK_* environment variables.
type Loader struct{}

// NewLoader creates a new settings loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the settings file at path. A missing file yields the defaults.
func (l *Loader) Load(path string) (*domain.Settings, error) {
	v := newViper()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, zerr.With(zerr.Wrap(err, domain.ErrSettingsReadFailed.Error()), "path", path)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrSettingsReadFailed.Error()), "path", path)
		}
	}

	var settings domain.Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSettingsDecodeFailed.Error()), "path", path)
	}

	if err := validate(&settings); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	return &settings, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	d := domain.DefaultSettings()
	v.SetDefault("registry", d.Registry)
	v.SetDefault("default_root", d.DefaultRoot)
	v.SetDefault("generated_dir", d.GeneratedDir)
	v.SetDefault("file_name", d.FileName)
	v.SetDefault("pinned_units", d.PinnedUnits)
	v.SetDefault("refresh_stamp", d.RefreshStamp)
	v.SetDefault("controller_capability", d.ControllerCapability)
	v.SetDefault("watch.debounce", d.Watch.Debounce)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.max_size", d.Log.MaxSize)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.max_age", d.Log.MaxAge)
	v.SetDefault("log.compress", d.Log.Compress)

	return v
}

func validate(s *domain.Settings) error {
	required := []struct {
		key   string
		value string
	}{
		{"registry", s.Registry},
		{"default_root", s.DefaultRoot},
		{"generated_dir", s.GeneratedDir},
		{"file_name", s.FileName},
		{"refresh_stamp", s.RefreshStamp},
		{"controller_capability", s.ControllerCapability},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return zerr.With(zerr.Wrap(domain.ErrInvalidSettings, "required setting is empty"), "key", r.key)
		}
	}

	if strings.ContainsAny(s.FileName, `/\`) {
		return zerr.With(zerr.Wrap(domain.ErrInvalidSettings, "file name must not contain a path"), "key", "file_name")
	}

	if s.Watch.Debounce < 0 {
		return zerr.With(zerr.Wrap(domain.ErrInvalidSettings, "debounce must not be negative"), "key", "watch.debounce")
	}

	return nil
}
