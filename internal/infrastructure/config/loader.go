// Package config loads persistent settings from the user's config directory.
package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Tatsh/mkwineprefix/internal/domain"
	"github.com/Tatsh/mkwineprefix/internal/pkg/filesystem"
	"github.com/Tatsh/mkwineprefix/internal/ports"
)

// FileLoader loads YAML configuration from ~/.config/mkwineprefix/config.yaml
// (overridable via MKWINEPREFIX_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider. A missing file is replaced with the
// written defaults.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.resolvePath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := defaultConfig()
			if err := writeDefault(path, cfg); err != nil {
				return domain.Config{}, err
			}
			return cfg, nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, err
	}
	return hydrateDefaults(cfg), nil
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv("MKWINEPREFIX_CONFIG"); custom != "" {
		return custom
	}
	return filepath.Join(filesystem.UserConfigDir(), "mkwineprefix", "config.yaml")
}

func writeDefault(path string, cfg domain.Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o600)
}

func defaultConfig() domain.Config {
	return hydrateDefaults(domain.Config{})
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.PrefixRoot == "" {
		cfg.PrefixRoot = filepath.Join(filesystem.UserHomeDir(), ".local", "share", "wineprefixes")
	}
	if cfg.WindowsVersion == "" {
		cfg.WindowsVersion = domain.Windows10
	}
	if cfg.WineDebug == "" {
		cfg.WineDebug = "fixme-all"
	}
	if cfg.NvidiaLibsVersion == "" {
		cfg.NvidiaLibsVersion = "0.8.3"
	}
	return cfg
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
