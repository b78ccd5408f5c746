package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Tatsh/mkwineprefix/internal/domain"
)

func TestLoadWritesDefaultsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	loader := NewFileLoader(path)

	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.WindowsVersion != domain.Windows10 {
		t.Errorf("windows version = %q, want %q", cfg.WindowsVersion, domain.Windows10)
	}
	if cfg.WineDebug != "fixme-all" {
		t.Errorf("wine debug = %q, want fixme-all", cfg.WineDebug)
	}
	if cfg.NvidiaLibsVersion != "0.8.3" {
		t.Errorf("nvidia-libs version = %q, want 0.8.3", cfg.NvidiaLibsVersion)
	}
	if cfg.PrefixRoot == "" {
		t.Error("prefix root default is empty")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("defaults were not written: %v", err)
	}
}

func TestLoadHydratesPartialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("prefix_root: /custom/prefixes\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	loader := NewFileLoader(path)

	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.PrefixRoot != "/custom/prefixes" {
		t.Errorf("prefix root = %q, want /custom/prefixes", cfg.PrefixRoot)
	}
	if cfg.WindowsVersion != domain.Windows10 {
		t.Errorf("windows version = %q, want default %q", cfg.WindowsVersion, domain.Windows10)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":\n\t- broken"), 0o600); err != nil {
		t.Fatal(err)
	}
	loader := NewFileLoader(path)

	if _, err := loader.Load(context.Background()); err == nil {
		t.Fatal("expected error for malformed config")
	}
}

func TestLoadFullConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := "prefix_root: /srv/prefixes\n" +
		"windows_version: \"7\"\n" +
		"wine_debug: warn-all\n" +
		"nvidia_libs_version: 0.9.0\n"
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}
	loader := NewFileLoader(path)

	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := domain.Config{
		PrefixRoot:        "/srv/prefixes",
		WindowsVersion:    domain.Windows7,
		WineDebug:         "warn-all",
		NvidiaLibsVersion: "0.9.0",
	}
	if cfg != want {
		t.Errorf("config = %+v, want %+v", cfg, want)
	}
}
