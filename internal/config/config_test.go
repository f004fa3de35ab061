package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/newick/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.General.LogLevel != "info" || cfg.General.Encoding != "utf-8" {
		t.Errorf("general = %+v", cfg.General)
	}
	if cfg.Parse.Strict {
		t.Error("parse.strict should default to false")
	}
	if !cfg.Render.ShowInternal || cfg.Render.StrictASCII || cfg.Render.Format != FormatText {
		t.Errorf("render = %+v", cfg.Render)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[general]
log_level = "debug"

[parse]
strict = true

[render]
show_internal = false
format = "svg"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !cfg.Parse.Strict {
		t.Error("parse.strict = false, want true")
	}
	if cfg.Render.ShowInternal {
		t.Error("render.show_internal = true, want false")
	}
	if cfg.Render.Format != FormatSVG {
		t.Errorf("render.format = %q, want svg", cfg.Render.Format)
	}
	if cfg.General.Encoding != "utf-8" {
		t.Errorf("general.encoding = %q, want default utf-8", cfg.General.Encoding)
	}
	if level, _ := cfg.Level(); level != log.DebugLevel {
		t.Errorf("Level() = %v, want debug", level)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    errs.Code
	}{
		{name: "invalid toml", content: "[general\n", code: errs.ErrCodeInvalidFormat},
		{name: "unknown key", content: "[render]\ncolor = true\n", code: errs.ErrCodeInvalidOption},
		{name: "bad level", content: "[general]\nlog_level = \"loud\"\n", code: errs.ErrCodeInvalidOption},
		{name: "bad format", content: "[render]\nformat = \"png\"\n", code: errs.ErrCodeInvalidOption},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if !errs.Is(err, tt.code) {
				t.Errorf("Load() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("Load() error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoadDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() without file error: %v", err)
	}
	if cfg.Render.Format != FormatText {
		t.Errorf("LoadDefault() without file = %+v, want defaults", cfg)
	}

	if err := os.MkdirAll(filepath.Join(dir, appName), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, appName, "config.toml"), []byte("[render]\nformat = \"dot\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() error: %v", err)
	}
	if cfg.Render.Format != FormatDOT {
		t.Errorf("render.format = %q, want dot", cfg.Render.Format)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	path, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/tmp/xdg", "newick", "config.toml"); path != want {
		t.Errorf("DefaultPath() = %q, want %q", path, want)
	}
}
