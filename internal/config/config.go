// Package config loads the optional TOML configuration of the newick CLI.
//
// The file is looked up at $XDG_CONFIG_HOME/newick/config.toml (falling back
// to ~/.config/newick/config.toml) unless a path is given explicitly:
//
//	[general]
//	log_level = "info"
//	encoding  = "utf-8"
//
//	[parse]
//	strict = false
//
//	[render]
//	strict_ascii  = false
//	show_internal = true
//	format        = "text"
//
// Keys missing from the file keep their defaults. Command-line flags take
// precedence over the file.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/newick/pkg/errors"
)

const appName = "newick"

// Render formats.
const (
	FormatText = "text"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
)

// Formats lists the accepted render formats.
var Formats = []string{FormatText, FormatDOT, FormatSVG}

// Config is the root configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Parse   ParseConfig   `toml:"parse"`
	Render  RenderConfig  `toml:"render"`
}

// GeneralConfig holds settings shared by all commands.
type GeneralConfig struct {
	LogLevel string `toml:"log_level"`
	Encoding string `toml:"encoding"`
}

// ParseConfig holds parser settings.
type ParseConfig struct {
	// Strict reads one tree per input and rejects text after its ';'.
	Strict bool `toml:"strict"`
}

// RenderConfig holds settings of the render command.
type RenderConfig struct {
	StrictASCII  bool   `toml:"strict_ascii"`
	ShowInternal bool   `toml:"show_internal"`
	Format       string `toml:"format"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		General: GeneralConfig{LogLevel: "info", Encoding: "utf-8"},
		Render:  RenderConfig{ShowInternal: true, Format: FormatText},
	}
}

// DefaultPath returns the XDG location of the configuration file.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the file at path on top of [Default]. A missing file is an
// error with code FILE_NOT_FOUND.
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(os.ExpandEnv(path), cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "config file not found: %s", path)
	}
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "parse config %s", path)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return nil, errs.New(errs.ErrCodeInvalidOption, "unknown key %q in %s", keys[0].String(), path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault reads the file at [DefaultPath] if it exists and returns
// [Default] otherwise.
func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	cfg, err := Load(path)
	if errs.Is(err, errs.ErrCodeFileNotFound) {
		return Default(), nil
	}
	return cfg, err
}

// Validate checks enumerated values.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if !slices.Contains(Formats, c.Render.Format) {
		return errs.New(errs.ErrCodeInvalidOption, "render.format must be one of %s, got %q",
			strings.Join(Formats, ", "), c.Render.Format)
	}
	return nil
}

// Level parses the configured log level.
func (c *Config) Level() (log.Level, error) {
	level, err := log.ParseLevel(c.General.LogLevel)
	if err != nil {
		return log.InfoLevel, errs.Wrap(errs.ErrCodeInvalidOption, err, "general.log_level")
	}
	return level, nil
}
