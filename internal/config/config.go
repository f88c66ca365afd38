// Package config loads woodsc settings from TOML or YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/you-not-fish/woods/internal/syntax"
)

// EnvVar names the environment variable that points to a config file.
const EnvVar = "WOODS_CONFIG"

// Output formats for the ast command
const (
	FormatSexpr = "sexpr"
	FormatTree  = "tree"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatDump  = "dump"
)

// Formats lists the supported output formats.
var Formats = []string{FormatSexpr, FormatTree, FormatJSON, FormatYAML, FormatDump}

// DiscoveryNames are the file names Discover looks for, in order.
var DiscoveryNames = []string{"woods.toml", "woods.yaml", "woods.yml"}

// Config holds the complete woodsc configuration
type Config struct {
	Output      OutputConfig      `toml:"output" yaml:"output"`
	Diagnostics DiagnosticsConfig `toml:"diagnostics" yaml:"diagnostics"`
	Parser      ParserConfig      `toml:"parser" yaml:"parser"`
}

// OutputConfig holds printing settings
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"`
}

// DiagnosticsConfig holds error rendering settings
type DiagnosticsConfig struct {
	Marker  string `toml:"marker" yaml:"marker"`
	Color   bool   `toml:"color" yaml:"color"`
	Context bool   `toml:"context" yaml:"context"`
}

// ParserConfig holds parser options
type ParserConfig struct {
	RequireReturn bool `toml:"require_return" yaml:"require_return"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format: FormatSexpr,
		},
		Diagnostics: DiagnosticsConfig{
			Marker:  syntax.DefaultMarker,
			Color:   true,
			Context: true,
		},
	}
}

// Load loads configuration from a TOML or YAML file, chosen by extension.
// Settings missing from the file keep their default values.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(content), cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		// An empty document leaves the defaults untouched.
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q: %s", ext, path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Discover loads the first of DiscoveryNames found in dir and returns the
// path it used. Without a config file it returns the defaults and "".
func Discover(dir string) (*Config, string, error) {
	for _, name := range DiscoveryNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			cfg, err := Load(path)
			if err != nil {
				return nil, path, err
			}
			return cfg, path, nil
		}
	}
	return Default(), "", nil
}

// Validate checks the configuration for unsupported values.
func (c *Config) Validate() error {
	if !IsFormat(c.Output.Format) {
		return fmt.Errorf("unknown output format %q (supported: %s)", c.Output.Format, strings.Join(Formats, ", "))
	}
	if c.Diagnostics.Marker == "" {
		return fmt.Errorf("diagnostics marker must not be empty")
	}
	return nil
}

// IsFormat reports whether name is a supported output format.
func IsFormat(name string) bool {
	for _, f := range Formats {
		if f == name {
			return true
		}
	}
	return false
}

// ParserOptions returns the syntax options selected by the configuration.
func (c *Config) ParserOptions() []syntax.Option {
	var opts []syntax.Option
	if c.Parser.RequireReturn {
		opts = append(opts, syntax.WithReturnCheck())
	}
	return opts
}
