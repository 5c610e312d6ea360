package perflang

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/kolkov/perflang/internal/filter"
	"github.com/kolkov/perflang/internal/render"
)

// Output modes.
const (
	ModeTokens = "tokens" // print the token stream
	ModeAST    = "ast"    // print the syntax tree
)

// Config holds options for processing perf source.
type Config struct {
	// Mode selects what is printed: "tokens" (default) or "ast".
	Mode string `toml:"mode" yaml:"mode"`

	// Format selects the output representation: "text" (default), "table" or "yaml".
	Format string `toml:"format" yaml:"format"`

	// Filter is a regular expression over TOKEN_* names; only matching
	// tokens are printed in tokens mode. Empty keeps every token.
	Filter string `toml:"filter" yaml:"filter"`

	// Color enables colored diagnostics.
	Color bool `toml:"color" yaml:"color"`

	// Verbose enables debug logging in the driver.
	Verbose bool `toml:"verbose" yaml:"verbose"`

	// Prompt is the interactive prompt (default: "> ").
	Prompt string `toml:"prompt" yaml:"prompt"`

	// StopOnError ends an interactive session at the first failing line.
	StopOnError bool `toml:"stop_on_error" yaml:"stop_on_error"`
}

// DefaultConfig returns a Config with every field at its default.
func DefaultConfig() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// applyDefaults fills in default values for unset Config fields.
func (c *Config) applyDefaults() {
	if c.Mode == "" {
		c.Mode = ModeTokens
	}
	if c.Format == "" {
		c.Format = string(render.Text)
	}
	if c.Prompt == "" {
		c.Prompt = "> "
	}
}

// Validate reports every invalid field of c.
func (c *Config) Validate() error {
	var result *multierror.Error

	switch c.Mode {
	case "", ModeTokens, ModeAST:
	default:
		result = multierror.Append(result, errors.Errorf("unknown mode %q (want tokens or ast)", c.Mode))
	}
	if _, err := render.ParseFormat(c.Format); err != nil {
		result = multierror.Append(result, err)
	}
	if _, err := filter.Compile(c.Filter); err != nil {
		result = multierror.Append(result, errors.Wrapf(err, "invalid filter %q", c.Filter))
	}
	return result.ErrorOrNil()
}

// configFormat picks the config syntax from the file extension.
func configFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "toml"
	}
}

// LoadConfig reads a TOML or YAML config file, chosen by extension,
// and returns it with defaults applied and validated.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	return ParseConfig(data, configFormat(path))
}

// ParseConfig decodes config data in the given syntax ("toml" or "yaml").
func ParseConfig(data []byte, format string) (*Config, error) {
	cfg := &Config{}
	switch format {
	case "yaml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(err, "parse yaml config")
		}
	case "toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, errors.Wrap(err, "parse toml config")
		}
	default:
		return nil, errors.Errorf("unknown config format %q", format)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
