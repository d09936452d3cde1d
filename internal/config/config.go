package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/vango-inspect/internal/errors"
	"github.com/vango-dev/vango-inspect/pkg/adapter"
	"github.com/vango-dev/vango-inspect/pkg/render"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "vinspect.yaml"

	// DefaultStash is the default attribute-bag location.
	DefaultStash = "property"

	// DefaultFormat is the default output format of the tree command.
	DefaultFormat = "text"
)

// Formats lists the supported output formats.
var Formats = []string{"text", "yaml"}

// Config represents the complete vinspect.yaml configuration.
type Config struct {
	// Adapter controls which props GetAttributes reports.
	Adapter AdapterConfig `yaml:"adapter,omitempty"`

	// Render controls how fixtures are mounted.
	Render RenderConfig `yaml:"render,omitempty"`

	// Output controls how the tree command prints.
	Output OutputConfig `yaml:"output,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// AdapterConfig mirrors adapter.Options.
type AdapterConfig struct {
	IncludeKeyProp bool `yaml:"includeKeyProp,omitempty"`
	IncludeRefProp bool `yaml:"includeRefProp,omitempty"`
}

// RenderConfig contains renderer settings.
type RenderConfig struct {
	// Stash is where attribute bags are stored: "property" or "symbol".
	Stash string `yaml:"stash,omitempty"`

	// SanitizeRawHTML runs raw HTML through a sanitizer before mounting.
	SanitizeRawHTML bool `yaml:"sanitizeRawHTML,omitempty"`
}

// OutputConfig contains output settings.
type OutputConfig struct {
	// Format is "text" or "yaml".
	Format string `yaml:"format,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Render: RenderConfig{Stash: DefaultStash},
		Output: OutputConfig{Format: DefaultFormat},
	}
}

// Load reads configuration from the specified directory.
// It looks for vinspect.yaml in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path. JSON files
// are accepted as well, since JSON is valid YAML.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("C001").WithDetail(path).Wrap(err)
	}

	cfg := New()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("C002").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			WithSuggestion("Check that the file is valid YAML")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsNotExist reports whether err is a load error for a missing file.
func IsNotExist(err error) bool {
	return errors.IsCode(err, "C001") && stderrors.Is(err, fs.ErrNotExist)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.New("C002").Wrap(err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("C001").WithDetail(path).Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in values left empty by the file.
func (c *Config) applyDefaults() {
	if c.Render.Stash == "" {
		c.Render.Stash = DefaultStash
	}
	if c.Output.Format == "" {
		c.Output.Format = DefaultFormat
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, ok := render.ParseStashMode(c.Render.Stash); !ok {
		return errors.New("C002").
			WithDetailf("render.stash must be \"property\" or \"symbol\", got %q", c.Render.Stash)
	}
	for _, f := range Formats {
		if c.Output.Format == f {
			return nil
		}
	}
	return errors.New("C002").
		WithDetailf("output.format must be \"text\" or \"yaml\", got %q", c.Output.Format)
}

// AdapterOptions returns the adapter options the config describes.
func (c *Config) AdapterOptions() []adapter.Option {
	return []adapter.Option{
		adapter.WithIncludeKeyProp(c.Adapter.IncludeKeyProp),
		adapter.WithIncludeRefProp(c.Adapter.IncludeRefProp),
	}
}

// RenderConfig returns the renderer configuration. Call Validate first;
// an unknown stash falls back to the property key.
func (c *Config) RenderConfig() render.Config {
	mode, _ := render.ParseStashMode(c.Render.Stash)
	return render.Config{
		Stash:           mode,
		SanitizeRawHTML: c.Render.SanitizeRawHTML,
	}
}
