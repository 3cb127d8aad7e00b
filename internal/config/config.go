// Package config loads and validates velta.json, the project
// configuration file. Configuration is an explicit value passed down
// to the builder and server; nothing reads it through globals.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/veltaweb/velta/internal/errors"
)

const (
	// ConfigFileName is the project configuration file name.
	ConfigFileName = "velta.json"

	// DefaultPort is the default server port.
	DefaultPort = 3000

	// DefaultHost is the default bind host.
	DefaultHost = "localhost"

	// DefaultOutput is the default build output directory.
	DefaultOutput = "dist"

	// DefaultStaticPrefix is the URL prefix for built assets.
	DefaultStaticPrefix = "/static"
)

// Config is the parsed velta.json.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Version is the project version.
	Version string `json:"version,omitempty"`

	// Paths locates the project source directories.
	Paths PathsConfig `json:"paths,omitempty"`

	// Static configures static asset serving.
	Static StaticConfig `json:"static,omitempty"`

	// Server configures the HTTP server.
	Server ServerConfig `json:"server,omitempty"`

	// Build configures the asset compiler.
	Build BuildConfig `json:"build,omitempty"`

	// I18n configures localization.
	I18n I18nConfig `json:"i18n,omitempty"`

	// configPath is where this config was loaded from.
	configPath string
}

// PathsConfig locates project source directories, relative to the
// config file unless absolute.
type PathsConfig struct {
	// Components holds the web component sources fed to the transpiler.
	Components string `json:"components,omitempty"`

	// Public holds static files copied into the build output.
	Public string `json:"public,omitempty"`
}

// StaticConfig configures asset serving.
type StaticConfig struct {
	// Prefix is the URL prefix built assets are served under.
	Prefix string `json:"prefix,omitempty"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Host string `json:"host,omitempty"`
	Port int    `json:"port,omitempty"`

	// Dev disables fingerprint resolution and serves assets
	// passthrough so edits show up without a rebuild.
	Dev bool `json:"dev,omitempty"`
}

// BuildConfig configures the asset compiler.
type BuildConfig struct {
	// Output is the build output directory.
	Output string `json:"output,omitempty"`

	// S3 optionally publishes the public dir after a build.
	S3 *S3Config `json:"s3,omitempty"`
}

// S3Config configures publication of built assets.
type S3Config struct {
	Bucket string `json:"bucket"`
	Region string `json:"region,omitempty"`
	Prefix string `json:"prefix,omitempty"`
}

// I18nConfig configures localization.
type I18nConfig struct {
	// Default is the fallback locale.
	Default string `json:"default,omitempty"`

	// Locales lists the supported locales.
	Locales []string `json:"locales,omitempty"`

	// Messages is the path to the message catalog JSON.
	Messages string `json:"messages,omitempty"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Version: "0.1.0",
		Paths: PathsConfig{
			Components: "app/components",
			Public:     "public",
		},
		Static: StaticConfig{
			Prefix: DefaultStaticPrefix,
		},
		Server: ServerConfig{
			Host: DefaultHost,
			Port: DefaultPort,
		},
		Build: BuildConfig{
			Output: DefaultOutput,
		},
	}
}

// Load reads velta.json from a project directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads a configuration file. Missing fields keep their
// defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("V100").
				WithDetail("no " + ConfigFileName + " in " + filepath.Dir(path))
		}
		return nil, errors.New("V101").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("V101").WithDetail(err.Error())
	}

	cfg.configPath = path
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveTo writes the configuration as JSON.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("V102").Wrap(err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return errors.New("V102").Wrap(err)
	}
	c.configPath = path
	return nil
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return "."
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills fields an explicit file left empty.
func (c *Config) applyDefaults() {
	d := New()
	if c.Paths.Components == "" {
		c.Paths.Components = d.Paths.Components
	}
	if c.Paths.Public == "" {
		c.Paths.Public = d.Paths.Public
	}
	if c.Static.Prefix == "" {
		c.Static.Prefix = d.Static.Prefix
	}
	if c.Server.Host == "" {
		c.Server.Host = d.Server.Host
	}
	if c.Server.Port == 0 {
		c.Server.Port = d.Server.Port
	}
	if c.Build.Output == "" {
		c.Build.Output = d.Build.Output
	}
	if c.I18n.Default == "" && len(c.I18n.Locales) > 0 {
		c.I18n.Default = c.I18n.Locales[0]
	}
}

// Validate rejects configurations the rest of the pipeline cannot
// work with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return errors.New("V102").
			WithDetail(fmt.Sprintf("server.port %d out of range", c.Server.Port))
	}
	if !strings.HasPrefix(c.Static.Prefix, "/") {
		return errors.New("V102").
			WithDetail("static.prefix must start with /")
	}
	if c.Build.S3 != nil && c.Build.S3.Bucket == "" {
		return errors.New("V102").
			WithDetail("build.s3.bucket is required when s3 is configured")
	}
	for _, l := range c.I18n.Locales {
		if l == "" {
			return errors.New("V102").WithDetail("empty locale in i18n.locales")
		}
	}
	return nil
}

// Address returns the host:port the server binds.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// OutputPath returns the absolute build output directory.
func (c *Config) OutputPath() string {
	return c.resolve(c.Build.Output)
}

// PublicPath returns the absolute static source directory.
func (c *Config) PublicPath() string {
	return c.resolve(c.Paths.Public)
}

// ComponentsPath returns the absolute web component source directory.
func (c *Config) ComponentsPath() string {
	return c.resolve(c.Paths.Components)
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Dir(), p)
}
