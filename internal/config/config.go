package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/treeline-ui/treeline/pkg/nav"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "treeline.toml"

	// DefaultHost is the default server host.
	DefaultHost = "localhost"

	// DefaultPort is the default server port.
	DefaultPort = 8350

	// DefaultContentDir is the default Markdown content directory.
	DefaultContentDir = "content"

	// DefaultOutputDir is the default static build output directory.
	DefaultOutputDir = "dist"

	// DefaultStaticDir is the default static assets directory.
	DefaultStaticDir = "static"
)

// Config is the complete treeline.toml configuration.
type Config struct {
	// Site describes the documentation site.
	Site SiteConfig `toml:"site"`

	// Server configures the docs server.
	Server ServerConfig `toml:"server"`

	// Paths configures content and output directories.
	Paths PathsConfig `toml:"paths"`

	// Publish configures S3 publishing.
	Publish PublishConfig `toml:"publish"`

	// Nav is the site navigation tree.
	Nav []nav.Item `toml:"nav"`
}

// SiteConfig describes the documentation site.
type SiteConfig struct {
	// Title is the site title, shown in the header and page titles.
	Title string `toml:"title"`

	// Description is the meta description.
	Description string `toml:"description"`

	// BaseURL is the canonical base URL of the published site.
	BaseURL string `toml:"base_url"`
}

// ServerConfig configures the docs server.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// PathsConfig configures content and output directories.
type PathsConfig struct {
	// Content is the directory holding Markdown pages.
	Content string `toml:"content"`

	// Output is the static build output directory.
	Output string `toml:"output"`

	// Static is the static assets directory, served under /static/.
	Static string `toml:"static"`
}

// PublishConfig configures S3 publishing.
type PublishConfig struct {
	Bucket string `toml:"bucket"`
	Prefix string `toml:"prefix"`
	Region string `toml:"region"`
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	return &Config{
		Site: SiteConfig{Title: "Documentation"},
		Server: ServerConfig{
			Host: DefaultHost,
			Port: DefaultPort,
		},
		Paths: PathsConfig{
			Content: DefaultContentDir,
			Output:  DefaultOutputDir,
			Static:  DefaultStaticDir,
		},
	}
}

// Load reads the configuration from the given path. A missing file is
// not an error: the defaults are returned.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Server.Port)
	}
	if c.Paths.Content == "" {
		return fmt.Errorf("paths.content must not be empty")
	}
	return nil
}
