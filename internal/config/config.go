package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config models partnerline.yml: workspace-level defaults for the sample
// data pipeline and the local API server.
type Config struct {
	Server struct {
		Addr     string `yaml:"addr"`
		BasePath string `yaml:"base_path"`
	} `yaml:"server"`
	// Sample overrides the documented default quantities used when a
	// generation request leaves a field unset. Nil means "use the
	// built-in default".
	Sample struct {
		Projects         *int `yaml:"projects"`
		SPIs             *int `yaml:"spis"`
		Objectives       *int `yaml:"objectives"`
		SitReps          *int `yaml:"sitreps"`
		Fortune30        *int `yaml:"fortune30"`
		InternalPartners *int `yaml:"internal_partners"`
		SMEPartners      *int `yaml:"sme_partners"`
	} `yaml:"sample"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Addr = "127.0.0.1:8080"
	cfg.Server.BasePath = "/v0"
	return cfg
}

// Path returns the config file path for a workspace.
func Path(workspace string) string {
	if workspace == "" {
		workspace = "."
	}
	return filepath.Join(workspace, ".partnerline", "partnerline.yml")
}

// Load reads config from the workspace, falling back to defaults when
// the file does not exist.
func Load(workspace string) (*Config, error) {
	data, err := os.ReadFile(Path(workspace))
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	return FromYAML(data)
}

// FromYAML parses and validates a config document.
func FromYAML(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate ensures the config meets required structure.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("config.server.addr is required")
	}
	for name, v := range map[string]*int{
		"projects":          c.Sample.Projects,
		"spis":              c.Sample.SPIs,
		"objectives":        c.Sample.Objectives,
		"sitreps":           c.Sample.SitReps,
		"fortune30":         c.Sample.Fortune30,
		"internal_partners": c.Sample.InternalPartners,
		"sme_partners":      c.Sample.SMEPartners,
	} {
		if v != nil && *v < 0 {
			return fmt.Errorf("config.sample.%s must not be negative", name)
		}
	}
	return nil
}
