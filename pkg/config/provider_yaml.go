package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/chrissnell/irradiance/pkg/solar"
)

// YAMLProvider implements Provider for YAML configuration files
type YAMLProvider struct {
	filename string
	config   *ConfigData
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// LoadConfig loads the complete configuration from YAML file
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	config, err := parseYAML(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", y.filename, err)
	}

	y.config = config
	return config, nil
}

// parseYAML converts a YAML document into our internal format
func parseYAML(data []byte) (*ConfigData, error) {
	// Load into temporary struct with YAML tags
	var yamlConfig struct {
		Site       SiteYAML       `yaml:"site"`
		Separation SeparationYAML `yaml:"separation"`
	}

	if err := yaml.UnmarshalStrict(data, &yamlConfig); err != nil {
		return nil, err
	}

	config := &ConfigData{
		Site: SiteData{
			Name:             yamlConfig.Site.Name,
			Latitude:         yamlConfig.Site.Latitude,
			Longitude:        yamlConfig.Site.Longitude,
			Elevation:        yamlConfig.Site.Elevation,
			StandardMeridian: solar.DefaultStandardMeridian,
		},
		Separation: SeparationData{
			Model: yamlConfig.Separation.Model,
		},
	}

	if yamlConfig.Site.StandardMeridian != nil {
		config.Site.StandardMeridian = *yamlConfig.Site.StandardMeridian
	}

	return config, nil
}

// GetSite returns the site configuration
func (y *YAMLProvider) GetSite() (*SiteData, error) {
	if y.config == nil {
		_, err := y.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &y.config.Site, nil
}

// GetSeparation returns the separation configuration
func (y *YAMLProvider) GetSeparation() (*SeparationData, error) {
	if y.config == nil {
		_, err := y.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &y.config.Separation, nil
}

// YAML-specific structs with proper YAML tags
type SiteYAML struct {
	Name             string   `yaml:"name,omitempty"`
	Latitude         float64  `yaml:"latitude"`
	Longitude        float64  `yaml:"longitude"`
	Elevation        float64  `yaml:"elevation"`
	StandardMeridian *float64 `yaml:"standard-meridian,omitempty"`
}

type SeparationYAML struct {
	Model string `yaml:"model"`
}
