package config

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/chrissnell/irradiance/internal/log"
	"github.com/chrissnell/irradiance/pkg/separation"
)

// Provider defines the interface for configuration data sources
type Provider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	// Get specific configuration sections
	GetSite() (*SiteData, error)
	GetSeparation() (*SeparationData, error)
}

// ConfigData represents the complete configuration structure
type ConfigData struct {
	Site       SiteData       `json:"site"`
	Separation SeparationData `json:"separation"`
}

// SiteData holds the location the hourly series were observed at
type SiteData struct {
	Name             string  `json:"name,omitempty"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	Elevation        float64 `json:"elevation"`
	StandardMeridian float64 `json:"standard_meridian"`
}

// SeparationData holds the choice of separation model
type SeparationData struct {
	Model string `json:"model"`
}

// Site converts the site configuration for use by a Separator
func (s SiteData) Site() separation.Site {
	return separation.Site{
		Latitude:         s.Latitude,
		Longitude:        s.Longitude,
		Elevation:        s.Elevation,
		StandardMeridian: s.StandardMeridian,
	}
}

// Validate checks the configuration before any series is processed
func (c *ConfigData) Validate() error {
	if c.Site.Latitude < -90 || c.Site.Latitude > 90 {
		return &separation.ConfigurationError{
			Setting: "site latitude",
			Value:   fmt.Sprint(c.Site.Latitude),
			Reason:  "must be between -90 and 90 degrees",
		}
	}

	if c.Site.Longitude < -180 || c.Site.Longitude > 180 {
		return &separation.ConfigurationError{
			Setting: "site longitude",
			Value:   fmt.Sprint(c.Site.Longitude),
			Reason:  "must be between -180 and 180 degrees",
		}
	}

	if c.Site.StandardMeridian < -180 || c.Site.StandardMeridian > 180 {
		return &separation.ConfigurationError{
			Setting: "site standard meridian",
			Value:   fmt.Sprint(c.Site.StandardMeridian),
			Reason:  "must be between -180 and 180 degrees",
		}
	}

	if _, err := separation.ParseModel(c.Separation.Model); err != nil {
		return fmt.Errorf("separation: %w", err)
	}

	return nil
}

// Separator builds a Separator for the configured site and model. When
// logger is nil the separator logs through the package-level logger.
func (c *ConfigData) Separator(logger *zap.SugaredLogger) (*separation.Separator, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if logger == nil {
		logger = log.Named("separation")
	}
	if c.Site.Name != "" {
		logger = logger.With("site", c.Site.Name)
	}

	return separation.NewSeparator(c.Site.Site(), c.Separation.Model, logger)
}

