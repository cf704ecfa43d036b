package main

import (
	"fmt"

	"github.com/kbukum/captionkit/caption"
	"github.com/kbukum/captionkit/config"
	"github.com/kbukum/captionkit/observability"
)

// Config is the captiond configuration file layout.
type Config struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Caption   caption.Config                `yaml:"caption" mapstructure:"caption"`
	Telemetry observability.TelemetryConfig `yaml:"telemetry" mapstructure:"telemetry"`
}

// ApplyDefaults fills every section.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = serviceName
	}
	c.ServiceConfig.ApplyDefaults()
	c.Caption.ApplyDefaults()
	c.Telemetry.ApplyDefaults()
	c.Telemetry.ServiceName = c.Name
	c.Telemetry.ServiceVersion = c.Version
	c.Telemetry.Environment = c.Environment
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := c.Caption.Validate(); err != nil {
		return fmt.Errorf("config.caption: %w", err)
	}
	if err := c.Telemetry.Validate(); err != nil {
		return fmt.Errorf("config.telemetry: %w", err)
	}
	return nil
}
