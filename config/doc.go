// Package config loads service configuration from YAML, .env files and the
// environment using Viper and godotenv.
//
// # Usage
//
//	type Config struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    Caption caption.Config `yaml:"caption" mapstructure:"caption"`
//	}
//
//	cfg, err := config.Load[Config]("captiond", config.WithEnvPrefix("CAPTIOND"))
//
// Files are searched under ./cmd/<service>/, ./config/ and the working
// directory. Environment variables override file values; with a prefix,
// CAPTIOND_CAPTION_DEBOUNCE_INTERVAL maps to caption.debounce_interval.
package config
