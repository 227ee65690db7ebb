package jwtcompression

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// EnvCompressionEnabled is the environment variable gating the compressed
// attach form. Recognized values are "true" and "false", case-insensitive;
// anything else, including an unset variable, disables compression.
const EnvCompressionEnabled = "ENABLE_JWT_COMPRESSION"

// Config is process configuration for the Compressor, read once at startup
// and passed in explicitly via WithConfig.
type Config struct {
	CompressionEnabled bool `toml:"compression_enabled"`
}

// ConfigFromEnv builds a Config from the process environment.
func ConfigFromEnv() Config {
	return Config{
		CompressionEnabled: parseBoolFlag(os.Getenv(EnvCompressionEnabled)),
	}
}

// LoadConfig reads a TOML configuration file. When EnvCompressionEnabled is
// set in the environment, it overrides the file value.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config load failed (%s)", path)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "config parse failed (%s)", path)
	}

	if v, ok := os.LookupEnv(EnvCompressionEnabled); ok {
		cfg.CompressionEnabled = parseBoolFlag(v)
	}

	return cfg, nil
}

func parseBoolFlag(v string) bool {
	return strings.EqualFold(v, "true")
}
