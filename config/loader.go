package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultVehiclePositionsURL is the DART vehicle positions feed
const DefaultVehiclePositionsURL = "https://www.ridedart.com/gtfs/real-time/vehicle-positions"

// searchPaths are tried in order when no explicit config path is given
var searchPaths = []string{"config.yml", "./configs/config.yml"}

// Default returns the configuration used when no file overrides it
func Default() AppConfig {
	return AppConfig{
		Feed: FeedConfig{
			VehiclePositionsURL: DefaultVehiclePositionsURL,
		},
		Logger: LoggerConfig{
			Path:            ".",
			IntervalSeconds: 30,
		},
		Logging: LoggingConfig{
			Level:      "INFO",
			MaxAgeDays: 30,
		},
	}
}

// Load reads the YAML file at path on top of Default and validates the result.
// An empty path searches the default locations and falls back to Default when
// none exists; an explicit path that cannot be read is an error.
func Load(path string) (AppConfig, error) {
	cfg := Default()

	data, err := readConfigFile(path)
	if err != nil {
		return cfg, err
	}
	if data != nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks every section against its struct tags
func Validate(cfg AppConfig) error {
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func readConfigFile(path string) ([]byte, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		return data, nil
	}
	for _, p := range searchPaths {
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return nil, nil
}
