package config

// FeedConfig contains GTFS-Realtime feed configuration
type FeedConfig struct {
	VehiclePositionsURL string `yaml:"vehiclePositionsURL" validate:"required"`
	TimeoutMS           int    `yaml:"timeoutMS" validate:"gte=0"`
}

// LoggerConfig controls the position logging loop
type LoggerConfig struct {
	Path            string `yaml:"path" validate:"required"`
	IntervalSeconds int    `yaml:"intervalSeconds" validate:"gt=0"`
}

// HealthConfig contains the optional health endpoint configuration
type HealthConfig struct {
	Addr string `yaml:"addr" validate:"omitempty,hostname_port"`
}

// LoggingConfig contains log output configuration
type LoggingConfig struct {
	Level      string `yaml:"level" validate:"omitempty,oneof=DEBUG INFO WARN ERROR"`
	FilePath   string `yaml:"filePath"`
	MaxAgeDays int    `yaml:"maxAgeDays" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Feed    FeedConfig    `yaml:"feed"`
	Logger  LoggerConfig  `yaml:"logger"`
	Health  HealthConfig  `yaml:"health"`
	Logging LoggingConfig `yaml:"logging"`
}
