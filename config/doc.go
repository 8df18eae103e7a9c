// Package config handles application configuration loading and validation.
//
// Configuration is read from an optional YAML file and validated using struct
// tags. When no file is given, Default values apply; command-line flags are
// layered on top by the CLI.
package config
