// Package config holds the runtime configuration for the season fetch tool.
//
// All values have baked-in defaults matching the current NBA season, so the
// tool runs with no config file at all. A YAML file can override any subset
// of the defaults.
package config
