// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from an optional YAML file (CONFIG_PATH) with environment
// variable overrides, validated, and handed to the binaries as typed structs.
// Defaults live next to the settings they belong to so the deployable
// contract stays in one place.
package config
