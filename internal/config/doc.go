// Package config loads and validates application configuration from
// environment variables and an optional YAML config file. Environment
// variables use the STACKS_ prefix and take precedence over file values.
package config
