// Package config loads server configuration from environment variables
// and an optional YAML file. Flag handling lives with the CLI.
package config
