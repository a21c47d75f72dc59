// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Config file (JSON, YAML or TOML, read with viper)
//  3. .env file
//  4. Environment variables
//  5. Command-line flags
//
// The main entry point is [GetStructuredConfig].
package config
