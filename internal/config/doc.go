// Package config loads the treeline.toml site configuration.
package config
