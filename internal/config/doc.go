// Package config loads, normalizes, and validates sift configuration
// data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from ~/.config/sift/config.toml or a
// project-local sift.toml. Always obtain settings through this package
// so downstream code receives sanitized paths, canonical option values,
// and clear validation errors.
package config
