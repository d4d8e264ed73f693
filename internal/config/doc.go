// Package config loads, normalizes, and validates pagegen configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// PAGEGEN_CONFIG. The Config type centralizes every knob the CLI and the
// generate pipeline need, so assets and pages directories are resolved in one
// pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized absolute paths, canonical log formats, and clear validation
// errors.
package config
