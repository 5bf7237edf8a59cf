// Package config loads, validates, and normalizes application configuration.
//
// Configuration is a single TOML file. Load starts from built-in defaults,
// overlays the file when present, expands paths, then validates. Callers get
// a fully normalized Config or an error; partially applied configuration is
// never returned.
package config
