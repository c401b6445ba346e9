// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional YAML file. It provides
// type-safe access to the log, database and locale settings while keeping
// configuration details separate from the trainer logic.
package config
