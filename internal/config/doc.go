// Package config defines the application configuration structure and
// loads it from defaults, an optional config file, and NEXA_-prefixed
// environment variables, validating the result before use.
package config
