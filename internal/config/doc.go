// Package config loads spotify insights settings from defaults, a TOML file,
// a .env file and the environment, in that order of precedence.
package config
