// Package config loads and validates application configuration from
// environment variables (NAS_ prefix) and an optional config.yaml file,
// with environment taking precedence. It also owns path resolution:
// every file the application reads or writes lives relative to the
// executable directory, never the working directory.
package config
