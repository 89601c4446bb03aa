// Package config loads application configuration for empreport.
//
// Resolution order: built-in defaults, then an optional YAML file, then
// EMPREPORT_* environment variables. The tool runs fine with no configuration
// at all; config only tunes ambient behavior such as logging.
package config
