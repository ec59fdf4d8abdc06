package config

import "github.com/spf13/viper"

// DefaultAllowedOrigin is the local development frontend.
const DefaultAllowedOrigin = "http://localhost:5173"

// SetDefaults sets all default configuration values on v.
func SetDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.addr", ":8000")
	v.SetDefault("server.read_header_timeout", "10s")
	v.SetDefault("server.shutdown_timeout", "5s")

	// Engine defaults
	v.SetDefault("engine.path", "./main.exe")
	v.SetDefault("engine.input_file", "data.json")
	v.SetDefault("engine.output_file", "output.json")
	v.SetDefault("engine.timeout", "0s") // no deadline
	v.SetDefault("engine.isolation", IsolationPerRequest)
	v.SetDefault("engine.scratch_dir", "")

	// CORS defaults
	v.SetDefault("cors.allowed_origin", DefaultAllowedOrigin)
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Content-Type"})
	v.SetDefault("cors.allow_credentials", false)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.development", false)
}
