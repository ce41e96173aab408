// Package config loads the viewer's startup settings from TOML.
//
// # Configuration Discovery
//
// Load reads the given path, or ~/.config/logbook/config.toml when the path
// is empty. A missing file is not an error; Default values are used.
//
// # TOML Format
//
//	max_message_length = 2000
//	max_records_per_level = 2000
//	inbox_limit = 10000
//	tail_lines = 400
//	sources = ["~/.local/share/app/app.log"]
//	demo = false
//	demo_interval = "750ms"
//
// Every field is optional. Non-positive numbers fall back to their defaults
// and source paths get tilde expansion. A malformed file or duration is an
// error mentioning "parse config".
package config
