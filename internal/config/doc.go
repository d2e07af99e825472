// Package config loads lcat's optional TOML configuration.
//
// # Overview
//
// lcat runs without any configuration. A file only tunes presentation and
// how the live log source is started; it never changes what a record is or
// how it is parsed.
//
// # Configuration Discovery
//
//  1. If a path is given with -config, use it
//  2. Otherwise, use ~/.config/lcat/config.toml
//  3. If the file doesn't exist, use Default()
//  4. Fields that are missing or empty keep their defaults
//
// # TOML Format
//
//	theme = "Classic"          # Classic or Slate
//	color = "always"           # always, auto or never
//	fallback_width = 80        # used when stdout is not a terminal
//	adb_path = "adb"           # tilde expanded
//	logcat_args = ["logcat", "-v", "time"]
//	unmatched = "drop"         # drop or pass non-record lines
//	min_level = "V"            # hide records below this priority
//	log_level = "warn"         # lcat's own diagnostics on stderr
//	tag_palette = ["226", "220", "213"]
//
//	[columns]
//	timestamp = 12
//	pid = 7
//	tag = 25
//	level = 3
//
// logcat_args must keep the `-v time` format; other formats do not parse.
//
// # Error Handling
//
// Load returns errors for path expansion failures, unreadable files, TOML
// syntax errors ("parse config") and out-of-range values ("invalid config").
// A missing file is not an error.
package config
