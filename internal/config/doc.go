// Package config loads arbor's configuration.
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment (ARBOR_*)   │
//	├─────────────────────────────┤
//	│  2. Config File             │  ← arbor.toml or arbor.yaml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// Config files are looked up in the working directory and then in the
// user configuration directory (e.g. ~/.config/arbor). TOML and YAML are
// both accepted:
//
//	[log]
//	level = "debug"
//	file = "/tmp/arbor.log"
//
//	[theme]
//	selected = "#3465a4"
//
//	[keymap.navigate]
//	"j" = "go-down"
//	"k" = "go-up"
//
// Environment variables map by lowercasing and replacing underscores with
// dots: ARBOR_LOG_LEVEL sets log.level.
//
// Key specs containing "." cannot be used as keymap keys in files or the
// environment, because "." separates config key segments.
package config
