// Package document builds seed trees for a session and formats trees as
// one-line outlines.
//
// Seeds come from three places: the built-in Default document, a YAML
// file (LoadYAML) or a Lua script (see package plugin/lua). The tree is
// never written back.
package document
