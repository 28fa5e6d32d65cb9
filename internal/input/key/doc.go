// Package key provides the logical key symbols and key events consumed by
// the dispatcher.
//
// This package defines:
//
//   - Key: a logical key symbol (Left, Up, Enter, Tab, Space, ...) or KeyRune
//   - Modifier: Ctrl, Alt, Shift, Meta
//   - Event: one key press
//
// # Key Specifications
//
// Keymaps in configuration name keys with specifications:
//
//   - Simple keys: "a", "h", "Enter", "Escape", "Space"
//   - With modifiers: "Ctrl+Q", "Alt+Left"
//   - Vim-style: "<C-q>", "<CR>", "<Esc>", "<BS>"
//
// Event.Binding normalizes an event (a typed space becomes KeySpace,
// uppercase letters drop their implicit Shift) so decoded terminal events
// and parsed specifications compare equal.
package key
