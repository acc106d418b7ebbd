// Package key parses vim-style key notation into structured key values.
//
// This package defines the fundamental types for representing a single key:
//
//   - Code: Identifies a base key (a printable ASCII character or a
//     special key such as Enter or Esc)
//   - Modifier: Represents modifier keys (Shift, Control, Alt)
//   - Key: A base key together with its modifier set
//
// # Notation
//
// Keys are written the way .vimrc keymap lines write them:
//
//   - Bare characters: "a", "A", "1", "@"
//   - Special keys: "<enter>", "<cr>", "<tab>", "<esc>", "<space>",
//     "<leader>", "<bs>", "<del>", "<lt>"
//   - With modifiers: "<c-s>", "<a-x>", "<c-a-del>"
//
// Tag contents match case-insensitively, so "<S-A>" and "<s-a>" are the
// same key. Every spelling of a key parses to the same canonical value:
// "A" and "<s-a>" compare equal, as do "<enter>" and "<cr>". Parsed keys
// are immutable and safe to share between goroutines.
package key
