package util

import (
    "strings"

    "editpane/internal/tui/state"
)

// ComputeTags calculates the set of status tags for a buffer given its
// current content, the derived dirty flag, and which conveniences are on.
//
// The returned slice preserves a stable order:
//   Dirty|Saved, Vim, Wrap, Lines, Chars
//
// Rules:
// - Exactly one of Dirty/Saved is present; it mirrors the controller's
//   derived flag and nothing else.
// - Vim and Wrap appear only when the corresponding convenience is enabled.
// - Lines and Chars are always included (counters).
func ComputeTags(content string, dirty, vim, wrap bool) []state.Tag {
    tags := make([]state.Tag, 0, 5)

    // 1) Dirty | Saved
    if dirty {
        tags = append(tags, state.Tag{Kind: state.DIRTY})
    } else {
        tags = append(tags, state.Tag{Kind: state.SAVED})
    }

    // 2) Vim
    if vim {
        tags = append(tags, state.Tag{Kind: state.VIM})
    }

    // 3) Wrap
    if wrap {
        tags = append(tags, state.Tag{Kind: state.WRAP})
    }

    // 4) Lines (N)
    lines := 1 + strings.Count(content, "\n")
    tags = append(tags, state.Tag{Kind: state.LINES, Value: lines})

    // 5) Chars (M)
    tags = append(tags, state.Tag{Kind: state.CHARS, Value: runeLen(content)})

    return tags
}

// runeLen returns the length of s in runes (Unicode code points).
func runeLen(s string) int {
    return len([]rune(s))
}
