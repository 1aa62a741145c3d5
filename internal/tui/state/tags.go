package state

// TagKind enumerates the types of status tags shown for a buffer.
type TagKind int

const (
    // Stable ordering for display: Dirty/Saved, Vim, Wrap, Lines, Chars
    DIRTY TagKind = iota
    SAVED
    VIM
    WRAP
    LINES
    CHARS
)

// Tag represents a single status chip. Value is used for numeric counters
// (line and char counts). Non-numeric tags use Value = 0.
type Tag struct {
    Kind  TagKind
    Value int
}
