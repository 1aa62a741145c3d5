package state

// EditorMode represents the editor's current input mode.
type EditorMode int

const (
    CMD EditorMode = iota
    INSERT
)

// DiffMode controls how the diff host renders the two buffers.
type DiffMode int

const (
    Unified DiffMode = iota
    SideBySide
)

// UIState holds cross-widget UI state used by status bar, diff, and editor.
type UIState struct {
    // Mode & View
    Mode EditorMode
    Wrap bool
    View DiffMode

    // Layout & scrolling
    Width        int
    Height       int
    MinCol       int
    ScrollHLeft  int
    ScrollHRight int
    ScrollV      int
    SyncScroll   bool

    // Current resource & save progress
    FileName string
    Saving   bool

    // Notices and ephemeral messages
    Notice string
}
