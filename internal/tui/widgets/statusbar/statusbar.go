package statusbar

import (
    "fmt"
    "strings"

    "editpane/internal/theme"
    "editpane/internal/tui/state"
)

type StatusBar struct {
    st theme.Styles
}

func NewStatusBar(st theme.Styles) StatusBar { return StatusBar{st: st} }

// View composes a concise status line reflecting key UI state.
func (b StatusBar) View(s state.UIState, dirty bool) string {
    mode := "[CMD]"
    if s.Mode == state.INSERT {
        mode = "[INSERT]"
    }
    file := s.FileName
    if file == "" {
        file = "[scratch]"
    }
    if dirty {
        file += " " + b.st.DirtyMark.Render("●")
    }
    wrap := "Wrap: Off"
    if s.Wrap {
        wrap = "Wrap: On"
    }
    view := "Unified"
    if s.View == state.SideBySide {
        view = "Side-by-side"
    }
    pos := fmt.Sprintf("H:%d|%d V:%d", s.ScrollHLeft, s.ScrollHRight, s.ScrollV)

    parts := []string{mode, file, wrap, view, pos}
    if s.Saving {
        parts = append(parts, "saving…")
    }
    if s.Notice != "" {
        parts = append(parts, b.st.Notice.Render(s.Notice))
    }
    return strings.Join(parts, "  ")
}
