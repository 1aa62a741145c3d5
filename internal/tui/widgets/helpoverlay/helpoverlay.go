package helpoverlay

import (
    "fmt"
    "strings"

    "editpane/internal/tui/state"
)

type HelpOverlay struct{}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{} }

// View returns grouped keys help with the current mode indicated.
func (HelpOverlay) View(s state.UIState, vimKeys bool) string {
    mode := "CMD"
    if s.Mode == state.INSERT {
        mode = "INSERT"
    }
    sections := []struct {
        title string
        keys  []string
    }{
        {"Editing", []string{"ctrl+s: save", "y: yank buffer (CMD)", "ctrl+w: wrap on/off"}},
        {"Files", []string{"ctrl+n: next file", "ctrl+p: previous file"}},
        {"View", []string{"ctrl+v: unified/side-by-side", "tab: edit modified (diff host)", "shift+tab: back to diff view", "h/l or ←/→: scroll H"}},
    }
    if vimKeys {
        sections = append(sections, struct {
            title string
            keys  []string
        }{"Modes", []string{"i: INSERT mode", "esc: CMD mode", "h/j/k/l: motion (CMD)"}})
    }
    var b strings.Builder
    fmt.Fprintf(&b, "Help (Mode: %s)\n", mode)
    for _, sec := range sections {
        fmt.Fprintf(&b, "\n%s:\n", sec.title)
        for _, k := range sec.keys {
            fmt.Fprintf(&b, "  %s\n", k)
        }
    }
    b.WriteString("\nany key: close help   ctrl+c: quit\n")
    return b.String()
}
