package tagchips

import (
    "fmt"
    "os"
    "strings"

    "github.com/charmbracelet/lipgloss"
    "editpane/internal/theme"
    "editpane/internal/tui/state"
)

// View renders buffer status tags in a stable order using colored chips when
// possible and ASCII fallbacks when color is disabled or not desired.
func View(tags []state.Tag, p theme.Palette, noColor bool) string {
    if len(tags) == 0 {
        return ""
    }
    // Honor NO_COLOR env var in addition to explicit param
    if !noColor && os.Getenv("NO_COLOR") != "" {
        noColor = true
    }

    parts := make([]string, 0, len(tags))
    for _, t := range tags {
        parts = append(parts, renderChip(t, p, noColor))
    }
    return strings.Join(parts, " ")
}

func renderChip(t state.Tag, p theme.Palette, noColor bool) string {
    label := chipLabel(t)
    if noColor {
        return fmt.Sprintf("[%s]", label)
    }
    style := chipStyle(t, p)
    return style.Render(" " + label + " ")
}

func chipLabel(t state.Tag) string {
    switch t.Kind {
    case state.DIRTY:
        return "Dirty"
    case state.SAVED:
        return "Saved"
    case state.VIM:
        return "Vim"
    case state.WRAP:
        return "Wrap"
    case state.LINES:
        return fmt.Sprintf("Lines %d", t.Value)
    case state.CHARS:
        return fmt.Sprintf("Chars %d", t.Value)
    default:
        return "Tag"
    }
}

func chipStyle(t state.Tag, p theme.Palette) lipgloss.Style {
    base := lipgloss.NewStyle().Padding(0, 1).Bold(true)
    switch t.Kind {
    case state.DIRTY:
        return base.Background(p.Danger).Foreground(lipgloss.Color("#FFFFFF"))
    case state.SAVED:
        return base.Background(p.Success).Foreground(lipgloss.Color("#FFFFFF"))
    case state.VIM:
        return base.Background(p.Primary).Foreground(lipgloss.Color("#FFFFFF"))
    case state.WRAP:
        return base.Background(p.Warning).Foreground(lipgloss.Color("#111111"))
    case state.LINES:
        return base.Background(p.Muted).Foreground(lipgloss.Color("#FFFFFF"))
    case state.CHARS:
        return base.Background(p.Muted).Foreground(lipgloss.Color("#FFFFFF"))
    default:
        return base
    }
}
