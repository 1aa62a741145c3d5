package theme

import (
    "strings"

    "github.com/charmbracelet/lipgloss"
    colorful "github.com/lucasb-eyer/go-colorful"
)

// Variant is the binary editor appearance derived from a design system's
// background token.
type Variant int

const (
    Dark Variant = iota
    Light
)

func (v Variant) String() string {
    if v == Light {
        return "light"
    }
    return "dark"
}

// VariantForBackground maps a background color hex string to an editor
// variant by perceptual luminance (0.299R + 0.587G + 0.114B). Backgrounds
// darker than the midpoint select Dark. Absent or malformed input defaults
// to Dark; this function never fails.
func VariantForBackground(hex string) Variant {
    s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
    if len(s) != 6 {
        return Dark
    }
    c, err := colorful.Hex("#" + s)
    if err != nil {
        return Dark
    }
    l := 0.299*c.R + 0.587*c.G + 0.114*c.B
    if l < 0.5 {
        return Dark
    }
    return Light
}

// Palette defines the design-token colors used across widgets.
type Palette struct {
    Primary    lipgloss.Color
    Success    lipgloss.Color
    Danger     lipgloss.Color
    Warning    lipgloss.Color
    Muted      lipgloss.Color
    Background lipgloss.Color
    Foreground lipgloss.Color
    DiffAdd    lipgloss.Color
    DiffDel    lipgloss.Color
}

// DarkPalette returns the palette for dark backgrounds.
func DarkPalette() Palette {
    return Palette{
        Primary:    lipgloss.Color("#3D6DFF"),
        Success:    lipgloss.Color("#2AA876"),
        Danger:     lipgloss.Color("#D9534F"),
        Warning:    lipgloss.Color("#F0AD4E"),
        Muted:      lipgloss.Color("#6C757D"),
        Background: lipgloss.Color("#1E1E2E"),
        Foreground: lipgloss.Color("#E6E6E6"),
        DiffAdd:    lipgloss.Color("114"),
        DiffDel:    lipgloss.Color("203"),
    }
}

// LightPalette returns the palette for light backgrounds.
func LightPalette() Palette {
    return Palette{
        Primary:    lipgloss.Color("#2450C4"),
        Success:    lipgloss.Color("#1E7A57"),
        Danger:     lipgloss.Color("#B52B27"),
        Warning:    lipgloss.Color("#B27A1F"),
        Muted:      lipgloss.Color("#6C757D"),
        Background: lipgloss.Color("#FAFAFA"),
        Foreground: lipgloss.Color("#1A1A1A"),
        DiffAdd:    lipgloss.Color("28"),
        DiffDel:    lipgloss.Color("160"),
    }
}

// PaletteFor picks the palette matching a variant.
func PaletteFor(v Variant) Palette {
    if v == Light {
        return LightPalette()
    }
    return DarkPalette()
}

// Styles carries the lipgloss styles widgets render with, built once from
// a palette rather than scattered package vars.
type Styles struct {
    Title       lipgloss.Style
    Sel         lipgloss.Style
    Faint       lipgloss.Style
    Notice      lipgloss.Style
    StatusBar   lipgloss.Style
    DirtyMark   lipgloss.Style
    DiffDelLine lipgloss.Style
    DiffAddLine lipgloss.Style
    DiffDelChar lipgloss.Style
    DiffAddChar lipgloss.Style
}

// StylesFor builds the widget styles for a palette.
func StylesFor(p Palette) Styles {
    return Styles{
        Title:       lipgloss.NewStyle().Bold(true),
        Sel:         lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
        Faint:       lipgloss.NewStyle().Faint(true),
        Notice:      lipgloss.NewStyle().Foreground(p.Warning),
        StatusBar:   lipgloss.NewStyle().Foreground(p.Foreground).Background(p.Muted),
        DirtyMark:   lipgloss.NewStyle().Foreground(p.Danger).Bold(true),
        DiffDelLine: lipgloss.NewStyle().Foreground(p.DiffDel),
        DiffAddLine: lipgloss.NewStyle().Foreground(p.DiffAdd),
        DiffDelChar: lipgloss.NewStyle().Foreground(p.DiffDel).Underline(true),
        DiffAddChar: lipgloss.NewStyle().Foreground(p.DiffAdd).Underline(true),
    }
}
