package diffpane

import (
    "fmt"
    "strings"

    dmp "github.com/sergi/go-diff/diffmatchpatch"

    "editpane/internal/theme"
    "editpane/internal/tui/state"
)

// DiffPane renders the read-only original buffer against the editable
// modified buffer. The diff itself comes from diffmatchpatch; this widget
// only lays it out.
type DiffPane struct {
    st theme.Styles
}

func New(st theme.Styles) DiffPane { return DiffPane{st: st} }

// View renders the diff. For SideBySide it aligns two columns with a
// vertical separator and per-column horizontal scroll. For Unified it
// prefixes lines with +/- markers and adds char-level highlights when the
// line counts allow pairing.
func (d DiffPane) View(s state.UIState, original, modified string) string {
    if s.View == state.SideBySide {
        return d.sideBySide(original, modified, s)
    }
    return d.unified(original, modified)
}

func (d DiffPane) unified(original, modified string) string {
    if original == modified {
        return "No changes\n"
    }
    var b strings.Builder
    b.WriteString("ORIGINAL vs MODIFIED (Unified)\n")
    oLines := strings.Split(original, "\n")
    mLines := strings.Split(modified, "\n")
    if len(oLines) == len(mLines) && len(oLines) > 0 {
        // Line counts match: pair lines and highlight intraline changes.
        for i := 0; i < len(oLines); i++ {
            ol := oLines[i]
            ml := mLines[i]
            if ol == ml {
                if strings.TrimSpace(ol) == "" {
                    continue
                }
                b.WriteString("  ")
                b.WriteString(d.st.Faint.Render(ol))
                b.WriteString("\n")
                continue
            }
            df := dmp.New()
            diffs := df.DiffMain(ol, ml, false)
            df.DiffCleanupSemantic(diffs)
            b.WriteString(d.st.DiffDelLine.Render("- "))
            for _, dd := range diffs {
                switch dd.Type {
                case dmp.DiffDelete:
                    b.WriteString(d.st.DiffDelChar.Render(dd.Text))
                case dmp.DiffEqual:
                    b.WriteString(d.st.DiffDelLine.Render(dd.Text))
                }
            }
            b.WriteString("\n")
            b.WriteString(d.st.DiffAddLine.Render("+ "))
            for _, dd := range diffs {
                switch dd.Type {
                case dmp.DiffInsert:
                    b.WriteString(d.st.DiffAddChar.Render(dd.Text))
                case dmp.DiffEqual:
                    b.WriteString(d.st.DiffAddLine.Render(dd.Text))
                }
            }
            b.WriteString("\n")
        }
        return b.String()
    }
    // Fallback: interleave whole lines.
    max := len(oLines)
    if len(mLines) > max {
        max = len(mLines)
    }
    for i := 0; i < max; i++ {
        if i < len(oLines) {
            fmt.Fprintf(&b, "%s%s\n", d.st.DiffDelLine.Render("- "), oLines[i])
        }
        if i < len(mLines) {
            fmt.Fprintf(&b, "%s%s\n", d.st.DiffAddLine.Render("+ "), mLines[i])
        }
    }
    return b.String()
}

func (d DiffPane) sideBySide(original, modified string, s state.UIState) string {
    const sep = " │ "
    var b strings.Builder
    b.WriteString("ORIGINAL │ MODIFIED\n")
    left := strings.Split(original, "\n")
    right := strings.Split(modified, "\n")
    max := len(left)
    if len(right) > max {
        max = len(right)
    }
    // Compute column width from total width if provided
    colWidth := 40
    if s.Width > 0 {
        colWidth = (s.Width - len([]rune(sep))) / 2
        if colWidth < 10 {
            colWidth = 10
        }
    }
    for i := 0; i < max; i++ {
        l := ""
        r := ""
        if i < len(left) {
            l = left[i]
        }
        if i < len(right) {
            r = right[i]
        }
        changed := l != r
        l = clip(l, colWidth, s.ScrollHLeft)
        r = clip(r, colWidth, s.ScrollHRight)
        if changed {
            fmt.Fprintf(&b, "%s%s%s\n",
                d.st.DiffDelLine.Render(pad(l, colWidth)), sep,
                d.st.DiffAddLine.Render(pad(r, colWidth)))
        } else {
            fmt.Fprintf(&b, "%s%s%s\n", pad(l, colWidth), sep, pad(r, colWidth))
        }
    }
    return b.String()
}

func clip(s string, width int, start int) string {
    runes := []rune(s)
    if start < 0 {
        start = 0
    }
    if start >= len(runes) {
        return ""
    }
    end := start + width
    if end > len(runes) {
        end = len(runes)
    }
    return string(runes[start:end])
}

func pad(s string, width int) string {
    if w := len([]rune(s)); w < width {
        return s + strings.Repeat(" ", width-w)
    }
    return s
}
