package tui

import (
    "fmt"
    "os"
    "path/filepath"
    "strings"
    "testing"

    tea "github.com/charmbracelet/bubbletea"

    "editpane/internal/config"
)

func writeTestFile(t *testing.T, dir, name, content string) string {
    t.Helper()
    p := filepath.Join(dir, name)
    if err := os.WriteFile(p, []byte(content), 0644); err != nil {
        t.Fatalf("write %s: %v", name, err)
    }
    return p
}

func newTestDiffModel(t *testing.T, original, modified string) diffModel {
    t.Helper()
    dir := t.TempDir()
    cfg := config.Default()
    cfg.VimKeys = false
    cfg.TabWidth = 4
    m, err := newDiffModel(DiffOptions{
        OriginalPath: writeTestFile(t, dir, "a.txt", original),
        ModifiedPath: writeTestFile(t, dir, "b.txt", modified),
        Cfg:          cfg,
    })
    if err != nil {
        t.Fatalf("newDiffModel: %v", err)
    }
    return m
}

func TestDiffViewScrollsVertically(t *testing.T) {
    var o, mo strings.Builder
    for i := 0; i < 200; i++ {
        fmt.Fprintf(&o, "line %d old\n", i)
        fmt.Fprintf(&mo, "line %d new\n", i)
    }
    var mdl tea.Model = newTestDiffModel(t, o.String(), mo.String())
    mdl, _ = mdl.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
    for i := 0; i < 20; i++ {
        mdl, _ = mdl.Update(tea.KeyMsg{Type: tea.KeyDown})
    }
    got := mdl.(diffModel)
    if got.ui.ScrollV == 0 {
        t.Fatalf("ScrollV still 0 after 20 down presses on a 200-line diff")
    }
    if got.vp.YOffset != got.ui.ScrollV {
        t.Fatalf("viewport offset %d diverged from ScrollV %d", got.vp.YOffset, got.ui.ScrollV)
    }
}

func TestDiffTabEntersEditingAndInsertsSoftTabs(t *testing.T) {
    var mdl tea.Model = newTestDiffModel(t, "alpha\n", "alpha\n")
    mdl, _ = mdl.Update(tea.WindowSizeMsg{Width: 80, Height: 10})

    mdl, _ = mdl.Update(tea.KeyMsg{Type: tea.KeyTab})
    dm := mdl.(diffModel)
    if !dm.editing {
        t.Fatalf("tab from the diff view should enter editing mode")
    }

    mdl, _ = mdl.Update(tea.KeyMsg{Type: tea.KeyTab})
    dm = mdl.(diffModel)
    if !dm.editing {
        t.Fatalf("tab while editing must stay in editing mode")
    }
    if !strings.Contains(dm.pane.Value(), "    ") {
        t.Fatalf("tab while editing did not insert soft tabs, value %q", dm.pane.Value())
    }

    mdl, _ = mdl.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
    dm = mdl.(diffModel)
    if dm.editing {
        t.Fatalf("shift+tab should return to the diff view")
    }
}

func TestQuitWarningDisarmsOnOtherKeys(t *testing.T) {
    dir := t.TempDir()
    cfg := config.Default()
    cfg.VimKeys = false
    m, err := newEditorModel(Options{
        Files: []string{writeTestFile(t, dir, "note.txt", "hello\n")},
        Cfg:   cfg,
    })
    if err != nil {
        t.Fatalf("newEditorModel: %v", err)
    }
    var mdl tea.Model = m
    mdl, _ = mdl.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
    em := mdl.(editorModel)
    if !em.pane.Controller().Dirty() {
        t.Fatalf("typing should dirty the buffer")
    }

    mdl, cmd := mdl.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
    if cmd != nil {
        t.Fatalf("first ctrl+c on a dirty buffer must warn, not quit")
    }
    mdl, _ = mdl.Update(tea.KeyMsg{Type: tea.KeyCtrlW})
    mdl, cmd = mdl.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
    if cmd != nil {
        t.Fatalf("ctrl+c after an unrelated key must warn again, not quit")
    }
    em = mdl.(editorModel)
    if em.ui.Notice == "" {
        t.Fatalf("expected the unsaved-changes warning to be re-issued")
    }
}
