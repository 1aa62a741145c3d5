package config

import (
    "os"
    "path/filepath"
    "testing"
)

func TestDefaults(t *testing.T) {
    c, err := Load("")
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if !c.SaveShortcut || !c.VimKeys || !c.Wrap {
        t.Fatalf("expected conveniences on by default: %+v", c)
    }
    if c.View != ViewUnified || c.TabWidth != 4 {
        t.Fatalf("unexpected defaults: %+v", c)
    }
}

func TestMissingFileUsesDefaults(t *testing.T) {
    c, err := Load(filepath.Join(t.TempDir(), "nope.json"))
    if err != nil {
        t.Fatalf("missing file should not be an error: %v", err)
    }
    if !c.SaveShortcut {
        t.Fatalf("defaults not applied")
    }
}

func TestFileOverridesDefaults(t *testing.T) {
    path := filepath.Join(t.TempDir(), "editpane.json")
    body := `{"theme_background": "#FAFAFA", "vim_keys": false, "view": "side-by-side"}`
    if err := os.WriteFile(path, []byte(body), 0644); err != nil {
        t.Fatalf("write: %v", err)
    }
    c, err := Load(path)
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if c.ThemeBackground != "#FAFAFA" || c.VimKeys || c.View != ViewSideBySide {
        t.Fatalf("file values not applied: %+v", c)
    }
    if !c.SaveShortcut {
        t.Fatalf("absent fields must keep defaults")
    }
}

func TestEnvOverridesFile(t *testing.T) {
    t.Setenv("EDITPANE_THEME_BG", "#000000")
    t.Setenv("EDITPANE_WRAP", "false")
    t.Setenv("EDITPANE_TAB_WIDTH", "8")
    c, err := Load("")
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if c.ThemeBackground != "#000000" || c.Wrap || c.TabWidth != 8 {
        t.Fatalf("env overrides not applied: %+v", c)
    }
}

func TestBadJSONIsAnError(t *testing.T) {
    path := filepath.Join(t.TempDir(), "editpane.json")
    if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
        t.Fatalf("write: %v", err)
    }
    if _, err := Load(path); err == nil {
        t.Fatalf("expected parse error")
    }
}

func TestUnknownViewRejected(t *testing.T) {
    t.Setenv("EDITPANE_VIEW", "sideways")
    if _, err := Load(""); err == nil {
        t.Fatalf("expected unknown-view error")
    }
}
