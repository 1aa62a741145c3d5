package config

import (
    "encoding/json"
    "fmt"
    "os"
    "strconv"

    "github.com/joho/godotenv"
)

const (
    defaultTabWidth = 4

    // ViewUnified and ViewSideBySide are the accepted diff view names.
    ViewUnified    = "unified"
    ViewSideBySide = "side-by-side"
)

// Config holds the editor pane options. Booleans default to on and are
// only turned off explicitly, so Load unmarshals over Default().
type Config struct {
    ThemeBackground string `json:"theme_background,omitempty"` // design token, e.g. "#1E1E2E"
    SaveShortcut    bool   `json:"save_shortcut"`
    VimKeys         bool   `json:"vim_keys"`
    Wrap            bool   `json:"wrap"`
    View            string `json:"view,omitempty"`
    TabWidth        int    `json:"tab_width,omitempty"`
    RemoteURL       string `json:"remote_url,omitempty"` // save to HTTP endpoint instead of disk
}

// Default returns the built-in configuration.
func Default() Config {
    return Config{
        SaveShortcut: true,
        VimKeys:      true,
        Wrap:         true,
        View:         ViewUnified,
        TabWidth:     defaultTabWidth,
    }
}

// Load reads path when it exists and layers .env/environment overrides on
// top. A missing file is not an error; defaults apply.
func Load(path string) (Config, error) {
    c := Default()
    if path != "" {
        data, err := os.ReadFile(path)
        switch {
        case err == nil:
            if err := json.Unmarshal(data, &c); err != nil {
                return c, fmt.Errorf("parse config JSON: %w", err)
            }
        case os.IsNotExist(err):
            // defaults
        default:
            return c, fmt.Errorf("read config: %w", err)
        }
    }
    c = applyEnv(c)
    if c.View != ViewUnified && c.View != ViewSideBySide {
        return c, fmt.Errorf("config: unknown view %q", c.View)
    }
    if c.TabWidth <= 0 {
        c.TabWidth = defaultTabWidth
    }
    return c, nil
}

// applyEnv loads .env (if present) and applies EDITPANE_* overrides.
func applyEnv(c Config) Config {
    godotenv.Load()

    if bg := os.Getenv("EDITPANE_THEME_BG"); bg != "" {
        c.ThemeBackground = bg
    }
    if v := os.Getenv("EDITPANE_VIM"); v != "" {
        c.VimKeys = truthy(v)
    }
    if v := os.Getenv("EDITPANE_WRAP"); v != "" {
        c.Wrap = truthy(v)
    }
    if v := os.Getenv("EDITPANE_SAVE_SHORTCUT"); v != "" {
        c.SaveShortcut = truthy(v)
    }
    if v := os.Getenv("EDITPANE_VIEW"); v != "" {
        c.View = v
    }
    if v := os.Getenv("EDITPANE_REMOTE"); v != "" {
        c.RemoteURL = v
    }
    if v := os.Getenv("EDITPANE_TAB_WIDTH"); v != "" {
        if width, err := strconv.Atoi(v); err == nil && width > 0 {
            c.TabWidth = width
        }
    }
    return c
}

func truthy(s string) bool {
    return s != "0" && s != "false"
}

// Save writes the configuration to path.
func Save(path string, c Config) error {
    data, err := json.MarshalIndent(c, "", "  ")
    if err != nil {
        return err
    }
    return os.WriteFile(path, data, 0644)
}
