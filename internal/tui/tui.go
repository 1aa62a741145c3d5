package tui

import (
    "fmt"
    "io"
    "os"
    "strings"

    tea "github.com/charmbracelet/bubbletea"

    "editpane/internal/config"
    "editpane/internal/save"
    "editpane/internal/theme"
    "editpane/internal/tui/state"
    "editpane/internal/tui/util"
    "editpane/internal/tui/widgets/editorpane"
    "editpane/internal/tui/widgets/helpoverlay"
    "editpane/internal/tui/widgets/statusbar"
    "editpane/internal/tui/widgets/tagchips"
)

// Options configures the single-buffer editor host.
type Options struct {
    Files   []string // file paths; the first one is opened
    Cfg     config.Config
    Handler save.Handler
    LogW    io.Writer // tagged log lines; nil discards
}

// RunEditor opens the editor host on the first file and lets ctrl+n/ctrl+p
// cycle through the rest.
func RunEditor(opts Options) error {
    m, err := newEditorModel(opts)
    if err != nil {
        return err
    }
    p := tea.NewProgram(&m, tea.WithAltScreen())
    _, err = p.Run()
    return err
}

// ===== Editor host =====

type fileEntry struct {
    path    string
    content string // content at load time; the controller's baseline
}

type editorModel struct {
    pane  editorpane.Model
    ui    state.UIState
    bar   statusbar.StatusBar
    help  helpoverlay.HelpOverlay
    pal   theme.Palette
    cfg   config.Config
    files []fileEntry
    idx   int
    logw  io.Writer

    showHelp    bool
    quitArmed   bool // ctrl+c pressed once with a dirty buffer
    switchArmed bool // file switch requested with a dirty buffer
}

func newEditorModel(opts Options) (editorModel, error) {
    if len(opts.Files) == 0 {
        return editorModel{}, fmt.Errorf("no files to edit")
    }
    files := make([]fileEntry, 0, len(opts.Files))
    for _, p := range opts.Files {
        content, err := readFileOrEmpty(p)
        if err != nil {
            return editorModel{}, err
        }
        files = append(files, fileEntry{path: p, content: content})
    }

    logw := opts.LogW
    if logw == nil {
        logw = io.Discard
    }

    variant := theme.VariantForBackground(opts.Cfg.ThemeBackground)
    pal := theme.PaletteFor(variant)
    st := theme.StylesFor(pal)
    fmt.Fprintf(logw, "[theme] background %q -> %s\n", opts.Cfg.ThemeBackground, variant)

    ctl := state.NewValueController(state.ValueSource{
        Initial:     files[0].content,
        HasInitial:  true,
        IdentityKey: files[0].path,
    })
    ctl.SubscribeDirty(func(d bool) {
        fmt.Fprintf(logw, "[dirty] %s: %v\n", ctl.IdentityKey(), d)
    })

    pane := editorpane.New(ctl, editorpane.Options{
        VimKeys:      opts.Cfg.VimKeys,
        SaveShortcut: opts.Cfg.SaveShortcut,
        TabWidth:     opts.Cfg.TabWidth,
        Handler:      opts.Handler,
        Styles:       st,
    })

    ui := state.UIState{
        Wrap:     opts.Cfg.Wrap,
        MinCol:   20,
        FileName: files[0].path,
    }
    if !opts.Cfg.VimKeys {
        ui.Mode = state.INSERT
    }
    if opts.Cfg.View == config.ViewSideBySide {
        ui.View = state.SideBySide
    }

    return editorModel{
        pane:  pane,
        ui:    ui,
        bar:   statusbar.NewStatusBar(st),
        help:  helpoverlay.NewHelpOverlay(),
        pal:   pal,
        cfg:   opts.Cfg,
        files: files,
        logw:  logw,
    }, nil
}

func (m editorModel) Init() tea.Cmd { return nil }

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
    switch msg := msg.(type) {
    case tea.WindowSizeMsg:
        m.ui = state.Resize(m.ui, msg.Width, msg.Height)
        m.pane.SetSize(msg.Width, msg.Height-3)
        return m, nil

    case editorpane.SaveDoneMsg:
        if msg.Err != nil {
            fmt.Fprintf(m.logw, "[save] %s: %v\n", m.ui.FileName, msg.Err)
        }
        var cmd tea.Cmd
        m.pane, m.ui, cmd = m.pane.Update(msg, m.ui)
        return m, cmd

    case tea.KeyMsg:
        return m.updateKey(msg)

    default:
        var cmd tea.Cmd
        m.pane, m.ui, cmd = m.pane.Update(msg, m.ui)
        return m, cmd
    }
}

func (m editorModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
    if m.showHelp {
        m.showHelp = false
        return m, nil
    }

    k := msg.String()
    // An armed confirmation only survives an immediate repeat of its own
    // key; any other keystroke disarms it.
    if k != "ctrl+c" {
        m.quitArmed = false
    }
    if k != "ctrl+n" && k != "ctrl+p" {
        m.switchArmed = false
    }
    switch k {
    case "ctrl+c":
        if m.pane.Controller().Dirty() && !m.quitArmed {
            m.quitArmed = true
            m.ui.Notice = "unsaved changes — ctrl+c again to quit"
            return m, nil
        }
        return m, tea.Quit
    case "ctrl+g":
        m.showHelp = true
        return m, nil
    case "ctrl+w":
        m.ui = state.ToggleWrap(m.ui)
        return m, nil
    case "ctrl+n":
        return m.switchFile(+1)
    case "ctrl+p":
        return m.switchFile(-1)
    }

    var cmd tea.Cmd
    m.pane, m.ui, cmd = m.pane.Update(msg, m.ui)
    return m, cmd
}

// switchFile cycles to another open file. Unsaved edits need a second
// press, and are then discarded in favor of the on-disk content, so the
// new file starts from a clean baseline.
func (m editorModel) switchFile(dir int) (tea.Model, tea.Cmd) {
    if len(m.files) < 2 {
        m.ui.Notice = "no other files"
        return m, nil
    }
    if m.pane.Controller().Dirty() && !m.switchArmed {
        m.switchArmed = true
        m.ui.Notice = "unsaved changes — press again to discard and switch"
        return m, nil
    }
    m.switchArmed = false

    m.idx = (m.idx + dir + len(m.files)) % len(m.files)
    entry := &m.files[m.idx]
    content, err := readFileOrEmpty(entry.path)
    if err == nil {
        entry.content = content
    } else {
        fmt.Fprintf(m.logw, "[open] %s: %v\n", entry.path, err)
        content = entry.content
    }
    m.pane.SwitchResource(entry.path, content)
    m.ui = state.SwitchFile(m.ui, entry.path)
    return m, nil
}

func (m editorModel) View() string {
    if m.showHelp {
        return m.help.View(m.ui, m.cfg.VimKeys)
    }
    dirty := m.pane.Controller().Dirty()
    tags := util.ComputeTags(m.pane.Value(), dirty, m.cfg.VimKeys, m.ui.Wrap)

    var b strings.Builder
    b.WriteString(tagchips.View(tags, m.pal, util.NoColor(false)) + "\n")
    b.WriteString(m.pane.View() + "\n")
    b.WriteString(m.bar.View(m.ui, dirty))
    return b.String()
}

func readFileOrEmpty(path string) (string, error) {
    data, err := os.ReadFile(path)
    if err != nil {
        if os.IsNotExist(err) {
            return "", nil
        }
        return "", fmt.Errorf("open %s: %w", path, err)
    }
    return string(data), nil
}
