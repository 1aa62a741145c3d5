package tui

import (
    "fmt"
    "io"
    "strings"

    "github.com/charmbracelet/bubbles/viewport"
    tea "github.com/charmbracelet/bubbletea"

    "editpane/internal/config"
    "editpane/internal/save"
    "editpane/internal/theme"
    "editpane/internal/tui/state"
    "editpane/internal/tui/util"
    "editpane/internal/tui/widgets/diffpane"
    "editpane/internal/tui/widgets/editorpane"
    "editpane/internal/tui/widgets/helpoverlay"
    "editpane/internal/tui/widgets/statusbar"
    "editpane/internal/tui/widgets/tagchips"
)

// DiffOptions configures the dual-buffer host. The original buffer is
// read-only reference content; only the modified side tracks dirtiness.
type DiffOptions struct {
    OriginalPath string
    ModifiedPath string
    Cfg          config.Config
    Handler      save.Handler
    LogW         io.Writer
}

// RunDiff opens the diff host: a rendered diff of original vs modified,
// with tab switching into an editor on the modified buffer.
func RunDiff(opts DiffOptions) error {
    m, err := newDiffModel(opts)
    if err != nil {
        return err
    }
    p := tea.NewProgram(&m, tea.WithAltScreen())
    _, err = p.Run()
    return err
}

// ===== Diff host =====

type diffModel struct {
    pane     editorpane.Model // modified side
    original string           // read-only side, loaded once
    dp       diffpane.DiffPane
    vp       viewport.Model
    ui       state.UIState
    bar      statusbar.StatusBar
    help     helpoverlay.HelpOverlay
    pal      theme.Palette
    cfg      config.Config
    logw     io.Writer

    editing   bool // tab toggles between diff view and editing
    showHelp  bool
    quitArmed bool
}

func newDiffModel(opts DiffOptions) (diffModel, error) {
    original, err := readFileOrEmpty(opts.OriginalPath)
    if err != nil {
        return diffModel{}, err
    }
    modified, err := readFileOrEmpty(opts.ModifiedPath)
    if err != nil {
        return diffModel{}, err
    }

    logw := opts.LogW
    if logw == nil {
        logw = io.Discard
    }

    variant := theme.VariantForBackground(opts.Cfg.ThemeBackground)
    pal := theme.PaletteFor(variant)
    st := theme.StylesFor(pal)

    ctl := state.NewValueController(state.ValueSource{
        Initial:     modified,
        HasInitial:  true,
        IdentityKey: opts.ModifiedPath,
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
        FileName: opts.ModifiedPath,
    }
    if !opts.Cfg.VimKeys {
        ui.Mode = state.INSERT
    }
    if opts.Cfg.View == config.ViewSideBySide {
        ui.View = state.SideBySide
    }

    m := diffModel{
        pane:     pane,
        original: original,
        dp:       diffpane.New(st),
        vp:       viewport.New(80, 24),
        ui:       ui,
        bar:      statusbar.NewStatusBar(st),
        help:     helpoverlay.NewHelpOverlay(),
        pal:      pal,
        cfg:      opts.Cfg,
        logw:     logw,
    }
    m.refreshDiff()
    return m, nil
}

// refreshDiff re-renders the diff into the stored viewport. The viewport
// clamps scrolling against the content it holds, so this must run whenever
// the inputs change, not at render time on a throwaway copy.
func (m *diffModel) refreshDiff() {
    m.vp.SetContent(m.dp.View(m.ui, m.original, m.pane.Value()))
}

func (m diffModel) Init() tea.Cmd { return nil }

func (m diffModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
    switch msg := msg.(type) {
    case tea.WindowSizeMsg:
        m.ui = state.Resize(m.ui, msg.Width, msg.Height)
        m.pane.SetSize(msg.Width, msg.Height-3)
        m.vp.Width = msg.Width
        m.vp.Height = msg.Height - 3
        m.refreshDiff()
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
        m.refreshDiff()
        return m, cmd
    }
}

func (m diffModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
    if m.showHelp {
        m.showHelp = false
        return m, nil
    }

    k := msg.String()
    if k != "ctrl+c" {
        m.quitArmed = false
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
    case "tab":
        // Enters editing only; while editing, tab belongs to the pane.
        if !m.editing {
            m.editing = true
            m.ui.Notice = "editing modified buffer — shift+tab for diff view"
            return m, nil
        }
    case "shift+tab":
        if m.editing {
            m.editing = false
            m.ui.Notice = "diff view"
            m.refreshDiff()
            return m, nil
        }
    }

    if m.editing {
        // ctrl+s still reaches the pane from either panel.
        var cmd tea.Cmd
        m.pane, m.ui, cmd = m.pane.Update(msg, m.ui)
        m.refreshDiff()
        return m, cmd
    }

    switch k {
    case "ctrl+v", "v":
        m.ui = state.ToggleView(m.ui)
    case "s":
        m.ui = state.ToggleSyncScroll(m.ui)
    case "h":
        m.ui = state.ScrollLeft(m.ui, false, true)
    case "l":
        m.ui = state.ScrollRight(m.ui, false, true)
    case "H":
        m.ui = state.ScrollLeft(m.ui, true, true)
    case "L":
        m.ui = state.ScrollRight(m.ui, true, true)
    case "left":
        m.ui = state.ScrollLeft(m.ui, false, false)
    case "right":
        m.ui = state.ScrollRight(m.ui, false, false)
    case "ctrl+s":
        var cmd tea.Cmd
        m.pane, m.ui, cmd = m.pane.Update(msg, m.ui)
        return m, cmd
    default:
        var cmd tea.Cmd
        m.vp, cmd = m.vp.Update(msg)
        m.ui.ScrollV = m.vp.YOffset
        return m, cmd
    }
    m.refreshDiff()
    return m, nil
}

func (m diffModel) View() string {
    if m.showHelp {
        return m.help.View(m.ui, m.cfg.VimKeys)
    }
    dirty := m.pane.Controller().Dirty()
    tags := util.ComputeTags(m.pane.Value(), dirty, m.cfg.VimKeys, m.ui.Wrap)

    var b strings.Builder
    b.WriteString(tagchips.View(tags, m.pal, util.NoColor(false)) + "\n")
    if m.editing {
        b.WriteString(m.pane.View() + "\n")
    } else {
        b.WriteString(m.vp.View() + "\n")
    }
    b.WriteString(m.bar.View(m.ui, dirty))
    return b.String()
}
