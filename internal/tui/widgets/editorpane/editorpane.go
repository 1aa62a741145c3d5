package editorpane

import (
    "strings"

    "github.com/atotto/clipboard"
    "github.com/charmbracelet/bubbles/key"
    "github.com/charmbracelet/bubbles/textarea"
    tea "github.com/charmbracelet/bubbletea"

    "editpane/internal/save"
    "editpane/internal/theme"
    "editpane/internal/tui/state"
)

// SaveDoneMsg reports the completion of an asynchronous save invocation.
// Snapshot and Seq are the values captured when the save was triggered.
type SaveDoneMsg struct {
    Snapshot string
    Seq      uint64
    Err      error
}

// KeyMap defines the pane's keybindings.
type KeyMap struct {
    Save       key.Binding
    Insert     key.Binding
    ExitInsert key.Binding
    Yank       key.Binding
}

// DefaultKeyMap returns the default pane keybindings.
func DefaultKeyMap() KeyMap {
    return KeyMap{
        Save: key.NewBinding(
            key.WithKeys("ctrl+s"),
            key.WithHelp("ctrl+s", "save"),
        ),
        Insert: key.NewBinding(
            key.WithKeys("i"),
            key.WithHelp("i", "insert mode"),
        ),
        ExitInsert: key.NewBinding(
            key.WithKeys("esc"),
            key.WithHelp("esc", "command mode"),
        ),
        Yank: key.NewBinding(
            key.WithKeys("y"),
            key.WithHelp("y", "yank buffer to clipboard"),
        ),
    }
}

// Options configures a pane. Handler may be nil for read-only surfaces.
type Options struct {
    VimKeys      bool
    SaveShortcut bool
    TabWidth     int // soft tabs; 0 keeps the widget's hard tab
    Handler      save.Handler
    Styles       theme.Styles
    Placeholder  string
}

// Model wraps a bubbles textarea and binds it to a ValueController. The
// textarea owns text editing; the controller owns value reconciliation and
// dirty tracking; this pane only routes keys between them.
type Model struct {
    ta   textarea.Model
    ctl  *state.ValueController
    opts Options
    keys KeyMap
}

func New(ctl *state.ValueController, opts Options) Model {
    ta := textarea.New()
    ta.Placeholder = opts.Placeholder
    ta.ShowLineNumbers = true
    ta.FocusedStyle.LineNumber = opts.Styles.Faint
    ta.FocusedStyle.Placeholder = opts.Styles.Faint
    ta.BlurredStyle.LineNumber = opts.Styles.Faint
    ta.SetValue(ctl.Value())
    ta.Focus()
    return Model{ta: ta, ctl: ctl, opts: opts, keys: DefaultKeyMap()}
}

func (m Model) Controller() *state.ValueController { return m.ctl }

func (m Model) Value() string { return m.ctl.Value() }

func (m *Model) SetSize(width, height int) {
    m.ta.SetWidth(width)
    m.ta.SetHeight(height)
}

// SwitchResource rebinds the pane to a different logical resource. The
// controller resets its baseline so no dirty state leaks across resources.
func (m *Model) SwitchResource(identityKey, content string) {
    m.ctl.OnIdentityChange(identityKey, content, true)
    m.ta.SetValue(m.ctl.Value())
}

// Update routes a message through the pane. Key handling depends on the
// UI mode: in CMD only motions and commands pass through; in INSERT (or
// with modal keys disabled) everything reaches the textarea.
func (m Model) Update(msg tea.Msg, s state.UIState) (Model, state.UIState, tea.Cmd) {
    switch msg := msg.(type) {
    case SaveDoneMsg:
        if msg.Err == nil {
            m.ctl.MarkSaved(msg.Snapshot, msg.Seq)
        }
        return m, state.FinishSave(s, msg.Err), nil

    case tea.KeyMsg:
        // Save works from any mode, gated by configuration.
        if key.Matches(msg, m.keys.Save) {
            if !m.opts.SaveShortcut || m.opts.Handler == nil {
                return m, s, nil
            }
            snapshot, seq := m.ctl.BeginSave()
            return m, state.BeginSave(s), m.saveCmd(snapshot, seq)
        }

        if m.opts.VimKeys && s.Mode == state.CMD {
            return m.updateCmdMode(msg, s)
        }
        if m.opts.VimKeys && key.Matches(msg, m.keys.ExitInsert) {
            return m, state.ToggleMode(s), nil
        }
        if msg.Type == tea.KeyTab && m.opts.TabWidth > 0 {
            m.ta.InsertString(strings.Repeat(" ", m.opts.TabWidth))
            m.ctl.OnExternalChange(m.ta.Value())
            return m, s, nil
        }
        return m.forward(msg, s)

    default:
        return m.forward(msg, s)
    }
}

func (m Model) updateCmdMode(msg tea.KeyMsg, s state.UIState) (Model, state.UIState, tea.Cmd) {
    switch {
    case key.Matches(msg, m.keys.Insert):
        return m, state.ToggleMode(s), nil
    case key.Matches(msg, m.keys.Yank):
        if err := clipboard.WriteAll(m.ctl.Value()); err != nil {
            s.Notice = "clipboard unavailable"
        } else {
            s.Notice = "yanked"
        }
        return m, s, nil
    }
    if motion, ok := motionKey(msg); ok {
        return m.forward(motion, s)
    }
    // Everything else is swallowed: CMD mode must never edit the buffer.
    return m, s, nil
}

// forward hands the message to the textarea and reports the resulting
// content back to the controller.
func (m Model) forward(msg tea.Msg, s state.UIState) (Model, state.UIState, tea.Cmd) {
    var cmd tea.Cmd
    m.ta, cmd = m.ta.Update(msg)
    m.ctl.OnExternalChange(m.ta.Value())
    return m, s, cmd
}

func (m Model) saveCmd(snapshot string, seq uint64) tea.Cmd {
    handler := m.opts.Handler
    ctx := save.Context{IdentityKey: m.ctl.IdentityKey()}
    return func() tea.Msg {
        return SaveDoneMsg{Snapshot: snapshot, Seq: seq, Err: handler(snapshot, ctx)}
    }
}

func (m Model) View() string {
    return m.ta.View()
}

// motionKey translates vim CMD-mode motions into the cursor keys the
// textarea understands. Real cursor keys pass through unchanged.
func motionKey(msg tea.KeyMsg) (tea.KeyMsg, bool) {
    switch msg.String() {
    case "h":
        return tea.KeyMsg{Type: tea.KeyLeft}, true
    case "j":
        return tea.KeyMsg{Type: tea.KeyDown}, true
    case "k":
        return tea.KeyMsg{Type: tea.KeyUp}, true
    case "l":
        return tea.KeyMsg{Type: tea.KeyRight}, true
    }
    switch msg.Type {
    case tea.KeyLeft, tea.KeyRight, tea.KeyUp, tea.KeyDown,
        tea.KeyPgUp, tea.KeyPgDown, tea.KeyHome, tea.KeyEnd:
        return msg, true
    }
    return tea.KeyMsg{}, false
}
