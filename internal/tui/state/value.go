package state

// ValueMode says who owns the buffer content for the lifetime of a
// controller: the embedding application (Controlled) or the controller
// itself (Uncontrolled). It is fixed at construction; hosts that need to
// switch modes create a new controller.
type ValueMode int

const (
    Uncontrolled ValueMode = iota
    Controlled
)

// ValueSource describes where a controller's starting content comes from.
// Has* flags distinguish "supplied as empty" from "not supplied".
type ValueSource struct {
    Initial       string
    HasInitial    bool
    Controlled    string
    HasControlled bool
    Default       string
    HasDefault    bool
    IdentityKey   string
}

// ValueController reconciles an externally supplied value source with
// locally buffered edits, tracks a saved baseline, and derives a dirty
// flag. It is a pure state holder: it knows nothing about rendering and
// is driven entirely by the host's event callbacks.
//
// Dirtiness is never stored; it is always re-derived as
// current != saved, so no code path can make the flag drift.
type ValueController struct {
    mode        ValueMode
    current     string
    saved       string
    identityKey string

    // Save sequencing: issued counts invocations, accepted is the highest
    // completion taken so far. A completion older than accepted is dropped
    // so the baseline never regresses on out-of-order completions.
    issuedSeq   uint64
    acceptedSeq uint64

    onDirty   func(bool)
    lastDirty bool
}

// NewValueController resolves the starting content in source order:
// initial, then controlled, then default, then empty. The controller is
// Controlled iff a controlled value was supplied.
func NewValueController(src ValueSource) *ValueController {
    start := ""
    switch {
    case src.HasInitial:
        start = src.Initial
    case src.HasControlled:
        start = src.Controlled
    case src.HasDefault:
        start = src.Default
    }
    mode := Uncontrolled
    if src.HasControlled {
        mode = Controlled
    }
    return &ValueController{
        mode:        mode,
        current:     start,
        saved:       start,
        identityKey: src.IdentityKey,
    }
}

func (c *ValueController) Mode() ValueMode     { return c.mode }
func (c *ValueController) IdentityKey() string { return c.identityKey }

// Value returns the authoritative buffer content.
func (c *ValueController) Value() string { return c.current }

// Dirty reports whether the buffer differs from the saved baseline.
func (c *ValueController) Dirty() bool { return c.current != c.saved }

// SubscribeDirty registers a dirty-state subscriber. Notification is
// edge-triggered: fn fires only when the derived flag actually flips.
func (c *ValueController) SubscribeDirty(fn func(bool)) {
    c.onDirty = fn
}

// OnExternalChange takes a content-change report from the wrapped editor
// widget. In Controlled mode the external owner's value stays
// authoritative, so the report only re-derives dirtiness.
func (c *ValueController) OnExternalChange(v string) {
    if c.mode == Uncontrolled {
        c.current = v
    }
    c.emitDirty()
}

// SetControlledValue takes an inbound update from the external owner.
// No-op in Uncontrolled mode.
func (c *ValueController) SetControlledValue(v string) {
    if c.mode == Controlled {
        c.current = v
    }
    c.emitDirty()
}

// OnIdentityChange switches the controller to a different logical
// resource (a different file) while the host stays mounted. The baseline
// resets to the new resource's initial content when supplied, else to
// whatever is in the buffer, so stale dirty state never leaks across
// resources.
func (c *ValueController) OnIdentityChange(key, initial string, hasInitial bool) {
    if key == c.identityKey {
        return
    }
    c.identityKey = key
    baseline := c.current
    if hasInitial {
        baseline = initial
        if c.mode == Uncontrolled {
            c.current = initial
        }
    }
    c.saved = baseline
    c.emitDirty()
}

// BeginSave captures the snapshot a save invocation must operate on and
// issues its sequence number. The snapshot is taken now so edits made
// while the save is in flight cannot leak into it.
func (c *ValueController) BeginSave() (snapshot string, seq uint64) {
    c.issuedSeq++
    return c.current, c.issuedSeq
}

// MarkSaved records a successfully completed save. Completions that are
// older than one already accepted are ignored. Advancing the baseline to
// the snapshot is all that happens; if the buffer moved on during the
// save, Dirty keeps reporting true from the derivation alone.
func (c *ValueController) MarkSaved(snapshot string, seq uint64) {
    if seq < c.acceptedSeq {
        return
    }
    c.acceptedSeq = seq
    c.saved = snapshot
    c.emitDirty()
}

func (c *ValueController) emitDirty() {
    d := c.Dirty()
    if d == c.lastDirty {
        return
    }
    c.lastDirty = d
    if c.onDirty != nil {
        c.onDirty(d)
    }
}
