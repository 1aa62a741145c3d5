// Package save defines the external save handler contract for editor
// hosts. A handler receives the buffer snapshot captured at invocation
// time; returning an error signals failure and leaves the buffer dirty.
package save

// Context carries invocation metadata to a handler.
type Context struct {
    IdentityKey string // logical resource handle, usually a file path
}

// Handler persists a buffer snapshot. Handlers may block; hosts invoke
// them off the UI update path and are responsible for idempotency across
// overlapping invocations.
type Handler func(contents string, ctx Context) error
