package save

import (
    "fmt"
    "os"
)

// ToFile returns a handler that writes snapshots to the resource path in
// the invocation context.
func ToFile() Handler {
    return func(contents string, ctx Context) error {
        if ctx.IdentityKey == "" {
            return fmt.Errorf("save: no file path for buffer")
        }
        if err := os.WriteFile(ctx.IdentityKey, []byte(contents), 0644); err != nil {
            return fmt.Errorf("save %s: %w", ctx.IdentityKey, err)
        }
        return nil
    }
}
