package save

import (
    "context"
    "fmt"
    "io"
    "net/http"
    "net/url"
    "strings"
    "time"
)

var DefaultTimeout = 20 * time.Second

// ToURL returns a handler that PUTs snapshots to base joined with the
// resource path, e.g. base "http://host/docs" and key "notes.md" become
// PUT http://host/docs/notes.md.
func ToURL(base string) Handler {
    return func(contents string, ctx Context) error {
        target, err := url.JoinPath(base, ctx.IdentityKey)
        if err != nil {
            return fmt.Errorf("save: bad remote URL: %w", err)
        }
        return putText(context.Background(), target, contents)
    }
}

func putText(ctx context.Context, url, body string) error {
    ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
    defer cancel()

    req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, strings.NewReader(body))
    if err != nil {
        return err
    }
    req.Header.Set("Content-Type", "text/plain; charset=utf-8")
    resp, err := http.DefaultClient.Do(req)
    if err != nil {
        return err
    }
    defer resp.Body.Close()
    if resp.StatusCode < 200 || resp.StatusCode >= 300 {
        b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
        return fmt.Errorf("PUT %s: %s (%d)", url, string(b), resp.StatusCode)
    }
    return nil
}
