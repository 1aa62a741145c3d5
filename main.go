// Copyright
// SPDX-License-Identifier: MIT
// editpane: design-token themed modal editor pane for the terminal
package main

import (
    "flag"
    "fmt"
    "io"
    "os"
    "time"

    cfgpkg "editpane/internal/config"
    "editpane/internal/save"
    "editpane/internal/tui"
)

const Version = "0.3.0"

const (
    defaultConfig = "editpane.json"
    logFileName   = "editpane.log"
)

/* ---------- CLI ---------- */

func main() {
    if len(os.Args) < 2 {
        usage()
        return
    }
    switch os.Args[1] {
    case "help", "-h", "--help":
        if len(os.Args) > 2 {
            helpTopic(os.Args[2])
        } else {
            usage()
        }
    case "version", "-v", "--version":
        fmt.Println("editpane", Version)
        return
    case "edit":
        cmdEdit()
    case "diff":
        cmdDiff()
    default:
        fmt.Fprintf(os.Stderr, "editpane: unknown command %q\n\n", os.Args[1])
        usage()
        os.Exit(2)
    }
}

func usage() {
    fmt.Print(`editpane — themed modal editor pane for the terminal

Usage:
  editpane edit [flags] <file> [file...]   edit files (ctrl+n/ctrl+p to cycle)
  editpane diff [flags] <original> <modified>
                                           review and edit against a baseline
  editpane version                         print version
  editpane help [edit|diff]                command help

Common flags:
  -config PATH   config file (default editpane.json)
  -theme-bg HEX  design-token background, picks light/dark (e.g. "#1E1E2E")
  -remote URL    save via HTTP PUT to URL/<file> instead of disk
  -plain         disable modal (vim) keys
  -v             write a debug log to editpane.log
`)
}

func helpTopic(topic string) {
    switch topic {
    case "edit":
        fmt.Print(`editpane edit [flags] <file> [file...]

Opens the first file in the editor pane. In CMD mode: i enters INSERT,
esc leaves it, h/j/k/l move, y yanks the buffer to the clipboard.
ctrl+s saves (when enabled), ctrl+n/ctrl+p cycle files, ctrl+g shows help.
`)
    case "diff":
        fmt.Print(`editpane diff [flags] <original> <modified>

Shows a unified or side-by-side diff of the two files. The original is
read-only reference content; tab switches into editing the modified
buffer, ctrl+s saves it. Only the modified side tracks unsaved changes.
`)
    default:
        usage()
    }
}

/* ---------- commands ---------- */

func cmdEdit() {
    fs := flag.NewFlagSet("edit", flag.ExitOnError)
    cfgPath := fs.String("config", defaultConfig, "config file")
    themeBG := fs.String("theme-bg", "", "design-token background hex")
    remote := fs.String("remote", "", "save via HTTP PUT to this base URL")
    plain := fs.Bool("plain", false, "disable modal (vim) keys")
    verbose := fs.Bool("v", false, "write a debug log")
    _ = fs.Parse(os.Args[2:])

    files := fs.Args()
    if len(files) == 0 {
        fatal(fmt.Errorf("edit: no files given"))
    }

    cfg := loadConfig(*cfgPath, *themeBG, *remote, *plain)
    logw, closeLog := openLog(*verbose)
    defer closeLog()

    err := tui.RunEditor(tui.Options{
        Files:   files,
        Cfg:     cfg,
        Handler: handlerFor(cfg),
        LogW:    logw,
    })
    if err != nil {
        fatal(err)
    }
}

func cmdDiff() {
    fs := flag.NewFlagSet("diff", flag.ExitOnError)
    cfgPath := fs.String("config", defaultConfig, "config file")
    themeBG := fs.String("theme-bg", "", "design-token background hex")
    remote := fs.String("remote", "", "save via HTTP PUT to this base URL")
    plain := fs.Bool("plain", false, "disable modal (vim) keys")
    verbose := fs.Bool("v", false, "write a debug log")
    _ = fs.Parse(os.Args[2:])

    if fs.NArg() != 2 {
        fatal(fmt.Errorf("diff: need <original> <modified>"))
    }

    cfg := loadConfig(*cfgPath, *themeBG, *remote, *plain)
    logw, closeLog := openLog(*verbose)
    defer closeLog()

    err := tui.RunDiff(tui.DiffOptions{
        OriginalPath: fs.Arg(0),
        ModifiedPath: fs.Arg(1),
        Cfg:          cfg,
        Handler:      handlerFor(cfg),
        LogW:         logw,
    })
    if err != nil {
        fatal(err)
    }
}

/* ---------- helpers ---------- */

func loadConfig(path, themeBG, remote string, plain bool) cfgpkg.Config {
    cfg, err := cfgpkg.Load(path)
    if err != nil {
        fatal(err)
    }
    if themeBG != "" {
        cfg.ThemeBackground = themeBG
    }
    if remote != "" {
        cfg.RemoteURL = remote
    }
    if plain {
        cfg.VimKeys = false
    }
    return cfg
}

func handlerFor(cfg cfgpkg.Config) save.Handler {
    if cfg.RemoteURL != "" {
        return save.ToURL(cfg.RemoteURL)
    }
    return save.ToFile()
}

func openLog(verbose bool) (io.Writer, func()) {
    if !verbose {
        return io.Discard, func() {}
    }
    f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
    if err != nil {
        fmt.Fprintf(os.Stderr, "editpane: cannot open log: %v\n", err)
        return io.Discard, func() {}
    }
    _, _ = fmt.Fprintf(f, "=== editpane %s started at %s ===\n", Version, time.Now().Format(time.RFC3339))
    return f, func() { _ = f.Close() }
}

func fatal(err error) {
    fmt.Fprintln(os.Stderr, "editpane:", err)
    os.Exit(1)
}
