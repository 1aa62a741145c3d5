package util

import (
    "testing"

    "editpane/internal/tui/state"
)

func findKind(tags []state.Tag, k state.TagKind) (idx int, ok bool) {
    for i, t := range tags {
        if t.Kind == k {
            return i, true
        }
    }
    return -1, false
}

func TestDirtySavedExclusivity(t *testing.T) {
    tags := ComputeTags("abc", true, false, false)
    if _, ok := findKind(tags, state.DIRTY); !ok {
        t.Fatalf("expected DIRTY tag present")
    }
    if _, ok := findKind(tags, state.SAVED); ok {
        t.Fatalf("did not expect SAVED tag when dirty")
    }

    tags = ComputeTags("abc", false, false, false)
    if _, ok := findKind(tags, state.SAVED); !ok {
        t.Fatalf("expected SAVED tag present")
    }
    if _, ok := findKind(tags, state.DIRTY); ok {
        t.Fatalf("did not expect DIRTY tag when clean")
    }
}

func TestCounters(t *testing.T) {
    content := "héllo\nworld"
    tags := ComputeTags(content, false, false, false)

    if idx, ok := findKind(tags, state.LINES); !ok || tags[idx].Value != 2 {
        t.Fatalf("expected LINES=2")
    }
    if idx, ok := findKind(tags, state.CHARS); !ok || tags[idx].Value != len([]rune(content)) {
        t.Fatalf("expected CHARS in runes, not bytes")
    }
}

func TestStableOrder(t *testing.T) {
    tags := ComputeTags("x", true, true, true)
    order := []state.TagKind{state.DIRTY, state.VIM, state.WRAP, state.LINES, state.CHARS}
    pos := map[state.TagKind]int{}
    for i, tg := range tags {
        pos[tg.Kind] = i
    }
    prev := -1
    for _, k := range order {
        if idx, ok := pos[k]; ok {
            if idx < prev {
                t.Fatalf("tag %v appears before previous; order unstable", k)
            }
            prev = idx
        }
    }
}
