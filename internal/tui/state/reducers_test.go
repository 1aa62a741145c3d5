package state

import (
    "errors"
    "testing"
)

func TestToggleWrap(t *testing.T) {
    s := UIState{Wrap: false}
    s = ToggleWrap(s)
    if !s.Wrap { t.Fatalf("expected Wrap to be true") }
}

func TestToggleModeSetsNotice(t *testing.T) {
    s := UIState{Mode: CMD}
    s = ToggleMode(s)
    if s.Mode != INSERT || s.Notice == "" { t.Fatalf("expected INSERT mode and notice") }
    s = ToggleMode(s)
    if s.Mode != CMD || s.Notice == "" { t.Fatalf("expected CMD mode and notice") }
}

func TestToggleView(t *testing.T) {
    s := UIState{View: Unified}
    s = ToggleView(s)
    if s.View != SideBySide { t.Fatalf("expected SideBySide view") }
}

func TestResizeFallbackToUnified(t *testing.T) {
    s := UIState{View: SideBySide, MinCol: 20}
    s = Resize(s, 30, 24) // threshold = 2*20+3 = 43; 30 < 43 => unified
    if s.View != Unified { t.Fatalf("expected Unified after resize fallback") }
    if s.Notice == "" { t.Fatalf("expected fallback notice to be set") }
}

func TestScrolls(t *testing.T) {
    s := UIState{}
    s = ScrollRight(s, true, true)
    if s.ScrollHLeft == 0 { t.Fatalf("expected left scroll to increase") }
    if s.ScrollHRight != 0 { t.Fatalf("right column moved without sync scroll") }
    s = ScrollLeft(s, true, true)
    if s.ScrollHLeft != 0 { t.Fatalf("expected left scroll to return to 0") }
}

func TestSyncScrollMovesBothColumns(t *testing.T) {
    s := UIState{}
    s = ToggleSyncScroll(s)
    if !s.SyncScroll { t.Fatalf("expected SyncScroll to be true") }
    s = ScrollRight(s, false, true)
    if s.ScrollHLeft != 1 || s.ScrollHRight != 1 {
        t.Fatalf("expected both columns to scroll, got %d|%d", s.ScrollHLeft, s.ScrollHRight)
    }
}

func TestSaveLifecycleNotices(t *testing.T) {
    s := BeginSave(UIState{})
    if !s.Saving || s.Notice == "" { t.Fatalf("expected in-flight save state") }
    s = FinishSave(s, nil)
    if s.Saving || s.Notice != "saved" { t.Fatalf("expected saved notice, got %q", s.Notice) }
    s = FinishSave(BeginSave(s), errors.New("disk full"))
    if s.Saving { t.Fatalf("expected save to be finished") }
    if s.Notice != "save failed: disk full" { t.Fatalf("unexpected notice %q", s.Notice) }
}

func TestSwitchFileResetsScroll(t *testing.T) {
    s := UIState{FileName: "a.txt", ScrollHLeft: 4, ScrollHRight: 2, ScrollV: 9}
    s = SwitchFile(s, "b.txt")
    if s.FileName != "b.txt" { t.Fatalf("file name not updated") }
    if s.ScrollHLeft != 0 || s.ScrollHRight != 0 || s.ScrollV != 0 {
        t.Fatalf("scroll state leaked across files")
    }
}
