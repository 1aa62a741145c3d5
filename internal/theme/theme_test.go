package theme

import "testing"

func TestVariantForBackground(t *testing.T) {
    cases := []struct {
        hex  string
        want Variant
    }{
        {"#000000", Dark},
        {"#FFFFFF", Light},
        {"#1E1E2E", Dark},
        {"#FAFAFA", Light},
        {"808080", Light},  // 0.502 luminance, just over the midpoint
        {"#7F7F7F", Dark},  // just under
        {"", Dark},         // absent
        {"#FFF", Dark},     // short form not recognized
        {"#GGGGGG", Dark},  // malformed
        {"not-a-color", Dark},
    }
    for _, c := range cases {
        if got := VariantForBackground(c.hex); got != c.want {
            t.Fatalf("VariantForBackground(%q) = %v, want %v", c.hex, got, c.want)
        }
    }
}

func TestGreenDominatesLuminance(t *testing.T) {
    // Pure green carries more perceptual weight than pure red or blue.
    if VariantForBackground("#00FF00") != Light {
        t.Fatalf("pure green should read as light")
    }
    if VariantForBackground("#FF0000") != Dark {
        t.Fatalf("pure red should read as dark")
    }
    if VariantForBackground("#0000FF") != Dark {
        t.Fatalf("pure blue should read as dark")
    }
}

func TestPaletteFor(t *testing.T) {
    if PaletteFor(Dark) != DarkPalette() {
        t.Fatalf("expected dark palette")
    }
    if PaletteFor(Light) != LightPalette() {
        t.Fatalf("expected light palette")
    }
}
