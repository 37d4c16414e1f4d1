package taxonomy

import "testing"

func TestValidColor(t *testing.T) {
	t.Parallel()

	for _, c := range Colors {
		if !ValidColor(c) {
			t.Fatalf("palette color %q reported invalid", c)
		}
	}
	for _, c := range []string{"magenta", "Blue", ""} {
		if ValidColor(c) {
			t.Fatalf("non-palette color %q reported valid", c)
		}
	}
}

func TestStylesAreSubsetOfPalette(t *testing.T) {
	t.Parallel()

	for key := range Styles {
		if !ValidColor(key) {
			t.Fatalf("styled color %q missing from palette", key)
		}
	}
	// Valid-but-unstyled keys exist: 12 palette entries, 9 styled.
	if len(Colors)-len(Styles) != 3 {
		t.Fatalf("expected 3 unstyled colors, palette=%d styled=%d", len(Colors), len(Styles))
	}
}

func TestPresetColorsAreValid(t *testing.T) {
	t.Parallel()

	for _, p := range CategoryPresets {
		if !ValidColor(p.Color) {
			t.Fatalf("category preset %q has invalid color %q", p.Key, p.Color)
		}
	}
	for _, p := range PriorityPresets {
		if !ValidColor(p.Color) {
			t.Fatalf("priority preset %q has invalid color %q", p.Key, p.Color)
		}
	}
	for _, p := range TagPresets {
		if !ValidColor(p.Color) {
			t.Fatalf("tag preset %q has invalid color %q", p.Key, p.Color)
		}
	}
}
