package ui

import (
	"strings"
	"testing"

	"underground/internal/orbital"
)

func TestDetectTheme(t *testing.T) {
	if !DetectTheme("dark").IsDark {
		t.Fatalf("expected dark theme for explicit setting")
	}
	if DetectTheme("light").IsDark {
		t.Fatalf("expected light theme for explicit setting")
	}

	t.Setenv("COLORFGBG", "0;15")
	if DetectTheme("auto").IsDark {
		t.Fatalf("expected light theme for a white background")
	}

	t.Setenv("COLORFGBG", "15;0")
	if !DetectTheme("auto").IsDark {
		t.Fatalf("expected dark theme for a black background")
	}

	t.Setenv("COLORFGBG", "")
	if !DetectTheme("").IsDark {
		t.Fatalf("expected dark theme by default")
	}
}

func TestBlockColor(t *testing.T) {
	if BlockColor(orbital.LetterD) != Yellow {
		t.Fatalf("d-block should be yellow")
	}
	if BlockColor(orbital.LetterS) != Cyan {
		t.Fatalf("s-block should be cyan")
	}
}

func TestLabelRightAligns(t *testing.T) {
	s := NewStyles(DarkTheme())
	if got := s.Label.Foreground(BlockColor(orbital.LetterD)).Render("3d"); !strings.Contains(got, "  3d") {
		t.Fatalf("expected subshell label padded to width 4, got %q", got)
	}
}

func TestLogoUsesHeader(t *testing.T) {
	if got := Logo(NewStyles(LightTheme())); !strings.Contains(got, "ELECTRON UNDERGROUND") {
		t.Fatalf("unexpected logo %q", got)
	}
}
