package tui

import (
	"regexp"
	"strings"
	"testing"
)

// Styles may or may not emit escape codes depending on the color profile
// the test binary starts with, so assertions compare stripped output.
var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRe.ReplaceAllString(s, "")
}

func TestRenderMarkupHighlightsStarredSpans(t *testing.T) {
	got := stripANSI(renderMarkup("see the *bunk* against the wall"))
	if got != "see the bunk against the wall" {
		t.Fatalf("got %q", got)
	}
}

func TestRenderMarkupMultipleSpans(t *testing.T) {
	got := stripANSI(renderMarkup("*panel* by the *door*"))
	if got != "panel by the door" {
		t.Fatalf("got %q", got)
	}
}

func TestRenderMarkupUnbalancedStarIsLiteral(t *testing.T) {
	got := stripANSI(renderMarkup("a lone * star"))
	if got != "a lone * star" {
		t.Fatalf("got %q", got)
	}
}

func TestRenderMarkupPlainLine(t *testing.T) {
	got := stripANSI(renderMarkup("nothing special"))
	if got != "nothing special" {
		t.Fatalf("got %q", got)
	}
}

func TestSceneArtFallsBackToStarfield(t *testing.T) {
	if sceneArt("no_such_scene") != sceneArt("starfield") {
		t.Fatal("unknown scene should fall back to the starfield")
	}
	if !strings.Contains(sceneArt("quarters"), "BUNK") {
		t.Fatal("quarters scene lost its bunk")
	}
}
