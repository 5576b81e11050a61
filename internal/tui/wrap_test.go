package tui

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestWrapTextBreaksAtSpaces(t *testing.T) {
	got := wrapText("one two three four", 9)
	want := "one two\nthree\nfour"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestWrapTextNoFit(t *testing.T) {
	// A single long word breaks mid-word.
	got := wrapText("abcdefgh", 3)
	want := "abc\ndef\ngh"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestWrapTextWideRunes(t *testing.T) {
	// CJK runes are double width, so 4 columns fit two runes.
	got := wrapText("地理攻略", 4)
	if lines := strings.Split(got, "\n"); len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", got)
	}
	for _, line := range strings.Split(got, "\n") {
		if runewidth.StringWidth(line) > 4 {
			t.Fatalf("line %q exceeds width", line)
		}
	}
}

func TestWrapTextZeroWidth(t *testing.T) {
	if got := wrapText("unchanged", 0); got != "unchanged" {
		t.Fatalf("expected passthrough, got %q", got)
	}
}

func TestWrapTextKeepsParagraphs(t *testing.T) {
	got := wrapText("ab\ncd", 10)
	if got != "ab\ncd" {
		t.Fatalf("expected paragraphs preserved, got %q", got)
	}
}
