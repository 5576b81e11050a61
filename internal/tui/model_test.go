package tui

import (
	"strings"
	"testing"
)

func TestPlainCorrectLineTiers(t *testing.T) {
	cases := []struct {
		streak int
		want   string
	}{
		{1, "正解！"},
		{2, "正解！"},
		{3, "すごい！"},
		{4, "その調子！！"},
		{5, "完璧だね！！！"},
	}
	for _, tc := range cases {
		if got := plainCorrectLine(tc.streak); got != tc.want {
			t.Fatalf("streak %d: expected %q, got %q", tc.streak, tc.want, got)
		}
	}
	if got := plainCorrectLine(7); !strings.Contains(got, "7連続") {
		t.Fatalf("expected streak count in line, got %q", got)
	}
}
