package grapheme

import "testing"

func TestSplit_KeepsCombiningMarksTogether(t *testing.T) {
	text := "a" + "é" + "b"
	got := Split(text)
	if len(got) != 3 {
		t.Fatalf("split len: got %d, want %d", len(got), 3)
	}
	if got[1] != "é" {
		t.Fatalf("split[1]: got %q, want %q", got[1], "é")
	}
	if Split("") != nil {
		t.Fatalf("split of empty text must be nil")
	}
}

func TestWidth_CountsWideClustersAsTwoCells(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{text: "", want: 0},
		{text: "abc", want: 3},
		{text: "é", want: 1},
		{text: "한국어", want: 6},
		{text: "a한", want: 3},
	}
	for _, tc := range cases {
		if got := Width(tc.text); got != tc.want {
			t.Fatalf("Width(%q): got %d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestIsSpace(t *testing.T) {
	if !IsSpace("\t") || !IsSpace(" ") {
		t.Fatalf("tab and space should be space")
	}
	if IsSpace("a") || IsSpace("") {
		t.Fatalf("letter and empty cluster should not be space")
	}
}
