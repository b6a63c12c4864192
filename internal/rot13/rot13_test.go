package rot13

import (
	"testing"
	"unicode/utf8"
)

func TestTransformExamples(t *testing.T) {
	cases := map[string]string{
		"":      "",
		"hello": "uryyb",
		"Why did the chicken cross the road?":                  "Jul qvq gur puvpxra pebff gur ebnq?",
		"Gb trg gb gur bgure fvqr!":                            "To get to the other side!",
		"ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz": "NOPQRSTUVWXYZABCDEFGHIJKLMnopqrstuvwxyzabcdefghijklm",
	}
	for in, want := range cases {
		if got := Transform(in); got != want {
			t.Fatalf("Transform(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTransformInvolution(t *testing.T) {
	inputs := []string{
		"",
		"hello",
		"The Quick Brown Fox, 1234!",
		"héllo wörld ☃ ┌─┐",
		"\t\n\x00\x7f",
	}
	for _, in := range inputs {
		out := Transform(in)
		if len(out) != len(in) {
			t.Fatalf("Transform(%q) changed byte length: %d -> %d", in, len(in), len(out))
		}
		if utf8.RuneCountInString(out) != utf8.RuneCountInString(in) {
			t.Fatalf("Transform(%q) changed rune count", in)
		}
		if back := Transform(out); back != in {
			t.Fatalf("Transform(Transform(%q)) = %q", in, back)
		}
	}
}

func TestTransformFixedPoints(t *testing.T) {
	in := "0123456789 !\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~ äöü ☃"
	if got := Transform(in); got != in {
		t.Fatalf("non-letters changed: %q -> %q", in, got)
	}
}

func TestTransformPreservesCase(t *testing.T) {
	for c := 'a'; c <= 'z'; c++ {
		out := Transform(string(c))[0]
		if out < 'a' || out > 'z' {
			t.Fatalf("lowercase %q mapped to %q", c, out)
		}
	}
	for c := 'A'; c <= 'Z'; c++ {
		out := Transform(string(c))[0]
		if out < 'A' || out > 'Z' {
			t.Fatalf("uppercase %q mapped to %q", c, out)
		}
	}
}
