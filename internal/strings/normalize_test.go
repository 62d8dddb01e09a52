package strings

import "testing"

func TestNormalizeLowerTrimSpace(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "already lower",
			input: "cs101",
			want:  "cs101",
		},
		{
			name:  "mixed case with spaces",
			input: "  CS101 ",
			want:  "cs101",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeLowerTrimSpace(tc.input)
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestNormalizeNewlines(t *testing.T) {
	got := NormalizeNewlines("a\r\nb\rc\n")
	if got != "a\nb\nc\n" {
		t.Fatalf("expected normalized newlines, got %q", got)
	}
}

func TestTrimTrailingNewlines(t *testing.T) {
	got := TrimTrailingNewlines("line\r\n\n")
	if got != "line" {
		t.Fatalf("expected trailing newlines trimmed, got %q", got)
	}
}

func TestFirstLine(t *testing.T) {
	cases := map[string]string{
		"":               "",
		"single":         "single",
		"first\nsecond":  "first",
		"\nsecond\nmore": "",
	}
	for input, want := range cases {
		if got := FirstLine(input); got != want {
			t.Fatalf("FirstLine(%q): expected %q, got %q", input, want, got)
		}
	}
}
