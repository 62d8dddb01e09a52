package strings

import "testing"

func TestIndentJoin(t *testing.T) {
	got := IndentJoin([]string{"1) hw", "2) lab"}, 2)
	want := "  1) hw\n  2) lab"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestIndentJoinEmpty(t *testing.T) {
	if got := IndentJoin(nil, 2); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestIndentBlock(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		spaces int
		want   string
	}{
		{
			name:   "multi line",
			input:  "a\nb",
			spaces: 3,
			want:   "   a\n   b",
		},
		{
			name:   "zero spaces",
			input:  "a\nb",
			spaces: 0,
			want:   "a\nb",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := IndentBlock(tc.input, tc.spaces)
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
