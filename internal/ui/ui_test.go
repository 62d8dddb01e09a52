package ui

import (
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func TestFormatTable(t *testing.T) {
	builder := NewTableBuilder([]string{"COMMAND", "ALIASES", "DESCRIPTION"}, 2)
	builder.AddRow("add", "a", "Adds a dated assignment to a class.")
	builder.AddRow("complete", "c", "Moves an assignment to the completed list.")

	want := "COMMAND   ALIASES  DESCRIPTION\n" +
		"add       a        Adds a dated assignment to a class.\n" +
		"complete  c        Moves an assignment to the completed list.\n"
	if got := builder.String(); got != want {
		t.Fatalf("expected:\n%q\ngot:\n%q", want, got)
	}
}

func TestFormatTableNormalizesLineBreaks(t *testing.T) {
	got := FormatTable([]string{"COL", "X"}, [][]string{{"Hello\nWorld\tTab", "y"}})

	want := "COL              X\nHello World Tab  y\n"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestDisplayWidthIgnoresANSICodes(t *testing.T) {
	value := "\x1b[1m\x1b[36mabc\x1b[0m"
	if got := DisplayWidth(value); got != 3 {
		t.Fatalf("expected width 3, got %d", got)
	}
}

func TestDisplayWidthCountsWideRunes(t *testing.T) {
	if got := DisplayWidth("日本"); got != 4 {
		t.Fatalf("expected width 4, got %d", got)
	}
}

func TestPadRight(t *testing.T) {
	cases := []struct {
		value string
		width int
		want  string
	}{
		{value: "hw", width: 5, want: "hw   "},
		{value: "essay", width: 3, want: "essay"},
		{value: "日本", width: 5, want: "日本 "},
	}

	for _, tc := range cases {
		if got := PadRight(tc.value, tc.width); got != tc.want {
			t.Fatalf("PadRight(%q, %d): expected %q, got %q", tc.value, tc.width, tc.want, got)
		}
	}
}

func TestPropertyWithoutColor(t *testing.T) {
	if got := Property("Name", "Intro to CS"); got != "Name: Intro to CS" {
		t.Fatalf("unexpected property %q", got)
	}
	if got := NumberProperty("Period", 3); got != "Period: 3" {
		t.Fatalf("unexpected number property %q", got)
	}
	if got := Position(2) + " " + Tag("cs101"); got != "2) (cs101)" {
		t.Fatalf("unexpected markers %q", got)
	}
}

func TestSetColorModeRejectsUnknown(t *testing.T) {
	if err := SetColorMode("sometimes"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
	if err := SetColorMode("never"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
