package markdown

import (
	"errors"
	"strings"
	"testing"
)

type panicRenderer struct{}

func (panicRenderer) Render(string) (string, error) {
	panic("boom")
}

type failingRenderer struct{}

func (failingRenderer) Render(string) (string, error) {
	return "", errors.New("render failed")
}

func withRenderer(t *testing.T, width int, r renderer) {
	t.Helper()

	rendererMu.Lock()
	prev, hadPrev := renderers[width]
	renderers[width] = r
	rendererMu.Unlock()

	t.Cleanup(func() {
		rendererMu.Lock()
		if hadPrev {
			renderers[width] = prev
		} else {
			delete(renderers, width)
		}
		rendererMu.Unlock()
	})
}

func TestSafeRender_RecoversFromRendererPanic(t *testing.T) {
	withRenderer(t, 20, panicRenderer{})

	out := SafeRender(20, 0, []byte("hello\n"))
	if string(out) != "hello" {
		t.Fatalf("expected fallback to original markdown, got %q", string(out))
	}
}

func TestRender_FallsBackOnError(t *testing.T) {
	withRenderer(t, 18, failingRenderer{})

	out := Render(20, 2, []byte("line one\r\nline two\n\n"))
	if string(out) != "  line one\n  line two" {
		t.Fatalf("expected indented plain text, got %q", string(out))
	}
}

func TestRender_Empty(t *testing.T) {
	for _, input := range []string{"", "\n\n", "   \n"} {
		if out := Render(80, 0, []byte(input)); out != nil {
			t.Fatalf("expected nil for %q, got %q", input, string(out))
		}
	}
}

func TestRender_FormatsMarkdown(t *testing.T) {
	out := string(Render(60, 0, []byte("# skid\n\nRun `help` for a list of commands.\n\n- one\n- two\n")))

	for _, want := range []string{"skid", "help", "- one", "- two"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got %q", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected ascii output without escapes, got %q", out)
	}
}
