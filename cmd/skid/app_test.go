package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type appResult struct {
	stdout string
	stderr string
}

func runApp(t *testing.T, opts appOptions, input string) appResult {
	t.Helper()
	var stdout, stderr bytes.Buffer
	opts.Stdin = strings.NewReader(input)
	opts.Stdout = &stdout
	opts.Stderr = &stderr
	if opts.Config == "" {
		opts.Config = filepath.Join(t.TempDir(), "missing.toml")
	}
	if opts.Color == "" {
		opts.Color = "never"
	}
	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Date(2025, time.January, 5, 9, 0, 0, 0, time.UTC) }
	}
	if err := run(opts); err != nil {
		t.Fatalf("run: %v", err)
	}
	return appResult{stdout: stdout.String(), stderr: stderr.String()}
}

func readData(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read data file: %v", err)
	}
	return string(data)
}

func TestRunFirstSessionCreatesAndSaves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skid")

	res := runApp(t, appOptions{DataFile: path}, "create cs101 3 Intro to CS\nadd cs101 1-1-2025 homework 1\nquit\n")

	if !strings.Contains(res.stdout, "Class assignment scheduler.") {
		t.Fatalf("expected intro on first run, got %q", res.stdout)
	}
	if !strings.HasSuffix(res.stdout, "Exiting... Successfully wrote to '"+path+"'\n") {
		t.Fatalf("expected save confirmation, got %q", res.stdout)
	}
	if res.stderr != "" {
		t.Fatalf("unexpected stderr %q", res.stderr)
	}
	if got := readData(t, path); got != "cs101,Intro to CS,3,[homework 1;01-01-2025]" {
		t.Fatalf("unexpected data file %q", got)
	}

	res = runApp(t, appOptions{DataFile: path}, "")
	if strings.Contains(res.stdout, "Class assignment scheduler.") {
		t.Fatal("expected no intro once the data file exists")
	}
	if !strings.Contains(res.stdout, "You have some late assignments!\n\n- homework 1 (cs101)\n") {
		t.Fatalf("expected late report, got %q", res.stdout)
	}
}

func TestRunPanicKeepsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skid")
	original := "cs101,Intro,3"
	if err := os.WriteFile(path, []byte(original), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	res := runApp(t, appOptions{DataFile: path}, "delete cs101\npanic\nquit\n")

	if !strings.HasSuffix(res.stdout, "Exiting... \n") {
		t.Fatalf("expected exit without save, got %q", res.stdout)
	}
	if got := readData(t, path); got != original {
		t.Fatalf("expected data file untouched, got %q", got)
	}
}

func TestRunOneShot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skid")
	if err := os.WriteFile(path, []byte("bio,Biology,2\nart,Drawing,10"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	res := runApp(t, appOptions{DataFile: path, Args: []string{"list"}}, "")
	if res.stdout != "\nart: Drawing\nbio: Biology\n\n" {
		t.Fatalf("unexpected list output %q", res.stdout)
	}

	runApp(t, appOptions{DataFile: path, Args: []string{"create", "CS101", "3", "Intro"}}, "")
	want := "art,Drawing,10\nbio,Biology,2\ncs101,Intro,3"
	if got := readData(t, path); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestRunCorruptFileDisablesPersist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skid")
	original := "math,Algebra,first\nbio,Biology,2"
	if err := os.WriteFile(path, []byte(original), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	res := runApp(t, appOptions{DataFile: path}, "create cs101 3 Intro\n")

	if !strings.Contains(res.stderr, "ERR! line 1: class 'math': invalid period 'first'") {
		t.Fatalf("expected decode diagnostic, got %q", res.stderr)
	}
	if got := readData(t, path); got != original {
		t.Fatalf("expected unreadable file kept, got %q", got)
	}

	runApp(t, appOptions{DataFile: path}, "create cs101 3 Intro\nwrite\n")
	if got := readData(t, path); got != "cs101,Intro,3" {
		t.Fatalf("expected explicit write to replace the file, got %q", got)
	}
}

func TestRunBadDateSubstitutesToday(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skid")
	if err := os.WriteFile(path, []byte("cs101,Intro,3,[hw1;99-99-2025]"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	res := runApp(t, appOptions{DataFile: path}, "")

	if !strings.Contains(res.stderr, "ERR! assignment 'hw1': failed to parse date '99-99-2025'") {
		t.Fatalf("expected date warning, got %q", res.stderr)
	}
	if got := readData(t, path); got != "cs101,Intro,3,[hw1;05-01-2025]" {
		t.Fatalf("expected today substituted, got %q", got)
	}
}

func TestRunUsesSettingsFile(t *testing.T) {
	dir := t.TempDir()
	settings := filepath.Join(dir, "skid.toml")
	dataPath := filepath.Join(dir, "classes")
	content := "[storage]\ndata-file = \"" + filepath.ToSlash(dataPath) + "\"\n\n[display]\ndefault-sort = \"name\"\n"
	if err := os.WriteFile(settings, []byte(content), 0644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	if err := os.WriteFile(dataPath, []byte("bio,Biology,2\nart,Drawing,10"), 0644); err != nil {
		t.Fatalf("write data: %v", err)
	}

	res := runApp(t, appOptions{Config: settings, Args: []string{"list"}}, "")

	if res.stdout != "\nbio: Biology\nart: Drawing\n\n" {
		t.Fatalf("expected name order from settings, got %q", res.stdout)
	}
}

func TestRunRejectsBadSettings(t *testing.T) {
	dir := t.TempDir()
	settings := filepath.Join(dir, "skid.toml")
	if err := os.WriteFile(settings, []byte("[display]\ndefault-sort = \"size\"\n"), 0644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	err := run(appOptions{
		Stdin:    strings.NewReader(""),
		Stdout:   &bytes.Buffer{},
		Stderr:   &bytes.Buffer{},
		Config:   settings,
		DataFile: filepath.Join(dir, "skid"),
	})
	if err == nil || !strings.Contains(err.Error(), "invalid sorting method 'size'") {
		t.Fatalf("expected sorting method error, got %v", err)
	}

	err = run(appOptions{
		Stdin:    strings.NewReader(""),
		Stdout:   &bytes.Buffer{},
		Stderr:   &bytes.Buffer{},
		Config:   filepath.Join(dir, "missing.toml"),
		Color:    "sometimes",
		DataFile: filepath.Join(dir, "skid"),
	})
	if err == nil || !strings.Contains(err.Error(), "unknown color mode") {
		t.Fatalf("expected color mode error, got %v", err)
	}
}

func TestRunVerboseLogs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skid")

	res := runApp(t, appOptions{DataFile: path, Verbose: true, Args: []string{"encode"}}, "")

	if !strings.Contains(res.stderr, "skid: ") || !strings.Contains(res.stderr, "data file "+path) {
		t.Fatalf("expected diagnostics on stderr, got %q", res.stderr)
	}
}
