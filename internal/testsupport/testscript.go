// Package testsupport builds the skid binary and prepares testscript environments.
package testsupport

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/amonks/skid/class"
	"github.com/rogpeppe/go-internal/testscript"
)

var (
	buildOnce sync.Once
	skidPath  string
	buildErr  error
)

// BuildSkid builds the skid binary once and returns its path.
func BuildSkid(t testing.TB) string {
	t.Helper()

	buildOnce.Do(func() {
		moduleRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		binDir, err := os.MkdirTemp("", "skid-bin-")
		if err != nil {
			buildErr = err
			return
		}

		skidPath = filepath.Join(binDir, "skid")
		cmd := exec.Command("go", "build", "-o", skidPath, "./cmd/skid")
		cmd.Dir = moduleRoot
		output, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("build skid: %w: %s", err, strings.TrimSpace(string(output)))
		}
	})

	if buildErr != nil {
		t.Fatalf("%v", buildErr)
	}

	return skidPath
}

// SetupScriptEnv points HOME and XDG_CONFIG_HOME into the script work dir
// and exposes the binary as $SKID and the default data file as $DATA.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	env.Setenv("SKID", BuildSkid(t))

	homeDir := filepath.Join(env.WorkDir, "home")
	configDir := filepath.Join(homeDir, ".config")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	env.Setenv("XDG_CONFIG_HOME", configDir)
	env.Setenv("DATA", filepath.Join(configDir, "skid"))
	env.Setenv("NO_COLOR", "1")
	return nil
}

// Commands returns the custom testscript commands.
func Commands() map[string]func(ts *testscript.TestScript, neg bool, args []string) {
	return map[string]func(ts *testscript.TestScript, neg bool, args []string){
		"envset":     CmdEnvSet,
		"classcount": CmdClassCount,
	}
}

// CmdEnvSet stores the trimmed contents of a file in an env var.
func CmdEnvSet(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("envset does not support negation")
	}
	if len(args) != 2 {
		ts.Fatalf("usage: envset VAR FILE")
	}

	value := strings.TrimSpace(ts.ReadFile(args[1]))
	ts.Setenv(args[0], value)
}

// CmdClassCount decodes a data file and checks how many classes it holds.
func CmdClassCount(ts *testscript.TestScript, neg bool, args []string) {
	if len(args) != 2 {
		ts.Fatalf("usage: classcount FILE N")
	}

	store, err := class.DecodeDocument(ts.ReadFile(args[0]))
	if err != nil {
		ts.Fatalf("decode %s: %v", args[0], err)
	}

	got := fmt.Sprint(store.Len())
	switch {
	case neg && got == args[1]:
		ts.Fatalf("%s holds %s classes", args[0], got)
	case !neg && got != args[1]:
		ts.Fatalf("%s holds %s classes, want %s", args[0], got, args[1])
	}
}

func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find module root (go.mod)")
		}
		dir = parent
	}
}
