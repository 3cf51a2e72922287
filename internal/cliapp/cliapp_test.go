package cliapp_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thelicato/ts2py-go/internal/cliapp"
)

// Only the clean-compile path is exercised here: runCompile calls os.Exit
// directly on warning/error exit codes, which would kill the test binary,
// so every fixture below must be syntactically valid and diagnostic-free.
func TestCompileCommand_CompilesAFileAndPrintsASummary(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "point.d.ts")
	if err := os.WriteFile(src, []byte(`export interface Point { x: number; y: number; }`), 0o644); err != nil {
		t.Fatal(err)
	}

	root := cliapp.NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"compile", src})

	if err := root.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "compiled 1 file(s), 0 diagnostic(s)") {
		t.Fatalf("expected a run summary, got:\n%s", out.String())
	}

	if _, err := os.Stat(filepath.Join(dir, "point.py")); err != nil {
		t.Fatalf("expected a compiled sibling file: %v", err)
	}
}

func TestNewRootCommand_RegistersCompileSubcommand(t *testing.T) {
	root := cliapp.NewRootCommand()
	cmd, _, err := root.Find([]string{"compile"})
	if err != nil {
		t.Fatalf("expected a compile subcommand: %v", err)
	}
	if cmd.Use != "compile <path>" {
		t.Fatalf("unexpected Use string: %q", cmd.Use)
	}
}
