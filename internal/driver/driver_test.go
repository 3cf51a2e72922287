package driver_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/thelicato/ts2py-go/internal/compiler"
	"github.com/thelicato/ts2py-go/internal/driver"
)

func silentLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun_CompilesSingleFileAndWritesSibling(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "point.d.ts")
	if err := os.WriteFile(src, []byte(`export interface Point { x: number; y: number; }`), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := driver.Run(silentLogger(), src, compiler.Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.FilesCompiled != 1 {
		t.Fatalf("expected 1 file compiled, got %d", res.FilesCompiled)
	}
	if res.ExitCode() != 0 {
		t.Fatalf("expected exit code 0, got %d", res.ExitCode())
	}

	out, err := os.ReadFile(filepath.Join(dir, "point.py"))
	if err != nil {
		t.Fatalf("expected a sibling .py file to be written: %v", err)
	}
	if len(out) == 0 {
		t.Fatalf("expected non-empty compiled output")
	}
}

func TestRun_RejectsNonDeclarationFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "plain.ts")
	if err := os.WriteFile(src, []byte(`export const x = 1;`), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := driver.Run(silentLogger(), src, compiler.Config{}); err == nil {
		t.Fatalf("expected an error for a non-.d.ts input file")
	}
}

func TestRun_WalksDirectoryRecursively(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "nested")
	if err := os.Mkdir(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "a.d.ts"), []byte(`export const A: number = 1;`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(nested, "b.d.ts"), []byte(`export const B: number = 2;`), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := driver.Run(silentLogger(), dir, compiler.Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.FilesCompiled != 2 {
		t.Fatalf("expected 2 files compiled, got %d", res.FilesCompiled)
	}
	if _, err := os.Stat(filepath.Join(nested, "b.py")); err != nil {
		t.Fatalf("expected nested output file: %v", err)
	}
}

func TestExitCode_ErrorDiagnosticProducesTwo(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "broken.d.ts")
	if err := os.WriteFile(src, []byte(`interface {{{`), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := driver.Run(silentLogger(), src, compiler.Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ExitCode() != 2 {
		t.Fatalf("expected exit code 2 for a malformed input, got %d", res.ExitCode())
	}
}
