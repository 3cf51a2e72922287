// Package driver walks a file or directory argument, compiles every
// `.d.ts` it finds, and writes the result to a sibling `.py` file. It is
// the Go equivalent of the original's main.py `process_file`/directory-walk
// logic, logged with log/slog the way the rest of this module's ambient
// stack does.
package driver

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/thelicato/ts2py-go/internal/compiler"
	"github.com/thelicato/ts2py-go/internal/diagnostics"
	"github.com/thelicato/ts2py-go/internal/pipeline"
	"github.com/thelicato/ts2py-go/internal/preprocessor"
)

// Result summarizes one run across every input file.
type Result struct {
	FilesCompiled int
	Diagnostics   []*diagnostics.Diagnostic
}

// ExitCode maps a Result to a process exit status: 0 clean, 1 warnings
// only, 2 at least one error or fatal diagnostic.
func (r Result) ExitCode() int {
	if diagnostics.HasErrors(r.Diagnostics) {
		return 2
	}
	for _, d := range r.Diagnostics {
		if d.Severity == diagnostics.Warning {
			return 1
		}
	}
	return 0
}

// Run compiles path, which may be a single `.d.ts` file or a directory
// searched recursively for them.
func Run(log *slog.Logger, path string, cfg compiler.Config) (Result, error) {
	var res Result
	info, err := os.Stat(path)
	if err != nil {
		return res, fmt.Errorf("driver: %w", err)
	}

	var files []string
	if info.IsDir() {
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && isDeclarationFile(p) {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return res, fmt.Errorf("driver: %w", err)
		}
	} else {
		if !isDeclarationFile(path) {
			return res, fmt.Errorf("driver: %s is not a .d.ts file", path)
		}
		files = append(files, path)
	}

	pre := preprocessor.New()
	pl := pipeline.New(pre, cfg)

	for _, f := range files {
		log.Debug("compiling", "file", f)
		src, err := os.ReadFile(f)
		if err != nil {
			return res, fmt.Errorf("driver: reading %s: %w", f, err)
		}
		ctx := &pipeline.Context{File: f, Source: string(src)}
		ctx = pl.Run(ctx)
		res.Diagnostics = append(res.Diagnostics, ctx.Diagnostics...)
		for _, d := range ctx.Diagnostics {
			logDiagnostic(log, d)
		}
		if diagnostics.HasFatal(ctx.Diagnostics) {
			continue
		}
		out := outputPath(f)
		if err := os.WriteFile(out, []byte(ctx.Output), 0o644); err != nil {
			return res, fmt.Errorf("driver: writing %s: %w", out, err)
		}
		res.FilesCompiled++
		log.Info("wrote", "file", out)
	}
	return res, nil
}

func isDeclarationFile(p string) bool {
	return strings.HasSuffix(p, ".d.ts")
}

func outputPath(p string) string {
	base := strings.TrimSuffix(p, ".d.ts")
	return base + ".py"
}

func logDiagnostic(log *slog.Logger, d *diagnostics.Diagnostic) {
	attrs := []any{"code", string(d.Code), "file", d.File, "line", d.Pos.Line, "column", d.Pos.Column}
	switch d.Severity {
	case diagnostics.Fatal, diagnostics.Error:
		log.Error(d.Message, attrs...)
	case diagnostics.Warning:
		log.Warn(d.Message, attrs...)
	default:
		log.Info(d.Message, attrs...)
	}
}
