// Package preprocessor normalizes source text before it reaches the lexer.
// It mirrors the original ts2py preprocessor: a single pass that (disabled
// by default) inlines `@include "path"` style references via a regex hook,
// and otherwise returns the text unchanged. Comments are masked before the
// hook runs, so a directive written inside a comment never matches.
package preprocessor

import (
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/thelicato/ts2py-go/internal/diagnostics"
	"github.com/thelicato/ts2py-go/internal/lexer"
	"github.com/thelicato/ts2py-go/internal/token"
)

// Preprocessor runs the single normalization pass over source text.
//
// IncludePattern must expose exactly one capture group named "name" holding
// the path to inline. The zero value has no pattern set (Enabled is false),
// matching the original's RE_INCLUDE = NEVER_MATCH_PATTERN default: Go's RE2
// engine has no negative lookahead to build a literal "never matches"
// pattern from, so disablement is a plain boolean rather than an
// unmatchable regex (documented as an Open Question resolution in
// DESIGN.md).
type Preprocessor struct {
	Enabled        bool
	IncludePattern *regexp.Regexp
	// BaseDir resolves relative include paths; when empty, a relative path
	// is opened as is, relative to the process working directory.
	BaseDir string
}

// New returns a Preprocessor with includes disabled, matching the spec's
// default.
func New() *Preprocessor {
	return &Preprocessor{Enabled: false}
}

// Run normalizes src and returns the processed text plus any non-fatal
// diagnostics accumulated while resolving includes.
func (p *Preprocessor) Run(src string) (string, []*diagnostics.Diagnostic) {
	if !p.Enabled || p.IncludePattern == nil {
		return src, nil
	}

	var diags []*diagnostics.Diagnostic
	masked := maskComments(src)
	names := p.IncludePattern.SubexpNames()
	nameIdx := -1
	for i, n := range names {
		if n == "name" {
			nameIdx = i
		}
	}
	if nameIdx < 0 {
		return src, diags
	}

	out := src
	for {
		loc := p.IncludePattern.FindStringSubmatchIndex(masked)
		if loc == nil {
			break
		}
		full := masked[loc[0]:loc[1]]
		name := masked[loc[2*nameIdx]:loc[2*nameIdx+1]]
		path := name
		if !filepath.IsAbs(path) && p.BaseDir != "" {
			path = filepath.Join(p.BaseDir, name)
		}
		content, err := readFile(path)
		if err != nil {
			diags = append(diags, diagnostics.Warningf(
				diagnostics.ErrP001, token.Position{},
				"could not resolve include %q: %v", name, err))
			// leave the unresolved reference in place; mask it so we don't
			// try to re-match the same span forever.
			masked = replaceOnce(masked, full, blank(full))
			continue
		}
		out = replaceOnce(out, full, content)
		masked = replaceOnce(masked, full, blank(full))
	}
	return out, diags
}

func maskComments(src string) string {
	return lexer.CommentPattern.ReplaceAllStringFunc(src, blank)
}

func blank(s string) string {
	out := make([]byte, len(s))
	for i, c := range []byte(s) {
		if c == '\n' {
			out[i] = '\n'
		} else {
			out[i] = ' '
		}
	}
	return string(out)
}

func replaceOnce(s, old, new string) string {
	idx := indexOf(s, old)
	if idx < 0 {
		return s
	}
	return s[:idx] + new + s[idx+len(old):]
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

func readFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
