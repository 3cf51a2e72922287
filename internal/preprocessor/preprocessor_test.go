package preprocessor_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/thelicato/ts2py-go/internal/preprocessor"
)

// includePattern deliberately avoids "//"-based syntax: maskComments blanks
// real comments out of the search text before matching, so a comment-
// shaped directive would mask itself out. A pragma-style directive is what
// the masking step is meant to protect (so a look-alike string inside an
// actual comment is never mistaken for a real include).
var includePattern = regexp.MustCompile(`@include\s+"(?P<name>[^"]+)"`)

func TestRun_DisabledByDefault(t *testing.T) {
	p := preprocessor.New()
	src := "@include \"foo.ts\"\ninterface Foo {}"
	out, diags := p.Run(src)
	if out != src {
		t.Fatalf("disabled preprocessor must pass source through unchanged")
	}
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diags)
	}
}

func TestRun_ResolvesInclude(t *testing.T) {
	dir := t.TempDir()
	includePath := filepath.Join(dir, "shared.ts")
	if err := os.WriteFile(includePath, []byte("type Shared = string;"), 0o644); err != nil {
		t.Fatal(err)
	}

	p := preprocessor.New()
	p.Enabled = true
	p.BaseDir = dir
	p.IncludePattern = includePattern

	src := `@include "shared.ts"` + "\ninterface Foo {}"
	out, diags := p.Run(src)
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diags)
	}
	want := "type Shared = string;\ninterface Foo {}"
	if out != want {
		t.Fatalf("Run() = %q, want %q", out, want)
	}
}

func TestRun_UnresolvableIncludeWarns(t *testing.T) {
	p := preprocessor.New()
	p.Enabled = true
	p.IncludePattern = includePattern

	_, diags := p.Run(`@include "missing.ts"` + "\n")
	if len(diags) != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d", len(diags))
	}
}

func TestRun_IgnoresIncludeLikeTextInsideComments(t *testing.T) {
	p := preprocessor.New()
	p.Enabled = true
	p.IncludePattern = includePattern

	src := `// @include "never.ts"` + "\ninterface Foo {}"
	out, diags := p.Run(src)
	if out != src {
		t.Fatalf("a directive inside a real comment must not be resolved, got %q", out)
	}
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diags)
	}
}
