package prettyprinter_test

import (
	"testing"

	"github.com/thelicato/ts2py-go/internal/prettyprinter"
)

func TestWriteLine_IndentsNonBlankLines(t *testing.T) {
	p := prettyprinter.New()
	p.Indent()
	p.WriteLine("x: int")
	p.WriteLine("")
	p.Dedent()
	p.WriteLine("y: int")

	want := "    x: int\n\ny: int\n"
	if got := p.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDedent_NoopAtZero(t *testing.T) {
	p := prettyprinter.New()
	p.Dedent()
	p.WriteLine("top")
	if got := p.String(); got != "top\n" {
		t.Fatalf("got %q", got)
	}
}

func TestWriteBlock_IndentsEveryLineOfAMultiLineBlock(t *testing.T) {
	p := prettyprinter.New()
	p.Indent()
	p.WriteBlock("def f():\n    return 1")

	want := "    def f():\n        return 1\n"
	if got := p.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBlank_WritesABareNewline(t *testing.T) {
	p := prettyprinter.New()
	p.Indent()
	p.Blank()
	if got := p.String(); got != "\n" {
		t.Fatalf("got %q, want a bare newline", got)
	}
}
