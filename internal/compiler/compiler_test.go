package compiler_test

import (
	"strings"
	"testing"

	"github.com/thelicato/ts2py-go/internal/compiler"
	"github.com/thelicato/ts2py-go/internal/diagnostics"
	"github.com/thelicato/ts2py-go/internal/parser"
	"github.com/thelicato/ts2py-go/internal/transformer"
)

func compileOK(t *testing.T, cfg compiler.Config, src string) (string, []*diagnostics.Diagnostic) {
	t.Helper()
	p := parser.New(src)
	doc := p.ParseDocument()
	if diags := p.Diagnostics(); len(diags) != 0 {
		t.Fatalf("unexpected parse diagnostics: %v", diags)
	}
	doc = transformer.New().Run(doc)
	return compiler.New(cfg).Compile(doc)
}

func TestCompile_InterfaceSplitsOptionalMembers(t *testing.T) {
	out, _ := compileOK(t, compiler.Config{}, `export interface Point { x: number; y?: number; }`)
	if !strings.Contains(out, "class PointRequired(TypedDict):") {
		t.Fatalf("expected a Required split, got:\n%s", out)
	}
	if !strings.Contains(out, "class Point(PointRequired, total=False):") {
		t.Fatalf("expected the optional half of the split, got:\n%s", out)
	}
	if !strings.Contains(out, "x: float") {
		t.Fatalf("expected required member x, got:\n%s", out)
	}
	if !strings.Contains(out, "y: float") {
		t.Fatalf("expected optional member y, got:\n%s", out)
	}
}

func TestCompile_InterfaceNotRequiredInline(t *testing.T) {
	out, _ := compileOK(t, compiler.Config{UseNotRequired: true}, `export interface Point { x: number; y?: number; }`)
	if strings.Contains(out, "PointRequired") {
		t.Fatalf("did not expect a Required split with UseNotRequired, got:\n%s", out)
	}
	if !strings.Contains(out, "y: NotRequired[float]") {
		t.Fatalf("expected inline NotRequired member, got:\n%s", out)
	}
}

func TestCompile_TypeAliasUnionFoldsNullIntoOptional(t *testing.T) {
	out, _ := compileOK(t, compiler.Config{}, `type Id = string | null;`)
	if !strings.Contains(out, "Id = Optional[str]") {
		t.Fatalf("expected Optional[str] alias, got:\n%s", out)
	}
}

func TestCompile_TypeAliasUnionUsesPipeSyntaxForPep604(t *testing.T) {
	out, _ := compileOK(t, compiler.Config{UseTypeUnion: false}, `type Id = string | number;`)
	if !strings.Contains(out, "Id = str | float") {
		t.Fatalf("expected PEP 604 union syntax, got:\n%s", out)
	}
}

func TestCompile_TypeAliasUnionUsesUnionBracketWithUseTypeUnion(t *testing.T) {
	out, _ := compileOK(t, compiler.Config{UseTypeUnion: true}, `type Id = string | number;`)
	if !strings.Contains(out, "Id = Union[str, float]") {
		t.Fatalf("expected typing.Union syntax, got:\n%s", out)
	}
}

func TestCompile_EnumAllIntegerBecomesIntEnum(t *testing.T) {
	out, _ := compileOK(t, compiler.Config{UseEnum: true}, `const enum Color { Red = 1, Green = 2 }`)
	if !strings.Contains(out, "class Color(IntEnum):") {
		t.Fatalf("expected IntEnum base, got:\n%s", out)
	}
	if !strings.Contains(out, "Red = 1") {
		t.Fatalf("expected member Red = 1, got:\n%s", out)
	}
}

func TestCompile_EnumDisabledFallsBackToPlainClass(t *testing.T) {
	out, _ := compileOK(t, compiler.Config{UseEnum: false}, `const enum Color { Red = 1, Green = 2 }`)
	if !strings.Contains(out, "class Color:") {
		t.Fatalf("expected a plain class, got:\n%s", out)
	}
	if strings.Contains(out, "Enum") {
		t.Fatalf("did not expect any Enum import/base, got:\n%s", out)
	}
}

func TestCompile_ConstOmitsAnnotationWhenSourceHadNone(t *testing.T) {
	out, _ := compileOK(t, compiler.Config{}, `export const Limit = 10;`)
	if !strings.Contains(out, "Limit = 10") {
		t.Fatalf("expected a bare assignment, got:\n%s", out)
	}
	if strings.Contains(out, "Limit:") {
		t.Fatalf("did not expect a type annotation, got:\n%s", out)
	}
}

func TestCompile_ConstKeepsExplicitAnnotation(t *testing.T) {
	out, _ := compileOK(t, compiler.Config{}, `export const Limit: number = 10;`)
	if !strings.Contains(out, "Limit: float = 10") {
		t.Fatalf("expected annotated assignment, got:\n%s", out)
	}
}

func TestCompile_FunctionRestParameterBecomesStarArg(t *testing.T) {
	out, _ := compileOK(t, compiler.Config{}, `export declare function merge(first: string, ...rest: string[]): void;`)
	if !strings.Contains(out, "def merge(first: str, *rest: List[str]) -> None: ...") {
		t.Fatalf("unexpected function signature, got:\n%s", out)
	}
}

func TestCompile_NamespaceNestsMembersInClass(t *testing.T) {
	out, _ := compileOK(t, compiler.Config{}, `namespace NS { export const Limit: number = 1; }`)
	if !strings.Contains(out, "class NS:") {
		t.Fatalf("expected a namespace class, got:\n%s", out)
	}
	if !strings.Contains(out, "Limit: float = 1") {
		t.Fatalf("expected nested const, got:\n%s", out)
	}
}

func TestCompile_ForwardReferenceIsQuoted(t *testing.T) {
	out, _ := compileOK(t, compiler.Config{}, `export interface A { b: B; }
export interface B {}`)
	if !strings.Contains(out, `b: "B"`) {
		t.Fatalf("expected a quoted forward reference to a not-yet-emitted type, got:\n%s", out)
	}
}

func TestCompile_SelfReferenceIsNotQuoted(t *testing.T) {
	out, _ := compileOK(t, compiler.Config{}, `export interface Node { next: Node; }`)
	if !strings.Contains(out, "next: Node") {
		t.Fatalf("expected an unquoted self-reference (from __future__ import annotations defers evaluation), got:\n%s", out)
	}
}

func TestCompile_BackwardReferenceIsNotQuoted(t *testing.T) {
	out, _ := compileOK(t, compiler.Config{}, `export interface A {}
export interface B { a: A; }`)
	if !strings.Contains(out, "a: A") {
		t.Fatalf("expected an unquoted reference to an already-emitted type, got:\n%s", out)
	}
	if strings.Contains(out, `a: "A"`) {
		t.Fatalf("did not expect a quoted reference, got:\n%s", out)
	}
}

func TestCompile_KeyofEmitsUnsupportedDiagnostic(t *testing.T) {
	out, diags := compileOK(t, compiler.Config{}, `type Keys = keyof string;`)
	if !strings.Contains(out, "Keys = Any") {
		t.Fatalf("expected keyof to compile to Any, got:\n%s", out)
	}
	found := false
	for _, d := range diags {
		if d.Code == diagnostics.Unsupported {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an Unsupported diagnostic for keyof, got: %v", diags)
	}
}
