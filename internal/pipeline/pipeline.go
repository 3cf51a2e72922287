// Package pipeline threads a compilation unit through the four ordered
// stages named in the component design: Preprocessor, Parser, Transformer,
// Compiler. The teacher codebase has no single named pipeline type either;
// cmd/tygor/internal/gen.Run sequences its own stages by hand
// (discover.Find, then discover.SelectExport, then runner.Exec on the
// result), passing the output of one straight into the next. Context here
// generalizes that same hand-sequenced, one-value-flows-through-every-stage
// shape into an explicit struct so each stage can append its own findings
// without the caller threading them separately.
package pipeline

import (
	"github.com/thelicato/ts2py-go/internal/ast"
	"github.com/thelicato/ts2py-go/internal/compiler"
	"github.com/thelicato/ts2py-go/internal/diagnostics"
	"github.com/thelicato/ts2py-go/internal/parser"
	"github.com/thelicato/ts2py-go/internal/preprocessor"
	"github.com/thelicato/ts2py-go/internal/transformer"
)

// Context carries one compilation unit's state from stage to stage.
type Context struct {
	File   string
	Source string

	Tree   *ast.Node
	Output string

	Diagnostics []*diagnostics.Diagnostic
}

// AddDiagnostics appends diagnostics and stamps them with the file this
// context is compiling, the way every stage reports findings without
// needing to know its position in the pipeline.
func (c *Context) AddDiagnostics(diags ...*diagnostics.Diagnostic) {
	for _, d := range diags {
		if d.File == "" {
			d.File = c.File
		}
	}
	c.Diagnostics = append(c.Diagnostics, diags...)
}

// Processor is one pipeline stage.
type Processor interface {
	Process(ctx *Context) *Context
}

// ProcessorFunc adapts a plain function to Processor.
type ProcessorFunc func(ctx *Context) *Context

func (f ProcessorFunc) Process(ctx *Context) *Context { return f(ctx) }

// Pipeline runs a fixed, ordered sequence of Processors over one Context.
type Pipeline struct {
	stages []Processor
}

// New builds the standard four-stage pipeline: preprocess, parse,
// transform, compile.
func New(pre *preprocessor.Preprocessor, cfg compiler.Config) *Pipeline {
	return &Pipeline{stages: []Processor{
		preprocessStage{pre},
		parseStage{},
		transformStage{transformer.New()},
		compileStage{compiler.New(cfg)},
	}}
}

// Run executes every stage in order, short-circuiting if a prior stage
// recorded a Fatal diagnostic.
func (p *Pipeline) Run(ctx *Context) *Context {
	for _, stage := range p.stages {
		ctx = stage.Process(ctx)
		if diagnostics.HasFatal(ctx.Diagnostics) {
			break
		}
	}
	return ctx
}

type preprocessStage struct{ pre *preprocessor.Preprocessor }

func (s preprocessStage) Process(ctx *Context) *Context {
	out, diags := s.pre.Run(ctx.Source)
	ctx.AddDiagnostics(diags...)
	ctx.Source = out
	return ctx
}

type parseStage struct{}

func (parseStage) Process(ctx *Context) *Context {
	p := parser.New(ctx.Source)
	ctx.Tree = p.ParseDocument()
	ctx.AddDiagnostics(p.Diagnostics()...)
	return ctx
}

type transformStage struct{ t *transformer.Transformer }

func (s transformStage) Process(ctx *Context) *Context {
	ctx.Tree = s.t.Run(ctx.Tree)
	return ctx
}

type compileStage struct{ c *compiler.Compiler }

func (s compileStage) Process(ctx *Context) *Context {
	out, diags := s.c.Compile(ctx.Tree)
	ctx.Output = out
	ctx.AddDiagnostics(diags...)
	return ctx
}
