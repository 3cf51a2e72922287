// Package diagnostics carries first-class error/warning values through the
// compilation pipeline. Nothing in this module panics on a malformed input;
// every stage appends a *Diagnostic to the running context and continues,
// mirroring the accumulate-don't-raise convention of the teacher codebase's
// tygorgen/ir.Warning / Schema.AddWarning: a schema build collects non-fatal
// findings as data rather than returning early on the first one, and an
// Emitter's EmitType methods return ([]ir.Warning, error) rather than
// panicking on an unsupported descriptor kind.
package diagnostics

import (
	"fmt"

	"github.com/thelicato/ts2py-go/internal/token"
)

// Severity ranks how a Diagnostic should affect the run.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
	Fatal
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Fatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Code is a stable, stage-prefixed error identifier: L### lexer, P### parser,
// C### compiler, plus the two codes the spec requires at minimum.
type Code string

const (
	NotYetImplemented Code = "310"
	Unsupported       Code = "320"

	ErrL001 Code = "L001" // unterminated string literal
	ErrL002 Code = "L002" // illegal character

	ErrP001 Code = "P001" // unexpected token
	ErrP002 Code = "P002" // expected token missing, resumed
	ErrP003 Code = "P003" // multiple declare module blocks
	ErrP004 Code = "P004" // intersection type

	ErrC001 Code = "C001" // malformed AST node reached the compiler
	ErrC002 Code = "C002" // restricted generic (extends/= in type parameter)
)

// Diagnostic is one accumulated finding from any pipeline stage.
type Diagnostic struct {
	Code     Code
	Message  string
	Severity Severity
	Pos      token.Position
	File     string
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s [%s] %s", d.File, d.Pos.Line, d.Pos.Column, d.Severity, d.Code, d.Message)
}

// New builds a Diagnostic at Error severity (the common case for parser and
// compiler findings).
func New(code Code, pos token.Position, message string) *Diagnostic {
	return &Diagnostic{Code: code, Message: message, Severity: Error, Pos: pos}
}

// Newf is New with fmt.Sprintf-style formatting.
func Newf(code Code, pos token.Position, format string, args ...any) *Diagnostic {
	return New(code, pos, fmt.Sprintf(format, args...))
}

// Warningf builds a Warning-severity Diagnostic.
func Warningf(code Code, pos token.Position, format string, args ...any) *Diagnostic {
	d := Newf(code, pos, format, args...)
	d.Severity = Warning
	return d
}

// HasFatal reports whether any diagnostic in the slice is Fatal.
func HasFatal(diags []*Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == Fatal {
			return true
		}
	}
	return false
}

// HasErrors reports whether any diagnostic is at least Error severity.
func HasErrors(diags []*Diagnostic) bool {
	for _, d := range diags {
		if d.Severity >= Error {
			return true
		}
	}
	return false
}
