package compiler

import "strings"

// pythonKeywords lists reserved words that cannot be used as Python
// identifiers verbatim; the original appends a trailing underscore to any
// colliding name (`to_varname`/`to_typename` in compiler.py).
var pythonKeywords = map[string]bool{
	"False": true, "None": true, "True": true, "and": true, "as": true,
	"assert": true, "async": true, "await": true, "break": true, "class": true,
	"continue": true, "def": true, "del": true, "elif": true, "else": true,
	"except": true, "finally": true, "for": true, "from": true, "global": true,
	"if": true, "import": true, "in": true, "is": true, "lambda": true,
	"nonlocal": true, "not": true, "or": true, "pass": true, "raise": true,
	"return": true, "try": true, "while": true, "with": true, "yield": true,
}

// toVarName returns a Python-safe identifier for a value-level name
// (property, argument, const, enum member).
func toVarName(name string) string {
	last := lastDottedSegment(name)
	if pythonKeywords[last] {
		return last + "_"
	}
	return last
}

// toTypeName returns a Python-safe identifier for a type-level name
// (interface, type alias, class). Dotted TypeScript names (A.B.C) collapse
// to their final segment, matching how the original renders a nested
// namespace member as a flat Python class name.
func toTypeName(name string) string {
	last := lastDottedSegment(name)
	if pythonKeywords[last] {
		return last + "_"
	}
	return last
}

func lastDottedSegment(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}
