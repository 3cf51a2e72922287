package compiler

import (
	"sort"
	"strings"
)

// importSet tracks which typing/stdlib names the emitted module needs,
// filled in as compileTypeExpression and the class/enum emitters run. This
// mirrors get_typing_imports() in the original: rather than always
// emitting the full typing surface, only what the input actually exercises
// is imported.
type importSet struct {
	typing   map[string]bool
	extra    map[string]bool // typing_extensions
	needsEnum,
	needsIntEnum,
	needsDataclass,
	needsSingledispatchmethod bool
}

func newImportSet() *importSet {
	return &importSet{typing: map[string]bool{}, extra: map[string]bool{}}
}

func (s *importSet) use(name string) { s.typing[name] = true }
func (s *importSet) useExtra(name string) { s.extra[name] = true }

// render produces the import block, ordered the way the original's
// generated header reads: future-annotations, stdlib, typing, then
// typing_extensions.
func (s *importSet) render() string {
	var b strings.Builder
	b.WriteString("from __future__ import annotations\n\n")

	var stdlib []string
	if s.needsDataclass {
		stdlib = append(stdlib, "from dataclasses import dataclass")
	}
	if s.needsSingledispatchmethod {
		stdlib = append(stdlib, "from functools import singledispatchmethod")
	}
	if s.needsEnum || s.needsIntEnum {
		var names []string
		if s.needsEnum {
			names = append(names, "Enum")
		}
		if s.needsIntEnum {
			names = append(names, "IntEnum")
		}
		stdlib = append(stdlib, "from enum import "+strings.Join(names, ", "))
	}
	for _, line := range stdlib {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	if len(s.typing) > 0 {
		names := sortedKeys(s.typing)
		b.WriteString("from typing import " + strings.Join(names, ", ") + "\n")
	}
	if len(s.extra) > 0 {
		names := sortedKeys(s.extra)
		b.WriteString("from typing_extensions import " + strings.Join(names, ", ") + "\n")
	}
	return b.String()
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
