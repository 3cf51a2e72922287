package token_test

import (
	"testing"

	"github.com/thelicato/ts2py-go/internal/token"
)

func TestLookupIdent(t *testing.T) {
	cases := map[string]token.Type{
		"interface": token.INTERFACE,
		"enum":      token.ENUM,
		"readonly":  token.READONLY,
		"keyof":     token.KEYOF,
		"foo":       token.IDENT,
		"Interface": token.IDENT, // keywords are case-sensitive
	}
	for in, want := range cases {
		if got := token.LookupIdent(in); got != want {
			t.Errorf("LookupIdent(%q) = %v, want %v", in, got, want)
		}
	}
}
