package diagnostics_test

import (
	"strings"
	"testing"

	"github.com/thelicato/ts2py-go/internal/diagnostics"
	"github.com/thelicato/ts2py-go/internal/token"
)

func TestNewf_FormatsMessage(t *testing.T) {
	d := diagnostics.Newf(diagnostics.ErrP001, token.Position{Line: 3, Column: 4}, "unexpected %q", "}")
	if d.Severity != diagnostics.Error {
		t.Fatalf("expected Error severity, got %v", d.Severity)
	}
	if !strings.Contains(d.Message, `unexpected "}"`) {
		t.Fatalf("unexpected message: %s", d.Message)
	}
	if !strings.Contains(d.Error(), "3:4") {
		t.Fatalf("Error() should mention position, got %s", d.Error())
	}
}

func TestWarningf_SetsWarningSeverity(t *testing.T) {
	d := diagnostics.Warningf(diagnostics.ErrP004, token.Position{}, "approximated")
	if d.Severity != diagnostics.Warning {
		t.Fatalf("expected Warning severity, got %v", d.Severity)
	}
}

func TestHasFatalAndHasErrors(t *testing.T) {
	diags := []*diagnostics.Diagnostic{
		diagnostics.Warningf(diagnostics.ErrP001, token.Position{}, "w"),
	}
	if diagnostics.HasFatal(diags) {
		t.Fatalf("no fatal diagnostics present")
	}
	if diagnostics.HasErrors(diags) {
		t.Fatalf("warnings alone should not count as errors")
	}
	diags = append(diags, diagnostics.New(diagnostics.ErrC001, token.Position{}, "e"))
	if !diagnostics.HasErrors(diags) {
		t.Fatalf("expected HasErrors to be true once an Error-severity diagnostic is present")
	}
}
