package config_test

import (
	"testing"

	"github.com/spf13/viper"

	"github.com/thelicato/ts2py-go/internal/config"
)

func TestDefault_EnablesEveryPepTheNewestTierSupports(t *testing.T) {
	cfg := config.Default()
	if cfg.Compatibility != config.Py311 {
		t.Fatalf("expected default compatibility 3.11, got %s", cfg.Compatibility)
	}
	want := map[config.PEP]bool{config.PEP435: true, config.PEP604: true, config.PEP655: true}
	if len(cfg.Peps) != len(want) {
		t.Fatalf("expected %d default PEPs, got %d", len(want), len(cfg.Peps))
	}
	for _, p := range cfg.Peps {
		if !want[p] {
			t.Fatalf("unexpected default PEP %s", p)
		}
	}
}

func TestCompilerConfig_Pep604InvertsUseTypeUnion(t *testing.T) {
	cc := config.Default().CompilerConfig()
	if cc.UseTypeUnion {
		t.Fatalf("expected PEP 604 to disable typing.Union in favor of '|' syntax")
	}
	if !cc.UseEnum {
		t.Fatalf("expected PEP 435 to enable Enum emission")
	}
	if !cc.UseNotRequired {
		t.Fatalf("expected PEP 655 to enable NotRequired")
	}
}

func TestCompilerConfig_NoPepsDisablesTheirFeatures(t *testing.T) {
	cfg := config.Config{Compatibility: config.Py36}
	cc := cfg.CompilerConfig()
	if cc.UseEnum || cc.UseNotRequired {
		t.Fatalf("expected no PEP-gated features enabled, got %+v", cc)
	}
	if !cc.UseTypeUnion {
		t.Fatalf("expected typing.Union fallback when PEP 604 is absent")
	}
}

func TestCompilerConfig_DefaultsBaseClassNameToTypedDict(t *testing.T) {
	cfg := config.Config{Compatibility: config.Py311}
	if got := cfg.CompilerConfig().BaseClassName; got != "TypedDict" {
		t.Fatalf("expected TypedDict base class, got %q", got)
	}
}

func TestLoad_ValidatesCompatibility(t *testing.T) {
	v := viper.New()
	v.Set("compatibility", "2.7")
	if _, err := config.Load(v); err == nil {
		t.Fatalf("expected validation error for an unsupported compatibility tier")
	}
}

func TestLoad_AcceptsExplicitFlagValues(t *testing.T) {
	v := viper.New()
	v.Set("compatibility", "3.9")
	v.Set("peps", []string{"435"})
	v.Set("base", "BaseModel")

	cfg, err := config.Load(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Compatibility != config.Py39 {
		t.Fatalf("expected compatibility 3.9, got %s", cfg.Compatibility)
	}
	if cfg.BaseClassName != "BaseModel" {
		t.Fatalf("expected base class override, got %q", cfg.BaseClassName)
	}
	if len(cfg.Peps) != 1 || cfg.Peps[0] != config.PEP435 {
		t.Fatalf("expected only PEP 435 set, got %v", cfg.Peps)
	}
}
