package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "steps.yaml")
	data := []byte(`steps:
  - type: trim
  - type: removefirst
    value: "not"
  - type: repeat
    count: 2
  - type: upper
    params:
      note: shout
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := &Config{Steps: []*StepConfig{
		{Type: "trim"},
		{Type: "removefirst", Value: "not"},
		{Type: "repeat", Count: 2},
		{Type: "upper", Params: map[string]any{"note": "shout"}},
	}}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Steps) != 0 {
		t.Fatalf("expected no steps, got %d", len(cfg.Steps))
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
	if _, err := Parse([]byte("steps: [")); err == nil {
		t.Fatal("expected parse error")
	}
	if _, err := Parse([]byte("steps:\n  - value: x\n")); err == nil {
		t.Fatal("expected error for step without type")
	}
}

func TestFromTypes(t *testing.T) {
	cfg := FromTypes([]string{"trim", "", "rot13"})
	want := &Config{Steps: []*StepConfig{{Type: "trim"}, {Type: "rot13"}}}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}
