package transform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var testHost = platform{os: "linux", arch: "amd64"}

func writePluginFiles(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, n := range names {
		if err := os.WriteFile(filepath.Join(dir, n), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func baseNames(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = filepath.Base(p)
	}
	return out
}

func TestResolvePluginsInMixedDir(t *testing.T) {
	dir := writePluginFiles(t,
		"a.linux.amd64.so",
		"a.so",
		"a.windows.amd64.so",
		"b.amd64.so",
		"b.linux.arm64.so",
		"c.so",
		"d.darwin.arm64.so",
		"e.mips.so",
		"notes.txt",
		".so",
	)
	got, err := resolvePluginPathsFor(dir, testHost)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a.linux.amd64.so", "b.amd64.so", "c.so"}
	if diff := cmp.Diff(want, baseNames(got)); diff != "" {
		t.Fatalf("resolved plugins mismatch (-want +got):\n%s", diff)
	}
}

func TestResolvePluginsForeignOnly(t *testing.T) {
	dir := writePluginFiles(t, "x.windows.mips.so", "y.arm64.so")
	if got, err := resolvePluginPathsFor(dir, testHost); err == nil {
		t.Fatalf("expected error, got %v", got)
	}
}

func TestResolvePluginFile(t *testing.T) {
	dir := writePluginFiles(t, "a.linux.amd64.so", "b.amd64.so", "plain.so")

	got, err := resolvePluginPathsFor(filepath.Join(dir, "a.so"), testHost)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a.linux.amd64.so"}, baseNames(got)); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	got, err = resolvePluginPathsFor(filepath.Join(dir, "b"), testHost)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"b.amd64.so"}, baseNames(got)); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	if _, err := resolvePluginPathsFor(filepath.Join(dir, "plain.so"), testHost); err != nil {
		t.Fatal(err)
	}
	if _, err := resolvePluginPathsFor(filepath.Join(dir, "missing.so"), testHost); err == nil {
		t.Fatal("expected error for missing plugin")
	}
}

func TestParsePluginName(t *testing.T) {
	cases := map[string]pluginFile{
		"rev.so":                 {stem: "rev"},
		"rev.linux.amd64.so":     {stem: "rev", os: "linux", arch: "amd64"},
		"rev.arm64.so":           {stem: "rev", arch: "arm64"},
		"my.rev.v2.so":           {stem: "my.rev.v2"},
		"my.rev.darwin.arm64.so": {stem: "my.rev", os: "darwin", arch: "arm64"},
	}
	for name, want := range cases {
		got, ok := parsePluginName(name)
		if !ok || got != want {
			t.Fatalf("parsePluginName(%q) = %+v, %v; want %+v", name, got, ok, want)
		}
	}
	for _, name := range []string{".so", "rev.dll", "rev"} {
		if _, ok := parsePluginName(name); ok {
			t.Fatalf("parsePluginName(%q) accepted", name)
		}
	}
}

func TestLoadPluginsEmpty(t *testing.T) {
	if err := LoadPlugins(nil); err != nil {
		t.Fatalf("LoadPlugins(nil): %v", err)
	}
	if err := LoadPlugins([]string{""}); err != nil {
		t.Fatalf("LoadPlugins(empty path): %v", err)
	}
}
