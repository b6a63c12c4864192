package transform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
)

// Plugin files may carry a platform suffix: name.<goos>.<goarch>.so,
// name.<goarch>.so or plain name.so.
var (
	knownGOOS = map[string]bool{
		"aix": true, "android": true, "darwin": true, "dragonfly": true, "freebsd": true,
		"illumos": true, "ios": true, "js": true, "linux": true, "netbsd": true,
		"openbsd": true, "plan9": true, "solaris": true, "wasip1": true, "windows": true,
	}
	knownGOARCH = map[string]bool{
		"386": true, "amd64": true, "arm": true, "arm64": true, "loong64": true,
		"mips": true, "mipsle": true, "mips64": true, "mips64le": true, "ppc64": true,
		"ppc64le": true, "riscv64": true, "s390x": true, "wasm": true,
	}
)

type platform struct {
	os   string
	arch string
}

var hostPlatform = platform{os: runtime.GOOS, arch: runtime.GOARCH}

// pluginFile is a .so name split into its stem and optional platform tags.
type pluginFile struct {
	stem string
	os   string
	arch string
}

func parsePluginName(name string) (pluginFile, bool) {
	base, ok := strings.CutSuffix(name, ".so")
	if !ok || base == "" {
		return pluginFile{}, false
	}
	parts := strings.Split(base, ".")
	n := len(parts)
	if n >= 3 && knownGOOS[parts[n-2]] && knownGOARCH[parts[n-1]] {
		return pluginFile{stem: strings.Join(parts[:n-2], "."), os: parts[n-2], arch: parts[n-1]}, true
	}
	if n >= 2 && knownGOARCH[parts[n-1]] {
		return pluginFile{stem: strings.Join(parts[:n-1], "."), arch: parts[n-1]}, true
	}
	return pluginFile{stem: base}, true
}

// rank orders candidates for one stem; 0 means the file targets another platform.
func (f pluginFile) rank(host platform) int {
	if f.os != "" && f.os != host.os {
		return 0
	}
	if f.arch != "" && f.arch != host.arch {
		return 0
	}
	switch {
	case f.os != "":
		return 3
	case f.arch != "":
		return 2
	default:
		return 1
	}
}

func resolvePluginPaths(path string) ([]string, error) {
	return resolvePluginPathsFor(path, hostPlatform)
}

func resolvePluginPathsFor(path string, host platform) ([]string, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return resolvePluginsInDir(path, host)
	}
	if fileExists(path) {
		return []string{path}, nil
	}
	base := strings.TrimSuffix(path, ".so")
	candidates := []string{
		fmt.Sprintf("%s.%s.%s.so", base, host.os, host.arch),
		fmt.Sprintf("%s.%s.so", base, host.arch),
	}
	for _, cand := range candidates {
		if fileExists(cand) {
			return []string{cand}, nil
		}
	}
	return nil, fmt.Errorf("plugin not found: %s (tried %s)", path, strings.Join(candidates, ", "))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// resolvePluginsInDir picks, per stem, the most specific plugin built for
// host and skips files tagged for other platforms.
func resolvePluginsInDir(dir string, host platform) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read plugin dir %s: %w", dir, err)
	}
	type choice struct {
		name string
		rank int
	}
	best := map[string]choice{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		pf, ok := parsePluginName(entry.Name())
		if !ok {
			continue
		}
		r := pf.rank(host)
		if r == 0 {
			continue
		}
		if cur, seen := best[pf.stem]; !seen || r > cur.rank {
			best[pf.stem] = choice{name: entry.Name(), rank: r}
		}
	}
	matches := make([]string, 0, len(best))
	for _, c := range best {
		matches = append(matches, filepath.Join(dir, c.name))
	}
	sort.Strings(matches)
	if len(matches) == 0 {
		return nil, fmt.Errorf("no plugins for %s/%s found in %s", host.os, host.arch, dir)
	}
	return matches, nil
}
