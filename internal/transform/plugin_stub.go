//go:build !linux && !darwin

package transform

import "fmt"

func LoadPlugins(paths []string) error {
	for _, p := range paths {
		if p != "" {
			return fmt.Errorf("cannot load plugin %s: plugins are only supported on linux and darwin", p)
		}
	}
	return nil
}
