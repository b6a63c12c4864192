//go:build linux || darwin

package transform

import (
	"fmt"
	"plugin"
)

// LoadPlugins opens each .so (or the host's plugins in a directory) and
// registers the transformers it exports.
func LoadPlugins(paths []string) error {
	for _, path := range paths {
		if path == "" {
			continue
		}
		resolved, err := resolvePluginPaths(path)
		if err != nil {
			return err
		}
		for _, pluginPath := range resolved {
			p, err := plugin.Open(pluginPath)
			if err != nil {
				return fmt.Errorf("open plugin %s: %w", pluginPath, err)
			}
			sym, err := p.Lookup("Transformers")
			if err != nil {
				return fmt.Errorf("plugin %s: missing Transformers symbol", pluginPath)
			}
			if err := registerPluginSymbol(pluginPath, sym); err != nil {
				return err
			}
		}
	}
	return nil
}

// registerPluginSymbol accepts the exported Transformers map either by
// value or through the pointer plugin.Lookup returns for variables.
func registerPluginSymbol(path string, sym any) error {
	switch v := sym.(type) {
	case map[string]func(string) (string, error):
		for name, fn := range v {
			registerPlugin(name, fn)
		}
		return nil
	case *map[string]func(string) (string, error):
		for name, fn := range *v {
			registerPlugin(name, fn)
		}
		return nil
	default:
		return fmt.Errorf("plugin %s: Transformers has incompatible type %T", path, sym)
	}
}
