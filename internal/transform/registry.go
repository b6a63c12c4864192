package transform

import (
	"fmt"
	"strings"
	"sync"

	"github.com/dyne/strtasks/internal/config"
)

type PluginFunc func(value string) (string, error)

type Factory func(cfg *config.StepConfig) (Transformer, error)

var (
	mu       sync.RWMutex
	registry = map[string]Factory{}
)

// Register adds or replaces a transformer type. Registered types take
// precedence over built-ins of the same name.
func Register(name string, factory Factory) {
	if name == "" || factory == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(name)] = factory
}

func lookup(key string) (Factory, bool) {
	mu.RLock()
	defer mu.RUnlock()
	f, ok := registry[key]
	return f, ok
}

func registeredNames() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	return out
}

func registerPlugin(name string, fn PluginFunc) {
	Register(name, func(cfg *config.StepConfig) (Transformer, error) {
		return &PluginTransformer{name: name, fn: fn}, nil
	})
}

type PluginTransformer struct {
	name string
	fn   PluginFunc
}

func (t *PluginTransformer) Name() string { return t.name }

func (t *PluginTransformer) Transform(value string) (string, error) {
	if t.fn == nil {
		return "", fmt.Errorf("plugin transformer %s not initialized", t.name)
	}
	return t.fn(value)
}
