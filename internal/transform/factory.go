package transform

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/dyne/strtasks/internal/config"
)

var builtins = map[string]Factory{
	"rot13":       func(*config.StepConfig) (Transformer, error) { return Rot13(), nil },
	"upper":       func(*config.StepConfig) (Transformer, error) { return Upper(), nil },
	"trim":        func(*config.StepConfig) (Transformer, error) { return Trim(), nil },
	"unbracket":   func(*config.StepConfig) (Transformer, error) { return Unbracket(), nil },
	"extractname": func(*config.StepConfig) (Transformer, error) { return ExtractName(), nil },
	"firstchar":   func(*config.StepConfig) (Transformer, error) { return FirstChar(), nil },
	"length":      func(*config.StepConfig) (Transformer, error) { return Length(), nil },
	"emails":      func(*config.StepConfig) (Transformer, error) { return Emails(), nil },
	"cardid":      func(*config.StepConfig) (Transformer, error) { return CardID(), nil },
	"removefirst": func(cfg *config.StepConfig) (Transformer, error) {
		if cfg.Value == "" {
			return nil, fmt.Errorf("removefirst: value is required")
		}
		return NewRemoveFirst(cfg.Value), nil
	},
	"repeat": func(cfg *config.StepConfig) (Transformer, error) {
		count := cfg.Count
		if v, ok := cfg.Params["count"]; ok {
			iv, ok := asInt(v)
			if !ok {
				return nil, fmt.Errorf("repeat: count must be a whole number, got %v", v)
			}
			count = iv
		}
		if count < 0 {
			return nil, fmt.Errorf("repeat: count must not be negative, got %d", count)
		}
		return NewRepeat(count), nil
	},
	"concat": func(cfg *config.StepConfig) (Transformer, error) { return NewConcat(cfg.Value), nil },
	"greeting": func(cfg *config.StepConfig) (Transformer, error) {
		if cfg.Value == "" {
			return nil, fmt.Errorf("greeting: value (last name) is required")
		}
		return NewGreeting(cfg.Value), nil
	},
}

func Build(cfg *config.StepConfig) (Transformer, error) {
	if cfg == nil {
		return nil, nil
	}
	key := strings.ToLower(cfg.Type)
	if factory, ok := lookup(key); ok {
		return factory(cfg)
	}
	if factory, ok := builtins[key]; ok {
		return factory(cfg)
	}
	return nil, fmt.Errorf("unknown transformer type: %s", cfg.Type)
}

// Names lists every built-in and registered transformer type, sorted.
func Names() []string {
	seen := make(map[string]bool, len(builtins))
	for name := range builtins {
		seen[name] = true
	}
	for _, name := range registeredNames() {
		seen[name] = true
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// asInt accepts YAML numbers that hold a whole value representable as int.
func asInt(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		if t < math.MinInt || t > math.MaxInt {
			return 0, false
		}
		return int(t), true
	case uint64:
		if t > math.MaxInt {
			return 0, false
		}
		return int(t), true
	case float64:
		return floatToInt(t)
	case float32:
		return floatToInt(float64(t))
	default:
		return 0, false
	}
}

func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt || f >= math.MaxInt {
		return 0, false
	}
	return int(f), true
}
