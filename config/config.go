package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/theptrk/ortools-scheduling/core/metrics"
	"github.com/theptrk/ortools-scheduling/core/roster"
)

// Config is the full process configuration.
type Config struct {
	Roster  roster.Config  `json:"roster"`
	Solve   SolveConfig    `json:"solve"`
	Metrics metrics.Config `json:"metrics"`
}

// Load reads the configuration from a JSON or YAML file, applies
// ROSTER_-prefixed environment overrides and validates the result.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("ROSTER_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "roster_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Solve.SetDefaults()
	if err := cfg.Solve.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Roster.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
