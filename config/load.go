package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Load reads a Config from a YAML file at path plus environment variable
// overrides (prefix OPTICYCLE_, e.g. OPTICYCLE_PERSISTENCE_THRESHOLD),
// starting from Default() and applying opts last. An empty path reads
// only the environment and defaults.
func Load(path string, opts ...Option) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("OPTICYCLE")
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("persistence_threshold", def.PersistenceThreshold)
	v.SetDefault("max_dim", def.MaxDim)
	v.SetDefault("algorithm_selector", def.AlgorithmSelector.String())
	v.SetDefault("heuristic_cache_size", def.HeuristicCacheSize)
	v.SetDefault("max_expansions", def.MaxExpansions)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%w: %v", ErrReadConfig, err)
		}
	}

	sel, err := parseSelector(v.GetString("algorithm_selector"))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		PersistenceThreshold: v.GetFloat64("persistence_threshold"),
		MaxDim:               v.GetInt("max_dim"),
		AlgorithmSelector:    sel,
		HeuristicCacheSize:   v.GetInt("heuristic_cache_size"),
		MaxExpansions:        v.GetInt("max_expansions"),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg, nil
}

func parseSelector(s string) (AlgorithmSelector, error) {
	switch s {
	case "", "astar":
		return AStar, nil
	case "exhaustive":
		return Exhaustive, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadAlgorithmSelector, s)
	}
}
