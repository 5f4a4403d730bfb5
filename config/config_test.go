package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/opticycle/config"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadAppliesOverridesOverDefaults(t *testing.T) {
	cfg, err := config.Load("", config.WithMaxDim(2), config.WithAlgorithmSelector(config.Exhaustive))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.MaxDim)
	assert.Equal(t, config.Exhaustive, cfg.AlgorithmSelector)
}

func TestWithPersistenceThresholdPanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { config.WithPersistenceThreshold(-1) })
}

func TestWithMaxDimPanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { config.WithMaxDim(0) })
}

func TestWithHeuristicCacheSizePanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { config.WithHeuristicCacheSize(0) })
}

func TestAlgorithmSelectorString(t *testing.T) {
	assert.Equal(t, "astar", config.AStar.String())
	assert.Equal(t, "exhaustive", config.Exhaustive.String())
	assert.Equal(t, "unknown", config.AlgorithmSelector(99).String())
}
