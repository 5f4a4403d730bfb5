package config

import "errors"

// Sentinel errors returned by Load, and whose messages the WithX option
// constructors panic with.
var (
	// ErrBadPersistenceThreshold indicates a negative PersistenceThreshold.
	ErrBadPersistenceThreshold = errors.New("config: PersistenceThreshold must be non-negative")

	// ErrBadMaxDim indicates a non-positive MaxDim.
	ErrBadMaxDim = errors.New("config: MaxDim must be positive")

	// ErrBadHeuristicCacheSize indicates a non-positive HeuristicCacheSize.
	ErrBadHeuristicCacheSize = errors.New("config: HeuristicCacheSize must be positive")

	// ErrBadAlgorithmSelector indicates a value outside the AStar/Exhaustive
	// enumeration.
	ErrBadAlgorithmSelector = errors.New("config: unknown AlgorithmSelector")

	// ErrReadConfig wraps an underlying viper error encountered while
	// reading a configuration source.
	ErrReadConfig = errors.New("config: failed to read configuration")
)
