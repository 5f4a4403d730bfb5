package config

// AlgorithmSelector chooses which subsystem reduction.Driver dispatches an
// optimal-cycle search to, mirroring "algorithm_selector: 0
// for the A*-based core, 1 for a different subsystem".
type AlgorithmSelector int

const (
	// AStar runs the astar package's heuristic-guided search (the default
	// and the subject of this repository's core).
	AStar AlgorithmSelector = iota

	// Exhaustive runs the same engine with a zero heuristic, degrading it
	// to plain uniform-cost search — a slower, independently-reasoned
	// cross-check rather than a second implementation of the search loop.
	Exhaustive
)

// String renders the selector for logging and flag help text.
func (a AlgorithmSelector) String() string {
	switch a {
	case AStar:
		return "astar"
	case Exhaustive:
		return "exhaustive"
	default:
		return "unknown"
	}
}

// Config is the explicit configuration record for one reduction run,
// passed as a parameter rather than referenced as a global singleton.
type Config struct {
	// PersistenceThreshold discards bars with persistence at or below this
	// value before the driver runs the optimal-cycle search on them.
	PersistenceThreshold float64

	// MaxDim is carried for caller-side dispatch only; the optimal-cycle
	// core always operates on dimension 1.
	MaxDim int

	// AlgorithmSelector chooses the A* engine or the exhaustive
	// cross-check.
	AlgorithmSelector AlgorithmSelector

	// HeuristicCacheSize bounds the heuristic oracle's top-level (v,s) → h
	// LRU memo.
	HeuristicCacheSize int

	// MaxExpansions bounds astar.Search's expansion count; 0 means
	// astar.DefaultMaxExpansions.
	MaxExpansions int
}

// Option is a functional option over Config: invalid arguments panic at
// construction rather than surfacing as a runtime error deep in the
// driver.
type Option func(*Config)

// WithPersistenceThreshold sets the persistence threshold: the driver
// acts only on bars whose persistence exceeds it. Panics on a negative
// threshold.
func WithPersistenceThreshold(t float64) Option {
	if t < 0 {
		panic(ErrBadPersistenceThreshold.Error())
	}

	return func(c *Config) { c.PersistenceThreshold = t }
}

// WithMaxDim sets the dimension the caller's pipeline dispatches at.
// Panics on a non-positive dimension.
func WithMaxDim(d int) Option {
	if d <= 0 {
		panic(ErrBadMaxDim.Error())
	}

	return func(c *Config) { c.MaxDim = d }
}

// WithAlgorithmSelector chooses between AStar and Exhaustive.
func WithAlgorithmSelector(sel AlgorithmSelector) Option {
	return func(c *Config) { c.AlgorithmSelector = sel }
}

// WithHeuristicCacheSize sets the oracle's top-level memo size. Panics on
// a non-positive size.
func WithHeuristicCacheSize(n int) Option {
	if n <= 0 {
		panic(ErrBadHeuristicCacheSize.Error())
	}

	return func(c *Config) { c.HeuristicCacheSize = n }
}

// WithMaxExpansions sets astar.Search's expansion bound. 0 means
// astar.DefaultMaxExpansions.
func WithMaxExpansions(n int) Option {
	return func(c *Config) { c.MaxExpansions = n }
}

// Default returns a Config with sensible defaults: no persistence
// filtering, dimension 1, the A* engine, a modest heuristic cache, and no
// explicit expansion bound.
func Default() Config {
	return Config{
		PersistenceThreshold: 0,
		MaxDim:               1,
		AlgorithmSelector:    AStar,
		HeuristicCacheSize:   4096,
		MaxExpansions:        0,
	}
}
