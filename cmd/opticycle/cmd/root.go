package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/opticycle/config"
	"github.com/katalvlaran/opticycle/telemetry"
)

var (
	configPath           string
	persistenceThreshold float64
	algorithmSelector    string
	heuristicCacheSize   int
	maxExpansions        int
	threads              int // accepted and recorded, never dispatched: search is single-threaded
	verbose              bool

	activeConfig   config.Config
	activeRecorder *telemetry.Recorder
)

var rootCmd = &cobra.Command{
	Use:   "opticycle",
	Short: "Optimal-cycle search over a persistent-homology filtration",
	Long: `opticycle finds the shortest cycle representative of a persistent
1-dimensional homology class, using an A*-guided search over a vertex ×
annotation product space.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		opts := []config.Option{
			config.WithPersistenceThreshold(persistenceThreshold),
			config.WithHeuristicCacheSize(heuristicCacheSize),
			config.WithMaxExpansions(maxExpansions),
		}

		sel, err := parseAlgorithmFlag(algorithmSelector)
		if err != nil {
			return err
		}
		opts = append(opts, config.WithAlgorithmSelector(sel))

		cfg, err := config.Load(configPath, opts...)
		if err != nil {
			return err
		}
		activeConfig = cfg

		w := os.Stdout
		if !verbose {
			activeRecorder = telemetry.New(os.Stderr)
		} else {
			activeRecorder = telemetry.New(w)
		}

		return nil
	},
}

// Execute runs the root command, exiting the process with status 1 on
// failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML configuration file (optional)")
	rootCmd.PersistentFlags().Float64Var(&persistenceThreshold, "persistence-threshold", 0, "discard bars at or below this persistence")
	rootCmd.PersistentFlags().StringVar(&algorithmSelector, "algorithm", "astar", "search algorithm: astar or exhaustive")
	rootCmd.PersistentFlags().IntVar(&heuristicCacheSize, "heuristic-cache-size", 4096, "oracle (v,s) -> h memo size")
	rootCmd.PersistentFlags().IntVar(&maxExpansions, "max-expansions", 0, "expansion bound; 0 means the engine default")
	rootCmd.PersistentFlags().IntVar(&threads, "threads", 1, "accepted for compatibility; the search core is single-threaded")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "emit telemetry to stdout instead of stderr")
}

func parseAlgorithmFlag(s string) (config.AlgorithmSelector, error) {
	switch s {
	case "astar", "":
		return config.AStar, nil
	case "exhaustive":
		return config.Exhaustive, nil
	default:
		return 0, fmt.Errorf("unknown --algorithm %q (valid: astar, exhaustive)", s)
	}
}
