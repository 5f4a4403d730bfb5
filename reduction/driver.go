package reduction

import (
	"sort"

	"github.com/katalvlaran/opticycle/annotation"
	"github.com/katalvlaran/opticycle/astar"
	"github.com/katalvlaran/opticycle/collab"
	"github.com/katalvlaran/opticycle/config"
	"github.com/katalvlaran/opticycle/heuristic"
	"github.com/katalvlaran/opticycle/skeleton"
	"github.com/katalvlaran/opticycle/telemetry"
)

// Driver is the composition root of the reduction pipeline: given the
// ambient complex (its cells-to-vertices map, canonical edge lookup, and
// vertex count) and a run Config, it drives the optimal-cycle search
// over a set of reduction columns.
type Driver struct {
	Cell2V  annotation.Cell2V
	EdgeMap annotation.EdgeMap
	N       int
	Config  config.Config

	// Recorder is optional; a nil Recorder disables telemetry entirely.
	Recorder *telemetry.Recorder
}

// New returns a Driver over the given complex and configuration, with
// telemetry disabled.
func New(cell2v annotation.Cell2V, edgeMap annotation.EdgeMap, n int, cfg config.Config) *Driver {
	return &Driver{Cell2V: cell2v, EdgeMap: edgeMap, N: n, Config: cfg}
}

// Run replaces every sufficiently-persistent, non-empty reduction column
// in columns with its shortest homologous representative.
// persistence maps a column's CellId to its bar's persistence; a nil
// persistence map is treated as "every column passes the threshold".
// dim must be 1.
//
// Run never aborts on one column's failure: it collects a ColumnError per
// failed column and still returns the columns that did succeed, updated.
func (d *Driver) Run(columns map[annotation.CellId]annotation.Chain, persistence map[annotation.CellId]float64, dim int) (map[annotation.CellId]annotation.Chain, []ColumnError, error) {
	if dim != 1 {
		return nil, nil, ErrUnsupportedDimension
	}

	ids := make([]annotation.CellId, 0, len(columns))
	for id := range columns {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	resCycles := make(map[annotation.CellId]annotation.Chain, len(ids))
	var errs []ColumnError

	for _, id := range ids {
		chain := columns[id]
		if len(chain) == 0 {
			continue
		}
		if persistence != nil && persistence[id] <= d.Config.PersistenceThreshold {
			continue
		}

		result, err := d.runOne(id, chain)
		if err != nil {
			errs = append(errs, ColumnError{CellID: id, Err: err})
			if d.Recorder != nil {
				d.Recorder.SearchFailed(int(id), err)
			}

			continue
		}

		resCycles[id] = chainFromCycle(result.Cycle)
		if d.Recorder != nil {
			d.Recorder.SearchSucceeded(int(id), len(chain), len(result.Cycle), result.Expanded)
		}
	}

	out := make(map[annotation.CellId]annotation.Chain, len(columns))
	for id, c := range columns {
		out[id] = c
	}
	for id, c := range resCycles {
		out[id] = c
	}

	return out, errs, nil
}

// runOne computes annotations for the sub-complex at pivot's birth index
// and runs the optimal-cycle search for inputCycle.
func (d *Driver) runOne(pivot annotation.CellId, inputCycle annotation.Chain) (*astar.Result, error) {
	store, err := collab.ComputeEdgeAnnotations(d.Cell2V, pivot, d.N)
	if err != nil {
		return nil, err
	}

	if d.Recorder != nil {
		d.Recorder.SearchStarted(int(pivot), store.Beta())
	}

	target, err := annotation.PrepareSearch(inputCycle, d.Cell2V, d.EdgeMap, store)
	if err != nil {
		return nil, err
	}

	sk := skeleton.BuildSkeleton1(d.Cell2V, target.PivotID, d.N)

	oracle, err := d.buildOracle(store, target)
	if err != nil {
		return nil, err
	}

	return astar.Search(sk, store, oracle, d.EdgeMap, target, d.Config.MaxExpansions)
}

// buildOracle selects the heuristic-guided oracle or the zero-heuristic
// uniform-cost substitute, per Config.AlgorithmSelector.
func (d *Driver) buildOracle(store *annotation.Store, target annotation.Target) (astar.Heuristic, error) {
	if d.Config.AlgorithmSelector == config.Exhaustive {
		return zeroHeuristic{}, nil
	}

	beta := store.Beta()
	covers := make([]*skeleton.CoveringGraph, beta)
	for i := 0; i < beta; i++ {
		bit := func(coord int) skeleton.CoordBit {
			return func(key annotation.EdgeKey) bool { return store.Get(key).Get(coord) }
		}(i)
		covers[i] = skeleton.BuildCoveringGraph(d.Cell2V, target.PivotID, d.N, bit)
	}

	return heuristic.New(covers, d.N, target.Dest, target.Tau, d.Config.HeuristicCacheSize)
}

func chainFromCycle(cycle []annotation.CellId) annotation.Chain {
	out := make(annotation.Chain, len(cycle))
	copy(out, cycle)

	return out
}
