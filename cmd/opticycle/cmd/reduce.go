package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/opticycle/annotation"
	"github.com/katalvlaran/opticycle/collab"
	"github.com/katalvlaran/opticycle/reduction"
)

var (
	reduceInput  string
	reduceOutput string
)

var reduceCmd = &cobra.Command{
	Use:   "reduce",
	Short: "Read a cubical filtration, reduce it, and search for an optimal cycle",
	Long: `reduce reads a dense cubical scalar field, derives a ring-shaped 1-skeleton sized by the field's first axis,
reduces its vertex-boundary matrix to find the unique birth of the ring's
1-cycle, runs the optimal-cycle search for that class, and writes the
resulting representative to --output in the reduction-columns binary
format.`,
	RunE: runReduce,
}

func init() {
	reduceCmd.Flags().StringVarP(&reduceInput, "input", "i", "", "path to a cubical filtration binary file (required)")
	reduceCmd.Flags().StringVarP(&reduceOutput, "output", "o", "reduction.bin", "path to write the reduced result")
	reduceCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(reduceCmd)
}

func runReduce(cmd *cobra.Command, args []string) error {
	f, err := os.Open(reduceInput)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	grid, err := (collab.CubicalBinaryReader{}).Read(f)
	if err != nil {
		return fmt.Errorf("read filtration: %w", err)
	}

	n := ringSize(grid)
	cell2v, edgeMap, boundary := buildRingComplex(n)

	reduced, err := (collab.StandardReducer{}).Reduce(boundary)
	if err != nil {
		return fmt.Errorf("reduce boundary matrix: %w", err)
	}

	birth, ok := findBirth(reduced, n)
	if !ok {
		return fmt.Errorf("ring complex of size %d produced no birth column", n)
	}

	d := reduction.New(cell2v, edgeMap, n, activeConfig)
	d.Recorder = activeRecorder

	pivot := annotation.CellId(birth)
	columns := map[annotation.CellId]annotation.Chain{pivot: ringChainEndingAt(n, birth)}

	out, errs, err := d.Run(columns, nil, 1)
	if err != nil {
		return err
	}
	for _, ce := range errs {
		return ce
	}

	outFile, err := os.Create(reduceOutput)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer outFile.Close()

	result := collab.ReductionResult{
		Low:     map[int]int{},
		Reduced: []collab.BoundaryColumn{chainToInts(out[pivot])},
	}
	writer := collab.ReductionColumnsWriter{}
	if err := writer.Write(outFile, result); err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	fmt.Printf("optimal cycle for pivot %d (ring size %d): %v\n", birth, n, out[pivot])

	return nil
}

// ringSize derives a small, tractable vertex count from the grid's first
// axis, clamped to keep the demo search fast.
func ringSize(grid *collab.CubicalGrid) int {
	n := 3
	if len(grid.Extent) > 0 {
		n = int(grid.Extent[0])
	}
	if n < 3 {
		n = 3
	}
	if n > 16 {
		n = 16
	}

	return n
}

// buildRingComplex lays out n vertices 0..n-1 in a single cycle: edge i
// connects vertex i to vertex (i+1)%n, CellId i.
func buildRingComplex(n int) (annotation.Cell2V, annotation.EdgeMap, []collab.BoundaryColumn) {
	cell2v := annotation.Cell2V{}
	edgeMap := annotation.EdgeMap{}
	boundary := make([]collab.BoundaryColumn, n)

	for i := 0; i < n; i++ {
		u, v := annotation.VertexId(i), annotation.VertexId((i+1)%n)
		id := annotation.CellId(i)
		cell2v[id] = []annotation.VertexId{u, v}
		edgeMap[annotation.NewEdgeKey(u, v)] = id

		lo, hi := int(u), int(v)
		if lo > hi {
			lo, hi = hi, lo
		}
		boundary[i] = collab.BoundaryColumn{lo, hi}
	}

	return cell2v, edgeMap, boundary
}

// findBirth returns the index of the one edge whose reduced boundary
// column is empty: the edge that closes the ring's only independent
// cycle.
func findBirth(result collab.ReductionResult, n int) (int, bool) {
	for i := 0; i < n; i++ {
		if _, ok := result.Low[i]; !ok {
			return i, true
		}
	}

	return 0, false
}

// ringChainEndingAt returns the full n-edge ring as a Chain rotated so its
// last element is birth, matching PrepareSearch's "pivot = last edge"
// convention.
func ringChainEndingAt(n, birth int) annotation.Chain {
	chain := make(annotation.Chain, n)
	for i := 0; i < n; i++ {
		chain[i] = annotation.CellId((birth + 1 + i) % n)
	}

	return chain
}

func chainToInts(c annotation.Chain) collab.BoundaryColumn {
	out := make(collab.BoundaryColumn, len(c))
	for i, id := range c {
		out[i] = int(id)
	}

	return out
}
