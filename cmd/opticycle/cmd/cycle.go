package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/opticycle/annotation"
	"github.com/katalvlaran/opticycle/reduction"
)

var cycleCmd = &cobra.Command{
	Use:   "cycle",
	Short: "Run the optimal-cycle core against a small built-in triangle complex",
	Long: `cycle builds a tiny inline 1-skeleton (a triangle: vertices 0,1,2)
and asks the search core for the shortest representative of the cycle
0-1-2-0, bypassing any filtration file entirely. It exists to exercise the
core directly, the way the reduction package's triangle tests do, but from
the command line.`,
	RunE: runCycle,
}

func init() {
	rootCmd.AddCommand(cycleCmd)
}

func runCycle(cmd *cobra.Command, args []string) error {
	cell2v := annotation.Cell2V{
		0: {0, 1},
		1: {1, 2},
		2: {0, 2},
	}
	edgeMap := annotation.EdgeMap{}
	for id, vs := range cell2v {
		edgeMap[annotation.NewEdgeKey(vs[0], vs[1])] = id
	}

	d := reduction.New(cell2v, edgeMap, 3, activeConfig)
	d.Recorder = activeRecorder

	columns := map[annotation.CellId]annotation.Chain{2: {0, 1, 2}}
	out, errs, err := d.Run(columns, nil, 1)
	if err != nil {
		return err
	}
	for _, ce := range errs {
		return ce
	}

	fmt.Printf("optimal cycle for pivot 2: %v\n", out[2])

	return nil
}
