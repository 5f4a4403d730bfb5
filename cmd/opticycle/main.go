// Command opticycle is a small demonstration CLI over the optimal-cycle
// core: reduce drives the full toy pipeline (read a cubical filtration,
// reduce its boundary matrix, search for an optimal cycle representative,
// write the result), while cycle exercises the search core directly
// against a tiny inline complex.
package main

import "github.com/katalvlaran/opticycle/cmd/opticycle/cmd"

func main() {
	cmd.Execute()
}
