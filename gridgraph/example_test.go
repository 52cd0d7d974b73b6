// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/sokobdd/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_ConnectedComponents demonstrates how to identify
// contiguous “islands” of same-valued cells in a 2D grid.
// Scenario:
//
//   - Grid values: 0 = water, 1,2,3 = different land/resource IDs
//   - Conn4: 4-directional adjacency (N/E/S/W)
//   - Expect one island per distinct land value.
//
// Complexity: O(W·H·4), Memory: O(W·H)
func ExampleGridGraph_ConnectedComponents() {
	grid := [][]int{
		{0, 1, 1, 0, 2},
		{1, 1, 0, 2, 2},
		{3, 0, 2, 2, 0},
	}
	gg, _ := gridgraph.NewGridGraph(grid, gridgraph.GridOptions{LandThreshold: 1, Conn: gridgraph.Conn4})

	comps := gg.ConnectedComponents()
	values := make([]int, 0, len(comps))
	for v := range comps {
		values = append(values, v)
	}
	sort.Ints(values)

	for _, v := range values {
		for _, island := range comps[v] {
			fmt.Printf("value %d:", v)
			for _, c := range island {
				fmt.Printf(" (%d,%d)", c.X, c.Y)
			}
			fmt.Println()
		}
	}

	// Output:
	// value 1: (1,0) (2,0) (1,1) (0,1)
	// value 2: (4,0) (4,1) (3,1) (3,2) (2,2)
	// value 3: (0,2)
}

////////////////////////////////////////////////////////////////////////////////
// Example: ExpandIsland
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_ExpandIsland demonstrates computing the minimal
// water‐cell conversions to connect two islands in the grid.
// Scenario:
//
//   - Same grid and Conn4 as above.
//   - Connect the value-1 island to the value-2 island.
//   - Each water cell converted costs 1, each land cell crossed costs 0.
//
// Complexity: O(W·H) on average, Memory: O(W·H)
func ExampleGridGraph_ExpandIsland() {
	grid := [][]int{
		{0, 1, 1, 0, 2},
		{1, 1, 0, 2, 2},
		{3, 0, 2, 2, 0},
	}
	gg, _ := gridgraph.NewGridGraph(grid, gridgraph.GridOptions{LandThreshold: 1, Conn: gridgraph.Conn4})

	comps := gg.ConnectedComponents()
	path, cost, _ := gg.ExpandIsland(comps[1][0], comps[2][0])

	fmt.Printf("Convert %d water cells along path:\n", cost)
	for _, c := range path {
		fmt.Printf("(%d,%d) ", c.X, c.Y)
	}
	fmt.Println()
	// Output:
	// Convert 1 water cells along path:
	// (0,1) (0,2) (1,2) (2,2)
}
