// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Here: an independent explicit-state oracle that cross-checks the
//     symbolic solver's reachability verdict by walking concrete puzzle
//     states one legal move at a time.
//
// Determinism
//
//	core.Graph.NeighborIDs returns neighbors in sorted order, and BFS
//	enqueues them in that order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//	result, err := bfs.BFS(g, "start")
//	if err != nil {
//	    // handle one of: ErrGraphNil, ErrStartVertexNotFound, ErrWeightedGraph, ErrNeighbors
//	}
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrWeightedGraph        if run on a weighted graph.
//   - ErrNeighbors            if NeighborIDs fails for any vertex.
package bfs
