// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// This is a deliberately small slice of the original BFS: the full library
// also supports functional hooks (OnEnqueue/OnDequeue/OnVisit), depth
// limiting, neighbor filtering, and cancellation via context, none of which
// the explicit-state completeness oracle needs.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sokobdd/core"
)

// ErrWeightedGraph is returned when BFS is run on a weighted graph.
var ErrWeightedGraph = errors.New("bfs: weighted graphs not supported")

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// queueItem pairs a vertex ID with its BFS depth and its parent's ID.
type queueItem struct {
	id     string
	depth  int
	parent string // empty for root
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from startID.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrWeightedGraph for weighted graphs, or ErrNeighbors for graph failures.
func BFS(g *core.Graph, startID string) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}
	if g.Weighted() {
		return nil, ErrWeightedGraph
	}

	vertices := g.Vertices()
	n := len(vertices)
	w := &walker{
		graph:   g,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	w.enqueue(startID, 0, "")
	return w.res, w.loop()
}

// enqueue marks id visited at depth d, records its parent, and adds it to
// the queue.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d, parent: parent})
}

// loop processes the queue until empty or an error occurs.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.dequeue()
		w.res.Order = append(w.res.Order, item.id)
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops and returns the first queued item.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	return item
}

// enqueueNeighbors retrieves neighbors and enqueues each unseen one.
// Returns ErrNeighbors on lookup failure.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.id, err)
	}
	for _, nbr := range neighbors {
		if !w.visited[nbr] {
			w.enqueue(nbr, item.depth+1, item.id)
		}
	}
	return nil
}
