package bfs_test

import (
	"testing"

	"github.com/katalvlaran/sokobdd/bfs"
	"github.com/katalvlaran/sokobdd/core"
	"github.com/stretchr/testify/require"
)

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "a")
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	require.NoError(t, g.AddVertex("a"))
	_, err = bfs.BFS(g, "ghost")
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}

func TestBFS_SimpleTraversal(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("a", "b", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("b", "c", 0)
	require.NoError(t, err)

	result, err := bfs.BFS(g, "a")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, result.Order)
	require.Equal(t, 0, result.Depth["a"])
	require.Equal(t, 1, result.Depth["b"])
	require.Equal(t, 2, result.Depth["c"])
}

func TestBFS_Disconnected(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("isolated"))

	result, err := bfs.BFS(g, "a")
	require.NoError(t, err)
	require.Equal(t, []string{"a"}, result.Order)
	require.NotContains(t, result.Depth, "isolated")
}

func TestBFS_DiamondDedup(t *testing.T) {
	// a -> b, a -> c, b -> d, c -> d: d must be visited exactly once.
	g := core.NewGraph(core.WithDirected(true))
	for _, e := range [][2]string{{"a", "b"}, {"a", "c"}, {"b", "d"}, {"c", "d"}} {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}

	result, err := bfs.BFS(g, "a")
	require.NoError(t, err)
	count := 0
	for _, id := range result.Order {
		if id == "d" {
			count++
		}
	}
	require.Equal(t, 1, count)
	require.Equal(t, 2, result.Depth["d"])
}

func TestBFS_PathTo(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("a", "b", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("b", "c", 0)
	require.NoError(t, err)

	result, err := bfs.BFS(g, "a")
	require.NoError(t, err)

	path, err := result.PathTo("c")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, path)

	_, err = result.PathTo("ghost")
	require.Error(t, err)
}
