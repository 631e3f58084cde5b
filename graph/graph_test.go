// Package graph_test contains unit tests for graph construction.
package graph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpath/graph"
)

func TestNew_Order(t *testing.T) {
	g := graph.New(5)
	require.Equal(t, 5, g.Order())
	for i := 0; i < 5; i++ {
		require.Equal(t, i, g.Vertex(i).ID())
	}

	require.Equal(t, 0, graph.New(0).Order())
	require.Panics(t, func() { graph.New(-1) })
}

func TestAddArc_Validation(t *testing.T) {
	g := graph.New(2)

	_, err := g.AddArc(-1, 0, 1)
	require.ErrorIs(t, err, graph.ErrVertexNotFound)
	_, err = g.AddArc(0, 2, 1)
	require.ErrorIs(t, err, graph.ErrVertexNotFound)

	// Dijkstra requires non-negative weights; NaN and +Inf are rejected
	// because both would poison the priority ordering.
	_, err = g.AddArc(0, 1, -0.5)
	require.ErrorIs(t, err, graph.ErrBadWeight)
	_, err = g.AddArc(0, 1, math.NaN())
	require.ErrorIs(t, err, graph.ErrBadWeight)
	_, err = g.AddArc(0, 1, math.Inf(1))
	require.ErrorIs(t, err, graph.ErrBadWeight)
}

func TestAddArc_ListOrderAndData(t *testing.T) {
	type payload struct{ label string }

	g := graph.New(3)
	first, err := g.AddArc(0, 1, 1)
	require.NoError(t, err)
	second, err := g.AddArc(0, 2, 2, graph.WithArcData(&payload{label: "toll road"}))
	require.NoError(t, err)

	require.Same(t, g.Vertex(0), first.Tail)
	require.Same(t, g.Vertex(1), first.Head)

	// Arcs list most recently added first; the payload is carried opaquely.
	arcs := g.Vertex(0).Arcs()
	require.Len(t, arcs, 2)
	assert.Same(t, second, arcs[0])
	assert.Same(t, first, arcs[1])
	assert.Equal(t, "toll road", arcs[0].Data.(*payload).label)
	assert.Nil(t, arcs[1].Data)
	assert.Empty(t, g.Vertex(1).Arcs())
}
