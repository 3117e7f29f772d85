package edgekind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archgraph/graphcore/graph"
	"github.com/archgraph/graphcore/graph/edgekind"
)

func TestTypeRoundTripGetTypeNodeOfGetTypeEdge(t *testing.T) {
	v := graph.NewGraphView()
	typeNode := v.InsertNode(nil)
	instance := v.InsertNode(nil)

	edgekind.Type.Link(v, typeNode.ID(), instance.ID())

	edge, ok := edgekind.Type.GetTypeEdge(instance)
	require.True(t, ok)
	got, err := edgekind.Type.GetTypeNode(edge.Edge())
	require.NoError(t, err)
	assert.Equal(t, typeNode.ID(), got)
}

func TestIsNodeInstanceOf(t *testing.T) {
	v := graph.NewGraphView()
	typeNode := v.InsertNode(nil)
	otherType := v.InsertNode(nil)
	instance := v.InsertNode(nil)

	edgekind.Type.Link(v, typeNode.ID(), instance.ID())

	assert.True(t, edgekind.Type.IsNodeInstanceOf(instance, typeNode.ID()))
	assert.False(t, edgekind.Type.IsNodeInstanceOf(instance, otherType.ID()))
}

func TestGetTypeNodeRejectsWrongEdgeKind(t *testing.T) {
	v := graph.NewGraphView()
	a := v.InsertNode(nil)
	b := v.InsertNode(nil)
	e := v.InsertEdge(a.ID(), b.ID(), graph.KindNext, true, nil, nil, nil)

	_, err := edgekind.Type.GetTypeNode(e.Edge())
	assert.ErrorIs(t, err, graph.ErrInvalidEdgeKind)
}
