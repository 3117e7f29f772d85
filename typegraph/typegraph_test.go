package typegraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archgraph/graphcore/graph"
	"github.com/archgraph/graphcore/typegraph"
)

func TestAddTypeRejectsADuplicateName(t *testing.T) {
	v := graph.NewGraphView()
	tg := typegraph.NewTypeGraph(v)

	_, err := tg.AddType("Resistor")
	require.NoError(t, err)

	_, err = tg.AddType("Resistor")
	var dupErr *typegraph.DuplicateTypeNameError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "Resistor", dupErr.Identifier)
}

func TestGetOrCreateTypeReusesAnExistingRegistration(t *testing.T) {
	v := graph.NewGraphView()
	tg := typegraph.NewTypeGraph(v)

	first, err := tg.AddType("Pad")
	require.NoError(t, err)

	second, err := tg.GetOrCreateType("Pad")
	require.NoError(t, err)
	assert.Equal(t, first.ID(), second.ID())
}

func TestOfResolvesATypeNodeBackToItsTypeGraph(t *testing.T) {
	v := graph.NewGraphView()
	tg := typegraph.NewTypeGraph(v)

	pad, err := tg.AddType("Pad")
	require.NoError(t, err)

	got, ok := typegraph.Of(pad)
	require.True(t, ok)
	assert.Same(t, tg, got)
}

func TestOfInstanceFollowsTheTypeEdgeBackToTheOwningTypeGraph(t *testing.T) {
	v := graph.NewGraphView()
	tg := typegraph.NewTypeGraph(v)

	_, err := tg.AddType("Pad")
	require.NoError(t, err)

	instance, err := tg.Instantiate("Pad", nil)
	require.NoError(t, err)

	got, ok := typegraph.OfInstance(instance)
	require.True(t, ok)
	assert.Same(t, tg, got)
}

func TestGetTypeInstanceOverviewCountsInstancesPerType(t *testing.T) {
	v := graph.NewGraphView()
	tg := typegraph.NewTypeGraph(v)

	_, err := tg.AddType("Pad")
	require.NoError(t, err)

	_, err = tg.Instantiate("Pad", nil)
	require.NoError(t, err)
	_, err = tg.Instantiate("Pad", nil)
	require.NoError(t, err)

	overview := tg.GetTypeInstanceOverview()
	assert.Equal(t, 2, overview["Pad"])
}

func TestAddTraitCreatesAnUnregisteredTraitTypeNode(t *testing.T) {
	v := graph.NewGraphView()
	tg := typegraph.NewTypeGraph(v)

	trait := tg.AddTrait()

	_, ok := tg.GetTypeByName("HasValue")
	assert.False(t, ok)

	got, ok := typegraph.Of(trait)
	require.True(t, ok)
	assert.Same(t, tg, got)
}
