package edgekind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archgraph/graphcore/graph"
	"github.com/archgraph/graphcore/graph/edgekind"
)

func TestMarkAsTraitAndIsMarkedAsTrait(t *testing.T) {
	v := graph.NewGraphView()
	hasValue := v.InsertNode(nil)
	plain := v.InsertNode(nil)

	assert.False(t, edgekind.Trait.IsMarkedAsTrait(hasValue))
	edgekind.Trait.MarkAsTrait(hasValue)
	assert.True(t, edgekind.Trait.IsMarkedAsTrait(hasValue))
	assert.False(t, edgekind.Trait.IsMarkedAsTrait(plain))
}

func TestAddTraitInstanceToAndTryGetTrait(t *testing.T) {
	v := graph.NewGraphView()
	hasValueType := v.InsertNode(nil)
	owner := v.InsertNode(nil)
	traitInstance := v.InsertNode(nil)
	edgekind.Type.Link(v, hasValueType.ID(), traitInstance.ID())

	edgekind.Trait.AddTraitInstanceTo(owner, traitInstance)

	found, ok, err := edgekind.Trait.TryGetTrait(owner, hasValueType.ID())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, traitInstance.ID(), found.ID())
}

func TestTryGetTraitReturnsFalseWhenAbsent(t *testing.T) {
	v := graph.NewGraphView()
	traitType := v.InsertNode(nil)
	owner := v.InsertNode(nil)

	_, ok, err := edgekind.Trait.TryGetTrait(owner, traitType.ID())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTryGetTraitReportsAmbiguityOnTwoMatchingInstances(t *testing.T) {
	v := graph.NewGraphView()
	traitType := v.InsertNode(nil)
	owner := v.InsertNode(nil)
	instance1 := v.InsertNode(nil)
	instance2 := v.InsertNode(nil)
	edgekind.Type.Link(v, traitType.ID(), instance1.ID())
	edgekind.Type.Link(v, traitType.ID(), instance2.ID())

	edgekind.Trait.AddTraitInstanceTo(owner, instance1)
	edgekind.Trait.AddTraitInstanceTo(owner, instance2)

	_, _, err := edgekind.Trait.TryGetTrait(owner, traitType.ID())
	assert.ErrorIs(t, err, graph.ErrDuplicateTrait)
}

func TestVisitImplementersFindsEveryOwnerOfATraitType(t *testing.T) {
	v := graph.NewGraphView()
	traitType := v.InsertNode(nil)
	ownerA := v.InsertNode(nil)
	ownerB := v.InsertNode(nil)
	instanceA := v.InsertNode(nil)
	instanceB := v.InsertNode(nil)
	edgekind.Type.Link(v, traitType.ID(), instanceA.ID())
	edgekind.Type.Link(v, traitType.ID(), instanceB.ID())

	edgekind.Trait.AddTraitInstanceTo(ownerA, instanceA)
	edgekind.Trait.AddTraitInstanceTo(ownerB, instanceB)

	var owners []graph.NodeID
	err := edgekind.Trait.VisitImplementers(traitType, func(_ any, n graph.BoundNodeReference) graph.VisitResult {
		owners = append(owners, n.ID())
		return graph.Continue
	}, nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []graph.NodeID{ownerA.ID(), ownerB.ID()}, owners)
}

func TestVisitImplementersStopsEarlyWhenCallbackStops(t *testing.T) {
	v := graph.NewGraphView()
	traitType := v.InsertNode(nil)
	ownerA := v.InsertNode(nil)
	ownerB := v.InsertNode(nil)
	instanceA := v.InsertNode(nil)
	instanceB := v.InsertNode(nil)
	edgekind.Type.Link(v, traitType.ID(), instanceA.ID())
	edgekind.Type.Link(v, traitType.ID(), instanceB.ID())

	edgekind.Trait.AddTraitInstanceTo(ownerA, instanceA)
	edgekind.Trait.AddTraitInstanceTo(ownerB, instanceB)

	count := 0
	err := edgekind.Trait.VisitImplementers(traitType, func(_ any, n graph.BoundNodeReference) graph.VisitResult {
		count++
		return graph.Stop
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
