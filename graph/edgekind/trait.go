package edgekind

import (
	"github.com/archgraph/graphcore/graph"
	"github.com/archgraph/graphcore/graph/graphbuild"
)

const attrIsTrait = "__is_trait"

// Trait is the namespace of operations over Trait edges (owner ->
// trait-instance) and over trait-type nodes. Instantiating a trait type
// into a fresh instance (AddTraitTo) requires the TypeGraph instantiation
// engine, so that operation lives on typegraph.TypeGraph instead of here;
// this module covers everything that only needs the graph substrate.
var Trait traitKind

type traitKind struct{}

// Tid returns the Trait edge-kind tag.
func (traitKind) Tid() graph.EdgeKind { return graph.KindTrait }

// IsInstance reports whether e is a Trait edge.
func (traitKind) IsInstance(e *graph.Edge) bool { return e.Kind() == graph.KindTrait }

// Build returns a builder for a Trait edge.
func (traitKind) Build() *graphbuild.EdgeCreationAttributes {
	return graphbuild.NewEdgeCreationAttributes(graph.KindTrait)
}

// Create constructs (without inserting) a Trait edge.
func (traitKind) Create(owner, instance graph.NodeID) *graph.Edge {
	return graph.NewDetachedEdge(owner, instance, graph.KindTrait, graph.DefaultDirectional(graph.KindTrait), nil, nil, nil)
}

// GetOwnerNode returns e's owner endpoint. e must be a Trait edge.
func (traitKind) GetOwnerNode(e *graph.Edge) (graph.NodeID, error) {
	if !Trait.IsInstance(e) {
		return 0, graph.ErrInvalidEdgeKind
	}
	return e.Source(), nil
}

// GetTraitInstanceNode returns e's trait-instance endpoint. e must be a
// Trait edge.
func (traitKind) GetTraitInstanceNode(e *graph.Edge) (graph.NodeID, error) {
	if !Trait.IsInstance(e) {
		return 0, graph.ErrInvalidEdgeKind
	}
	return e.Target(), nil
}

// GetTraitOf returns the endpoint of e opposite to node.
func (traitKind) GetTraitOf(e *graph.Edge, node graph.NodeID) (graph.NodeID, bool) {
	if !Trait.IsInstance(e) {
		return 0, false
	}
	return e.OtherEndpoint(node)
}

// VisitTraitEdges visits owner's outgoing Trait edges in insertion order.
func (traitKind) VisitTraitEdges(owner graph.BoundNodeReference, f graph.EdgeVisitFunc, ctx any) error {
	return visitOut(owner, graph.KindTrait, f, ctx)
}

// MarkAsTrait sets a flag attribute on typeNode declaring it a trait type.
func (traitKind) MarkAsTrait(typeNode graph.BoundNodeReference) {
	typeNode.Attributes().Put(attrIsTrait, graph.Bool(true))
}

// IsMarkedAsTrait reports whether typeNode was previously marked by
// MarkAsTrait.
func (traitKind) IsMarkedAsTrait(typeNode graph.BoundNodeReference) bool {
	v, ok := typeNode.Attributes().Get(attrIsTrait)
	if !ok {
		return false
	}
	flag, _ := v.AsBool()
	return flag
}

// AddTraitInstanceTo attaches an existing trait-instance node to target via
// a Trait edge.
func (traitKind) AddTraitInstanceTo(target, traitInstance graph.BoundNodeReference) graph.BoundEdgeReference {
	return target.View().InsertEdge(target.ID(), traitInstance.ID(), graph.KindTrait, graph.DefaultDirectional(graph.KindTrait), nil, nil, nil)
}

// TryGetTrait returns the trait instance attached to target whose type
// equals traitType, or false if none match. More than one matching
// instance is reported as graph.ErrDuplicateTrait.
func (traitKind) TryGetTrait(target graph.BoundNodeReference, traitType graph.NodeID) (graph.BoundNodeReference, bool, error) {
	var found graph.BoundNodeReference
	count := 0
	err := Trait.VisitTraitEdges(target, func(_ any, e graph.BoundEdgeReference) graph.VisitResult {
		instance := e.View().Bind(e.Edge().Target())
		if !Type.IsNodeInstanceOf(instance, traitType) {
			return graph.Continue
		}
		found = instance
		count++
		if count > 1 {
			return graph.Stop
		}
		return graph.Continue
	}, nil)
	if err != nil {
		return graph.BoundNodeReference{}, false, err
	}
	if count > 1 {
		return graph.BoundNodeReference{}, false, graph.ErrDuplicateTrait
	}
	if count == 0 {
		return graph.BoundNodeReference{}, false, nil
	}
	return found, true, nil
}

// VisitImplementers enumerates every node that owns a trait instance of
// traitType, traversing traitType -> instances (Type) -> owners (Trait).
func (traitKind) VisitImplementers(traitType graph.BoundNodeReference, f graph.NodeVisitFunc, ctx any) error {
	k := graph.KindType
	for _, typeEdge := range traitType.View().IterOutEdges(traitType.ID(), &k) {
		instance := traitType.View().Bind(typeEdge.Edge().Target())
		var result error
		stop := false
		innerErr := visitIn(instance, graph.KindTrait, func(c any, traitEdge graph.BoundEdgeReference) graph.VisitResult {
			owner := traitEdge.View().Bind(traitEdge.Edge().Source())
			r := f(c, owner)
			if r == graph.VisitError {
				result = graph.ErrCallback
			}
			if r == graph.Stop {
				stop = true
			}
			return r
		}, ctx)
		if innerErr != nil {
			return innerErr
		}
		if result != nil {
			return result
		}
		if stop {
			return nil
		}
	}
	return nil
}
