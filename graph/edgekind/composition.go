package edgekind

import (
	"errors"

	"github.com/archgraph/graphcore/graph"
	"github.com/archgraph/graphcore/graph/graphbuild"
)

// Composition is the namespace of operations over Composition edges
// (parent -> child), each carrying a required, parent-unique child
// identifier.
var Composition compositionKind

type compositionKind struct{}

// Tid returns the Composition edge-kind tag.
func (compositionKind) Tid() graph.EdgeKind { return graph.KindComposition }

// IsInstance reports whether e is a Composition edge.
func (compositionKind) IsInstance(e *graph.Edge) bool { return e.Kind() == graph.KindComposition }

// Build returns a builder for a Composition edge named identifier.
func (compositionKind) Build(identifier string) *graphbuild.EdgeCreationAttributes {
	return graphbuild.NewEdgeCreationAttributes(graph.KindComposition).WithName(identifier)
}

// Create constructs (without inserting) a Composition edge.
func (compositionKind) Create(parent, child graph.NodeID, identifier string) *graph.Edge {
	return graph.NewDetachedEdge(parent, child, graph.KindComposition, graph.DefaultDirectional(graph.KindComposition), &identifier, nil, nil)
}

// GetParentNode returns e's parent endpoint. e must be a Composition edge.
func (compositionKind) GetParentNode(e *graph.Edge) (graph.NodeID, error) {
	if !Composition.IsInstance(e) {
		return 0, graph.ErrInvalidEdgeKind
	}
	return e.Source(), nil
}

// GetChildNode returns e's child endpoint. e must be a Composition edge.
func (compositionKind) GetChildNode(e *graph.Edge) (graph.NodeID, error) {
	if !Composition.IsInstance(e) {
		return 0, graph.ErrInvalidEdgeKind
	}
	return e.Target(), nil
}

// GetCompositionOf returns the endpoint of e opposite to node.
func (compositionKind) GetCompositionOf(e *graph.Edge, node graph.NodeID) (graph.NodeID, bool) {
	if !Composition.IsInstance(e) {
		return 0, false
	}
	return e.OtherEndpoint(node)
}

// VisitChildEdges visits parent's outgoing Composition edges in insertion
// order.
func (compositionKind) VisitChildEdges(parent graph.BoundNodeReference, f graph.EdgeVisitFunc, ctx any) error {
	return visitOut(parent, graph.KindComposition, f, ctx)
}

// GetParentEdge returns child's unique incoming Composition edge, if any.
// More than one incoming Composition edge is an invariant violation that
// AddChild prevents; if it is nonetheless observed (e.g. an edge inserted
// directly through GraphView.InsertEdge, bypassing this module), the
// first-inserted edge is returned.
func (compositionKind) GetParentEdge(child graph.BoundNodeReference) (graph.BoundEdgeReference, bool) {
	k := graph.KindComposition
	edges := child.View().IterInEdges(child.ID(), &k)
	if len(edges) == 0 {
		return graph.BoundEdgeReference{}, false
	}
	return edges[0], true
}

// AddChild inserts a Composition edge from parent to child named
// identifier. It rejects atomically: a duplicate identifier under parent,
// or a second composition parent for child, leaves the graph unchanged and
// returns an error rather than inserting first.
func (compositionKind) AddChild(parent, child graph.BoundNodeReference, identifier string) (graph.BoundEdgeReference, error) {
	if identifier == "" {
		return graph.BoundEdgeReference{}, errors.New("edgekind: composition child identifier must be non-empty")
	}
	if _, ok := Composition.GetChildByIdentifier(parent, identifier); ok {
		return graph.BoundEdgeReference{}, &DuplicateChildIdentifierError{Parent: parent.ID(), Identifier: identifier}
	}
	if _, ok := Composition.GetParentEdge(child); ok {
		return graph.BoundEdgeReference{}, graph.ErrMultipleCompositionParents
	}
	ref := parent.View().InsertEdge(parent.ID(), child.ID(), graph.KindComposition, graph.DefaultDirectional(graph.KindComposition), &identifier, nil, nil)
	return ref, nil
}

// GetChildByIdentifier returns parent's composition child registered under
// identifier, if any.
func (compositionKind) GetChildByIdentifier(parent graph.BoundNodeReference, identifier string) (graph.BoundNodeReference, bool) {
	var found graph.BoundNodeReference
	var ok bool
	_ = Composition.VisitChildEdges(parent, func(_ any, e graph.BoundEdgeReference) graph.VisitResult {
		if name, has := e.Edge().Name(); has && name == identifier {
			found = e.View().Bind(e.Edge().Target())
			ok = true
			return graph.Stop
		}
		return graph.Continue
	}, nil)
	return found, ok
}

// VisitChildrenOfType visits parent's composition children whose Type edge
// points at childType.
func (compositionKind) VisitChildrenOfType(parent graph.BoundNodeReference, childType graph.NodeID, f graph.NodeVisitFunc, ctx any) error {
	return Composition.VisitChildEdges(parent, func(_ any, e graph.BoundEdgeReference) graph.VisitResult {
		child := e.View().Bind(e.Edge().Target())
		if !Type.IsNodeInstanceOf(child, childType) {
			return graph.Continue
		}
		return f(ctx, child)
	}, nil)
}

// TryGetSingleChildOfType returns the unique composition child of parent
// whose type is childType, or false if none match. More than one match is
// reported as graph.ErrAmbiguousChild.
func (compositionKind) TryGetSingleChildOfType(parent graph.BoundNodeReference, childType graph.NodeID) (graph.BoundNodeReference, bool, error) {
	var found graph.BoundNodeReference
	count := 0
	err := Composition.VisitChildrenOfType(parent, childType, func(_ any, n graph.BoundNodeReference) graph.VisitResult {
		found = n
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
		return graph.BoundNodeReference{}, false, graph.ErrAmbiguousChild
	}
	if count == 0 {
		return graph.BoundNodeReference{}, false, nil
	}
	return found, true, nil
}
