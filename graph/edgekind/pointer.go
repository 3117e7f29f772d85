package edgekind

import (
	"sort"

	"github.com/archgraph/graphcore/graph"
	"github.com/archgraph/graphcore/graph/graphbuild"
)

// Pointer is the namespace of operations over Pointer edges: an arbitrary
// named, optionally ordered reference from one node to another. Uniqueness
// is not enforced here — callers choose.
var Pointer pointerKind

type pointerKind struct{}

// Tid returns the Pointer edge-kind tag.
func (pointerKind) Tid() graph.EdgeKind { return graph.KindPointer }

// IsInstance reports whether e is a Pointer edge.
func (pointerKind) IsInstance(e *graph.Edge) bool { return e.Kind() == graph.KindPointer }

// Build returns a builder for a Pointer edge with optional identifier and
// order.
func (pointerKind) Build(identifier *string, order *uint32) *graphbuild.EdgeCreationAttributes {
	b := graphbuild.NewEdgeCreationAttributes(graph.KindPointer)
	if identifier != nil {
		b = b.WithName(*identifier)
	}
	if order != nil {
		b = b.WithOrder(*order)
	}
	return b
}

// Create constructs (without inserting) a Pointer edge.
func (pointerKind) Create(source, target graph.NodeID, identifier *string, order *uint32) *graph.Edge {
	return graph.NewDetachedEdge(source, target, graph.KindPointer, graph.DefaultDirectional(graph.KindPointer), identifier, order, nil)
}

// GetReferencedNode returns e's target endpoint. e must be a Pointer edge.
func (pointerKind) GetReferencedNode(e *graph.Edge) (graph.NodeID, error) {
	if !Pointer.IsInstance(e) {
		return 0, graph.ErrInvalidEdgeKind
	}
	return e.Target(), nil
}

// GetOrder returns e's tie-break order, if any. e must be a Pointer edge.
func (pointerKind) GetOrder(e *graph.Edge) (uint32, bool, error) {
	if !Pointer.IsInstance(e) {
		return 0, false, graph.ErrInvalidEdgeKind
	}
	order, ok := e.Order()
	return order, ok, nil
}

// GetPointerOf returns the endpoint of e opposite to node.
func (pointerKind) GetPointerOf(e *graph.Edge, node graph.NodeID) (graph.NodeID, bool) {
	if !Pointer.IsInstance(e) {
		return 0, false
	}
	return e.OtherEndpoint(node)
}

// sortedPointerEdges returns source's outgoing Pointer edges ordered
// ascending by order; edges without an order sort after those with one, in
// their relative insertion order (the Open Question on mixed-order
// siblings resolved in DESIGN.md).
func sortedPointerEdges(edges []graph.BoundEdgeReference) []graph.BoundEdgeReference {
	out := make([]graph.BoundEdgeReference, len(edges))
	copy(out, edges)
	sort.SliceStable(out, func(i, j int) bool {
		oi, hasI := out[i].Edge().Order()
		oj, hasJ := out[j].Edge().Order()
		if hasI && hasJ {
			return oi < oj
		}
		if hasI != hasJ {
			return hasI
		}
		return false
	})
	return out
}

// VisitPointedEdges visits source's outgoing Pointer edges in ascending
// order (ordered siblings first, then unordered siblings in insertion
// order).
func (pointerKind) VisitPointedEdges(source graph.BoundNodeReference, f graph.EdgeVisitFunc, ctx any) error {
	k := graph.KindPointer
	edges := sortedPointerEdges(source.View().IterOutEdges(source.ID(), &k))
	for _, e := range edges {
		switch f(ctx, e) {
		case graph.Stop:
			return nil
		case graph.VisitError:
			return graph.ErrCallback
		}
	}
	return nil
}

// VisitPointedEdgesWithIdentifier visits source's outgoing Pointer edges
// named identifier, in the same order as VisitPointedEdges.
func (pointerKind) VisitPointedEdgesWithIdentifier(source graph.BoundNodeReference, identifier string, f graph.EdgeVisitFunc, ctx any) error {
	return Pointer.VisitPointedEdges(source, func(c any, e graph.BoundEdgeReference) graph.VisitResult {
		name, ok := e.Edge().Name()
		if !ok || name != identifier {
			return graph.Continue
		}
		return f(c, e)
	}, ctx)
}

// GetPointedNodeByIdentifier returns the first (by order, then insertion)
// node pointed to under identifier, if any.
func (pointerKind) GetPointedNodeByIdentifier(source graph.BoundNodeReference, identifier string) (graph.NodeID, bool) {
	var found graph.NodeID
	var ok bool
	_ = Pointer.VisitPointedEdgesWithIdentifier(source, identifier, func(_ any, e graph.BoundEdgeReference) graph.VisitResult {
		found = e.Edge().Target()
		ok = true
		return graph.Stop
	}, nil)
	return found, ok
}
