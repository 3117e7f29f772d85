package graph

// Edge is a typed relationship between two nodes. Its source, target, and
// kind are immutable once inserted; name and order are set at construction
// and change afterwards only through SetName/SetOrder (used by
// EdgeCreationAttributes.ApplyTo); dynamic attributes may still change.
type Edge struct {
	id          EdgeID
	kind        EdgeKind
	source      NodeID
	target      NodeID
	directional bool
	name        *string
	order       *uint32
	attrs       *DynamicAttributes
}

// ID returns the edge's stable identifier.
func (e *Edge) ID() EdgeID { return e.id }

// Kind returns the edge-kind tag selecting its operation set.
func (e *Edge) Kind() EdgeKind { return e.kind }

// Source returns the edge's source endpoint.
func (e *Edge) Source() NodeID { return e.source }

// Target returns the edge's target endpoint.
func (e *Edge) Target() NodeID { return e.target }

// Directional reports whether this edge has a meaningful direction.
func (e *Edge) Directional() bool { return e.directional }

// Name returns the edge's kind-specific identifier, if any.
func (e *Edge) Name() (string, bool) {
	if e.name == nil {
		return "", false
	}
	return *e.name, true
}

// Order returns the edge's tie-break order, if any. Only Pointer edges use
// this field.
func (e *Edge) Order() (uint32, bool) {
	if e.order == nil {
		return 0, false
	}
	return *e.order, true
}

// Attributes returns the edge's dynamic attribute map.
func (e *Edge) Attributes() *DynamicAttributes { return e.attrs }

// OtherEndpoint returns the endpoint of e opposite to node, or false if
// node is not incident to e.
func (e *Edge) OtherEndpoint(node NodeID) (NodeID, bool) {
	switch node {
	case e.source:
		return e.target, true
	case e.target:
		return e.source, true
	default:
		return 0, false
	}
}

// SetName overwrites the edge's name in place. It exists for
// EdgeCreationAttributes.ApplyTo (graph/graphbuild); ordinary callers never
// rename an inserted edge.
func (e *Edge) SetName(name *string) { e.name = name }

// SetOrder overwrites the edge's tie-break order in place.
func (e *Edge) SetOrder(order *uint32) { e.order = order }

// SetDirectional overwrites the edge's directionality in place. Changing
// directionality after insertion does not move the edge between the view's
// out/in and neighbour indexes; callers that need consistent adjacency
// should only use this before the edge is exposed to iteration logic that
// depends on it, i.e. immediately after EdgeCreationAttributes.InsertEdge.
func (e *Edge) SetDirectional(d bool) { e.directional = d }

// NewDetachedEdge constructs an Edge that has not been inserted into any
// view. Its ID is the zero EdgeID, which is also the id a view gives its
// first inserted edge, so the ID of a detached edge does not identify it.
func NewDetachedEdge(source, target NodeID, kind EdgeKind, directional bool, name *string, order *uint32, attrs *DynamicAttributes) *Edge {
	if attrs == nil {
		attrs = NewDynamicAttributes()
	}
	return &Edge{
		kind:        kind,
		source:      source,
		target:      target,
		directional: directional,
		name:        name,
		order:       order,
		attrs:       attrs,
	}
}
