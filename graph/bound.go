package graph

// BoundNodeReference is a non-owning (view, id) pair: the only legal way to
// navigate from a node. It does not extend the view's lifetime; copying it
// is cheap; two references compare equal when they share both the view
// pointer and the id.
type BoundNodeReference struct {
	view *GraphView
	id   NodeID
}

// View returns the view this reference belongs to.
func (r BoundNodeReference) View() *GraphView { return r.view }

// ID returns the bound node's id.
func (r BoundNodeReference) ID() NodeID { return r.id }

// Valid reports whether this reference's view is non-nil and the id
// actually exists in the view (id 0 is valid once a node is inserted).
func (r BoundNodeReference) Valid() bool {
	return r.view != nil && r.view.hasNode(r.id)
}

// Node dereferences the reference. It panics if the reference is not valid
// for its view, matching the spec's "programming error" treatment of
// cross-view misuse.
func (r BoundNodeReference) Node() *Node {
	return r.view.nodeByID(r.id)
}

// Attributes is shorthand for r.Node().Attributes().
func (r BoundNodeReference) Attributes() *DynamicAttributes {
	return r.Node().Attributes()
}

// Kind is shorthand for r.Node().Kind().
func (r BoundNodeReference) Kind() NodeKind {
	return r.Node().Kind()
}

// Equal reports whether r and o refer to the same node in the same view.
func (r BoundNodeReference) Equal(o BoundNodeReference) bool {
	return r.view == o.view && r.id == o.id
}

// BoundEdgeReference is the edge analogue of BoundNodeReference.
type BoundEdgeReference struct {
	view *GraphView
	id   EdgeID
}

// View returns the view this reference belongs to.
func (r BoundEdgeReference) View() *GraphView { return r.view }

// ID returns the bound edge's id.
func (r BoundEdgeReference) ID() EdgeID { return r.id }

// Valid reports whether this reference's id actually exists in its view.
func (r BoundEdgeReference) Valid() bool {
	return r.view != nil && r.view.hasEdge(r.id)
}

// Edge dereferences the reference, panicking on cross-view misuse.
func (r BoundEdgeReference) Edge() *Edge {
	return r.view.edgeByID(r.id)
}

// Attributes is shorthand for r.Edge().Attributes().
func (r BoundEdgeReference) Attributes() *DynamicAttributes {
	return r.Edge().Attributes()
}

// Kind is shorthand for r.Edge().Kind().
func (r BoundEdgeReference) Kind() EdgeKind {
	return r.Edge().Kind()
}

// Equal reports whether r and o refer to the same edge in the same view.
func (r BoundEdgeReference) Equal(o BoundEdgeReference) bool {
	return r.view == o.view && r.id == o.id
}
