package graph

// Node is a design entity in the graph: a module, interface, parameter,
// trait, or type. Its identity is its NodeID; its role (ordinary node vs.
// TypeGraph template) is its Kind; everything else it carries lives in its
// DynamicAttributes.
type Node struct {
	id    NodeID
	kind  NodeKind
	attrs *DynamicAttributes
}

// ID returns the node's stable identifier.
func (n *Node) ID() NodeID { return n.id }

// Kind reports whether this node is a plain design entity or a TypeGraph
// template node (MakeChild, MakeLink, ChildReference).
func (n *Node) Kind() NodeKind { return n.kind }

// Attributes returns the node's dynamic attribute map. The returned pointer
// aliases the node's storage; mutate it only under the owning view's write
// lock.
func (n *Node) Attributes() *DynamicAttributes { return n.attrs }
