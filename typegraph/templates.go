package typegraph

import (
	"errors"

	"github.com/archgraph/graphcore/graph"
	"github.com/archgraph/graphcore/graph/edgekind"
	"github.com/archgraph/graphcore/graph/graphbuild"
)

// Internal attribute keys used by template nodes. They live in each
// template node's own DynamicAttributes rather than as new Node fields, so
// the substrate's Literal sum type (graph.Literal) never needs a
// template-specific variant (spec §9: "adding a new value type is a schema
// change").
const (
	attrChildTypeNode = "__child_type_node"
	attrIdentifier    = "__identifier"
	attrLHSRef        = "__lhs_ref_node"
	attrRHSRef        = "__rhs_ref_node"
)

// NewMakeChild inserts a MakeChild template node describing "instantiate
// childType here". identifier, if non-empty, is used as the child's
// composition name when the template's placement edge (added separately,
// via edgekind.Composition.AddChild) does not itself carry a name.
func (tg *TypeGraph) NewMakeChild(childType graph.BoundNodeReference, identifier string) graph.BoundNodeReference {
	attrs := graph.NewDynamicAttributes()
	attrs.Put(attrChildTypeNode, graph.Int(int64(childType.ID())))
	if identifier != "" {
		attrs.Put(attrIdentifier, graph.String(identifier))
	}
	node := tg.view.InsertNodeWithKind(graph.NodeMakeChild, attrs)

	tg.mu.Lock()
	tg.owned[node.ID()] = true
	tg.mu.Unlock()

	return node
}

// SetMakeChildAttributes attaches a NodeCreationAttributes overlay to be
// applied to every instance created from makeChild.
func (tg *TypeGraph) SetMakeChildAttributes(makeChild graph.BoundNodeReference, attrs *graphbuild.NodeCreationAttributes) {
	tg.mu.Lock()
	defer tg.mu.Unlock()
	tg.makeChildAttrs[makeChild.ID()] = attrs
}

func (tg *TypeGraph) childTypeNodeOf(makeChild graph.BoundNodeReference) (graph.NodeID, bool) {
	v, ok := makeChild.Attributes().Get(attrChildTypeNode)
	if !ok {
		return 0, false
	}
	id, ok := v.AsInt()
	return graph.NodeID(id), ok
}

func (tg *TypeGraph) identifierOf(node graph.BoundNodeReference) (string, bool) {
	v, ok := node.Attributes().Get(attrIdentifier)
	if !ok {
		return "", false
	}
	return v.AsString()
}

func (tg *TypeGraph) makeChildOverlay(makeChild graph.NodeID) *graphbuild.NodeCreationAttributes {
	tg.mu.RLock()
	defer tg.mu.RUnlock()
	return tg.makeChildAttrs[makeChild]
}

// NewMakeLink inserts a MakeLink template node describing a deferred edge:
// lhsRef and rhsRef are ChildReferenceNode chain heads resolved relative to
// the instance being built, and edgeAttrs records the edge to create
// between whatever they resolve to.
func (tg *TypeGraph) NewMakeLink(lhsRef, rhsRef graph.BoundNodeReference, edgeAttrs *graphbuild.EdgeCreationAttributes) graph.BoundNodeReference {
	attrs := graph.NewDynamicAttributes()
	attrs.Put(attrLHSRef, graph.Int(int64(lhsRef.ID())))
	attrs.Put(attrRHSRef, graph.Int(int64(rhsRef.ID())))
	node := tg.view.InsertNodeWithKind(graph.NodeMakeLink, attrs)

	tg.mu.Lock()
	tg.owned[node.ID()] = true
	tg.makeLinkEdgeAttrs[node.ID()] = edgeAttrs
	tg.mu.Unlock()

	return node
}

func (tg *TypeGraph) linkRefsOf(makeLink graph.BoundNodeReference) (graph.NodeID, graph.NodeID, bool) {
	lhs, ok := makeLink.Attributes().Get(attrLHSRef)
	if !ok {
		return 0, 0, false
	}
	rhs, ok := makeLink.Attributes().Get(attrRHSRef)
	if !ok {
		return 0, 0, false
	}
	lhsID, ok := lhs.AsInt()
	if !ok {
		return 0, 0, false
	}
	rhsID, ok := rhs.AsInt()
	if !ok {
		return 0, 0, false
	}
	return graph.NodeID(lhsID), graph.NodeID(rhsID), true
}

func (tg *TypeGraph) linkEdgeAttrsOf(makeLink graph.NodeID) *graphbuild.EdgeCreationAttributes {
	tg.mu.RLock()
	defer tg.mu.RUnlock()
	return tg.makeLinkEdgeAttrs[makeLink]
}

// AddReference inserts a ChildReferenceNode chain for path: one node per
// segment, each carrying that segment's identifier, linked by Next edges.
// It returns the chain's head, the node resolution starts from.
func (tg *TypeGraph) AddReference(path []string) (graph.BoundNodeReference, error) {
	if len(path) == 0 {
		return graph.BoundNodeReference{}, errors.New("typegraph: reference path must have at least one segment")
	}

	var head, previous graph.BoundNodeReference
	for i, segment := range path {
		attrs := graph.NewDynamicAttributes()
		attrs.Put(attrIdentifier, graph.String(segment))
		node := tg.view.InsertNodeWithKind(graph.NodeChildReference, attrs)

		tg.mu.Lock()
		tg.owned[node.ID()] = true
		tg.mu.Unlock()

		if i == 0 {
			head = node
		} else if _, err := edgekind.Next.Link(previous, node); err != nil {
			return graph.BoundNodeReference{}, err
		}
		previous = node
	}
	return head, nil
}

// Resolve walks reference's chain via Next edges starting at base, reading
// each segment's identifier and calling
// edgekind.Composition.GetChildByIdentifier to take the next hop. It
// returns the final bound node, or false if any hop fails.
func Resolve(reference, base graph.BoundNodeReference) (graph.BoundNodeReference, bool) {
	current := base
	node := reference

	for {
		v, ok := node.Attributes().Get(attrIdentifier)
		if !ok {
			return graph.BoundNodeReference{}, false
		}
		identifier, ok := v.AsString()
		if !ok {
			return graph.BoundNodeReference{}, false
		}

		child, ok := edgekind.Composition.GetChildByIdentifier(current, identifier)
		if !ok {
			return graph.BoundNodeReference{}, false
		}
		current = child

		nextEdge, ok := edgekind.Next.GetNextEdge(node)
		if !ok {
			return current, true
		}
		node = node.View().Bind(nextEdge.Edge().Target())
	}
}

// referencePath reconstructs the dotted identifier path a reference chain
// encodes, for use in LinkResolutionFailedError.
func referencePath(reference graph.BoundNodeReference) []string {
	var out []string
	node := reference
	for {
		v, ok := node.Attributes().Get(attrIdentifier)
		if !ok {
			break
		}
		s, _ := v.AsString()
		out = append(out, s)

		nextEdge, ok := edgekind.Next.GetNextEdge(node)
		if !ok {
			break
		}
		node = node.View().Bind(nextEdge.Edge().Target())
	}
	return out
}
