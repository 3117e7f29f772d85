package graph

// NodeID is a stable, view-unique, monotonically assigned node handle.
// It never moves between views and is never reused within a view's
// lifetime, mirroring nornicdb's NodeID/EdgeID strong-typedef pattern
// (pkg/storage/types.go) adapted from string ids to dense integer handles
// since NodeId/EdgeId here are assigned at insertion, not chosen by callers.
type NodeID uint64

// EdgeID is the edge analogue of NodeID.
type EdgeID uint64

// EdgeKind discriminates the operation set (component D module) that
// governs an edge. It is a plain integer tag, not a type hierarchy:
// dispatch on edge kind is a switch, never a virtual call.
type EdgeKind int

const (
	// KindUnknown is the zero value; it never appears on an inserted edge.
	KindUnknown EdgeKind = iota
	KindComposition
	KindType
	KindNext
	KindPointer
	KindOperand
	KindInterfaceConnection
	KindTrait
)

func (k EdgeKind) String() string {
	switch k {
	case KindComposition:
		return "Composition"
	case KindType:
		return "Type"
	case KindNext:
		return "Next"
	case KindPointer:
		return "Pointer"
	case KindOperand:
		return "Operand"
	case KindInterfaceConnection:
		return "InterfaceConnection"
	case KindTrait:
		return "Trait"
	default:
		return "Unknown"
	}
}

// DefaultDirectional reports the default directionality for kind: every
// kind is directional except InterfaceConnection, which is a symmetric
// peer-to-peer relation (spec: composition/type/next/pointer/operand/trait
// are directional; interface-connection is not).
func DefaultDirectional(k EdgeKind) bool {
	return k != KindInterfaceConnection
}

// NodeKind tags the role a node plays. Generic nodes are ordinary design
// entities; the other three are TypeGraph template nodes.
type NodeKind int

const (
	NodeGeneric NodeKind = iota
	NodeMakeChild
	NodeMakeLink
	NodeChildReference
)

func (k NodeKind) String() string {
	switch k {
	case NodeMakeChild:
		return "MakeChild"
	case NodeMakeLink:
		return "MakeLink"
	case NodeChildReference:
		return "ChildReference"
	default:
		return "Generic"
	}
}

// VisitResult is returned by visitor callbacks to control traversal.
type VisitResult int

const (
	Continue VisitResult = iota
	Stop
	VisitError
)

// NodeVisitFunc is the callback signature for node visitors (component D,
// §6: "Visitor callbacks across language boundaries").
type NodeVisitFunc func(ctx any, node BoundNodeReference) VisitResult

// EdgeVisitFunc is the callback signature for edge visitors.
type EdgeVisitFunc func(ctx any, edge BoundEdgeReference) VisitResult
