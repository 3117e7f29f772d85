package graph

import "errors"

// Sentinel errors for conditions that carry no identifying payload, mirroring
// nornicdb's var ErrNotFound = errors.New(...) style (pkg/storage/types.go).
// Conditions that do carry payload (which parent, which identifier) use a
// dedicated struct type instead, following nornicdb's ConstraintViolationError
// (pkg/storage/badger_transaction.go).
var (
	// ErrInvalidEdgeKind is returned when an edge-kind accessor is called on
	// an edge whose Kind() does not match the module.
	ErrInvalidEdgeKind = errors.New("graph: edge is not an instance of the requested kind")

	// ErrNextAlreadySet is returned when a second incoming or outgoing Next
	// edge would be created on a node.
	ErrNextAlreadySet = errors.New("graph: node already has a Next edge in that direction")

	// ErrMultipleCompositionParents signals that a node would gain a second
	// incoming Composition edge.
	ErrMultipleCompositionParents = errors.New("graph: node already has a composition parent")

	// ErrAmbiguousChild is returned by TryGetSingleChildOfType when more than
	// one child matches.
	ErrAmbiguousChild = errors.New("graph: more than one child matches the requested type")

	// ErrDuplicateTrait is returned when more than one trait instance of the
	// same trait type is attached to one owner.
	ErrDuplicateTrait = errors.New("graph: more than one trait instance of that type is attached")

	// ErrCallback is returned when a visitor callback reports VisitError.
	ErrCallback = errors.New("graph: visitor callback reported an error")
)
