package edgekind

import (
	"github.com/archgraph/graphcore/graph"
)

// reachability is the BFS result from one source node: for every node it
// reached, the ordered sequence of edges forming the shortest predecessor
// path. The source itself maps to an empty path.
type reachability map[graph.NodeID][]graph.BoundEdgeReference

// bfsFrom computes reachability from source, memoized on source's own view
// against the view's current InterfaceConnection generation (GraphView.
// ConnectivityCacheGet/Put) rather than a library-level cache, so memoized
// results are collected along with the view instead of outliving it.
func bfsFrom(source graph.BoundNodeReference) reachability {
	if cached, ok := source.View().ConnectivityCacheGet(source.ID()); ok {
		return cached
	}

	visited := reachability{source.ID(): nil}
	queue := []graph.NodeID{source.ID()}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, e := range source.View().IterNeighbourEdges(current, nil) {
			if e.Kind() != graph.KindInterfaceConnection {
				continue
			}
			other, ok := e.Edge().OtherEndpoint(current)
			if !ok {
				continue
			}
			if _, seen := visited[other]; seen {
				continue
			}
			path := append(append([]graph.BoundEdgeReference{}, visited[current]...), e)
			visited[other] = path
			queue = append(queue, other)
		}
	}

	source.View().ConnectivityCachePut(source.ID(), visited)
	return visited
}

// copyPath returns a freshly allocated copy of path, so callers receive a
// slice they can drop independently of anything the solver has memoized
// (spec §4.F: "the returned path is newly allocated and owned by the
// caller").
func copyPath(path []graph.BoundEdgeReference) []graph.BoundEdgeReference {
	if path == nil {
		return nil
	}
	out := make([]graph.BoundEdgeReference, len(path))
	copy(out, path)
	return out
}

// IsConnectedTo performs breadth-first search over InterfaceConnection
// edges reachable from source, returning the shortest path to target as an
// ordered sequence of bound edges, or false if target is unreachable.
func (interfaceConnKind) IsConnectedTo(source, target graph.BoundNodeReference) ([]graph.BoundEdgeReference, bool) {
	r := bfsFrom(source)
	path, ok := r[target.ID()]
	if !ok {
		return nil, false
	}
	return copyPath(path), true
}

// GetConnected enumerates every node reachable from source over
// InterfaceConnection edges, mapped to its shortest predecessor path.
// source is included (with an empty path) iff includeSelf is true. Each
// returned path is independently allocated.
func (interfaceConnKind) GetConnected(source graph.BoundNodeReference, includeSelf bool) map[graph.NodeID][]graph.BoundEdgeReference {
	r := bfsFrom(source)
	out := make(map[graph.NodeID][]graph.BoundEdgeReference, len(r))
	for node, path := range r {
		if node == source.ID() && !includeSelf {
			continue
		}
		out[node] = copyPath(path)
	}
	return out
}
