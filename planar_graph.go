package relate

import "github.com/paulmach/orb"

// planarGraph holds the edges and nodes of a noded geometry.
type planarGraph struct {
	edges []*edge
	nodes nodeMap
}

func newPlanarGraph() planarGraph {
	return planarGraph{
		nodes: newNodeMap(),
	}
}

func (g *planarGraph) insertEdge(e *edge) {
	g.edges = append(g.edges, e)
}

// isBoundaryNode returns true if a node exists at coord that is on the boundary of geometry geomIndex.
func (g *planarGraph) isBoundaryNode(geomIndex int, coord orb.Point) bool {
	n := g.nodes.find(coord)
	return n != nil && n.label.onPosition(geomIndex) == OnBoundary
}

// boundaryNodes returns the coordinates of all nodes on the boundary of geometry geomIndex.
func (g *planarGraph) boundaryNodes(geomIndex int) []orb.Point {
	coords := []orb.Point{}
	for _, n := range g.nodes.nodes {
		if n.label.onPosition(geomIndex) == OnBoundary {
			coords = append(coords, n.coord)
		}
	}
	return coords
}

// clone returns a deep copy of the graph, swapping the geometry positions of all labels if swap is set.
func (g *planarGraph) clone(swap bool) planarGraph {
	h := planarGraph{
		edges: make([]*edge, len(g.edges)),
		nodes: g.nodes.clone(),
	}
	for i, e := range g.edges {
		h.edges[i] = e.clone()
	}
	if swap {
		for i := range h.nodes.nodes {
			h.nodes.nodes[i].swapArgs()
		}
		for _, e := range h.edges {
			e.label.swapArgs()
		}
	}
	return h
}
