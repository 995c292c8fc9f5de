package relate

import (
	"github.com/paulmach/orb"
)

// PreparedGeometry caches the noded graph of a geometry and the spatial index of its segments, so that relating it to many other geometries does not repeat that work. It is safe for concurrent use.
type PreparedGeometry struct {
	graph *geometryGraph
	opts  *Options
}

// Prepare builds the graph of g. A nil opts uses DefaultOptions.
func Prepare(g orb.Geometry, opts *Options) *PreparedGeometry {
	opts = defaultOptions(opts)
	graph := newGeometryGraph(0, g, opts)
	graph.segmentIndex()
	graph.computeSelfNodes()
	return &PreparedGeometry{
		graph: graph,
		opts:  opts,
	}
}

// Geometry returns the prepared geometry.
func (p *PreparedGeometry) Geometry() orb.Geometry {
	return p.graph.geometry
}

// HasSelfIntersection returns true if two segments of the geometry cross in their interiors, such as a figure-eight line string or overlapping polygons of a multi-polygon. Rings are not checked against themselves.
func (p *PreparedGeometry) HasSelfIntersection() bool {
	return p.graph.hasSelfIntersection
}

// Relate computes the intersection matrix of the prepared geometry (A) and other (B).
func (p *PreparedGeometry) Relate(other orb.Geometry) IntersectionMatrix {
	graphB := newGeometryGraph(1, other, p.opts)
	return newRelateOperation(p.graph.clone(0), graphB, p.opts).computeMatrix()
}

// RelatePrepared computes the intersection matrix of two prepared geometries, using the options of a.
func RelatePrepared(a, b *PreparedGeometry) IntersectionMatrix {
	return newRelateOperation(a.graph.clone(0), b.graph.clone(1), a.opts).computeMatrix()
}

// Node is a node of the self-noded graph of a geometry: a point, line endpoint, ring start or self-intersection.
type Node struct {
	Coord    orb.Point
	Position CoordPos
}

// Nodes returns the nodes of the prepared geometry ordered by coordinate, with their position in the geometry.
func (p *PreparedGeometry) Nodes() []Node {
	nodes := []Node{}
	for _, n := range p.graph.nodes.sorted() {
		nodes = append(nodes, Node{
			Coord:    n.coord,
			Position: n.label.onPosition(0),
		})
	}
	return nodes
}
