package relate

import (
	"github.com/paulmach/orb"
	"github.com/sirupsen/logrus"
)

// geometryGraph is the planar graph of a single geometry, which is either argument 0 (A) or 1 (B) of a relate operation. Edges are the line strings and rings of the geometry, nodes are its points, line endpoints and, once computed, its self-intersections.
type geometryGraph struct {
	planarGraph

	argIndex        int
	geometry        orb.Geometry
	rule            BoundaryRule
	useBoundaryRule bool
	log             logrus.FieldLogger

	index             *segmentIndex
	computedSelfNodes bool

	// set when two segments of the geometry cross in their interiors
	hasSelfIntersection bool
}

func newGeometryGraph(argIndex int, g orb.Geometry, opts *Options) *geometryGraph {
	graph := &geometryGraph{
		planarGraph:     newPlanarGraph(),
		argIndex:        argIndex,
		geometry:        g,
		rule:            opts.BoundaryRule,
		useBoundaryRule: true,
		log:             opts.Log,
	}
	if g != nil {
		graph.addGeometry(g)
	}
	return graph
}

// clone returns a deep copy of the graph for use as argument argIndex. The segment index is shared since it is immutable.
func (g *geometryGraph) clone(argIndex int) *geometryGraph {
	return &geometryGraph{
		planarGraph:       g.planarGraph.clone(argIndex != g.argIndex),
		argIndex:          argIndex,
		geometry:          g.geometry,
		rule:              g.rule,
		useBoundaryRule:   g.useBoundaryRule,
		log:               g.log,
		index:             g.index,
		computedSelfNodes: g.computedSelfNodes,

		hasSelfIntersection: g.hasSelfIntersection,
	}
}

func (g *geometryGraph) segmentIndex() *segmentIndex {
	if g.index == nil {
		g.index = newSegmentIndex(g.edges)
	}
	return g.index
}

func (g *geometryGraph) addGeometry(geom orb.Geometry) {
	switch geom := geom.(type) {
	case orb.Point:
		g.addPoint(geom)
	case orb.MultiPoint:
		for _, p := range geom {
			g.addPoint(p)
		}
	case orb.LineString:
		g.addLineString(geom)
	case orb.MultiLineString:
		for _, ls := range geom {
			g.addLineString(ls)
		}
	case orb.Ring:
		g.addPolygon(orb.Polygon{geom})
	case orb.Polygon:
		g.addPolygon(geom)
	case orb.MultiPolygon:
		g.useBoundaryRule = false
		for _, poly := range geom {
			g.addPolygon(poly)
		}
	case orb.Collection:
		for _, child := range geom {
			g.addGeometry(child)
		}
	case orb.Bound:
		g.addPolygon(geom.ToPolygon())
	}
}

func (g *geometryGraph) addPoint(p orb.Point) {
	g.insertPoint(p, Inside)
}

func (g *geometryGraph) addLineString(ls orb.LineString) {
	if len(ls) == 0 {
		return
	}

	coords := polylineFrom(ls)
	if len(coords) < 2 {
		g.log.WithField("coord", pointString(coords[0])).Warn("relate: treating line string with a single distinct coordinate as a point")
		g.addPoint(coords[0])
		return
	}

	g.insertBoundaryPoint(coords[0])
	g.insertBoundaryPoint(coords[len(coords)-1])
	g.insertEdge(newEdge(coords, newLabel(g.argIndex, lineOrPointPosition(Inside))))
}

func (g *geometryGraph) addPolygon(poly orb.Polygon) {
	if len(poly) == 0 {
		return
	}
	g.addRing(poly[0], Outside, Inside)
	for _, hole := range poly[1:] {
		g.addRing(hole, Inside, Outside)
	}
}

// addRing adds a polygon ring as an area edge. cwLeft and cwRight are the positions on either side when the ring is clockwise.
func (g *geometryGraph) addRing(ring orb.Ring, cwLeft, cwRight CoordPos) {
	if len(ring) == 0 {
		return
	}

	coords := polylineFrom(ring)
	if len(coords) < 4 {
		g.log.WithField("coords", len(coords)).Warn("relate: ring has fewer than four distinct coordinates, results are undefined")
	}

	left, right := cwLeft, cwRight
	switch ring.Orientation() {
	case orb.CW:
	case orb.CCW:
		left, right = cwRight, cwLeft
	default:
		g.log.WithField("start", pointString(coords[0])).Warn("relate: ring has no winding order, results are undefined")
	}

	g.insertEdge(newEdge(coords, newLabel(g.argIndex, areaPosition(OnBoundary, left, right))))
	g.insertPoint(coords[0], OnBoundary)
}

func (g *geometryGraph) insertPoint(coord orb.Point, pos CoordPos) {
	n := g.nodes.insert(coord)
	n.label.setOnPosition(g.argIndex, pos)
}

// insertBoundaryPoint adds a line endpoint, which lies on the boundary depending on how many line endpoints coincide at the node.
func (g *geometryGraph) insertBoundaryPoint(coord orb.Point) {
	n := g.nodes.insert(coord)
	n.boundaryCount[g.argIndex]++
	n.label.setOnPosition(g.argIndex, g.rule.position(n.boundaryCount[g.argIndex]))
}

func (g *geometryGraph) isBoundaryNode(coord orb.Point) bool {
	return g.planarGraph.isBoundaryNode(g.argIndex, coord)
}

// isRings returns true if all edges are closed, in which case an edge need not be checked for intersections with itself.
func (g *geometryGraph) isRings() bool {
	switch geom := g.geometry.(type) {
	case orb.LineString:
		return polyline(geom).Closed()
	case orb.MultiLineString:
		for _, ls := range geom {
			if !polyline(ls).Closed() {
				return false
			}
		}
		return true
	case orb.Ring, orb.Polygon, orb.MultiPolygon, orb.Bound:
		return true
	}
	return false
}

// computeSelfNodes nodes the graph at all intersections between its own edges.
func (g *geometryGraph) computeSelfNodes() {
	if g.computedSelfNodes {
		return
	}
	g.computedSelfNodes = true

	checkSelf := !g.isRings()
	si := newSegmentIntersector(true)
	g.segmentIndex().selfJoin(func(a, b segmentRef) {
		if checkSelf || a.edgeIndex != b.edgeIndex {
			si.addIntersections(g.edges[a.edgeIndex], a.segmentIndex, g.edges[b.edgeIndex], b.segmentIndex)
		}
	})
	g.hasSelfIntersection = si.hasProper
	if g.hasSelfIntersection {
		g.log.WithField("geometry", g.argIndex).Debug("relate: geometry intersects itself")
	}
	g.addSelfIntersectionNodes()
}

func (g *geometryGraph) addSelfIntersectionNodes() {
	for _, e := range g.edges {
		pos := e.label.onPosition(g.argIndex)
		if !pos.Known() {
			panic("bug: edge without position for its own geometry")
		}
		for _, ei := range e.intersections {
			if g.isBoundaryNode(ei.coord) {
				continue
			}
			if pos == OnBoundary && g.useBoundaryRule {
				g.insertBoundaryPoint(ei.coord)
			} else {
				g.insertPoint(ei.coord, pos)
			}
		}
	}
}

// computeEdgeIntersections intersects the edges of both graphs and records the intersections on the edges.
func (g *geometryGraph) computeEdgeIntersections(other *geometryGraph) *segmentIntersector {
	si := newSegmentIntersector(false)
	si.setBoundaryNodes(g.boundaryNodes(g.argIndex), other.boundaryNodes(other.argIndex))
	g.segmentIndex().join(other.segmentIndex(), func(a, b segmentRef) {
		si.addIntersections(g.edges[a.edgeIndex], a.segmentIndex, other.edges[b.edgeIndex], b.segmentIndex)
	})
	return si
}
