package relate

import (
	"github.com/paulmach/orb"
	"github.com/sirupsen/logrus"
)

// Options are the options for relating geometries.
type Options struct {
	// BoundaryRule decides which line endpoints lie on the boundary, defaults to Mod2BoundaryRule.
	BoundaryRule BoundaryRule

	// Log receives warnings about degenerate input and debug traces of the matrix computation.
	Log logrus.FieldLogger
}

// DefaultOptions are the default options.
var DefaultOptions = Options{
	BoundaryRule: Mod2BoundaryRule,
	Log:          logrus.StandardLogger(),
}

func defaultOptions(opts *Options) *Options {
	if opts == nil {
		defaultOptions := DefaultOptions
		return &defaultOptions
	}
	o := *opts
	if o.BoundaryRule == nil {
		o.BoundaryRule = Mod2BoundaryRule
	}
	if o.Log == nil {
		o.Log = logrus.StandardLogger()
	}
	return &o
}

// Relate computes the DE-9IM intersection matrix of geometries a and b with the default options.
//
// Collections whose polygons overlap each other are not supported and panic, as the sides of their rings contradict each other.
func Relate(a, b orb.Geometry) IntersectionMatrix {
	return RelateWithOptions(a, b, nil)
}

// RelateWithOptions computes the DE-9IM intersection matrix of geometries a and b. A nil opts uses DefaultOptions. Like Relate, it panics for collections with overlapping polygons.
func RelateWithOptions(a, b orb.Geometry, opts *Options) IntersectionMatrix {
	opts = defaultOptions(opts)
	graphA := newGeometryGraph(0, a, opts)
	graphB := newGeometryGraph(1, b, opts)
	return newRelateOperation(graphA, graphB, opts).computeMatrix()
}

////////////////////////////////////////////////////////////////

// relateOperation computes the intersection matrix of two geometry graphs. It combines the nodes of both graphs into a single graph in which every node is labelled for both geometries.
type relateOperation struct {
	graphs        [2]*geometryGraph
	dims          [2]Dimension
	nodes         nodeMap
	isolatedEdges []*edge

	rule BoundaryRule
	log  logrus.FieldLogger
}

func newRelateOperation(graphA, graphB *geometryGraph, opts *Options) *relateOperation {
	return &relateOperation{
		graphs: [2]*geometryGraph{graphA, graphB},
		dims:   [2]Dimension{Dimensions(graphA.geometry), Dimensions(graphB.geometry)},
		nodes:  newNodeMap(),
		rule:   opts.BoundaryRule,
		log:    opts.Log,
	}
}

func (op *relateOperation) computeMatrix() IntersectionMatrix {
	im := NewIntersectionMatrix()
	im.Set(Outside, Outside, DimArea) // exteriors of bounded geometries always intersect

	boundA, okA := geometryBound(op.graphs[0].geometry)
	boundB, okB := geometryBound(op.graphs[1].geometry)
	if !okA || !okB || !boundA.Intersects(boundB) {
		op.computeDisjointMatrix(&im)
		return im
	}

	op.graphs[0].computeSelfNodes()
	op.graphs[1].computeSelfNodes()
	si := op.graphs[0].computeEdgeIntersections(op.graphs[1])

	op.computeIntersectionNodes(0)
	op.computeIntersectionNodes(1)
	op.copyNodesAndLabels(0)
	op.copyNodesAndLabels(1)
	op.labelIsolatedNodes()
	op.computeProperIntersectionMatrix(si, &im)

	// edge ends of all edges of A, then of B
	for i := 0; i < 2; i++ {
		for _, end := range computeEdgeEnds(op.graphs[i].edges) {
			n := op.nodes.insert(end.coord0)
			if n.star == nil {
				n.star = newEdgeEndStar(n.coord)
			}
			n.star.insert(end)
		}
	}

	nodes := op.nodes.sorted()
	for _, n := range nodes {
		if n.star != nil {
			n.star.computeLabeling(op.dims, op.rule, func(i int) CoordPos {
				return op.locate(n, i)
			})
		}
	}

	op.labelIsolatedEdges(0, 1)
	op.labelIsolatedEdges(1, 0)

	op.log.WithFields(logrus.Fields{
		"matrix":         im.String(),
		"nodes":          op.nodes.len(),
		"isolated_edges": len(op.isolatedEdges),
	}).Debug("relate: matrix before labelling")
	op.updateMatrix(nodes, &im)
	op.log.WithField("matrix", im.String()).Debug("relate: matrix after labelling")
	return im
}

// computeDisjointMatrix fills in the matrix of two geometries whose bounds do not intersect, so that each geometry lies entirely in the exterior of the other.
func (op *relateOperation) computeDisjointMatrix(im *IntersectionMatrix) {
	if dim := op.dims[0]; dim != DimEmpty {
		im.Set(Inside, Outside, dim)
		if bdim := BoundaryDimensions(op.graphs[0].geometry); bdim != DimEmpty {
			im.Set(OnBoundary, Outside, bdim)
		}
	}
	if dim := op.dims[1]; dim != DimEmpty {
		im.Set(Outside, Inside, dim)
		if bdim := BoundaryDimensions(op.graphs[1].geometry); bdim != DimEmpty {
			im.Set(Outside, OnBoundary, bdim)
		}
	}
}

// computeIntersectionNodes adds a node for every intersection on the edges of geometry geomIndex. Intersections on an area boundary are boundary nodes, others lie in the interior unless the node is known already.
func (op *relateOperation) computeIntersectionNodes(geomIndex int) {
	for _, e := range op.graphs[geomIndex].edges {
		onBoundary := e.label.onPosition(geomIndex) == OnBoundary
		for _, ei := range e.intersections {
			n := op.nodes.insert(ei.coord)
			if onBoundary {
				n.setLabelBoundary(geomIndex)
			} else if n.label.isEmpty(geomIndex) {
				n.label.setOnPosition(geomIndex, Inside)
			}
		}
	}
}

// copyNodesAndLabels copies the nodes of the graph of geometry geomIndex, whose positions take precedence over those computed from the intersections.
func (op *relateOperation) copyNodesAndLabels(geomIndex int) {
	graph := op.graphs[geomIndex]
	for i := range graph.nodes.nodes {
		gn := &graph.nodes.nodes[i]
		pos := gn.label.onPosition(geomIndex)
		if !pos.Known() {
			panic("bug: geometry graph node without position: " + gn.String())
		}
		n := op.nodes.insert(gn.coord)
		n.label.setOnPosition(geomIndex, pos)
	}
}

// labelIsolatedNodes labels the nodes that belong to only one geometry with their position in the other geometry.
func (op *relateOperation) labelIsolatedNodes() {
	for i := range op.nodes.nodes {
		n := &op.nodes.nodes[i]
		if n.label.geometryCount() == 0 {
			panic("bug: node with empty label: " + n.String())
		}
		if n.isIsolated() {
			target := 0
			if !n.label.isEmpty(0) {
				target = 1
			}
			n.label.setAllPositions(target, op.locate(n, target))
		}
	}
}

// locate returns the position of the node in geometry geomIndex. The result is kept on the node so that the rings of the geometry are walked at most once per node.
func (op *relateOperation) locate(n *node, geomIndex int) CoordPos {
	if !n.located[geomIndex].Known() {
		n.located[geomIndex] = PositionWithRule(op.graphs[geomIndex].geometry, n.coord, op.rule)
	}
	return n.located[geomIndex]
}

// computeProperIntersectionMatrix sets a lower bound on the matrix from proper intersections, which are not noded.
func (op *relateOperation) computeProperIntersectionMatrix(si *segmentIntersector, im *IntersectionMatrix) {
	dimA, dimB := op.dims[0], op.dims[1]
	switch {
	case dimA == DimArea && dimB == DimArea:
		if si.hasProper {
			_ = im.SetAtLeastFromString("212101212")
		}
	case dimA == DimArea && dimB == DimLine:
		if si.hasProper {
			_ = im.SetAtLeastFromString("FFF0FFFF2")
		}
		if si.hasProperInterior {
			_ = im.SetAtLeastFromString("1FFFFF1FF")
		}
	case dimA == DimLine && dimB == DimArea:
		if si.hasProper {
			_ = im.SetAtLeastFromString("F0FFFFFF2")
		}
		if si.hasProperInterior {
			_ = im.SetAtLeastFromString("1F1FFFFFF")
		}
	case dimA == DimLine && dimB == DimLine:
		if si.hasProperInterior {
			_ = im.SetAtLeastFromString("0FFFFFFFF")
		}
	}
}

// labelIsolatedEdges labels the edges of geometry thisIndex that intersect no edge of the other geometry with their position in the other geometry.
func (op *relateOperation) labelIsolatedEdges(thisIndex, targetIndex int) {
	target := op.graphs[targetIndex].geometry
	for _, e := range op.graphs[thisIndex].edges {
		if !e.isolated {
			continue
		}
		pos := Outside
		if DimPoint < op.dims[targetIndex] {
			pos = PositionWithRule(target, e.coords[0], op.rule)
		}
		e.label.setAllPositions(targetIndex, pos)
		op.isolatedEdges = append(op.isolatedEdges, e)
	}
}

func (op *relateOperation) updateMatrix(nodes []*node, im *IntersectionMatrix) {
	for _, e := range op.isolatedEdges {
		im.updateFromEdgeLabel(e.label)
	}
	for _, n := range nodes {
		im.updateFromNodeLabel(n.label)
		if n.star != nil {
			n.star.updateMatrix(im)
		}
	}
}

// geometryBound returns the bounding box of all coordinates of g, or false if g is empty.
func geometryBound(g orb.Geometry) (orb.Bound, bool) {
	bound, ok := orb.Bound{}, false
	extend := func(b orb.Bound) {
		if ok {
			bound = bound.Union(b)
		} else {
			bound, ok = b, true
		}
	}

	switch g := g.(type) {
	case orb.MultiLineString:
		for _, ls := range g {
			if len(ls) != 0 {
				extend(ls.Bound())
			}
		}
	case orb.MultiPolygon:
		for _, poly := range g {
			if len(poly) != 0 && len(poly[0]) != 0 {
				extend(poly.Bound())
			}
		}
	case orb.Collection:
		for _, child := range g {
			if b, childOK := geometryBound(child); childOK {
				extend(b)
			}
		}
	default:
		if !isEmpty(g) {
			extend(g.Bound())
		}
	}
	return bound, ok
}
