package relate

import (
	"fmt"
	"slices"

	"github.com/paulmach/orb"
)

// node is a unique coordinate of the graph with its label. Geometry graphs count the line endpoints at the node per geometry so that the boundary rule can be applied, relate nodes additionally own the star of edge ends incident to them.
type node struct {
	coord         orb.Point
	label         label
	boundaryCount [2]int
	star          *edgeEndStar

	// position of coord in each input geometry, computed at most once
	located [2]CoordPos
}

// isIsolated returns true if the node is labelled for only one geometry.
func (n *node) isIsolated() bool {
	return n.label.geometryCount() == 1
}

// setLabelBoundary marks the node as lying on the boundary of an area for geometry geomIndex. A node that is already on the boundary, such as the point where two rings of a geometry touch, is moved to the interior.
func (n *node) setLabelBoundary(geomIndex int) {
	pos := OnBoundary
	switch n.label.onPosition(geomIndex) {
	case OnBoundary:
		pos = Inside
	case Inside:
		pos = OnBoundary
	}
	n.label.setOnPosition(geomIndex, pos)
}

func (n *node) swapArgs() {
	n.label.swapArgs()
	n.boundaryCount[0], n.boundaryCount[1] = n.boundaryCount[1], n.boundaryCount[0]
}

func (n *node) String() string {
	return fmt.Sprintf("node(%v %v)", pointString(n.coord), n.label)
}

////////////////////////////////////////////////////////////////

// nodeMap stores nodes in insertion order, addressed by coordinate.
type nodeMap struct {
	nodes []node
	index map[orb.Point]int
}

func newNodeMap() nodeMap {
	return nodeMap{
		index: map[orb.Point]int{},
	}
}

// insert returns the node at coord, adding it when it does not exist yet. The returned pointer is valid until the next insert.
func (m *nodeMap) insert(coord orb.Point) *node {
	if isNaNPoint(coord) {
		panic("bug: NaN coordinates are not supported")
	}
	if i, ok := m.index[coord]; ok {
		return &m.nodes[i]
	}
	m.index[coord] = len(m.nodes)
	m.nodes = append(m.nodes, node{coord: coord})
	return &m.nodes[len(m.nodes)-1]
}

// find returns the node at coord, or nil.
func (m *nodeMap) find(coord orb.Point) *node {
	if i, ok := m.index[coord]; ok {
		return &m.nodes[i]
	}
	return nil
}

func (m *nodeMap) len() int {
	return len(m.nodes)
}

// sorted returns the nodes ordered by coordinate, first by X then by Y.
func (m *nodeMap) sorted() []*node {
	nodes := make([]*node, len(m.nodes))
	for i := range m.nodes {
		nodes[i] = &m.nodes[i]
	}
	slices.SortFunc(nodes, func(a, b *node) int {
		return lexCompare(a.coord, b.coord)
	})
	return nodes
}

// clone returns a copy of the nodes without their stars.
func (m *nodeMap) clone() nodeMap {
	nodes := make([]node, len(m.nodes))
	for i, n := range m.nodes {
		nodes[i] = node{coord: n.coord, label: n.label, boundaryCount: n.boundaryCount}
	}
	index := make(map[orb.Point]int, len(m.index))
	for coord, i := range m.index {
		index[coord] = i
	}
	return nodeMap{nodes, index}
}
