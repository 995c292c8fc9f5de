package relate

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb"
)

// edgeEndStar holds the bundles of edge ends at a node ordered counter-clockwise.
type edgeEndStar struct {
	coord   orb.Point
	bundles []*edgeEndBundle
}

func newEdgeEndStar(coord orb.Point) *edgeEndStar {
	return &edgeEndStar{
		coord: coord,
	}
}

// insert adds the edge end to the bundle of its direction.
func (s *edgeEndStar) insert(end edgeEnd) {
	lo, hi := 0, len(s.bundles)
	for lo < hi {
		mid := (lo + hi) / 2
		if cmp := s.bundles[mid].ends[0].compareDirection(end); cmp < 0 {
			lo = mid + 1
		} else if 0 < cmp {
			hi = mid
		} else {
			s.bundles[mid].ends = append(s.bundles[mid].ends, end)
			return
		}
	}
	s.bundles = append(s.bundles, nil)
	copy(s.bundles[lo+1:], s.bundles[lo:])
	s.bundles[lo] = newEdgeEndBundle(end)
}

// computeLabeling labels all bundles of the star. Side positions are propagated around the node, and positions that remain unknown are taken from locate, which returns the position of the node in the given geometry.
func (s *edgeEndStar) computeLabeling(dims [2]Dimension, rule BoundaryRule, locate func(int) CoordPos) {
	for _, b := range s.bundles {
		b.computeLabel(rule)
	}
	s.propagateSideLabels(0)
	s.propagateSideLabels(1)

	// a line bundle on the boundary of a geometry means an area ring has collapsed to a line
	collapsed := [2]bool{}
	for _, b := range s.bundles {
		for i := 0; i < 2; i++ {
			if b.label.isLine(i) && b.label.onPosition(i) == OnBoundary {
				collapsed[i] = true
			}
		}
	}

	for _, b := range s.bundles {
		for i := 0; i < 2; i++ {
			if !b.label.isAnyEmpty(i) {
				continue
			}
			pos := Outside
			if !collapsed[i] && dims[i] == DimArea {
				pos = locate(i)
			}
			b.label.setAllPositionsIfEmpty(i, pos)
		}
	}
}

// propagateSideLabels walks counter-clockwise around the node and fills in the sides of the bundles from the side of the previous area bundle.
func (s *edgeEndStar) propagateSideLabels(geomIndex int) {
	var start CoordPos
	for _, b := range s.bundles {
		if b.label.isGeomArea(geomIndex) {
			if pos := b.label.position(geomIndex, Left); pos.Known() {
				start = pos
			}
		}
	}
	if !start.Known() {
		return
	}

	cur := start
	for _, b := range s.bundles {
		if !b.label.onPosition(geomIndex).Known() {
			b.label.setOnPosition(geomIndex, cur)
		}
		if !b.label.isGeomArea(geomIndex) {
			continue
		}

		left := b.label.position(geomIndex, Left)
		right := b.label.position(geomIndex, Right)
		if right.Known() {
			if right != cur {
				panic(fmt.Sprintf("bug: side position conflict at %v: right side is %v but expected %v", pointString(s.coord), right, cur))
			} else if !left.Known() {
				panic(fmt.Sprintf("bug: single null side at %v", pointString(s.coord)))
			}
			cur = left
		} else {
			b.label.setPosition(geomIndex, Right, cur)
			b.label.setPosition(geomIndex, Left, cur)
		}
	}
}

// updateMatrix raises the matrix for all bundles of the star.
func (s *edgeEndStar) updateMatrix(im *IntersectionMatrix) {
	for _, b := range s.bundles {
		b.updateMatrix(im)
	}
}

func (s *edgeEndStar) String() string {
	sb := strings.Builder{}
	sb.WriteString("star ")
	sb.WriteString(pointString(s.coord))
	for _, b := range s.bundles {
		sb.WriteString("\n  ")
		sb.WriteString(b.String())
	}
	return sb.String()
}
