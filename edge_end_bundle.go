package relate

import (
	"strings"

	"github.com/paulmach/orb"
)

// edgeEndBundle groups the edge ends at a node that leave in the same direction, and computes their combined label.
type edgeEndBundle struct {
	coord orb.Point
	ends  []edgeEnd
	label label
}

func newEdgeEndBundle(end edgeEnd) *edgeEndBundle {
	return &edgeEndBundle{
		coord: end.coord0,
		ends:  []edgeEnd{end},
	}
}

// computeLabel merges the labels of all edge ends into the bundle's label. The bundle is an area bundle if any of its ends belongs to an area.
func (b *edgeEndBundle) computeLabel(rule BoundaryRule) {
	area := false
	for _, end := range b.ends {
		if end.label.isArea() {
			area = true
			break
		}
	}

	b.label = emptyLineOrPointLabel()
	if area {
		b.label = emptyAreaLabel()
	}
	for i := 0; i < 2; i++ {
		b.computeLabelOn(i, rule)
		if area {
			b.computeLabelSide(i, Left)
			b.computeLabelSide(i, Right)
		}
	}
}

// computeLabelOn sets the On position: the bundle is on the boundary if the boundary rule accepts the number of boundary ends, and otherwise in the interior if any end is.
func (b *edgeEndBundle) computeLabelOn(geomIndex int, rule BoundaryRule) {
	boundaryCount := 0
	interior := false
	for _, end := range b.ends {
		switch end.label.onPosition(geomIndex) {
		case OnBoundary:
			boundaryCount++
		case Inside:
			interior = true
		}
	}

	var pos CoordPos
	if interior {
		pos = Inside
	}
	if 0 < boundaryCount {
		pos = rule.position(boundaryCount)
	}
	if pos.Known() {
		b.label.setOnPosition(geomIndex, pos)
	}
}

// computeLabelSide sets the position of a side: Inside if any area end has the side inside, else Outside if any has it outside.
func (b *edgeEndBundle) computeLabelSide(geomIndex int, side Direction) {
	var pos CoordPos
	for _, end := range b.ends {
		if !end.label.isArea() {
			continue
		}
		switch end.label.position(geomIndex, side) {
		case Inside:
			b.label.setPosition(geomIndex, side, Inside)
			return
		case Outside:
			pos = Outside
		}
	}
	if pos.Known() {
		b.label.setPosition(geomIndex, side, pos)
	}
}

// updateMatrix raises the matrix for the edge pieces of the bundle.
func (b *edgeEndBundle) updateMatrix(im *IntersectionMatrix) {
	im.updateFromEdgeLabel(b.label)
}

func (b *edgeEndBundle) String() string {
	sb := strings.Builder{}
	sb.WriteString("bundle(")
	sb.WriteString(b.label.String())
	sb.WriteString(")")
	for _, end := range b.ends {
		sb.WriteString(" ")
		sb.WriteString(end.String())
	}
	return sb.String()
}
