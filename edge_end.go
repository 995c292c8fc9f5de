package relate

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/twpayne/go-geom/xy/orientation"
)

// quadrant of a direction vector, counter-clockwise starting at the positive x-axis. Both positive axes belong to NE, the negative x-axis to NW and the negative y-axis to SE.
type quadrant int

// see quadrant
const (
	noQuadrant quadrant = iota - 1
	northEast
	northWest
	southWest
	southEast
)

func quadrantOf(dx, dy float64) quadrant {
	if dx == 0.0 && dy == 0.0 {
		return noQuadrant
	} else if 0.0 <= dx {
		if 0.0 <= dy {
			return northEast
		}
		return southEast
	} else if 0.0 <= dy {
		return northWest
	}
	return southWest
}

////////////////////////////////////////////////////////////////

// edgeEnd is the part of an edge incident to a node, directed away from the node at coord0 towards coord1.
type edgeEnd struct {
	coord0, coord1 orb.Point
	delta          orb.Point
	quadrant       quadrant
	label          label
}

func newEdgeEnd(coord0, coord1 orb.Point, lbl label) edgeEnd {
	dx, dy := coord1[0]-coord0[0], coord1[1]-coord0[1]
	return edgeEnd{
		coord0:   coord0,
		coord1:   coord1,
		delta:    orb.Point{dx, dy},
		quadrant: quadrantOf(dx, dy),
		label:    lbl,
	}
}

// compareDirection orders edge ends counter-clockwise around their node, starting at the positive x-axis. Edge ends in the same direction compare equal.
func (a edgeEnd) compareDirection(b edgeEnd) int {
	if a.delta == b.delta {
		return 0
	} else if a.quadrant != noQuadrant && b.quadrant != noQuadrant && a.quadrant != b.quadrant {
		if a.quadrant < b.quadrant {
			return -1
		}
		return 1
	}

	switch orient2d(b.coord0, b.coord1, a.coord1) {
	case orientation.Clockwise:
		return -1
	case orientation.CounterClockwise:
		return 1
	}
	return 0
}

func (a edgeEnd) String() string {
	return fmt.Sprintf("%v->%v %v", pointString(a.coord0), pointString(a.coord1), a.label)
}
