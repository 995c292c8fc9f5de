package relate

import (
	"fmt"
	"slices"
	"strings"

	"github.com/paulmach/orb"
)

// edgeIntersection is a point where an edge is intersected, identified by the segment it lies on and its distance along that segment. An intersection at a vertex is normalized to the segment starting at that vertex.
type edgeIntersection struct {
	coord        orb.Point
	segmentIndex int
	distance     float64
}

func (a edgeIntersection) compare(b edgeIntersection) int {
	if a.segmentIndex < b.segmentIndex {
		return -1
	} else if b.segmentIndex < a.segmentIndex {
		return 1
	} else if a.distance < b.distance {
		return -1
	} else if b.distance < a.distance {
		return 1
	}
	return 0
}

func (a edgeIntersection) String() string {
	return fmt.Sprintf("%v@%d+%g", pointString(a.coord), a.segmentIndex, a.distance)
}

////////////////////////////////////////////////////////////////

// edge is a chain of coordinates of one geometry together with its label and all points where other edges intersect it.
type edge struct {
	coords        polyline
	label         label
	isolated      bool
	intersections []edgeIntersection // sorted and unique
}

func newEdge(coords polyline, lbl label) *edge {
	return &edge{
		coords:   coords,
		label:    lbl,
		isolated: true,
	}
}

func (e *edge) closed() bool {
	return e.coords.Closed()
}

// addIntersections adds the intersection points found on segment segmentIndex, both endpoints for a collinear overlap.
func (e *edge) addIntersections(li lineIntersection, segmentIndex int) {
	if li.collinear {
		e.addIntersection(li.overlap.start, segmentIndex)
		e.addIntersection(li.overlap.end, segmentIndex)
	} else {
		e.addIntersection(li.point, segmentIndex)
	}
}

func (e *edge) addIntersection(coord orb.Point, segmentIndex int) {
	distance := edgeDistance(coord, e.coords.segment(segmentIndex))
	if next := segmentIndex + 1; next < len(e.coords) && coord == e.coords[next] {
		segmentIndex = next
		distance = 0.0
	}
	e.insertIntersection(edgeIntersection{coord, segmentIndex, distance})
}

func (e *edge) insertIntersection(ei edgeIntersection) {
	i, found := slices.BinarySearchFunc(e.intersections, ei, edgeIntersection.compare)
	if !found {
		e.intersections = slices.Insert(e.intersections, i, ei)
	}
}

// addEndpointIntersections makes sure the first and last coordinates are in the intersection list so that the edge is split at its endpoints.
func (e *edge) addEndpointIntersections() {
	last := len(e.coords) - 1
	e.insertIntersection(edgeIntersection{e.coords[0], 0, 0.0})
	e.insertIntersection(edgeIntersection{e.coords[last], last, 0.0})
}

// clone returns a deep copy of the edge.
func (e *edge) clone() *edge {
	return &edge{
		coords:        e.coords,
		label:         e.label,
		isolated:      e.isolated,
		intersections: slices.Clone(e.intersections),
	}
}

func (e *edge) String() string {
	sb := strings.Builder{}
	sb.WriteString("edge(")
	sb.WriteString(e.label.String())
	sb.WriteString(")")
	for i, coord := range e.coords {
		if i == 0 {
			sb.WriteString(" ")
		} else {
			sb.WriteString(",")
		}
		sb.WriteString(pointString(coord))
	}
	return sb.String()
}
