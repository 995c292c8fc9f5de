package relate

import "github.com/paulmach/orb"

// segmentIntersector computes the intersections between pairs of segments and records them on their edges. Between two different geometries it also tracks whether a proper intersection was found and whether it lies in the interior of both.
type segmentIntersector struct {
	sameGeometry bool

	hasProper         bool
	hasProperInterior bool
	boundaryNodes     [2][]orb.Point
}

func newSegmentIntersector(sameGeometry bool) *segmentIntersector {
	return &segmentIntersector{
		sameGeometry: sameGeometry,
	}
}

func (si *segmentIntersector) setBoundaryNodes(boundary0, boundary1 []orb.Point) {
	si.boundaryNodes = [2][]orb.Point{boundary0, boundary1}
}

func (si *segmentIntersector) isBoundaryPoint(p orb.Point) bool {
	for _, coords := range si.boundaryNodes {
		for _, coord := range coords {
			if coord == p {
				return true
			}
		}
	}
	return false
}

// isTrivialIntersection returns true for the intersection of neighbouring segments of the same edge, which always share a vertex.
func isTrivialIntersection(li lineIntersection, e0 *edge, segment0 int, e1 *edge, segment1 int) bool {
	if e0 != e1 || li.collinear {
		return false
	} else if segment0-segment1 == 1 || segment1-segment0 == 1 {
		return true
	} else if e0.closed() {
		last := len(e0.coords) - 2
		if (segment0 == 0 && segment1 == last) || (segment1 == 0 && segment0 == last) {
			return true
		}
	}
	return false
}

// addIntersections intersects segment segment0 of e0 with segment segment1 of e1.
func (si *segmentIntersector) addIntersections(e0 *edge, segment0 int, e1 *edge, segment1 int) {
	if e0 == e1 && segment0 == segment1 {
		return
	}

	li, ok := intersectLines(e0.coords.segment(segment0), e1.coords.segment(segment1))
	if !ok {
		return
	}

	if !si.sameGeometry {
		e0.isolated = false
		e1.isolated = false
	}
	if isTrivialIntersection(li, e0, segment0, e1, segment1) {
		return
	}

	// proper intersections between geometries only set a lower bound on the matrix
	if si.sameGeometry || !li.proper {
		e0.addIntersections(li, segment0)
		e1.addIntersections(li, segment1)
	}
	if li.proper {
		si.hasProper = true
		if !si.isBoundaryPoint(li.point) {
			si.hasProperInterior = true
		}
	}
}
