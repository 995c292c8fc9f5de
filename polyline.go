package relate

import (
	"github.com/paulmach/orb"
	"github.com/twpayne/go-geom/xy/orientation"
)

// polyline is a list of coordinates that form a chain of segments. If the last coordinate equals the first coordinate, the polyline closes itself.
type polyline []orb.Point

// polylineFrom returns a copy of coords without consecutive repeated coordinates.
func polylineFrom(coords []orb.Point) polyline {
	p := make(polyline, 0, len(coords))
	for i, coord := range coords {
		if i == 0 || coord != coords[i-1] {
			p = append(p, coord)
		}
	}
	return p
}

// Closed returns true if the last point coincides with the first.
func (p polyline) Closed() bool {
	return 0 < len(p) && p[0] == p[len(p)-1]
}

// Segments returns the number of segments.
func (p polyline) Segments() int {
	if len(p) < 2 {
		return 0
	}
	return len(p) - 1
}

func (p polyline) segment(i int) line {
	return line{p[i], p[i+1]}
}

func (p polyline) bound() orb.Bound {
	if len(p) == 0 {
		return orb.Bound{}
	}
	return orb.MultiPoint(p).Bound()
}

// allEqual returns true if all coordinates coincide, i.e. the polyline collapses to a point.
func (p polyline) allEqual() bool {
	for _, coord := range p[1:] {
		if coord != p[0] {
			return false
		}
	}
	return true
}

// Contains returns true if the test point lies on any of the segments.
func (p polyline) Contains(test orb.Point) bool {
	for i := 0; i < p.Segments(); i++ {
		if p.segment(i).contains(test) {
			return true
		}
	}
	return false
}

// RingPosition returns the position of the test point relative to the area enclosed by the closed polyline, using the even-odd rule. Crossings of a ray in the +X direction are counted with exact orientation tests, and a point on any segment lies on the boundary.
func (p polyline) RingPosition(test orb.Point) CoordPos {
	if len(p) == 0 {
		return Outside
	} else if len(p) == 1 {
		if p[0] == test {
			return OnBoundary
		}
		return Outside
	}

	crossings := 0
	for i := 0; i < len(p)-1; i++ {
		p1, p2 := p[i], p[i+1]
		if p1[0] < test[0] && p2[0] < test[0] {
			continue // segment is left of the test point
		} else if test == p1 || test == p2 {
			return OnBoundary
		}

		if p1[1] == test[1] && p2[1] == test[1] {
			// horizontal segment on the ray
			minX, maxX := p1[0], p2[0]
			if maxX < minX {
				minX, maxX = maxX, minX
			}
			if minX <= test[0] && test[0] <= maxX {
				return OnBoundary
			}
			continue
		}

		// count only segments that straddle the ray, including the upper endpoint but excluding the lower
		if (test[1] < p1[1] && p2[1] <= test[1]) || (test[1] < p2[1] && p1[1] <= test[1]) {
			orient := orient2d(p1, p2, test)
			if orient == orientation.Collinear {
				return OnBoundary
			}
			if p2[1] < p1[1] {
				orient = -orient
			}
			if orient == orientation.CounterClockwise {
				crossings++
			}
		}
	}
	if crossings%2 == 1 {
		return Inside
	}
	return Outside
}
