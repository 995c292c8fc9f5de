package relate

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	geom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/bigxy"
	"github.com/twpayne/go-geom/xy/orientation"
)

// orient2d returns the orientation of c relative to the directed line through a and b: CounterClockwise if c lies to the left, Clockwise if it lies to the right and Collinear otherwise. The predicate is exact.
func orient2d(a, b, c orb.Point) orientation.Type {
	return bigxy.OrientationIndex(geom.Coord{a[0], a[1]}, geom.Coord{b[0], b[1]}, geom.Coord{c[0], c[1]})
}

// lexCompare orders coordinates by X and then by Y.
func lexCompare(a, b orb.Point) int {
	if a[0] < b[0] {
		return -1
	} else if b[0] < a[0] {
		return 1
	} else if a[1] < b[1] {
		return -1
	} else if b[1] < a[1] {
		return 1
	}
	return 0
}

func pointString(p orb.Point) string {
	return fmt.Sprintf("[%g; %g]", p[0], p[1])
}

func isNaNPoint(p orb.Point) bool {
	return math.IsNaN(p[0]) || math.IsNaN(p[1])
}

////////////////////////////////////////////////////////////////

// line is a directed segment between two coordinates.
type line struct {
	start, end orb.Point
}

func (l line) bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{math.Min(l.start[0], l.end[0]), math.Min(l.start[1], l.end[1])},
		Max: orb.Point{math.Max(l.start[0], l.end[0]), math.Max(l.start[1], l.end[1])},
	}
}

func (l line) isDegenerate() bool {
	return l.start == l.end
}

// contains returns true if p lies on the closed segment.
func (l line) contains(p orb.Point) bool {
	if !l.bound().Contains(p) {
		return false
	}
	return orient2d(l.start, l.end, p) == orientation.Collinear
}

// distance returns the Euclidean distance of p to the segment.
func (l line) distance(p orb.Point) float64 {
	if l.isDegenerate() {
		return math.Hypot(p[0]-l.start[0], p[1]-l.start[1])
	}
	dx, dy := l.end[0]-l.start[0], l.end[1]-l.start[1]
	t := ((p[0]-l.start[0])*dx + (p[1]-l.start[1])*dy) / (dx*dx + dy*dy)
	if t <= 0.0 {
		return math.Hypot(p[0]-l.start[0], p[1]-l.start[1])
	} else if 1.0 <= t {
		return math.Hypot(p[0]-l.end[0], p[1]-l.end[1])
	}
	return math.Abs((p[0]-l.start[0])*dy-(p[1]-l.start[1])*dx) / math.Sqrt(dx*dx+dy*dy)
}

func (l line) String() string {
	return fmt.Sprintf("%v-%v", pointString(l.start), pointString(l.end))
}
