package relate

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/twpayne/go-geom/xy/orientation"
)

// lineIntersection is the intersection of two segments: either a single point or, for collinear segments, an overlapping segment. A proper intersection is a single point that lies in the interior of both segments.
type lineIntersection struct {
	collinear bool
	proper    bool
	point     orb.Point
	overlap   line
}

func improperIntersection(p orb.Point) lineIntersection {
	return lineIntersection{point: p}
}

func collinearIntersection(l line) lineIntersection {
	return lineIntersection{collinear: true, overlap: l}
}

// intersectLines computes the intersection of segments p and q. Zero-length segments are allowed and are handled as points.
func intersectLines(p, q line) (lineIntersection, bool) {
	if !p.bound().Intersects(q.bound()) {
		return lineIntersection{}, false
	}

	pq1 := orient2d(p.start, p.end, q.start)
	pq2 := orient2d(p.start, p.end, q.end)
	if pq1 == pq2 && pq1 != orientation.Collinear {
		return lineIntersection{}, false
	}

	qp1 := orient2d(q.start, q.end, p.start)
	qp2 := orient2d(q.start, q.end, p.end)
	if qp1 == qp2 && qp1 != orientation.Collinear {
		return lineIntersection{}, false
	}

	if pq1 == orientation.Collinear && pq2 == orientation.Collinear && qp1 == orientation.Collinear && qp2 == orientation.Collinear {
		return intersectCollinear(p, q)
	}

	// the segments intersect in a single point; if it is an endpoint we copy it to keep the exact value
	if pq1 == orientation.Collinear || pq2 == orientation.Collinear || qp1 == orientation.Collinear || qp2 == orientation.Collinear {
		// equal endpoints are checked explicitly since the orientation tests may be inconsistent for them
		var z orb.Point
		if p.start == q.start || p.start == q.end {
			z = p.start
		} else if p.end == q.start || p.end == q.end {
			z = p.end
		} else if pq1 == orientation.Collinear {
			z = q.start
		} else if pq2 == orientation.Collinear {
			z = q.end
		} else if qp1 == orientation.Collinear {
			z = p.start
		} else {
			z = p.end
		}
		return improperIntersection(z), true
	}
	return lineIntersection{proper: true, point: properIntersection(p, q)}, true
}

func intersectCollinear(p, q line) (lineIntersection, bool) {
	pBound, qBound := p.bound(), q.bound()
	pqStart := pBound.Contains(q.start)
	pqEnd := pBound.Contains(q.end)
	qpStart := qBound.Contains(p.start)
	qpEnd := qBound.Contains(p.end)

	switch {
	case pqStart && pqEnd:
		return collinearIntersection(q), true
	case qpStart && qpEnd:
		return collinearIntersection(p), true
	case pqStart && !pqEnd && qpStart && !qpEnd && q.start == p.start:
		return improperIntersection(q.start), true
	case pqStart && qpStart:
		return collinearIntersection(line{q.start, p.start}), true
	case pqStart && !pqEnd && !qpStart && qpEnd && q.start == p.end:
		return improperIntersection(q.start), true
	case pqStart && qpEnd:
		return collinearIntersection(line{q.start, p.end}), true
	case !pqStart && pqEnd && qpStart && !qpEnd && q.end == p.start:
		return improperIntersection(q.end), true
	case pqEnd && qpStart:
		return collinearIntersection(line{q.end, p.start}), true
	case !pqStart && pqEnd && !qpStart && qpEnd && q.end == p.end:
		return improperIntersection(q.end), true
	case pqEnd && qpEnd:
		return collinearIntersection(line{q.end, p.end}), true
	}
	return lineIntersection{}, false
}

// properIntersection computes the crossing point using homogeneous coordinates. Round-off may place the raw point outside the segments, in which case the nearest endpoint is used.
func properIntersection(p, q line) orb.Point {
	z, ok := rawLineIntersection(p, q)
	if !ok || !p.bound().Contains(z) || !q.bound().Contains(z) {
		z = nearestEndpoint(p, q)
	}
	return z
}

// rawLineIntersection intersects the infinite lines through p and q. The ordinates are conditioned by subtracting the midpoint of the overlap of both bounding boxes.
func rawLineIntersection(p, q line) (orb.Point, bool) {
	pBound, qBound := p.bound(), q.bound()
	midX := (math.Max(pBound.Min[0], qBound.Min[0]) + math.Min(pBound.Max[0], qBound.Max[0])) / 2.0
	midY := (math.Max(pBound.Min[1], qBound.Min[1]) + math.Min(pBound.Max[1], qBound.Max[1])) / 2.0

	p1x, p1y := p.start[0]-midX, p.start[1]-midY
	p2x, p2y := p.end[0]-midX, p.end[1]-midY
	q1x, q1y := q.start[0]-midX, q.start[1]-midY
	q2x, q2y := q.end[0]-midX, q.end[1]-midY

	px := p1y - p2y
	py := p2x - p1x
	pw := p1x*p2y - p2x*p1y

	qx := q1y - q2y
	qy := q2x - q1x
	qw := q1x*q2y - q2x*q1y

	xw := py*qw - qy*pw
	yw := qx*pw - px*qw
	w := px*qy - qx*py

	x, y := xw/w, yw/w
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return orb.Point{}, false // parallel
	}
	return orb.Point{x + midX, y + midY}, true
}

func nearestEndpoint(p, q line) orb.Point {
	z := p.start
	minDist := q.distance(p.start)
	if d := q.distance(p.end); d < minDist {
		z, minDist = p.end, d
	}
	if d := p.distance(q.start); d < minDist {
		z, minDist = q.start, d
	}
	if d := p.distance(q.end); d < minDist {
		z = q.end
	}
	return z
}

// edgeDistance returns a monotone measure of how far z lies along segment l: the largest absolute ordinate difference from the start. It is zero only at the start.
func edgeDistance(z orb.Point, l line) float64 {
	dx := math.Abs(l.end[0] - l.start[0])
	dy := math.Abs(l.end[1] - l.start[1])
	if z == l.start {
		return 0.0
	} else if z == l.end {
		return math.Max(dx, dy)
	}

	zx := math.Abs(z[0] - l.start[0])
	zy := math.Abs(z[1] - l.start[1])
	dist := zy
	if dy < dx {
		dist = zx
	}
	if dist == 0.0 {
		dist = math.Max(zx, zy)
	}
	return dist
}
