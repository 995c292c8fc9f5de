package relate

import "github.com/paulmach/orb"

// Position returns the topological position of coordinate p relative to geometry g using the mod-2 boundary rule. Coordinates are compared exactly, so a point is only on a line or ring if it lies exactly on one of its segments.
func Position(g orb.Geometry, p orb.Point) CoordPos {
	return PositionWithRule(g, p, Mod2BoundaryRule)
}

// PositionWithRule is like Position but decides with the given boundary rule whether line endpoints belong to the boundary.
func PositionWithRule(g orb.Geometry, p orb.Point, rule BoundaryRule) CoordPos {
	if g == nil {
		return Outside
	}

	var state positionState
	state.add(g, p)
	switch g.(type) {
	case orb.Ring, orb.Polygon, orb.Bound:
		// a single surface has a boundary regardless of the line endpoint rule
		if 0 < state.boundaryCount {
			return OnBoundary
		}
	}
	if 0 < state.boundaryCount && rule.position(state.boundaryCount) == OnBoundary {
		return OnBoundary
	} else if 0 < state.boundaryCount || state.inside {
		// endpoints that are not on the boundary lie in the interior
		return Inside
	}
	return Outside
}

// positionState accumulates the position of a point over the components of a geometry.
type positionState struct {
	inside        bool
	boundaryCount int
}

func (s *positionState) add(g orb.Geometry, p orb.Point) {
	switch g := g.(type) {
	case orb.Point:
		if g == p {
			s.inside = true
		}
	case orb.MultiPoint:
		for _, q := range g {
			if q == p {
				s.inside = true
				break
			}
		}
	case orb.LineString:
		s.addLineString(g, p)
	case orb.MultiLineString:
		for _, ls := range g {
			s.addLineString(ls, p)
		}
	case orb.Ring:
		s.addPolygon(orb.Polygon{g}, p)
	case orb.Polygon:
		s.addPolygon(g, p)
	case orb.MultiPolygon:
		for _, poly := range g {
			s.addPolygon(poly, p)
		}
	case orb.Collection:
		for _, child := range g {
			s.add(child, p)
		}
	case orb.Bound:
		s.addPolygon(g.ToPolygon(), p)
	}
}

func (s *positionState) addLineString(ls orb.LineString, p orb.Point) {
	if len(ls) == 0 {
		return
	} else if len(ls) == 1 {
		if ls[0] == p {
			s.inside = true
		}
		return
	} else if len(ls) == 2 {
		l := line{ls[0], ls[1]}
		if l.isDegenerate() {
			if l.start == p {
				s.inside = true
			}
		} else if p == l.start || p == l.end {
			s.boundaryCount++
		} else if l.contains(p) {
			s.inside = true
		}
		return
	}

	pl := polyline(ls)
	if !pl.bound().Contains(p) {
		return
	} else if !pl.Closed() && (p == ls[0] || p == ls[len(ls)-1]) {
		s.boundaryCount++
		return
	}
	if pl.Contains(p) {
		s.inside = true
	}
}

func (s *positionState) addPolygon(poly orb.Polygon, p orb.Point) {
	if len(poly) == 0 || len(poly[0]) == 0 {
		return
	} else if !polyline(poly[0]).bound().Contains(p) {
		return
	}

	switch polyline(poly[0]).RingPosition(p) {
	case OnBoundary:
		s.boundaryCount++
	case Inside:
		for _, hole := range poly[1:] {
			switch polyline(hole).RingPosition(p) {
			case OnBoundary:
				s.boundaryCount++
				return
			case Inside:
				return
			}
		}
		s.inside = true
	}
}
