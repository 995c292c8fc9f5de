package relate

import (
	"fmt"
	"testing"

	"github.com/paulmach/orb"
	"github.com/tdewolff/test"
)

func TestPosition(t *testing.T) {
	donut := parseWKT(t, "POLYGON((0 0,10 0,10 10,0 10,0 0),(2 2,2 4,4 4,4 2,2 2))")
	zigzag := parseWKT(t, "LINESTRING(0 0,1 1,2 0)")
	closed := parseWKT(t, "LINESTRING(0 0,1 0,1 1,0 0)")
	collection := orb.Collection{orb.Point{20, 20}, square(0, 0, 10)}
	bound := orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{2, 2}}

	var tts = []struct {
		g   orb.Geometry
		p   orb.Point
		pos CoordPos
	}{
		{orb.Point{1, 2}, orb.Point{1, 2}, Inside},
		{orb.Point{1, 2}, orb.Point{2, 1}, Outside},
		{orb.MultiPoint{{0, 0}, {1, 2}}, orb.Point{1, 2}, Inside},
		{orb.MultiPoint{}, orb.Point{1, 2}, Outside},
		{nil, orb.Point{0, 0}, Outside},

		{donut, orb.Point{5, 5}, Inside},
		{donut, orb.Point{0, 5}, OnBoundary},
		{donut, orb.Point{10, 10}, OnBoundary},
		{donut, orb.Point{3, 3}, Outside},
		{donut, orb.Point{2, 3}, OnBoundary},
		{donut, orb.Point{11, 5}, Outside},
		{donut, orb.Point{-1, 10}, Outside},

		{zigzag, orb.Point{0, 0}, OnBoundary},
		{zigzag, orb.Point{2, 0}, OnBoundary},
		{zigzag, orb.Point{1, 1}, Inside},
		{zigzag, orb.Point{0.5, 0.5}, Inside},
		{zigzag, orb.Point{1, 0}, Outside},
		{closed, orb.Point{0, 0}, Inside},
		{closed, orb.Point{0.5, 0.5}, Inside},
		{closed, orb.Point{0.5, 0.25}, Outside},
		{orb.LineString{{1, 1}, {1, 1}}, orb.Point{1, 1}, Inside},
		{orb.LineString{{0, 0}, {2, 2}}, orb.Point{1, 1}, Inside},
		{orb.LineString{{0, 0}, {2, 2}}, orb.Point{2, 2}, OnBoundary},

		{orb.Ring{{0, 0}, {0, 1}, {1, 1}, {1, 0}, {0, 0}}, orb.Point{0, 0.5}, OnBoundary},
		{orb.Ring{{0, 0}, {0, 1}, {1, 1}, {1, 0}, {0, 0}}, orb.Point{0.5, 0.5}, Inside},
		{orb.MultiPolygon{square(0, 0, 1), square(5, 5, 1)}, orb.Point{5.5, 5.5}, Inside},
		{orb.MultiPolygon{square(0, 0, 1), square(5, 5, 1)}, orb.Point{3, 3}, Outside},
		{collection, orb.Point{20, 20}, Inside},
		{collection, orb.Point{5, 5}, Inside},
		{collection, orb.Point{0, 5}, OnBoundary},
		{bound, orb.Point{1, 1}, Inside},
		{bound, orb.Point{0, 1}, OnBoundary},
		{bound, orb.Point{3, 3}, Outside},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, Position(tt.g, tt.p), tt.pos)
		})
	}
}

func TestPositionWithRule(t *testing.T) {
	lines := parseWKT(t, "MULTILINESTRING((0 0,1 1),(1 1,2 2),(1 1,1 2))")
	shared := parseWKT(t, "MULTILINESTRING((0 0,1 1),(1 1,2 2))")

	var tts = []struct {
		g    orb.Geometry
		p    orb.Point
		rule BoundaryRule
		pos  CoordPos
	}{
		{shared, orb.Point{1, 1}, Mod2BoundaryRule, Inside},
		{shared, orb.Point{1, 1}, EndPointBoundaryRule, OnBoundary},
		{shared, orb.Point{1, 1}, MultivalentEndPointBoundaryRule, OnBoundary},
		{shared, orb.Point{1, 1}, MonovalentEndPointBoundaryRule, Inside},
		{shared, orb.Point{0, 0}, Mod2BoundaryRule, OnBoundary},
		{shared, orb.Point{0, 0}, MultivalentEndPointBoundaryRule, Inside},
		{shared, orb.Point{0, 0}, nil, OnBoundary},
		{lines, orb.Point{1, 1}, Mod2BoundaryRule, OnBoundary},
		{lines, orb.Point{1, 1}, MonovalentEndPointBoundaryRule, Inside},
		{lines, orb.Point{0.5, 0.5}, EndPointBoundaryRule, Inside},

		// a polygon always has its boundary
		{square(0, 0, 1), orb.Point{0, 0}, MultivalentEndPointBoundaryRule, OnBoundary},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, PositionWithRule(tt.g, tt.p, tt.rule), tt.pos)
		})
	}
}

func TestRingPosition(t *testing.T) {
	ring := polyline{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}
	triangle := polyline{{0, 0}, {4, 4}, {8, 0}, {0, 0}}

	var tts = []struct {
		ring polyline
		p    orb.Point
		pos  CoordPos
	}{
		{ring, orb.Point{5, 5}, Inside},
		{ring, orb.Point{5, 10}, OnBoundary},
		{ring, orb.Point{10, 5}, OnBoundary},
		{ring, orb.Point{0, 0}, OnBoundary},
		{ring, orb.Point{-1, 10}, Outside},
		{ring, orb.Point{-1, 0}, Outside},
		{ring, orb.Point{-1, 5}, Outside},
		{ring, orb.Point{11, 5}, Outside},
		{triangle, orb.Point{4, 2}, Inside},
		{triangle, orb.Point{2, 2}, OnBoundary},
		{triangle, orb.Point{0, 4}, Outside},
		{triangle, orb.Point{-4, 4}, Outside},
		{triangle, orb.Point{4, 0}, OnBoundary},
		{polyline{}, orb.Point{0, 0}, Outside},
		{polyline{{1, 1}}, orb.Point{1, 1}, OnBoundary},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, tt.ring.RingPosition(tt.p), tt.pos)
		})
	}
}
