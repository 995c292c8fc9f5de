package relate

import (
	"fmt"
	"testing"

	"github.com/paulmach/orb"
	"github.com/tdewolff/test"
)

func TestIntersectLines(t *testing.T) {
	var tts = []struct {
		p, q   line
		ok     bool
		result lineIntersection
	}{
		// crossing
		{line{orb.Point{0, 0}, orb.Point{2, 2}}, line{orb.Point{0, 2}, orb.Point{2, 0}}, true, lineIntersection{proper: true, point: orb.Point{1, 1}}},
		// touching at endpoints
		{line{orb.Point{0, 0}, orb.Point{1, 0}}, line{orb.Point{1, 0}, orb.Point{1, 1}}, true, improperIntersection(orb.Point{1, 0})},
		{line{orb.Point{0, 0}, orb.Point{1, 0}}, line{orb.Point{1, 1}, orb.Point{1, 0}}, true, improperIntersection(orb.Point{1, 0})},
		// T-junction
		{line{orb.Point{0, 0}, orb.Point{2, 0}}, line{orb.Point{1, 0}, orb.Point{1, 1}}, true, improperIntersection(orb.Point{1, 0})},
		{line{orb.Point{1, 0}, orb.Point{1, 1}}, line{orb.Point{0, 0}, orb.Point{2, 0}}, true, improperIntersection(orb.Point{1, 0})},
		// collinear
		{line{orb.Point{0, 0}, orb.Point{2, 0}}, line{orb.Point{1, 0}, orb.Point{3, 0}}, true, collinearIntersection(line{orb.Point{1, 0}, orb.Point{2, 0}})},
		{line{orb.Point{0, 0}, orb.Point{1, 0}}, line{orb.Point{1, 0}, orb.Point{2, 0}}, true, improperIntersection(orb.Point{1, 0})},
		{line{orb.Point{0, 0}, orb.Point{3, 0}}, line{orb.Point{1, 0}, orb.Point{2, 0}}, true, collinearIntersection(line{orb.Point{1, 0}, orb.Point{2, 0}})},
		{line{orb.Point{1, 0}, orb.Point{2, 0}}, line{orb.Point{0, 0}, orb.Point{3, 0}}, true, collinearIntersection(line{orb.Point{1, 0}, orb.Point{2, 0}})},
		{line{orb.Point{0, 0}, orb.Point{1, 1}}, line{orb.Point{1, 1}, orb.Point{0, 0}}, true, collinearIntersection(line{orb.Point{1, 1}, orb.Point{0, 0}})},
		{line{orb.Point{0, 0}, orb.Point{1, 0}}, line{orb.Point{2, 0}, orb.Point{3, 0}}, false, lineIntersection{}},
		// parallel and apart
		{line{orb.Point{0, 0}, orb.Point{2, 2}}, line{orb.Point{1, 0}, orb.Point{3, 2}}, false, lineIntersection{}},
		{line{orb.Point{0, 0}, orb.Point{1, 0}}, line{orb.Point{0, 1}, orb.Point{1, 1}}, false, lineIntersection{}},
		{line{orb.Point{0, 0}, orb.Point{1, 1}}, line{orb.Point{3, 0}, orb.Point{2, 1}}, false, lineIntersection{}},
		// degenerate segment on a line
		{line{orb.Point{1, 1}, orb.Point{1, 1}}, line{orb.Point{0, 0}, orb.Point{2, 2}}, true, collinearIntersection(line{orb.Point{1, 1}, orb.Point{1, 1}})},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			li, ok := intersectLines(tt.p, tt.q)
			test.T(t, ok, tt.ok)
			if ok {
				test.T(t, li, tt.result)
			}
		})
	}
}

func TestProperIntersection(t *testing.T) {
	var tts = []struct {
		p, q line
		z    orb.Point
	}{
		{line{orb.Point{0, 0}, orb.Point{4, 0}}, line{orb.Point{1, -1}, orb.Point{1, 3}}, orb.Point{1, 0}},
		{line{orb.Point{-2, -2}, orb.Point{2, 2}}, line{orb.Point{-2, 2}, orb.Point{2, -2}}, orb.Point{0, 0}},
		{line{orb.Point{0, 0}, orb.Point{10, 5}}, line{orb.Point{0, 5}, orb.Point{10, 0}}, orb.Point{5, 2.5}},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			li, ok := intersectLines(tt.p, tt.q)
			test.That(t, ok)
			test.That(t, li.proper)
			test.Float(t, li.point[0], tt.z[0])
			test.Float(t, li.point[1], tt.z[1])
		})
	}
}

func TestEdgeDistance(t *testing.T) {
	var tts = []struct {
		z    orb.Point
		l    line
		dist float64
	}{
		{orb.Point{0, 0}, line{orb.Point{0, 0}, orb.Point{2, 0}}, 0.0},
		{orb.Point{1, 0}, line{orb.Point{0, 0}, orb.Point{2, 0}}, 1.0},
		{orb.Point{2, 0}, line{orb.Point{0, 0}, orb.Point{2, 0}}, 2.0},
		{orb.Point{0, 3}, line{orb.Point{0, 0}, orb.Point{0, 4}}, 3.0},
		{orb.Point{1, 1}, line{orb.Point{0, 0}, orb.Point{2, 2}}, 1.0},
		{orb.Point{3, 1}, line{orb.Point{4, 0}, orb.Point{0, 4}}, 1.0},
		{orb.Point{1, 3}, line{orb.Point{4, 0}, orb.Point{0, 4}}, 3.0},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.Float(t, edgeDistance(tt.z, tt.l), tt.dist)
		})
	}
}
