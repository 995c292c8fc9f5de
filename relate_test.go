package relate

import (
	"fmt"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/tdewolff/test"
)

var relateTests = []struct {
	a, b   string
	matrix string
}{
	// polygon/polygon
	{"POLYGON((0 0,0 20,20 20,20 0,0 0))", "POLYGON((55 55,50 60,60 60,60 55,55 55))", "FF2FF1212"},
	{"POLYGON((0 0,0 20,20 20,20 0,0 0))", "POLYGON((5 5,5 10,10 10,10 5,5 5))", "212FF1FF2"},
	{"POLYGON((0 0,0 20,20 20,20 0,0 0))", "POLYGON((5 5,5 30,30 30,30 5,5 5))", "212101212"},
	{"POLYGON((0 0,0 1,1 1,1 0,0 0))", "POLYGON((1 0,1 1,2 1,2 0,1 0))", "FF2F11212"},
	{"POLYGON((0 0,0 1,1 1,1 0,0 0))", "POLYGON((0 0,0 1,1 1,1 0,0 0))", "2FFF1FFF2"},
	{"POLYGON((0 0,1 0,1 1,0 1,0 0))", "POLYGON((1 0,2 0,2 1,1 1,1 0))", "FF2F11212"},
	{"POLYGON((0 0,10 0,10 10,0 10,0 0))", "POLYGON((2 2,4 2,4 4,2 4,2 2))", "212FF1FF2"},

	// point/line and point/polygon
	{"POINT(0 0)", "LINESTRING(0 0,1 1)", "F0FFFF102"},
	{"POINT(5 5)", "POLYGON((0 0,10 0,10 10,0 10,0 0))", "0FFFFF212"},
	{"POINT(15 5)", "POLYGON((0 0,10 0,10 10,0 10,0 0))", "FF0FFF212"},
	{"POINT(3 3)", "POLYGON((0 0,10 0,10 10,0 10,0 0),(2 2,2 4,4 4,4 2,2 2))", "FF0FFF212"},

	// line/line and line/polygon
	{"LINESTRING(0 0,2 2)", "LINESTRING(0 2,2 0)", "0F1FF0102"},
	{"LINESTRING(0 0,2 0)", "LINESTRING(1 0,3 0)", "1010F0102"},
	{"LINESTRING(-1 5,11 5)", "POLYGON((0 0,10 0,10 10,0 10,0 0))", "101FF0212"},
	{"LINESTRING(2 2,8 8)", "POLYGON((0 0,10 0,10 10,0 10,0 0))", "1FF0FF212"},
}

func TestRelate(t *testing.T) {
	for i, tt := range relateTests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			a, b := parseWKT(t, tt.a), parseWKT(t, tt.b)
			im := Relate(a, b)
			test.T(t, im.String(), tt.matrix)

			parsed, err := ParseIntersectionMatrix(im.String())
			test.Error(t, err)
			test.That(t, parsed.Equals(im))
		})
	}
}

func TestRelateSymmetry(t *testing.T) {
	for i, tt := range relateTests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			a, b := parseWKT(t, tt.a), parseWKT(t, tt.b)
			test.T(t, Relate(b, a).String(), Relate(a, b).Transpose().String())
		})
	}
}

func TestRelatePrepared(t *testing.T) {
	for i, tt := range relateTests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			a, b := parseWKT(t, tt.a), parseWKT(t, tt.b)
			preparedA, preparedB := Prepare(a, nil), Prepare(b, nil)
			test.T(t, preparedA.Relate(b).String(), tt.matrix)
			test.T(t, RelatePrepared(preparedA, preparedB).String(), tt.matrix)
			test.T(t, RelatePrepared(preparedB, preparedA).String(), MustParseIntersectionMatrix(tt.matrix).Transpose().String())

			// prepared geometries are not modified by relating
			test.T(t, preparedA.Relate(b).String(), tt.matrix)
		})
	}
}

func TestRelateEmpty(t *testing.T) {
	empty := orb.Polygon{orb.Ring{}}
	im := Relate(empty, empty)
	test.T(t, im.String(), "FFFFFFFF2")
	test.That(t, im.IsEqualTopo())

	im = Relate(empty, square(0, 0, 1))
	test.T(t, im.String(), "FFFFFF212")
	test.That(t, im.IsDisjoint())

	im = Relate(nil, orb.Point{1, 1})
	test.T(t, im.String(), "FFFFFF0F2")
}

func TestRelateSelf(t *testing.T) {
	var tts = []struct {
		g      string
		matrix string
	}{
		{"POINT(1 2)", "0FFFFFFF2"},
		{"LINESTRING(0 0,1 1,2 0)", "1FFF0FFF2"},
		{"LINESTRING(0 0,1 0,1 1,0 0)", "1FFFFFFF2"},
		{"POLYGON((0 0,10 0,10 10,0 10,0 0),(2 2,2 4,4 4,4 2,2 2))", "2FFF1FFF2"},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			g := parseWKT(t, tt.g)
			im := Relate(g, g)
			test.T(t, im.String(), tt.matrix)
			test.That(t, im.IsEqualTopo())
		})
	}
}

func TestRelateBoundaryRule(t *testing.T) {
	a := parseWKT(t, "POINT(1 1)")
	b := parseWKT(t, "MULTILINESTRING((0 0,1 1),(1 1,2 2))")
	test.T(t, Relate(a, b).String(), "0FFFFF102")
	test.T(t, RelateWithOptions(a, b, &Options{BoundaryRule: EndPointBoundaryRule}).String(), "F0FFFF102")
	test.T(t, Prepare(a, &Options{BoundaryRule: EndPointBoundaryRule}).Relate(b).String(), "F0FFFF102")
}

func TestRelateLogging(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	opts := &Options{Log: logger}

	im := RelateWithOptions(orb.LineString{{1, 1}, {1, 1}}, orb.Point{1, 1}, opts)
	test.T(t, im.String(), "0FFFFFFF2")
	test.That(t, hook.LastEntry() != nil)
	test.T(t, hook.LastEntry().Level, logrus.WarnLevel)

	hook.Reset()
	_ = RelateWithOptions(orb.Polygon{orb.Ring{{0, 0}, {1, 1}, {2, 2}, {0, 0}}}, orb.Point{5, 5}, opts)
	test.That(t, 0 < len(hook.AllEntries()))
}

func TestPredicates(t *testing.T) {
	outer := square(0, 0, 10)
	inner := square(2, 2, 2)
	touching := square(10, 0, 10)
	overlapping := square(5, 5, 10)
	far := square(50, 50, 1)
	cross := orb.LineString{{-1, 5}, {11, 5}}

	test.That(t, Intersects(outer, inner))
	test.That(t, !Intersects(outer, far))
	test.That(t, Disjoint(outer, far))
	test.That(t, Contains(outer, inner))
	test.That(t, !Contains(inner, outer))
	test.That(t, ContainsProperly(outer, inner))
	test.That(t, !ContainsProperly(outer, outer))
	test.That(t, Within(inner, outer))
	test.That(t, !Within(outer, inner))
	test.That(t, Covers(outer, inner))
	test.That(t, Covers(outer, outer))
	test.That(t, CoveredBy(inner, outer))
	test.That(t, Touches(outer, touching))
	test.That(t, !Touches(outer, overlapping))
	test.That(t, Overlaps(outer, overlapping))
	test.That(t, !Overlaps(outer, inner))
	test.That(t, Crosses(cross, outer))
	test.That(t, !Crosses(outer, overlapping))
	test.That(t, EqualTopo(outer, outer))
	test.That(t, !EqualTopo(outer, inner))

	// the boundary of a polygon is covered by it but not within it
	boundary := orb.LineString(outer[0])
	test.That(t, CoveredBy(boundary, outer))
	test.That(t, !Within(boundary, outer))

	match, err := RelatePattern(outer, inner, "T*****FF*")
	test.Error(t, err)
	test.That(t, match)
}

func TestCrosses(t *testing.T) {
	// two polygons cannot cross
	a := parseWKT(t, "POLYGON((3.4 15.7,2.2 11.3,5.8 11.4,3.4 15.7))")
	b := parseWKT(t, "POLYGON((5.2 13.1,4.5 10.9,6.3 11.1,5.2 13.1))")
	test.That(t, !Relate(a, b).IsCrosses())

	// a single leg of b crosses polygon a
	c := parseWKT(t, "LINESTRING(5.2 13.1,4.5 10.9)")
	test.That(t, Relate(c, a).IsCrosses())

	// a line along two legs of a is crossed by c
	d := parseWKT(t, "LINESTRING(3.4 15.7,2.2 11.3,5.8 11.4)")
	test.That(t, Relate(c, d).IsCrosses())
}

func TestRelateLocate(t *testing.T) {
	opts := defaultOptions(nil)
	op := newRelateOperation(
		newGeometryGraph(0, parseWKT(t, "POINT(5 5)"), opts),
		newGeometryGraph(1, square(0, 0, 10), opts),
		opts)
	n := op.nodes.insert(orb.Point{5, 5})
	test.T(t, op.locate(n, 1), Inside)
	test.T(t, n.located[1], Inside)

	// the position is looked up only once per node
	n.located[1] = Outside
	test.T(t, op.locate(n, 1), Outside)
	test.T(t, op.locate(op.nodes.insert(orb.Point{0, 5}), 1), OnBoundary)
}

func TestRelateOverlappingCollection(t *testing.T) {
	a := parseWKT(t, "GEOMETRYCOLLECTION(POLYGON((0 0,10 0,10 10,0 10,0 0)),POLYGON((5 0,15 0,15 10,5 10,5 0)))")
	msg := recoverPanic(func() {
		Relate(a, parseWKT(t, "POINT(1 1)"))
	})
	test.That(t, msg != nil, "expected panic")
	test.That(t, strings.Contains(fmt.Sprint(msg), "side position conflict"), fmt.Sprint(msg))
}
