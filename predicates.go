package relate

import "github.com/paulmach/orb"

// Intersects returns true if a and b have at least one point in common.
func Intersects(a, b orb.Geometry) bool {
	return Relate(a, b).IsIntersects()
}

// Disjoint returns true if a and b have no point in common.
func Disjoint(a, b orb.Geometry) bool {
	return Relate(a, b).IsDisjoint()
}

// Contains returns true if b lies in a and their interiors intersect.
func Contains(a, b orb.Geometry) bool {
	return Relate(a, b).IsContains()
}

// ContainsProperly returns true if b lies in the interior of a.
func ContainsProperly(a, b orb.Geometry) bool {
	return Relate(a, b).IsContainsProperly()
}

// Within returns true if a lies in b and their interiors intersect.
func Within(a, b orb.Geometry) bool {
	return Relate(a, b).IsWithin()
}

// Covers returns true if no point of b lies outside a.
func Covers(a, b orb.Geometry) bool {
	return Relate(a, b).IsCovers()
}

// CoveredBy returns true if no point of a lies outside b.
func CoveredBy(a, b orb.Geometry) bool {
	return Relate(a, b).IsCoveredBy()
}

// Touches returns true if a and b only have boundary points in common.
func Touches(a, b orb.Geometry) bool {
	return Relate(a, b).IsTouches()
}

// Crosses returns true if a and b cross.
func Crosses(a, b orb.Geometry) bool {
	return Relate(a, b).IsCrosses()
}

// Overlaps returns true if a and b overlap.
func Overlaps(a, b orb.Geometry) bool {
	return Relate(a, b).IsOverlaps()
}

// EqualTopo returns true if a and b are topologically equal.
func EqualTopo(a, b orb.Geometry) bool {
	return Relate(a, b).IsEqualTopo()
}

// RelatePattern returns true if the intersection matrix of a and b matches the DE-9IM pattern.
func RelatePattern(a, b orb.Geometry, pattern string) (bool, error) {
	return Relate(a, b).Matches(pattern)
}
