package relate

import "github.com/paulmach/orb"

// Dimensions returns the topological dimension of the geometry: DimPoint for points, DimLine for curves and DimArea for surfaces. Empty geometries return DimEmpty and collapsed geometries, such as a line string of which all coordinates coincide, return the dimension of what they collapse to.
func Dimensions(g orb.Geometry) Dimension {
	switch g := g.(type) {
	case orb.Point:
		return DimPoint
	case orb.MultiPoint:
		if len(g) == 0 {
			return DimEmpty
		}
		return DimPoint
	case orb.LineString:
		return lineStringDimensions(g)
	case orb.MultiLineString:
		dim := DimEmpty
		for _, ls := range g {
			dim = maxDimension(dim, lineStringDimensions(ls))
		}
		return dim
	case orb.Ring:
		return polygonDimensions(orb.Polygon{g})
	case orb.Polygon:
		return polygonDimensions(g)
	case orb.MultiPolygon:
		dim := DimEmpty
		for _, poly := range g {
			dim = maxDimension(dim, polygonDimensions(poly))
		}
		return dim
	case orb.Collection:
		dim := DimEmpty
		for _, child := range g {
			dim = maxDimension(dim, Dimensions(child))
		}
		return dim
	case orb.Bound:
		if g.Min == g.Max {
			return DimPoint
		} else if g.Min[0] == g.Max[0] || g.Min[1] == g.Max[1] {
			return DimLine
		}
		return DimArea
	}
	return DimEmpty
}

func lineStringDimensions(ls orb.LineString) Dimension {
	if len(ls) == 0 {
		return DimEmpty
	} else if polyline(ls).allEqual() {
		return DimPoint
	}
	return DimLine
}

func polygonDimensions(poly orb.Polygon) Dimension {
	if len(poly) == 0 || len(poly[0]) == 0 {
		return DimEmpty
	} else if polyline(poly[0]).allEqual() {
		return DimPoint
	}
	return DimArea
}

// BoundaryDimensions returns the dimension of the geometry's boundary under the mod-2 rule. Points and closed curves have an empty boundary.
func BoundaryDimensions(g orb.Geometry) Dimension {
	switch g := g.(type) {
	case orb.Point, orb.MultiPoint:
		return DimEmpty
	case orb.LineString:
		if polyline(g).Closed() || len(g) == 0 {
			return DimEmpty
		} else if lineStringDimensions(g) == DimLine {
			return DimPoint
		}
		return DimEmpty
	case orb.MultiLineString:
		closed := true
		for _, ls := range g {
			if len(ls) != 0 && !polyline(ls).Closed() {
				closed = false
				break
			}
		}
		if closed {
			return DimEmpty
		} else if Dimensions(g) == DimLine {
			return DimPoint
		}
		return DimEmpty
	case orb.Ring, orb.Polygon, orb.MultiPolygon:
		if dim := Dimensions(g); dim != DimArea {
			return DimEmpty
		}
		return DimLine
	case orb.Collection:
		dim := DimEmpty
		for _, child := range g {
			dim = maxDimension(dim, BoundaryDimensions(child))
		}
		return dim
	case orb.Bound:
		return Dimensions(g) - 1
	}
	return DimEmpty
}

// isEmpty returns true if the geometry holds no coordinates.
func isEmpty(g orb.Geometry) bool {
	return g == nil || Dimensions(g) == DimEmpty
}
