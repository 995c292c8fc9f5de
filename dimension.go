package relate

// Dimension is the topological dimension of a point set, used as the cell value of an IntersectionMatrix. A higher dimension wins when merging.
type Dimension int

// see Dimension
const (
	DimEmpty Dimension = iota - 1
	DimPoint
	DimLine
	DimArea
)

// Byte returns the DE-9IM character of the dimension, F for empty.
func (d Dimension) Byte() byte {
	switch d {
	case DimPoint:
		return '0'
	case DimLine:
		return '1'
	case DimArea:
		return '2'
	}
	return 'F'
}

func (d Dimension) String() string {
	switch d {
	case DimEmpty:
		return "Empty"
	case DimPoint:
		return "Point"
	case DimLine:
		return "Line"
	case DimArea:
		return "Area"
	}
	return "Invalid"
}

func maxDimension(a, b Dimension) Dimension {
	if a < b {
		return b
	}
	return a
}

////////////////////////////////////////////////////////////////

// CoordPos is the topological position of a coordinate relative to a geometry. The zero value means the position is not (yet) known.
type CoordPos int

// see CoordPos
const (
	Inside CoordPos = iota + 1
	OnBoundary
	Outside
)

// coordPositions is the row and column order of the intersection matrix.
var coordPositions = [3]CoordPos{Inside, OnBoundary, Outside}

// Known returns true if the position has been set.
func (pos CoordPos) Known() bool {
	return Inside <= pos && pos <= Outside
}

func (pos CoordPos) String() string {
	switch pos {
	case Inside:
		return "Inside"
	case OnBoundary:
		return "OnBoundary"
	case Outside:
		return "Outside"
	}
	return "Unknown"
}

// short returns the one-letter notation i, b, e, or _ when unknown.
func (pos CoordPos) short() byte {
	switch pos {
	case Inside:
		return 'i'
	case OnBoundary:
		return 'b'
	case Outside:
		return 'e'
	}
	return '_'
}

////////////////////////////////////////////////////////////////

// Direction selects a position along a directed edge: on the edge itself, or the half-plane to its left or right.
type Direction int

// see Direction
const (
	On Direction = iota
	Left
	Right
)

func (dir Direction) String() string {
	switch dir {
	case On:
		return "On"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return "Invalid"
}
