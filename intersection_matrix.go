package relate

import (
	"github.com/pkg/errors"
)

// ErrInvalidPattern is returned when a DE-9IM pattern or matrix string is malformed.
var ErrInvalidPattern = errors.New("invalid DE-9IM pattern")

// IntersectionMatrix is a DE-9IM matrix: the dimension of the intersection of the interior, boundary and exterior of geometry A (rows) with those of geometry B (columns).
type IntersectionMatrix struct {
	m [3][3]Dimension
}

// NewIntersectionMatrix returns a matrix with all cells empty.
func NewIntersectionMatrix() IntersectionMatrix {
	im := IntersectionMatrix{}
	for i := range im.m {
		for j := range im.m[i] {
			im.m[i][j] = DimEmpty
		}
	}
	return im
}

// emptyDisjointMatrix is the matrix of two empty geometries.
func emptyDisjointMatrix() IntersectionMatrix {
	im := NewIntersectionMatrix()
	im.Set(Outside, Outside, DimArea)
	return im
}

// ParseIntersectionMatrix parses a 9-character matrix string such as "212101212", consisting of the characters 0, 1, 2 and F.
func ParseIntersectionMatrix(s string) (IntersectionMatrix, error) {
	im := NewIntersectionMatrix()
	if err := im.SetAtLeastFromString(s); err != nil {
		return IntersectionMatrix{}, err
	}
	return im, nil
}

// MustParseIntersectionMatrix is like ParseIntersectionMatrix but panics on error.
func MustParseIntersectionMatrix(s string) IntersectionMatrix {
	im, err := ParseIntersectionMatrix(s)
	if err != nil {
		panic(err)
	}
	return im
}

func matrixIndex(pos CoordPos) int {
	if !pos.Known() {
		panic("bug: unknown position in intersection matrix")
	}
	return int(pos) - 1
}

// Get returns the dimension of the intersection of posA of A and posB of B.
func (im IntersectionMatrix) Get(posA, posB CoordPos) Dimension {
	return im.m[matrixIndex(posA)][matrixIndex(posB)]
}

// Set overwrites a cell.
func (im *IntersectionMatrix) Set(posA, posB CoordPos, dim Dimension) {
	im.m[matrixIndex(posA)][matrixIndex(posB)] = dim
}

// SetAtLeast raises a cell to dim if it is lower. Cells are never lowered.
func (im *IntersectionMatrix) SetAtLeast(posA, posB CoordPos, dim Dimension) {
	i, j := matrixIndex(posA), matrixIndex(posB)
	if im.m[i][j] < dim {
		im.m[i][j] = dim
	}
}

// setAtLeastIfKnown raises a cell when both positions are known.
func (im *IntersectionMatrix) setAtLeastIfKnown(posA, posB CoordPos, dim Dimension) {
	if posA.Known() && posB.Known() {
		im.SetAtLeast(posA, posB, dim)
	}
}

// SetAtLeastFromString raises every cell to the dimension given in the 9-character string, where F leaves a cell as is.
func (im *IntersectionMatrix) SetAtLeastFromString(s string) error {
	if len(s) != 9 {
		return errors.Wrapf(ErrInvalidPattern, "expected 9 characters, got %d", len(s))
	}
	dims := [9]Dimension{}
	for k := 0; k < 9; k++ {
		switch s[k] {
		case '0':
			dims[k] = DimPoint
		case '1':
			dims[k] = DimLine
		case '2':
			dims[k] = DimArea
		case 'F':
			dims[k] = DimEmpty
		default:
			return errors.Wrapf(ErrInvalidPattern, "expected 0, 1, 2 or F at position %d, got %q", k, s[k])
		}
	}
	for k, dim := range dims {
		if im.m[k/3][k%3] < dim {
			im.m[k/3][k%3] = dim
		}
	}
	return nil
}

// updateFromNodeLabel raises the cell of the node's positions to a point.
func (im *IntersectionMatrix) updateFromNodeLabel(lbl label) {
	if lbl.geometryCount() < 2 {
		panic("bug: node label is not complete: " + lbl.String())
	}
	im.setAtLeastIfKnown(lbl.onPosition(0), lbl.onPosition(1), DimPoint)
}

// updateFromEdgeLabel raises the cell of the edge's positions to a line, and for area edges the cells of both sides to an area.
func (im *IntersectionMatrix) updateFromEdgeLabel(lbl label) {
	im.setAtLeastIfKnown(lbl.onPosition(0), lbl.onPosition(1), DimLine)
	if lbl.isArea() {
		im.setAtLeastIfKnown(lbl.position(0, Left), lbl.position(1, Left), DimArea)
		im.setAtLeastIfKnown(lbl.position(0, Right), lbl.position(1, Right), DimArea)
	}
}

// Transpose returns the matrix of the relation with A and B swapped.
func (im IntersectionMatrix) Transpose() IntersectionMatrix {
	t := IntersectionMatrix{}
	for i := range im.m {
		for j := range im.m[i] {
			t.m[j][i] = im.m[i][j]
		}
	}
	return t
}

// Equals returns true if all cells are equal.
func (im IntersectionMatrix) Equals(other IntersectionMatrix) bool {
	return im.m == other.m
}

// String returns the 9-character notation of the matrix, row by row.
func (im IntersectionMatrix) String() string {
	b := make([]byte, 0, 9)
	for _, posA := range coordPositions {
		for _, posB := range coordPositions {
			b = append(b, im.Get(posA, posB).Byte())
		}
	}
	return string(b)
}

// Matches returns true if the matrix matches the 9-character pattern. A pattern character is one of * (anything), T (not empty), F (empty) or 0, 1, 2 (exact dimension), T and F are case-insensitive.
func (im IntersectionMatrix) Matches(pattern string) (bool, error) {
	if len(pattern) != 9 {
		return false, errors.Wrapf(ErrInvalidPattern, "expected 9 characters, got %d", len(pattern))
	}
	match := true
	for k := 0; k < 9; k++ {
		dim := im.m[k/3][k%3]
		switch pattern[k] {
		case '*':
		case 'T', 't':
			match = match && dim != DimEmpty
		case 'F', 'f':
			match = match && dim == DimEmpty
		case '0':
			match = match && dim == DimPoint
		case '1':
			match = match && dim == DimLine
		case '2':
			match = match && dim == DimArea
		default:
			return false, errors.Wrapf(ErrInvalidPattern, "unexpected character %q at position %d", pattern[k], k)
		}
	}
	return match, nil
}

func (im IntersectionMatrix) at(posA, posB CoordPos) Dimension {
	return im.m[posA-1][posB-1]
}

// IsDisjoint returns true if the interiors and boundaries of A and B do not intersect, i.e. FF*FF****.
func (im IntersectionMatrix) IsDisjoint() bool {
	return im.at(Inside, Inside) == DimEmpty &&
		im.at(Inside, OnBoundary) == DimEmpty &&
		im.at(OnBoundary, Inside) == DimEmpty &&
		im.at(OnBoundary, OnBoundary) == DimEmpty
}

// IsIntersects returns true if A and B have at least one point in common.
func (im IntersectionMatrix) IsIntersects() bool {
	return !im.IsDisjoint()
}

// IsWithin returns true if A lies in B: T*F**F***.
func (im IntersectionMatrix) IsWithin() bool {
	return im.at(Inside, Inside) != DimEmpty &&
		im.at(Inside, Outside) == DimEmpty &&
		im.at(OnBoundary, Outside) == DimEmpty
}

// IsContains returns true if B lies in A: T*****FF*.
func (im IntersectionMatrix) IsContains() bool {
	return im.at(Inside, Inside) != DimEmpty &&
		im.at(Outside, Inside) == DimEmpty &&
		im.at(Outside, OnBoundary) == DimEmpty
}

// IsContainsProperly returns true if B lies in the interior of A: T**FF*FF*.
func (im IntersectionMatrix) IsContainsProperly() bool {
	return im.at(Inside, Inside) != DimEmpty &&
		im.at(OnBoundary, Inside) == DimEmpty &&
		im.at(OnBoundary, OnBoundary) == DimEmpty &&
		im.at(Outside, Inside) == DimEmpty &&
		im.at(Outside, OnBoundary) == DimEmpty
}

// IsEqualTopo returns true if A and B are topologically equal: T*F**FFF*. Two empty geometries are equal too.
func (im IntersectionMatrix) IsEqualTopo() bool {
	if im.Equals(emptyDisjointMatrix()) {
		return true
	}
	return im.at(Inside, Inside) != DimEmpty &&
		im.at(Inside, Outside) == DimEmpty &&
		im.at(OnBoundary, Outside) == DimEmpty &&
		im.at(Outside, Inside) == DimEmpty &&
		im.at(Outside, OnBoundary) == DimEmpty
}

// IsCoveredBy returns true if no point of A lies outside B.
func (im IntersectionMatrix) IsCoveredBy() bool {
	if im.at(Inside, Outside) != DimEmpty || im.at(OnBoundary, Outside) != DimEmpty {
		return false
	}
	return im.at(Inside, Inside) != DimEmpty ||
		im.at(Inside, OnBoundary) != DimEmpty ||
		im.at(OnBoundary, Inside) != DimEmpty ||
		im.at(OnBoundary, OnBoundary) != DimEmpty
}

// IsCovers returns true if no point of B lies outside A.
func (im IntersectionMatrix) IsCovers() bool {
	if im.at(Outside, Inside) != DimEmpty || im.at(Outside, OnBoundary) != DimEmpty {
		return false
	}
	return im.at(Inside, Inside) != DimEmpty ||
		im.at(Inside, OnBoundary) != DimEmpty ||
		im.at(OnBoundary, Inside) != DimEmpty ||
		im.at(OnBoundary, OnBoundary) != DimEmpty
}

// IsTouches returns true if A and B intersect only in their boundaries.
func (im IntersectionMatrix) IsTouches() bool {
	if im.at(Inside, Inside) != DimEmpty {
		return false
	}
	return im.at(Inside, OnBoundary) != DimEmpty ||
		im.at(OnBoundary, Inside) != DimEmpty ||
		im.at(OnBoundary, OnBoundary) != DimEmpty
}

// interiorDimensions returns the dimensions of the interiors of A and B as far as they can be derived from the matrix.
func (im IntersectionMatrix) interiorDimensions() (Dimension, Dimension) {
	dimA := maxDimension(maxDimension(im.at(Inside, Inside), im.at(Inside, OnBoundary)), im.at(Inside, Outside))
	dimB := maxDimension(maxDimension(im.at(Inside, Inside), im.at(OnBoundary, Inside)), im.at(Outside, Inside))
	return dimA, dimB
}

// IsCrosses returns true if the interiors intersect and each geometry has interior points outside the other, for geometries of different dimension or two lines that cross in a point.
func (im IntersectionMatrix) IsCrosses() bool {
	dimA, dimB := im.interiorDimensions()
	if dimA < dimB {
		return im.at(Inside, Inside) != DimEmpty && im.at(Inside, Outside) != DimEmpty
	} else if dimB < dimA {
		return im.at(Inside, Inside) != DimEmpty && im.at(Outside, Inside) != DimEmpty
	} else if dimA == DimLine {
		return im.at(Inside, Inside) == DimPoint
	}
	return false
}

// IsOverlaps returns true if A and B have the same dimension, their interiors intersect in that dimension and each has interior points outside the other.
func (im IntersectionMatrix) IsOverlaps() bool {
	dimA, dimB := im.interiorDimensions()
	if dimA != dimB {
		return false
	}
	switch dimA {
	case DimLine:
		return im.at(Inside, Inside) == DimLine &&
			im.at(Inside, Outside) != DimEmpty &&
			im.at(Outside, Inside) != DimEmpty
	case DimPoint, DimArea:
		return im.at(Inside, Inside) != DimEmpty &&
			im.at(Inside, Outside) != DimEmpty &&
			im.at(Outside, Inside) != DimEmpty
	}
	return false
}
