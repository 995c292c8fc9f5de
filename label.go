package relate

import "strings"

// topologyPosition is the labelling of a graph component relative to one geometry. Area edges carry a position on the edge and on either side, lines and points only carry the position on the component.
type topologyPosition struct {
	area            bool
	on, left, right CoordPos
}

func areaPosition(on, left, right CoordPos) topologyPosition {
	return topologyPosition{area: true, on: on, left: left, right: right}
}

func lineOrPointPosition(on CoordPos) topologyPosition {
	return topologyPosition{on: on}
}

func (t topologyPosition) get(dir Direction) CoordPos {
	switch dir {
	case On:
		return t.on
	case Left:
		if !t.area {
			panic("bug: line or point position has no left side")
		}
		return t.left
	case Right:
		if !t.area {
			panic("bug: line or point position has no right side")
		}
		return t.right
	}
	panic("bug: invalid direction")
}

func (t *topologyPosition) set(dir Direction, pos CoordPos) {
	switch dir {
	case On:
		t.on = pos
	case Left:
		if !t.area {
			panic("bug: cannot set left side of a line or point position")
		}
		t.left = pos
	case Right:
		if !t.area {
			panic("bug: cannot set right side of a line or point position")
		}
		t.right = pos
	default:
		panic("bug: invalid direction")
	}
}

func (t topologyPosition) isEmpty() bool {
	if t.area {
		return !t.on.Known() && !t.left.Known() && !t.right.Known()
	}
	return !t.on.Known()
}

func (t topologyPosition) isAnyEmpty() bool {
	if t.area {
		return !t.on.Known() || !t.left.Known() || !t.right.Known()
	}
	return !t.on.Known()
}

func (t *topologyPosition) flip() {
	t.left, t.right = t.right, t.left
}

func (t *topologyPosition) setAll(pos CoordPos) {
	t.on = pos
	if t.area {
		t.left, t.right = pos, pos
	}
}

func (t *topologyPosition) setAllIfEmpty(pos CoordPos) {
	if !t.on.Known() {
		t.on = pos
	}
	if t.area {
		if !t.left.Known() {
			t.left = pos
		}
		if !t.right.Known() {
			t.right = pos
		}
	}
}

func (t topologyPosition) String() string {
	if t.area {
		return string([]byte{t.left.short(), t.on.short(), t.right.short()})
	}
	return string([]byte{t.on.short()})
}

////////////////////////////////////////////////////////////////

// label holds the topological position of a node or edge relative to both input geometries. A component that has no incidence with a geometry has an empty position for it.
type label struct {
	pos [2]topologyPosition
}

func emptyLineOrPointLabel() label {
	return label{}
}

func emptyAreaLabel() label {
	return label{pos: [2]topologyPosition{{area: true}, {area: true}}}
}

// newLabel returns a label with position for geometry geomIndex and an empty position of the same shape for the other geometry.
func newLabel(geomIndex int, pos topologyPosition) label {
	l := emptyLineOrPointLabel()
	if pos.area {
		l = emptyAreaLabel()
	}
	l.pos[geomIndex] = pos
	return l
}

func (l label) position(geomIndex int, dir Direction) CoordPos {
	return l.pos[geomIndex].get(dir)
}

func (l label) onPosition(geomIndex int) CoordPos {
	return l.pos[geomIndex].on
}

func (l *label) setPosition(geomIndex int, dir Direction, pos CoordPos) {
	l.pos[geomIndex].set(dir, pos)
}

func (l *label) setOnPosition(geomIndex int, pos CoordPos) {
	l.pos[geomIndex].on = pos
}

func (l *label) setAllPositions(geomIndex int, pos CoordPos) {
	l.pos[geomIndex].setAll(pos)
}

func (l *label) setAllPositionsIfEmpty(geomIndex int, pos CoordPos) {
	l.pos[geomIndex].setAllIfEmpty(pos)
}

// geometryCount returns the number of geometries the component is labelled for.
func (l label) geometryCount() int {
	n := 0
	for _, pos := range l.pos {
		if !pos.isEmpty() {
			n++
		}
	}
	return n
}

func (l label) isEmpty(geomIndex int) bool {
	return l.pos[geomIndex].isEmpty()
}

func (l label) isAnyEmpty(geomIndex int) bool {
	return l.pos[geomIndex].isAnyEmpty()
}

func (l label) isArea() bool {
	return l.pos[0].area || l.pos[1].area
}

func (l label) isGeomArea(geomIndex int) bool {
	return l.pos[geomIndex].area
}

func (l label) isLine(geomIndex int) bool {
	return !l.pos[geomIndex].area
}

// flip swaps the left and right sides, used when the edge is traversed in the opposite direction.
func (l *label) flip() {
	l.pos[0].flip()
	l.pos[1].flip()
}

// swapArgs exchanges the positions of geometry A and B.
func (l *label) swapArgs() {
	l.pos[0], l.pos[1] = l.pos[1], l.pos[0]
}

func (l label) String() string {
	sb := strings.Builder{}
	sb.WriteString("A:")
	sb.WriteString(l.pos[0].String())
	sb.WriteString(" B:")
	sb.WriteString(l.pos[1].String())
	return sb.String()
}
