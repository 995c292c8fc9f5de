package relate

// computeEdgeEnds splits the edges at their intersections and returns the two edge ends of every resulting piece, one at each of its endpoints.
func computeEdgeEnds(edges []*edge) []edgeEnd {
	ends := []edgeEnd{}
	for _, e := range edges {
		ends = appendEdgeEnds(ends, e)
	}
	return ends
}

func appendEdgeEnds(ends []edgeEnd, e *edge) []edgeEnd {
	e.addEndpointIntersections()
	for i, curr := range e.intersections {
		var prev, next *edgeIntersection
		if 0 < i {
			prev = &e.intersections[i-1]
		}
		if i+1 < len(e.intersections) {
			next = &e.intersections[i+1]
		}
		ends = appendEdgeEndForPrev(ends, e, curr, prev)
		ends = appendEdgeEndForNext(ends, e, curr, next)
	}
	return ends
}

// appendEdgeEndForPrev adds the edge end pointing from curr back to the previous intersection or vertex. Its label is flipped since it points against the edge direction.
func appendEdgeEndForPrev(ends []edgeEnd, e *edge, curr edgeIntersection, prev *edgeIntersection) []edgeEnd {
	iPrev := curr.segmentIndex
	if curr.distance == 0.0 {
		if iPrev == 0 {
			return ends // at the start of the edge
		}
		iPrev--
	}

	coordPrev := e.coords[iPrev]
	if prev != nil && iPrev <= prev.segmentIndex {
		coordPrev = prev.coord
	}

	lbl := e.label
	lbl.flip()
	return append(ends, newEdgeEnd(curr.coord, coordPrev, lbl))
}

// appendEdgeEndForNext adds the edge end pointing from curr to the next intersection or vertex.
func appendEdgeEndForNext(ends []edgeEnd, e *edge, curr edgeIntersection, next *edgeIntersection) []edgeEnd {
	iNext := curr.segmentIndex + 1
	if len(e.coords) <= iNext {
		return ends // at the end of the edge
	}

	coordNext := e.coords[iNext]
	if next != nil && next.segmentIndex == curr.segmentIndex {
		coordNext = next.coord
	}
	return append(ends, newEdgeEnd(curr.coord, coordNext, e.label))
}
