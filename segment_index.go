package relate

import (
	"github.com/peterstace/simplefeatures/rtree"
)

// segmentRef addresses segment segmentIndex of edge edgeIndex in a graph.
type segmentRef struct {
	edgeIndex    int
	segmentIndex int
}

// segmentIndex is an R-tree over the bounding boxes of all segments of a graph's edges. It refers to edges by index, so that it remains valid for copies of the graph.
type segmentIndex struct {
	tree     *rtree.RTree
	segments []segmentRef
	boxes    []rtree.Box
}

func newSegmentIndex(edges []*edge) *segmentIndex {
	idx := &segmentIndex{}
	items := []rtree.BulkItem{}
	for i, e := range edges {
		for j := 0; j < e.coords.Segments(); j++ {
			box := segmentBox(e.coords.segment(j))
			items = append(items, rtree.BulkItem{
				Box:      box,
				RecordID: len(idx.segments),
			})
			idx.segments = append(idx.segments, segmentRef{i, j})
			idx.boxes = append(idx.boxes, box)
		}
	}
	idx.tree = rtree.BulkLoad(items)
	return idx
}

func segmentBox(l line) rtree.Box {
	b := l.bound()
	return rtree.Box{
		MinX: b.Min[0],
		MinY: b.Min[1],
		MaxX: b.Max[0],
		MaxY: b.Max[1],
	}
}

// candidates calls fn for every indexed segment whose box overlaps box.
func (idx *segmentIndex) candidates(box rtree.Box, fn func(segmentRef)) {
	_ = idx.tree.RangeSearch(box, func(recordID int) error {
		fn(idx.segments[recordID])
		return nil
	})
}

// selfJoin calls fn for every ordered pair of segments whose boxes overlap, including each segment paired with itself.
func (idx *segmentIndex) selfJoin(fn func(a, b segmentRef)) {
	idx.join(idx, fn)
}

// join calls fn for every pair of a segment of idx and a segment of other whose boxes overlap.
func (idx *segmentIndex) join(other *segmentIndex, fn func(a, b segmentRef)) {
	for i, a := range idx.segments {
		other.candidates(idx.boxes[i], func(b segmentRef) {
			fn(a, b)
		})
	}
}
