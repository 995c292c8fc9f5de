package relate

// BoundaryRule decides whether a line endpoint that is shared by boundaryCount line components lies in the boundary of the geometry. It is only called with a positive count.
type BoundaryRule func(boundaryCount int) bool

// Mod2BoundaryRule is the OGC SFS rule: an endpoint is on the boundary if it is the endpoint of an odd number of components. Closed rings thus have no boundary.
var Mod2BoundaryRule BoundaryRule = func(boundaryCount int) bool {
	return boundaryCount%2 == 1
}

// EndPointBoundaryRule puts every line endpoint on the boundary, so closed rings have their start point on the boundary.
var EndPointBoundaryRule BoundaryRule = func(boundaryCount int) bool {
	return 0 < boundaryCount
}

// MultivalentEndPointBoundaryRule puts only endpoints shared by more than one component on the boundary.
var MultivalentEndPointBoundaryRule BoundaryRule = func(boundaryCount int) bool {
	return 1 < boundaryCount
}

// MonovalentEndPointBoundaryRule puts only endpoints that are not shared with other components on the boundary.
var MonovalentEndPointBoundaryRule BoundaryRule = func(boundaryCount int) bool {
	return boundaryCount == 1
}

// position returns OnBoundary when the rule accepts the count and Inside otherwise.
func (rule BoundaryRule) position(boundaryCount int) CoordPos {
	if rule == nil {
		rule = Mod2BoundaryRule
	}
	if 0 < boundaryCount && rule(boundaryCount) {
		return OnBoundary
	}
	return Inside
}
