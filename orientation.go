package tmpoly

// Clockwise reports whether the vertex loop is wound clockwise under a
// Y-axis-down screen convention, computed from twice the signed area
// (the shoelace sum). The edge from vertices[n-1] to vertices[0] is
// implicit and included in the sum.
//
// For degenerate loops (fewer than three vertices, or exactly zero signed
// area, such as collinear points) the sum is zero or ill-defined and
// Clockwise returns true; this matches the sign convention used throughout
// the rest of the package and is total for every input, including n == 0.
func Clockwise(vertices []Vector) bool {
	var sum Scalar
	last := len(vertices) - 1
	for i := range vertices {
		sum += vertices[last].X*vertices[i].Y - vertices[last].Y*vertices[i].X
		last = i
	}
	return sum >= 0
}
