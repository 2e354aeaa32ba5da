package tmpoly

// Triangulate ear-clips a simple polygon into a stream of triangle indices
// suitable for use as a graphics index buffer.
//
// vertices holds the polygon's vertex loop (the edge from the last vertex
// back to the first is implicit). clockwise asserts that loop's winding
// order - callers typically obtain it from Clockwise. scratch is working
// memory the algorithm needs to track which vertices remain in the ring; it
// must have length at least len(vertices), or triangulation is silently
// limited to the first len(scratch) vertices. begin is added to every
// emitted index, letting callers place the triangulated indices at an
// offset into a larger shared index buffer. out receives 3*(len(vertices)-2)
// indices in the fully-triangulated case; if out is smaller, Triangulate
// stops early and returns whatever was written, always a multiple of 3.
//
// Triangulate emits triangles in the compile-time winding order selected by
// the tmpoly_ccw build tag (see winding_cw.go); when that convention differs
// from clockwise, the last two indices of each emitted triangle are swapped
// so every triangle's actual winding still matches emissionClockwise.
//
// Triangulate never blocks and always terminates: a liveness counter aborts
// the loop after too many non-progressing ear tests, which covers
// self-intersecting or otherwise numerically pathological input by
// returning whatever triangles were already found.
func Triangulate(vertices []Vector, clockwise bool, scratch []Index, begin Index, out []Index) int {
	n := len(vertices)
	if n < 3 {
		return 0
	}

	size := n
	if len(scratch) < size {
		size = len(scratch)
	}
	for i := 0; i < size; i++ {
		scratch[i] = Index(i)
	}

	written := 0
	posA, posB, posC := 0, 1, 2
	current := 2
	stalled := 0

	for size > 2 {
		if isEar(vertices, scratch, size, posA, posB, posC, clockwise) {
			if written+3 > len(out) {
				break
			}
			ia, ib, ic := scratch[posA], scratch[posB], scratch[posC]
			if clockwise == emissionClockwise {
				out[written], out[written+1], out[written+2] = ia+begin, ib+begin, ic+begin
			} else {
				out[written], out[written+1], out[written+2] = ia+begin, ic+begin, ib+begin
			}
			written += 3

			size--
			stalled = 0
			copy(scratch[posB:size], scratch[posB+1:size+1])

			current = posA
			if current >= size {
				current -= size
			}
			switch {
			case current >= 2:
				posA, posB = current-2, current-1
			case current >= 1:
				posA, posB = size-(2-current), current-1
			default:
				posA, posB = size-(2-current), size-(1-current)
			}
			posC = current
		} else {
			posA, posB = posB, current
			current++
			posC = current
			if current >= size {
				current = 0
				posA, posB, posC = size-2, size-1, current
			}
			if stalled > 2*size {
				break
			}
			stalled++
		}
	}
	return written
}

// isEar reports whether the triangle at ring positions a, b, c is an ear:
// its winding matches the polygon's, and no other vertex still present in
// the ring (positions [0, size) of scratch) lies within its closed area.
func isEar(vertices []Vector, scratch []Index, size, a, b, c int, clockwise bool) bool {
	va, vb, vc := vertices[scratch[a]], vertices[scratch[b]], vertices[scratch[c]]
	if triangleClockwise(va, vb, vc) != clockwise {
		return false
	}
	for p := 0; p < size; p++ {
		if p == a || p == b || p == c {
			continue
		}
		if pointInTriangle(va, vb, vc, vertices[scratch[p]]) {
			return false
		}
	}
	return true
}
