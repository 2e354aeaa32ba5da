package tmpoly

// PolygonSpan describes one emitted polygon as a contiguous slice of the
// shared vertex pool passed to EmitPolygons: vertices[Start : Start+Count].
type PolygonSpan struct {
	Start, Count int
}

// EmitPolygons walks a and b - both already run through FindIntersections
// and MarkEntryExit - and writes the resulting Boolean-combination
// polygon(s) into polygons and vertices. It returns how many polygons and
// how many vertices were actually written.
//
// On exhausting either polygons or vertices, EmitPolygons stops and returns
// the counts written so far; already-written polygon spans remain valid and
// consistent (the polygon being filled when capacity ran out is finalized
// to its true length before returning, not left at whatever length it had
// when it was started), but the overall result should be treated as failed
// and rerun with larger buffers - this is not a retryable error from within
// the algorithm.
//
// If FindIntersections found no crossings at all, EmitPolygons falls back
// to a containment test: if a lies entirely inside b, a's original loop is
// emitted verbatim; if b lies entirely inside a, b's loop is emitted
// instead; otherwise nothing is emitted. This is the correct result only
// for AND - see the note below.
//
// NOTE on the containment fallback: it only produces the right answer for
// an AND-direction MarkEntryExit call (Forward, Forward). For OR or the
// one-sided differences, one nested-and-disjoint polygon containing another
// with zero edge crossings is a case this fallback does not attempt to
// disambiguate by direction; it is a known, documented limitation carried
// over unchanged from the original algorithm this package implements.
func EmitPolygons(a, b *ClipRing, polygons []PolygonSpan, vertices []Vector) (polygonsEmitted, verticesUsed int) {
	if a.Size < 1 {
		return 0, 0
	}

	current, other := a, b
	i := current.Data[0].Next // slot 0 is an original vertex, never an intersection
	cur := &current.Data[i]

	put := 0
	polyCount := 0
	currentPoly := -1
	hasIntersections := false

	finalize := func() {
		if currentPoly >= 0 {
			polygons[currentPoly].Count = put - polygons[currentPoly].Start
		}
	}

	for i != 0 {
		if cur.Flags&(FlagIntersect|FlagProcessed) == FlagIntersect {
			cur.Flags |= FlagProcessed
			hasIntersections = true

			finalize()
			if polyCount+1 > len(polygons) {
				return polyCount, put
			}
			currentPoly = polyCount
			polyCount++
			polygons[currentPoly] = PolygonSpan{Start: put}

			start, startRing := i, current
			for {
				// The direction - backward on an exit node, forward
				// otherwise - is fixed once per segment, not re-evaluated
				// per vertex: only intersection nodes carry a meaningful
				// EXIT flag, and a segment always runs until it hits one.
				exit := cur.Flags&FlagExit != 0
				for {
					if exit {
						i = cur.Prev
					} else {
						i = cur.Next
					}
					cur = &current.Data[i]
					cur.Flags |= FlagProcessed
					if put+1 > len(vertices) {
						finalize()
						return polyCount, put
					}
					vertices[put] = cur.Pos
					put++
					if cur.Flags&FlagIntersect != 0 {
						break
					}
				}

				i = cur.Neighbor
				current, other = other, current
				cur = &current.Data[i]
				cur.Flags |= FlagProcessed

				if i == start && current == startRing {
					break
				}
			}
		}
		i = cur.Next
		cur = &current.Data[i]
	}

	if !hasIntersections {
		switch {
		case pointInsideOriginalRing(a.Data[0].Pos, b):
			polyCount, put = emitOriginalLoop(a, polygons, vertices, polyCount, put)
			currentPoly = -1
		case b.Size > 0 && pointInsideOriginalRing(b.Data[0].Pos, a):
			polyCount, put = emitOriginalLoop(b, polygons, vertices, polyCount, put)
			currentPoly = -1
		}
	}

	finalize()
	return polyCount, put
}

// emitOriginalLoop appends ring's untouched original vertex loop as a new
// polygon, used by the containment fallback. It returns the updated
// polygon and vertex counts, or leaves them unchanged if polygons is full.
func emitOriginalLoop(ring *ClipRing, polygons []PolygonSpan, vertices []Vector, polyCount, put int) (int, int) {
	if polyCount+1 > len(polygons) {
		return polyCount, put
	}
	size := int(ring.OriginalSize)
	if room := len(vertices) - put; size > room {
		size = room
	}
	polygons[polyCount] = PolygonSpan{Start: put, Count: size}
	for j := 0; j < size; j++ {
		vertices[put+j] = ring.Data[j].Pos
	}
	return polyCount + 1, put + size
}

// EmitPolygon is a convenience wrapper around EmitPolygons for callers who
// only expect a single resulting polygon (as with an AND of two convex
// shapes). It returns the number of vertices in that polygon.
func EmitPolygon(a, b *ClipRing, vertices []Vector) int {
	var span [1]PolygonSpan
	EmitPolygons(a, b, span[:], vertices)
	return span[0].Count
}
