package tmpoly

const (
	// degenerateAlphaEpsilon is how close an intersection parameter may
	// come to 0 or 1 before it is treated as coincident with an original
	// vertex and perturbed away instead of accepted.
	degenerateAlphaEpsilon = 1e-5
	// degeneratePerturbation is how far a coincident vertex is nudged along
	// the perpendicular of the other edge's direction.
	degeneratePerturbation = 1e-4
)

// FindIntersections finds every crossing between a's and b's original edges
// and inserts a pair of linked intersection vertices - one into each ring -
// at every crossing. It mutates both rings: intersection vertices are
// appended to each ring's slab (Size increases, up to Capacity) and spliced
// into the linked list, and a small number of original vertices may be
// perturbed by degeneratePerturbation to break a near-exact coincidence
// between an intersection and an existing vertex (see the loop body below).
//
// Only the original edges (indices [0, OriginalSize)) of each ring are
// compared; FindIntersections must run before any other phase touches
// either ring.
func FindIntersections(a, b *ClipRing) {
	aCount, bCount := a.OriginalSize, b.OriginalSize
	if aCount == 0 || bCount == 0 {
		return
	}

	aPrevIndex := aCount - 1
	for i := Index(0); i < aCount; i++ {
		bPrevIndex := bCount - 1
		for j := Index(0); j < bCount; {
			aCur, aPrev := a.Data[i].Pos, a.Data[aPrevIndex].Pos
			bCur, bPrev := b.Data[j].Pos, b.Data[bPrevIndex].Pos

			aDir := aCur.sub(aPrev)
			bDir := bCur.sub(bPrev)

			aAlpha, aOk := segmentIntersectionAlpha(aPrev, aDir, bPrev, bDir)
			bAlpha, bOk := segmentIntersectionAlpha(bPrev, bDir, aPrev, aDir)

			if aOk && bOk && aAlpha >= 0 && aAlpha <= 1 && bAlpha >= 0 && bAlpha <= 1 {
				// Degeneracy handling: an intersection landing almost
				// exactly on an edge endpoint is nudged off the edge and
				// the same edge pair is retried, rather than inserting an
				// intersection vertex that coincides with an existing one.
				switch {
				case aAlpha <= degenerateAlphaEpsilon:
					perturb(&a.Data[aPrevIndex].Pos, bDir)
					continue
				case aAlpha >= 1-degenerateAlphaEpsilon:
					perturb(&a.Data[i].Pos, bDir)
					continue
				case bAlpha <= degenerateAlphaEpsilon:
					perturb(&b.Data[bPrevIndex].Pos, aDir)
					continue
				case bAlpha >= 1-degenerateAlphaEpsilon:
					perturb(&b.Data[j].Pos, aDir)
					continue
				}

				point := aPrev.add(aDir.scale(aAlpha))
				aAt := findInsertionPoint(a, a.Data[i].Prev, aAlpha)
				bAt := findInsertionPoint(b, b.Data[j].Prev, bAlpha)
				aNeighbor, bNeighbor := b.Size, a.Size
				insertIntersection(a, aAt, point, aNeighbor, aAlpha)
				insertIntersection(b, bAt, point, bNeighbor, bAlpha)
			}
			bPrevIndex = j
			j++
		}
		aPrevIndex = i
	}
}

// perturb nudges v by degeneratePerturbation along the perpendicular of dir,
// shifting input geometry rather than special-casing exact coincidences in
// the intersection math itself. Repeated clipping of the same inputs may
// therefore drift slightly.
func perturb(v *Vector, dir Vector) {
	v.X -= dir.Y * degeneratePerturbation
	v.Y += dir.X * degeneratePerturbation
}

// findInsertionPoint walks backward from at while the predecessor is
// already an intersection vertex with a larger alpha than the new one,
// preserving ascending-alpha order for intersections along a single edge.
func findInsertionPoint(ring *ClipRing, at Index, alpha Scalar) Index {
	for ring.Data[at].Flags&FlagIntersect != 0 && ring.Data[at].Alpha > alpha {
		at = ring.Data[at].Prev
	}
	return at
}

// insertVertexAfter appends a new, otherwise-zeroed vertex to the ring's
// tail and splices it into the linked list immediately after at, returning
// its index.
func insertVertexAfter(ring *ClipRing, at Index) Index {
	assertf(ring.Size < ring.Capacity, "tmpoly: clip ring exhausted capacity %d", ring.Capacity)
	idx := ring.Size
	ref := &ring.Data[at]
	oldNext := ref.Next
	ring.Data[idx] = ClipVertex{Prev: at, Next: oldNext}
	ring.Data[oldNext].Prev = idx
	ref.Next = idx
	ring.Size++
	return idx
}

// insertIntersection inserts an intersection vertex after at.
func insertIntersection(ring *ClipRing, at Index, pos Vector, neighbor Index, alpha Scalar) Index {
	idx := insertVertexAfter(ring, at)
	v := &ring.Data[idx]
	v.Pos = pos
	v.Flags |= FlagIntersect
	v.Neighbor = neighbor
	v.Alpha = alpha
	return idx
}
