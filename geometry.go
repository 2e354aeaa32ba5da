package tmpoly

import "math"

// triangleClockwise reports whether the triangle a, b, c is wound clockwise.
func triangleClockwise(a, b, c Vector) bool {
	return b.sub(a).cross(c.sub(a)) >= 0
}

// pointInTriangle reports whether v lies within the closed triangle a, b, c,
// using the barycentric condition r >= 0, s >= 0, r+s <= 1. Points exactly
// on the boundary count as inside, so isEar rejects a candidate ear that has
// another ring vertex lying exactly on one of its edges rather than emitting
// a zero-area sliver.
func pointInTriangle(a, b, c, v Vector) bool {
	bv := b.sub(a)
	cv := c.sub(a)
	vv := v.sub(a)

	bc := bv.dot(cv)
	vc := vv.dot(cv)
	vb := vv.dot(bv)
	cc := cv.dot(cv)
	bb := bv.dot(bv)

	denom := bb*cc - bc*bc
	if denom == 0 {
		return false
	}
	invDenom := 1 / denom
	r := (cc*vb - bc*vc) * invDenom
	s := (bb*vc - bc*vb) * invDenom

	return r >= 0 && s >= 0 && r+s <= 1
}

// crossEpsilon bounds how close to parallel two edges may be before their
// intersection is considered numerically unreliable and skipped. spec.md
// notes the original test was miswritten as a disjunction (c < eps || c >
// eps), which is true for nearly every c and effectively disables the
// parallel check; this implementation uses the corrected |c| > eps reading.
const crossEpsilon = 1e-9

// segmentIntersectionAlpha solves for the parameter t such that
// a + t*aDir lies on the infinite line through b in direction bDir. It
// reports false when the two directions are parallel within crossEpsilon.
func segmentIntersectionAlpha(a, aDir, b, bDir Vector) (t Scalar, ok bool) {
	cross := aDir.cross(bDir)
	if Scalar(math.Abs(float64(cross))) <= crossEpsilon {
		return 0, false
	}
	rel := a.sub(b)
	return (bDir.X*rel.Y - bDir.Y*rel.X) / cross, true
}

// rayCrossesEdge reports whether a horizontal ray cast from p in the +X
// direction crosses the edge from prev to cur, and if so, the X coordinate
// of that crossing. The half-open interval test on Y avoids double-counting
// a ray that passes exactly through a shared vertex.
func rayCrossesEdge(p, prev, cur Vector) (xIntersection Scalar, crosses bool) {
	if (p.Y <= prev.Y && p.Y > cur.Y) || (p.Y > prev.Y && p.Y <= cur.Y) {
		alpha := (prev.Y - p.Y) / (prev.Y - cur.Y)
		return prev.X + alpha*(cur.X-prev.X), true
	}
	return 0, false
}

// pointInsideOriginalRing reports whether p lies inside ring's original
// polygon loop (its first OriginalSize vertices), via a horizontal-ray
// crossing-number test. Used by both entry/exit marking and the
// containment fallback in emission.
func pointInsideOriginalRing(p Vector, ring *ClipRing) bool {
	count := ring.OriginalSize
	prevIndex := count - 1
	inside := false
	for i := Index(0); i < count; i++ {
		cur := ring.Data[i].Pos
		prev := ring.Data[prevIndex].Pos
		if x, crosses := rayCrossesEdge(p, prev, cur); crosses && p.X < x {
			inside = !inside
		}
		prevIndex = i
	}
	return inside
}
