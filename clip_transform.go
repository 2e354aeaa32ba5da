package tmpoly

// Transform materializes a plain vertex loop into a ClipRing backed by slab,
// ready for FindIntersections. slab must have length at least len(vertices);
// the extra capacity is where FindIntersections will append intersection
// vertices, so callers should size it to len(vertices) + 2*expected
// crossings (worst case one crossing per pair of edges, i.e. len(vertices)
// times the other polygon's vertex count).
//
// The returned ring's OriginalSize and Size both equal len(vertices); Data
// is slab, truncated to its full length, with the caller-supplied vertices
// installed as a circular doubly-linked list over slab[:len(vertices)] and
// every flag/Neighbor/Alpha field zeroed.
func Transform(vertices []Vector, slab []ClipVertex) ClipRing {
	n := Index(len(vertices))
	assertf(len(slab) >= len(vertices), "tmpoly: slab capacity %d smaller than vertex count %d", len(slab), len(vertices))

	ring := ClipRing{
		Data:         slab,
		OriginalSize: n,
		Size:         n,
		Capacity:     Index(len(slab)),
	}
	if n == 0 {
		return ring
	}

	prev := n - 1
	for i := Index(0); i < n; i++ {
		ring.Data[i] = ClipVertex{
			Pos:  vertices[i],
			Next: (i + 1) % n,
			Prev: prev,
		}
		prev = i
	}
	return ring
}
