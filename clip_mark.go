package tmpoly

// MarkEntryExit classifies every intersection vertex in a and b as an entry
// or exit point of the other ring, and in doing so selects which Boolean
// operation EmitPolygons will produce. Both rings must already have run
// through FindIntersections.
//
// aDir and bDir independently choose which side of an intersection each
// ring treats as its exit side; the four combinations select the operation:
//
//	aDir     bDir     Result
//	Forward  Forward  A ∩ B
//	Backward Forward  A ∖ B
//	Forward  Backward B ∖ A
//	Backward Backward A ∪ B
func MarkEntryExit(a, b *ClipRing, aDir, bDir Direction) {
	markRing(a, b, aDir)
	markRing(b, a, bDir)
}

// markRing walks ring starting just after its first vertex (which is always
// an original vertex, never an intersection), toggling inside/outside of
// other at every intersection vertex and flagging it as an exit point
// whenever the walk is currently inside.
func markRing(ring, other *ClipRing, dir Direction) {
	if ring.Size == 0 {
		return
	}
	inside := pointInsideOriginalRing(ring.Data[0].Pos, other)
	if dir == Backward {
		inside = !inside
	}

	i := ring.Data[0].Next
	for i != 0 {
		v := &ring.Data[i]
		if v.Flags&FlagIntersect != 0 {
			if inside {
				v.Flags |= FlagExit
			}
			inside = !inside
		}
		i = v.Next
	}
}
