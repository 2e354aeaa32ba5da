package adapt

import (
	"github.com/paulmach/orb"

	"github.com/mizrak/go.tmpoly"
)

// ToOrbRing converts a tmpoly vertex loop to an orb.Ring. orb represents a
// closed ring with its first and last points equal; tmpoly's loops leave the
// closing edge implicit, so ToOrbRing appends a closing copy of vertices[0].
func ToOrbRing(vertices []tmpoly.Vector) orb.Ring {
	if len(vertices) == 0 {
		return nil
	}
	ring := make(orb.Ring, 0, len(vertices)+1)
	for _, v := range vertices {
		ring = append(ring, orb.Point{float64(v.X), float64(v.Y)})
	}
	return append(ring, ring[0])
}

// FromOrbRing converts an orb.Ring to a tmpoly vertex loop, dropping the
// closing point orb.Ring repeats at the end if present.
func FromOrbRing(ring orb.Ring) []tmpoly.Vector {
	n := len(ring)
	if n > 1 && ring[0] == ring[n-1] {
		n--
	}
	vertices := make([]tmpoly.Vector, n)
	for i := 0; i < n; i++ {
		vertices[i] = tmpoly.Vector{X: tmpoly.Scalar(ring[i][0]), Y: tmpoly.Scalar(ring[i][1])}
	}
	return vertices
}

// ToOrbPolygon wraps a single tmpoly vertex loop as a one-ring orb.Polygon.
func ToOrbPolygon(vertices []tmpoly.Vector) orb.Polygon {
	return orb.Polygon{ToOrbRing(vertices)}
}

// FromOrbPolygon converts every ring of an orb.Polygon to independent tmpoly
// vertex loops, exterior ring first.
func FromOrbPolygon(p orb.Polygon) [][]tmpoly.Vector {
	rings := make([][]tmpoly.Vector, len(p))
	for i, ring := range p {
		rings[i] = FromOrbRing(ring)
	}
	return rings
}
