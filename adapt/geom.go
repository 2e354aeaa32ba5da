// Package adapt converts between tmpoly's caller-owned Vector/index buffers
// and the ring/polygon types of a few geometry libraries commonly found
// upstream of a triangulation or clipping call, so a caller doesn't have to
// hand-roll the conversion loop every time.
package adapt

import (
	"github.com/ctessum/geom"

	"github.com/mizrak/go.tmpoly"
)

// ToGeomPath converts a tmpoly vertex loop to a geom.Path.
func ToGeomPath(vertices []tmpoly.Vector) geom.Path {
	path := make(geom.Path, len(vertices))
	for i, v := range vertices {
		path[i] = geom.Point{X: float64(v.X), Y: float64(v.Y)}
	}
	return path
}

// FromGeomPath converts a geom.Path to a tmpoly vertex loop.
func FromGeomPath(path geom.Path) []tmpoly.Vector {
	vertices := make([]tmpoly.Vector, len(path))
	for i, p := range path {
		vertices[i] = tmpoly.Vector{X: tmpoly.Scalar(p.X), Y: tmpoly.Scalar(p.Y)}
	}
	return vertices
}

// ToGeomPolygon wraps a single tmpoly vertex loop as a one-ring geom.Polygon.
// tmpoly itself has no notion of holes; a polygon with holes must be built up
// by the caller from multiple ToGeomPath results.
func ToGeomPolygon(vertices []tmpoly.Vector) geom.Polygon {
	return geom.Polygon{ToGeomPath(vertices)}
}

// FromGeomPolygon flattens a geom.Polygon's rings into independent tmpoly
// vertex loops, in ring order (exterior first, holes after, per geom's own
// convention). Clipping the holes against the exterior, if that's what the
// caller wants, is left to tmpoly.FindIntersections/EmitPolygons.
func FromGeomPolygon(p geom.Polygon) [][]tmpoly.Vector {
	rings := make([][]tmpoly.Vector, len(p))
	for i, path := range p {
		rings[i] = FromGeomPath(path)
	}
	return rings
}
