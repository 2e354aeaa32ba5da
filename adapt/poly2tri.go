package adapt

import (
	"math"

	poly2tri "github.com/ByteArena/poly2tri-go"

	"github.com/mizrak/go.tmpoly"
)

// CrossCheckResult compares tmpoly's ear-clipping triangulation of a polygon
// against an independent sweep-line triangulation of the same polygon.
type CrossCheckResult struct {
	TmpolyTriangles   int
	Poly2triTriangles int
	TmpolyArea        float64
	Poly2triArea      float64
}

// AreaMatches reports whether the two triangulations cover the same total
// area within tolerance, which is the only property expected to agree
// between an ear-clipping and a sweep-line triangulator - the actual
// triangle diagonals will generally differ.
func (r CrossCheckResult) AreaMatches(tolerance float64) bool {
	return math.Abs(r.TmpolyArea-r.Poly2triArea) <= tolerance
}

// CrossCheckTriangulation triangulates vertices with tmpoly.Triangulate and,
// separately, with poly2tri-go's sweep-line triangulator, as a correctness
// oracle: two independent algorithms triangulating the same simple polygon
// should always cover the same area even though they'll generally choose
// different diagonals.
func CrossCheckTriangulation(vertices []tmpoly.Vector) CrossCheckResult {
	clockwise := tmpoly.Clockwise(vertices)
	scratch := make([]tmpoly.Index, len(vertices))
	out := make([]tmpoly.Index, 3*len(vertices))
	written := tmpoly.Triangulate(vertices, clockwise, scratch, 0, out)

	var result CrossCheckResult
	result.TmpolyTriangles = written / 3
	for i := 0; i < written; i += 3 {
		result.TmpolyArea += triangleArea(vertices[out[i]], vertices[out[i+1]], vertices[out[i+2]])
	}

	contour := make([]*poly2tri.Point, len(vertices))
	for i, v := range vertices {
		contour[i] = poly2tri.NewPoint(float64(v.X), float64(v.Y))
	}
	swctx := poly2tri.NewSweepContext(contour, false)
	swctx.Triangulate()
	triangles := swctx.GetTriangles()
	result.Poly2triTriangles = len(triangles)
	for _, tr := range triangles {
		a := tmpoly.Vector{X: tmpoly.Scalar(tr.Points[0].X), Y: tmpoly.Scalar(tr.Points[0].Y)}
		b := tmpoly.Vector{X: tmpoly.Scalar(tr.Points[1].X), Y: tmpoly.Scalar(tr.Points[1].Y)}
		c := tmpoly.Vector{X: tmpoly.Scalar(tr.Points[2].X), Y: tmpoly.Scalar(tr.Points[2].Y)}
		result.Poly2triArea += triangleArea(a, b, c)
	}
	return result
}

func triangleArea(a, b, c tmpoly.Vector) float64 {
	cross := float64(b.X-a.X)*float64(c.Y-a.Y) - float64(b.Y-a.Y)*float64(c.X-a.X)
	return math.Abs(cross) / 2
}
