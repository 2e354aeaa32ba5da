// Package tmpolyio reads and writes the JSON polygon format used by the
// cmd/tmpoly command-line tool and sizes the scratch/output buffers the
// tmpoly kernel needs for a given input.
package tmpolyio

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	"github.com/mizrak/go.tmpoly"
)

// Polygon is the on-disk JSON representation of a single vertex loop:
//
//	{"vertices": [[0,0],[1,0],[1,1],[0,1]]}
type Polygon struct {
	Vertices [][2]float64 `json:"vertices"`
}

// DecodePolygon reads a single Polygon from r and converts it to a tmpoly
// vertex loop.
func DecodePolygon(r io.Reader) ([]tmpoly.Vector, error) {
	var p Polygon
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, errors.Wrap(err, "decoding polygon")
	}
	vertices := make([]tmpoly.Vector, len(p.Vertices))
	for i, xy := range p.Vertices {
		vertices[i] = tmpoly.Vector{X: tmpoly.Scalar(xy[0]), Y: tmpoly.Scalar(xy[1])}
	}
	return vertices, nil
}

// EncodePolygon writes vertices to w as a Polygon.
func EncodePolygon(w io.Writer, vertices []tmpoly.Vector) error {
	p := Polygon{Vertices: make([][2]float64, len(vertices))}
	for i, v := range vertices {
		p.Vertices[i] = [2]float64{float64(v.X), float64(v.Y)}
	}
	if err := json.NewEncoder(w).Encode(p); err != nil {
		return errors.Wrap(err, "encoding polygon")
	}
	return nil
}

// TriangulationBuffers returns a scratch ring and index output buffer sized
// for triangulating a loop of n vertices to completion: n scratch slots and
// 3*(n-2) output indices (zero when n < 3).
func TriangulationBuffers(n int) (scratch []tmpoly.Index, out []tmpoly.Index) {
	scratch = make([]tmpoly.Index, n)
	triangles := n - 2
	if triangles < 0 {
		triangles = 0
	}
	out = make([]tmpoly.Index, 3*triangles)
	return scratch, out
}

// ClipBuffers returns clip ring slabs for two loops of size aLen and bLen,
// each with room for every original vertex plus 2*min(aLen, bLen)
// intersection vertices - enough for the common case of two polygons
// crossing a handful of times each. The true worst case (every edge of one
// ring crossing every edge of the other) is aLen*bLen; unlike the
// triangulator's output buffer, a clip ring slab that runs out of room is a
// precondition violation, not a value the pipeline degrades gracefully on -
// FindIntersections asserts capacity before every insert, so undersized
// buffers here are a caller bug to fix by resizing, not a runtime
// truncation to detect after the fact.
func ClipBuffers(aLen, bLen int) (aSlab, bSlab []tmpoly.ClipVertex) {
	extra := aLen
	if bLen < extra {
		extra = bLen
	}
	aSlab = make([]tmpoly.ClipVertex, aLen+2*extra)
	bSlab = make([]tmpoly.ClipVertex, bLen+2*extra)
	return aSlab, bSlab
}
