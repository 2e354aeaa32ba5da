// Package tmpoly implements two classical planar polygon algorithms: ear-clipping
// triangulation of a simple polygon, and Greiner-Hormann clipping of two simple
// polygons (intersection, union, or a one-sided difference).
//
// The package is a pure computational kernel. Every function operates on
// caller-supplied buffers; nothing here allocates, blocks, or retains state
// between calls. Sizing the buffers correctly is the caller's job - see the
// doc comment on each exported function for the required capacity.
//
// Three knobs are selected at compile time via build tags rather than at
// runtime, matching the caller-owned-memory philosophy: the vector component
// width (Scalar, see scalar_32.go/scalar_64.go), the ring index width (Index,
// see index_16.go/index_32.go), and the winding order of emitted triangles
// (see winding_cw.go/winding_ccw.go).
package tmpoly
